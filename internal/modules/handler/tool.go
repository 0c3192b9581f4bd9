package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/collabhub-io/collabhub/internal/modules/serializer"
	"github.com/collabhub-io/collabhub/internal/modules/service"
)

type ToolHandler struct {
	svc service.ToolService
}

func NewToolHandler(svc service.ToolService) *ToolHandler {
	return &ToolHandler{svc: svc}
}

// ListTools godoc
//
//	@Summary		List tools
//	@Description	List library tools ordered by most recently updated, each with its insight count.
//	@Tags			tools
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]service.ToolWithCount}
//	@Router			/tools [get]
func (h *ToolHandler) ListTools(c *gin.Context) {
	tools, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to list tools", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: tools})
}

// GetTool godoc
//
//	@Summary		Get tool
//	@Tags			tools
//	@Produce		json
//	@Param			tool_id	path	string	true	"Tool ID"
//	@Success		200	{object}	serializer.Response{data=service.ToolWithCount}
//	@Router			/tools/{tool_id} [get]
func (h *ToolHandler) GetTool(c *gin.Context) {
	toolID, err := uuid.Parse(c.Param("tool_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid tool_id", err))
		return
	}

	tool, err := h.svc.Get(c.Request.Context(), toolID)
	if err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("tool not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to get tool", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: tool})
}

type CreateToolReq struct {
	ToolName string `json:"tool_name" binding:"required" example:"Claude"`
	Category string `json:"category"`
	ToolURL  string `json:"tool_url"`
}

// CreateTool godoc
//
//	@Summary		Create tool
//	@Description	Add a tool to the library. The collective summary starts empty and grows through edits.
//	@Tags			tools
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateToolReq	true	"CreateTool payload"
//	@Success		200	{object}	serializer.Response{data=model.Tool}
//	@Router			/tools [post]
func (h *ToolHandler) CreateTool(c *gin.Context) {
	req := CreateToolReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	tool, err := h.svc.Create(c.Request.Context(), service.CreateToolInput{
		ToolName: req.ToolName,
		Category: req.Category,
		ToolURL:  req.ToolURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to create tool", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: tool})
}

type UpdateSummaryReq struct {
	Summary string `json:"summary"`
}

// UpdateToolSummary godoc
//
//	@Summary		Update tool summary
//	@Description	Replace the collective summary wholesale. Concurrent edits are last-write-wins.
//	@Tags			tools
//	@Accept			json
//	@Produce		json
//	@Param			tool_id	path	string						true	"Tool ID"
//	@Param			payload	body	handler.UpdateSummaryReq	true	"UpdateSummary payload"
//	@Success		200	{object}	serializer.Response
//	@Router			/tools/{tool_id}/summary [put]
func (h *ToolHandler) UpdateToolSummary(c *gin.Context) {
	toolID, err := uuid.Parse(c.Param("tool_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid tool_id", err))
		return
	}

	req := UpdateSummaryReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.UpdateSummary(c.Request.Context(), toolID, req.Summary); err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("tool not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to update summary", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "ok"})
}

// ListToolInsights godoc
//
//	@Summary		List tool insights
//	@Description	Reviews for one tool, newest first.
//	@Tags			tools
//	@Produce		json
//	@Param			tool_id	path	string	true	"Tool ID"
//	@Success		200	{object}	serializer.Response{data=[]model.ToolInsight}
//	@Router			/tools/{tool_id}/insights [get]
func (h *ToolHandler) ListToolInsights(c *gin.Context) {
	toolID, err := uuid.Parse(c.Param("tool_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid tool_id", err))
		return
	}

	insights, err := h.svc.ListInsights(c.Request.Context(), toolID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to list insights", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: insights})
}

type AddInsightReq struct {
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Pros        string `json:"pros" binding:"required"`
	Cons        string `json:"cons"`
	PricingTips string `json:"pricing_tips"`
}

// AddToolInsight godoc
//
//	@Summary		Add tool insight
//	@Description	Submit a review for a tool. Rating is 1-5 and pros is required; the tool name is denormalized onto the insight row.
//	@Tags			tools
//	@Accept			json
//	@Produce		json
//	@Param			tool_id	path	string					true	"Tool ID"
//	@Param			payload	body	handler.AddInsightReq	true	"AddInsight payload"
//	@Success		200	{object}	serializer.Response{data=model.ToolInsight}
//	@Router			/tools/{tool_id}/insights [post]
func (h *ToolHandler) AddToolInsight(c *gin.Context) {
	toolID, err := uuid.Parse(c.Param("tool_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid tool_id", err))
		return
	}

	req := AddInsightReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	insight, err := h.svc.AddInsight(c.Request.Context(), service.AddInsightInput{
		ToolID:      toolID,
		Rating:      req.Rating,
		Pros:        req.Pros,
		Cons:        req.Cons,
		PricingTips: req.PricingTips,
	})
	if err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("tool not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to add insight", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: insight})
}
