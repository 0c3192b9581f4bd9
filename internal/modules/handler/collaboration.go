package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/collabhub-io/collabhub/internal/middleware"
	"github.com/collabhub-io/collabhub/internal/modules/mapper"
	"github.com/collabhub-io/collabhub/internal/modules/model"
	"github.com/collabhub-io/collabhub/internal/modules/serializer"
	"github.com/collabhub-io/collabhub/internal/modules/service"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("collabformat", func(fl validator.FieldLevel) bool {
			return model.KnownFormat(fl.Field().String())
		})
	}
}

type CollaborationHandler struct {
	svc service.CollaborationService
}

func NewCollaborationHandler(svc service.CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{svc: svc}
}

type ListCollaborationsResp struct {
	Items           []mapper.Collaboration `json:"items"`
	MyProjectsCount int                    `json:"my_projects_count"`
}

// ListCollaborations godoc
//
//	@Summary		List collaborations
//	@Description	List collaborations filtered by status, tab and free-text query. The my_projects_count is computed over the full list, independent of the active filters.
//	@Tags			collaborations
//	@Produce		json
//	@Param			status	query	string	false	"Status filter"	default(Open)
//	@Param			tab		query	string	false	"Tab: All Formats, My Projects, or a format display label"	default(All Formats)
//	@Param			q		query	string	false	"Case-insensitive title/description search"
//	@Success		200	{object}	serializer.Response{data=handler.ListCollaborationsResp}
//	@Router			/collaborations [get]
func (h *CollaborationHandler) ListCollaborations(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", errors.New("identity not found")))
		return
	}

	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to list collaborations", err))
		return
	}

	filter := service.FilterState{
		Tab:    c.DefaultQuery("tab", service.TabAllFormats),
		Status: c.DefaultQuery("status", model.StatusOpen),
		Query:  c.Query("q"),
	}

	resp := ListCollaborationsResp{
		Items:           service.FilterCollaborations(items, filter, identity),
		MyProjectsCount: service.MyProjectsCount(items, identity),
	}
	c.JSON(http.StatusOK, serializer.Response{Data: resp})
}

type CollaborationDetailResp struct {
	mapper.Collaboration
	CreatedOn string `json:"created_on"`
}

// createdOnLabel renders the creation date of the row, not the date the
// page was rendered.
func createdOnLabel(createdAtMillis int64) string {
	return time.UnixMilli(createdAtMillis).UTC().Format("02/01/2006")
}

// GetCollaboration godoc
//
//	@Summary		Get collaboration detail
//	@Tags			collaborations
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"
//	@Success		200	{object}	serializer.Response{data=handler.CollaborationDetailResp}
//	@Router			/collaborations/{project_id} [get]
func (h *CollaborationHandler) GetCollaboration(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid project_id", err))
		return
	}

	item, err := h.svc.Get(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("collaboration not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to get collaboration", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: CollaborationDetailResp{
		Collaboration: *item,
		CreatedOn:     createdOnLabel(item.CreatedAt),
	}})
}

type CreateCollaborationReq struct {
	Format      string `json:"format" binding:"required,collabformat" example:"weekly_learning"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	GroupSize   string `json:"group_size"`
	LumaLink    string `json:"luma_link"`
	CoCreator   string `json:"co_creator"`

	Skills    []string `json:"skills"`
	Effort    string   `json:"effort"`
	StartDate string   `json:"start_date"`

	TopicsOfInterest []string `json:"topics_of_interest"`
	Frequency        string   `json:"frequency"`
	Weekday          string   `json:"weekday"`
	LearningDate     string   `json:"learning_date"`
	LearningTime     string   `json:"learning_time"`
	LearningTimezone string   `json:"learning_timezone"`

	MeetingDate     string `json:"meeting_date"`
	MeetingTime     string `json:"meeting_time"`
	MeetingDuration int    `json:"meeting_duration"`
	Timezone        string `json:"timezone"`

	WhoIsThisFor []string `json:"who_is_this_for"`
	TeamsLink    string   `json:"teams_link"`
}

// CreateCollaboration godoc
//
//	@Summary		Create collaboration
//	@Description	Create a collaboration in the given format. Status is always Open on creation; the co-creator reference is dropped silently when it does not resolve against the user directory.
//	@Tags			collaborations
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateCollaborationReq	true	"CreateCollaboration payload"
//	@Success		200	{object}	serializer.Response{data=mapper.Collaboration}
//	@Router			/collaborations [post]
func (h *CollaborationHandler) CreateCollaboration(c *gin.Context) {
	req := CreateCollaborationReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if req.Format == model.FormatJobFunctionChat && req.TeamsLink == "" {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("teams_link is required for job function chats", nil))
		return
	}

	item, err := h.svc.Create(c.Request.Context(), mapper.CreateCollaborationInput{
		Format:           req.Format,
		Title:            req.Title,
		Description:      req.Description,
		GroupSize:        req.GroupSize,
		LumaLink:         req.LumaLink,
		CoCreator:        req.CoCreator,
		Skills:           req.Skills,
		Effort:           req.Effort,
		StartDate:        req.StartDate,
		TopicsOfInterest: req.TopicsOfInterest,
		Frequency:        req.Frequency,
		Weekday:          req.Weekday,
		LearningDate:     req.LearningDate,
		LearningTime:     req.LearningTime,
		LearningTimezone: req.LearningTimezone,
		MeetingDate:      req.MeetingDate,
		MeetingTime:      req.MeetingTime,
		MeetingDuration:  req.MeetingDuration,
		Timezone:         req.Timezone,
		WhoIsThisFor:     req.WhoIsThisFor,
		TeamsLink:        req.TeamsLink,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to create collaboration", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

// CloseCollaboration godoc
//
//	@Summary		Close collaboration
//	@Description	Mark a collaboration Closed. Only the creator may close it.
//	@Tags			collaborations
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"
//	@Success		200	{object}	serializer.Response{data=mapper.Collaboration}
//	@Router			/collaborations/{project_id}/close [post]
func (h *CollaborationHandler) CloseCollaboration(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid project_id", err))
		return
	}

	item, err := h.svc.Close(c.Request.Context(), projectID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("collaboration not found", err))
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, serializer.ForbiddenErr("only the creator can close a collaboration", err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to close collaboration", err))
		}
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required" example:"Closed"`
}

// UpdateCollaborationStatus godoc
//
//	@Summary		Update collaboration status
//	@Description	Set the status to Open or Closed. Only the creator may change it.
//	@Tags			collaborations
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"
//	@Param			payload		body	handler.UpdateStatusReq	true	"UpdateStatus payload"
//	@Success		200	{object}	serializer.Response
//	@Router			/collaborations/{project_id}/status [put]
func (h *CollaborationHandler) UpdateCollaborationStatus(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid project_id", err))
		return
	}

	req := UpdateStatusReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.UpdateStatus(c.Request.Context(), projectID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, serializer.ParamErr("status must be Open or Closed", err))
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("collaboration not found", err))
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, serializer.ForbiddenErr("only the creator can change the status", err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to update status", err))
		}
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Msg: "ok"})
}
