package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/collabhub-io/collabhub/internal/modules/serializer"
	"github.com/collabhub-io/collabhub/internal/modules/service"
)

type DirectoryHandler struct {
	svc service.DirectoryService
}

func NewDirectoryHandler(svc service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

// SearchUsers godoc
//
//	@Summary		Search directory users
//	@Description	Case-insensitive prefix-free match on name and email. An empty query returns the full directory.
//	@Tags			directory
//	@Produce		json
//	@Param			query	query	string	false	"Search term"
//	@Success		200	{object}	serializer.Response{data=[]model.DirectoryUser}
//	@Router			/directory/users [get]
func (h *DirectoryHandler) SearchUsers(c *gin.Context) {
	users := h.svc.Search(c.Query("query"))
	c.JSON(http.StatusOK, serializer.Response{Data: users})
}

// GetUser godoc
//
//	@Summary		Resolve a directory user by id
//	@Tags			directory
//	@Produce		json
//	@Param			user_id	path	string	true	"User ID"
//	@Success		200	{object}	serializer.Response{data=model.DirectoryUser}
//	@Router			/directory/users/{user_id} [get]
func (h *DirectoryHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid user_id", err))
		return
	}

	user, ok := h.svc.ResolveByID(userID)
	if !ok {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("user not found", nil))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: user})
}
