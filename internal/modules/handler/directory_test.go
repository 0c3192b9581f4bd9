package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/collabhub-io/collabhub/internal/modules/model"
	"github.com/collabhub-io/collabhub/internal/modules/repo"
	"github.com/collabhub-io/collabhub/internal/modules/service"
)

func newDirectoryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDirectoryHandler(service.NewDirectoryService(repo.NewDefaultDirectoryRepo()))
	r := gin.New()
	r.GET("/directory/users", h.SearchUsers)
	r.GET("/directory/users/:user_id", h.GetUser)
	return r
}

func TestDirectoryHandler_SearchUsers(t *testing.T) {
	router := newDirectoryRouter()

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{name: "empty query returns everyone", query: "", expected: 8},
		{name: "name match", query: "sarah", expected: 1},
		{name: "no match", query: "zzz", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/directory/users?query="+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			var body struct {
				Data []model.DirectoryUser `json:"data"`
			}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Len(t, body.Data, tt.expected)
		})
	}
}

func TestDirectoryHandler_GetUser(t *testing.T) {
	router := newDirectoryRouter()

	t.Run("known user", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/directory/users/fc2b5f73-c925-44ce-afbc-7b0a2ed1a610", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data model.DirectoryUser `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Jordan Lee", body.Data.Name)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/directory/users/beefbeef-0000-0000-0000-000000000000", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
