package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/collabhub-io/collabhub/internal/middleware"
	"github.com/collabhub-io/collabhub/internal/modules/mapper"
	"github.com/collabhub-io/collabhub/internal/modules/model"
	"github.com/collabhub-io/collabhub/internal/modules/service"
)

// MockCollaborationService is a mock implementation of CollaborationService
type MockCollaborationService struct {
	mock.Mock
}

func (m *MockCollaborationService) List(ctx context.Context) ([]mapper.Collaboration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mapper.Collaboration), args.Error(1)
}

func (m *MockCollaborationService) Get(ctx context.Context, projectID uuid.UUID) (*mapper.Collaboration, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mapper.Collaboration), args.Error(1)
}

func (m *MockCollaborationService) Create(ctx context.Context, form mapper.CreateCollaborationInput) (*mapper.Collaboration, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mapper.Collaboration), args.Error(1)
}

func (m *MockCollaborationService) Close(ctx context.Context, projectID uuid.UUID) (*mapper.Collaboration, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mapper.Collaboration), args.Error(1)
}

func (m *MockCollaborationService) UpdateStatus(ctx context.Context, projectID uuid.UUID, status string) error {
	args := m.Called(ctx, projectID, status)
	return args.Error(0)
}

var testIdentity = model.Identity{
	ID:   uuid.MustParse("00000000-0000-0000-0000-000000000001"),
	Name: "Sarah Chen",
}

func setupCollabRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCollaborationHandler_ListCollaborations(t *testing.T) {
	mine := mapper.Collaboration{
		ProjectID: uuid.New().String(),
		Format:    model.FormatWeeklyLearning,
		Title:     "Go study circle",
		Status:    model.StatusOpen,
		UID:       testIdentity.ID.String(),
		CreatedAt: 200,
	}
	other := mapper.Collaboration{
		ProjectID: uuid.New().String(),
		Format:    model.FormatHackathon,
		Title:     "Data pipeline weekend",
		Status:    model.StatusOpen,
		UID:       uuid.New().String(),
		CreatedAt: 100,
	}

	tests := []struct {
		name           string
		url            string
		setup          func(*MockCollaborationService)
		expectedStatus int
		check          func(*testing.T, ListCollaborationsResp)
	}{
		{
			name: "default filters return all open items",
			url:  "/collaborations",
			setup: func(svc *MockCollaborationService) {
				svc.On("List", mock.Anything).Return([]mapper.Collaboration{mine, other}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp ListCollaborationsResp) {
				assert.Len(t, resp.Items, 2)
				assert.Equal(t, 1, resp.MyProjectsCount)
			},
		},
		{
			name: "my projects tab narrows items but not the count",
			url:  "/collaborations?tab=My+Projects",
			setup: func(svc *MockCollaborationService) {
				svc.On("List", mock.Anything).Return([]mapper.Collaboration{mine, other}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp ListCollaborationsResp) {
				assert.Len(t, resp.Items, 1)
				assert.Equal(t, mine.ProjectID, resp.Items[0].ProjectID)
				assert.Equal(t, 1, resp.MyProjectsCount)
			},
		},
		{
			name: "free text query matches title",
			url:  "/collaborations?q=pipeline",
			setup: func(svc *MockCollaborationService) {
				svc.On("List", mock.Anything).Return([]mapper.Collaboration{mine, other}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp ListCollaborationsResp) {
				assert.Len(t, resp.Items, 1)
				assert.Equal(t, other.ProjectID, resp.Items[0].ProjectID)
			},
		},
		{
			name: "service layer error",
			url:  "/collaborations",
			setup: func(svc *MockCollaborationService) {
				svc.On("List", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockCollaborationService{}
			tt.setup(mockService)

			handler := NewCollaborationHandler(mockService)
			router := setupCollabRouter()
			router.GET("/collaborations", middleware.Identity(testIdentity), handler.ListCollaborations)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.check != nil {
				var body struct {
					Data ListCollaborationsResp `json:"data"`
				}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				tt.check(t, body.Data)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestCollaborationHandler_ListCollaborations_RequiresIdentity(t *testing.T) {
	mockService := &MockCollaborationService{}

	handler := NewCollaborationHandler(mockService)
	router := setupCollabRouter()
	// no Identity middleware on the route
	router.GET("/collaborations", handler.ListCollaborations)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/collaborations", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "List")
}

func TestCollaborationHandler_GetCollaboration(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name           string
		param          string
		setup          func(*MockCollaborationService)
		expectedStatus int
		check          func(*testing.T, []byte)
	}{
		{
			name:  "found",
			param: projectID.String(),
			setup: func(svc *MockCollaborationService) {
				svc.On("Get", mock.Anything, projectID).Return(&mapper.Collaboration{
					ProjectID: projectID.String(),
					Title:     "Go study circle",
					CreatedAt: int64(1750982400000), // 2025-06-27 UTC
				}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp struct {
					Data CollaborationDetailResp `json:"data"`
				}
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "27/06/2025", resp.Data.CreatedOn)
			},
		},
		{
			name:  "not found",
			param: projectID.String(),
			setup: func(svc *MockCollaborationService) {
				svc.On("Get", mock.Anything, projectID).Return(nil, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid project id",
			param:          "not-a-uuid",
			setup:          func(svc *MockCollaborationService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockCollaborationService{}
			tt.setup(mockService)

			handler := NewCollaborationHandler(mockService)
			router := setupCollabRouter()
			router.GET("/collaborations/:project_id", handler.GetCollaboration)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/collaborations/"+tt.param, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.check != nil {
				tt.check(t, w.Body.Bytes())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestCollaborationHandler_CreateCollaboration(t *testing.T) {
	tests := []struct {
		name           string
		payload        map[string]interface{}
		setup          func(*MockCollaborationService)
		expectedStatus int
	}{
		{
			name: "valid hackathon",
			payload: map[string]interface{}{
				"format":      model.FormatHackathon,
				"title":       "Weekend build",
				"description": "Ship something small",
				"skills":      []string{"Go", "SQL"},
				"start_date":  "2025-07-04",
			},
			setup: func(svc *MockCollaborationService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(in mapper.CreateCollaborationInput) bool {
					return in.Format == model.FormatHackathon && in.StartDate == "2025-07-04"
				})).Return(&mapper.Collaboration{Title: "Weekend build"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing title rejected",
			payload: map[string]interface{}{
				"format":      model.FormatHackathon,
				"description": "no title",
			},
			setup:          func(svc *MockCollaborationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown format rejected",
			payload: map[string]interface{}{
				"format":      "book_club",
				"title":       "Monthly reads",
				"description": "Fiction only",
			},
			setup:          func(svc *MockCollaborationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "job function chat requires teams link",
			payload: map[string]interface{}{
				"format":          model.FormatJobFunctionChat,
				"title":           "Data folks",
				"description":     "Cross-team chat",
				"who_is_this_for": []string{"Data Analysts"},
			},
			setup:          func(svc *MockCollaborationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service layer error",
			payload: map[string]interface{}{
				"format":      model.FormatMeetupPod,
				"title":       "Coffee pod",
				"description": "Small group",
			},
			setup: func(svc *MockCollaborationService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockCollaborationService{}
			tt.setup(mockService)

			handler := NewCollaborationHandler(mockService)
			router := setupCollabRouter()
			router.POST("/collaborations", handler.CreateCollaboration)

			body, _ := json.Marshal(tt.payload)
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/collaborations", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestCollaborationHandler_CloseCollaboration(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name           string
		setup          func(*MockCollaborationService)
		expectedStatus int
	}{
		{
			name: "creator closes",
			setup: func(svc *MockCollaborationService) {
				svc.On("Close", mock.Anything, projectID).Return(&mapper.Collaboration{
					ProjectID: projectID.String(),
					Status:    model.StatusClosed,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "non-creator forbidden",
			setup: func(svc *MockCollaborationService) {
				svc.On("Close", mock.Anything, projectID).Return(nil, service.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "missing row",
			setup: func(svc *MockCollaborationService) {
				svc.On("Close", mock.Anything, projectID).Return(nil, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockCollaborationService{}
			tt.setup(mockService)

			handler := NewCollaborationHandler(mockService)
			router := setupCollabRouter()
			router.POST("/collaborations/:project_id/close", handler.CloseCollaboration)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/collaborations/"+projectID.String()+"/close", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestCollaborationHandler_UpdateCollaborationStatus(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name           string
		status         string
		setup          func(*MockCollaborationService)
		expectedStatus int
	}{
		{
			name:   "reopen",
			status: model.StatusOpen,
			setup: func(svc *MockCollaborationService) {
				svc.On("UpdateStatus", mock.Anything, projectID, model.StatusOpen).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "unknown status",
			status: "Archived",
			setup: func(svc *MockCollaborationService) {
				svc.On("UpdateStatus", mock.Anything, projectID, "Archived").Return(service.ErrUnknownStatus)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "not owner",
			status: model.StatusClosed,
			setup: func(svc *MockCollaborationService) {
				svc.On("UpdateStatus", mock.Anything, projectID, model.StatusClosed).Return(service.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockCollaborationService{}
			tt.setup(mockService)

			handler := NewCollaborationHandler(mockService)
			router := setupCollabRouter()
			router.PUT("/collaborations/:project_id/status", handler.UpdateCollaborationStatus)

			body, _ := json.Marshal(UpdateStatusReq{Status: tt.status})
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPut, "/collaborations/"+projectID.String()+"/status", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
