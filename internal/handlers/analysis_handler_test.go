package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "github.com/nickgiulioni1/offleash-api/internal/errors"
	"github.com/nickgiulioni1/offleash-api/internal/logger"
	"github.com/nickgiulioni1/offleash-api/internal/middleware"
	"github.com/nickgiulioni1/offleash-api/internal/models"
	"github.com/nickgiulioni1/offleash-api/internal/repository"
	"github.com/nickgiulioni1/offleash-api/internal/services"
)

// MockAnalysisService is a mock implementation of AnalysisService for testing
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Create(ctx context.Context, input services.CreateAnalysisInput) (*models.Analysis, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Analysis), args.Error(1)
}

func (m *MockAnalysisService) Get(ctx context.Context, id uuid.UUID) (*models.Analysis, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Analysis), args.Error(1)
}

func (m *MockAnalysisService) List(ctx context.Context, filter repository.ListFilter) ([]models.Analysis, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Analysis), args.Int(1), args.Error(2)
}

func (m *MockAnalysisService) Update(ctx context.Context, id uuid.UUID, input services.UpdateAnalysisInput) (*models.Analysis, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Analysis), args.Error(1)
}

func (m *MockAnalysisService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// setupAnalysisTestRouter creates a test router with middleware and analysis
// handlers backed by the given service.
func setupAnalysisTestRouter(service services.AnalysisService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New("test")
	handler := NewAnalysisHandler(service)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	v1 := router.Group("/api/v1")
	{
		analyses := v1.Group("/analyses")
		{
			analyses.POST("", handler.Create)
			analyses.GET("", handler.List)
			analyses.GET("/:id", handler.Get)
			analyses.PUT("/:id", handler.Update)
			analyses.DELETE("/:id", handler.Delete)
		}
	}

	return router
}

func TestCreateAnalysisEndpoint_Success(t *testing.T) {
	mockService := new(MockAnalysisService)
	router := setupAnalysisTestRouter(mockService)

	saved := &models.Analysis{
		ID:       uuid.New(),
		Name:     "Maple St duplex",
		Strategy: "BUY_HOLD",
		Payload:  json.RawMessage(`{"purchasePrice":250000}`),
	}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(input services.CreateAnalysisInput) bool {
		return input.Name == "Maple St duplex" && input.Strategy == "BUY_HOLD"
	})).Return(saved, nil)

	body := []byte(`{"name":"Maple St duplex","strategy":"BUY_HOLD","payload":{"purchasePrice":250000}}`)
	req, err := http.NewRequest(http.MethodPost, "/api/v1/analyses", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var response models.Analysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, saved.ID, response.ID)
	mockService.AssertExpectations(t)
}

func TestCreateAnalysisEndpoint_UnknownStrategy(t *testing.T) {
	mockService := new(MockAnalysisService)
	router := setupAnalysisTestRouter(mockService)

	body := []byte(`{"name":"Bad","strategy":"WHOLESALE","payload":{}}`)
	req, err := http.NewRequest(http.MethodPost, "/api/v1/analyses", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.ErrValidation, resp.Error.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestCreateAnalysisEndpoint_MissingPayload(t *testing.T) {
	mockService := new(MockAnalysisService)
	router := setupAnalysisTestRouter(mockService)

	body := []byte(`{"name":"No payload","strategy":"FLIP"}`)
	req, err := http.NewRequest(http.MethodPost, "/api/v1/analyses", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestListAnalysesEndpoint_DefaultsAndFilters(t *testing.T) {
	mockService := new(MockAnalysisService)
	router := setupAnalysisTestRouter(mockService)

	mockService.On("List", mock.Anything, repository.ListFilter{
		Query:    "maple",
		Strategy: "BRRRR",
		Limit:    50,
		Offset:   0,
	}).Return([]models.Analysis{{ID: uuid.New(), Name: "Maple St"}}, 1, nil)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/analyses?q=maple&strategy=BRRRR", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var response ListAnalysesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Total)
	assert.Equal(t, 50, response.Limit)
	assert.Len(t, response.Analyses, 1)
	mockService.AssertExpectations(t)
}

func TestListAnalysesEndpoint_InvalidStrategy(t *testing.T) {
	mockService := new(MockAnalysisService)
	router := setupAnalysisTestRouter(mockService)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/analyses?strategy=bogus", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "List")
}

func TestGetAnalysisEndpoint_Success(t *testing.T) {
	mockService := new(MockAnalysisService)
	router := setupAnalysisTestRouter(mockService)

	id := uuid.New()
	mockService.On("Get", mock.Anything, id).Return(&models.Analysis{ID: id, Name: "Found"}, nil)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/analyses/"+id.String(), nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response models.Analysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, id, response.ID)
	mockService.AssertExpectations(t)
}

func TestGetAnalysisEndpoint_InvalidID(t *testing.T) {
	mockService := new(MockAnalysisService)
	router := setupAnalysisTestRouter(mockService)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/analyses/not-a-uuid", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.ErrBadRequest, resp.Error.Code)
	mockService.AssertNotCalled(t, "Get")
}

func TestGetAnalysisEndpoint_NotFound(t *testing.T) {
	mockService := new(MockAnalysisService)
	router := setupAnalysisTestRouter(mockService)

	id := uuid.New()
	mockService.On("Get", mock.Anything, id).Return(nil, services.ErrAnalysisNotFound)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/analyses/"+id.String(), nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.ErrNotFound, resp.Error.Code)
}

func TestUpdateAnalysisEndpoint_Success(t *testing.T) {
	mockService := new(MockAnalysisService)
	router := setupAnalysisTestRouter(mockService)

	id := uuid.New()
	updated := &models.Analysis{ID: id, Name: "Renamed", Strategy: "FLIP"}
	mockService.On("Update", mock.Anything, id, mock.MatchedBy(func(input services.UpdateAnalysisInput) bool {
		return input.Name != nil && *input.Name == "Renamed" && input.Strategy == nil
	})).Return(updated, nil)

	body := []byte(`{"name":"Renamed"}`)
	req, err := http.NewRequest(http.MethodPut, "/api/v1/analyses/"+id.String(), bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	mockService.AssertExpectations(t)
}

func TestUpdateAnalysisEndpoint_NotFound(t *testing.T) {
	mockService := new(MockAnalysisService)
	router := setupAnalysisTestRouter(mockService)

	id := uuid.New()
	mockService.On("Update", mock.Anything, id, mock.Anything).Return(nil, services.ErrAnalysisNotFound)

	body := []byte(`{"name":"Ghost"}`)
	req, err := http.NewRequest(http.MethodPut, "/api/v1/analyses/"+id.String(), bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAnalysisEndpoint_Success(t *testing.T) {
	mockService := new(MockAnalysisService)
	router := setupAnalysisTestRouter(mockService)

	id := uuid.New()
	mockService.On("Delete", mock.Anything, id).Return(nil)

	req, err := http.NewRequest(http.MethodDelete, "/api/v1/analyses/"+id.String(), nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestDeleteAnalysisEndpoint_NotFound(t *testing.T) {
	mockService := new(MockAnalysisService)
	router := setupAnalysisTestRouter(mockService)

	id := uuid.New()
	mockService.On("Delete", mock.Anything, id).Return(services.ErrAnalysisNotFound)

	req, err := http.NewRequest(http.MethodDelete, "/api/v1/analyses/"+id.String(), nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
