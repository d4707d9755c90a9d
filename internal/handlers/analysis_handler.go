package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apierrors "github.com/nickgiulioni1/offleash-api/internal/errors"
	"github.com/nickgiulioni1/offleash-api/internal/middleware"
	"github.com/nickgiulioni1/offleash-api/internal/models"
	"github.com/nickgiulioni1/offleash-api/internal/repository"
	"github.com/nickgiulioni1/offleash-api/internal/services"
)

// AnalysisHandler handles saved-analysis HTTP requests.
type AnalysisHandler struct {
	service services.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler instance.
func NewAnalysisHandler(service services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
	}
}

// CreateAnalysisRequest represents the body for creating an analysis.
type CreateAnalysisRequest struct {
	Name     string          `json:"name" binding:"omitempty,max=255"`
	Strategy string          `json:"strategy" binding:"required,oneof=BUY_HOLD BRRRR FLIP"`
	Payload  json.RawMessage `json:"payload" binding:"required"`
	Summary  json.RawMessage `json:"summary"`
	Version  *string         `json:"version" binding:"omitempty,max=20"`
}

// UpdateAnalysisRequest represents the body for a partial update. Omitted
// fields are left unchanged.
type UpdateAnalysisRequest struct {
	Name     *string         `json:"name" binding:"omitempty,max=255"`
	Strategy *string         `json:"strategy" binding:"omitempty,oneof=BUY_HOLD BRRRR FLIP"`
	Payload  json.RawMessage `json:"payload"`
	Summary  json.RawMessage `json:"summary"`
	Version  *string         `json:"version" binding:"omitempty,max=20"`
}

// ListAnalysesRequest represents the query parameters for the list endpoint.
type ListAnalysesRequest struct {
	Q        string `form:"q" binding:"omitempty,max=255"`
	Strategy string `form:"strategy" binding:"omitempty,oneof=BUY_HOLD BRRRR FLIP"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

// ListAnalysesResponse represents the paged list response.
type ListAnalysesResponse struct {
	Analyses []models.Analysis `json:"analyses"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// Create handles POST /api/v1/analyses.
func (h *AnalysisHandler) Create(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	if log != nil {
		log.Info("Creating analysis", map[string]interface{}{
			"strategy": req.Strategy,
		})
	}

	analysis, err := h.service.Create(c.Request.Context(), services.CreateAnalysisInput{
		Name:     req.Name,
		Strategy: req.Strategy,
		Payload:  req.Payload,
		Summary:  req.Summary,
		Version:  req.Version,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidStrategy) || errors.Is(err, services.ErrEmptyPayload) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to save analysis", err)
		return
	}

	c.JSON(http.StatusCreated, analysis)
}

// List handles GET /api/v1/analyses.
func (h *AnalysisHandler) List(c *gin.Context) {
	var req ListAnalysesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	const defaultPageSize = 50
	if req.Limit == 0 {
		req.Limit = defaultPageSize
	}

	analyses, total, err := h.service.List(c.Request.Context(), repository.ListFilter{
		Query:    req.Q,
		Strategy: req.Strategy,
		Limit:    req.Limit,
		Offset:   req.Offset,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidStrategy) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to list analyses", err)
		return
	}

	c.JSON(http.StatusOK, ListAnalysesResponse{
		Analyses: analyses,
		Total:    total,
		Limit:    req.Limit,
		Offset:   req.Offset,
	})
}

// Get handles GET /api/v1/analyses/:id.
func (h *AnalysisHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	analysis, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrAnalysisNotFound) {
			apierrors.NotFound(c, "Analysis not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to fetch analysis", err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// Update handles PUT /api/v1/analyses/:id.
func (h *AnalysisHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	analysis, err := h.service.Update(c.Request.Context(), id, services.UpdateAnalysisInput{
		Name:     req.Name,
		Strategy: req.Strategy,
		Payload:  req.Payload,
		Summary:  req.Summary,
		Version:  req.Version,
	})
	if err != nil {
		if errors.Is(err, services.ErrAnalysisNotFound) {
			apierrors.NotFound(c, "Analysis not found")
			return
		}
		if errors.Is(err, services.ErrInvalidStrategy) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to update analysis", err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// Delete handles DELETE /api/v1/analyses/:id.
func (h *AnalysisHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrAnalysisNotFound) {
			apierrors.NotFound(c, "Analysis not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to delete analysis", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID extracts and validates the :id path parameter. On failure it writes
// the error response and returns false.
func (h *AnalysisHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid analysis ID", map[string]interface{}{
			"id": c.Param("id"),
		})
		return uuid.Nil, false
	}
	return id, true
}
