package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/nickgiulioni1/offleash-api/internal/calculator"
	apierrors "github.com/nickgiulioni1/offleash-api/internal/errors"
	"github.com/nickgiulioni1/offleash-api/internal/middleware"
	"github.com/nickgiulioni1/offleash-api/internal/services"
)

// ProjectionHandler handles projection and rehab-estimate HTTP requests.
type ProjectionHandler struct {
	service services.ProjectionService
}

// NewProjectionHandler creates a new ProjectionHandler instance.
func NewProjectionHandler(service services.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{
		service: service,
	}
}

// RehabCatalogResponse lists the built-in rehab catalog.
type RehabCatalogResponse struct {
	Items []calculator.RehabItem `json:"items"`
	Count int                    `json:"count"`
}

// RehabEstimateRequest represents the body for pricing rehab selections.
type RehabEstimateRequest struct {
	Selections []calculator.RehabSelection `json:"selections" binding:"required"`
	Grade      calculator.RehabClass       `json:"grade" binding:"required,oneof=RENTAL FLIP RETAIL"`
}

// bindJSON binds the request body, writing the error response on failure.
func bindJSON(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return false
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return false
	}
	return true
}

// isProjectionInputError reports whether err is a caller mistake rather than
// an internal failure.
func isProjectionInputError(err error) bool {
	return errors.Is(err, services.ErrInvalidMonths) ||
		errors.Is(err, services.ErrInvalidLoanTerm) ||
		errors.Is(err, services.ErrInvalidPrice)
}

// BuyHold handles POST /api/v1/projections/buy-hold.
func (h *ProjectionHandler) BuyHold(c *gin.Context) {
	log := middleware.GetLogger(c)

	var inputs calculator.BuyHoldInputs
	if !bindJSON(c, &inputs) {
		return
	}

	if log != nil {
		log.Info("Processing buy-hold projection request", map[string]interface{}{
			"purchase_price": inputs.PurchasePrice,
			"months":         inputs.Months,
		})
	}

	outputs, err := h.service.BuyHold(c.Request.Context(), inputs)
	if err != nil {
		if isProjectionInputError(err) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to run projection", err)
		return
	}

	c.JSON(http.StatusOK, outputs)
}

// BRRRR handles POST /api/v1/projections/brrrr.
func (h *ProjectionHandler) BRRRR(c *gin.Context) {
	log := middleware.GetLogger(c)

	var inputs calculator.BRRRRInputs
	if !bindJSON(c, &inputs) {
		return
	}

	if log != nil {
		log.Info("Processing BRRRR projection request", map[string]interface{}{
			"purchase_price": inputs.PurchasePrice,
			"arv":            inputs.ARV,
			"months":         inputs.Months,
		})
	}

	result, err := h.service.BRRRR(c.Request.Context(), inputs)
	if err != nil {
		if isProjectionInputError(err) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to run projection", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Flip handles POST /api/v1/projections/flip.
func (h *ProjectionHandler) Flip(c *gin.Context) {
	var inputs calculator.FlipInputs
	if !bindJSON(c, &inputs) {
		return
	}

	result, err := h.service.Flip(c.Request.Context(), inputs)
	if err != nil {
		if isProjectionInputError(err) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to run projection", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// FlipDetailed handles POST /api/v1/projections/flip/detailed.
func (h *ProjectionHandler) FlipDetailed(c *gin.Context) {
	var inputs calculator.FlipInputs
	if !bindJSON(c, &inputs) {
		return
	}

	result, err := h.service.FlipDetailed(c.Request.Context(), inputs)
	if err != nil {
		if isProjectionInputError(err) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to run projection", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RehabCatalog handles GET /api/v1/rehab/catalog.
func (h *ProjectionHandler) RehabCatalog(c *gin.Context) {
	items := h.service.RehabCatalog(c.Request.Context())

	c.JSON(http.StatusOK, RehabCatalogResponse{
		Items: items,
		Count: len(items),
	})
}

// RehabEstimate handles POST /api/v1/rehab/estimate.
func (h *ProjectionHandler) RehabEstimate(c *gin.Context) {
	var req RehabEstimateRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.EstimateRehab(c.Request.Context(), req.Selections, req.Grade)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRehabGrade) || errors.Is(err, services.ErrUnknownRehabItem) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to estimate rehab cost", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
