package pricing

import (
	"net/http"

	"courtly/internal/coaches"
	"courtly/internal/courts"
	"courtly/internal/equipment"
	"courtly/internal/shared/utils/response"
	"courtly/internal/shared/utils/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validation.New(),
	}
}

func (c *Controller) GetRules(ctx *gin.Context) {
	rules, err := c.service.GetActiveRules(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get pricing rules", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pricing rules retrieved successfully", rules, nil)
}

func (c *Controller) GetAllRules(ctx *gin.Context) {
	rules, err := c.service.GetAllRules(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get pricing rules", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pricing rules retrieved successfully", rules, nil)
}

func (c *Controller) CreateRule(ctx *gin.Context) {
	var req CreatePricingRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	rule, err := c.service.CreateRule(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create pricing rule", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Pricing rule created successfully", rule, nil)
}

func (c *Controller) UpdateRule(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid pricing rule ID", nil, err.Error())
		return
	}

	var req UpdatePricingRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	rule, err := c.service.UpdateRule(ctx.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrRuleNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update pricing rule", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pricing rule updated successfully", rule, nil)
}

func (c *Controller) DeleteRule(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid pricing rule ID", nil, err.Error())
		return
	}

	if err := c.service.DeleteRule(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrRuleNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete pricing rule", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pricing rule deleted successfully", nil, nil)
}

// Quote returns the itemized price for a prospective booking
func (c *Controller) Quote(ctx *gin.Context) {
	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	breakdown, err := c.service.Quote(ctx.Request.Context(), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch err {
		case ErrInvalidDate, ErrMalformedTime, ErrNonPositiveDuration, ErrUnknownEquipment:
			statusCode = http.StatusBadRequest
		case courts.ErrCourtNotFound, equipment.ErrEquipmentNotFound, coaches.ErrCoachNotFound:
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to compute quote", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Quote computed successfully", breakdown, nil)
}
