package coaches

import (
	"net/http"

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

func (c *Controller) GetCoaches(ctx *gin.Context) {
	coaches, err := c.service.GetActiveCoaches(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get coaches", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Coaches retrieved successfully", coaches, nil)
}

func (c *Controller) GetCoach(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid coach ID", nil, err.Error())
		return
	}

	coach, err := c.service.GetCoach(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrCoachNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get coach", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Coach retrieved successfully", coach, nil)
}

// GetCoachAvailability returns a coach's weekly availability windows
func (c *Controller) GetCoachAvailability(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid coach ID", nil, err.Error())
		return
	}

	coach, err := c.service.GetCoach(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrCoachNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get coach availability", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Coach availability retrieved successfully", coach.Availability, nil)
}

// GetEligibleCoaches returns the active coaches whose weekly availability
// covers the requested booking window.
func (c *Controller) GetEligibleCoaches(ctx *gin.Context) {
	var query EligibleCoachesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	coaches, err := c.service.GetEligibleCoaches(ctx.Request.Context(), query)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrInvalidDate {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get eligible coaches", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Eligible coaches retrieved successfully", coaches, nil)
}

func (c *Controller) CreateCoach(ctx *gin.Context) {
	var req CreateCoachRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	coach, err := c.service.CreateCoach(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create coach", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Coach created successfully", coach, nil)
}

func (c *Controller) UpdateCoach(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid coach ID", nil, err.Error())
		return
	}

	var req UpdateCoachRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	coach, err := c.service.UpdateCoach(ctx.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch err {
		case ErrCoachNotFound:
			statusCode = http.StatusNotFound
		case ErrInvalidDayOfWeek, ErrInvalidTimeRange:
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update coach", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Coach updated successfully", coach, nil)
}

func (c *Controller) DeactivateCoach(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid coach ID", nil, err.Error())
		return
	}

	if err := c.service.DeactivateCoach(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrCoachNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to deactivate coach", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Coach deactivated successfully", nil, nil)
}
