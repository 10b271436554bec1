package courts

import (
	"net/http"

	"courtly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) GetCourts(ctx *gin.Context) {
	courts, err := c.service.GetActiveCourts(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get courts", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Courts retrieved successfully", courts, nil)
}

func (c *Controller) GetCourt(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Court ID is required", nil, "missing court ID")
		return
	}

	court, err := c.service.GetCourtByID(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrCourtNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get court", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Court retrieved successfully", court, nil)
}

func (c *Controller) CreateCourt(ctx *gin.Context) {
	var req CreateCourtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	court, err := c.service.CreateCourt(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create court", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Court created successfully", court, nil)
}

func (c *Controller) UpdateCourt(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Court ID is required", nil, "missing court ID")
		return
	}

	var req UpdateCourtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	court, err := c.service.UpdateCourt(ctx.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrCourtNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update court", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Court updated successfully", court, nil)
}

func (c *Controller) DeactivateCourt(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Court ID is required", nil, "missing court ID")
		return
	}

	err := c.service.DeactivateCourt(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrCourtNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to deactivate court", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Court deactivated successfully", nil, nil)
}
