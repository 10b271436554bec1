package equipment

import (
	"net/http"

	"courtly/internal/shared/utils/response"

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
		validator: validator.New(),
	}
}

func (c *Controller) GetEquipment(ctx *gin.Context) {
	items, err := c.service.GetActiveEquipment(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get equipment", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Equipment retrieved successfully", items, nil)
}

func (c *Controller) GetEquipmentByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid equipment ID", nil, err.Error())
		return
	}

	item, err := c.service.GetEquipment(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrEquipmentNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get equipment", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Equipment retrieved successfully", item, nil)
}

func (c *Controller) CreateEquipment(ctx *gin.Context) {
	var req CreateEquipmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	item, err := c.service.CreateEquipment(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create equipment", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Equipment created successfully", item, nil)
}

func (c *Controller) UpdateEquipment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid equipment ID", nil, err.Error())
		return
	}

	var req UpdateEquipmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	item, err := c.service.UpdateEquipment(ctx.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrEquipmentNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update equipment", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Equipment updated successfully", item, nil)
}

func (c *Controller) DeactivateEquipment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid equipment ID", nil, err.Error())
		return
	}

	if err := c.service.DeactivateEquipment(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if err == ErrEquipmentNotFound {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to deactivate equipment", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Equipment deactivated successfully", nil, nil)
}
