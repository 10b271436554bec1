package waitlist

import (
	"errors"
	"net/http"

	"courtly/internal/courts"
	"courtly/internal/shared/middleware"
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

func authenticatedUser(ctx *gin.Context) (uuid.UUID, bool) {
	raw, ok := middleware.GetUserID(ctx)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (c *Controller) Join(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, "missing user identity")
		return
	}

	var req JoinWaitlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	entry, err := c.service.Join(ctx.Request.Context(), userID, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidTimeRange):
			statusCode = http.StatusBadRequest
		case errors.Is(err, ErrAlreadyQueued):
			statusCode = http.StatusConflict
		case errors.Is(err, courts.ErrCourtNotFound):
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to join waitlist", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Joined waitlist successfully", entry, nil)
}

func (c *Controller) Leave(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, "missing user identity")
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid waitlist entry ID", nil, err.Error())
		return
	}

	if err := c.service.Leave(ctx.Request.Context(), userID, id); err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrEntryNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrNotEntryOwner):
			statusCode = http.StatusForbidden
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to leave waitlist", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Left waitlist successfully", nil, nil)
}

func (c *Controller) GetMyEntries(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, "missing user identity")
		return
	}

	entries, err := c.service.GetUserEntries(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get waitlist entries", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Waitlist entries retrieved successfully", entries, nil)
}

// GetCourtEntries lists a court's waitlist for one date, admin only
func (c *Controller) GetCourtEntries(ctx *gin.Context) {
	courtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid court ID", nil, err.Error())
		return
	}

	dateStr := ctx.Query("date")
	if dateStr == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Date is required", nil, "missing date query parameter")
		return
	}

	entries, err := c.service.GetForCourtDate(ctx.Request.Context(), courtID, dateStr)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidDate) {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get waitlist entries", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Waitlist entries retrieved successfully", entries, nil)
}
