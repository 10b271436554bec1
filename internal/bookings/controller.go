package bookings

import (
	"errors"
	"net/http"

	"courtly/internal/coaches"
	"courtly/internal/courts"
	"courtly/internal/pricing"
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

func (c *Controller) CreateBooking(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, "missing user identity")
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), userID, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrSlotConflict):
			statusCode = http.StatusConflict
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrPastDate),
			errors.Is(err, ErrInvalidTimeRange), errors.Is(err, ErrCourtInactive),
			errors.Is(err, ErrCoachUnavailable), errors.Is(err, pricing.ErrUnknownEquipment),
			errors.Is(err, pricing.ErrMalformedTime), errors.Is(err, pricing.ErrNonPositiveDuration):
			statusCode = http.StatusBadRequest
		case errors.Is(err, courts.ErrCourtNotFound), errors.Is(err, coaches.ErrCoachNotFound):
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to create booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

func (c *Controller) GetBooking(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, "missing user identity")
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), userID, middleware.IsAdmin(ctx), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrBookingNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrNotBookingOwner):
			statusCode = http.StatusForbidden
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

func (c *Controller) GetMyBookings(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, "missing user identity")
		return
	}

	var query ListBookingsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	page, err := c.service.GetUserBookings(ctx.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get bookings", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", page, nil)
}

func (c *Controller) CancelBooking(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, "missing user identity")
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	booking, err := c.service.CancelBooking(ctx.Request.Context(), userID, middleware.IsAdmin(ctx), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrBookingNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrNotBookingOwner):
			statusCode = http.StatusForbidden
		case errors.Is(err, ErrNotCancellable):
			statusCode = http.StatusConflict
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to cancel booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

// GetCourtAvailability returns the hourly slot grid for a court and date
func (c *Controller) GetCourtAvailability(ctx *gin.Context) {
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

	availability, err := c.service.GetAvailability(ctx.Request.Context(), courtID, dateStr)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrInvalidDate):
			statusCode = http.StatusBadRequest
		case errors.Is(err, courts.ErrCourtNotFound):
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get availability", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Availability retrieved successfully", availability, nil)
}
