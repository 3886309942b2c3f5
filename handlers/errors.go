package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/services/admin"
	"salonbook/services/booking"
	"salonbook/services/catalog"
	"salonbook/services/loyalty"
	"salonbook/services/payment"
	"salonbook/services/user"
	"salonbook/utils"
)

// statusFor maps service errors to HTTP status codes. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrInvalidRequest),
		errors.Is(err, booking.ErrInvalidCheckout),
		errors.Is(err, catalog.ErrInvalidService),
		errors.Is(err, catalog.ErrInvalidGender),
		errors.Is(err, user.ErrWeakPassword),
		errors.Is(err, user.ErrInvalidProfile),
		errors.Is(err, admin.ErrInvalidStatus),
		errors.Is(err, admin.ErrInvalidNote),
		errors.Is(err, admin.ErrInvalidSchedule),
		errors.Is(err, loyalty.ErrInvalidPoints),
		errors.Is(err, payment.ErrAmountTooSmall),
		errors.Is(err, payment.ErrAmountTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, booking.ErrStaffNotFound),
		errors.Is(err, booking.ErrServiceNotFound),
		errors.Is(err, booking.ErrProductNotFound),
		errors.Is(err, booking.ErrAppointmentNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, user.ErrProfileNotFound),
		errors.Is(err, admin.ErrAppointmentNotFound),
		errors.Is(err, admin.ErrCustomerNotFound),
		errors.Is(err, admin.ErrStaffNotFound):
		return http.StatusNotFound
	case errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, booking.ErrCheckoutInProgress),
		errors.Is(err, booking.ErrNotCancellable),
		errors.Is(err, booking.ErrNotAwaitingPayment),
		errors.Is(err, booking.ErrPaymentIntentUsed):
		return http.StatusConflict
	case errors.Is(err, loyalty.ErrInsufficientPoints),
		errors.Is(err, booking.ErrPaymentNotVerified):
		return http.StatusUnprocessableEntity
	case errors.Is(err, payment.ErrProviderDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError writes err as a JSON error. Server errors are logged and their details hidden.
func respondError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
		utils.JSONError(c, status, msg, "")
		return
	}
	utils.JSONError(c, status, msg, err.Error())
}

// invalidParam reports a malformed query or path parameter.
func invalidParam(c *gin.Context, details string) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", details)
}

// badRequest reports a binding failure.
func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
}
