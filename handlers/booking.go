package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/services/booking"
	"salonbook/services/payment"
)

// BookingHandler serves slots, the cart, checkout and the customer's appointments.
type BookingHandler struct {
	Availability booking.AvailabilityService
	Cart         booking.CartService
	Checkout     booking.CheckoutService
	Appointments booking.AppointmentService
	Payments     payment.Gateway
	Logger       *zap.Logger
}

// SlotsHandler handles GET /api/booking/slots?staffId=&date=&serviceIds=a,b.
func (h *BookingHandler) SlotsHandler(c *gin.Context) {
	serviceIDs := splitIDs(c.Query("serviceIds"))
	result, err := h.Availability.GetAvailableSlots(c.Request.Context(), c.Query("staffId"), c.Query("date"), serviceIDs)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to compute availability", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func splitIDs(raw string) []string {
	ids := []string{}
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (h *BookingHandler) GetCartHandler(c *gin.Context) {
	cart, err := h.Cart.Get(c.Request.Context(), currentUserID(c))
	h.respondCart(c, cart, err)
}

func (h *BookingHandler) ResetCartHandler(c *gin.Context) {
	if err := h.Cart.Reset(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to reset cart", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) AddCartServiceHandler(c *gin.Context) {
	var req models.CartServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cart, err := h.Cart.AddService(c.Request.Context(), currentUserID(c), req.ServiceID)
	h.respondCart(c, cart, err)
}

func (h *BookingHandler) RemoveCartServiceHandler(c *gin.Context) {
	cart, err := h.Cart.RemoveService(c.Request.Context(), currentUserID(c), c.Param("id"))
	h.respondCart(c, cart, err)
}

func (h *BookingHandler) AddCartProductHandler(c *gin.Context) {
	var req models.CartProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cart, err := h.Cart.AddProduct(c.Request.Context(), currentUserID(c), req.ProductID)
	h.respondCart(c, cart, err)
}

func (h *BookingHandler) RemoveCartProductHandler(c *gin.Context) {
	cart, err := h.Cart.RemoveProduct(c.Request.Context(), currentUserID(c), c.Param("id"))
	h.respondCart(c, cart, err)
}

// SetCartScheduleHandler handles PUT /api/cart/schedule.
func (h *BookingHandler) SetCartScheduleHandler(c *gin.Context) {
	var req models.CartScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cart, err := h.Cart.SetSchedule(c.Request.Context(), currentUserID(c), req.StaffID, req.Date, req.StartTime)
	h.respondCart(c, cart, err)
}

func (h *BookingHandler) respondCart(c *gin.Context, cart *models.Cart, err error) {
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Cart update failed", err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// QuoteHandler prices a checkout without booking it.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.UserID = currentUserID(c)

	quote, err := h.Checkout.Quote(c.Request.Context(), req)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to price booking", err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CheckoutHandler books the appointment. A pay_now booking without a paid intent comes back
// with the intent to present; it is confirmed through ConfirmPaymentHandler.
func (h *BookingHandler) CheckoutHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.UserID = currentUserID(c)

	result, err := h.Checkout.Checkout(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Booking failed", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// CreatePaymentIntentHandler handles POST /api/payments/intent.
func (h *BookingHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := payment.ValidateAmount(req.Amount); err != nil {
		respondError(c, getLogger(c, h.Logger), "Invalid amount", err)
		return
	}
	if req.Metadata == nil {
		req.Metadata = map[string]string{}
	}
	req.Metadata["userId"] = currentUserID(c)

	intent, err := h.Payments.CreatePaymentIntent(c.Request.Context(), req)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to create payment intent", err)
		return
	}
	c.JSON(http.StatusOK, intent)
}

func (h *BookingHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Appointments.ListAppointments(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to list appointments", err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	appt, err := h.Appointments.CancelAppointment(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to cancel appointment", err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ConfirmPaymentHandler handles POST /api/appointments/:id/confirm-payment.
func (h *BookingHandler) ConfirmPaymentHandler(c *gin.Context) {
	confirmation, err := h.Appointments.ConfirmPayment(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Payment confirmation failed", err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}
