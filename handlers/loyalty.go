package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/services/booking"
	"salonbook/services/loyalty"
)

const defaultHistoryLimit = 50

// LoyaltyHandler serves the points balance and history.
type LoyaltyHandler struct {
	Loyalty *loyalty.Service
	Logger  *zap.Logger
}

func (h *LoyaltyHandler) SummaryHandler(c *gin.Context) {
	summary, err := h.Loyalty.Summary(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to load loyalty summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// HistoryHandler handles GET /api/loyalty/history?limit=.
func (h *LoyaltyHandler) HistoryHandler(c *gin.Context) {
	limit := int64(defaultHistoryLimit)
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			invalidParam(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := h.Loyalty.History(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to load loyalty history", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// RedeemHandler checks that the balance covers the points and reports their value. The points are
// deducted by checkout.
func (h *LoyaltyHandler) RedeemHandler(c *gin.Context) {
	var req models.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	userID := currentUserID(c)
	if err := h.Loyalty.CheckRedeemable(c.Request.Context(), userID, req.Points); err != nil {
		respondError(c, getLogger(c, h.Logger), "Points cannot be redeemed", err)
		return
	}
	summary, err := h.Loyalty.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to load loyalty summary", err)
		return
	}

	discount := loyalty.PointsDiscount(req.Points)
	c.JSON(http.StatusOK, models.RedeemPreview{
		Points:   req.Points,
		Discount: discount,
		Display:  booking.FormatEuro(discount),
		Balance:  summary.Points,
	})
}
