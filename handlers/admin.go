package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/services/admin"
	"salonbook/services/catalog"
)

// AdminHandler encapsulates back-office operations.
type AdminHandler struct {
	Admin   admin.AdminService
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as admin.AdminService, cs catalog.CatalogService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Admin: as, Catalog: cs, Logger: logger}
}

// CalendarHandler handles GET /api/admin/calendar?date=.
func (h *AdminHandler) CalendarHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		invalidParam(c, "date is required")
		return
	}
	appts, err := h.Admin.Calendar(c.Request.Context(), date)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to load calendar", err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListAppointmentsHandler handles GET /api/admin/appointments?limit=.
func (h *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			invalidParam(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	appts, err := h.Admin.ListAppointments(c.Request.Context(), limit)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to list appointments", err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AdminHandler) UpdateStatusHandler(c *gin.Context) {
	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	appt, err := h.Admin.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to update appointment", err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AdminHandler) ListNotesHandler(c *gin.Context) {
	notes, err := h.Admin.ListNotes(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to list notes", err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *AdminHandler) AddNoteHandler(c *gin.Context) {
	var req models.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	note, err := h.Admin.AddNote(c.Request.Context(), currentUserID(c), c.Param("userId"), req)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to add note", err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// ListServicesHandler includes inactive services.
func (h *AdminHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Catalog.ListAllServices(c.Request.Context())
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to list services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *AdminHandler) CreateServiceHandler(c *gin.Context) {
	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	service, err := h.Catalog.CreateService(c.Request.Context(), req)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to create service", err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (h *AdminHandler) UpdateServiceHandler(c *gin.Context) {
	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	service, err := h.Catalog.UpdateService(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to update service", err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *AdminHandler) SetServiceActiveHandler(c *gin.Context) {
	var req models.ServiceActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	service, err := h.Catalog.SetServiceActive(c.Request.Context(), c.Param("id"), *req.Active)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to change service visibility", err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *AdminHandler) GetScheduleHandler(c *gin.Context) {
	sched, err := h.Admin.GetSchedule(c.Request.Context(), c.Param("staffId"))
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to load schedule", err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

// PutScheduleHandler replaces the staff member's weekly hours and overrides.
func (h *AdminHandler) PutScheduleHandler(c *gin.Context) {
	var req models.StaffSchedule
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.StaffID = c.Param("staffId")
	sched, err := h.Admin.UpsertSchedule(c.Request.Context(), req)
	if err != nil {
		respondError(c, getLogger(c, h.Logger), "Failed to save schedule", err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

// LegalHandler handles GET /api/legal?audience=customer|staff. Without audience every
// document is returned.
func (h *AdminHandler) LegalHandler(c *gin.Context) {
	audience := c.Query("audience")
	switch audience {
	case "":
		c.JSON(http.StatusOK, h.Admin.LegalSections())
	case models.AudienceCustomer, models.AudienceStaff:
		c.JSON(http.StatusOK, h.Admin.LegalSectionsFor(audience))
	default:
		invalidParam(c, "audience must be customer or staff")
	}
}
