package appointmentRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/models"
)

// MemoryAppointmentRepo keeps appointments in process memory. Used in tests and demo mode.
type MemoryAppointmentRepo struct {
	mu    sync.RWMutex
	appts []models.Appointment
}

func NewMemoryAppointmentRepo(seed ...models.Appointment) *MemoryAppointmentRepo {
	return &MemoryAppointmentRepo{appts: append([]models.Appointment(nil), seed...)}
}

func (m *MemoryAppointmentRepo) Create(_ context.Context, appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if appt.StripePaymentIntentID != "" {
		for _, a := range m.appts {
			if a.StripePaymentIntentID == appt.StripePaymentIntentID {
				return fmt.Errorf("intent %s: %w", appt.StripePaymentIntentID, ErrDuplicatePaymentIntent)
			}
		}
	}
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	m.appts = append(m.appts, *appt)
	return nil
}

func (m *MemoryAppointmentRepo) GetByPaymentIntent(_ context.Context, intentID string) (*models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.appts {
		if intentID != "" && a.StripePaymentIntentID == intentID {
			a := a
			return &a, nil
		}
	}
	return nil, fmt.Errorf("appointment for intent %s: %w", intentID, mongo.ErrNoDocuments)
}

func (m *MemoryAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.appts {
		if a.ID == id {
			a := a
			return &a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s: %w", id, mongo.ErrNoDocuments)
}

func (m *MemoryAppointmentRepo) ListByUser(_ context.Context, userID string) ([]models.Appointment, error) {
	out := m.filter(func(a models.Appointment) bool { return a.UserID == userID })
	sort.SliceStable(out, func(i, j int) bool { return sortKey(out[i]) > sortKey(out[j]) })
	return out, nil
}

func (m *MemoryAppointmentRepo) ListByDate(_ context.Context, date string) ([]models.Appointment, error) {
	out := m.filter(func(a models.Appointment) bool { return a.Date == date })
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (m *MemoryAppointmentRepo) ListAll(_ context.Context, limit int64) ([]models.Appointment, error) {
	out := m.filter(func(models.Appointment) bool { return true })
	sort.SliceStable(out, func(i, j int) bool { return sortKey(out[i]) > sortKey(out[j]) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryAppointmentRepo) ListActiveByStaffAndDate(_ context.Context, staffID, date string) ([]models.Appointment, error) {
	out := m.filter(func(a models.Appointment) bool {
		return a.StaffID == staffID && a.Date == date && isActive(a.Status)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (m *MemoryAppointmentRepo) UpdateStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.appts {
		if m.appts[i].ID == id {
			m.appts[i].Status = status
			m.appts[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("appointment %s: %w", id, mongo.ErrNoDocuments)
}

func (m *MemoryAppointmentRepo) SettlePayment(_ context.Context, id, status, paymentStatus string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.appts {
		a := &m.appts[i]
		if a.ID != id {
			continue
		}
		if a.Status != models.StatusPending || a.PaymentStatus != models.PaymentPending {
			return false, nil
		}
		a.Status = status
		a.PaymentStatus = paymentStatus
		a.UpdatedAt = time.Now()
		return true, nil
	}
	return false, fmt.Errorf("appointment %s: %w", id, mongo.ErrNoDocuments)
}

func (m *MemoryAppointmentRepo) filter(keep func(models.Appointment) bool) []models.Appointment {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Appointment{}
	for _, a := range m.appts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func sortKey(a models.Appointment) string { return a.Date + " " + a.StartTime }

func isActive(status string) bool {
	for _, s := range ActiveStatuses {
		if s == status {
			return true
		}
	}
	return false
}
