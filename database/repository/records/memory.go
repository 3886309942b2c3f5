package recordsRepo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"salonbook/models"
)

// MemoryLoyaltyHistory is an in-memory LoyaltyHistoryRepository.
type MemoryLoyaltyHistory struct {
	mu      sync.Mutex
	entries []models.LoyaltyEntry
}

func NewMemoryLoyaltyHistory() *MemoryLoyaltyHistory {
	return &MemoryLoyaltyHistory{}
}

func (m *MemoryLoyaltyHistory) Create(_ context.Context, entry *models.LoyaltyEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MemoryLoyaltyHistory) ListByUser(_ context.Context, userID string, limit int64) ([]models.LoyaltyEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.LoyaltyEntry{}
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].UserID != userID {
			continue
		}
		out = append(out, m.entries[i])
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

// MemoryNotes is an in-memory NoteRepository.
type MemoryNotes struct {
	mu    sync.Mutex
	notes []models.CustomerNote
}

func NewMemoryNotes() *MemoryNotes {
	return &MemoryNotes{}
}

func (m *MemoryNotes) Create(_ context.Context, note *models.CustomerNote) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	note.CreatedAt = time.Now()
	m.notes = append(m.notes, *note)
	return nil
}

func (m *MemoryNotes) ListByUser(_ context.Context, userID string) ([]models.CustomerNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.CustomerNote{}
	for i := len(m.notes) - 1; i >= 0; i-- {
		if m.notes[i].UserID == userID {
			out = append(out, m.notes[i])
		}
	}
	return out, nil
}
