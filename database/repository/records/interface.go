package recordsRepo

import (
	"context"

	"salonbook/models"
)

// LoyaltyHistoryRepository is the append-only log of point changes.
type LoyaltyHistoryRepository interface {
	Create(ctx context.Context, entry *models.LoyaltyEntry) error
	// ListByUser returns entries newest first, up to limit (0 means no limit).
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.LoyaltyEntry, error)
}

// NoteRepository stores staff notes about customers.
type NoteRepository interface {
	Create(ctx context.Context, note *models.CustomerNote) error
	ListByUser(ctx context.Context, userID string) ([]models.CustomerNote, error)
}
