package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/models"
)

func (a *DefaultAdminService) ListNotes(ctx context.Context, userID string) ([]models.CustomerNote, error) {
	notes, err := a.Notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// AddNote records a staff note about an existing customer.
func (a *DefaultAdminService) AddNote(ctx context.Context, adminID, userID string, req models.NoteRequest) (*models.CustomerNote, error) {
	content := strings.TrimSpace(req.Content)
	if !models.IsValidNoteType(req.NoteType) {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidNote, req.NoteType)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidNote)
	}

	if _, err := a.Profiles.GetByID(ctx, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	note := &models.CustomerNote{
		UserID:    userID,
		NoteType:  req.NoteType,
		Content:   content,
		CreatedBy: adminID,
	}
	if err := a.Notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}
	return note, nil
}
