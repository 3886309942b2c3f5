package models

import "time"

// Customer note types.
const (
	NoteColorFormula = "color_formula"
	NoteAllergy      = "allergy"
	NotePreference   = "preference"
	NoteGeneral      = "general"
)

// CustomerNote is an internal staff note about a customer.
type CustomerNote struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	NoteType  string    `bson:"noteType" json:"noteType"`
	Content   string    `bson:"content" json:"content"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// IsValidNoteType reports whether t is a known note type.
func IsValidNoteType(t string) bool {
	switch t {
	case NoteColorFormula, NoteAllergy, NotePreference, NoteGeneral:
		return true
	}
	return false
}

// NoteRequest is the payload for adding a customer note.
type NoteRequest struct {
	NoteType string `json:"noteType" binding:"required,oneof=color_formula allergy preference general"`
	Content  string `json:"content" binding:"required,max=2000"`
}

// StatusUpdateRequest changes an appointment's status from the back office.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled no_show"`
}

// ServiceActiveRequest shows or hides a service in the catalogue.
type ServiceActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
