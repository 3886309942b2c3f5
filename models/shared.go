package models

// AppointmentTaskPayload is the body of a background task about one appointment.
type AppointmentTaskPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	FireDate      string `json:"fireDate"` // RFC 3339
}
