package models

// Legal document audiences.
const (
	AudienceCustomer = "customer"
	AudienceStaff    = "staff"
	AudienceAll      = "all"
)

// LegalSection is a policy document shown in the app.
type LegalSection struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Audience string `json:"audience"`
	Version  string `json:"version"`
	Updated  string `json:"updated"`
}
