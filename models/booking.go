package models

import "time"

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// Payment methods and statuses stored on an appointment.
const (
	PaymentOnline   = "online"
	PaymentInPerson = "in_person"

	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentFailed  = "failed"
)

// Appointment represents a booked visit.
type Appointment struct {
	ID                    string               `bson:"id" json:"id"`
	UserID                string               `bson:"userId" json:"userId"`
	StaffID               string               `bson:"staffId" json:"staffId"`
	Date                  string               `bson:"date" json:"date"`           // "2006-01-02"
	StartTime             string               `bson:"startTime" json:"startTime"` // "15:04"
	EndTime               string               `bson:"endTime" json:"endTime"`
	Services              []AppointmentService `bson:"services" json:"services"`
	Products              []AppointmentProduct `bson:"products,omitempty" json:"products,omitempty"`
	TotalPrice            int64                `bson:"totalPrice" json:"totalPrice"` // cents, after discounts
	TotalDuration         int                  `bson:"totalDuration" json:"totalDuration"`
	Status                string               `bson:"status" json:"status"`
	PaymentMethod         string               `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus         string               `bson:"paymentStatus" json:"paymentStatus"`
	StripePaymentIntentID string               `bson:"stripePaymentIntentId,omitempty" json:"stripePaymentIntentId,omitempty"`
	PointsRedeemed        int                  `bson:"pointsRedeemed,omitempty" json:"pointsRedeemed,omitempty"`
	Notes                 string               `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt             time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentService snapshots a service at booking time.
type AppointmentService struct {
	ServiceID   string `bson:"serviceId" json:"serviceId"`
	ServiceName string `bson:"serviceName" json:"serviceName"`
	Price       int64  `bson:"price" json:"price"`
	DurationMin int    `bson:"durationMin" json:"durationMin"`
}

// AppointmentProduct snapshots a product line at booking time.
type AppointmentProduct struct {
	ProductID   string `bson:"productId" json:"productId"`
	ProductName string `bson:"productName" json:"productName"`
	Price       int64  `bson:"price" json:"price"`
	Quantity    int    `bson:"quantity" json:"quantity"`
}

// IsValidStatus reports whether s is a known appointment status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
