package models

import "time"

// Cart holds a customer's in-progress selection between app screens.
type Cart struct {
	UserID        string    `json:"userId"`
	Services      []Service `json:"services"`
	Products      []Product `json:"products"`
	StaffID       string    `json:"staffId,omitempty"`
	SelectedDate  string    `json:"selectedDate,omitempty"`
	SelectedTime  string    `json:"selectedTime,omitempty"`
	TotalDuration int       `json:"totalDuration"`
	CartTotal     int64     `json:"cartTotal"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CartServiceRequest adds a service to the cart.
type CartServiceRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

// CartProductRequest adds one unit of a product to the cart.
type CartProductRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// CartScheduleRequest selects staff, date and start time.
type CartScheduleRequest struct {
	StaffID   string `json:"staffId" binding:"required"`
	Date      string `json:"date" binding:"required,isodate"`
	StartTime string `json:"startTime" binding:"required,clock"`
}
