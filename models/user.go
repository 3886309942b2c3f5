package models

import "time"

// Profile roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// NotificationPreferences controls which messages a customer receives.
type NotificationPreferences struct {
	AppointmentReminders bool `bson:"appointmentReminders" json:"appointmentReminders"`
	Promotions           bool `bson:"promotions" json:"promotions"`
}

// Profile is a salon customer (or admin) account.
type Profile struct {
	ID                      string                  `bson:"id" json:"id"`
	Email                   string                  `bson:"email" json:"email"`
	FullName                string                  `bson:"fullName" json:"fullName"`
	Phone                   string                  `bson:"phone,omitempty" json:"phone,omitempty"`
	AvatarURL               string                  `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Role                    string                  `bson:"role" json:"role"`
	LoyaltyPoints           int                     `bson:"loyaltyPoints" json:"loyaltyPoints"`
	PasswordHash            string                  `bson:"passwordHash" json:"-"`
	TokenHash               string                  `bson:"tokenHash,omitempty" json:"-"`
	NotificationPreferences NotificationPreferences `bson:"notificationPreferences" json:"notificationPreferences"`
	CreatedAt               time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FullName  *string `json:"fullName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty" binding:"omitempty,url"`
}

// SignUpRequest is the registration payload.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

// SignInRequest is the login payload.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful sign in or sign up.
type AuthResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}
