package models

// Gender values used to filter the service catalogue.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderUnisex = "unisex"
)

// Service is a bookable salon treatment.
type Service struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	DurationMin int    `bson:"durationMin" json:"durationMin"` // minutes
	Price       int64  `bson:"price" json:"price"`             // cents, e.g. 3500 = €35.00
	Category    string `bson:"category" json:"category"`       // e.g. "hair", "beard", "treatments", "styling"
	Gender      string `bson:"gender" json:"gender"`           // "male", "female" or "unisex"
	IsActive    bool   `bson:"isActive" json:"isActive"`
	IsPopular   bool   `bson:"isPopular,omitempty" json:"isPopular,omitempty"`
	ImageURL    string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// Product is a retail item sold alongside appointments.
type Product struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Price       int64  `bson:"price" json:"price"` // cents
	Stock       int    `bson:"stock" json:"stock"`
	IsActive    bool   `bson:"isActive" json:"isActive"`
	ImageURL    string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// Staff is a stylist that can be booked.
type Staff struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Role        string   `bson:"role" json:"role"`
	Bio         string   `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL    string   `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Rating      float64  `bson:"rating" json:"rating"`
	ReviewCount int      `bson:"reviewCount" json:"reviewCount"`
	Specialties []string `bson:"specialties" json:"specialties"`
	IsActive    bool     `bson:"isActive" json:"isActive"`
}
