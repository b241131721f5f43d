package api

import "time"

// Booking mirrors the wire shape of the bookings endpoint, nested the
// way the dashboard consumes it.
type Booking struct {
	ID          string          `json:"id"`
	TotalAmount float64         `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	Details     []BookingDetail `json:"details"`
}

type BookingDetail struct {
	CreatedAt time.Time `json:"createdAt"`
	Campaign  *Campaign `json:"campaign,omitempty"`
}

type Campaign struct {
	Spaces []Space `json:"spaces"`
}

type Space struct {
	BasicInformation BasicInformation `json:"basicInformation"`
}

type BasicInformation struct {
	MediaType *MediaType `json:"mediaType,omitempty"`
	Category  []Category `json:"category,omitempty"`
}

type MediaType struct {
	Name string `json:"name"`
}

type Category struct {
	Name string `json:"name"`
}

// BookingPage is the paginated bookings envelope.
type BookingPage struct {
	Docs  []Booking `json:"docs"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}
