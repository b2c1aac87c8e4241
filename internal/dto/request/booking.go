package request

import (
	"fmt"
	"time"
)

type CreateBookingRequest struct {
	UserID            string  `json:"userId" validate:"required"`
	TourName          string  `json:"tourName" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	ArrivalDate       string  `json:"arrivalDate,omitempty"`
	DepartureDate     string  `json:"departureDate,omitempty"`
	TripLocation      string  `json:"tripLocation,omitempty"`
	Adults            int     `json:"adults" validate:"required,min=1"`
	Children6To11     int     `json:"children6To11" validate:"min=0"`
	ChildrenUnder6    int     `json:"childrenUnder6" validate:"min=0"`
	Transportation    string  `json:"transportation,omitempty"`
	Guide             string  `json:"guide,omitempty"`
	Car               string  `json:"car,omitempty"`
	AdditionalQueries string  `json:"additionalQueries,omitempty"`
	Date              string  `json:"date" validate:"required"`
	Time              string  `json:"time" validate:"required"`
	CellPhone         string  `json:"cellPhone" validate:"required,cellphone"`
	PaymentName       string  `json:"paymentName" validate:"required"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`

	// Billing address passed through to the payment gateway.
	Apartment string `json:"apartment,omitempty"`
	Floor     string `json:"floor,omitempty"`
	Street    string `json:"street,omitempty"`
	Building  string `json:"building,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	State     string `json:"state,omitempty"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate accepts RFC3339 timestamps or bare dates.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// ParseOptionalDate returns nil for an empty value.
func ParseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
