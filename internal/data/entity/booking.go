package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"user" json:"user"`
	TourName          string             `bson:"tourName" json:"tourName"`
	Email             string             `bson:"email" json:"email"`
	ArrivalDate       *time.Time         `bson:"arrivalDate,omitempty" json:"arrivalDate,omitempty"`
	DepartureDate     *time.Time         `bson:"departureDate,omitempty" json:"departureDate,omitempty"`
	TripLocation      string             `bson:"tripLocation,omitempty" json:"tripLocation,omitempty"`
	Adults            int                `bson:"adults" json:"adults"`
	Children6To11     int                `bson:"children6To11" json:"children6To11"`
	ChildrenUnder6    int                `bson:"childrenUnder6" json:"childrenUnder6"`
	Transportation    string             `bson:"transportation,omitempty" json:"transportation,omitempty"`
	Guide             string             `bson:"guide,omitempty" json:"guide,omitempty"`
	Car               string             `bson:"car,omitempty" json:"car,omitempty"`
	AdditionalQueries string             `bson:"additionalQueries" json:"additionalQueries"`
	Date              time.Time          `bson:"date" json:"date"`
	Time              string             `bson:"time" json:"time"`
	CellPhone         string             `bson:"cellPhone" json:"cellPhone"`
	PaymentName       string             `bson:"paymentName" json:"paymentName"`
	// Amount is stored in EGP, after conversion. The USD value the
	// client submitted is never persisted.
	Amount           float64       `bson:"amount" json:"amount"`
	Status           BookingStatus `bson:"status" json:"status"`
	PaymentReference string        `bson:"paymentReference,omitempty" json:"paymentReference,omitempty"`
	CreatedAt        time.Time     `bson:"createdAt" json:"createdAt"`
}
