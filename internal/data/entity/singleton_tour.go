package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SingletonTour is a tour variant (VIP, Nile) of which at most one
// document may exist in its collection.
type SingletonTour struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Duration         string             `bson:"duration" json:"duration"`
	PickUpAndDropOff string             `bson:"pickUpAndDropOff" json:"pickUpAndDropOff"`
	Details          string             `bson:"details" json:"details"`
	FullDay          string             `bson:"fullDay" json:"fullDay"`
	Note             string             `bson:"note,omitempty" json:"note,omitempty"`
	Description      string             `bson:"description" json:"description"`
	Type             string             `bson:"type" json:"type"`
	Availability     string             `bson:"availability" json:"availability"`
	Price            string             `bson:"price" json:"price"`
	City             string             `bson:"city" json:"city"`
	Media            []Media            `bson:"media" json:"media"`
	CreatedBy        primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}
