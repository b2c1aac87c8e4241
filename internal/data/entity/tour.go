package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Price is one labelled price option, e.g. {"label": "adult", "amount": 50}.
type Price struct {
	Label  string  `bson:"label" json:"label"`
	Amount float64 `bson:"amount" json:"amount"`
}

type Tour struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title            string               `bson:"title" json:"title"`
	Description      string               `bson:"description" json:"description"`
	Duration         string               `bson:"duration,omitempty" json:"duration,omitempty"`
	Type             string               `bson:"type,omitempty" json:"type,omitempty"`
	Availability     string               `bson:"availability,omitempty" json:"availability,omitempty"`
	PickUpAndDropOff string               `bson:"pickUpAndDropOff,omitempty" json:"pickUpAndDropOff,omitempty"`
	Details          string               `bson:"details,omitempty" json:"details,omitempty"`
	ViewPrice        string               `bson:"viewPrice,omitempty" json:"viewPrice,omitempty"`
	Note             string               `bson:"note,omitempty" json:"note,omitempty"`
	FullDay          string               `bson:"fullDay,omitempty" json:"fullDay,omitempty"`
	Languages        []string             `bson:"languages,omitempty" json:"languages,omitempty"`
	Prices           []Price              `bson:"prices" json:"prices"`
	Media            []Media              `bson:"media" json:"media"`
	City             string               `bson:"city" json:"city"`
	CreatedBy        primitive.ObjectID   `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	Reviews          []primitive.ObjectID `bson:"reviews" json:"reviews"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
}
