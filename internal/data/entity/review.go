package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	TourID    primitive.ObjectID `bson:"tour" json:"tour"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Media     []Media            `bson:"media" json:"media"`
	Visible   bool               `bson:"visible" json:"visible"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
