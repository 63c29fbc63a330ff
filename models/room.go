package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Room struct {
	ID         primitive.ObjectID `json:"id" bson:"id"`
	Code       string             `json:"code" bson:"code"`
	Number     string             `json:"number" bson:"number"`
	Type       string             `json:"type" bson:"type"`
	RatePerDay float64            `json:"ratePerDay" bson:"ratePerDay"`
	Status     string             `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}
