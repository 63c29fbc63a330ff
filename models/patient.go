package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID          primitive.ObjectID `json:"id" bson:"id"`
	Code        string             `json:"code" bson:"code"`
	FirstName   string             `json:"firstName" bson:"firstName"`
	LastName    string             `json:"lastName,omitempty" bson:"lastName,omitempty"`
	FullName    string             `json:"fullName,omitempty" bson:"fullName,omitempty"`
	Mail        string             `json:"mail,omitempty" bson:"mail,omitempty"`
	Phone       string             `json:"phoneNo" bson:"phoneNo"`
	Age         int                `json:"age,omitempty" bson:"age,omitempty"`
	Gender      string             `json:"gender,omitempty" bson:"gender,omitempty"`
	LastVisitAt *time.Time         `json:"lastVisitAt,omitempty" bson:"lastVisitAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
