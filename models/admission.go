package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Admission struct {
	ID             primitive.ObjectID `json:"id" bson:"id"`
	Code           string             `json:"code" bson:"code"`
	PatientUid     string             `json:"patientUid" bson:"patientUid"`
	PatientName    string             `json:"patientName" bson:"patientName"`
	DoctorId       string             `json:"doctorId" bson:"doctorId"`
	AppointmentId  string             `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	RoomId         string             `json:"roomId,omitempty" bson:"roomId,omitempty"`
	RoomRatePerDay float64            `json:"roomRatePerDay" bson:"roomRatePerDay"`
	BillingId      string             `json:"billingId,omitempty" bson:"billingId,omitempty"`
	Status         string             `json:"status" bson:"status"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CheckInAt      time.Time          `json:"checkInAt" bson:"checkInAt"`
	CheckOutAt     *time.Time         `json:"checkOutAt,omitempty" bson:"checkOutAt,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy      string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy      string             `json:"updatedBy" bson:"updatedBy"`
}
