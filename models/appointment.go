package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID        primitive.ObjectID `json:"id" bson:"id"`
	Code      string             `json:"code" bson:"code"`
	PatientId string             `json:"patientId" bson:"patientId"`
	DoctorId  string             `json:"doctorId" bson:"doctorId"`
	Date      string             `json:"date" bson:"date"`
	Time      string             `json:"time" bson:"time"`
	Reason    string             `json:"reason" bson:"reason"`
	Symptoms  string             `json:"symptoms,omitempty" bson:"symptoms,omitempty"`
	SlotKey   string             `json:"slotKey" bson:"slotKey"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AppointmentSlot exists purely as a uniqueness token: its _id is the
// derived doctorId_date_time key, and the presence of the document
// means the slot is taken.
type AppointmentSlot struct {
	Key           string    `json:"id" bson:"_id"`
	DoctorId      string    `json:"doctorId" bson:"doctorId"`
	Date          string    `json:"date" bson:"date"`
	Time          string    `json:"time" bson:"time"`
	AppointmentId string    `json:"appointmentId" bson:"appointmentId"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
