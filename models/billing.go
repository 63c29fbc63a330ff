package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceCharge is a single ad-hoc line item on a billing record.
type ServiceCharge struct {
	Description string  `json:"description" bson:"description"`
	Amount      float64 `json:"amount" bson:"amount"`
}

type BillingRecord struct {
	ID               primitive.ObjectID `json:"id" bson:"id"`
	Code             string             `json:"code" bson:"code"`
	AdmissionId      string             `json:"admissionId" bson:"admissionId"`
	AppointmentId    string             `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	PatientUid       string             `json:"patientUid" bson:"patientUid"`
	PatientName      string             `json:"patientName" bson:"patientName"`
	StayDays         int                `json:"stayDays" bson:"stayDays"`
	RoomCharges      float64            `json:"roomCharges" bson:"roomCharges"`
	DoctorFee        float64            `json:"doctorFee" bson:"doctorFee"`
	OtherServices    []ServiceCharge    `json:"otherServices" bson:"otherServices"`
	TotalAmount      float64            `json:"totalAmount" bson:"totalAmount"`
	Status           string             `json:"status" bson:"status"`
	PaymentMethod    *string            `json:"paymentMethod" bson:"paymentMethod"`
	PaymentReference *string            `json:"paymentReference" bson:"paymentReference"`
	PaidAt           *time.Time         `json:"paidAt" bson:"paidAt"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}
