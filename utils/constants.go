package utils

import "errors"

// Collection names
const (
	AppointmentCollection     = "APPOINTMENTS"
	AppointmentSlotCollection = "APPOINTMENT_SLOTS"
	AdmissionCollection       = "ADMISSIONS"
	BillingCollection         = "BILLING_RECORDS"
	RoomCollection            = "ROOMS"
	PatientCollection         = "PATIENTS"
)

// Cache key prefixes
const (
	AppointmentKey = "appointment:"
	AdmissionKey   = "admission:"
	BillingKey     = "billing:"
	RoomKey        = "room:"
	PatientKey     = "patient:"
)

// Document statuses
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"

	AdmissionAdmitted  = "admitted"
	AdmissionCompleted = "completed"

	BillingPending = "pending"
	BillingPaid    = "paid"

	RoomAvailable = "available"
	RoomOccupied  = "occupied"
)

// DefaultOtherDescription is used when ad-hoc charges come in without one.
const DefaultOtherDescription = "Additional charges"

var (
	ErrMissingSlotParams     = errors.New("Missing required parameters: doctorId, date, time")
	ErrInvalidSlotInfo       = errors.New("Invalid slot information")
	ErrSlotAlreadyBooked     = errors.New("Slot is already booked")
	ErrMissingAdmissionId    = errors.New("Missing admissionId")
	ErrAdmissionNotFound     = errors.New("Admission not found")
	ErrAdmissionNotActive    = errors.New("Admission is not currently active")
	ErrAppointmentNotFound   = errors.New("Appointment not found")
	ErrAppointmentFinished   = errors.New("Appointment is already completed")
	ErrBillingNotFound       = errors.New("Billing record not found")
	ErrBillingNotPending     = errors.New("Billing record is not pending")
	ErrRoomNotFound          = errors.New("Room not found")
	ErrRoomNotAvailable      = errors.New("Room is not available")
	ErrPatientNotFound       = errors.New("Patient not found")
	ErrWhatsAppNotConfigured = errors.New("WhatsApp credentials are not configured")
)
