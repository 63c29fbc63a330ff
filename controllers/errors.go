package controllers

import (
	"errors"
	"net/http"

	"CareHub360/utils"
)

/*
* Map service sentinels to wire status codes
* Anything unrecognized is an infrastructure failure
 */
func statusForError(err error) int {
	switch {
	case errors.Is(err, utils.ErrAdmissionNotFound),
		errors.Is(err, utils.ErrAppointmentNotFound),
		errors.Is(err, utils.ErrBillingNotFound),
		errors.Is(err, utils.ErrRoomNotFound),
		errors.Is(err, utils.ErrPatientNotFound):
		return http.StatusNotFound
	case errors.Is(err, utils.ErrSlotAlreadyBooked):
		return http.StatusConflict
	case errors.Is(err, utils.ErrInvalidSlotInfo),
		errors.Is(err, utils.ErrMissingSlotParams),
		errors.Is(err, utils.ErrMissingAdmissionId),
		errors.Is(err, utils.ErrAdmissionNotActive),
		errors.Is(err, utils.ErrAppointmentFinished),
		errors.Is(err, utils.ErrBillingNotPending),
		errors.Is(err, utils.ErrRoomNotAvailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
