package controllers

import (
	"net/http"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"

	"CareHub360/services"
)

func Appointment(c *gin.Engine) {
	appointment := c.Group("appointment")
	{
		appointment.POST("/create/:doctorId", authorization.Authorize("appointment", "create"), CreateAppointment)
		appointment.GET("/fetch/:appointmentId", authorization.Authorize("appointment", "view"), FetchAppointmentByCode)
		appointment.GET("/fetchAll", authorization.Authorize("appointment", "view"), FetchAllAppointments)
		appointment.PATCH("/cancel/:appointmentId", authorization.Authorize("appointment", "update"), CancelAppointment)
	}
}

/*
* Bind JSON
* And Pass to the service
 */
func CreateAppointment(c *gin.Context) {
	doctorId := c.Param("doctorId")
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	appointment, err := services.CreateAppointment(c, doctorId, data)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointment))
}

func FetchAppointmentByCode(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	appointment, err := services.FetchAppointmentByCode(c, appointmentId)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointment))
}

func FetchAllAppointments(c *gin.Context) {
	appointments, err := services.FetchAllAppointments(c)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointments))
}

func CancelAppointment(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	message, err := services.CancelAppointment(c, appointmentId)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(message))
}
