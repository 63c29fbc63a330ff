package controllers

import (
	"net/http"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"

	"CareHub360/services"
)

func Patient(c *gin.Engine) {
	patient := c.Group("patient")
	{
		patient.POST("/create", authorization.Authorize("patient", "create"), CreatePatient)
		patient.GET("/fetch/:patientId", authorization.Authorize("patient", "view"), FetchPatientByCode)
	}
}

func CreatePatient(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	patient, err := services.CreatePatient(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(patient))
}

func FetchPatientByCode(c *gin.Context) {
	patientId := c.Param("patientId")
	patient, err := services.FetchPatientByCode(c, patientId)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(patient))
}
