package controllers

import (
	"io"
	"net/http"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"

	"CareHub360/services"
	"CareHub360/utils"
)

func Admission(c *gin.Engine) {
	admission := c.Group("admission")
	{
		admission.POST("/create", authorization.Authorize("admission", "create"), CreateAdmission)
		admission.GET("/fetch/:admissionId", authorization.Authorize("admission", "view"), FetchAdmissionByCode)
		admission.GET("/fetchAll", authorization.Authorize("admission", "view"), FetchAllAdmissions)
		admission.POST("/discharge/:admissionId", authorization.Authorize("admission", "update"), DischargeAdmission)
	}
}

func CreateAdmission(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	admission, err := services.CreateAdmission(c, data)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(admission))
}

func FetchAdmissionByCode(c *gin.Context) {
	admissionId := c.Param("admissionId")
	admission, err := services.FetchAdmissionByCode(c, admissionId)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(admission))
}

func FetchAllAdmissions(c *gin.Context) {
	admissions, err := services.FetchAllAdmissions(c)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(admissions))
}

/*
* Every body field is optional, so an empty body is fine
* The response shape is the discharge contract consumed by the
* receptionist UI
 */
func DischargeAdmission(c *gin.Context) {
	admissionId := c.Param("admissionId")
	if admissionId == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ErrMissingAdmissionId.Error()})
		return
	}

	data := map[string]interface{}{}
	if err := c.ShouldBindJSON(&data); err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.DischargeAdmission(c, admissionId, data)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"billingId":   result.BillingId,
		"roomCharges": result.RoomCharges,
		"totalAmount": result.TotalAmount,
		"stayDays":    result.StayDays,
	})
}
