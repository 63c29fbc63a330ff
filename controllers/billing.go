package controllers

import (
	"io"
	"net/http"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"

	"CareHub360/services"
)

func Billing(c *gin.Engine) {
	billing := c.Group("billing")
	{
		billing.GET("/fetch/:billingId", authorization.Authorize("billing", "view"), FetchBillingByCode)
		billing.GET("/fetchAll", authorization.Authorize("billing", "view"), FetchAllBillings)
		billing.POST("/settle/:billingId", authorization.Authorize("billing", "update"), SettleBilling)
	}
}

func FetchBillingByCode(c *gin.Context) {
	billingId := c.Param("billingId")
	billing, err := services.FetchBillingByCode(c, billingId)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(billing))
}

func FetchAllBillings(c *gin.Context) {
	billings, err := services.FetchAllBillings(c)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(billings))
}

func SettleBilling(c *gin.Context) {
	billingId := c.Param("billingId")
	data := map[string]interface{}{}
	if err := c.ShouldBindJSON(&data); err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	settled, err := services.SettleBilling(c, billingId, data)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(settled))
}
