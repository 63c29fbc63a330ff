package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"CareHub360/services"
	"CareHub360/utils"
)

func Slot(c *gin.Engine) {
	slot := c.Group("slot")
	{
		slot.GET("/check", CheckSlot)
	}
}

/*
* Advisory pre-check called before payment collection
* Read-only: the booking write re-validates uniqueness itself
 */
func CheckSlot(c *gin.Context) {
	doctorId := c.Query("doctorId")
	date := c.Query("date")
	timeGiven := c.Query("time")
	if doctorId == "" || date == "" || timeGiven == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ErrMissingSlotParams.Error()})
		return
	}

	err := services.CheckSlotAvailability(c, doctorId, date, timeGiven)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"available": true})
	case errors.Is(err, utils.ErrSlotAlreadyBooked):
		c.JSON(http.StatusConflict, gin.H{"available": false, "error": err.Error()})
	case errors.Is(err, utils.ErrInvalidSlotInfo):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
