package controllers

import (
	"net/http"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"

	"CareHub360/services"
)

func Room(c *gin.Engine) {
	room := c.Group("room")
	{
		room.POST("/create", authorization.Authorize("room", "create"), CreateRoom)
		room.GET("/fetch/:roomId", authorization.Authorize("room", "view"), FetchRoomByCode)
		room.GET("/fetchAll", authorization.Authorize("room", "view"), FetchAllRooms)
	}
}

func CreateRoom(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	room, err := services.CreateRoom(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(room))
}

func FetchRoomByCode(c *gin.Context) {
	roomId := c.Param("roomId")
	room, err := services.FetchRoomByCode(c, roomId)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(room))
}

func FetchAllRooms(c *gin.Context) {
	rooms, err := services.FetchAllRooms(c)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(rooms))
}
