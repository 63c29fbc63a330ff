package services

import (
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"CareHub360/utils"
)

func CreateRoom(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	fields := []string{"number", "type"}
	for _, f := range fields {
		if err := common.GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString:", err)
			return nil, err
		}
	}

	now := time.Now().UTC()
	room := bson.M{
		"code":       primitive.NewObjectID().Hex(),
		"number":     data["number"],
		"type":       data["type"],
		"ratePerDay": toFloat(data["ratePerDay"]),
		"status":     utils.RoomAvailable,
		"createdAt":  now,
		"updatedAt":  now,
	}
	collection := db.OpenCollections(utils.RoomCollection)
	inserted, err := db.CreateOne(c, collection, room)
	if err != nil {
		log.Println("Error from createOne:", err)
		return nil, err
	}
	log.Println("inserted:", inserted.InsertedID)

	key := utils.RoomKey + room["code"].(string)
	if err := redis.SetCache(c, key, room); err != nil {
		log.Println("Error from setCache:", err)
	}
	return room, nil
}

func FetchRoomByCode(c *gin.Context, roomId string) (map[string]interface{}, error) {
	key := utils.RoomKey + roomId
	cached := make(map[string]interface{})
	exists, err := redis.GetCache(c, key, &cached)
	if err != nil {
		log.Println("Error from getCache:", err)
	}
	if exists {
		return cached, nil
	}

	collection := db.OpenCollections(utils.RoomCollection)
	result := make(map[string]interface{})
	err = db.FindOne(c, collection, bson.M{"code": roomId}, &result)
	if err == mongo.ErrNoDocuments {
		return nil, utils.ErrRoomNotFound
	}
	if err != nil {
		log.Println("Error from findOne(while fetching room):", err)
		return nil, err
	}
	if err := redis.SetCache(c, key, result); err != nil {
		log.Println("Error from setCache:", err)
	}
	return result, nil
}

func FetchAllRooms(c *gin.Context) ([]interface{}, error) {
	filter := bson.M{}
	if c.Query("available") == "true" {
		filter["status"] = utils.RoomAvailable
	}
	collection := db.OpenCollections(utils.RoomCollection)
	docs, err := db.FindAll(c, collection, filter, nil)
	if err != nil {
		log.Println("Error from FindAll:", err)
		return nil, err
	}
	return docs, nil
}
