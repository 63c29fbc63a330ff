package services

import (
	"log"
	"strings"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"CareHub360/utils"
)

func FetchBillingByCode(c *gin.Context, billingId string) (map[string]interface{}, error) {
	key := utils.BillingKey + billingId
	cached := make(map[string]interface{})
	exists, err := redis.GetCache(c, key, &cached)
	if err != nil {
		log.Println("Error from getCache:", err)
	}
	if exists {
		return cached, nil
	}

	collection := db.OpenCollections(utils.BillingCollection)
	result := make(map[string]interface{})
	err = db.FindOne(c, collection, bson.M{"code": billingId}, &result)
	if err == mongo.ErrNoDocuments {
		return nil, utils.ErrBillingNotFound
	}
	if err != nil {
		log.Println("Error from findOne(while fetching billing):", err)
		return nil, err
	}
	if err := redis.SetCache(c, key, result); err != nil {
		log.Println("Error from setCache:", err)
	}
	return result, nil
}

func FetchAllBillings(c *gin.Context) ([]interface{}, error) {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if patientUid := c.Query("patientUid"); patientUid != "" {
		filter["patientUid"] = patientUid
	}
	collection := db.OpenCollections(utils.BillingCollection)
	docs, err := db.FindAll(c, collection, filter, nil)
	if err != nil {
		log.Println("Error from FindAll:", err)
		return nil, err
	}
	return docs, nil
}

/*
* Settlement is the only mutation a billing record ever sees
* Only a pending record can be settled; a second settle attempt is
* rejected the same way a second discharge is
 */
func SettleBilling(c *gin.Context, billingId string, data map[string]interface{}) (map[string]interface{}, error) {
	billing, err := FetchBillingByCode(c, billingId)
	if err != nil {
		return nil, err
	}
	if getString(billing["status"]) != utils.BillingPending {
		return nil, utils.ErrBillingNotPending
	}

	method := strings.TrimSpace(getString(data["paymentMethod"]))
	if method == "" {
		method = "cash"
	}
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"status":        utils.BillingPaid,
			"paymentMethod": method,
			"paidAt":        now,
			"updatedAt":     now,
		},
	}
	if reference := strings.TrimSpace(getString(data["paymentReference"])); reference != "" {
		update["$set"].(bson.M)["paymentReference"] = reference
	}

	collection := db.OpenCollections(utils.BillingCollection)
	updated, err := db.UpdateOne(c, collection, bson.M{"code": billingId}, update)
	if err != nil {
		log.Println("Error from UpdateOne:", err)
		return nil, err
	}
	log.Println("Updated:", updated.ModifiedCount)

	settled := make(map[string]interface{})
	if err := db.FindOne(c, collection, bson.M{"code": billingId}, &settled); err != nil {
		log.Println("Error from findOne after settling billing:", err)
		return nil, err
	}

	key := utils.BillingKey + billingId
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting old billing cache:", err)
	}
	if err := redis.SetCache(c, key, settled); err != nil {
		log.Println("Failed caching settled billing:", err)
	}
	return settled, nil
}
