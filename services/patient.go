package services

import (
	"log"
	"strings"
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

func CreatePatient(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	fields := []string{"firstName", "phoneNo"}
	for _, f := range fields {
		if err := common.GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString:", err)
			return nil, err
		}
	}

	now := time.Now().UTC()
	patient := bson.M{
		"code":      primitive.NewObjectID().Hex(),
		"firstName": data["firstName"],
		"phoneNo":   data["phoneNo"],
		"createdAt": now,
		"updatedAt": now,
	}
	for _, f := range []string{"lastName", "fullName", "mail", "gender"} {
		if v, ok := data[f].(string); ok && strings.TrimSpace(v) != "" {
			patient[f] = strings.TrimSpace(v)
		}
	}
	if age := toFloat(data["age"]); age > 0 {
		patient["age"] = int(age)
	}

	collection := db.OpenCollections(utils.PatientCollection)
	inserted, err := db.CreateOne(c, collection, patient)
	if err != nil {
		log.Println("Error from createOne:", err)
		return nil, err
	}
	log.Println("inserted:", inserted.InsertedID)

	key := utils.PatientKey + patient["code"].(string)
	if err := redis.SetCache(c, key, patient); err != nil {
		log.Println("Failed caching new patient:", err)
	}
	return patient, nil
}

/*
* Record patient activity so the re-engagement campaign has a real
* anchor to age against
* Best-effort: booking and discharge never fail on this write
 */
func TouchPatientVisit(c *gin.Context, patientId string) {
	if patientId == "" {
		return
	}
	now := time.Now().UTC()
	collection := db.OpenCollections(utils.PatientCollection)
	if _, err := db.UpdateOne(c, collection, bson.M{"code": patientId}, bson.M{
		"$set": bson.M{"lastVisitAt": now, "updatedAt": now},
	}); err != nil {
		log.Println("Error while touching patient visit:", err)
		return
	}
	if err := redis.DeleteCache(c, utils.PatientKey+patientId); err != nil {
		log.Println("Error from deleteCache:", err)
	}
}

func FetchPatientByCode(c *gin.Context, patientId string) (map[string]interface{}, error) {
	key := utils.PatientKey + patientId
	cached := make(map[string]interface{})
	exists, err := redis.GetCache(c, key, &cached)
	if err != nil {
		log.Println("Error from getCache:", err)
	}
	if exists {
		return cached, nil
	}

	collection := db.OpenCollections(utils.PatientCollection)
	result := make(map[string]interface{})
	err = db.FindOne(c, collection, bson.M{"code": patientId}, &result)
	if err == mongo.ErrNoDocuments {
		return nil, utils.ErrPatientNotFound
	}
	if err != nil {
		log.Println("Error from findOne(while fetching patient):", err)
		return nil, err
	}
	if err := redis.SetCache(c, key, result); err != nil {
		log.Println("Error from setCache:", err)
	}
	return result, nil
}
