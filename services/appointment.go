package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"CareHub360/metrics"
	"CareHub360/utils"
)

/*
* Validate the fields that came from request
 */
func validateAppointmentInput(data map[string]interface{}) error {
	fields := []string{"patientId", "reason", "date", "time"}
	for _, f := range fields {
		if err := common.GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString:", err)
			return err
		}
	}
	return nil
}

/*
* Validate the input fields
* Normalize date and time, derive the slot key
* Reserve the slot first: the keyed insert is the double-booking guard
* Create the appointment and cache it
* Release the slot again if the appointment write fails
* Confirmation message is best-effort only
 */
func CreateAppointment(c *gin.Context, doctorId string, data map[string]interface{}) (map[string]interface{}, error) {
	if err := validateAppointmentInput(data); err != nil {
		return nil, utils.ErrInvalidSlotInfo
	}

	date, err := NormalizeDate(data["date"].(string))
	if err != nil {
		log.Println("Error from NormalizeDate:", err)
		return nil, err
	}
	timeGiven, err := NormalizeTime(data["time"].(string))
	if err != nil {
		log.Println("Error from NormalizeTime:", err)
		return nil, err
	}
	key, err := BuildSlotKey(doctorId, date, timeGiven)
	if err != nil {
		return nil, err
	}

	appCode := primitive.NewObjectID().Hex()
	if err := ReserveSlot(c, key, doctorId, date, timeGiven, appCode); err != nil {
		if errors.Is(err, utils.ErrSlotAlreadyBooked) {
			metrics.SlotConflicts.Inc()
		}
		return nil, err
	}

	now := time.Now().UTC()
	newApp := bson.M{
		"code":      appCode,
		"patientId": data["patientId"],
		"doctorId":  doctorId,
		"date":      date,
		"time":      timeGiven,
		"reason":    data["reason"],
		"slotKey":   key,
		"status":    utils.AppointmentScheduled,
		"createdAt": now,
		"updatedAt": now,
	}
	if symptoms, ok := data["symptoms"].(string); ok && symptoms != "" {
		newApp["symptoms"] = symptoms
	}

	collection := db.OpenCollections(utils.AppointmentCollection)
	inserted, err := db.CreateOne(c, collection, newApp)
	if err != nil {
		log.Println("Error from createOne, releasing reserved slot:", err)
		if relErr := ReleaseSlot(c, key); relErr != nil {
			log.Println("Error while releasing slot after failed create:", relErr)
		}
		return nil, err
	}
	log.Println("inserted:", inserted.InsertedID)
	metrics.AppointmentsBooked.Inc()

	cacheKey := utils.AppointmentKey + appCode
	if err := redis.SetCache(c, cacheKey, newApp); err != nil {
		log.Println("Error from setCache:", err)
	}

	TouchPatientVisit(c, data["patientId"].(string))
	notifyBookingConfirmed(c, data["patientId"].(string), date, timeGiven)
	return newApp, nil
}

/*
* Cache-aside fetch by code
 */
func FetchAppointmentByCode(c *gin.Context, appointmentId string) (map[string]interface{}, error) {
	key := utils.AppointmentKey + appointmentId
	cached := make(map[string]interface{})
	exists, err := redis.GetCache(c, key, &cached)
	if err != nil {
		log.Println("Error from getCache:", err)
	}
	if exists {
		return cached, nil
	}

	collection := db.OpenCollections(utils.AppointmentCollection)
	result := make(map[string]interface{})
	err = db.FindOne(c, collection, bson.M{"code": appointmentId}, &result)
	if err == mongo.ErrNoDocuments {
		return nil, utils.ErrAppointmentNotFound
	}
	if err != nil {
		log.Println("Error from findOne(while fetching appointment):", err)
		return nil, err
	}
	if err := redis.SetCache(c, key, result); err != nil {
		log.Println("Error from setCache:", err)
	}
	return result, nil
}

/*
* List appointments, optionally narrowed by doctorId/patientId/date
 */
func FetchAllAppointments(c *gin.Context) ([]interface{}, error) {
	filter := bson.M{}
	if doctorId := c.Query("doctorId"); doctorId != "" {
		filter["doctorId"] = doctorId
	}
	if patientId := c.Query("patientId"); patientId != "" {
		filter["patientId"] = patientId
	}
	if date := c.Query("date"); date != "" {
		normalized, err := NormalizeDate(date)
		if err != nil {
			return nil, err
		}
		filter["date"] = normalized
	}
	collection := db.OpenCollections(utils.AppointmentCollection)
	docs, err := db.FindAll(c, collection, filter, nil)
	if err != nil {
		log.Println("Error from FindAll:", err)
		return nil, err
	}
	return docs, nil
}

/*
* Cancel flips the status and releases the slot document so the
* time becomes bookable again
* Completed appointments stay closed
 */
func CancelAppointment(c *gin.Context, appointmentId string) (string, error) {
	appointment, err := FetchAppointmentByCode(c, appointmentId)
	if err != nil {
		return "", err
	}
	if getString(appointment["status"]) == utils.AppointmentCompleted {
		return "", utils.ErrAppointmentFinished
	}

	collection := db.OpenCollections(utils.AppointmentCollection)
	update := bson.M{
		"$set": bson.M{
			"status":    utils.AppointmentCancelled,
			"updatedAt": time.Now().UTC(),
		},
	}
	updated, err := db.UpdateOne(c, collection, bson.M{"code": appointmentId}, update)
	if err != nil {
		log.Println("Error from UpdateOne:", err)
		return "", err
	}
	log.Println("Updated:", updated.ModifiedCount)

	if slotKey := getString(appointment["slotKey"]); slotKey != "" {
		if err := ReleaseSlot(c, slotKey); err != nil {
			log.Println("Error while releasing slot on cancel:", err)
		}
	}

	cacheKey := utils.AppointmentKey + appointmentId
	if err := redis.DeleteCache(c, cacheKey); err != nil {
		log.Println("Error from deleteCache:", err)
	}
	return fmt.Sprintf("Appointment %s cancelled", appointmentId), nil
}

/*
* Look up the patient phone and send the confirmation
* Failures are logged, never surfaced to the booking flow
 */
func notifyBookingConfirmed(c *gin.Context, patientId, date, timeGiven string) {
	patient, err := FetchPatientByCode(c, patientId)
	if err != nil {
		log.Println("Skipping booking confirmation, patient lookup failed:", err)
		return
	}
	message := fmt.Sprintf("Your appointment is confirmed for %s at %s.", date, timeGiven)
	NotifyBestEffort(getString(patient["phoneNo"]), message)
}
