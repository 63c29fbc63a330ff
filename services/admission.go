package services

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"CareHub360/metrics"
	"CareHub360/models"
	"CareHub360/utils"
)

// DischargeRequest carries the caller-supplied billing inputs. Every
// field is optional on the wire; parseDischargeRequest fills the
// documented defaults.
type DischargeRequest struct {
	DoctorFee        float64
	OtherCharges     float64
	OtherDescription string
	Notes            string
}

type DischargeResult struct {
	BillingId   string  `json:"billingId"`
	RoomCharges float64 `json:"roomCharges"`
	TotalAmount float64 `json:"totalAmount"`
	StayDays    int     `json:"stayDays"`
}

func parseDischargeRequest(data map[string]interface{}) DischargeRequest {
	req := DischargeRequest{
		DoctorFee:        toFloat(data["doctorFee"]),
		OtherCharges:     toFloat(data["otherCharges"]),
		OtherDescription: strings.TrimSpace(getString(data["otherDescription"])),
		Notes:            strings.TrimSpace(getString(data["notes"])),
	}
	if req.OtherDescription == "" {
		req.OtherDescription = utils.DefaultOtherDescription
	}
	return req
}

/*
* A partial day always rounds up and a same-day stay bills as one
* full day: no free partial days
 */
func CalculateStayDays(checkIn, checkOut time.Time) int {
	elapsed := checkOut.Sub(checkIn)
	if elapsed <= 0 {
		return 1
	}
	days := int(math.Ceil(elapsed.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

/*
* Pure core of the discharge: checks the admitted precondition,
* derives stay days and charges from the admission document, and
* stages the admission update plus the new billing document
* The room rate comes from the admission snapshot, never re-read
* from the room, so later rate changes cannot drift the bill
 */
func buildDischarge(admission map[string]interface{}, req DischargeRequest, patientName, billingCode string, now time.Time) (bson.M, bson.M, DischargeResult, error) {
	if getString(admission["status"]) != utils.AdmissionAdmitted {
		return nil, nil, DischargeResult{}, utils.ErrAdmissionNotActive
	}

	checkIn := parseTimestamp(admission["checkInAt"], now)
	stayDays := CalculateStayDays(checkIn, now)
	roomCharges := float64(stayDays) * toFloat(admission["roomRatePerDay"])
	totalAmount := roomCharges + req.DoctorFee + req.OtherCharges

	otherServices := []models.ServiceCharge{}
	if req.OtherCharges != 0 {
		otherServices = append(otherServices, models.ServiceCharge{
			Description: req.OtherDescription,
			Amount:      req.OtherCharges,
		})
	}

	billing := bson.M{
		"code":             billingCode,
		"admissionId":      getString(admission["code"]),
		"patientUid":       patientUid(admission),
		"patientName":      patientName,
		"stayDays":         stayDays,
		"roomCharges":      roomCharges,
		"doctorFee":        req.DoctorFee,
		"otherServices":    otherServices,
		"totalAmount":      totalAmount,
		"status":           utils.BillingPending,
		"paymentMethod":    nil,
		"paymentReference": nil,
		"paidAt":           nil,
		"createdAt":        now,
		"updatedAt":        now,
	}
	if appointmentId := getString(admission["appointmentId"]); appointmentId != "" {
		billing["appointmentId"] = appointmentId
	}

	admUpdate := bson.M{
		"status":     utils.AdmissionCompleted,
		"checkOutAt": now,
		"billingId":  billingCode,
		"updatedAt":  now,
	}
	if req.Notes != "" {
		admUpdate["notes"] = req.Notes
	}

	result := DischargeResult{
		BillingId:   billingCode,
		RoomCharges: roomCharges,
		TotalAmount: totalAmount,
		StayDays:    stayDays,
	}
	return admUpdate, billing, result, nil
}

func patientUid(admission map[string]interface{}) string {
	if uid := getString(admission["patientUid"]); uid != "" {
		return uid
	}
	return getString(admission["patientId"])
}

/*
* Stored name wins unless missing or the literal "unknown"
* Then one patient lookup: firstName+lastName, else fullName,
* else keep whatever the admission had
* A failed lookup never blocks the discharge
 */
func resolvePatientName(c *gin.Context, admission map[string]interface{}) string {
	name := strings.TrimSpace(getString(admission["patientName"]))
	if name != "" && !strings.EqualFold(name, "unknown") {
		return name
	}
	uid := patientUid(admission)
	if uid == "" {
		return name
	}
	patient, err := FetchPatientByCode(c, uid)
	if err != nil {
		log.Println("Patient lookup failed during discharge, keeping stored name:", err)
		return name
	}
	composed := strings.TrimSpace(getString(patient["firstName"]) + " " + getString(patient["lastName"]))
	if composed != "" {
		return composed
	}
	if full := strings.TrimSpace(getString(patient["fullName"])); full != "" {
		return full
	}
	return name
}

/*
* Snapshot the room's daily rate onto the admission so later rate
* changes never touch an open stay
 */
func buildAdmission(data map[string]interface{}, room map[string]interface{}, patientName, code string, now time.Time) (bson.M, error) {
	if getString(room["status"]) != utils.RoomAvailable {
		return nil, utils.ErrRoomNotAvailable
	}
	admission := bson.M{
		"code":           code,
		"patientUid":     data["patientId"],
		"patientName":    patientName,
		"doctorId":       data["doctorId"],
		"roomId":         getString(room["code"]),
		"roomRatePerDay": toFloat(room["ratePerDay"]),
		"status":         utils.AdmissionAdmitted,
		"checkInAt":      now,
		"createdAt":      now,
		"updatedAt":      now,
	}
	if appointmentId, ok := data["appointmentId"].(string); ok && appointmentId != "" {
		admission["appointmentId"] = appointmentId
	}
	if notes, ok := data["notes"].(string); ok && notes != "" {
		admission["notes"] = notes
	}
	return admission, nil
}

/*
* Validate the input fields
* Save the admission first, then flip the room to occupied
* A failed room update deletes the admission again so neither
* document is left referencing the other halfway
 */
func CreateAdmission(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	fields := []string{"patientId", "doctorId", "roomId"}
	for _, f := range fields {
		if err := common.GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString:", err)
			return nil, err
		}
	}

	roomId := data["roomId"].(string)
	room, err := FetchRoomByCode(c, roomId)
	if err != nil {
		log.Println("Error from fetchRoomByCode:", err)
		return nil, err
	}

	patientName := getString(data["patientName"])
	if patientName == "" {
		if patient, err := FetchPatientByCode(c, data["patientId"].(string)); err == nil {
			patientName = strings.TrimSpace(getString(patient["firstName"]) + " " + getString(patient["lastName"]))
		}
	}

	now := time.Now().UTC()
	code := primitive.NewObjectID().Hex()
	admission, err := buildAdmission(data, room, patientName, code, now)
	if err != nil {
		return nil, err
	}

	collection := db.OpenCollections(utils.AdmissionCollection)
	inserted, err := db.CreateOne(c, collection, admission)
	if err != nil {
		log.Println("Error from createOne:", err)
		return nil, err
	}
	log.Println("inserted:", inserted.InsertedID)

	roomColl := db.OpenCollections(utils.RoomCollection)
	if _, err := db.UpdateOne(c, roomColl, bson.M{"code": roomId}, bson.M{
		"$set": bson.M{"status": utils.RoomOccupied, "updatedAt": now},
	}); err != nil {
		log.Println("Error while marking room occupied, removing admission:", err)
		if _, delErr := db.DeleteOne(c, collection, bson.M{"code": code}); delErr != nil {
			log.Println("Error while removing admission after failed room update:", delErr)
		}
		return nil, err
	}

	cacheKey := utils.AdmissionKey + code
	if err := redis.SetCache(c, cacheKey, admission); err != nil {
		log.Println("Error from setCache:", err)
	}
	return admission, nil
}

func FetchAdmissionByCode(c *gin.Context, admissionId string) (map[string]interface{}, error) {
	key := utils.AdmissionKey + admissionId
	cached := make(map[string]interface{})
	exists, err := redis.GetCache(c, key, &cached)
	if err != nil {
		log.Println("Error from getCache:", err)
	}
	if exists {
		return cached, nil
	}

	collection := db.OpenCollections(utils.AdmissionCollection)
	result := make(map[string]interface{})
	err = db.FindOne(c, collection, bson.M{"code": admissionId}, &result)
	if err == mongo.ErrNoDocuments {
		return nil, utils.ErrAdmissionNotFound
	}
	if err != nil {
		log.Println("Error from findOne(while fetching admission):", err)
		return nil, err
	}
	if err := redis.SetCache(c, key, result); err != nil {
		log.Println("Error from setCache:", err)
	}
	return result, nil
}

func FetchAllAdmissions(c *gin.Context) ([]interface{}, error) {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	collection := db.OpenCollections(utils.AdmissionCollection)
	docs, err := db.FindAll(c, collection, filter, nil)
	if err != nil {
		log.Println("Error from FindAll:", err)
		return nil, err
	}
	return docs, nil
}

/*
* Close out the admission exactly once
* Pre-reads give fast 404/400 answers, but the decisive status check
* runs again inside the transaction so two concurrent discharges
* cannot both bill: the storage layer serializes them and the loser
* observes status already completed
* All four writes (admission, appointment, room, new billing record)
* commit atomically or not at all
 */
func DischargeAdmission(c *gin.Context, admissionId string, data map[string]interface{}) (DischargeResult, error) {
	if strings.TrimSpace(admissionId) == "" {
		return DischargeResult{}, utils.ErrMissingAdmissionId
	}
	req := parseDischargeRequest(data)

	admission, err := FetchAdmissionByCode(c, admissionId)
	if err != nil {
		return DischargeResult{}, err
	}
	if getString(admission["status"]) != utils.AdmissionAdmitted {
		return DischargeResult{}, utils.ErrAdmissionNotActive
	}

	patientName := resolvePatientName(c, admission)
	billingCode := primitive.NewObjectID().Hex()
	now := time.Now().UTC()

	session, err := db.DB.Client().StartSession()
	if err != nil {
		log.Println("Error while starting session:", err)
		return DischargeResult{}, err
	}
	defer session.EndSession(c)

	admColl := db.OpenCollections(utils.AdmissionCollection)
	appColl := db.OpenCollections(utils.AppointmentCollection)
	roomColl := db.OpenCollections(utils.RoomCollection)
	billColl := db.OpenCollections(utils.BillingCollection)

	txnResult, err := session.WithTransaction(c, func(sc mongo.SessionContext) (interface{}, error) {
		fresh := make(map[string]interface{})
		if err := admColl.FindOne(sc, bson.M{"code": admissionId}).Decode(&fresh); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, utils.ErrAdmissionNotFound
			}
			return nil, err
		}

		admUpdate, billing, result, err := buildDischarge(fresh, req, patientName, billingCode, now)
		if err != nil {
			return nil, err
		}

		if _, err := admColl.UpdateOne(sc, bson.M{"code": admissionId}, bson.M{"$set": admUpdate}); err != nil {
			return nil, err
		}
		if appointmentId := getString(fresh["appointmentId"]); appointmentId != "" {
			if _, err := appColl.UpdateOne(sc, bson.M{"code": appointmentId}, bson.M{
				"$set": bson.M{"status": utils.AppointmentCompleted, "updatedAt": now},
			}); err != nil {
				return nil, err
			}
		}
		if roomId := getString(fresh["roomId"]); roomId != "" {
			if _, err := roomColl.UpdateOne(sc, bson.M{"code": roomId}, bson.M{
				"$set": bson.M{"status": utils.RoomAvailable, "updatedAt": now},
			}); err != nil {
				return nil, err
			}
		}
		if _, err := billColl.InsertOne(sc, billing); err != nil {
			return nil, err
		}
		return result, nil
	})
	if err != nil {
		log.Println("Discharge transaction failed:", err)
		return DischargeResult{}, err
	}
	result := txnResult.(DischargeResult)

	metrics.Discharges.Inc()
	metrics.BilledAmount.Observe(result.TotalAmount)

	// caches hold pre-discharge state now
	if err := redis.DeleteCache(c, utils.AdmissionKey+admissionId); err != nil {
		log.Println("Error from deleteCache:", err)
	}
	if appointmentId := getString(admission["appointmentId"]); appointmentId != "" {
		if err := redis.DeleteCache(c, utils.AppointmentKey+appointmentId); err != nil {
			log.Println("Error from deleteCache:", err)
		}
	}
	if roomId := getString(admission["roomId"]); roomId != "" {
		if err := redis.DeleteCache(c, utils.RoomKey+roomId); err != nil {
			log.Println("Error from deleteCache:", err)
		}
	}

	TouchPatientVisit(c, patientUid(admission))
	notifyDischarge(c, admission, patientName, result)
	return result, nil
}

/*
* Best-effort discharge notice, never blocks the commit result
 */
func notifyDischarge(c *gin.Context, admission map[string]interface{}, patientName string, result DischargeResult) {
	uid := patientUid(admission)
	if uid == "" {
		return
	}
	patient, err := FetchPatientByCode(c, uid)
	if err != nil {
		log.Println("Skipping discharge notice, patient lookup failed:", err)
		return
	}
	message := fmt.Sprintf("%s, your discharge is complete. Bill %s for %.2f (%d day stay) is ready.",
		patientName, result.BillingId, result.TotalAmount, result.StayDays)
	NotifyBestEffort(getString(patient["phoneNo"]), message)
}
