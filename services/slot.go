package services

import (
	"context"
	"log"
	"strings"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"CareHub360/utils"
)

var timeLayouts = []string{"15:04", "3:04 PM", "3:04PM", "15:04:05", "3 PM", "3PM"}

var dateLayouts = []string{"2006-01-02", "02-01-2006", "2006/01/02"}

/*
* Normalize a display time to 24-hour HH:mm
* "2:30 PM" and "14:30" must come out identical
 */
func NormalizeTime(raw string) (string, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if trimmed == "" {
		return "", utils.ErrInvalidSlotInfo
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", utils.ErrInvalidSlotInfo
}

func NormalizeDate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", utils.ErrInvalidSlotInfo
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, trimmed); err == nil {
			return d.Format("2006-01-02"), nil
		}
	}
	return "", utils.ErrInvalidSlotInfo
}

/*
* Derive the deterministic slot key doctorId_date_time
* The key doubles as the slot document _id, so ":" and whitespace
* are replaced to keep it storage-safe
 */
func BuildSlotKey(doctorId, date, timeGiven string) (string, error) {
	if strings.TrimSpace(doctorId) == "" || strings.TrimSpace(date) == "" || strings.TrimSpace(timeGiven) == "" {
		return "", utils.ErrInvalidSlotInfo
	}
	normalizedDate, err := NormalizeDate(date)
	if err != nil {
		log.Println("Error while normalizing slot date:", err)
		return "", err
	}
	normalizedTime, err := NormalizeTime(timeGiven)
	if err != nil {
		log.Println("Error while normalizing slot time:", err)
		return "", err
	}
	key := strings.TrimSpace(doctorId) + "_" + normalizedDate + "_" + normalizedTime
	return strings.NewReplacer(":", "-", " ", "-", "\t", "-").Replace(key), nil
}

/*
* Advisory availability check, read-only
* A booking can still race past this; the real guard is the
* _id-keyed insert in ReserveSlot
 */
func CheckSlotAvailability(ctx context.Context, doctorId, date, timeGiven string) error {
	key, err := BuildSlotKey(doctorId, date, timeGiven)
	if err != nil {
		return err
	}
	collection := db.OpenCollections(utils.AppointmentSlotCollection)
	slot := make(map[string]interface{})
	err = db.FindOne(ctx, collection, bson.M{"_id": key}, &slot)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		log.Println("Error from FindOne while checking slot:", err)
		return err
	}
	return utils.ErrSlotAlreadyBooked
}

/*
* A duplicate _id means another booking holds the key; anything
* else is an infrastructure failure
 */
func slotInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrSlotAlreadyBooked
	}
	return err
}

/*
* Reserve the slot by inserting the key document
* Uniqueness of _id is the mutual-exclusion primitive: a concurrent
* booking for the same key fails with a duplicate-key error
 */
func ReserveSlot(ctx context.Context, key, doctorId, date, timeGiven, appointmentId string) error {
	collection := db.OpenCollections(utils.AppointmentSlotCollection)
	_, err := collection.InsertOne(ctx, bson.M{
		"_id":           key,
		"doctorId":      doctorId,
		"date":          date,
		"time":          timeGiven,
		"appointmentId": appointmentId,
		"createdAt":     time.Now().UTC(),
	})
	if err != nil {
		log.Println("Error while reserving slot:", err)
	}
	return slotInsertError(err)
}

/*
* Free the slot document so the time can be rebooked
 */
func ReleaseSlot(ctx context.Context, key string) error {
	collection := db.OpenCollections(utils.AppointmentSlotCollection)
	deleted, err := db.DeleteOne(ctx, collection, bson.M{"_id": key})
	if err != nil {
		log.Println("Error while releasing slot:", err)
		return err
	}
	log.Println("Released slots:", deleted.DeletedCount)
	return nil
}
