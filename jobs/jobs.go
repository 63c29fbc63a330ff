package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"CareHub360/services"
	"CareHub360/utils"
)

const reEngagementAfter = 90 * 24 * time.Hour

func StartDailyScheduler() {
	c := cron.New()

	// Reminders for today's appointments, every day at 08:00
	c.AddFunc("0 8 * * *", func() {
		log.Println("Running daily appointment reminders...")
		SendAppointmentReminders()
	})

	// Re-engagement campaign for quiet patients, every day at 09:00
	c.AddFunc("0 9 * * *", func() {
		log.Println("Running re-engagement campaign...")
		RunReEngagementCampaign()
	})

	c.Start()
}

/*
* Loop over today's scheduled appointments and ping each patient
* One bad record never stops the batch
 */
func SendAppointmentReminders() {
	today := time.Now().UTC().Format("2006-01-02")
	coll := db.OpenCollections(utils.AppointmentCollection)
	docs, err := db.FindAll(context.Background(), coll, bson.M{
		"date":   today,
		"status": utils.AppointmentScheduled,
	}, nil)
	if err != nil {
		log.Println("Error from the findAll function:", err)
		return
	}

	for _, d := range docs {
		appointment, ok := d.(map[string]interface{})
		if !ok {
			log.Println("Invalid appointment record:", d)
			continue
		}
		patientId, ok := appointment["patientId"].(string)
		if !ok {
			log.Println("Invalid patientId:", appointment)
			continue
		}
		phone, err := fetchPatientPhone(patientId)
		if err != nil {
			log.Println("Error fetching phone for patient:", patientId, err)
			continue
		}
		message := fmt.Sprintf("Reminder: you have an appointment today at %v.", appointment["time"])
		services.NotifyBestEffort(phone, message)
	}
}

/*
* lastVisitAt is refreshed on every booking and discharge; older
* records only carry createdAt, so that anchors the fallback
* No usable timestamp means no nudge
 */
func lastActivityAt(patient map[string]interface{}) (time.Time, bool) {
	for _, field := range []string{"lastVisitAt", "createdAt"} {
		switch v := patient[field].(type) {
		case primitive.DateTime:
			return v.Time().UTC(), true
		case time.Time:
			return v.UTC(), true
		case string:
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				return t.UTC(), true
			}
		}
	}
	return time.Time{}, false
}

func shouldReEngage(patient map[string]interface{}, now time.Time) bool {
	last, ok := lastActivityAt(patient)
	if !ok {
		return false
	}
	return now.Sub(last) >= reEngagementAfter
}

/*
* Patients with no recorded activity for 90 days get a nudge
 */
func RunReEngagementCampaign() {
	now := time.Now().UTC()
	coll := db.OpenCollections(utils.PatientCollection)
	docs, err := db.FindAll(context.Background(), coll, bson.M{}, nil)
	if err != nil {
		log.Println("Error from the findAll function:", err)
		return
	}

	for _, d := range docs {
		patient, ok := d.(map[string]interface{})
		if !ok {
			log.Println("Invalid patient record:", d)
			continue
		}
		if !shouldReEngage(patient, now) {
			continue
		}
		phone, ok := patient["phoneNo"].(string)
		if !ok || phone == "" {
			continue
		}
		message := "It has been a while since your last visit. Book a check-up whenever it suits you."
		services.NotifyBestEffort(phone, message)
	}
}

func fetchPatientPhone(patientId string) (string, error) {
	coll := db.OpenCollections(utils.PatientCollection)
	patient := make(map[string]interface{})
	err := db.FindOne(context.Background(), coll, bson.M{"code": patientId}, &patient)
	if err != nil {
		return "", err
	}
	phone, _ := patient["phoneNo"].(string)
	return phone, nil
}
