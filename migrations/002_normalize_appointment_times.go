package migrations

import (
	"context"
	"log"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"

	"CareHub360/services"
	"CareHub360/utils"
)

/*
* Legacy appointments stored display times ("2:30 PM"); slot keys
* need the 24-hour form, so rewrite anything that normalizes to a
* different string
 */
func NormalizeAppointmentTimes() {
	ctx := context.Background()
	coll := db.OpenCollections(utils.AppointmentCollection)
	docs, err := db.FindAll(ctx, coll, bson.M{}, nil)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}

	updated := 0
	for _, d := range docs {
		appointment, ok := d.(map[string]interface{})
		if !ok {
			continue
		}
		raw, ok := appointment["time"].(string)
		if !ok {
			continue
		}
		normalized, err := services.NormalizeTime(raw)
		if err != nil || normalized == raw {
			continue
		}
		_, err = db.UpdateOne(ctx, coll, bson.M{"code": appointment["code"]}, bson.M{
			"$set": bson.M{"time": normalized},
		})
		if err != nil {
			log.Println("Error updating appointment time:", appointment["code"], err)
			continue
		}
		updated++
	}
	log.Printf("Migration applied: %d documents updated\n", updated)
}
