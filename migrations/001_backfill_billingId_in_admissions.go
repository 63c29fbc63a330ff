package migrations

import (
	"context"
	"log"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"

	"CareHub360/utils"
)

func BackfillBillingIdInAdmissions() {
	ctx := context.Background()
	result, err := db.DB.Collection(utils.AdmissionCollection).UpdateMany(
		ctx,
		bson.M{"status": utils.AdmissionCompleted, "billingId": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"billingId": ""}},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Printf("Migration applied: %d documents updated\n", result.ModifiedCount)
}
