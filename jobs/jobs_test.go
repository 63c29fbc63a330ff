package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestShouldReEngage(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		patient map[string]interface{}
		want    bool
	}{
		{
			"recent visit stays quiet",
			map[string]interface{}{"lastVisitAt": now.Add(-10 * 24 * time.Hour)},
			false,
		},
		{
			"ninety-one days since last visit",
			map[string]interface{}{"lastVisitAt": now.Add(-91 * 24 * time.Hour)},
			true,
		},
		{
			"exactly ninety days is due",
			map[string]interface{}{"lastVisitAt": now.Add(-reEngagementAfter)},
			true,
		},
		{
			"no visit recorded, old registration",
			map[string]interface{}{"createdAt": now.Add(-120 * 24 * time.Hour)},
			true,
		},
		{
			"no visit recorded, fresh registration",
			map[string]interface{}{"createdAt": now.Add(-24 * time.Hour)},
			false,
		},
		{
			"driver timestamps are understood",
			map[string]interface{}{"lastVisitAt": primitive.NewDateTimeFromTime(now.Add(-100 * 24 * time.Hour))},
			true,
		},
		{
			"recent visit outranks an old registration",
			map[string]interface{}{
				"lastVisitAt": now.Add(-24 * time.Hour),
				"createdAt":   now.Add(-365 * 24 * time.Hour),
			},
			false,
		},
		{
			"no usable timestamp means no nudge",
			map[string]interface{}{"phoneNo": "+10000000000"},
			false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shouldReEngage(tc.patient, now))
		})
	}
}
