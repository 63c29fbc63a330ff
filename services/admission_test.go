package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"CareHub360/models"
	"CareHub360/utils"
)

func activeAdmission(checkIn time.Time, rate float64) map[string]interface{} {
	return map[string]interface{}{
		"code":           "ADM001",
		"patientUid":     "P0001",
		"patientName":    "Jane Doe",
		"doctorId":       "D0001",
		"appointmentId":  "APP001",
		"roomId":         "R101",
		"roomRatePerDay": rate,
		"status":         utils.AdmissionAdmitted,
		"checkInAt":      checkIn,
	}
}

func TestBuildAdmissionSnapshotsRoomRate(t *testing.T) {
	now := time.Now().UTC()
	room := map[string]interface{}{
		"code":       "R101",
		"status":     utils.RoomAvailable,
		"ratePerDay": float64(1500),
	}
	data := map[string]interface{}{
		"patientId":     "P0001",
		"doctorId":      "D0001",
		"roomId":        "R101",
		"appointmentId": "APP001",
	}

	admission, err := buildAdmission(data, room, "Jane Doe", "ADM001", now)
	require.NoError(t, err)

	assert.Equal(t, float64(1500), admission["roomRatePerDay"], "rate must be snapshotted at check-in")
	assert.Equal(t, utils.AdmissionAdmitted, admission["status"])
	assert.Equal(t, "R101", admission["roomId"])
	assert.Equal(t, "APP001", admission["appointmentId"])
	assert.Equal(t, now, admission["checkInAt"])

	_, staged := admission["notes"]
	assert.False(t, staged, "absent notes must stay absent")
}

func TestBuildAdmissionRejectsOccupiedRoom(t *testing.T) {
	now := time.Now().UTC()
	room := map[string]interface{}{
		"code":       "R101",
		"status":     utils.RoomOccupied,
		"ratePerDay": float64(1500),
	}

	admission, err := buildAdmission(map[string]interface{}{"patientId": "P0001"}, room, "Jane Doe", "ADM001", now)
	assert.ErrorIs(t, err, utils.ErrRoomNotAvailable)
	assert.Nil(t, admission, "no admission may be staged against an occupied room")
}

func TestCalculateStayDays(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		checkIn time.Time
		want    int
	}{
		{"same instant bills one day", now, 1},
		{"a few hours bills one day", now.Add(-5 * time.Hour), 1},
		{"exactly 24 hours bills one day", now.Add(-24 * time.Hour), 1},
		{"24h plus a minute rounds up", now.Add(-24*time.Hour - time.Minute), 2},
		{"36 hours bills two days", now.Add(-36 * time.Hour), 2},
		{"ten and a half days bills eleven", now.Add(-252 * time.Hour), 11},
		{"clock skew never bills zero", now.Add(time.Hour), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateStayDays(tc.checkIn, now))
		})
	}
}

func TestBuildDischargeRejectsInactiveAdmission(t *testing.T) {
	now := time.Now().UTC()
	admission := activeAdmission(now.Add(-24*time.Hour), 1000)
	admission["status"] = utils.AdmissionCompleted

	admUpdate, billing, _, err := buildDischarge(admission, DischargeRequest{}, "Jane Doe", "B001", now)
	assert.ErrorIs(t, err, utils.ErrAdmissionNotActive)
	assert.Nil(t, admUpdate)
	assert.Nil(t, billing)
}

func TestBuildDischargeRoomCharges(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	admission := activeAdmission(now.Add(-36*time.Hour), 1000)
	req := DischargeRequest{DoctorFee: 750, OtherCharges: 125.5, OtherDescription: "Physio session"}

	_, billing, result, err := buildDischarge(admission, req, "Jane Doe", "B001", now)
	require.NoError(t, err)

	assert.Equal(t, 2, result.StayDays)
	assert.Equal(t, float64(2000), result.RoomCharges)
	assert.Equal(t, 2000+750+125.5, result.TotalAmount)
	assert.Equal(t, result.TotalAmount, billing["totalAmount"])
	assert.Equal(t, utils.BillingPending, billing["status"])
	assert.Nil(t, billing["paymentMethod"])
	assert.Nil(t, billing["paidAt"])
	assert.Nil(t, billing["paymentReference"])
}

func TestBuildDischargeMissingCheckInFallsBackToNow(t *testing.T) {
	now := time.Now().UTC()
	admission := activeAdmission(now, 1000)
	delete(admission, "checkInAt")

	_, _, result, err := buildDischarge(admission, DischargeRequest{}, "Jane Doe", "B001", now)
	require.NoError(t, err)
	assert.Equal(t, 1, result.StayDays)
	assert.Equal(t, float64(1000), result.RoomCharges)
}

func TestBuildDischargeOtherServices(t *testing.T) {
	now := time.Now().UTC()

	_, billing, _, err := buildDischarge(activeAdmission(now, 500), parseDischargeRequest(map[string]interface{}{}), "Jane Doe", "B001", now)
	require.NoError(t, err)
	assert.Empty(t, billing["otherServices"])

	req := parseDischargeRequest(map[string]interface{}{"otherCharges": float64(500)})
	_, billing, result, err := buildDischarge(activeAdmission(now, 500), req, "Jane Doe", "B002", now)
	require.NoError(t, err)

	services, ok := billing["otherServices"].([]models.ServiceCharge)
	require.True(t, ok)
	require.Len(t, services, 1)
	assert.Equal(t, utils.DefaultOtherDescription, services[0].Description)
	assert.Equal(t, float64(500), services[0].Amount)
	assert.Equal(t, float64(500+500), result.TotalAmount)
}

func TestBuildDischargeStagedAdmissionUpdate(t *testing.T) {
	now := time.Now().UTC()
	admission := activeAdmission(now.Add(-2*time.Hour), 800)
	req := parseDischargeRequest(map[string]interface{}{"notes": "  follow up in two weeks  "})

	admUpdate, billing, result, err := buildDischarge(admission, req, "Jane Doe", "B003", now)
	require.NoError(t, err)

	assert.Equal(t, utils.AdmissionCompleted, admUpdate["status"])
	assert.Equal(t, now, admUpdate["checkOutAt"])
	assert.Equal(t, "B003", admUpdate["billingId"])
	assert.Equal(t, "follow up in two weeks", admUpdate["notes"])
	assert.Equal(t, "B003", result.BillingId)
	assert.Equal(t, "APP001", billing["appointmentId"])
}

func TestBuildDischargePreservesNotesWhenAbsent(t *testing.T) {
	now := time.Now().UTC()
	admUpdate, _, _, err := buildDischarge(activeAdmission(now, 800), DischargeRequest{}, "Jane Doe", "B004", now)
	require.NoError(t, err)

	_, staged := admUpdate["notes"]
	assert.False(t, staged, "empty notes must not clobber the stored value")
}

func TestBuildDischargeSkipsMissingLinks(t *testing.T) {
	now := time.Now().UTC()
	admission := activeAdmission(now, 800)
	delete(admission, "appointmentId")
	delete(admission, "roomId")

	_, billing, _, err := buildDischarge(admission, DischargeRequest{}, "Jane Doe", "B005", now)
	require.NoError(t, err)

	_, linked := billing["appointmentId"]
	assert.False(t, linked, "billing must not reference a missing appointment")
}

func TestParseDischargeRequestDefaults(t *testing.T) {
	req := parseDischargeRequest(map[string]interface{}{})
	assert.Zero(t, req.DoctorFee)
	assert.Zero(t, req.OtherCharges)
	assert.Equal(t, utils.DefaultOtherDescription, req.OtherDescription)
	assert.Empty(t, req.Notes)

	req = parseDischargeRequest(map[string]interface{}{
		"doctorFee":        float64(300),
		"otherCharges":     float64(50),
		"otherDescription": "  Ambulance  ",
	})
	assert.Equal(t, float64(300), req.DoctorFee)
	assert.Equal(t, float64(50), req.OtherCharges)
	assert.Equal(t, "Ambulance", req.OtherDescription)
}

// memoryAdmissions mimics the transactional read-check-write cycle:
// each attempt re-reads the current status under the lock before
// staging, exactly as the real transaction does against fresh state.
type memoryAdmissions struct {
	mu       sync.Mutex
	doc      map[string]interface{}
	billings []bson.M
}

func (s *memoryAdmissions) discharge(req DischargeRequest, now time.Time) (DischargeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admUpdate, billing, result, err := buildDischarge(s.doc, req, "Jane Doe", primitive.NewObjectID().Hex(), now)
	if err != nil {
		return DischargeResult{}, err
	}
	for k, v := range admUpdate {
		s.doc[k] = v
	}
	s.billings = append(s.billings, billing)
	return result, nil
}

func TestConcurrentDischargeBillsExactlyOnce(t *testing.T) {
	now := time.Now().UTC()
	store := &memoryAdmissions{doc: activeAdmission(now.Add(-30*time.Hour), 1000)}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.discharge(DischargeRequest{}, now)
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case err == utils.ErrAdmissionNotActive:
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one discharge must win")
	assert.Equal(t, 1, rejected, "the loser must see the not-active conflict")
	assert.Len(t, store.billings, 1, "exactly one billing record may exist")
	assert.Equal(t, utils.AdmissionCompleted, store.doc["status"])
}
