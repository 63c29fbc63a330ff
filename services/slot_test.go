package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"CareHub360/utils"
)

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"14:30", "14:30"},
		{"2:30 PM", "14:30"},
		{"2:30 pm", "14:30"},
		{"02:30PM", "14:30"},
		{"9:05 am", "09:05"},
		{"12:00 AM", "00:00"},
		{"12:00 PM", "12:00"},
		{"  14:30  ", "14:30"},
	}
	for _, tc := range cases {
		got, err := NormalizeTime(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeTimeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "half past two", "25:99"} {
		_, err := NormalizeTime(in)
		assert.ErrorIs(t, err, utils.ErrInvalidSlotInfo, "input %q", in)
	}
}

func TestNormalizeDate(t *testing.T) {
	for _, in := range []string{"2026-03-15", "15-03-2026", "2026/03/15"} {
		got, err := NormalizeDate(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, "2026-03-15", got, "input %q", in)
	}

	_, err := NormalizeDate("yesterday")
	assert.ErrorIs(t, err, utils.ErrInvalidSlotInfo)
}

func TestBuildSlotKeyCollidesAcrossTimeFormats(t *testing.T) {
	key12, err := BuildSlotKey("D0001", "2026-03-15", "2:30 PM")
	require.NoError(t, err)
	key24, err := BuildSlotKey("D0001", "2026-03-15", "14:30")
	require.NoError(t, err)

	assert.Equal(t, key24, key12, "12h and 24h submissions must reserve the same slot")
}

func TestBuildSlotKeyIsStorageSafe(t *testing.T) {
	key, err := BuildSlotKey("D0001", "2026-03-15", "2:30 PM")
	require.NoError(t, err)

	assert.False(t, strings.ContainsAny(key, ": \t"), "key %q must not contain ':' or whitespace", key)
	assert.Equal(t, "D0001_2026-03-15_14-30", key)
}

func TestBuildSlotKeyRequiresAllInputs(t *testing.T) {
	cases := [][3]string{
		{"", "2026-03-15", "14:30"},
		{"D0001", "", "14:30"},
		{"D0001", "2026-03-15", ""},
		{"   ", "2026-03-15", "14:30"},
	}
	for _, tc := range cases {
		_, err := BuildSlotKey(tc[0], tc[1], tc[2])
		assert.ErrorIs(t, err, utils.ErrInvalidSlotInfo, "inputs %v", tc)
	}
}

func TestSlotInsertErrorMapsDuplicateKeyToConflict(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
	assert.ErrorIs(t, slotInsertError(dup), utils.ErrSlotAlreadyBooked,
		"a second insert at the same key must surface as the booked conflict")

	assert.NoError(t, slotInsertError(nil))

	infra := errors.New("connection reset")
	assert.Equal(t, infra, slotInsertError(infra), "infrastructure failures must pass through untouched")
}
