package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"CareHub360/utils"
)

func TestSendWhatsAppMessageWithoutCredentials(t *testing.T) {
	t.Setenv("WHATSAPP_TOKEN", "")
	t.Setenv("WHATSAPP_PHONE_ID", "")

	err := SendWhatsAppMessage("+10000000000", "hello")
	assert.ErrorIs(t, err, utils.ErrWhatsAppNotConfigured)
}

func TestNotifyBestEffortNeverPanics(t *testing.T) {
	t.Setenv("WHATSAPP_TOKEN", "")
	t.Setenv("WHATSAPP_PHONE_ID", "")

	assert.NotPanics(t, func() {
		NotifyBestEffort("", "no phone on record")
		NotifyBestEffort("+10000000000", "credentials missing")
	})
}
