package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"CareHub360/utils"
)

const whatsAppEndpoint = "https://graph.facebook.com/v19.0/%s/messages"

/*
* Thin gateway over the Meta Graph messages API
* Credentials come from WHATSAPP_TOKEN / WHATSAPP_PHONE_ID
 */
func SendWhatsAppMessage(phone, message string) error {
	token := os.Getenv("WHATSAPP_TOKEN")
	phoneId := os.Getenv("WHATSAPP_PHONE_ID")
	if token == "" || phoneId == "" {
		return utils.ErrWhatsAppNotConfigured
	}

	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                phone,
		"type":              "text",
		"text": map[string]string{
			"body": message,
		},
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", fmt.Sprintf(whatsAppEndpoint, phoneId), bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		resBody, _ := io.ReadAll(res.Body)
		return fmt.Errorf("whatsapp send failed (%d): %s", res.StatusCode, string(resBody))
	}
	return nil
}

/*
* Side-channel sender: failures are logged, never propagated into
* the primary operation
 */
func NotifyBestEffort(phone, message string) {
	if phone == "" {
		log.Println("Skipping notification, no phone number on record")
		return
	}
	if err := SendWhatsAppMessage(phone, message); err != nil {
		log.Println("Notification send failed:", err)
	}
}
