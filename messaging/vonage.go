package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const defaultVonageURL = "https://messages-sandbox.nexmo.com/v1/messages"

var nonDigits = regexp.MustCompile(`[^0-9]`)

// VonageMessenger delivers WhatsApp messages through the Vonage Messages API.
type VonageMessenger struct {
	APIKey    string
	APISecret string
	From      string
	BaseURL   string
	Client    *http.Client
}

func NewVonageMessenger(apiKey, apiSecret, from string) *VonageMessenger {
	return &VonageMessenger{
		APIKey:    apiKey,
		APISecret: apiSecret,
		From:      from,
		BaseURL:   defaultVonageURL,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type vonageParty struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type vonageContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type vonageMessage struct {
	From    vonageParty   `json:"from"`
	To      vonageParty   `json:"to"`
	Content vonageContent `json:"content"`
}

func (m *VonageMessenger) Send(ctx context.Context, to string, text string) error {
	payload := new(bytes.Buffer)
	err := json.NewEncoder(payload).Encode(&vonageMessage{
		From:    vonageParty{Type: "whatsapp", Number: m.From},
		To:      vonageParty{Type: "whatsapp", Number: formatNumber(to)},
		Content: vonageContent{Type: "text", Text: text},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.BaseURL, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(m.APIKey, m.APISecret)

	resp, err := m.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("vonage status code was %d, body: %s", resp.StatusCode, msg)
	}
	return nil
}

// formatNumber strips punctuation and prefixes the Indian country code the
// shop's customers use, matching what the frontend sends today.
func formatNumber(to string) string {
	cleaned := nonDigits.ReplaceAllString(to, "")
	if strings.HasPrefix(cleaned, "91") && len(cleaned) > 10 {
		return cleaned
	}
	return "91" + cleaned
}
