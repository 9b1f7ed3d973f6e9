package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "919876543210", formatNumber("9876543210"))
	assert.Equal(t, "919876543210", formatNumber("+91 98765 43210"))
	assert.Equal(t, "919876543210", formatNumber("919876543210"))
}

func TestVonageSend(t *testing.T) {
	var got vonageMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	m := NewVonageMessenger("key", "secret", "14157386170")
	m.BaseURL = server.URL

	err := m.Send(context.Background(), "9876543210", "Your OTP code is: 123456")
	assert.NoError(t, err)
	assert.Equal(t, "whatsapp", got.To.Type)
	assert.Equal(t, "919876543210", got.To.Number)
	assert.Equal(t, "Your OTP code is: 123456", got.Content.Text)
}

func TestVonageSendErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"title":"Unauthorized"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	m := NewVonageMessenger("key", "wrong", "14157386170")
	m.BaseURL = server.URL

	err := m.Send(context.Background(), "9876543210", "Your OTP code is: 123456")
	assert.Error(t, err)
}
