package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/magpress/payment-service/internal/gateway"
	"github.com/magpress/payment-service/internal/models"
	"github.com/stretchr/testify/assert"
)

var testInstrument = models.PaymentInstrument{
	Number: "1234567890123456",
	Type:   models.InstrumentVisa,
}

func TestCharge_Success(t *testing.T) {
	confirmedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("Authorization"))

		var instrument models.PaymentInstrument
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&instrument))
		assert.Equal(t, testInstrument, instrument)

		_ = json.NewEncoder(w).Encode(models.Confirmation{Success: true, Timestamp: confirmedAt})
	}))
	defer ts.Close()

	client := gateway.NewClient(ts.URL, gateway.APIKeyHeaderFactory{APIKey: "secret-key"}, time.Second)

	confirmation, err := client.Charge(context.Background(), testInstrument)

	assert.NoError(t, err)
	assert.True(t, confirmation.Success)
	assert.Equal(t, confirmedAt, confirmation.Timestamp)
}

func TestCharge_DeclineIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Confirmation{Success: false, Timestamp: time.Now().UTC()})
	}))
	defer ts.Close()

	client := gateway.NewClient(ts.URL, gateway.APIKeyHeaderFactory{APIKey: "secret-key"}, time.Second)

	confirmation, err := client.Charge(context.Background(), testInstrument)

	assert.NoError(t, err)
	assert.False(t, confirmation.Success)
}

func TestCharge_NonSuccessStatusReturnsProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad credentials"))
	}))
	defer ts.Close()

	client := gateway.NewClient(ts.URL, gateway.APIKeyHeaderFactory{APIKey: "wrong-key"}, time.Second)

	_, err := client.Charge(context.Background(), testInstrument)

	var providerErr *gateway.ProviderError
	assert.Error(t, err)
	assert.True(t, errors.As(err, &providerErr))
	assert.Equal(t, http.StatusUnauthorized, providerErr.StatusCode)
	assert.Equal(t, "bad credentials", providerErr.Body)
}

func TestCharge_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	client := gateway.NewClient(ts.URL, gateway.APIKeyHeaderFactory{APIKey: "secret-key"}, 20*time.Millisecond)

	_, err := client.Charge(context.Background(), testInstrument)

	assert.ErrorIs(t, err, gateway.ErrGatewayTimeout)
}
