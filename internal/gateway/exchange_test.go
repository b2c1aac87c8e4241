package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestExchangeClientUSDToEGP(t *testing.T) {
	t.Run("Given a valid response then the EGP rate is returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v4/latest/USD" {
				t.Errorf("path = %s, want /v4/latest/USD", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"base":"USD","rates":{"EGP":48.1234,"EUR":0.92}}`))
		}))
		defer server.Close()

		client := NewExchangeClient(server.URL, zap.NewNop())
		rate, err := client.USDToEGP(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rate != 48.1234 {
			t.Errorf("rate = %v, want 48.1234", rate)
		}
	})

	t.Run("Given a response without an EGP rate then the call fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92}}`))
		}))
		defer server.Close()

		client := NewExchangeClient(server.URL, zap.NewNop())
		if _, err := client.USDToEGP(context.Background()); err == nil {
			t.Fatal("expected error for missing EGP rate")
		}
	})

	t.Run("Given a non-positive rate then the call fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"base":"USD","rates":{"EGP":0}}`))
		}))
		defer server.Close()

		client := NewExchangeClient(server.URL, zap.NewNop())
		if _, err := client.USDToEGP(context.Background()); err == nil {
			t.Fatal("expected error for zero rate")
		}
	})

	t.Run("Given an upstream failure then the status is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewExchangeClient(server.URL, zap.NewNop())
		if _, err := client.USDToEGP(context.Background()); err == nil {
			t.Fatal("expected error for 502 response")
		}
	})
}
