package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

func intentionRequest() *IntentionRequest {
	return &IntentionRequest{
		AmountCents:      481715,
		Currency:         "EGP",
		PaymentMethods:   []int{4888997},
		SpecialReference: "booking-64f000000000000000000001",
		BillingData: BillingData{
			FirstName:   "Jane",
			LastName:    "Doe",
			PhoneNumber: "01234567890",
			Email:       "jane@example.com",
		},
	}
}

func TestPaymobCreateIntention(t *testing.T) {
	t.Run("Given an accepted intention then the secret and redirect are returned", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/intention/" {
				t.Errorf("path = %s, want /v1/intention/", r.URL.Path)
			}
			gotAuth = r.Header.Get("Authorization")
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"int_123","client_secret":"cs_abc","redirect_url":"https://pay.example.com/int_123"}`))
		}))
		defer server.Close()

		client := NewPaymobClient(utils.PaymentConfig{
			SecretKey: "sk_test",
			BaseURL:   server.URL,
		}, zap.NewNop())

		intention, err := client.CreateIntention(context.Background(), intentionRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intention.ID != "int_123" || intention.ClientSecret != "cs_abc" {
			t.Errorf("intention = %+v", intention)
		}
		if gotAuth != "Bearer sk_test" {
			t.Errorf("authorization = %s, want Bearer sk_test", gotAuth)
		}
		if gotBody["amount"] != float64(481715) {
			t.Errorf("amount = %v, want 481715", gotBody["amount"])
		}
		if gotBody["special_reference"] != "booking-64f000000000000000000001" {
			t.Errorf("special_reference = %v", gotBody["special_reference"])
		}
		if _, ok := gotBody["items"].([]any); !ok {
			t.Errorf("items = %v, want empty array not null", gotBody["items"])
		}
	})

	t.Run("Given a rejection then the error names the status and hides the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"secret key sk_live_leaked is invalid"}`))
		}))
		defer server.Close()

		client := NewPaymobClient(utils.PaymentConfig{
			SecretKey: "sk_test",
			BaseURL:   server.URL,
		}, zap.NewNop())

		_, err := client.CreateIntention(context.Background(), intentionRequest())
		if err == nil {
			t.Fatal("expected error for 401 response")
		}
		if !strings.Contains(err.Error(), "status 401") {
			t.Errorf("error = %v, want status 401", err)
		}
		if strings.Contains(err.Error(), "sk_live_leaked") {
			t.Error("error must not echo the upstream body")
		}
	})
}
