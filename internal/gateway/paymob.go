package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

// BillingData is the payer profile the gateway requires on an intention.
type BillingData struct {
	Apartment   string `json:"apartment"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Street      string `json:"street"`
	Building    string `json:"building"`
	PhoneNumber string `json:"phone_number"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Email       string `json:"email"`
	Floor       string `json:"floor"`
	State       string `json:"state"`
}

// IntentionRequest is a payment-intention create call. AmountCents is
// the charge in minor currency units.
type IntentionRequest struct {
	AmountCents      int64       `json:"amount"`
	Currency         string      `json:"currency"`
	PaymentMethods   []int       `json:"payment_methods"`
	Items            []any       `json:"items"`
	BillingData      BillingData `json:"billing_data"`
	Extras           map[string]any `json:"extras"`
	SpecialReference string      `json:"special_reference"`
	NotificationURL  string      `json:"notification_url"`
	RedirectionURL   string      `json:"redirection_url"`
}

// Intention is the gateway-side pending charge: the payer finishes it
// at RedirectURL.
type Intention struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
}

// PaymentGateway creates payment intentions on the external processor.
type PaymentGateway interface {
	CreateIntention(ctx context.Context, req *IntentionRequest) (*Intention, error)
}

type PaymobClient struct {
	config utils.PaymentConfig
	client *http.Client
	log    *zap.Logger
}

func NewPaymobClient(config utils.PaymentConfig, log *zap.Logger) *PaymobClient {
	return &PaymobClient{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log.With(zap.String("gateway", "paymob")),
	}
}

func (c *PaymobClient) CreateIntention(ctx context.Context, req *IntentionRequest) (*Intention, error) {
	if req.Items == nil {
		req.Items = []any{}
	}
	if req.Extras == nil {
		req.Extras = map[string]any{}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal intention request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/intention/", c.config.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build intention request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.SecretKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.log.Error("Payment intention request failed", zap.Error(err))
		return nil, fmt.Errorf("payment gateway unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Upstream bodies are logged, never echoed to clients.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Error("Payment gateway rejected intention",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", detail),
			zap.String("special_reference", req.SpecialReference),
		)
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var intention Intention
	if err := json.NewDecoder(resp.Body).Decode(&intention); err != nil {
		return nil, fmt.Errorf("decode intention response: %w", err)
	}

	c.log.Info("Payment intention created",
		zap.String("intention_id", intention.ID),
		zap.String("special_reference", req.SpecialReference),
	)

	return &intention, nil
}
