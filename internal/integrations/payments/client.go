package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// sessionCreator создание checkout-сессии; в тестах подменяется
type sessionCreator func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)

// Client создает платежные сессии Stripe Checkout
type Client struct {
	enabled    bool
	secretKey  string
	currency   string
	successURL string
	cancelURL  string
	create     sessionCreator
	log        Logger
}

// Config параметры платежного клиента
type Config struct {
	Enabled    bool
	SecretKey  string
	Currency   string
	SuccessURL string
	CancelURL  string
}

func NewClient(cfg Config, log Logger) *Client {
	return &Client{
		enabled:    cfg.Enabled,
		secretKey:  strings.TrimSpace(cfg.SecretKey),
		currency:   strings.ToLower(strings.TrimSpace(cfg.Currency)),
		successURL: strings.TrimSpace(cfg.SuccessURL),
		cancelURL:  strings.TrimSpace(cfg.CancelURL),
		create:     checkoutsession.New,
		log:        log,
	}
}

// CreateCheckout создает одноразовую платежную сессию на сумму группы
func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	if !c.enabled || c.secretKey == "" {
		return nil, ErrDisabled
	}

	// 1. Сумма в минимальных единицах валюты (пайсы для INR)
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, req.Amount.String())
	}
	unitAmount := req.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	description := req.Description
	if description == "" {
		description = "Service payment"
	}

	// 2. Параметры сессии
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(c.successURL),
		CancelURL:         stripe.String(c.cancelURL),
		ClientReferenceID: stripe.String(req.Reference),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(c.currency),
					UnitAmount: stripe.Int64(unitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"group_id":      req.Reference,
			"customer_name": req.CustomerName,
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	if req.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(req.IdempotencyKey)
	}
	params.Context = ctx

	// 3. Создание сессии
	stripe.Key = c.secretKey
	sess, err := c.create(params)
	if err != nil {
		c.log.Error("payments: checkout session for group %s failed: %v", req.Reference, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	c.log.Info("payments: checkout session %s created for group %s, amount=%d %s", sess.ID, req.Reference, unitAmount, c.currency)
	return &Checkout{
		ID:       sess.ID,
		URL:      sess.URL,
		Amount:   unitAmount,
		Currency: c.currency,
	}, nil
}
