package stripe

//go:generate go run go.uber.org/mock/mockgen -source=./stripe.go -destination=./mocks/stripe_mock.go -package=mocks

import (
	"context"
	"fmt"

	"venue/config"
	"venue/infras/otel"
	"venue/shared/constant"

	"github.com/rs/zerolog/log"
	stripeGo "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

const (
	otelAttrSessionID = "session_id"

	// PaymentStatusPaid is Stripe's terminal payment_status for a
	// successfully settled checkout session.
	PaymentStatusPaid = "paid"
)

type CheckoutParams struct {
	ReferenceID   string
	Description   string
	AmountCents   int64
	Currency      string
	CustomerEmail string
}

type CheckoutSession struct {
	ID            string
	URL           string
	Status        string
	PaymentStatus string
}

type Stripe interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (CheckoutSession, error)
}

type stripeImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Stripe {
	stripeGo.Key = cfg.External.Stripe.SecretKey

	log.Info().Msg("Stripe client initialized")

	return &stripeImpl{
		cfg:  cfg,
		otel: otel,
	}
}

// CreateCheckoutSession opens a hosted checkout page for a single line item.
func (svc *stripeImpl) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (res CheckoutSession, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelStripeScopeName, constant.OtelStripeScopeName+".CreateCheckoutSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionParams := &stripeGo.CheckoutSessionParams{
		Mode:              stripeGo.String(string(stripeGo.CheckoutSessionModePayment)),
		ClientReferenceID: stripeGo.String(params.ReferenceID),
		SuccessURL:        stripeGo.String(svc.cfg.External.Stripe.SuccessURL),
		CancelURL:         stripeGo.String(svc.cfg.External.Stripe.CancelURL),
		LineItems: []*stripeGo.CheckoutSessionLineItemParams{
			{
				Quantity: stripeGo.Int64(1),
				PriceData: &stripeGo.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripeGo.String(params.Currency),
					UnitAmount: stripeGo.Int64(params.AmountCents),
					ProductData: &stripeGo.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripeGo.String(params.Description),
					},
				},
			},
		},
	}
	sessionParams.Context = ctx

	if params.CustomerEmail != constant.Empty {
		sessionParams.CustomerEmail = stripeGo.String(params.CustomerEmail)
	}

	created, err := session.New(sessionParams)
	if err != nil {
		log.Error().Err(err).Str("referenceID", params.ReferenceID).Msg("failed to create checkout session")

		return res, fmt.Errorf("failed to create checkout session: %w", err)
	}

	scope.SetAttribute(otelAttrSessionID, created.ID)

	return fromSession(created), nil
}

// GetCheckoutSession fetches the current state of a checkout session.
func (svc *stripeImpl) GetCheckoutSession(ctx context.Context, id string) (res CheckoutSession, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelStripeScopeName, constant.OtelStripeScopeName+".GetCheckoutSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrSessionID, id)

	params := &stripeGo.CheckoutSessionParams{}
	params.Context = ctx

	got, err := session.Get(id, params)
	if err != nil {
		log.Error().Err(err).Str("sessionID", id).Msg("failed to get checkout session")

		return res, fmt.Errorf("failed to get checkout session: %w", err)
	}

	return fromSession(got), nil
}

func fromSession(sess *stripeGo.CheckoutSession) CheckoutSession {
	return CheckoutSession{
		ID:            sess.ID,
		URL:           sess.URL,
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
	}
}
