package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"venue/config"
	"venue/infras/otel"
	"venue/infras/stripe"
	accountModel "venue/internal/domains/account/model"
	accountRepository "venue/internal/domains/account/repository"
	eventModel "venue/internal/domains/event/model"
	eventRepository "venue/internal/domains/event/repository"
	invoiceModel "venue/internal/domains/invoice/model"
	invoiceRepository "venue/internal/domains/invoice/repository"
	notifModel "venue/internal/domains/notification/model"
	notifDto "venue/internal/domains/notification/model/dto"
	notifService "venue/internal/domains/notification/service"
	"venue/internal/domains/payment/model"
	"venue/internal/domains/payment/model/dto"
	"venue/internal/domains/payment/repository"
	"venue/shared"
	"venue/shared/cache"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
	gModel "venue/shared/model"
	"venue/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Payments interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (dto.PaymentResponse, error)
	Confirm(ctx context.Context, id string) (dto.PaymentResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
}

type serviceImpl struct {
	repo        repository.Payment
	invoiceRepo invoiceRepository.Invoice
	eventRepo   eventRepository.Event
	accountRepo accountRepository.Account
	stripe      stripe.Stripe
	notifier    notifService.Notifications
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Payment,
	invoiceRepo invoiceRepository.Invoice,
	eventRepo eventRepository.Event,
	accountRepo accountRepository.Account,
	stripeClient stripe.Stripe,
	notifier notifService.Notifications,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Payments {
	return &serviceImpl{
		repo:        repo,
		invoiceRepo: invoiceRepo,
		eventRepo:   eventRepo,
		accountRepo: accountRepo,
		stripe:      stripeClient,
		notifier:    notifier,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create opens a payment against an unpaid invoice. A STRIPE payment stays
// pending until its checkout session settles; CASH and TRANSFER payments are
// settled on the spot.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	invoice, err := s.invoiceRepo.Get(ctx, shared.FilterByID(req.InvoiceID, invoiceModel.FieldID, invoiceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice for payment")

		return res, fmt.Errorf("failed to get invoice for payment: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.BadRequestFromString("invoice does not exist") // nolint:wrapcheck
	}

	if invoice.Status == invoiceModel.StatusPaid {
		return res, failure.Conflict("invoice is already paid") // nolint:wrapcheck
	}

	if invoice.Status == invoiceModel.StatusCancelled {
		return res, failure.UnprocessableEntity("invoice has been cancelled") // nolint:wrapcheck
	}

	amount := invoice.TotalAmount
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return res, failure.BadRequestFromString("amount must be positive") // nolint:wrapcheck
		}

		amount = *req.Amount
	}

	event, err := s.eventRepo.Get(ctx, shared.FilterByID(invoice.EventID, eventModel.FieldID, eventModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event for payment")

		return res, fmt.Errorf("failed to get event for payment: %w", err)
	}

	payment := model.Payment{
		ID:        uuid.NewString(),
		InvoiceID: invoice.ID,
		Amount:    amount,
		Method:    req.Method,
		Status:    model.StatusPending,
		Notes:     req.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	var checkoutURL string

	if req.Method == model.MethodStripe {
		checkout, err := s.openCheckout(ctx, payment, invoice, event)
		if err != nil {
			return res, err
		}

		payment.TransactionRef = &checkout.ID
		checkoutURL = checkout.URL
	}

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to create payment")

		return res, fmt.Errorf("failed to create payment: %w", err)
	}

	if req.Method != model.MethodStripe {
		return s.settle(ctx, payment, invoice, event)
	}

	res.FromModel(payment)
	res.CheckoutURL = checkoutURL

	return res, nil
}

// Confirm settles a pending payment. A STRIPE payment is verified against
// its checkout session first; confirming an already settled payment is a
// no-op.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	if payment.Settled() {
		res.FromModel(payment)

		return res, nil
	}

	if payment.Status != model.StatusPending {
		return res, failure.UnprocessableEntity(fmt.Sprintf("cannot confirm a %s payment", payment.Status)) // nolint:wrapcheck
	}

	invoice, err := s.invoiceRepo.Get(ctx, shared.FilterByID(payment.InvoiceID, invoiceModel.FieldID, invoiceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice for payment")

		return res, fmt.Errorf("failed to get invoice for payment: %w", err)
	}

	event, err := s.eventRepo.Get(ctx, shared.FilterByID(invoice.EventID, eventModel.FieldID, eventModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event for payment")

		return res, fmt.Errorf("failed to get event for payment: %w", err)
	}

	if payment.Method == model.MethodStripe {
		if payment.TransactionRef == nil {
			return res, failure.UnprocessableEntity("payment has no checkout session") // nolint:wrapcheck
		}

		session, err := s.stripe.GetCheckoutSession(ctx, *payment.TransactionRef)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		if session.PaymentStatus != stripe.PaymentStatusPaid {
			return res, failure.UnprocessableEntity("payment has not been completed yet") // nolint:wrapcheck
		}
	}

	return s.settle(ctx, payment, invoice, event)
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPayments")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, params)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) openCheckout(ctx context.Context, payment model.Payment, invoice invoiceModel.Invoice, event eventModel.Event) (stripe.CheckoutSession, error) {
	var email string

	if event.AccountID != nil {
		account, err := s.accountRepo.Get(ctx, shared.FilterByID(*event.AccountID, accountModel.FieldID, accountModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get account for checkout")

			return stripe.CheckoutSession{}, fmt.Errorf("failed to get account for checkout: %w", err)
		}

		email = account.Email
	}

	cents := payment.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	return s.stripe.CreateCheckoutSession(ctx, stripe.CheckoutParams{ //nolint:wrapcheck
		ReferenceID:   payment.ID,
		Description:   fmt.Sprintf("Invoice %s - %s", invoice.InvoiceNumber, event.Name),
		AmountCents:   cents,
		Currency:      s.cfg.Booking.Currency,
		CustomerEmail: email,
	})
}

// settle finalizes the payment: the payment, invoice, and event move in one
// transaction, then the account is notified and stale caches dropped.
func (s *serviceImpl) settle(ctx context.Context, payment model.Payment, invoice invoiceModel.Invoice, event eventModel.Event) (res dto.PaymentResponse, err error) {
	paidAt := timezone.Now()

	if err = s.repo.Complete(ctx, payment.ID, invoice.ID, event.ID, paidAt); err != nil {
		log.Error().Err(err).Str("paymentID", payment.ID).Msg("failed to settle payment")

		return res, err //nolint:wrapcheck
	}

	if event.AccountID != nil {
		notification := notifDto.SendNotificationRequest{
			AccountID: event.AccountID,
			Title:     "Payment received",
			Message:   fmt.Sprintf("Payment for invoice %s has been received", invoice.InvoiceNumber),
			Type:      notifModel.TypePaymentReceived,
		}

		if err := s.notifier.Send(ctx, notification); err != nil {
			log.Error().Err(err).Str("paymentID", payment.ID).Msg("failed to send payment notification")
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, "invoice:")
		shared.InvalidateCaches(c, s.cache, "event:")
	}()

	payment.Status = model.StatusCompleted
	payment.PaymentDate = &paidAt
	res.FromModel(payment)

	return res, nil
}
