package customers

import (
	"context"
	"customers/pkg/domain"
	"customers/pkg/logger"
	"customers/pkg/result"
	"customers/pkg/serrors"
	"customers/pkg/storage"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "customers/internal/customers"

// Options configure the customer service.
type Options struct {
	// TracerProvider creates the spans wrapping each use case. The global
	// provider is used when nil.
	TracerProvider trace.TracerProvider
}

// service is the concrete implementation of the Service interface.
type service struct {
	tracer  trace.Tracer
	storage storage.Storage
}

func customerNotFound(id domain.CustomerID) error {
	return serrors.With(serrors.ErrNotFound, "Customer with such Id is not found: %d", id)
}

// startSpan opens a span named after the use case. The returned func ends it,
// marking the span failed when *errp is non-nil.
func (s service) startSpan(ctx context.Context,
	name string,
	attrs ...attribute.KeyValue) (context.Context, func(errp *error)) {
	ctx, span := s.tracer.Start(ctx, "customers."+name, trace.WithAttributes(attrs...))

	return ctx, func(errp *error) {
		if errp != nil && *errp != nil {
			span.RecordError(*errp)
			span.SetStatus(codes.Error, (*errp).Error())
		}
		span.End()
	}
}

// requireIndustry makes sure the catalog entry has a row the customer can reference.
func requireIndustry(ctx context.Context, tx storage.AllStorage, industry domain.Industry) error {
	stored, err := tx.IndustryByID(ctx, industry.ID())
	if err != nil {
		return fmt.Errorf("could not get industry: %w", err)
	}
	if stored.HasNoValue() {
		return serrors.With(serrors.ErrInternal, "industry %s is not stored", industry)
	}

	return nil
}

// Create validates the request in the order name, primary email, secondary
// email, industry and stores a new Regular customer. The first failing check
// is returned as a bad request carrying its message; nothing is stored then.
func (s service) Create(ctx context.Context, req CreateRequest) (customer *domain.Customer, err error) {
	ctx, end := s.startSpan(ctx, "Create")
	defer end(&err)

	name := domain.CreateName(req.Name)
	primaryEmail := domain.CreateEmail(req.PrimaryEmail)
	secondaryEmail := result.OkOf(result.None[domain.Email]())
	if req.SecondaryEmail.HasValue() {
		email := domain.CreateEmail(req.SecondaryEmail)
		if email.IsFailure() {
			secondaryEmail = result.FailOf[result.Maybe[domain.Email]](email.Error())
		} else {
			secondaryEmail = result.OkOf(result.Some(email.Value()))
		}
	}
	industry := domain.GetIndustry(req.Industry)

	if r := result.FirstFailure(
		name.Unwrap(),
		primaryEmail.Unwrap(),
		secondaryEmail.Unwrap(),
		industry.Unwrap(),
	); r.IsFailure() {
		return nil, serrors.FromResult(serrors.ErrBadRequest, r)
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := requireIndustry(ctx, tx, industry.Value()); err != nil {
			return err
		}

		stored, err := tx.AddCustomer(ctx, domain.NewCustomer(
			name.Value(),
			primaryEmail.Value(),
			secondaryEmail.Value(),
			industry.Value(),
		))
		if err != nil {
			return fmt.Errorf("could not add customer: %w", err)
		}
		customer = stored

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create customer: %w", err)
	}

	logger.Info(ctx, "customer created",
		zap.Int64("customerId", int64(customer.ID())),
		logger.Email("primaryEmail", customer.PrimaryEmail().String()))

	return customer, nil
}

// Get returns the customer with the given id or a not-found error.
func (s service) Get(ctx context.Context, id domain.CustomerID) (customer *domain.Customer, err error) {
	ctx, end := s.startSpan(ctx, "Get", attribute.Int64("customer.id", int64(id)))
	defer end(&err)

	found, err := s.storage.CustomerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get customer: %w", err)
	}
	if found.HasNoValue() {
		return nil, customerNotFound(id)
	}

	return found.Value(), nil
}

// FindByName returns the first customer, by id, whose name contains text.
func (s service) FindByName(ctx context.Context, text string) (customer *domain.Customer, err error) {
	ctx, end := s.startSpan(ctx, "FindByName")
	defer end(&err)

	if text == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Customer name should not be empty")
	}

	found, err := s.storage.CustomerByName(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("could not find customer: %w", err)
	}
	if found.HasNoValue() {
		return nil, serrors.With(serrors.ErrNotFound, "Customer with such name is not found: %s", text)
	}

	return found.Value(), nil
}

// mutate loads the customer with its row locked, applies fn and writes the
// result back, all in one transaction.
func (s service) mutate(ctx context.Context,
	id domain.CustomerID,
	fn func(tx storage.AllStorage, customer *domain.Customer) error) (*domain.Customer, error) {
	var customer *domain.Customer
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		found, err := tx.CustomerByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get customer: %w", err)
		}
		if found.HasNoValue() {
			return customerNotFound(id)
		}
		c := found.Value()

		if err := fn(tx, c); err != nil {
			return err
		}

		if err := tx.UpdateCustomer(ctx, c); err != nil {
			return fmt.Errorf("could not update customer: %w", err)
		}
		customer = c

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return customer, nil
}

// UpdateIndustry moves the customer to another industry. An unknown customer
// is reported before an invalid industry name.
func (s service) UpdateIndustry(ctx context.Context,
	id domain.CustomerID,
	industryName result.Maybe[string]) (customer *domain.Customer, err error) {
	ctx, end := s.startSpan(ctx, "UpdateIndustry", attribute.Int64("customer.id", int64(id)))
	defer end(&err)

	customer, err = s.mutate(ctx, id, func(tx storage.AllStorage, c *domain.Customer) error {
		industry := domain.GetIndustry(industryName)
		if industry.IsFailure() {
			return serrors.FromResult(serrors.ErrBadRequest, industry.Unwrap())
		}

		if err := requireIndustry(ctx, tx, industry.Value()); err != nil {
			return err
		}
		c.UpdateIndustry(industry.Value())

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not update industry: %w", err)
	}

	return customer, nil
}

// DisableEmailing opts the customer out of campaigns. Disabling twice is a no-op.
func (s service) DisableEmailing(ctx context.Context, id domain.CustomerID) (customer *domain.Customer, err error) {
	ctx, end := s.startSpan(ctx, "DisableEmailing", attribute.Int64("customer.id", int64(id)))
	defer end(&err)

	customer, err = s.mutate(ctx, id, func(_ storage.AllStorage, c *domain.Customer) error {
		c.DisableEmailing()

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not disable emailing: %w", err)
	}

	return customer, nil
}

// Promote moves the customer one tier up. The new tier and the notification
// job are committed together; the email itself is sent by the worker after
// commit and a failed send never rolls the promotion back.
func (s service) Promote(ctx context.Context, id domain.CustomerID) (customer *domain.Customer, err error) {
	ctx, end := s.startSpan(ctx, "Promote", attribute.Int64("customer.id", int64(id)))
	defer end(&err)

	customer, err = s.mutate(ctx, id, func(tx storage.AllStorage, c *domain.Customer) error {
		if !c.CanBePromoted() {
			return serrors.With(serrors.ErrBadRequest, "The customer has the highest status possible")
		}
		c.Promote()

		if err := tx.AddJob(ctx, PromotionNotificationArgs{
			CustomerID: c.ID(),
			Email:      c.PrimaryEmail().String(),
			Status:     c.Status(),
		}, nil); err != nil {
			return fmt.Errorf("could not add promotion notification job: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not promote customer: %w", err)
	}

	logger.Info(ctx, "customer promoted",
		zap.Int64("customerId", int64(customer.ID())),
		zap.String("status", string(customer.Status())))

	return customer, nil
}

// Industries lists the catalog. A non-empty text narrows the result to the
// stored industry whose name contains it, ignoring case.
func (s service) Industries(ctx context.Context, text string) (industries []domain.Industry, err error) {
	ctx, end := s.startSpan(ctx, "Industries")
	defer end(&err)

	if text == "" {
		return domain.Industries(), nil
	}

	found, err := s.storage.IndustryByName(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("could not find industry: %w", err)
	}
	if found.HasNoValue() {
		return []domain.Industry{}, nil
	}

	return []domain.Industry{found.Value()}, nil
}

// New creates a new Service backed by the provided storage and configured
// with the given options.
func New(storage storage.Storage, options Options) Service {
	tp := options.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &service{
		tracer:  tp.Tracer(tracerName),
		storage: storage,
	}
}
