package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"tourbook/internal/domain/booking"
	"tourbook/internal/domain/customer"
	reqdto "tourbook/internal/handler/dto/request"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrActivityNotFound  = errs.New("activity not found")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrCustomerNotFound  = errs.New("customer not found")
	ErrInvalidDateTime   = errs.New("invalid date or time")
	ErrMissingField      = errs.New("missing required field")
	ErrDomainValidation  = errs.New("domain validation error")
	ErrPersistenceFailed = errs.New("persistence operation failed")
)

type CreateBookingResult struct {
	BookingID      uuid.UUID
	TotalPrice     int64
	Currency       string
	Status         booking.Status
	SensitiveSaved bool
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest) (*CreateBookingResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type bookingCommandsImpl struct {
	bookingRepo     BookingRepository
	activityRepo    ActivityRepository
	customerRepo    CustomerRepository
	sensitiveRepo   SensitiveRecordRepository
	bookingServices *booking.Services
	defaultCurrency string
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	activityRepo ActivityRepository,
	customerRepo CustomerRepository,
	sensitiveRepo SensitiveRecordRepository,
	bookingServices *booking.Services,
	defaultCurrency string,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:     bookingRepo,
		activityRepo:    activityRepo,
		customerRepo:    customerRepo,
		sensitiveRepo:   sensitiveRepo,
		bookingServices: bookingServices,
		defaultCurrency: defaultCurrency,
	}
}

// Create runs the booking pipeline: validate, resolve the customer, price,
// persist, then optionally record the raw payload. Writes are strictly
// sequential; the sensitive record is never part of the booking write.
func (b *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest) (*CreateBookingResult, error) {
	schedule, err := booking.NewSchedule(req.Date, req.Time)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateTime)
	}

	activitySnap, err := b.validateAndGetActivity(ctx, req.ActivityID)
	if err != nil {
		return nil, err
	}

	customerSnap, err := b.resolveCustomer(ctx, req.Customer)
	if err != nil {
		return nil, err
	}

	currency := b.defaultCurrency
	if req.Currency != nil && strings.TrimSpace(*req.Currency) != "" {
		currency = *req.Currency
	}

	bookingEntity, err := booking.NewBooking(
		b.bookingServices,
		booking.ActivitySpec{ID: activitySnap.ID, Price: activitySnap.Price},
		customerSnap.ID,
		schedule,
		req.Participants,
		currency,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	bookingID, err := b.bookingRepo.Create(ctx, bookingEntity)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	sensitiveSaved := b.recordSensitive(ctx, bookingID, req)

	return &CreateBookingResult{
		BookingID:      bookingID,
		TotalPrice:     bookingEntity.Total().Units(),
		Currency:       bookingEntity.Total().Currency(),
		Status:         bookingEntity.Status(),
		SensitiveSaved: sensitiveSaved,
	}, nil
}

func (b *bookingCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	next, err := booking.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	current, err := b.bookingRepo.FindStatus(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrPersistenceFailed)
	}

	if !current.CanTransitionTo(next) {
		return errs.Mark(booking.ErrInvalidStatus, ErrDomainValidation)
	}

	if err := b.bookingRepo.UpdateStatus(ctx, id, next); err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}
	return nil
}

func (b *bookingCommandsImpl) validateAndGetActivity(ctx context.Context, activityID uuid.UUID) (*ActivitySnapshot, error) {
	snap, err := b.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}
	return snap, nil
}

// resolveCustomer is find-or-create. An explicit customer id must resolve;
// otherwise the unique email decides, and a concurrent duplicate insert is
// converted into a fetch of the winning row.
func (b *bookingCommandsImpl) resolveCustomer(ctx context.Context, req reqdto.BookingCustomer) (*CustomerSnapshot, error) {
	if req.ID != nil {
		snap, err := b.customerRepo.FindByID(ctx, *req.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrCustomerNotFound
			}
			return nil, errs.Mark(err, ErrPersistenceFailed)
		}
		return snap, nil
	}

	email, err := customer.NewEmail(req.Email)
	if err != nil {
		if errs.Is(err, customer.ErrMissingEmail) {
			return nil, errs.Mark(err, ErrMissingField)
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	existing, err := b.customerRepo.FindByEmail(ctx, email.Value())
	if err == nil {
		return existing, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	entity, err := customer.NewCustomer(req.FullName(email), email, req.Phone, req.Country)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	created, err := b.customerRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost the race against a concurrent request for the same email.
			winner, findErr := b.customerRepo.FindByEmail(ctx, email.Value())
			if findErr != nil {
				return nil, errs.Mark(findErr, ErrPersistenceFailed)
			}
			return winner, nil
		}
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}
	return created, nil
}

// recordSensitive persists the raw billing payload. Failure degrades to a
// warning: the booking has already been committed and must not be rolled back
// by an auxiliary write.
func (b *bookingCommandsImpl) recordSensitive(ctx context.Context, bookingID uuid.UUID, req reqdto.CreateBookingRequest) bool {
	if !b.sensitiveRepo.Enabled() {
		return false
	}

	payload, err := json.Marshal(map[string]any{
		"customer":        req.Customer,
		"billing_address": req.BillingAddress,
		"card":            req.Card,
	})
	if err != nil {
		slog.Warn("failed to encode sensitive payload", "booking_id", bookingID, "error", err.Error())
		return false
	}

	if err := b.sensitiveRepo.Save(ctx, bookingID, payload, req.Notes); err != nil {
		slog.Warn("failed to save sensitive record", "booking_id", bookingID, "error", err.Error())
		return false
	}
	return true
}
