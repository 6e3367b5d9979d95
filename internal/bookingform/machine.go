package bookingform

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

// Machine runs the guarded transitions of a Form
type Machine struct {
	tracker      ActivityTracker
	submitter    Submitter
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

// NewMachine создает машину состояний формы бронирования
func NewMachine(tracker ActivityTracker, submitter Submitter, catalog Catalog, logger Logger) *Machine {
	return &Machine{
		tracker:      tracker,
		submitter:    submitter,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (m *Machine) WithTimeProvider(tp TimeProvider) *Machine {
	m.timeProvider = tp
	return m
}

// Next moves from personal details to the occasion step.
// Funnel tracking for step 1 is best-effort.
func (m *Machine) Next(ctx context.Context, f *Form) error {
	if f.State != StateStep1PersonalDetails {
		return fmt.Errorf("%w: next from %s", ErrInvalidTransition, f.State)
	}

	// 1. Проверяем персональные данные
	if errs := validatePersonalDetails(f.Selection.PersonalDetails, f.RequireAddress); len(errs) > 0 {
		f.FieldErrors = errs
		f.Error = MsgPersonalDetailsIncomplete
		return fmt.Errorf("%w: %d invalid personal fields", ErrValidation, len(errs))
	}

	// 2. Переходим на второй шаг
	f.State = StateStep2OccasionAndPackage
	f.Error = ""
	f.FieldErrors = FieldErrors{}
	f.UpdatedAt = m.timeProvider.Now()

	// 3. Фиксируем шаг воронки
	m.track(ctx, f, domain.FunnelStepPersonalDetails)
	return nil
}

// Submit validates the occasion step and stores the booking.
// On failure the form returns to step 2 with its data intact.
func (m *Machine) Submit(ctx context.Context, f *Form) (*Receipt, error) {
	if err := m.BeginSubmit(ctx, f); err != nil {
		return nil, err
	}
	return m.CompleteSubmit(ctx, f)
}

// BeginSubmit validates the occasion step and moves the form to Submitting.
// Callers that persist the form should save it before CompleteSubmit so a
// second submit sees the booking in flight.
func (m *Machine) BeginSubmit(ctx context.Context, f *Form) error {
	// 1. Защита от повторной отправки
	switch f.State {
	case StateSubmitting:
		return ErrSubmitInProgress
	case StateConfirmed:
		return ErrAlreadySubmitted
	case StateStep2OccasionAndPackage:
	default:
		return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, f.State)
	}

	// 2. Проверяем данные второго шага
	if errs := validateBookingDetails(&f.Selection, m.catalog); len(errs) > 0 {
		f.FieldErrors = errs
		f.Error = MsgBookingDetailsIncomplete
		return fmt.Errorf("%w: %d invalid booking fields", ErrValidation, len(errs))
	}

	f.State = StateSubmitting
	f.Error = ""
	f.FieldErrors = FieldErrors{}
	f.UpdatedAt = m.timeProvider.Now()

	// 3. Фиксируем второй шаг воронки
	m.track(ctx, f, domain.FunnelStepBookingDetails)
	return nil
}

// CompleteSubmit stores the booking of a form in Submitting
func (m *Machine) CompleteSubmit(ctx context.Context, f *Form) (*Receipt, error) {
	if f.State != StateSubmitting {
		return nil, fmt.Errorf("%w: complete submit from %s", ErrInvalidTransition, f.State)
	}

	var activityID *uuid.UUID
	if id, ok := f.Tracking.ID(); ok {
		activityID = &id
	}

	receipt, err := m.submitter.Submit(ctx, &f.Selection, activityID)
	if err != nil {
		m.logger.Error("BookingForm: form=%s submit failed: %v", f.ID, err)
		f.State = StateStep2OccasionAndPackage
		f.Error = MsgSubmitFailed
		f.UpdatedAt = m.timeProvider.Now()
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	// Бронирование сохранено, запись воронки больше не нужна
	f.State = StateConfirmed
	f.Receipt = receipt
	f.Tracking = NoTracking()
	f.UpdatedAt = m.timeProvider.Now()

	m.logger.Info("BookingForm: form=%s confirmed booking=%s", f.ID, receipt.BookingID)
	return receipt, nil
}

// track creates the activity record on first use and updates it afterwards.
// Errors are logged and swallowed.
func (m *Machine) track(ctx context.Context, f *Form, step domain.FunnelStep) {
	p := f.Selection.PersonalDetails
	if p.Name == "" || p.Email == "" || p.Phone == "" {
		return
	}

	activity := &domain.BookingActivity{
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		StepCompleted: step,
		LastActive:    m.timeProvider.Now(),
	}

	if id, ok := f.Tracking.ID(); ok {
		activity.ID = id
		if err := m.tracker.UpdateActivity(ctx, activity); err != nil {
			m.logger.Warn("BookingForm: form=%s failed to update activity=%s step=%d: %v", f.ID, id, step, err)
		}
		return
	}

	id, err := m.tracker.CreateActivity(ctx, activity)
	if err != nil {
		m.logger.Warn("BookingForm: form=%s failed to create activity step=%d: %v", f.ID, step, err)
		return
	}
	f.Tracking = Tracked(id)
}
