package bookingform

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/internal/pricing"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeTracker struct {
	created   []domain.BookingActivity
	updated   []domain.BookingActivity
	createErr error
	updateErr error
}

func (f *fakeTracker) CreateActivity(_ context.Context, a *domain.BookingActivity) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, *a)
	return uuid.New(), nil
}

func (f *fakeTracker) UpdateActivity(_ context.Context, a *domain.BookingActivity) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, *a)
	return nil
}

type fakeSubmitter struct {
	calls       int
	activityIDs []*uuid.UUID
	err         error
}

func (f *fakeSubmitter) Submit(_ context.Context, sel *domain.BookingSelection, activityID *uuid.UUID) (*Receipt, error) {
	f.calls++
	f.activityIDs = append(f.activityIDs, activityID)
	if f.err != nil {
		return nil, f.err
	}
	return &Receipt{BookingID: uuid.New(), TotalPrice: 3611}, nil
}

var testNow = time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

func newMachine(tracker *fakeTracker, submitter *fakeSubmitter) *Machine {
	return NewMachine(tracker, submitter, pricing.Default(), nopLogger{}).WithTimeProvider(fixedTime{testNow})
}

func fillPersonal(t *testing.T, f *Form) {
	t.Helper()
	require.NoError(t, f.Set(FieldName, "Asha Rao"))
	require.NoError(t, f.Set(FieldPhone, "9876543210"))
	require.NoError(t, f.Set(FieldEmail, "asha@example.com"))
}

func fillBooking(t *testing.T, f *Form) {
	t.Helper()
	require.NoError(t, f.Set(FieldLocation, domain.LocationRRNagar))
	require.NoError(t, f.Set(FieldDate, "2026-03-20"))
	require.NoError(t, f.Set(FieldTime, "2:00 PM"))
	require.NoError(t, f.Set(FieldPackage, "Couples Theatre - 1111"))
	require.NoError(t, f.Set(FieldOccasion, string(domain.OccasionBirthday)))
	require.NoError(t, f.Set("occasion_details.birthdayPerson", "Ravi"))
	require.NoError(t, f.Set(FieldCake, "Chocolate Cake - 500"))
	require.NoError(t, f.Set(FieldNeedsPackage, "Yes"))
}

func TestPersonalFieldValidation(t *testing.T) {
	tests := []struct {
		field string
		value string
		want  string
	}{
		{field: FieldName, value: "  ", want: "Name is required"},
		{field: FieldName, value: "Al", want: "Name must be at least 3 characters"},
		{field: FieldName, value: "R2D2 Unit", want: "Name can only contain letters and spaces"},
		{field: FieldName, value: "  Asha Rao ", want: ""},
		{field: FieldPhone, value: "", want: "Phone number is required"},
		{field: FieldPhone, value: "987654321", want: "Please enter a valid 10-digit mobile number"},
		{field: FieldPhone, value: "5876543210", want: "Please enter a valid 10-digit mobile number"},
		{field: FieldPhone, value: "6000000000", want: ""},
		{field: FieldEmail, value: "asha@", want: "Please enter a valid email address"},
		{field: FieldEmail, value: "Asha.Rao@Example.IN", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+tt.value, func(t *testing.T) {
			f := New(uuid.New(), false, testNow)
			require.NoError(t, f.SetPersonalField(tt.field, tt.value))
			assert.Equal(t, tt.want, f.FieldErrors[tt.field])
		})
	}
}

func TestNext_BlockedByInvalidPhone(t *testing.T) {
	for _, phone := range []string{"98765", "4876543210"} {
		tracker := &fakeTracker{}
		m := newMachine(tracker, &fakeSubmitter{})
		f := New(uuid.New(), false, testNow)
		fillPersonal(t, f)
		require.NoError(t, f.Set(FieldPhone, phone))

		err := m.Next(context.Background(), f)

		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, StateStep1PersonalDetails, f.State)
		assert.Equal(t, MsgPersonalDetailsIncomplete, f.Error)
		assert.Contains(t, f.FieldErrors, FieldPhone)
		assert.Empty(t, tracker.created)
	}
}

func TestNext_RequireAddress(t *testing.T) {
	m := newMachine(&fakeTracker{}, &fakeSubmitter{})
	f := New(uuid.New(), true, testNow)
	fillPersonal(t, f)

	assert.ErrorIs(t, m.Next(context.Background(), f), ErrValidation)
	assert.Equal(t, "Address is required", f.FieldErrors[FieldAddress])

	require.NoError(t, f.Set(FieldAddress, "12 MG Road"))
	require.NoError(t, m.Next(context.Background(), f))
	assert.Equal(t, StateStep2OccasionAndPackage, f.State)
}

func TestNext_TracksActivityOnce(t *testing.T) {
	tracker := &fakeTracker{}
	m := newMachine(tracker, &fakeSubmitter{})
	f := New(uuid.New(), false, testNow)
	fillPersonal(t, f)

	require.NoError(t, m.Next(context.Background(), f))
	require.True(t, f.Tracking.IsSet())
	require.Len(t, tracker.created, 1)
	assert.Equal(t, domain.FunnelStepPersonalDetails, tracker.created[0].StepCompleted)
	assert.Equal(t, testNow, tracker.created[0].LastActive)

	require.NoError(t, f.Back())
	require.NoError(t, m.Next(context.Background(), f))

	assert.Len(t, tracker.created, 1)
	assert.Len(t, tracker.updated, 1)
}

func TestNext_TrackingFailureDoesNotBlock(t *testing.T) {
	tracker := &fakeTracker{createErr: errors.New("db down")}
	m := newMachine(tracker, &fakeSubmitter{})
	f := New(uuid.New(), false, testNow)
	fillPersonal(t, f)

	require.NoError(t, m.Next(context.Background(), f))
	assert.Equal(t, StateStep2OccasionAndPackage, f.State)
	assert.False(t, f.Tracking.IsSet())
}

func TestBack_PreservesData(t *testing.T) {
	m := newMachine(&fakeTracker{}, &fakeSubmitter{})
	f := New(uuid.New(), false, testNow)
	fillPersonal(t, f)
	require.NoError(t, m.Next(context.Background(), f))
	fillBooking(t, f)
	before := f.Selection

	require.NoError(t, f.Back())

	assert.Equal(t, StateStep1PersonalDetails, f.State)
	assert.Equal(t, before, f.Selection)
	assert.ErrorIs(t, f.Back(), ErrInvalidTransition)
}

func TestSetOccasion_ClearsDetails(t *testing.T) {
	m := newMachine(&fakeTracker{}, &fakeSubmitter{})
	f := New(uuid.New(), false, testNow)
	fillPersonal(t, f)
	require.NoError(t, m.Next(context.Background(), f))

	require.NoError(t, f.Set(FieldOccasion, "Birthday"))
	require.NoError(t, f.Set("occasion_details.birthdayPerson", "Ravi"))
	require.NoError(t, f.Set("occasion_details.age", "30"))

	require.NoError(t, f.Set(FieldOccasion, "Anniversary"))

	assert.Equal(t, domain.OccasionAnniversary, f.Selection.OccasionKind())
	assert.Empty(t, f.Selection.Occasion.Fields())
	assert.ErrorIs(t, f.Set("occasion_details.birthdayPerson", "Ravi"), ErrUnknownField)
}

func TestSetField_WrongStep(t *testing.T) {
	f := New(uuid.New(), false, testNow)

	assert.ErrorIs(t, f.Set(FieldPackage, "Couples Theatre - 1111"), ErrFieldNotEditable)
	assert.ErrorIs(t, f.Set("additional_options.decoration", "true"), ErrFieldNotEditable)
	assert.ErrorIs(t, f.Set("shoe_size", "9"), ErrFieldNotEditable)
}

func TestSubmit_ValidationFailure(t *testing.T) {
	submitter := &fakeSubmitter{}
	m := newMachine(&fakeTracker{}, submitter)
	f := New(uuid.New(), false, testNow)
	fillPersonal(t, f)
	require.NoError(t, m.Next(context.Background(), f))
	require.NoError(t, f.Set(FieldPackage, "Couples Theatre - 1111"))

	_, err := m.Submit(context.Background(), f)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StateStep2OccasionAndPackage, f.State)
	assert.Equal(t, MsgBookingDetailsIncomplete, f.Error)
	assert.Contains(t, f.FieldErrors, FieldNeedsPackage)
	assert.NotContains(t, f.FieldErrors, FieldPackage)
	assert.Zero(t, submitter.calls)
}

func TestSubmit_UnknownCatalogItems(t *testing.T) {
	submitter := &fakeSubmitter{}
	m := newMachine(&fakeTracker{}, submitter)
	f := New(uuid.New(), false, testNow)
	fillPersonal(t, f)
	require.NoError(t, m.Next(context.Background(), f))
	fillBooking(t, f)
	require.NoError(t, f.Set(FieldCake, "Rainbow Cake - 9"))
	require.NoError(t, f.Set(AdditionalOptionPrefix+OptionFogEntry, "Mist Entry - 1"))

	_, err := m.Submit(context.Background(), f)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StateStep2OccasionAndPackage, f.State)
	assert.Equal(t, FieldErrors{
		FieldCake:                               "Please choose a valid option",
		AdditionalOptionPrefix + OptionFogEntry: "Please choose a valid option",
	}, f.FieldErrors)
	assert.Zero(t, submitter.calls)
}

func TestBeginSubmit_ThenCompleteSubmit(t *testing.T) {
	submitter := &fakeSubmitter{}
	m := newMachine(&fakeTracker{}, submitter)
	f := New(uuid.New(), false, testNow)
	fillPersonal(t, f)
	require.NoError(t, m.Next(context.Background(), f))
	fillBooking(t, f)

	require.NoError(t, m.BeginSubmit(context.Background(), f))
	assert.Equal(t, StateSubmitting, f.State)
	assert.Zero(t, submitter.calls)
	assert.ErrorIs(t, m.BeginSubmit(context.Background(), f), ErrSubmitInProgress)

	receipt, err := m.CompleteSubmit(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, f.State)
	assert.Equal(t, receipt, f.Receipt)

	_, err = m.CompleteSubmit(context.Background(), f)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 1, submitter.calls)
}

func TestSubmit_FailureKeepsSelection(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("connection refused")}
	m := newMachine(&fakeTracker{}, submitter)
	f := New(uuid.New(), false, testNow)
	fillPersonal(t, f)
	require.NoError(t, m.Next(context.Background(), f))
	fillBooking(t, f)
	before := f.Selection

	_, err := m.Submit(context.Background(), f)

	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.Equal(t, StateStep2OccasionAndPackage, f.State)
	assert.Equal(t, MsgSubmitFailed, f.Error)
	assert.Equal(t, before, f.Selection)
	assert.True(t, f.Tracking.IsSet())

	require.NoError(t, f.Set(FieldCake, "Kit Jar Cake - 1000"))
	assert.Empty(t, f.Error)

	submitter.err = nil
	receipt, err := m.Submit(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, f.State)
	assert.Equal(t, receipt, f.Receipt)
	assert.Equal(t, 2, submitter.calls)
}

func TestSubmit_SuccessHandsOverTracking(t *testing.T) {
	tracker := &fakeTracker{}
	submitter := &fakeSubmitter{}
	m := newMachine(tracker, submitter)
	f := New(uuid.New(), false, testNow)
	fillPersonal(t, f)
	require.NoError(t, m.Next(context.Background(), f))
	fillBooking(t, f)
	activityID, _ := f.Tracking.ID()

	receipt, err := m.Submit(context.Background(), f)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, receipt.BookingID)
	assert.Equal(t, StateConfirmed, f.State)
	assert.False(t, f.Tracking.IsSet())
	require.Len(t, tracker.updated, 1)
	assert.Equal(t, domain.FunnelStepBookingDetails, tracker.updated[0].StepCompleted)
	require.Len(t, submitter.activityIDs, 1)
	require.NotNil(t, submitter.activityIDs[0])
	assert.Equal(t, activityID, *submitter.activityIDs[0])
}

func TestSubmit_Reentrancy(t *testing.T) {
	submitter := &fakeSubmitter{}
	m := newMachine(&fakeTracker{}, submitter)
	f := New(uuid.New(), false, testNow)
	fillPersonal(t, f)
	require.NoError(t, m.Next(context.Background(), f))
	fillBooking(t, f)

	inFlight := *f
	inFlight.State = StateSubmitting
	_, err := m.Submit(context.Background(), &inFlight)
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.ErrorIs(t, inFlight.Set(FieldCake, "DBC Cake - 800"), ErrSubmitInProgress)

	_, err = m.Submit(context.Background(), f)
	require.NoError(t, err)
	_, err = m.Submit(context.Background(), f)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	assert.Equal(t, 1, submitter.calls)
}

func TestReset(t *testing.T) {
	m := newMachine(&fakeTracker{}, &fakeSubmitter{})
	f := New(uuid.New(), true, testNow)
	id := f.ID
	require.NoError(t, f.Set(FieldAddress, "12 MG Road"))
	fillPersonal(t, f)
	require.NoError(t, m.Next(context.Background(), f))

	f.Reset(testNow.Add(time.Minute))

	assert.Equal(t, id, f.ID)
	assert.True(t, f.RequireAddress)
	assert.Equal(t, StateStep1PersonalDetails, f.State)
	assert.Equal(t, domain.BookingSelection{}, f.Selection)
	assert.False(t, f.Tracking.IsSet())
}

func TestForm_JSONRoundTrip(t *testing.T) {
	m := newMachine(&fakeTracker{}, &fakeSubmitter{})
	f := New(uuid.New(), false, testNow)
	fillPersonal(t, f)
	require.NoError(t, m.Next(context.Background(), f))
	fillBooking(t, f)

	raw, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"state":"step2_occasion_and_package"`)

	var decoded Form
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, f.State, decoded.State)
	assert.Equal(t, f.Tracking, decoded.Tracking)
	assert.Equal(t, f.Selection, decoded.Selection)
}
