package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOccasionDetails_AllKinds(t *testing.T) {
	for _, kind := range AllOccasions {
		details, err := NewOccasionDetails(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, details.Kind())
		assert.Empty(t, details.Fields())
	}

	_, err := NewOccasionDetails("Housewarming")
	assert.ErrorIs(t, err, ErrUnknownOccasion)
}

func TestOccasionDetails_Set(t *testing.T) {
	details, err := NewOccasionDetails(OccasionBirthday)
	require.NoError(t, err)

	require.NoError(t, details.Set("birthdayPerson", "Asha"))
	require.NoError(t, details.Set("age", "7"))
	assert.Equal(t, map[string]string{"birthdayPerson": "Asha", "age": "7"}, details.Fields())

	err = details.Set("partnerName", "Ravi")
	assert.ErrorIs(t, err, ErrUnknownOccasionField)
	assert.NotContains(t, details.Fields(), "partnerName")
}

func TestUnmarshalOccasionDetails(t *testing.T) {
	details, err := UnmarshalOccasionDetails(OccasionAnniversary, []byte(`{"yourName":"Ravi","yearsTogether":"5"}`))
	require.NoError(t, err)
	assert.Equal(t, &AnniversaryDetails{YourName: "Ravi", YearsTogether: "5"}, details)

	details, err = UnmarshalOccasionDetails(OccasionFarewell, []byte("null"))
	require.NoError(t, err)
	assert.Equal(t, &FarewellDetails{}, details)

	details, err = UnmarshalOccasionDetails(OccasionNone, []byte(`{"age":"3"}`))
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestBookingSelection_JSON(t *testing.T) {
	sel := BookingSelection{
		PersonalDetails: PersonalDetails{Name: "Asha Rao", Phone: "9876543210", Email: "asha@example.com"},
		Package:         "Couples Theatre - 1111",
		Occasion:        &RomanticDateDetails{YourName: "Asha", PartnerName: "Ravi"},
		NeedsPackage:    NeedsPackageNo,
	}

	raw, err := json.Marshal(sel)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"occasion":"Romantic Date"`)
	assert.Contains(t, string(raw), `"needs_package":"No"`)

	var decoded BookingSelection
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, sel, decoded)
}

func TestParseNeedsPackage(t *testing.T) {
	tests := []struct {
		raw     string
		want    NeedsPackage
		wantErr bool
	}{
		{raw: "", want: NeedsPackageUnset},
		{raw: "Yes", want: NeedsPackageYes},
		{raw: "No", want: NeedsPackageNo},
		{raw: "yes", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseNeedsPackage(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidNeedsPackage)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	assert.True(t, NeedsPackageYes.Bool())
	assert.False(t, NeedsPackageNo.Bool())
	assert.False(t, NeedsPackageUnset.IsSet())
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	_, err = ParseBookingStatus("completed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOccasionFieldNames_MatchVariants(t *testing.T) {
	for _, kind := range AllOccasions {
		names := OccasionFieldNames(kind)
		require.NotEmpty(t, names, kind)

		details, err := NewOccasionDetails(kind)
		require.NoError(t, err)
		for _, name := range names {
			require.NoError(t, details.Set(name, "x"), "%s.%s", kind, name)
		}
		assert.Len(t, details.Fields(), len(names), kind)
	}

	assert.Empty(t, OccasionFieldNames(OccasionNone))
}
