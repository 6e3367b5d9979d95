package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// OccasionKind identifies the celebration the theatre is booked for
type OccasionKind string

const (
	OccasionNone               OccasionKind = ""
	OccasionBirthday           OccasionKind = "Birthday"
	OccasionAnniversary        OccasionKind = "Anniversary"
	OccasionRomanticDate       OccasionKind = "Romantic Date"
	OccasionMarriageProposal   OccasionKind = "Marriage Proposal"
	OccasionBrideToBe          OccasionKind = "Bride to Be"
	OccasionGroomToBe          OccasionKind = "Groom to Be"
	OccasionFarewell           OccasionKind = "Farewell"
	OccasionVictoryCelebration OccasionKind = "Victory Celebration"
	OccasionBabyShower         OccasionKind = "Baby Shower"
)

// AllOccasions in the order the website lists them
var AllOccasions = []OccasionKind{
	OccasionBirthday,
	OccasionAnniversary,
	OccasionRomanticDate,
	OccasionMarriageProposal,
	OccasionBrideToBe,
	OccasionGroomToBe,
	OccasionFarewell,
	OccasionVictoryCelebration,
	OccasionBabyShower,
}

var (
	ErrUnknownOccasion      = errors.New("domain: unknown occasion")
	ErrUnknownOccasionField = errors.New("domain: field does not belong to occasion")
)

// OccasionDetails is implemented by one struct per occasion.
// Each variant only accepts its own fields.
type OccasionDetails interface {
	Kind() OccasionKind
	// Set assigns one field by its form name
	Set(field, value string) error
	// Fields returns the filled-in fields by form name
	Fields() map[string]string
}

var occasionFieldNames = map[OccasionKind][]string{
	OccasionBirthday:           {"birthdayPerson", "age"},
	OccasionAnniversary:        {"yourName", "partnerName", "yearsTogether"},
	OccasionRomanticDate:       {"yourName", "partnerName"},
	OccasionMarriageProposal:   {"yourName", "partnerName", "specialMessage"},
	OccasionBrideToBe:          {"brideName", "specialMessage"},
	OccasionGroomToBe:          {"groomName", "specialMessage"},
	OccasionFarewell:           {"farewellPerson", "specialMessage"},
	OccasionVictoryCelebration: {"victoryPersonTeam", "specialMessage"},
	OccasionBabyShower:         {"motherName", "specialMessage"},
}

// OccasionFieldNames lists the detail fields the occasion accepts, in form order
func OccasionFieldNames(kind OccasionKind) []string {
	return append([]string(nil), occasionFieldNames[kind]...)
}

// NewOccasionDetails returns empty details for the occasion
func NewOccasionDetails(kind OccasionKind) (OccasionDetails, error) {
	switch kind {
	case OccasionBirthday:
		return &BirthdayDetails{}, nil
	case OccasionAnniversary:
		return &AnniversaryDetails{}, nil
	case OccasionRomanticDate:
		return &RomanticDateDetails{}, nil
	case OccasionMarriageProposal:
		return &MarriageProposalDetails{}, nil
	case OccasionBrideToBe:
		return &BrideToBeDetails{}, nil
	case OccasionGroomToBe:
		return &GroomToBeDetails{}, nil
	case OccasionFarewell:
		return &FarewellDetails{}, nil
	case OccasionVictoryCelebration:
		return &VictoryCelebrationDetails{}, nil
	case OccasionBabyShower:
		return &BabyShowerDetails{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOccasion, kind)
	}
}

// MarshalOccasionDetails encodes the variant fields; nil details encode as null
func MarshalOccasionDetails(d OccasionDetails) (json.RawMessage, error) {
	if d == nil {
		return json.RawMessage("null"), nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal %s details: %w", d.Kind(), err)
	}
	return raw, nil
}

// UnmarshalOccasionDetails decodes details of the given kind.
// An empty kind yields nil details regardless of the payload.
func UnmarshalOccasionDetails(kind OccasionKind, raw []byte) (OccasionDetails, error) {
	if kind == OccasionNone {
		return nil, nil
	}
	details, err := NewOccasionDetails(kind)
	if err != nil {
		return nil, err
	}
	if isNullJSON(raw) {
		return details, nil
	}
	if err := json.Unmarshal(raw, details); err != nil {
		return nil, fmt.Errorf("unmarshal %s details: %w", kind, err)
	}
	return details, nil
}

func unknownField(kind OccasionKind, field string) error {
	return fmt.Errorf("%w: %q is not a %s field", ErrUnknownOccasionField, field, kind)
}

// fields собирает непустые значения в map
func fields(pairs ...string) map[string]string {
	out := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			out[pairs[i]] = pairs[i+1]
		}
	}
	return out
}

type BirthdayDetails struct {
	BirthdayPerson string `json:"birthdayPerson,omitempty"`
	Age            string `json:"age,omitempty"`
}

func (d *BirthdayDetails) Kind() OccasionKind { return OccasionBirthday }

func (d *BirthdayDetails) Set(field, value string) error {
	switch field {
	case "birthdayPerson":
		d.BirthdayPerson = value
	case "age":
		d.Age = value
	default:
		return unknownField(d.Kind(), field)
	}
	return nil
}

func (d *BirthdayDetails) Fields() map[string]string {
	return fields("birthdayPerson", d.BirthdayPerson, "age", d.Age)
}

type AnniversaryDetails struct {
	YourName      string `json:"yourName,omitempty"`
	PartnerName   string `json:"partnerName,omitempty"`
	YearsTogether string `json:"yearsTogether,omitempty"`
}

func (d *AnniversaryDetails) Kind() OccasionKind { return OccasionAnniversary }

func (d *AnniversaryDetails) Set(field, value string) error {
	switch field {
	case "yourName":
		d.YourName = value
	case "partnerName":
		d.PartnerName = value
	case "yearsTogether":
		d.YearsTogether = value
	default:
		return unknownField(d.Kind(), field)
	}
	return nil
}

func (d *AnniversaryDetails) Fields() map[string]string {
	return fields("yourName", d.YourName, "partnerName", d.PartnerName, "yearsTogether", d.YearsTogether)
}

type RomanticDateDetails struct {
	YourName    string `json:"yourName,omitempty"`
	PartnerName string `json:"partnerName,omitempty"`
}

func (d *RomanticDateDetails) Kind() OccasionKind { return OccasionRomanticDate }

func (d *RomanticDateDetails) Set(field, value string) error {
	switch field {
	case "yourName":
		d.YourName = value
	case "partnerName":
		d.PartnerName = value
	default:
		return unknownField(d.Kind(), field)
	}
	return nil
}

func (d *RomanticDateDetails) Fields() map[string]string {
	return fields("yourName", d.YourName, "partnerName", d.PartnerName)
}

type MarriageProposalDetails struct {
	YourName       string `json:"yourName,omitempty"`
	PartnerName    string `json:"partnerName,omitempty"`
	SpecialMessage string `json:"specialMessage,omitempty"`
}

func (d *MarriageProposalDetails) Kind() OccasionKind { return OccasionMarriageProposal }

func (d *MarriageProposalDetails) Set(field, value string) error {
	switch field {
	case "yourName":
		d.YourName = value
	case "partnerName":
		d.PartnerName = value
	case "specialMessage":
		d.SpecialMessage = value
	default:
		return unknownField(d.Kind(), field)
	}
	return nil
}

func (d *MarriageProposalDetails) Fields() map[string]string {
	return fields("yourName", d.YourName, "partnerName", d.PartnerName, "specialMessage", d.SpecialMessage)
}

type BrideToBeDetails struct {
	BrideName      string `json:"brideName,omitempty"`
	SpecialMessage string `json:"specialMessage,omitempty"`
}

func (d *BrideToBeDetails) Kind() OccasionKind { return OccasionBrideToBe }

func (d *BrideToBeDetails) Set(field, value string) error {
	switch field {
	case "brideName":
		d.BrideName = value
	case "specialMessage":
		d.SpecialMessage = value
	default:
		return unknownField(d.Kind(), field)
	}
	return nil
}

func (d *BrideToBeDetails) Fields() map[string]string {
	return fields("brideName", d.BrideName, "specialMessage", d.SpecialMessage)
}

type GroomToBeDetails struct {
	GroomName      string `json:"groomName,omitempty"`
	SpecialMessage string `json:"specialMessage,omitempty"`
}

func (d *GroomToBeDetails) Kind() OccasionKind { return OccasionGroomToBe }

func (d *GroomToBeDetails) Set(field, value string) error {
	switch field {
	case "groomName":
		d.GroomName = value
	case "specialMessage":
		d.SpecialMessage = value
	default:
		return unknownField(d.Kind(), field)
	}
	return nil
}

func (d *GroomToBeDetails) Fields() map[string]string {
	return fields("groomName", d.GroomName, "specialMessage", d.SpecialMessage)
}

type FarewellDetails struct {
	FarewellPerson string `json:"farewellPerson,omitempty"`
	SpecialMessage string `json:"specialMessage,omitempty"`
}

func (d *FarewellDetails) Kind() OccasionKind { return OccasionFarewell }

func (d *FarewellDetails) Set(field, value string) error {
	switch field {
	case "farewellPerson":
		d.FarewellPerson = value
	case "specialMessage":
		d.SpecialMessage = value
	default:
		return unknownField(d.Kind(), field)
	}
	return nil
}

func (d *FarewellDetails) Fields() map[string]string {
	return fields("farewellPerson", d.FarewellPerson, "specialMessage", d.SpecialMessage)
}

type VictoryCelebrationDetails struct {
	VictoryPersonTeam string `json:"victoryPersonTeam,omitempty"`
	SpecialMessage    string `json:"specialMessage,omitempty"`
}

func (d *VictoryCelebrationDetails) Kind() OccasionKind { return OccasionVictoryCelebration }

func (d *VictoryCelebrationDetails) Set(field, value string) error {
	switch field {
	case "victoryPersonTeam":
		d.VictoryPersonTeam = value
	case "specialMessage":
		d.SpecialMessage = value
	default:
		return unknownField(d.Kind(), field)
	}
	return nil
}

func (d *VictoryCelebrationDetails) Fields() map[string]string {
	return fields("victoryPersonTeam", d.VictoryPersonTeam, "specialMessage", d.SpecialMessage)
}

type BabyShowerDetails struct {
	MotherName     string `json:"motherName,omitempty"`
	SpecialMessage string `json:"specialMessage,omitempty"`
}

func (d *BabyShowerDetails) Kind() OccasionKind { return OccasionBabyShower }

func (d *BabyShowerDetails) Set(field, value string) error {
	switch field {
	case "motherName":
		d.MotherName = value
	case "specialMessage":
		d.SpecialMessage = value
	default:
		return unknownField(d.Kind(), field)
	}
	return nil
}

func (d *BabyShowerDetails) Fields() map[string]string {
	return fields("motherName", d.MotherName, "specialMessage", d.SpecialMessage)
}
