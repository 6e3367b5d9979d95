package bookingform

import "fmt"

// State of the booking wizard. The zero value is the initial step.
type State uint8

const (
	StateStep1PersonalDetails State = iota
	StateStep2OccasionAndPackage
	StateSubmitting
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StateStep1PersonalDetails:
		return "step1_personal_details"
	case StateStep2OccasionAndPackage:
		return "step2_occasion_and_package"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// CanTransitionTo reports whether the wizard allows moving from s to next
func (s State) CanTransitionTo(next State) bool {
	switch s {
	case StateStep1PersonalDetails:
		return next == StateStep2OccasionAndPackage
	case StateStep2OccasionAndPackage:
		return next == StateStep1PersonalDetails || next == StateSubmitting
	case StateSubmitting:
		return next == StateConfirmed || next == StateStep2OccasionAndPackage
	default:
		return false
	}
}

// IsTerminal is true once the booking has been stored
func (s State) IsTerminal() bool {
	return s == StateConfirmed
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for _, candidate := range []State{
		StateStep1PersonalDetails,
		StateStep2OccasionAndPackage,
		StateSubmitting,
		StateConfirmed,
	} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownState, string(text))
}
