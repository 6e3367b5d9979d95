package bookingform

import (
	"encoding/json"

	"github.com/google/uuid"
)

// TrackingRef points at the funnel activity record of this form, if one was created.
// The zero value means nothing has been tracked yet.
type TrackingRef struct {
	id    uuid.UUID
	valid bool
}

// NoTracking is the explicit "none yet" marker
func NoTracking() TrackingRef {
	return TrackingRef{}
}

// Tracked refers to an existing activity record
func Tracked(id uuid.UUID) TrackingRef {
	return TrackingRef{id: id, valid: true}
}

// ID returns the activity id and whether one is held
func (r TrackingRef) ID() (uuid.UUID, bool) {
	return r.id, r.valid
}

// IsSet is true when an activity record exists for the form
func (r TrackingRef) IsSet() bool {
	return r.valid
}

func (r TrackingRef) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}

func (r *TrackingRef) UnmarshalJSON(data []byte) error {
	var id *uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	if id == nil {
		*r = NoTracking()
		return nil
	}
	*r = Tracked(*id)
	return nil
}
