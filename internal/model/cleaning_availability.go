package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// CleaningAvailability says whether a room may be cleaned today. It is
// independent of the cleaning progress held in CleaningStatus.
type CleaningAvailability uint8

const (
	AvailabilityUnknown CleaningAvailability = iota
	AvailabilityAvailable
	AvailabilityUnavailable
	AvailabilityStayCleaningAllowed
	AvailabilityStayCleaningNotAllowed
)

// CleaningAvailabilities lists every valid availability.
func CleaningAvailabilities() []CleaningAvailability {
	return []CleaningAvailability{
		AvailabilityAvailable,
		AvailabilityUnavailable,
		AvailabilityStayCleaningAllowed,
		AvailabilityStayCleaningNotAllowed,
	}
}

func (a CleaningAvailability) String() string {
	switch a {
	case AvailabilityAvailable:
		return "available"
	case AvailabilityUnavailable:
		return "unavailable"
	case AvailabilityStayCleaningAllowed:
		return "consecutive-stay-cleaning-allowed"
	case AvailabilityStayCleaningNotAllowed:
		return "consecutive-stay-cleaning-not-allowed"
	case AvailabilityUnknown:
	}
	return ""
}

func (a CleaningAvailability) Label() string {
	switch a {
	case AvailabilityAvailable:
		return "〇"
	case AvailabilityUnavailable:
		return "×"
	case AvailabilityStayCleaningAllowed:
		return "連泊:清掃あり"
	case AvailabilityStayCleaningNotAllowed:
		return "連泊:清掃なし"
	case AvailabilityUnknown:
	}
	return ""
}

// AllowsCleaning reports whether staff may clean the room. Unknown values
// never allow cleaning.
func (a CleaningAvailability) AllowsCleaning() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityStayCleaningAllowed:
		return true
	case AvailabilityUnavailable, AvailabilityStayCleaningNotAllowed, AvailabilityUnknown:
		return false
	}
	return false
}

func (a CleaningAvailability) Valid() bool { return a.String() != "" }

// ParseCleaningAvailability accepts the canonical value or the label.
func ParseCleaningAvailability(raw string) (CleaningAvailability, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return AvailabilityUnknown, false
	}
	for _, a := range CleaningAvailabilities() {
		if v == a.String() || v == a.Label() {
			return a, true
		}
	}
	// the old UI sent a full-width circle for available
	if v == "○" {
		return AvailabilityAvailable, true
	}
	return AvailabilityUnknown, false
}

func (a CleaningAvailability) MarshalJSON() ([]byte, error) {
	if !a.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(a.String())
}

func (a *CleaningAvailability) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v, ok := ParseCleaningAvailability(raw)
	if !ok {
		return fmt.Errorf("invalid cleaning_availability: %s", raw)
	}
	*a = v
	return nil
}

func (a *CleaningAvailability) Scan(src any) error {
	raw, err := scanString(src, "cleaning_availability")
	if err != nil {
		return err
	}
	v, ok := ParseCleaningAvailability(raw)
	if !ok {
		return fmt.Errorf("invalid cleaning_availability in store: %q", raw)
	}
	*a = v
	return nil
}

func (a CleaningAvailability) Value() (driver.Value, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid cleaning_availability: %d", uint8(a))
	}
	return a.String(), nil
}
