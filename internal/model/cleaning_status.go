package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// CleaningStatus is the progress of housekeeping work on a room for one day.
// The zero value is not a valid status; use ParseCleaningStatus to build one
// from user input.
type CleaningStatus uint8

const (
	StatusUnknown CleaningStatus = iota
	StatusNeedsNoCleaning
	StatusNotYetCheckedOut
	StatusTrashCollection
	StatusBedMaking
	StatusVacuuming
	StatusFinalCheck
)

// CleaningStatuses lists every valid status in worksheet order.
func CleaningStatuses() []CleaningStatus {
	return []CleaningStatus{
		StatusNeedsNoCleaning,
		StatusNotYetCheckedOut,
		StatusTrashCollection,
		StatusBedMaking,
		StatusVacuuming,
		StatusFinalCheck,
	}
}

// String returns the canonical value stored in cleanings.cleaning_status.
func (s CleaningStatus) String() string {
	switch s {
	case StatusNeedsNoCleaning:
		return "needs-no-cleaning"
	case StatusNotYetCheckedOut:
		return "not-yet-checked-out"
	case StatusTrashCollection:
		return "trash-collection"
	case StatusBedMaking:
		return "bed-making"
	case StatusVacuuming:
		return "vacuuming"
	case StatusFinalCheck:
		return "final-check"
	case StatusUnknown:
	}
	return ""
}

// Label is the Japanese caption printed on the worksheet.
func (s CleaningStatus) Label() string {
	switch s {
	case StatusNeedsNoCleaning:
		return "清掃不要"
	case StatusNotYetCheckedOut:
		return "未チェックアウト"
	case StatusTrashCollection:
		return "ゴミ回収"
	case StatusBedMaking:
		return "ベッドメイク"
	case StatusVacuuming:
		return "掃除機"
	case StatusFinalCheck:
		return "最終チェック"
	case StatusUnknown:
	}
	return ""
}

// Valid reports whether s is one of the six known statuses.
func (s CleaningStatus) Valid() bool { return s.String() != "" }

// ParseCleaningStatus accepts either the canonical value or the Japanese
// label. Surrounding whitespace is ignored.
func ParseCleaningStatus(raw string) (CleaningStatus, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return StatusUnknown, false
	}
	for _, s := range CleaningStatuses() {
		if v == s.String() || v == s.Label() {
			return s, true
		}
	}
	return StatusUnknown, false
}

func (s CleaningStatus) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(s.String())
}

func (s *CleaningStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v, ok := ParseCleaningStatus(raw)
	if !ok {
		return fmt.Errorf("invalid cleaning_status: %s", raw)
	}
	*s = v
	return nil
}

// Scan implements sql.Scanner.
func (s *CleaningStatus) Scan(src any) error {
	raw, err := scanString(src, "cleaning_status")
	if err != nil {
		return err
	}
	v, ok := ParseCleaningStatus(raw)
	if !ok {
		return fmt.Errorf("invalid cleaning_status in store: %q", raw)
	}
	*s = v
	return nil
}

// Value implements driver.Valuer.
func (s CleaningStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid cleaning_status: %d", uint8(s))
	}
	return s.String(), nil
}
