package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day such as a guest's check-in time.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseClockTime accepts "15:04" or "15:04:05".
func ParseClockTime(raw string) (ClockTime, error) {
	v := strings.TrimSpace(raw)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return ClockTime{}, fmt.Errorf("invalid time %q", raw)
}

// String renders HH:MM, adding seconds only when they are set.
func (c ClockTime) String() string {
	if c.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c ClockTime) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *ClockTime) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v, err := ParseClockTime(raw)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Scan handles TIME columns: text from mysql and sqlite, time.Time from pq.
func (c *ClockTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*c = ClockTime{Hour: v.Hour(), Minute: v.Minute(), Second: v.Second()}
		return nil
	case []byte:
		return c.scanText(string(v))
	case string:
		return c.scanText(v)
	}
	return fmt.Errorf("unsupported time column type %T", src)
}

func (c *ClockTime) scanText(s string) error {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*c = ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
		return nil
	}
	// drop fractional seconds that some drivers append
	if i := strings.IndexByte(s, '.'); i > 0 {
		s = s[:i]
	}
	v, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c ClockTime) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second), nil
}
