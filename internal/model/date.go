package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used on the wire and in the store.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time zone, always in DateLayout form.
type Date string

// ParseDate validates raw as a YYYY-MM-DD calendar date.
func ParseDate(raw string) (Date, error) {
	v := strings.TrimSpace(raw)
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return "", fmt.Errorf("invalid date %q", raw)
	}
	return DateOf(t), nil
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date { return Date(t.Format(DateLayout)) }

func (d Date) String() string { return string(d) }

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	t, _ := time.Parse(DateLayout, string(d))
	return t
}

// Scan accepts DATE columns as decoded by the mysql (parseTime=true), pq
// and sqlite drivers.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = Date(v.UTC().Format(DateLayout))
		return nil
	case []byte:
		return d.scanText(string(v))
	case string:
		return d.scanText(v)
	case nil:
		return fmt.Errorf("cleaning_date is NULL")
	}
	return fmt.Errorf("unsupported date column type %T", src)
}

func (d *Date) scanText(s string) error {
	if len(s) >= len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	v, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if _, err := ParseDate(string(d)); err != nil {
		return nil, err
	}
	return string(d), nil
}
