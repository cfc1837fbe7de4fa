package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/hotel-housekeeping/internal/model"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Loose is a request field that accepts a JSON string, number or null and
// keeps its textual form. Clients send guest_count both ways.
type Loose string

func (l *Loose) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*l = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = Loose(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("expected a string or a number")
	}
	*l = Loose(n.String())
	return nil
}

// CleaningInput is the raw payload of a cleaning write. Enum fields take
// either the slug or the Japanese label.
type CleaningInput struct {
	CleaningDate         string `json:"cleaning_date" validate:"required"`
	RoomNumber           string `json:"room_number" validate:"required"`
	CleaningStatus       string `json:"cleaning_status" validate:"required"`
	CleaningAvailability string `json:"cleaning_availability" validate:"required"`
	CheckInTime          string `json:"check_in_time"`
	GuestCount           Loose  `json:"guest_count"`
	SetType              string `json:"set_type"`
	Notes                string `json:"notes"`
}

// ValidateCleaning is the gate every cleaning write passes through. It
// returns a *ValidationError for anything it cannot turn into a Cleaning.
func ValidateCleaning(in CleaningInput) (model.Cleaning, error) {
	in.CleaningDate = strings.TrimSpace(in.CleaningDate)
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	in.CleaningStatus = strings.TrimSpace(in.CleaningStatus)
	in.CleaningAvailability = strings.TrimSpace(in.CleaningAvailability)
	if err := validate.Struct(in); err != nil {
		return model.Cleaning{}, invalid("required fields missing")
	}

	date, err := model.ParseDate(in.CleaningDate)
	if err != nil {
		return model.Cleaning{}, invalid("invalid cleaning_date: %s", in.CleaningDate)
	}
	status, ok := model.ParseCleaningStatus(in.CleaningStatus)
	if !ok {
		return model.Cleaning{}, invalid("invalid cleaning_status: %s", in.CleaningStatus)
	}
	availability, ok := model.ParseCleaningAvailability(in.CleaningAvailability)
	if !ok {
		return model.Cleaning{}, invalid("invalid cleaning_availability: %s", in.CleaningAvailability)
	}

	c := model.Cleaning{
		CleaningDate:         date,
		RoomNumber:           in.RoomNumber,
		CleaningStatus:       status,
		CleaningAvailability: availability,
		SetType:              model.DefaultSetType,
	}

	if v := strings.TrimSpace(in.CheckInTime); v != "" {
		t, err := model.ParseClockTime(v)
		if err != nil {
			return model.Cleaning{}, invalid("invalid check_in_time: %s", in.CheckInTime)
		}
		c.CheckInTime = &t
	}
	if v := strings.TrimSpace(string(in.GuestCount)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return model.Cleaning{}, invalid("invalid guest_count: %s", in.GuestCount)
		}
		c.GuestCount = &n
	}
	if v := strings.TrimSpace(in.SetType); v != "" {
		st, ok := model.ParseSetType(v)
		if !ok {
			return model.Cleaning{}, invalid("invalid set_type: %s", in.SetType)
		}
		c.SetType = st
	}
	if strings.TrimSpace(in.Notes) != "" {
		notes := in.Notes
		c.Notes = &notes
	}
	return c, nil
}

// RoomTypeInput is the payload for creating or renaming a room type.
type RoomTypeInput struct {
	TypeName    string  `json:"type_name" validate:"required"`
	Description *string `json:"description"`
}

// RoomInput is the payload for creating or changing a room. RoomNumber is
// taken from the path on update.
type RoomInput struct {
	RoomNumber string `json:"room_number" validate:"required"`
	Capacity   int    `json:"capacity" validate:"gt=0"`
	RoomTypeID int64  `json:"room_type_id" validate:"required,gt=0"`
}

// checkStruct runs the validator tags of v and reports the first failing
// field by its JSON name.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return invalid("%s is required", fe.Field())
		}
		return invalid("invalid %s: %v", fe.Field(), fe.Value())
	}
	return invalid("invalid request")
}
