package model

// Cleaning is one line of the daily housekeeping worksheet. Rows are unique
// per (CleaningDate, RoomNumber); both key fields are immutable once the
// row exists.
type Cleaning struct {
	CleaningDate         Date                 `json:"cleaning_date"`
	RoomNumber           string               `json:"room_number"`
	CleaningStatus       CleaningStatus       `json:"cleaning_status"`
	CleaningAvailability CleaningAvailability `json:"cleaning_availability"`
	CheckInTime          *ClockTime           `json:"check_in_time"`
	GuestCount           *int                 `json:"guest_count"`
	SetType              SetType              `json:"set_type"`
	Notes                *string              `json:"notes"`
}

// CleaningKey is the natural key of a Cleaning.
type CleaningKey struct {
	Date       Date
	RoomNumber string
}

func (k CleaningKey) String() string { return string(k.Date) + "/" + k.RoomNumber }

func (c Cleaning) Key() CleaningKey {
	return CleaningKey{Date: c.CleaningDate, RoomNumber: c.RoomNumber}
}

// DefaultCleaning is the row a fresh worksheet starts with: the room is not
// cleanable and needs nothing.
func DefaultCleaning(date Date, roomNumber string) Cleaning {
	return Cleaning{
		CleaningDate:         date,
		RoomNumber:           roomNumber,
		CleaningStatus:       StatusNeedsNoCleaning,
		CleaningAvailability: AvailabilityUnavailable,
		SetType:              DefaultSetType,
	}
}

// RoomWithCleaning joins a room, its type and the room's cleaning row for
// one date. Recorded is false when the cleaning fields are defaults because
// no row exists yet.
type RoomWithCleaning struct {
	RoomNumber           string               `json:"room_number"`
	Capacity             int                  `json:"capacity"`
	RoomTypeID           int64                `json:"room_type_id"`
	TypeName             string               `json:"type_name"`
	CleaningDate         Date                 `json:"cleaning_date"`
	CleaningStatus       CleaningStatus       `json:"cleaning_status"`
	CleaningAvailability CleaningAvailability `json:"cleaning_availability"`
	CheckInTime          *ClockTime           `json:"check_in_time"`
	GuestCount           *int                 `json:"guest_count"`
	SetType              SetType              `json:"set_type"`
	Notes                *string              `json:"notes"`
	Recorded             bool                 `json:"recorded"`
}
