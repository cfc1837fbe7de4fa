// Package queue publishes worksheet events to RabbitMQ.
package queue

// CleaningSavedEvent is published after a cleaning row has been created or
// updated. It carries the persisted values so consumers need not query the
// database.
type CleaningSavedEvent struct {
	CleaningDate         string `json:"cleaning_date"`
	RoomNumber           string `json:"room_number"`
	CleaningStatus       string `json:"cleaning_status"`
	CleaningAvailability string `json:"cleaning_availability"`
	SetType              string `json:"set_type"`
	Created              bool   `json:"created"`
	SavedAt              string `json:"saved_at"`
}
