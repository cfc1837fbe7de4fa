package model

// Room is a guest room that appears on every daily worksheet.
//
// Fields:
//  RoomNumber – primary key, stored as text ("101", "201A").
//  Capacity   – maximum number of guests.
//  RoomTypeID – references room_types.room_type_id.
//  TypeName   – joined room_types.type_name; empty when not selected.
type Room struct {
	RoomNumber string `json:"room_number"`         // rooms.room_number
	Capacity   int    `json:"capacity"`            // rooms.capacity
	RoomTypeID int64  `json:"room_type_id"`        // rooms.room_type_id
	TypeName   string `json:"type_name,omitempty"` // room_types.type_name
}
