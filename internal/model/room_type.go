package model

// RoomType groups rooms by layout (twin, Japanese-style, suite...).
// It corresponds to a row in the `room_types` table.
//
// Fields:
//  ID          – primary key identifier.
//  TypeName    – display name shown on the worksheet.
//  Description – optional free text.
type RoomType struct {
	ID          int64   `json:"room_type_id"`          // room_types.room_type_id
	TypeName    string  `json:"type_name"`             // room_types.type_name
	Description *string `json:"description,omitempty"` // room_types.description (nullable)
}
