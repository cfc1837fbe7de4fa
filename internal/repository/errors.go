// Package repository holds the SQL access for room types, rooms and
// cleanings. Sentinel errors let the worksheet service tell failure cases
// apart without inspecting driver errors.
package repository

import "errors"

// ErrInUse is returned when a delete cannot be performed because other
// rows still reference the target (e.g. deleting a room type that rooms
// still use).
var ErrInUse = errors.New("in use")

// ErrDuplicate is returned when an insert collides with an existing
// primary key.
var ErrDuplicate = errors.New("duplicate key")
