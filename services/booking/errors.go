package booking

import "errors"

// ErrRoomNotFound is returned when a room id is not in the catalog.
var ErrRoomNotFound = errors.New("room not found")
