package model

import "slices"

// MessageStatus is a message's delivery state as shown by its tick marks.
type MessageStatus string

const (
	StatusSent      MessageStatus = "SENT"
	StatusDelivered MessageStatus = "DELIVERED"
	StatusRead      MessageStatus = "READ"
)

// validStatusTransitions defines the forward-only delivery progression.
// READ is terminal.
var validStatusTransitions = map[MessageStatus][]MessageStatus{
	StatusSent:      {StatusDelivered, StatusRead},
	StatusDelivered: {StatusRead},
	StatusRead:      {},
}

// CanAdvance reports whether moving from s to next is a forward transition.
// Backward or repeated transitions are not errors; callers treat them as
// no-ops.
func (s MessageStatus) CanAdvance(next MessageStatus) bool {
	return slices.Contains(validStatusTransitions[s], next)
}
