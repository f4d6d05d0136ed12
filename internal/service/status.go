package service

import "HelpDesk/model"

// Status is the lifecycle state of a group order. Orders have no status
// of their own: an ungrouped order reads as StatusNew, a grouped one
// inherits its group's status.
type Status string

const (
	StatusNew       Status = "new"
	StatusInWork    Status = "in_work"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus maps a raw string onto the status enumeration.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusNew, StatusInWork, StatusClosed, StatusCancelled:
		return Status(raw), true
	}
	return "", false
}

// Storable reports whether a status may be written to a group order.
// StatusNew is derived and never stored.
func (s Status) Storable() bool {
	switch s {
	case StatusInWork, StatusClosed, StatusCancelled:
		return true
	}
	return false
}

// ValidateTransition checks a group-order status change. The target must
// be a storable status different from the current one; closing requires
// at least one positive result.
func ValidateTransition(from, to Status, positiveResults int64) error {
	if !to.Storable() || to == from {
		return ErrNotFound
	}
	if to == StatusClosed && positiveResults == 0 {
		return ErrNotClosable
	}
	return nil
}

// EffectiveStatus returns an order's inherited status.
func EffectiveStatus(order *model.Order) Status {
	if order == nil || order.GroupOrderID == nil {
		return StatusNew
	}
	if order.GroupOrder != nil {
		if status, ok := ParseStatus(order.GroupOrder.Status); ok {
			return status
		}
	}
	return StatusInWork
}
