package models

// OrderStatus is the lifecycle state of an order. Cancelled and
// "Delivered & Confirmed" are terminal: once an order reaches either,
// the admin interface refuses further edits.
type OrderStatus string

const (
	StatusPending            OrderStatus = "Pending"
	StatusConfirmed          OrderStatus = "Confirmed"
	StatusProcessing         OrderStatus = "Processing"
	StatusShipped            OrderStatus = "Shipped"
	StatusDelivered          OrderStatus = "Delivered"
	StatusCancelled          OrderStatus = "Cancelled"
	StatusDeliveredConfirmed OrderStatus = "Delivered & Confirmed"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusDeliveredConfirmed,
}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the status ends the order's life from the
// admin interface.
func (s OrderStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusDeliveredConfirmed
}

// EditableStatuses returns the choices offered by the status edit control.
// The terminal pair is never offered: "Delivered & Confirmed" is reached
// only through the dedicated mark-delivered action, and cancellation is
// customer-initiated, not set from here.
func EditableStatuses() []OrderStatus {
	out := make([]OrderStatus, 0, len(OrderStatuses))
	for _, s := range OrderStatuses {
		if !s.Terminal() {
			out = append(out, s)
		}
	}
	return out
}

// DeliveryOptions is the fixed ordered delivery progression, fastest last.
var DeliveryOptions = []string{
	"Option 1 - 5 days to delivery",
	"Option 2 - 3 days to delivery",
	"Option 3 - 2 days to delivery",
	"Option 4 - 1 day to delivery",
	"Option 5 - Arriving Today",
}

func ValidDeliveryOption(option string) bool {
	return deliveryIndex(option) >= 0
}

func deliveryIndex(option string) int {
	for i, o := range DeliveryOptions {
		if o == option {
			return i
		}
	}
	return -1
}

// StageState marks one delivery stage relative to an order's current stage.
type StageState int

const (
	StageCompleted StageState = iota
	StageActive
	StagePending
)

func (s StageState) String() string {
	switch s {
	case StageCompleted:
		return "completed"
	case StageActive:
		return "active"
	default:
		return "pending"
	}
}

type DeliveryStage struct {
	Option string
	State  StageState
}

// DeliveryStages derives a display marker for every stage: stages before
// the current one are completed, the current one is active, the rest are
// pending. An unrecognized current option marks everything pending.
// Pure derivation, no side effects.
func DeliveryStages(current string) []DeliveryStage {
	cur := deliveryIndex(current)
	stages := make([]DeliveryStage, len(DeliveryOptions))
	for i, opt := range DeliveryOptions {
		state := StagePending
		switch {
		case cur >= 0 && i < cur:
			state = StageCompleted
		case cur >= 0 && i == cur:
			state = StageActive
		}
		stages[i] = DeliveryStage{Option: opt, State: state}
	}
	return stages
}
