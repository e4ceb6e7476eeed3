package workflow

import "fmt"

// Order fulfilment statuses.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderPacked     = "packed"
	OrderDispatched = "dispatched"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Payment statuses. Refunds are handled outside this workflow; "refunded"
// is representable but never offered as a transition target.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Xerox (print job) statuses. These have no payment gate.
const (
	XeroxPending   = "pending"
	XeroxConfirmed = "confirmed"
	XeroxPrinting  = "printing"
	XeroxReady     = "ready"
	XeroxCompleted = "completed"
	XeroxCancelled = "cancelled"
)

// statusFlow maps the current order status to the statuses it may move to.
// delivered and cancelled are terminal.
var statusFlow = map[string][]string{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderPacked, OrderCancelled},
	OrderPacked:     {OrderDispatched, OrderCancelled},
	OrderDispatched: {OrderDelivered},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

var xeroxStatuses = map[string]bool{
	XeroxPending:   true,
	XeroxConfirmed: true,
	XeroxPrinting:  true,
	XeroxReady:     true,
	XeroxCompleted: true,
	XeroxCancelled: true,
}

// Actions is the set of operations an admin may currently perform on an
// order, derived purely from its two status fields.
type Actions struct {
	Statuses       []string
	PaymentActions bool
}

// AvailableActions returns the legal next order statuses under the payment
// gate: forward transitions require the payment to be confirmed; the sole
// unpaid path is cancelling an order that is still pending with payment
// still pending. PaymentActions reports whether mark-paid / mark-failed
// may be offered (only while payment is pending).
func AvailableActions(orderStatus, paymentStatus string) Actions {
	actions := Actions{
		Statuses:       []string{},
		PaymentActions: paymentStatus == PaymentPending,
	}

	next, ok := statusFlow[orderStatus]
	if !ok {
		return actions
	}

	if paymentStatus == PaymentPaid {
		actions.Statuses = append(actions.Statuses, next...)
		return actions
	}

	if orderStatus == OrderPending && paymentStatus == PaymentPending {
		actions.Statuses = append(actions.Statuses, OrderCancelled)
	}
	return actions
}

// CanTransition reports whether moving the order to newStatus is legal for
// the given pair of current statuses. The server consults this before
// accepting a status update; the console only uses AvailableActions to
// decide what to offer and relies on the server rejection otherwise.
func CanTransition(orderStatus, paymentStatus, newStatus string) error {
	for _, s := range AvailableActions(orderStatus, paymentStatus).Statuses {
		if s == newStatus {
			return nil
		}
	}

	if _, known := statusFlow[newStatus]; !known {
		return fmt.Errorf("unknown order status %q", newStatus)
	}
	if paymentStatus != PaymentPaid && newStatus != OrderCancelled {
		return fmt.Errorf("cannot move order to %q before payment is confirmed", newStatus)
	}
	return fmt.Errorf("cannot move order from %q to %q", orderStatus, newStatus)
}

// CanTransitionPayment validates a payment status change. Only the pending
// state may move, and only to paid or failed.
func CanTransitionPayment(paymentStatus, newStatus string) error {
	if newStatus != PaymentPaid && newStatus != PaymentFailed {
		return fmt.Errorf("unknown or unreachable payment status %q", newStatus)
	}
	if paymentStatus != PaymentPending {
		return fmt.Errorf("payment status is already %q", paymentStatus)
	}
	return nil
}

// ValidOrderStatus reports whether s is one of the six order statuses.
func ValidOrderStatus(s string) bool {
	_, ok := statusFlow[s]
	return ok
}

// ValidXeroxStatus reports whether s is one of the six xerox job statuses.
// Xerox jobs have no transition table: any valid status may be set at any
// time regardless of payment.
func ValidXeroxStatus(s string) bool {
	return xeroxStatuses[s]
}
