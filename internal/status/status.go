// Package status holds the order lifecycle rules: which transitions are
// legal, what each state is called in the dashboard, and which timestamp
// field a transition stamps.
package status

import (
	"errors"
	"time"

	"smartkuliner-seller-service/internal/model"
)

type Status string

const (
	Pending              Status = "pending"
	Confirmed            Status = "confirmed"
	Processing           Status = "processing"
	Shipped              Status = "shipped"
	AwaitingConfirmation Status = "awaiting_customer_confirmation"
	Completed            Status = "completed"
	Cancelled            Status = "cancelled"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Config describes one state: its dashboard label, the single legal
// forward transition (empty for terminal states) and the label of the
// seller action that triggers it.
type Config struct {
	DisplayLabel    string
	Next            Status
	NextActionLabel string
}

var table = map[Status]Config{
	Pending:              {DisplayLabel: "Menunggu Konfirmasi", Next: Confirmed, NextActionLabel: "Konfirmasi Pesanan"},
	Confirmed:            {DisplayLabel: "Dikonfirmasi", Next: Processing, NextActionLabel: "Proses Pesanan"},
	Processing:           {DisplayLabel: "Diproses", Next: Shipped, NextActionLabel: "Kirim Pesanan"},
	Shipped:              {DisplayLabel: "Dikirim", Next: AwaitingConfirmation, NextActionLabel: "Tandai Sudah Sampai"},
	AwaitingConfirmation: {DisplayLabel: "Menunggu Konfirmasi Pembeli", Next: Completed, NextActionLabel: "Selesaikan Pesanan"},
	Completed:            {DisplayLabel: "Selesai"},
	Cancelled:            {DisplayLabel: "Dibatalkan"},
}

// Lookup returns the configuration for a state.
func Lookup(s Status) (Config, bool) {
	c, ok := table[s]
	return c, ok
}

func (s Status) Known() bool {
	_, ok := table[s]
	return ok
}

// Terminal reports whether no further transition is legal from s.
func (s Status) Terminal() bool {
	return s == Completed || s == Cancelled
}

// Cancellable reports whether the buyer-facing cancel action is still
// legal: only before the order ships.
func (s Status) Cancellable() bool {
	return s == Pending || s == Confirmed || s == Processing
}

// Patch is one planned transition: the local mutation applied
// optimistically before the store write, and reverted verbatim if the
// write fails. Status and timestamp always move together.
type Patch struct {
	Prev      Status
	Next      Status
	StampedAt string
}

// Plan computes the single legal forward transition out of current,
// stamped at now. Fails with ErrInvalidTransition for terminal or
// unknown states.
func Plan(current Status, now time.Time) (Patch, error) {
	c, ok := table[current]
	if !ok || c.Next == "" {
		return Patch{}, ErrInvalidTransition
	}
	return Patch{Prev: current, Next: c.Next, StampedAt: now.UTC().Format(time.RFC3339)}, nil
}

// PlanCancel computes the cancel transition, legal only from
// pending/confirmed/processing.
func PlanCancel(current Status, now time.Time) (Patch, error) {
	if !current.Cancellable() {
		return Patch{}, ErrInvalidTransition
	}
	return Patch{Prev: current, Next: Cancelled, StampedAt: now.UTC().Format(time.RFC3339)}, nil
}

// Apply mutates o in place: new status plus its timestamp, nothing else.
func (p Patch) Apply(o *model.Order) {
	o.Status = string(p.Next)
	if f := p.stampField(o); f != nil {
		*f = p.StampedAt
	}
}

// Revert undoes Apply exactly: previous status back, stamp cleared.
func (p Patch) Revert(o *model.Order) {
	o.Status = string(p.Prev)
	if f := p.stampField(o); f != nil {
		*f = ""
	}
}

// StampField names the timestamp field (store key) set when entering
// p.Next. Reaching awaiting_customer_confirmation stamps the delivery
// time.
func (p Patch) StampField() string {
	switch p.Next {
	case Confirmed:
		return "confirmed_at"
	case Processing:
		return "processing_at"
	case Shipped:
		return "shipped_at"
	case AwaitingConfirmation:
		return "delivered_at"
	case Completed:
		return "completed_at"
	case Cancelled:
		return "cancelled_at"
	}
	return ""
}

func (p Patch) stampField(o *model.Order) *string {
	switch p.Next {
	case Confirmed:
		return &o.ConfirmedAt
	case Processing:
		return &o.ProcessingAt
	case Shipped:
		return &o.ShippedAt
	case AwaitingConfirmation:
		return &o.DeliveredAt
	case Completed:
		return &o.CompletedAt
	case Cancelled:
		return &o.CancelledAt
	}
	return nil
}
