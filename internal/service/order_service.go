package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartkuliner-seller-service/internal/model"
	"smartkuliner-seller-service/internal/status"
)

// OrderRepository is the store surface the service needs; kept small so
// tests run against in-memory fakes.
type OrderRepository interface {
	Insert(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, orderID string) (*model.Order, error)
	FindBySeller(ctx context.Context, sellerID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID, newStatus, stampField, stampedAt string) error
}

// Business errors shared by the controllers.
var (
	ErrForbidden   = errors.New("forbidden")
	ErrPersistence = errors.New("store write failed")
)

type OrderService struct {
	repo OrderRepository
	now  func() time.Time
}

func NewOrderService(r OrderRepository) *OrderService {
	return &OrderService{repo: r, now: time.Now}
}

func ownedBySeller(o *model.Order, sellerID string) bool {
	for _, it := range o.Items {
		if it.SellerID == sellerID {
			return true
		}
	}
	return false
}

func (s *OrderService) GetBySeller(ctx context.Context, sellerID string) ([]model.Order, error) {
	return s.repo.FindBySeller(ctx, sellerID)
}

func (s *OrderService) GetByID(ctx context.Context, orderID, sellerID string) (*model.Order, error) {
	ord, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !ownedBySeller(ord, sellerID) {
		return nil, ErrForbidden
	}
	return ord, nil
}

// Advance moves an order one step along the workflow. The local copy is
// patched optimistically, the store write carries status + timestamp in
// one atomic update, and a failed write rolls the patch back before the
// error is surfaced. No automatic retry.
func (s *OrderService) Advance(ctx context.Context, orderID, sellerID string) (*model.Order, error) {
	return s.transition(ctx, orderID, sellerID, status.Plan)
}

// Cancel applies the cancel transition, legal while the order has not
// shipped.
func (s *OrderService) Cancel(ctx context.Context, orderID, sellerID string) (*model.Order, error) {
	return s.transition(ctx, orderID, sellerID, status.PlanCancel)
}

func (s *OrderService) transition(ctx context.Context, orderID, sellerID string, plan func(status.Status, time.Time) (status.Patch, error)) (*model.Order, error) {
	ord, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !ownedBySeller(ord, sellerID) {
		return nil, ErrForbidden
	}

	patch, err := plan(status.Status(ord.Status), s.now())
	if err != nil {
		return nil, err
	}

	patch.Apply(ord)
	if err := s.repo.UpdateStatus(ctx, ord.ID, string(patch.Next), patch.StampField(), patch.StampedAt); err != nil {
		patch.Revert(ord)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return ord, nil
}

// CreateFromIntake persists the initial pending order coming off the
// order_placed exchange. The checkout service owns id, items and totals;
// this side only forces the starting state and creation time.
func (s *OrderService) CreateFromIntake(ctx context.Context, o *model.Order) error {
	if _, err := s.repo.FindByID(ctx, o.ID); err == nil {
		// Redelivered message; the order already exists.
		return nil
	}
	o.Status = string(status.Pending)
	if o.CreatedAt == "" {
		o.CreatedAt = s.now().UTC().Format(time.RFC3339)
	}
	return s.repo.Insert(ctx, o)
}
