package sales

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder receives sale lifecycle events, typically to update metrics.
type Recorder interface {
	SaleCreated()
	SaleModified()
	SaleCancelled()
	RuleRejected()
}

type nopRecorder struct{}

func (nopRecorder) SaleCreated()   {}
func (nopRecorder) SaleModified()  {}
func (nopRecorder) SaleCancelled() {}
func (nopRecorder) RuleRejected()  {}

// Service provides high-level sales management operations on a Storage backend.
type Service struct {
	storage  Storage
	logger   *zap.Logger
	recorder Recorder
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder reports lifecycle events to r.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithClock overrides the time source used for sale dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// ListFilter narrows ListSales and Summarize. Zero values match everything.
type ListFilter struct {
	Customer  string
	Branch    string
	Cancelled *bool
}

func (f ListFilter) match(s *Sale) bool {
	if f.Customer != "" && s.Customer != f.Customer {
		return false
	}
	if f.Branch != "" && s.Branch != f.Branch {
		return false
	}
	if f.Cancelled != nil && s.Cancelled != *f.Cancelled {
		return false
	}
	return true
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		storage:  storage,
		logger:   logger,
		recorder: nopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSale validates the input, applies the discount rules and stores the
// resulting sale under a fresh identifier.
func (s *Service) CreateSale(in SaleInput) (*Sale, error) {
	sale := &Sale{
		ID:         uuid.NewString(),
		SaleNumber: in.SaleNumber,
		Date:       s.now().UTC(),
		Customer:   in.Customer,
		Branch:     in.Branch,
		Items:      itemsFromInput(in.Items),
	}

	if err := s.process(sale); err != nil {
		return nil, err
	}

	if err := s.storage.Set(sale); err != nil {
		s.logger.Error("failed to save sale", zap.String("sale_id", sale.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	s.recorder.SaleCreated()
	s.logger.Info("sale created",
		zap.String("sale_id", sale.ID),
		zap.String("sale_number", sale.SaleNumber),
		zap.Stringer("total", sale.TotalSaleAmount),
	)
	return sale, nil
}

// GetSale returns the sale with the given id or ErrNotFound.
func (s *Service) GetSale(id string) (*Sale, error) {
	return s.storage.Read(id)
}

// ListSales returns every stored sale matching the filter, cancelled ones
// included, ordered by creation date.
func (s *Service) ListSales(filter ListFilter) ([]*Sale, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		s.logger.Error("failed to get all sales from storage", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve sales: %w", err)
	}

	filtered := make([]*Sale, 0, len(all))
	for _, sale := range all {
		if filter.match(sale) {
			filtered = append(filtered, sale)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Date.Equal(filtered[j].Date) {
			return filtered[i].ID < filtered[j].ID
		}
		return filtered[i].Date.Before(filtered[j].Date)
	})
	return filtered, nil
}

// UpdateSale replaces customer, branch and items of an existing sale and
// recomputes its amounts. Identifier, sale number, date and cancellation
// state are preserved. Cancelled sales may still be updated.
func (s *Service) UpdateSale(id string, in SaleInput) (*Sale, error) {
	sale, err := s.storage.Read(id)
	if err != nil {
		return nil, err
	}

	sale.Customer = in.Customer
	sale.Branch = in.Branch
	sale.Items = itemsFromInput(in.Items)

	if err := s.process(sale); err != nil {
		return nil, err
	}

	if err := s.storage.Set(sale); err != nil {
		s.logger.Error("failed to update sale", zap.String("sale_id", sale.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	s.recorder.SaleModified()
	s.logger.Info("sale modified",
		zap.String("sale_id", sale.ID),
		zap.Stringer("total", sale.TotalSaleAmount),
	)
	return sale, nil
}

// CancelSale marks a sale as cancelled. Cancelling twice is not an error.
func (s *Service) CancelSale(id string) error {
	sale, err := s.storage.Read(id)
	if err != nil {
		return err
	}

	if sale.Cancelled {
		s.logger.Debug("sale already cancelled", zap.String("sale_id", id))
		return nil
	}

	sale.Cancelled = true
	if err := s.storage.Set(sale); err != nil {
		s.logger.Error("failed to cancel sale", zap.String("sale_id", id), zap.Error(err))
		return fmt.Errorf("failed to cancel sale: %w", err)
	}

	s.recorder.SaleCancelled()
	s.logger.Info("sale cancelled", zap.String("sale_id", id))
	return nil
}

// process validates sale and applies business rules to it.
func (s *Service) process(sale *Sale) error {
	if err := Validate(sale); err != nil {
		s.logger.Warn("sale rejected by validation", zap.String("sale_id", sale.ID), zap.Error(err))
		return err
	}

	if err := ApplyBusinessRules(sale); err != nil {
		var ruleErr *DomainRuleError
		if errors.As(err, &ruleErr) {
			s.recorder.RuleRejected()
		}
		s.logger.Error("business rules failed", zap.String("sale_id", sale.ID), zap.Error(err))
		return err
	}

	for _, item := range sale.Items {
		if item.Discount.IsPositive() {
			s.logger.Debug("discount applied",
				zap.String("sale_id", sale.ID),
				zap.String("item", item.Name),
				zap.Stringer("discount", item.Discount),
			)
		}
	}
	return nil
}
