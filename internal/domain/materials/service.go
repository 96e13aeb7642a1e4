package materials

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/svaldez/stockwise/internal/infra/metrics"
	"github.com/svaldez/stockwise/internal/storage"
)

// ErrNotFound is returned when an id is no longer in the list. Callers
// treat it as a no-op, not a failure.
var ErrNotFound = errors.New("material not found")

// Notifier receives items that just crossed into low stock. Implementations
// must swallow their own delivery failures.
type Notifier interface {
	LowStock(ctx context.Context, items []Material)
}

// Summary are the three figures the page header shows, derived from the
// live list on every request.
type Summary struct {
	TotalItems    int
	TotalQuantity int
	LowStockCount int
}

// Service owns the canonical material list. It loads the list once at
// construction, is the only writer, and writes the whole list through the
// store after every mutation. Mutations replace the slice rather than
// editing it in place, so snapshots handed out earlier stay intact.
type Service struct {
	store    storage.Store
	log      *slog.Logger
	notifier Notifier

	mu    sync.RWMutex
	items []Material
}

// NewService loads the persisted list (empty on a fresh install or
// unreadable state) before returning, so every handler sees a ready
// service.
func NewService(ctx context.Context, st storage.Store, log *slog.Logger, notifier Notifier) *Service {
	items := storage.Load(ctx, st, log, storage.MaterialsKey, []Material{})
	log.Info("inventory loaded", "materials", len(items))
	return &Service{store: st, log: log, notifier: notifier, items: items}
}

// List returns a snapshot copy in canonical order (newest first).
func (s *Service) List() []Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Material, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Service) Get(id string) (Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.items {
		if m.ID == id {
			return m, nil
		}
	}
	return Material{}, ErrNotFound
}

// Add assigns a fresh id and prepends the new material. The returned error
// is only a persistence warning; the in-memory list has already changed.
func (s *Service) Add(ctx context.Context, v FormValues) (Material, error) {
	m := Material{
		ID:                uuid.NewString(),
		Name:              v.Name,
		Description:       v.Description,
		Quantity:          v.Quantity,
		PurchaseDate:      v.PurchaseDate,
		LowStockThreshold: v.LowStockThreshold,
	}

	s.mu.Lock()
	next := make([]Material, 0, len(s.items)+1)
	next = append(next, m)
	next = append(next, s.items...)
	s.items = next
	err := s.persist(ctx)
	s.mu.Unlock()

	metrics.Mutations.WithLabelValues("add").Inc()
	if m.IsLowStock() {
		s.notifyLowStock(ctx, m)
	}
	return m, err
}

// Update replaces the fields of the material with the given id, keeping the
// id itself.
func (s *Service) Update(ctx context.Context, id string, v FormValues) (Material, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return Material{}, ErrNotFound
	}
	wasLow := s.items[idx].IsLowStock()

	next := make([]Material, len(s.items))
	copy(next, s.items)
	next[idx] = Material{
		ID:                id,
		Name:              v.Name,
		Description:       v.Description,
		Quantity:          v.Quantity,
		PurchaseDate:      v.PurchaseDate,
		LowStockThreshold: v.LowStockThreshold,
	}
	s.items = next
	m := next[idx]
	err := s.persist(ctx)
	s.mu.Unlock()

	metrics.Mutations.WithLabelValues("update").Inc()
	if !wasLow && m.IsLowStock() {
		s.notifyLowStock(ctx, m)
	}
	return m, err
}

// Delete removes the material with the given id and returns it, so callers
// can name it in the notification. A missing id returns ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) (Material, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return Material{}, ErrNotFound
	}
	m := s.items[idx]

	next := make([]Material, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	s.items = next
	err := s.persist(ctx)
	s.mu.Unlock()

	metrics.Mutations.WithLabelValues("delete").Inc()
	return m, err
}

// SetQuantity sets the quantity of the material with the given id, clamped
// at zero. Deliberately quiet: the steppers fire on every click.
func (s *Service) SetQuantity(ctx context.Context, id string, quantity int) (Material, error) {
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return Material{}, ErrNotFound
	}
	wasLow := s.items[idx].IsLowStock()

	next := make([]Material, len(s.items))
	copy(next, s.items)
	next[idx].Quantity = quantity
	s.items = next
	m := next[idx]
	err := s.persist(ctx)
	s.mu.Unlock()

	metrics.Mutations.WithLabelValues("quantity").Inc()
	if !wasLow && m.IsLowStock() {
		s.notifyLowStock(ctx, m)
	}
	return m, err
}

// Summary derives the header statistics from the live list.
func (s *Service) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := Summary{TotalItems: len(s.items)}
	for _, m := range s.items {
		sum.TotalQuantity += m.Quantity
		if m.IsLowStock() {
			sum.LowStockCount++
		}
	}
	return sum
}

// LowStock returns the low-stock subset in list order.
func (s *Service) LowStock() []Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Material
	for _, m := range s.items {
		if m.IsLowStock() {
			out = append(out, m)
		}
	}
	return out
}

// indexOf must be called with the lock held.
func (s *Service) indexOf(id string) int {
	for i, m := range s.items {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// persist must be called with the lock held.
func (s *Service) persist(ctx context.Context) error {
	return storage.Save(ctx, s.store, s.log, storage.MaterialsKey, s.items)
}

func (s *Service) notifyLowStock(ctx context.Context, items ...Material) {
	if s.notifier == nil {
		return
	}
	s.notifier.LowStock(ctx, items)
}
