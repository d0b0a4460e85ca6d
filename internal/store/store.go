// Package store holds the in-memory product collection. It is the single
// authority for the capacity cap: screens may check CanAddProduct for a better
// experience but AddProduct always re-checks.
package store

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// MaxProducts is the capacity cap of the collection.
const MaxProducts = 5

// DefaultCapacityMessage is written to the error slot when an add is rejected.
const DefaultCapacityMessage = "Maximum of 5 products allowed!"

// Store is the process-wide product collection. Mutations are synchronous and
// observers are notified before the mutating call returns.
type Store struct {
	mu        sync.RWMutex
	products  []Product
	err       string
	isLoading bool

	bus         EventBus.Bus
	pubMu       sync.Mutex
	dispatching bool
	pending     []Event
	node        *snowflake.Node
	now         func() time.Time
	capacityMsg string
	logger      *slog.Logger
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger mutations are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithCapacityMessage overrides the error slot text for a rejected add, used
// for localisation.
func WithCapacityMessage(msg string) Option {
	return func(s *Store) {
		if strings.TrimSpace(msg) != "" {
			s.capacityMsg = msg
		}
	}
}

// WithNode sets the snowflake node ids are generated from.
func WithNode(node *snowflake.Node) Option {
	return func(s *Store) { s.node = node }
}

// New creates an empty store.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		products:    make([]Product, 0, MaxProducts),
		bus:         EventBus.New(),
		now:         time.Now,
		capacityMsg: DefaultCapacityMessage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.node == nil {
		node, err := snowflake.NewNode(1)
		if err != nil {
			return nil, fmt.Errorf("store: create id node: %w", err)
		}
		s.node = node
	}

	return s, nil
}

// Subscribe registers a handler for one of the Topic constants.
func (s *Store) Subscribe(topic string, fn Handler) error {
	if err := s.bus.Subscribe(topic, fn); err != nil {
		return fmt.Errorf("store: subscribe %s: %w", topic, err)
	}
	return nil
}

// Unsubscribe removes a handler previously passed to Subscribe.
func (s *Store) Unsubscribe(topic string, fn Handler) error {
	return s.bus.Unsubscribe(topic, fn)
}

// AddProduct appends a new product. When the collection is full nothing is
// added, the error slot is set and false is returned. On success the error slot
// is cleared.
func (s *Store) AddProduct(name string, price decimal.Decimal, photo string) (Product, bool) {
	s.mu.Lock()
	if len(s.products) >= MaxProducts {
		s.err = s.capacityMsg
		s.mu.Unlock()

		s.logger.Warn("Product rejected, collection full", "count", MaxProducts, "name", name)
		s.publish(TopicError)
		return Product{}, false
	}

	createdAt := s.now()
	product := Product{
		ID:        s.node.Generate().String(),
		Name:      name,
		Price:     price,
		Photo:     photo,
		CreatedAt: createdAt,
	}

	s.products = append(s.products, product)
	hadErr := s.err != ""
	s.err = ""
	count := len(s.products)
	s.mu.Unlock()

	s.logger.Info("Product added", "id", product.ID, "name", product.Name, "count", count)
	s.publish(TopicChanged)
	if hadErr {
		s.publish(TopicError)
	}
	return product, true
}

// RemoveProduct removes the product with the given id. Removing an unknown id
// is not an error. The error slot is cleared either way. Reports whether a
// product was removed.
func (s *Store) RemoveProduct(id string) bool {
	s.mu.Lock()
	removed := false
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.products = kept
	hadErr := s.err != ""
	s.err = ""
	s.mu.Unlock()

	if removed {
		s.logger.Info("Product removed", "id", id)
		s.publish(TopicChanged)
	}
	if hadErr {
		s.publish(TopicError)
	}
	return removed
}

// CanAddProduct reports whether another product fits.
func (s *Store) CanAddProduct() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products) < MaxProducts
}

// ProductCount returns the collection size.
func (s *Store) ProductCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// ClearError empties the error slot.
func (s *Store) ClearError() {
	s.mu.Lock()
	hadErr := s.err != ""
	s.err = ""
	s.mu.Unlock()

	if hadErr {
		s.publish(TopicError)
	}
}

// Error returns the pending error message, or "" when there is none.
func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// IsLoading is part of the screen contract. Nothing in the store sets it.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// Products returns a copy of the collection in insertion order.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Find looks a product up by id.
func (s *Store) Find(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s *Store) snapshot() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// publish must be called without s.mu held so handlers can read the store.
// The bus is locked while handlers run, so events raised by a handler are
// queued and delivered by the outer publish once the bus is free.
func (s *Store) publish(topic string) {
	s.mu.RLock()
	event := Event{Topic: topic, Products: s.snapshot(), Err: s.err}
	s.mu.RUnlock()

	s.pubMu.Lock()
	if s.dispatching {
		s.pending = append(s.pending, event)
		s.pubMu.Unlock()
		return
	}
	s.dispatching = true
	s.pubMu.Unlock()

	for {
		s.bus.Publish(event.Topic, event)

		s.pubMu.Lock()
		if len(s.pending) == 0 {
			s.dispatching = false
			s.pubMu.Unlock()
			return
		}
		event = s.pending[0]
		s.pending = s.pending[1:]
		s.pubMu.Unlock()
	}
}
