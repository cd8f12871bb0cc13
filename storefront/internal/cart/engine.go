// Package cart holds the shopper's cart: the persisted entry list, the
// mutations on it and the totals derived from it.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Option func(*Engine)

func WithIDSource(ids IDSource) Option {
	return func(e *Engine) { e.ids = ids }
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// Engine owns the in-memory cart for one session. Every mutation writes the
// whole list back to the store before it becomes visible, then notifies
// subscribers with a snapshot.
type Engine struct {
	mu          sync.Mutex
	store       Store
	ids         IDSource
	logger      *zap.Logger
	items       []Item
	subscribers []func([]Item)
}

func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		ids:    NewClockIDs(),
		logger: zap.NewNop(),
		items:  []Item{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe registers fn to receive the cart after each successful mutation.
func (e *Engine) Subscribe(fn func([]Item)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscribers = append(e.subscribers, fn)
}

// Load replaces the in-memory cart with the persisted one. A missing,
// unreadable or malformed value yields an empty cart.
func (e *Engine) Load(ctx context.Context) []Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = e.read(ctx)
	return clone(e.items)
}

func (e *Engine) read(ctx context.Context) []Item {
	raw, err := e.store.Get(ctx, StorageKey)
	if err != nil {
		e.logger.Debug("cart not loaded, starting empty", zap.Error(err))
		return []Item{}
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		e.logger.Debug("persisted cart is malformed, starting empty", zap.Error(err))
		return []Item{}
	}

	valid := make([]Item, 0, len(items))
	for _, item := range items {
		if err := item.validate(); err != nil {
			e.logger.Debug("dropping persisted cart entry", zap.Int64("id", item.ID), zap.Error(err))
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

// Add validates item, gives it a fresh id and appends it. Identical items
// are kept as separate entries.
func (e *Engine) Add(ctx context.Context, item Item) (Item, error) {
	if err := item.validate(); err != nil {
		return Item{}, err
	}

	e.mu.Lock()
	item.ID = e.nextID()
	next := append(clone(e.items), item)
	notify, err := e.commit(ctx, next)
	e.mu.Unlock()
	if err != nil {
		return Item{}, err
	}

	notify()
	return item, nil
}

// Remove drops every entry carrying id and reports how many went. Removing
// an unknown id still rewrites the store.
func (e *Engine) Remove(ctx context.Context, id int64) (int, error) {
	e.mu.Lock()
	next := make([]Item, 0, len(e.items))
	for _, it := range e.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	removed := len(e.items) - len(next)
	notify, err := e.commit(ctx, next)
	e.mu.Unlock()
	if err != nil {
		return 0, err
	}

	notify()
	return removed, nil
}

func (e *Engine) Increment(ctx context.Context, id int64) (bool, error) {
	return e.changeQuantity(ctx, id, 1)
}

func (e *Engine) Decrement(ctx context.Context, id int64) (bool, error) {
	return e.changeQuantity(ctx, id, -1)
}

// changeQuantity is a no-op returning false when the new quantity would leave
// [MinQuantity, MaxQuantity].
func (e *Engine) changeQuantity(ctx context.Context, id int64, delta int) (bool, error) {
	e.mu.Lock()
	idx := e.indexOf(id)
	if idx < 0 {
		e.mu.Unlock()
		return false, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}

	quantity, ok := Step(e.items[idx].Quantity, delta)
	if !ok {
		e.mu.Unlock()
		return false, nil
	}

	next := clone(e.items)
	next[idx].Quantity = quantity
	notify, err := e.commit(ctx, next)
	e.mu.Unlock()
	if err != nil {
		return false, err
	}

	notify()
	return true, nil
}

func (e *Engine) Items() []Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clone(e.items)
}

func (e *Engine) TotalCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return TotalCount(e.items)
}

func (e *Engine) TotalPrice() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return TotalPrice(e.items)
}

func (e *Engine) TotalSavings() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return TotalSavings(e.items)
}

// commit persists next and only then swaps it in. It must be called with mu
// held; the returned func delivers the snapshot and must run after unlocking.
func (e *Engine) commit(ctx context.Context, next []Item) (func(), error) {
	data, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("encode cart: %w", err)
	}
	if err := e.store.Set(ctx, StorageKey, string(data)); err != nil {
		e.logger.Warn("cart not persisted", zap.Error(err))
		return nil, fmt.Errorf("persist cart: %w", err)
	}

	e.items = next
	snapshot := clone(next)
	subscribers := append([]func([]Item){}, e.subscribers...)
	return func() {
		for _, fn := range subscribers {
			fn(clone(snapshot))
		}
	}, nil
}

// nextID never returns a value at or below an id already in the cart, so
// entries loaded from an earlier session cannot collide with new ones.
func (e *Engine) nextID() int64 {
	id := e.ids.NextID()
	for _, it := range e.items {
		if it.ID >= id {
			id = it.ID + 1
		}
	}
	return id
}

func (e *Engine) indexOf(id int64) int {
	for i, it := range e.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func clone(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
