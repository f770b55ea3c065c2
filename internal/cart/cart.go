// Copyright 2025 Gagitech
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cart owns the authoritative cart state for one session. The
// engine is shared between the HTTP handlers and the shopping-assistant
// tool layer; every mutation goes through the engine under one mutex so
// the two callers can never interleave a half-applied change.
//
// Totals are maintained incrementally together with each line change:
// after every operation totalItems equals the sum of line quantities and
// totalPrice equals the sum of price times quantity.
package cart

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/sohrabTT/gagitech/internal/catalog"
)

// ErrOutOfStock is returned by AddItem for a product whose InStock flag is
// false. The stock check lives here, in the engine, so the human-facing
// handlers and the assistant tools enforce the same policy.
var ErrOutOfStock = errors.New("cart: product out of stock")

// Line is one product/quantity pairing. Quantity is always >= 1; a line
// whose quantity would reach zero is removed instead.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// State is a point-in-time snapshot of the cart.
type State struct {
	Items      []Line `json:"items"`
	TotalItems int    `json:"totalItems"`
	TotalPrice int64  `json:"totalPrice"`
}

// Engine holds the live cart. Construct one per session with NewEngine and
// hand the same instance to every consumer.
type Engine struct {
	mu         sync.Mutex
	lines      []Line // insertion order preserved; ids unique
	index      map[string]int
	totalItems int
	totalPrice int64
}

func NewEngine() *Engine {
	return &Engine{index: make(map[string]int)}
}

// AddItem increments the line for p by one, creating it at quantity 1 when
// absent. Out-of-stock products are rejected before any state changes.
func (e *Engine) AddItem(p catalog.Product) error {
	if !p.InStock {
		return errors.Wrapf(ErrOutOfStock, "product %q", p.ID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if i, ok := e.index[p.ID]; ok {
		e.lines[i].Quantity++
	} else {
		e.index[p.ID] = len(e.lines)
		e.lines = append(e.lines, Line{Product: p, Quantity: 1})
	}
	e.totalItems++
	e.totalPrice += p.Price
	return nil
}

// RemoveItem deletes the line for productID. Removing an absent id is a
// no-op, not an error.
func (e *Engine) RemoveItem(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLocked(productID)
}

func (e *Engine) removeLocked(productID string) {
	i, ok := e.index[productID]
	if !ok {
		return
	}
	line := e.lines[i]
	e.totalItems -= line.Quantity
	e.totalPrice -= line.Product.Price * int64(line.Quantity)

	e.lines = append(e.lines[:i], e.lines[i+1:]...)
	delete(e.index, productID)
	for j := i; j < len(e.lines); j++ {
		e.index[e.lines[j].Product.ID] = j
	}
}

// UpdateQuantity sets the line's quantity. A quantity <= 0 removes the
// line; an absent id is a no-op.
func (e *Engine) UpdateQuantity(productID string, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity <= 0 {
		e.removeLocked(productID)
		return
	}
	i, ok := e.index[productID]
	if !ok {
		return
	}
	line := &e.lines[i]
	diff := quantity - line.Quantity
	line.Quantity = quantity
	e.totalItems += diff
	e.totalPrice += line.Product.Price * int64(diff)
}

// IncreaseQuantity bumps an existing line by one. Absent id is a no-op.
func (e *Engine) IncreaseQuantity(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, ok := e.index[productID]
	if !ok {
		return
	}
	e.lines[i].Quantity++
	e.totalItems++
	e.totalPrice += e.lines[i].Product.Price
}

// DecreaseQuantity drops an existing line by one, but never below one:
// deleting a line through the decrement path must be an explicit
// RemoveItem or UpdateQuantity(id, 0), not a repeated decrement.
func (e *Engine) DecreaseQuantity(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, ok := e.index[productID]
	if !ok || e.lines[i].Quantity <= 1 {
		return
	}
	e.lines[i].Quantity--
	e.totalItems--
	e.totalPrice -= e.lines[i].Product.Price
}

// Clear resets the cart to empty unconditionally.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = nil
	e.index = make(map[string]int)
	e.totalItems = 0
	e.totalPrice = 0
}

// State returns a snapshot. The lines slice is copied so callers can hold
// it across later mutations.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]Line, len(e.lines))
	copy(items, e.lines)
	return State{
		Items:      items,
		TotalItems: e.totalItems,
		TotalPrice: e.totalPrice,
	}
}

// Quantity reports the current quantity for productID, zero when absent.
func (e *Engine) Quantity(productID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i, ok := e.index[productID]; ok {
		return e.lines[i].Quantity
	}
	return 0
}

func (e *Engine) TotalItems() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalItems
}

func (e *Engine) TotalPrice() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalPrice
}

// IsEmpty reports whether the cart has no lines.
func (e *Engine) IsEmpty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines) == 0
}
