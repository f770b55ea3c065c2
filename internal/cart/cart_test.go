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

package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohrabTT/gagitech/internal/catalog"
)

var (
	productA = catalog.Product{ID: "a", Name: "الف", Price: 100000, InStock: true}
	productB = catalog.Product{ID: "b", Name: "ب", Price: 50000, InStock: true}
	productC = catalog.Product{ID: "c", Name: "پ", Price: 75000, InStock: false}
)

// requireConsistent checks the totals invariant: totalItems and totalPrice
// must always equal the sums over the lines.
func requireConsistent(t *testing.T, e *Engine) {
	t.Helper()
	st := e.State()
	items := 0
	var price int64
	for _, line := range st.Items {
		require.GreaterOrEqual(t, line.Quantity, 1, "no line may exist with quantity < 1")
		items += line.Quantity
		price += line.Product.Price * int64(line.Quantity)
	}
	require.Equal(t, items, st.TotalItems)
	require.Equal(t, price, st.TotalPrice)
}

func TestAddItemAccumulates(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddItem(productA))
	require.NoError(t, e.AddItem(productA))

	st := e.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, 2, st.Items[0].Quantity)
	assert.Equal(t, 2, st.TotalItems)
	assert.Equal(t, int64(200000), st.TotalPrice)
	requireConsistent(t, e)
}

func TestAddItemOutOfStock(t *testing.T) {
	e := NewEngine()
	err := e.AddItem(productC)
	require.ErrorIs(t, err, ErrOutOfStock)
	assert.True(t, e.IsEmpty())
	requireConsistent(t, e)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddItem(productB))
	before := e.State()

	require.NoError(t, e.AddItem(productA))
	e.RemoveItem(productA.ID)

	assert.Equal(t, before, e.State())
	requireConsistent(t, e)
}

func TestRemoveItem(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddItem(productA))
	require.NoError(t, e.AddItem(productA))
	require.NoError(t, e.AddItem(productB))

	e.RemoveItem(productA.ID)

	st := e.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, productB.ID, st.Items[0].Product.ID)
	assert.Equal(t, 1, st.TotalItems)
	assert.Equal(t, int64(50000), st.TotalPrice)
	requireConsistent(t, e)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddItem(productA))
	before := e.State()

	e.RemoveItem("missing")
	assert.Equal(t, before, e.State())
}

func TestUpdateQuantity(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddItem(productA))

	e.UpdateQuantity(productA.ID, 5)
	st := e.State()
	assert.Equal(t, 5, st.Items[0].Quantity)
	assert.Equal(t, 5, st.TotalItems)
	assert.Equal(t, int64(500000), st.TotalPrice)
	requireConsistent(t, e)

	e.UpdateQuantity(productA.ID, 2)
	requireConsistent(t, e)
	assert.Equal(t, 2, e.TotalItems())
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	for _, qty := range []int{1, 3, 7} {
		e := NewEngine()
		require.NoError(t, e.AddItem(productA))
		e.UpdateQuantity(productA.ID, qty)

		e.UpdateQuantity(productA.ID, 0)
		assert.True(t, e.IsEmpty())
		assert.Equal(t, 0, e.TotalItems())
		assert.Equal(t, int64(0), e.TotalPrice())
	}
}

func TestUpdateQuantityNegativeRemoves(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddItem(productA))
	e.UpdateQuantity(productA.ID, -4)
	assert.True(t, e.IsEmpty())
	requireConsistent(t, e)
}

func TestUpdateQuantityAbsentIsNoop(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddItem(productA))
	before := e.State()
	e.UpdateQuantity("missing", 3)
	assert.Equal(t, before, e.State())
}

func TestIncreaseDecrease(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddItem(productA))

	e.IncreaseQuantity(productA.ID)
	assert.Equal(t, 2, e.Quantity(productA.ID))
	requireConsistent(t, e)

	e.DecreaseQuantity(productA.ID)
	assert.Equal(t, 1, e.Quantity(productA.ID))
	requireConsistent(t, e)
}

func TestDecreaseAtOneIsNoop(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddItem(productA))
	before := e.State()

	e.DecreaseQuantity(productA.ID)

	st := e.State()
	assert.Equal(t, before, st)
	require.Len(t, st.Items, 1, "decrement must never drop a line")
}

func TestClear(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddItem(productA))
	require.NoError(t, e.AddItem(productB))

	e.Clear()

	st := e.State()
	assert.Empty(t, st.Items)
	assert.Equal(t, 0, st.TotalItems)
	assert.Equal(t, int64(0), st.TotalPrice)

	// Clearing an already empty cart stays empty.
	e.Clear()
	assert.True(t, e.IsEmpty())
}

func TestInvariantUnderMixedSequence(t *testing.T) {
	e := NewEngine()
	steps := []func(){
		func() { _ = e.AddItem(productA) },
		func() { _ = e.AddItem(productB) },
		func() { _ = e.AddItem(productA) },
		func() { e.UpdateQuantity(productA.ID, 7) },
		func() { e.IncreaseQuantity(productB.ID) },
		func() { e.DecreaseQuantity(productB.ID) },
		func() { e.RemoveItem(productB.ID) },
		func() { e.UpdateQuantity(productA.ID, 0) },
		func() { _ = e.AddItem(productB) },
	}
	for _, step := range steps {
		step()
		requireConsistent(t, e)
	}
}

func TestStateIsSnapshot(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddItem(productA))
	st := e.State()

	e.UpdateQuantity(productA.ID, 9)

	assert.Equal(t, 1, st.Items[0].Quantity, "snapshot must not see later mutations")
}
