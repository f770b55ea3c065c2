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

package assistant

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohrabTT/gagitech/internal/cart"
	"github.com/sohrabTT/gagitech/internal/catalog"
	"github.com/sohrabTT/gagitech/internal/checkout"
)

type stubSubmitter struct {
	err  error
	last checkout.Order
}

func (s *stubSubmitter) Submit(_ context.Context, order checkout.Order) (checkout.Confirmation, error) {
	if s.err != nil {
		return checkout.Confirmation{}, s.err
	}
	s.last = order
	return checkout.Confirmation{OrderID: order.ID}, nil
}

func testCatalog() *catalog.Store {
	products := []catalog.Product{
		{ID: "p1", Name: "گوشی آلفا", NameEn: "Alpha Phone", Brand: "اپل", Category: "گوشی موبایل", Price: 100000, Rating: 4.0, InStock: true},
		{ID: "p2", Name: "گوشی بتا", NameEn: "Beta Phone", Brand: "سامسونگ", Category: "گوشی موبایل", Price: 50000, Rating: 4.5, IsNew: true, InStock: true},
		{ID: "p3", Name: "هدفون گاما", NameEn: "Gamma Headset", Brand: "سونی", Category: "هدفون و هندزفری", Price: 1500000, Rating: 4.8, InStock: false},
	}
	categories := []catalog.Category{
		{ID: "c1", Name: "گوشی موبایل", Slug: "mobile", ProductCount: 2},
		{ID: "c2", Name: "هدفون و هندزفری", Slug: "headphone", ProductCount: 1},
	}
	return catalog.NewStoreWith(products, categories, []string{"اپل", "سامسونگ", "سونی"})
}

func newTestAdapter() (*Adapter, *cart.Engine, *stubSubmitter) {
	engine := cart.NewEngine()
	sub := &stubSubmitter{}
	log := logrus.New()
	log.Out = io.Discard
	return NewAdapter(testCatalog(), engine, sub, log), engine, sub
}

func dispatch(t *testing.T, a *Adapter, tool string, params any) Result {
	t.Helper()
	var raw json.RawMessage
	if params != nil {
		b, err := json.Marshal(params)
		require.NoError(t, err)
		raw = b
	}
	return a.Dispatch(context.Background(), tool, raw)
}

func TestUnknownTool(t *testing.T) {
	a, _, _ := newTestAdapter()
	res := a.Dispatch(context.Background(), "teleport", nil)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)
}

func TestMalformedParams(t *testing.T) {
	a, engine, _ := newTestAdapter()
	res := a.Dispatch(context.Background(), "addToCart", json.RawMessage(`{"productId": 42`))
	assert.False(t, res.Success)
	assert.True(t, engine.IsEmpty(), "a failed call must not touch the cart")
}

func TestSearchProducts(t *testing.T) {
	a, _, _ := newTestAdapter()

	res := dispatch(t, a, "searchProducts", map[string]any{"query": "گوشی"})
	require.True(t, res.Success)
	results := res.Data["results"].([]catalog.Product)
	// p2 is new, so it sorts ahead of p1.
	require.Len(t, results, 2)
	assert.Equal(t, "p2", results[0].ID)
	assert.Equal(t, "p1", results[1].ID)

	res = dispatch(t, a, "searchProducts", map[string]any{"query": "ناموجودینامه"})
	assert.False(t, res.Success, "no matches reports failure with guidance")
}

func TestSearchProductsPriceBounds(t *testing.T) {
	a, _, _ := newTestAdapter()
	res := dispatch(t, a, "searchProducts", map[string]any{"minPrice": 60000, "maxPrice": 1500000})
	require.True(t, res.Success)
	results := res.Data["results"].([]catalog.Product)
	for _, p := range results {
		assert.GreaterOrEqual(t, p.Price, int64(60000))
		assert.LessOrEqual(t, p.Price, int64(1500000))
	}
}

func TestGetProductDetails(t *testing.T) {
	a, _, _ := newTestAdapter()

	res := dispatch(t, a, "getProductDetails", map[string]any{"productId": "p1"})
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "گوشی آلفا")
	assert.Equal(t, "p1", res.Data["product"].(catalog.Product).ID)

	res = dispatch(t, a, "getProductDetails", map[string]any{"productId": "nope"})
	assert.False(t, res.Success)

	res = dispatch(t, a, "getProductDetails", map[string]any{})
	assert.False(t, res.Success, "productId is required")
}

func TestAddToCart(t *testing.T) {
	a, engine, _ := newTestAdapter()

	res := dispatch(t, a, "addToCart", map[string]any{"productId": "p1", "quantity": 3})
	require.True(t, res.Success)
	assert.Equal(t, 3, engine.Quantity("p1"))
	assert.Contains(t, res.Message, "گوشی آلفا")

	// Omitted quantity defaults to one more.
	res = dispatch(t, a, "addToCart", map[string]any{"productId": "p1"})
	require.True(t, res.Success)
	assert.Equal(t, 4, engine.Quantity("p1"))
}

func TestAddToCartOutOfStock(t *testing.T) {
	a, engine, _ := newTestAdapter()
	res := dispatch(t, a, "addToCart", map[string]any{"productId": "p3"})
	assert.False(t, res.Success)
	assert.True(t, engine.IsEmpty(), "cart state must be unchanged")
}

func TestAddToCartValidation(t *testing.T) {
	a, engine, _ := newTestAdapter()

	res := dispatch(t, a, "addToCart", map[string]any{"productId": "p1", "quantity": 51})
	assert.False(t, res.Success)
	assert.True(t, engine.IsEmpty())

	res = dispatch(t, a, "addToCart", map[string]any{"productId": "missing"})
	assert.False(t, res.Success)
}

func TestRemoveFromCart(t *testing.T) {
	a, engine, _ := newTestAdapter()

	res := dispatch(t, a, "removeFromCart", map[string]any{"productId": "p1"})
	assert.False(t, res.Success, "removing a product not in the cart fails")

	dispatch(t, a, "addToCart", map[string]any{"productId": "p1"})
	res = dispatch(t, a, "removeFromCart", map[string]any{"productId": "p1"})
	require.True(t, res.Success)
	assert.True(t, engine.IsEmpty())
}

func TestUpdateCartQuantity(t *testing.T) {
	a, engine, _ := newTestAdapter()
	dispatch(t, a, "addToCart", map[string]any{"productId": "p1"})

	res := dispatch(t, a, "updateCartQuantity", map[string]any{"productId": "p1", "quantity": 5})
	require.True(t, res.Success)
	assert.Equal(t, 5, engine.Quantity("p1"))

	// Explicit zero removes the line.
	res = dispatch(t, a, "updateCartQuantity", map[string]any{"productId": "p1", "quantity": 0})
	require.True(t, res.Success)
	assert.True(t, engine.IsEmpty())

	// Omitted quantity is a schema violation, not a removal.
	dispatch(t, a, "addToCart", map[string]any{"productId": "p1"})
	res = dispatch(t, a, "updateCartQuantity", map[string]any{"productId": "p1"})
	assert.False(t, res.Success)
	assert.Equal(t, 1, engine.Quantity("p1"))
}

func TestGetCartSummary(t *testing.T) {
	a, _, _ := newTestAdapter()

	res := dispatch(t, a, "getCartSummary", nil)
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "خالی", "empty cart renders distinctly")

	dispatch(t, a, "addToCart", map[string]any{"productId": "p2", "quantity": 2})
	res = dispatch(t, a, "getCartSummary", nil)
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "گوشی بتا")
	st := res.Data["cartState"].(cart.State)
	assert.Equal(t, 2, st.TotalItems)
	assert.Equal(t, int64(100000), st.TotalPrice)
}

func TestClearCart(t *testing.T) {
	a, engine, _ := newTestAdapter()
	dispatch(t, a, "addToCart", map[string]any{"productId": "p1"})
	dispatch(t, a, "addToCart", map[string]any{"productId": "p2"})

	res := dispatch(t, a, "clearCart", nil)
	require.True(t, res.Success)
	assert.Equal(t, 2, res.Data["removedCount"])
	assert.True(t, engine.IsEmpty())
}

func TestStartCheckout(t *testing.T) {
	a, _, _ := newTestAdapter()

	res := dispatch(t, a, "startCheckout", nil)
	assert.False(t, res.Success, "checkout requires a non-empty cart")

	dispatch(t, a, "addToCart", map[string]any{"productId": "p1"})
	res = dispatch(t, a, "startCheckout", nil)
	assert.True(t, res.Success)
}

func validOrderParams() map[string]any {
	return map[string]any{
		"customerName":  "علی احمدی",
		"customerPhone": "09121234567",
		"address":       "تهران، خیابان ولیعصر، پلاک ۱۲",
	}
}

func TestFinalizeOrder(t *testing.T) {
	a, engine, sub := newTestAdapter()
	dispatch(t, a, "addToCart", map[string]any{"productId": "p1", "quantity": 2})

	res := dispatch(t, a, "finalizeOrder", validOrderParams())
	require.True(t, res.Success)

	orderID := res.Data["orderId"].(string)
	assert.Contains(t, orderID, "ORDER-")
	assert.True(t, engine.IsEmpty(), "a committed order empties the cart")

	// The submitter saw the snapshot taken before the clear.
	require.Len(t, sub.last.Items, 1)
	assert.Equal(t, 2, sub.last.Items[0].Quantity)
	assert.Equal(t, int64(200000), sub.last.Total)

	// A second order gets a different id.
	dispatch(t, a, "addToCart", map[string]any{"productId": "p2"})
	res = dispatch(t, a, "finalizeOrder", validOrderParams())
	require.True(t, res.Success)
	assert.NotEqual(t, orderID, res.Data["orderId"].(string))
}

func TestFinalizeOrderEmptyCart(t *testing.T) {
	a, _, _ := newTestAdapter()
	res := dispatch(t, a, "finalizeOrder", validOrderParams())
	assert.False(t, res.Success)
}

func TestFinalizeOrderValidation(t *testing.T) {
	a, engine, _ := newTestAdapter()
	dispatch(t, a, "addToCart", map[string]any{"productId": "p1"})

	for name, params := range map[string]map[string]any{
		"short name":    {"customerName": "ع", "customerPhone": "09121234567", "address": "تهران، خیابان ولیعصر، پلاک ۱۲"},
		"short phone":   {"customerName": "علی احمدی", "customerPhone": "0912", "address": "تهران، خیابان ولیعصر، پلاک ۱۲"},
		"short address": {"customerName": "علی احمدی", "customerPhone": "09121234567", "address": "تهران"},
		"bad email":     {"customerName": "علی احمدی", "customerPhone": "09121234567", "address": "تهران، خیابان ولیعصر، پلاک ۱۲", "customerEmail": "not-an-email"},
	} {
		res := dispatch(t, a, "finalizeOrder", params)
		assert.False(t, res.Success, name)
		assert.False(t, engine.IsEmpty(), "%s: failed finalize must keep the cart", name)
	}
}

func TestFinalizeOrderSubmitterFailureKeepsCart(t *testing.T) {
	a, engine, sub := newTestAdapter()
	sub.err = errors.New("backend down")
	dispatch(t, a, "addToCart", map[string]any{"productId": "p1"})

	res := dispatch(t, a, "finalizeOrder", validOrderParams())
	assert.False(t, res.Success)
	assert.False(t, engine.IsEmpty(), "cart clears only on acknowledgement")
}

func TestGetCategoriesAndBrands(t *testing.T) {
	a, _, _ := newTestAdapter()

	res := dispatch(t, a, "getCategories", nil)
	require.True(t, res.Success)
	cats := res.Data["categories"].([]catalog.Category)
	assert.Len(t, cats, 2)

	res = dispatch(t, a, "getBrands", nil)
	require.True(t, res.Success)
	assert.Equal(t, []string{"اپل", "سامسونگ", "سونی"}, res.Data["brands"].([]string))
}

func TestMessagesComposeLiveState(t *testing.T) {
	a, _, _ := newTestAdapter()
	dispatch(t, a, "addToCart", map[string]any{"productId": "p1"})

	first := dispatch(t, a, "getCartSummary", nil)
	dispatch(t, a, "addToCart", map[string]any{"productId": "p2"})
	second := dispatch(t, a, "getCartSummary", nil)

	assert.NotEqual(t, first.Message, second.Message, "summaries reflect live state, never a cached one")
	assert.Contains(t, second.Message, "گوشی بتا")
}
