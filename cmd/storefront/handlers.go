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

package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sohrabTT/gagitech/internal/assistant"
	"github.com/sohrabTT/gagitech/internal/cart"
	"github.com/sohrabTT/gagitech/internal/catalog"
	"github.com/sohrabTT/gagitech/internal/checkout"
)

func requestLogger(r *http.Request) logrus.FieldLogger {
	return r.Context().Value(ctxKeyLog{}).(logrus.FieldLogger)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]any{"error": code})
}

// GET /api/products?q=&category=&brand=&minPrice=&maxPrice=&limit=
func (fe *frontendServer) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if len(q) == 0 {
		writeJSON(w, http.StatusOK, fe.catalog.ListProducts())
		return
	}

	minPrice, _ := strconv.ParseInt(q.Get("minPrice"), 10, 64)
	maxPrice, _ := strconv.ParseInt(q.Get("maxPrice"), 10, 64)
	limit, _ := strconv.Atoi(q.Get("limit"))

	products := fe.catalog.SearchProducts(catalog.Filter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Limit:    limit,
	})
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GET /api/products/{id}
func (fe *frontendServer) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, err := fe.catalog.GetProduct(id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "product_not_found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (fe *frontendServer) listCategoriesHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, fe.catalog.ListCategories())
}

func (fe *frontendServer) listBrandsHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, fe.catalog.ListBrands())
}

// GET /api/cart
func (fe *frontendServer) getCartHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fe.session(r).engine.State())
}

// POST /api/cart/add {productId, quantity}
func (fe *frontendServer) addToCartHandler(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeJSONError(w, http.StatusBadRequest, "bad_request")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	log.WithField("product", req.ProductID).WithField("quantity", req.Quantity).Debug("adding to cart")

	p, err := fe.catalog.GetProduct(req.ProductID)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "product_not_found")
		return
	}

	engine := fe.session(r).engine
	for i := 0; i < req.Quantity; i++ {
		if err := engine.AddItem(p); err != nil {
			if errors.Is(err, cart.ErrOutOfStock) {
				writeJSONError(w, http.StatusConflict, "out_of_stock")
				return
			}
			log.WithField("error", err).Error("failed to add to cart")
			writeJSONError(w, http.StatusInternalServerError, "add_failed")
			return
		}
	}
	writeJSON(w, http.StatusOK, engine.State())
}

// POST /api/cart/remove {productId}
func (fe *frontendServer) removeFromCartHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeJSONError(w, http.StatusBadRequest, "bad_request")
		return
	}
	engine := fe.session(r).engine
	engine.RemoveItem(req.ProductID)
	writeJSON(w, http.StatusOK, engine.State())
}

// POST /api/cart/update {productId, quantity}
func (fe *frontendServer) updateCartHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeJSONError(w, http.StatusBadRequest, "bad_request")
		return
	}
	engine := fe.session(r).engine
	engine.UpdateQuantity(req.ProductID, req.Quantity)
	writeJSON(w, http.StatusOK, engine.State())
}

// POST /api/cart/increase {productId}
func (fe *frontendServer) increaseQuantityHandler(w http.ResponseWriter, r *http.Request) {
	fe.adjustQuantity(w, r, func(e *cart.Engine, id string) { e.IncreaseQuantity(id) })
}

// POST /api/cart/decrease {productId}
func (fe *frontendServer) decreaseQuantityHandler(w http.ResponseWriter, r *http.Request) {
	fe.adjustQuantity(w, r, func(e *cart.Engine, id string) { e.DecreaseQuantity(id) })
}

func (fe *frontendServer) adjustQuantity(w http.ResponseWriter, r *http.Request, apply func(*cart.Engine, string)) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeJSONError(w, http.StatusBadRequest, "bad_request")
		return
	}
	engine := fe.session(r).engine
	apply(engine, req.ProductID)
	writeJSON(w, http.StatusOK, engine.State())
}

// POST /api/cart/empty
func (fe *frontendServer) emptyCartHandler(w http.ResponseWriter, r *http.Request) {
	requestLogger(r).Debug("emptying cart")
	engine := fe.session(r).engine
	engine.Clear()
	writeJSON(w, http.StatusOK, engine.State())
}

// GET /api/cart/quote?code=WELCOME10
func (fe *frontendServer) cartQuoteHandler(w http.ResponseWriter, r *http.Request) {
	state := fe.session(r).engine.State()
	quote := checkout.PriceQuote(state, r.URL.Query().Get("code"))
	writeJSON(w, http.StatusOK, quote)
}

// POST /api/checkout {name, phone, email, address, notes, discountCode}
func (fe *frontendServer) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)
	var req struct {
		Name         string `json:"name"`
		Phone        string `json:"phone"`
		Email        string `json:"email"`
		Address      string `json:"address"`
		Notes        string `json:"notes"`
		DiscountCode string `json:"discountCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad_request")
		return
	}
	if len(req.Name) < 2 || len(req.Phone) < 10 || len(req.Address) < 10 {
		writeJSONError(w, http.StatusUnprocessableEntity, "invalid_customer_info")
		return
	}

	engine := fe.session(r).engine
	state := engine.State()
	if len(state.Items) == 0 {
		writeJSONError(w, http.StatusBadRequest, "empty_cart")
		return
	}

	quote := checkout.PriceQuote(state, req.DiscountCode)
	order := checkout.Order{
		ID: checkout.NextOrderID(),
		Customer: checkout.Customer{
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
			Notes:   req.Notes,
		},
		Items:    state.Items,
		Total:    quote.Total,
		PlacedAt: time.Now(),
	}

	conf, err := fe.submitter.Submit(r.Context(), order)
	if err != nil {
		log.WithField("error", err).Error("failed to complete the order")
		writeJSONError(w, http.StatusInternalServerError, "checkout_failed")
		return
	}
	// Clear only after the submitter acknowledged the order.
	engine.Clear()
	log.WithField("order", order.ID).Info("order placed")

	writeJSON(w, http.StatusOK, map[string]any{
		"orderId":           conf.OrderID,
		"trackingId":        conf.TrackingID,
		"estimatedDelivery": conf.EstimatedDelivery.Format("2006-01-02"),
		"quote":             quote,
		"status":            "success",
	})
}

// POST /api/login {email, password}
//
// There is no real authentication backend; the handler simulates one with
// a fixed delay and always succeeds for well-formed input.
func (fe *frontendServer) loginHandler(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "bad_request")
		return
	}
	log.WithField("email", req.Email).Info("login attempt")

	if !fe.simulateBackendCall(r) {
		writeJSONError(w, http.StatusServiceUnavailable, "cancelled")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "sessionToken": sessionID(r)})
}

// POST /api/register {firstName, lastName, email, phone, password}
func (fe *frontendServer) registerHandler(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "bad_request")
		return
	}
	log.WithField("email", req.Email).Info("register attempt")

	if !fe.simulateBackendCall(r) {
		writeJSONError(w, http.StatusServiceUnavailable, "cancelled")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// POST /api/contact {name, email, subject, message}
func (fe *frontendServer) contactHandler(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeJSONError(w, http.StatusBadRequest, "bad_request")
		return
	}
	log.WithField("subject", req.Subject).Info("contact form submitted")

	if !fe.simulateBackendCall(r) {
		writeJSONError(w, http.StatusServiceUnavailable, "cancelled")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "received"})
}

// simulateBackendCall sleeps the configured delay in place of a server
// round-trip. It reports false when the request was torn down first.
func (fe *frontendServer) simulateBackendCall(r *http.Request) bool {
	if fe.simulatedDelay <= 0 {
		return true
	}
	t := time.NewTimer(fe.simulatedDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-r.Context().Done():
		return false
	}
}

// GET /api/assistant/tools
func (fe *frontendServer) listToolsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fe.session(r).adapter.Tools())
}

// POST /api/assistant/tools/{tool}
//
// The external agent runtime posts raw tool parameters; whatever happens,
// the response is a structured assistant.Result with HTTP 200 so the
// runtime can always relay the message.
func (fe *frontendServer) dispatchToolHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["tool"]
	params, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad_request")
		return
	}
	res := fe.session(r).adapter.Dispatch(r.Context(), name, json.RawMessage(params))
	writeJSON(w, http.StatusOK, res)
}

// GET /api/assistant/context/{name}
func (fe *frontendServer) contextFeedHandler(w http.ResponseWriter, r *http.Request) {
	feed, err := fe.session(r).adapter.Context(mux.Vars(r)["name"])
	if err != nil {
		if errors.Is(err, assistant.ErrUnknownContext) {
			writeJSONError(w, http.StatusNotFound, "unknown_context")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "context_failed")
		return
	}
	writeJSON(w, http.StatusOK, feed)
}
