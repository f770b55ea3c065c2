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

// Package assistant exposes the storefront to an external conversational
// agent as a fixed set of named, schema-validated tools. Every tool
// returns a structured Result; nothing here panics or errors past the
// dispatch boundary, so the agent runtime always gets something it can
// relay to the user.
package assistant

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/sohrabTT/gagitech/internal/cart"
	"github.com/sohrabTT/gagitech/internal/catalog"
	"github.com/sohrabTT/gagitech/internal/checkout"
)

// Result is the uniform tool response: an outcome flag, a chat-ready
// Persian message composed from live state, and any structured payload.
type Result struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

type toolFunc func(ctx context.Context, params json.RawMessage) Result

// ToolInfo describes one exposed operation for runtime registration.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Adapter wires the tool set to one session's cart engine, the catalog
// store, and the order submitter. Construct one per session alongside the
// engine.
type Adapter struct {
	catalog   *catalog.Store
	cart      *cart.Engine
	submitter checkout.Submitter
	log       logrus.FieldLogger
	validate  *validator.Validate

	tools map[string]toolFunc
	infos []ToolInfo
}

func NewAdapter(store *catalog.Store, engine *cart.Engine, submitter checkout.Submitter, log logrus.FieldLogger) *Adapter {
	a := &Adapter{
		catalog:   store,
		cart:      engine,
		submitter: submitter,
		log:       log,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		tools:     make(map[string]toolFunc),
	}
	a.register("searchProducts", "جستجو و فیلتر محصولات بر اساس دسته‌بندی، برند و قیمت", a.searchProducts)
	a.register("getProductDetails", "دریافت جزئیات کامل یک محصول خاص", a.getProductDetails)
	a.register("addToCart", "افزودن محصول به سبد خرید", a.addToCart)
	a.register("removeFromCart", "حذف محصول از سبد خرید", a.removeFromCart)
	a.register("updateCartQuantity", "تغییر تعداد محصول در سبد خرید", a.updateCartQuantity)
	a.register("getCartSummary", "دریافت خلاصه سبد خرید", a.getCartSummary)
	a.register("clearCart", "پاک کردن کامل سبد خرید", a.clearCart)
	a.register("startCheckout", "شروع فرآیند پرداخت و ثبت سفارش", a.startCheckout)
	a.register("finalizeOrder", "تکمیل نهایی سفارش با اطلاعات مشتری", a.finalizeOrder)
	a.register("getCategories", "دریافت لیست دسته‌بندی‌های موجود", a.getCategories)
	a.register("getBrands", "دریافت لیست برندهای موجود", a.getBrands)
	return a
}

func (a *Adapter) register(name, description string, fn toolFunc) {
	a.tools[name] = fn
	a.infos = append(a.infos, ToolInfo{Name: name, Description: description})
}

// Tools lists the exposed operations in registration order.
func (a *Adapter) Tools() []ToolInfo {
	return a.infos
}

// Dispatch invokes the named tool. Unknown names and undecodable params
// come back as failure results, never as errors.
func (a *Adapter) Dispatch(ctx context.Context, name string, params json.RawMessage) Result {
	fn, ok := a.tools[name]
	if !ok {
		a.log.WithField("tool", name).Warn("unknown tool invoked")
		return Result{Success: false, Message: "ابزار درخواستی وجود ندارد."}
	}

	a.log.WithField("tool", name).Debug("dispatching tool call")
	res := fn(ctx, params)
	a.log.WithFields(logrus.Fields{"tool": name, "success": res.Success}).Debug("tool call finished")
	return res
}

// decodeInto unmarshals and validates a tool's parameters. The returned
// string is a Persian diagnostic, empty on success.
func (a *Adapter) decodeInto(params json.RawMessage, dst any) string {
	if len(params) > 0 {
		if err := json.Unmarshal(params, dst); err != nil {
			return "پارامترهای ورودی نامعتبر است: " + err.Error()
		}
	}
	if err := a.validate.Struct(dst); err != nil {
		return "پارامترهای ورودی نامعتبر است: " + err.Error()
	}
	return ""
}
