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
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sohrabTT/gagitech/internal/cart"
	"github.com/sohrabTT/gagitech/internal/catalog"
	"github.com/sohrabTT/gagitech/internal/checkout"
)

func (a *Adapter) searchProducts(_ context.Context, params json.RawMessage) Result {
	var req searchRequest
	if msg := a.decodeInto(params, &req); msg != "" {
		return Result{Success: false, Message: "خطا در جستجو: " + msg, Data: map[string]any{"results": []catalog.Product{}}}
	}
	if req.MaxResults == 0 {
		req.MaxResults = defaultMaxResults
	}

	results := a.catalog.SearchProducts(catalog.Filter{
		Query:    req.Query,
		Category: req.Category,
		Brand:    req.Brand,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Limit:    req.MaxResults,
	})
	if len(results) == 0 {
		return Result{
			Success: false,
			Message: "هیچ محصولی با معیارهای جستجوی شما یافت نشد. لطفاً فیلترهای جستجو را تغییر دهید.",
			Data:    map[string]any{"results": []catalog.Product{}},
		}
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("%s محصول یافت شد:\n\n%s", formatCount(len(results)), searchResultsText(results)),
		Data:    map[string]any{"results": results},
	}
}

func (a *Adapter) getProductDetails(_ context.Context, params json.RawMessage) Result {
	var req productDetailsRequest
	if msg := a.decodeInto(params, &req); msg != "" {
		return Result{Success: false, Message: msg}
	}

	p, err := a.catalog.GetProduct(req.ProductID)
	if err != nil {
		return Result{Success: false, Message: "محصول مورد نظر یافت نشد."}
	}
	return Result{
		Success: true,
		Message: productDetailsText(p),
		Data:    map[string]any{"product": p},
	}
}

func (a *Adapter) addToCart(_ context.Context, params json.RawMessage) Result {
	var req addToCartRequest
	if msg := a.decodeInto(params, &req); msg != "" {
		return Result{Success: false, Message: "خطا در افزودن به سبد خرید: " + msg}
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	p, err := a.catalog.GetProduct(req.ProductID)
	if err != nil {
		return Result{Success: false, Message: "محصول مورد نظر یافت نشد."}
	}

	for i := 0; i < req.Quantity; i++ {
		if err := a.cart.AddItem(p); err != nil {
			if errors.Is(err, cart.ErrOutOfStock) {
				return Result{Success: false, Message: "این محصول در حال حاضر موجود نیست."}
			}
			return Result{Success: false, Message: "خطا در افزودن به سبد خرید: " + err.Error()}
		}
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("✅ %s عدد از محصول «%s» با موفقیت به سبد خرید اضافه شد.\n\n%s",
			formatCount(req.Quantity), p.Name, cartSummaryText(a.cart.State())),
		Data: map[string]any{"addedProduct": p, "quantity": req.Quantity},
	}
}

func (a *Adapter) removeFromCart(_ context.Context, params json.RawMessage) Result {
	var req productDetailsRequest
	if msg := a.decodeInto(params, &req); msg != "" {
		return Result{Success: false, Message: msg}
	}

	line, ok := a.cartLine(req.ProductID)
	if !ok {
		return Result{Success: false, Message: "این محصول در سبد خرید شما موجود نیست."}
	}

	a.cart.RemoveItem(req.ProductID)
	return Result{
		Success: true,
		Message: fmt.Sprintf("✅ محصول «%s» از سبد خرید حذف شد.\n\n%s",
			line.Product.Name, cartSummaryText(a.cart.State())),
		Data: map[string]any{"removedProduct": line.Product},
	}
}

func (a *Adapter) updateCartQuantity(_ context.Context, params json.RawMessage) Result {
	var req updateCartRequest
	if msg := a.decodeInto(params, &req); msg != "" {
		return Result{Success: false, Message: "خطا در تغییر تعداد: " + msg}
	}

	line, ok := a.cartLine(req.ProductID)
	if !ok {
		return Result{Success: false, Message: "این محصول در سبد خرید شما موجود نیست."}
	}

	quantity := *req.Quantity
	if quantity == 0 {
		a.cart.RemoveItem(req.ProductID)
		return Result{
			Success: true,
			Message: fmt.Sprintf("✅ محصول «%s» از سبد خرید حذف شد.\n\n%s",
				line.Product.Name, cartSummaryText(a.cart.State())),
		}
	}

	a.cart.UpdateQuantity(req.ProductID, quantity)
	return Result{
		Success: true,
		Message: fmt.Sprintf("✅ تعداد محصول «%s» به %s عدد تغییر یافت.\n\n%s",
			line.Product.Name, formatCount(quantity), cartSummaryText(a.cart.State())),
		Data: map[string]any{"updatedProduct": line.Product, "newQuantity": quantity},
	}
}

func (a *Adapter) getCartSummary(_ context.Context, _ json.RawMessage) Result {
	st := a.cart.State()
	if len(st.Items) == 0 {
		return Result{
			Success: true,
			Message: "🛒 سبد خرید شما خالی است.\n\nبرای شروع خرید، می‌توانید از دستور «جستجو محصولات» استفاده کنید.",
			Data:    map[string]any{"cartState": st},
		}
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("🛒 %s\n\n💡 برای ادامه خرید، می‌توانید:\n• محصولات بیشتر جستجو کنید\n• تعداد محصولات را تغییر دهید\n• برای تکمیل خرید «شروع پرداخت» بگویید",
			cartSummaryText(st)),
		Data: map[string]any{"cartState": st},
	}
}

func (a *Adapter) clearCart(_ context.Context, _ json.RawMessage) Result {
	removed := len(a.cart.State().Items)
	a.cart.Clear()
	return Result{
		Success: true,
		Message: fmt.Sprintf("✅ سبد خرید پاک شد. %s محصول حذف گردید.", formatCount(removed)),
		Data:    map[string]any{"removedCount": removed},
	}
}

func (a *Adapter) startCheckout(_ context.Context, _ json.RawMessage) Result {
	st := a.cart.State()
	if len(st.Items) == 0 {
		return Result{Success: false, Message: "⚠️ سبد خرید شما خالی است. ابتدا محصولاتی اضافه کنید."}
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("🛒 آماده برای تکمیل خرید!\n\n%s\n\n"+
			"برای تکمیل سفارش، لطفاً اطلاعات زیر را ارائه دهید:\n"+
			"• نام کامل\n• شماره تلفن\n• آدرس کامل تحویل\n• ایمیل (اختیاری)\n• یادداشت (اختیاری)\n\n"+
			"مثال:\n«نام: علی احمدی، تلفن: ۰۹۱۲۱۲۳۴۵۶۷، آدرس: تهران، خیابان ولیعصر...»",
			cartSummaryText(st)),
		Data: map[string]any{"cartState": st},
	}
}

func (a *Adapter) finalizeOrder(ctx context.Context, params json.RawMessage) Result {
	var req finalizeOrderRequest
	if msg := a.decodeInto(params, &req); msg != "" {
		return Result{Success: false, Message: "خطا در ثبت سفارش: " + msg}
	}

	st := a.cart.State()
	if len(st.Items) == 0 {
		return Result{Success: false, Message: "⚠️ سبد خرید خالی است. ابتدا محصولاتی اضافه کنید."}
	}

	order := checkout.Order{
		ID: checkout.NextOrderID(),
		Customer: checkout.Customer{
			Name:    req.CustomerName,
			Phone:   req.CustomerPhone,
			Email:   req.CustomerEmail,
			Address: req.Address,
			Notes:   req.Notes,
		},
		Items:    st.Items,
		Total:    st.TotalPrice,
		PlacedAt: time.Now(),
	}

	// The cart is only cleared once the submitter acknowledges: a failed
	// submission leaves the cart intact for a retry.
	if _, err := a.submitter.Submit(ctx, order); err != nil {
		a.log.WithField("error", err).Error("order submission failed")
		return Result{Success: false, Message: "خطا در ثبت سفارش: " + err.Error()}
	}
	a.cart.Clear()

	email := ""
	if req.CustomerEmail != "" {
		email = fmt.Sprintf("• ایمیل: %s\n", req.CustomerEmail)
	}
	notes := ""
	if req.Notes != "" {
		notes = fmt.Sprintf("• یادداشت: %s\n", req.Notes)
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("✅ سفارش شما با موفقیت ثبت شد!\n\n"+
			"📋 شماره سفارش: %s\n\n"+
			"👤 اطلاعات مشتری:\n• نام: %s\n• تلفن: %s\n• آدرس: %s\n%s%s\n"+
			"🛍️ محصولات سفارشی:\n%s\n\n"+
			"💰 مبلغ کل: %s\n\n"+
			"📞 پس از آماده‌سازی سفارش، با شما تماس گرفته خواهد شد.",
			order.ID, req.CustomerName, req.CustomerPhone, req.Address, email, notes,
			orderLinesText(order.Items), formatToman(order.Total)),
		Data: map[string]any{
			"orderId":   order.ID,
			"order":     order,
			"cartState": a.cart.State(),
		},
	}
}

func (a *Adapter) getCategories(_ context.Context, _ json.RawMessage) Result {
	cats := a.catalog.ListCategories()
	var text string
	for _, c := range cats {
		text += fmt.Sprintf("• %s (%s محصول)\n", c.Name, formatCount(c.ProductCount))
	}
	return Result{
		Success: true,
		Message: "📂 دسته‌بندی‌های موجود:\n\n" + text,
		Data:    map[string]any{"categories": cats},
	}
}

func (a *Adapter) getBrands(_ context.Context, _ json.RawMessage) Result {
	brands := a.catalog.ListBrands()
	var text string
	for _, b := range brands {
		text += "• " + b + "\n"
	}
	return Result{
		Success: true,
		Message: "🏷️ برندهای موجود:\n\n" + text,
		Data:    map[string]any{"brands": brands},
	}
}

// cartLine finds the live cart line for productID.
func (a *Adapter) cartLine(productID string) (cart.Line, bool) {
	for _, line := range a.cart.State().Items {
		if line.Product.ID == productID {
			return line, true
		}
	}
	return cart.Line{}, false
}
