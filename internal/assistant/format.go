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
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/sohrabTT/gagitech/internal/cart"
	"github.com/sohrabTT/gagitech/internal/catalog"
)

// All chat-facing text lives in this file: the engine and the tool
// handlers deal in structured data only, and this layer renders it in
// Persian for the conversational widget.

var faPrinter = message.NewPrinter(language.Persian)

// formatToman renders an amount with Persian digit grouping plus the
// currency word, e.g. "۷۸٬۵۰۰٬۰۰۰ تومان".
func formatToman(amount int64) string {
	return faPrinter.Sprintf("%v تومان", number.Decimal(amount))
}

func formatCount(n int) string {
	return faPrinter.Sprintf("%v", number.Decimal(n))
}

func formatRating(r float64) string {
	return faPrinter.Sprintf("%v", number.Decimal(r, number.MaxFractionDigits(1)))
}

// cartSummaryText is the canonical rendering of the cart used both by the
// getCartSummary tool and inside add/remove/update confirmations.
func cartSummaryText(st cart.State) string {
	if len(st.Items) == 0 {
		return "سبد خرید شما خالی است."
	}

	var b strings.Builder
	b.WriteString("سبد خرید شما:\n")
	for _, line := range st.Items {
		fmt.Fprintf(&b, "• %s - تعداد: %s - قیمت: %s\n",
			line.Product.Name, formatCount(line.Quantity), formatToman(line.Product.Price))
	}
	fmt.Fprintf(&b, "\nمجموع: %s\nتعداد کل: %s عدد", formatToman(st.TotalPrice), formatCount(st.TotalItems))
	return b.String()
}

// orderLinesText renders lines with their line totals, used in the
// finalize-order confirmation.
func orderLinesText(items []cart.Line) string {
	var b strings.Builder
	for i, line := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "• %s - تعداد: %s - قیمت: %s",
			line.Product.Name, formatCount(line.Quantity),
			formatToman(line.Product.Price*int64(line.Quantity)))
	}
	return b.String()
}

func searchResultsText(products []catalog.Product) string {
	var b strings.Builder
	for i, p := range products {
		stock := "موجود"
		if !p.InStock {
			stock = "ناموجود"
		}
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, p.Name, formatToman(p.Price))
		fmt.Fprintf(&b, "   برند: %s | دسته: %s\n", p.Brand, p.Category)
		fmt.Fprintf(&b, "   امتیاز: %s/۵ (%s نظر) | %s\n", formatRating(p.Rating), formatCount(p.ReviewCount), stock)
		fmt.Fprintf(&b, "   شناسه: %s\n", p.ID)
		if i < len(products)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func productDetailsText(p catalog.Product) string {
	specs := "مشخصات خاصی ثبت نشده"
	if len(p.Specifications) > 0 {
		keys := make([]string, 0, len(p.Specifications))
		for k := range p.Specifications {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var lines []string
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("• %s: %s", k, p.Specifications[k]))
		}
		specs = strings.Join(lines, "\n")
	}
	features := "ویژگی خاصی ثبت نشده"
	if len(p.Features) > 0 {
		features = bulleted(p.Features)
	}
	advantages := "مزایای خاصی ثبت نشده"
	if len(p.Advantages) > 0 {
		advantages = bulleted(p.Advantages)
	}
	discount := ""
	if p.Discount > 0 {
		discount = fmt.Sprintf("\n💰 تخفیف: %s٪", formatCount(p.Discount))
	}
	stock := "✅ موجود"
	if !p.InStock {
		stock = "❌ ناموجود"
	}

	return fmt.Sprintf("%s\n"+
		"قیمت: %s%s\n"+
		"برند: %s | دسته: %s\n"+
		"امتیاز: %s/۵ (%s نظر)\n"+
		"وضعیت: %s\n\n"+
		"توضیحات: %s\n\n"+
		"مشخصات:\n%s\n\n"+
		"ویژگی‌ها:\n%s\n\n"+
		"مزایا:\n%s\n\n"+
		"شناسه: %s",
		p.Name, formatToman(p.Price), discount, p.Brand, p.Category,
		formatRating(p.Rating), formatCount(p.ReviewCount), stock,
		p.Description, specs, features, advantages, p.ID)
}

func bulleted(items []string) string {
	var lines []string
	for _, it := range items {
		lines = append(lines, "• "+it)
	}
	return strings.Join(lines, "\n")
}
