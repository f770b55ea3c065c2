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

// Package checkout computes the order price breakdown and submits orders
// through a pluggable submitter. There is no real payment or fulfillment
// backend; the shipped submitter only simulates one.
package checkout

import "github.com/sohrabTT/gagitech/internal/cart"

const (
	// Orders above this subtotal ship free, otherwise a flat fee applies.
	freeShippingThreshold = 5000000
	flatShippingFee       = 200000

	taxPercent = 9

	welcomeCode            = "WELCOME10"
	welcomeDiscountPercent = 10
)

// Quote is the derived price breakdown for a cart. All amounts in toman.
type Quote struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// PriceQuote derives the breakdown from a cart snapshot and an optional
// discount code. Unknown codes simply yield no discount.
func PriceQuote(state cart.State, discountCode string) Quote {
	q := Quote{Subtotal: state.TotalPrice}

	if discountCode == welcomeCode {
		q.Discount = q.Subtotal * welcomeDiscountPercent / 100
	}
	if q.Subtotal > 0 && q.Subtotal <= freeShippingThreshold {
		q.Shipping = flatShippingFee
	}
	q.Tax = q.Subtotal * taxPercent / 100
	q.Total = q.Subtotal - q.Discount + q.Shipping + q.Tax
	return q
}
