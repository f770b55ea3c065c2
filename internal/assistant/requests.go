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

// Request types for the schema-validated tools. The tags are the schema:
// the agent runtime sends loosely typed JSON and everything it gets wrong
// surfaces as a validation failure result, not an error.

const defaultMaxResults = 10

type searchRequest struct {
	Query      string `json:"query"`
	Category   string `json:"category"`
	Brand      string `json:"brand"`
	MinPrice   int64  `json:"minPrice" validate:"gte=0"`
	MaxPrice   int64  `json:"maxPrice" validate:"gte=0"`
	MaxResults int    `json:"maxResults" validate:"gte=0,lte=100"`
}

type productDetailsRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	// Quantity defaults to 1 when omitted; the range check runs after the
	// default is applied.
	Quantity int `json:"quantity" validate:"gte=0,lte=50"`
}

type updateCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	// Pointer so an omitted quantity is distinguishable from an explicit
	// zero, which means "remove the line".
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

type finalizeOrderRequest struct {
	CustomerName  string `json:"customerName" validate:"required,min=2"`
	CustomerPhone string `json:"customerPhone" validate:"required,min=10"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
	Address       string `json:"address" validate:"required,min=10"`
	Notes         string `json:"notes"`
}
