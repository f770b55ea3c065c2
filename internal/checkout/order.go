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

package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sohrabTT/gagitech/internal/cart"
)

// Customer is the buyer payload collected at finalize time.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// Order is a committed cart plus the customer who bought it.
type Order struct {
	ID       string      `json:"id"`
	Customer Customer    `json:"customer"`
	Items    []cart.Line `json:"items"`
	Total    int64       `json:"total"`
	PlacedAt time.Time   `json:"placedAt"`
}

// Confirmation is the submitter's acknowledgement.
type Confirmation struct {
	OrderID           string    `json:"orderId"`
	TrackingID        string    `json:"trackingId"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// Submitter accepts a committed order. Implementations stand in for the
// order-processing backend; the storefront only requires that a returned
// nil error means the order is acknowledged and the cart may be cleared.
type Submitter interface {
	Submit(ctx context.Context, order Order) (Confirmation, error)
}

// SimulatedSubmitter sleeps a fixed delay in place of a backend call and
// acknowledges every order. The delay respects ctx so a torn-down caller
// is not held up.
type SimulatedSubmitter struct {
	Delay time.Duration
	Log   logrus.FieldLogger
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, order Order) (Confirmation, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return Confirmation{}, ctx.Err()
		}
	}

	conf := Confirmation{
		OrderID:           order.ID,
		TrackingID:        "TRK-" + uuid.NewString()[:8],
		EstimatedDelivery: order.PlacedAt.Add(48 * time.Hour),
	}
	if s.Log != nil {
		s.Log.WithFields(logrus.Fields{
			"order":    order.ID,
			"customer": order.Customer.Name,
			"items":    len(order.Items),
			"total":    order.Total,
		}).Info("order submitted")
	}
	return conf, nil
}

// orderIDs issues "ORDER-<unix-ms>" identifiers. The millisecond clock can
// repeat under rapid successive calls, so the generator bumps past the
// last issued value to keep ids unique and strictly increasing.
type orderIDs struct {
	mu   sync.Mutex
	last int64
}

var ids orderIDs

// NextOrderID returns a session-unique, monotonically increasing order id.
func NextOrderID() string {
	ids.mu.Lock()
	defer ids.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= ids.last {
		now = ids.last + 1
	}
	ids.last = now
	return fmt.Sprintf("ORDER-%d", now)
}
