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
	"time"

	"github.com/pkg/errors"
)

// ErrUnknownContext is returned for a context feed name the adapter does
// not serve.
var ErrUnknownContext = errors.New("assistant: unknown context feed")

// ContextFeed is one read-only snapshot handed to the agent runtime.
type ContextFeed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Data        any    `json:"data"`
}

// SessionInfo describes the current browsing session for the agent.
type SessionInfo struct {
	Timestamp time.Time `json:"timestamp"`
	UserType  string    `json:"userType"`
	Language  string    `json:"language"`
	Currency  string    `json:"currency"`
}

// Context recomputes the named feed on every call; feeds are never served
// from a cache, so the agent always sees live state.
func (a *Adapter) Context(name string) (ContextFeed, error) {
	switch name {
	case "products":
		return ContextFeed{
			Name:        "products",
			Description: "کاتالوگ کامل محصولات فروشگاه",
			Data:        a.catalog.Summarize(),
		}, nil
	case "cart":
		return ContextFeed{
			Name:        "cart",
			Description: "وضعیت فعلی سبد خرید کاربر",
			Data:        a.cart.State(),
		}, nil
	case "session":
		return ContextFeed{
			Name:        "session",
			Description: "اطلاعات جلسه کاربری",
			Data: SessionInfo{
				Timestamp: time.Now(),
				UserType:  "visitor",
				Language:  "fa",
				Currency:  "IRR",
			},
		}, nil
	default:
		return ContextFeed{}, errors.Wrapf(ErrUnknownContext, "name %q", name)
	}
}
