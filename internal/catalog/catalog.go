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

// Package catalog is the read-only product/category/brand store. The data
// is a fixed in-memory set loaded at construction; there is no persistence
// behind it and nothing here ever mutates it.
package catalog

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by GetProduct for an unknown product id.
var ErrNotFound = errors.New("catalog: product not found")

type Store struct {
	products   []Product
	categories []Category
	brands     []string
	byID       map[string]int
}

// NewStore builds a store over the default sample catalog.
func NewStore() *Store {
	return NewStoreWith(sampleProducts, sampleCategories, sampleBrands)
}

// NewStoreWith builds a store over caller-supplied data. Used by tests and
// by anyone swapping in a real backend behind the same surface.
func NewStoreWith(products []Product, categories []Category, brands []string) *Store {
	s := &Store{
		products:   products,
		categories: categories,
		brands:     brands,
		byID:       make(map[string]int, len(products)),
	}
	for i, p := range products {
		s.byID[p.ID] = i
	}
	return s
}

// ListProducts returns all products. The returned slice is shared; callers
// must treat it as read-only.
func (s *Store) ListProducts() []Product {
	return s.products
}

func (s *Store) ListCategories() []Category {
	return s.categories
}

func (s *Store) ListBrands() []string {
	return s.brands
}

// GetProduct looks up a product by id.
func (s *Store) GetProduct(id string) (Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, errors.Wrapf(ErrNotFound, "id %q", id)
	}
	return s.products[i], nil
}

// Filter holds the search criteria the assistant exposes. All supplied
// fields are combined with AND; zero values mean "no constraint".
type Filter struct {
	Query    string
	Category string
	Brand    string
	MinPrice int64 // inclusive; <0 means unset
	MaxPrice int64 // inclusive; <=0 means unset
	Limit    int
}

// SearchProducts filters the catalog per f, sorted new-first then by
// descending rating, truncated to f.Limit when positive.
//
// The free-text query matches case-insensitively as a substring of the
// product name, its English name, or its brand. Category and brand filters
// match by substring containment, not exact equality.
func (s *Store) SearchProducts(f Filter) []Product {
	query := strings.ToLower(f.Query)

	var results []Product
	for _, p := range s.products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.NameEn), query) &&
			!strings.Contains(strings.ToLower(p.Brand), query) {
			continue
		}
		if f.Category != "" && !strings.Contains(p.Category, f.Category) {
			continue
		}
		if f.Brand != "" && !strings.Contains(p.Brand, f.Brand) {
			continue
		}
		if f.MinPrice > 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		results = append(results, p)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].IsNew != results[j].IsNew {
			return results[i].IsNew
		}
		return results[i].Rating > results[j].Rating
	})

	if f.Limit > 0 && len(results) > f.Limit {
		results = results[:f.Limit]
	}
	return results
}

// Summarize recomputes the catalog digest on every call.
func (s *Store) Summarize() Summary {
	sum := Summary{
		TotalProducts: len(s.products),
		Brands:        s.brands,
	}
	for _, c := range s.categories {
		sum.Categories = append(sum.Categories, CategorySummary{
			Name:  c.Name,
			Slug:  c.Slug,
			Count: c.ProductCount,
		})
	}
	for i, p := range s.products {
		if i == 0 || p.Price < sum.PriceRange.Min {
			sum.PriceRange.Min = p.Price
		}
		if p.Price > sum.PriceRange.Max {
			sum.PriceRange.Max = p.Price
		}
	}
	return sum
}
