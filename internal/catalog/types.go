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

package catalog

// Product is an immutable catalog record. Prices are in toman, the
// smallest unit the store quotes in.
type Product struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	NameEn        string            `json:"nameEn,omitempty"`
	Price         int64             `json:"price"`
	OriginalPrice int64             `json:"originalPrice,omitempty"`
	Discount      int               `json:"discount,omitempty"`
	Image         string            `json:"image"`
	Images        []string          `json:"images,omitempty"`
	Category      string            `json:"category"`
	Brand         string            `json:"brand"`
	Rating        float64           `json:"rating"`
	ReviewCount   int               `json:"reviewCount"`
	InStock       bool              `json:"inStock"`
	IsFeatured    bool              `json:"isFeatured,omitempty"`
	IsNew         bool              `json:"isNew,omitempty"`
	IsBestseller  bool              `json:"isBestseller,omitempty"`
	Description   string            `json:"description"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Features      []string          `json:"features,omitempty"`
	Advantages    []string          `json:"advantages,omitempty"`
}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Image        string `json:"image"`
	ProductCount int    `json:"productCount"`
}

// Summary is the catalog digest fed to the shopping assistant as
// read-only context. It is recomputed on every call, never cached.
type Summary struct {
	TotalProducts int               `json:"totalProducts"`
	Categories    []CategorySummary `json:"categories"`
	Brands        []string          `json:"brands"`
	PriceRange    PriceRange        `json:"priceRange"`
}

type CategorySummary struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}
