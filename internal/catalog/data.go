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

// The sample catalog shipped with the storefront. Prices are in toman.

var sampleBrands = []string{"اپل", "سامسونگ", "شیائومی", "سونی", "ایسوس", "لنوو"}

var sampleCategories = []Category{
	{ID: "cat-1", Name: "گوشی موبایل", Slug: "mobile", Image: "/images/categories/mobile.jpg", ProductCount: 4},
	{ID: "cat-2", Name: "لپ‌تاپ", Slug: "laptop", Image: "/images/categories/laptop.jpg", ProductCount: 3},
	{ID: "cat-3", Name: "هدفون و هندزفری", Slug: "headphone", Image: "/images/categories/headphone.jpg", ProductCount: 2},
	{ID: "cat-4", Name: "ساعت هوشمند", Slug: "smartwatch", Image: "/images/categories/smartwatch.jpg", ProductCount: 2},
	{ID: "cat-5", Name: "تبلت", Slug: "tablet", Image: "/images/categories/tablet.jpg", ProductCount: 1},
}

var sampleProducts = []Product{
	{
		ID:            "p-1001",
		Name:          "گوشی اپل آیفون ۱۵ پرو",
		NameEn:        "Apple iPhone 15 Pro",
		Price:         78500000,
		OriginalPrice: 82000000,
		Discount:      4,
		Image:         "/images/products/iphone-15-pro.jpg",
		Category:      "گوشی موبایل",
		Brand:         "اپل",
		Rating:        4.8,
		ReviewCount:   243,
		InStock:       true,
		IsFeatured:    true,
		IsNew:         true,
		Description:   "جدیدترین پرچم‌دار اپل با بدنه تیتانیومی و تراشه A17 Pro",
		Specifications: map[string]string{
			"صفحه نمایش": "۶.۱ اینچ Super Retina XDR",
			"حافظه داخلی": "۲۵۶ گیگابایت",
			"دوربین":     "۴۸ مگاپیکسل",
		},
		Features:   []string{"بدنه تیتانیوم", "پورت USB-C", "دکمه اکشن"},
		Advantages: []string{"عملکرد فوق‌العاده در بازی", "دوربین حرفه‌ای"},
	},
	{
		ID:          "p-1002",
		Name:        "گوشی سامسونگ گلکسی S24 اولترا",
		NameEn:      "Samsung Galaxy S24 Ultra",
		Price:       64900000,
		Image:       "/images/products/galaxy-s24-ultra.jpg",
		Category:    "گوشی موبایل",
		Brand:       "سامسونگ",
		Rating:      4.7,
		ReviewCount: 189,
		InStock:     true,
		IsFeatured:  true,
		IsNew:       true,
		Description: "پرچم‌دار سامسونگ با قلم S Pen و هوش مصنوعی گلکسی",
		Specifications: map[string]string{
			"صفحه نمایش": "۶.۸ اینچ Dynamic AMOLED",
			"حافظه داخلی": "۵۱۲ گیگابایت",
		},
	},
	{
		ID:            "p-1003",
		Name:          "گوشی شیائومی ردمی نوت ۱۳",
		NameEn:        "Xiaomi Redmi Note 13",
		Price:         12800000,
		OriginalPrice: 14500000,
		Discount:      12,
		Image:         "/images/products/redmi-note-13.jpg",
		Category:      "گوشی موبایل",
		Brand:         "شیائومی",
		Rating:        4.3,
		ReviewCount:   412,
		InStock:       true,
		IsBestseller:  true,
		Description:   "میان‌رده محبوب شیائومی با دوربین ۱۰۸ مگاپیکسلی",
	},
	{
		ID:          "p-1004",
		Name:        "گوشی سونی اکسپریا 1 مارک ۵",
		NameEn:      "Sony Xperia 1 V",
		Price:       55000000,
		Image:       "/images/products/xperia-1-v.jpg",
		Category:    "گوشی موبایل",
		Brand:       "سونی",
		Rating:      4.4,
		ReviewCount: 36,
		InStock:     false,
		Description: "پرچم‌دار سونی برای عکاسان و فیلم‌سازان",
	},
	{
		ID:          "p-2001",
		Name:        "لپ‌تاپ اپل مک‌بوک ایر M3",
		NameEn:      "Apple MacBook Air M3",
		Price:       89500000,
		Image:       "/images/products/macbook-air-m3.jpg",
		Category:    "لپ‌تاپ",
		Brand:       "اپل",
		Rating:      4.9,
		ReviewCount: 157,
		InStock:     true,
		IsFeatured:  true,
		IsNew:       true,
		Description: "سبک‌ترین مک‌بوک با تراشه M3 و عمر باتری ۱۸ ساعته",
		Features:    []string{"تراشه M3", "بدون فن", "صفحه Liquid Retina"},
	},
	{
		ID:            "p-2002",
		Name:          "لپ‌تاپ ایسوس ROG Strix G16",
		NameEn:        "Asus ROG Strix G16",
		Price:         72300000,
		OriginalPrice: 76000000,
		Discount:      5,
		Image:         "/images/products/rog-strix-g16.jpg",
		Category:      "لپ‌تاپ",
		Brand:         "ایسوس",
		Rating:        4.5,
		ReviewCount:   94,
		InStock:       true,
		Description:   "لپ‌تاپ گیمینگ با کارت گرافیک RTX 4060",
	},
	{
		ID:          "p-2003",
		Name:        "لپ‌تاپ لنوو آیدیاپد اسلیم ۳",
		NameEn:      "Lenovo IdeaPad Slim 3",
		Price:       28900000,
		Image:       "/images/products/ideapad-slim-3.jpg",
		Category:    "لپ‌تاپ",
		Brand:       "لنوو",
		Rating:      4.1,
		ReviewCount: 268,
		InStock:     true,
		IsBestseller: true,
		Description: "لپ‌تاپ اقتصادی برای کارهای روزمره و دانشجویی",
	},
	{
		ID:          "p-3001",
		Name:        "هدفون سونی WH-1000XM5",
		NameEn:      "Sony WH-1000XM5",
		Price:       24500000,
		Image:       "/images/products/sony-wh1000xm5.jpg",
		Category:    "هدفون و هندزفری",
		Brand:       "سونی",
		Rating:      4.8,
		ReviewCount: 321,
		InStock:     true,
		IsFeatured:  true,
		Description: "بهترین هدفون حذف نویز بازار با ۳۰ ساعت شارژدهی",
		Advantages:  []string{"حذف نویز بی‌رقیب", "کیفیت مکالمه عالی"},
	},
	{
		ID:            "p-3002",
		Name:          "هندزفری اپل ایرپادز پرو ۲",
		NameEn:        "Apple AirPods Pro 2",
		Price:         18700000,
		OriginalPrice: 19900000,
		Discount:      6,
		Image:         "/images/products/airpods-pro-2.jpg",
		Category:      "هدفون و هندزفری",
		Brand:         "اپل",
		Rating:        4.7,
		ReviewCount:   502,
		InStock:       false,
		IsBestseller:  true,
		Description:   "هندزفری بی‌سیم اپل با حذف نویز فعال و شارژ USB-C",
	},
	{
		ID:          "p-4001",
		Name:        "ساعت هوشمند اپل واچ سری ۹",
		NameEn:      "Apple Watch Series 9",
		Price:       32400000,
		Image:       "/images/products/apple-watch-s9.jpg",
		Category:    "ساعت هوشمند",
		Brand:       "اپل",
		Rating:      4.6,
		ReviewCount: 144,
		InStock:     true,
		IsNew:       true,
		Description: "ساعت هوشمند اپل با ژست Double Tap و صفحه روشن‌تر",
	},
	{
		ID:          "p-4002",
		Name:        "ساعت هوشمند سامسونگ گلکسی واچ ۶",
		NameEn:      "Samsung Galaxy Watch 6",
		Price:       15600000,
		Image:       "/images/products/galaxy-watch-6.jpg",
		Category:    "ساعت هوشمند",
		Brand:       "سامسونگ",
		Rating:      4.2,
		ReviewCount: 88,
		InStock:     true,
		Description: "ساعت هوشمند سامسونگ با سنسور ترکیب بدنی",
	},
	{
		ID:          "p-5001",
		Name:        "تبلت سامسونگ گلکسی تب S9",
		NameEn:      "Samsung Galaxy Tab S9",
		Price:       41200000,
		Image:       "/images/products/galaxy-tab-s9.jpg",
		Category:    "تبلت",
		Brand:       "سامسونگ",
		Rating:      4.5,
		ReviewCount: 61,
		InStock:     true,
		Description: "تبلت پرچم‌دار سامسونگ با قلم S Pen و بدنه ضدآب",
	},
}
