package domain

import "time"

// Domain contains the response and payload contracts of the catalog API.

type Category struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty"`
	Slug        string    `json:"slug" yaml:"slug"`
	ImageURL    *string   `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	IsActive    bool      `json:"is_active" yaml:"is_active"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// CategoryInput is the writable subset of a category. Zero-valued optional
// fields are omitted so the server applies its defaults.
type CategoryInput struct {
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Slug        string  `json:"slug,omitempty" yaml:"slug,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty" yaml:"is_active,omitempty"`
}

// CategoryRef is the category summary embedded in product responses.
type CategoryRef struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

type Product struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Slug        string  `json:"slug" yaml:"slug"`
	SKU         *string `json:"sku,omitempty" yaml:"sku,omitempty"`
	CategoryID  *string `json:"category_id,omitempty" yaml:"category_id,omitempty"`

	PriceRetail    float64  `json:"price_retail" yaml:"price_retail"`
	PriceWholesale float64  `json:"price_wholesale" yaml:"price_wholesale"`
	PriceGym       *float64 `json:"price_gym,omitempty" yaml:"price_gym,omitempty"`
	PriceCafeteria *float64 `json:"price_cafeteria,omitempty" yaml:"price_cafeteria,omitempty"`
	PriceStore     *float64 `json:"price_store,omitempty" yaml:"price_store,omitempty"`

	WeightGrams     *int           `json:"weight_grams,omitempty" yaml:"weight_grams,omitempty"`
	DimensionsCM    *string        `json:"dimensions_cm,omitempty" yaml:"dimensions_cm,omitempty"`
	Ingredients     *string        `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	NutritionalInfo map[string]any `json:"nutritional_info,omitempty" yaml:"nutritional_info,omitempty"`
	Allergens       []string       `json:"allergens,omitempty" yaml:"allergens,omitempty"`

	StockQuantity    int  `json:"stock_quantity" yaml:"stock_quantity"`
	MinStockAlert    int  `json:"min_stock_alert" yaml:"min_stock_alert"`
	MaxOrderQuantity *int `json:"max_order_quantity,omitempty" yaml:"max_order_quantity,omitempty"`
	MinOrderQuantity int  `json:"min_order_quantity" yaml:"min_order_quantity"`

	MainImageURL  *string  `json:"main_image_url,omitempty" yaml:"main_image_url,omitempty"`
	GalleryImages []string `json:"gallery_images,omitempty" yaml:"gallery_images,omitempty"`

	IsActive   bool         `json:"is_active" yaml:"is_active"`
	IsFeatured bool         `json:"is_featured" yaml:"is_featured"`
	Tags       []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt  time.Time    `json:"created_at" yaml:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" yaml:"updated_at"`
	Category   *CategoryRef `json:"category,omitempty" yaml:"category,omitempty"`
}

// ProductInput is the writable subset of a product.
type ProductInput struct {
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Slug        string  `json:"slug" yaml:"slug"`
	SKU         *string `json:"sku,omitempty" yaml:"sku,omitempty"`
	CategoryID  *string `json:"category_id,omitempty" yaml:"category_id,omitempty"`

	PriceRetail    float64  `json:"price_retail" yaml:"price_retail"`
	PriceWholesale float64  `json:"price_wholesale" yaml:"price_wholesale"`
	PriceGym       *float64 `json:"price_gym,omitempty" yaml:"price_gym,omitempty"`
	PriceCafeteria *float64 `json:"price_cafeteria,omitempty" yaml:"price_cafeteria,omitempty"`
	PriceStore     *float64 `json:"price_store,omitempty" yaml:"price_store,omitempty"`

	WeightGrams     *int           `json:"weight_grams,omitempty" yaml:"weight_grams,omitempty"`
	DimensionsCM    *string        `json:"dimensions_cm,omitempty" yaml:"dimensions_cm,omitempty"`
	Ingredients     *string        `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	NutritionalInfo map[string]any `json:"nutritional_info,omitempty" yaml:"nutritional_info,omitempty"`
	Allergens       []string       `json:"allergens,omitempty" yaml:"allergens,omitempty"`

	StockQuantity    *int `json:"stock_quantity,omitempty" yaml:"stock_quantity,omitempty"`
	MinStockAlert    *int `json:"min_stock_alert,omitempty" yaml:"min_stock_alert,omitempty"`
	MaxOrderQuantity *int `json:"max_order_quantity,omitempty" yaml:"max_order_quantity,omitempty"`
	MinOrderQuantity *int `json:"min_order_quantity,omitempty" yaml:"min_order_quantity,omitempty"`

	MainImageURL  *string  `json:"main_image_url,omitempty" yaml:"main_image_url,omitempty"`
	GalleryImages []string `json:"gallery_images,omitempty" yaml:"gallery_images,omitempty"`

	IsActive   *bool    `json:"is_active,omitempty" yaml:"is_active,omitempty"`
	IsFeatured *bool    `json:"is_featured,omitempty" yaml:"is_featured,omitempty"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ProductList is one page of the product listing.
type ProductList struct {
	Products   []Product `json:"products" yaml:"products"`
	Total      int       `json:"total" yaml:"total"`
	Page       int       `json:"page" yaml:"page"`
	PerPage    int       `json:"per_page" yaml:"per_page"`
	TotalPages int       `json:"total_pages" yaml:"total_pages"`
}

// Health is the body of GET /health.
type Health struct {
	Status  string `json:"status" yaml:"status"`
	Service string `json:"service" yaml:"service"`
}

// Message is the body of the root and ping endpoints.
type Message struct {
	Message string `json:"message" yaml:"message"`
}

// CatalogSnapshot is a point-in-time export of the catalog.
type CatalogSnapshot struct {
	TakenAt    time.Time  `json:"taken_at" yaml:"taken_at"`
	Categories []Category `json:"categories" yaml:"categories"`
	Products   []Product  `json:"products" yaml:"products"`
}
