package dto

import (
	"time"

	"github.com/jhoicas/negocio-api/internal/domain/entity"
)

// VariantDTO una combinación concreta de opciones con SKU e inventario propios.
type VariantDTO struct {
	Options   map[string]string `json:"options" validate:"required"`
	SKU       string            `json:"sku"`
	Price     int64             `json:"price" validate:"min=0"` // centavos; 0 hereda
	Inventory int               `json:"inventory" validate:"min=0"`
}

// CreateProductRequest entrada para crear un producto. Los precios van en
// centavos; PriceDecimal acepta la representación decimal de la UI ("24.99")
// y, si viene, tiene prioridad sobre Price. InStock no se acepta: se deriva
// del inventario en el servidor.
type CreateProductRequest struct {
	Name             string       `json:"name" validate:"required,min=1,max=200"`
	Description      string       `json:"description" validate:"max=2000"`
	Price            int64        `json:"price" validate:"min=0"`
	PriceDecimal     string       `json:"price_decimal"`
	SKU              string       `json:"sku" validate:"max=100"`
	CategoryID       string       `json:"category_id"`
	ImageURL         string       `json:"image_url"`
	AdditionalImages []string     `json:"additional_images"`
	Inventory        int          `json:"inventory" validate:"min=0"`
	HasVariants      bool         `json:"has_variants"`
	Variants         []VariantDTO `json:"variants" validate:"dive"`
	Tags             []string     `json:"tags"`
	IsFeatured       bool         `json:"is_featured"`
	IsOnSale         bool         `json:"is_on_sale"`
	SalePrice        int64        `json:"sale_price" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto (PATCH parcial).
// No existe campo in_stock: el valor del cliente se ignora siempre.
type UpdateProductRequest struct {
	Name             *string      `json:"name" validate:"omitempty,min=1,max=200"`
	Description      *string      `json:"description" validate:"omitempty,max=2000"`
	Price            *int64       `json:"price" validate:"omitempty,min=0"`
	PriceDecimal     *string      `json:"price_decimal"`
	SKU              *string      `json:"sku" validate:"omitempty,max=100"`
	CategoryID       *string      `json:"category_id"`
	ImageURL         *string      `json:"image_url"`
	AdditionalImages []string     `json:"additional_images"`
	Inventory        *int         `json:"inventory" validate:"omitempty,min=0"`
	HasVariants      *bool        `json:"has_variants"`
	Variants         []VariantDTO `json:"variants" validate:"omitempty,dive"`
	Tags             []string     `json:"tags"`
	IsFeatured       *bool        `json:"is_featured"`
	IsOnSale         *bool        `json:"is_on_sale"`
	SalePrice        *int64       `json:"sale_price" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string           `json:"id"`
	BusinessID       string           `json:"business_id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Price            int64            `json:"price"`
	SKU              string           `json:"sku,omitempty"`
	CategoryID       string           `json:"category_id,omitempty"`
	ImageURL         string           `json:"image_url,omitempty"`
	AdditionalImages []string         `json:"additional_images,omitempty"`
	Inventory        int              `json:"inventory"`
	InStock          bool             `json:"in_stock"`
	HasVariants      bool             `json:"has_variants"`
	Variants         []entity.Variant `json:"variants,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	IsFeatured       bool             `json:"is_featured"`
	IsOnSale         bool             `json:"is_on_sale"`
	SalePrice        int64            `json:"sale_price,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// OptionGroupDTO un grupo de opciones de variante declarado por el cliente.
type OptionGroupDTO struct {
	Name   string   `json:"name" validate:"required,min=1"`
	Values []string `json:"values" validate:"required,min=1"`
}

// VariantCombinationsRequest grupos a expandir al producto cartesiano.
type VariantCombinationsRequest struct {
	Groups []OptionGroupDTO `json:"groups" validate:"required,min=1,dive"`
}

// VariantCombinationsResponse combinaciones en orden determinista.
type VariantCombinationsResponse struct {
	Combinations []map[string]string `json:"combinations"`
}

// CreateProductCategoryRequest entrada para crear una categoría de productos.
type CreateProductCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateProductCategoryRequest entrada para renombrar una categoría.
type UpdateProductCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// ProductCategoryResponse salida de una categoría de productos.
type ProductCategoryResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
