package entity

import "time"

// Product representa un artículo del catálogo. Todos los precios se almacenan
// en centavos (unidades menores); InStock es derivado: cualquier escritura que
// incluya Inventory lo recalcula como Inventory > 0, ignorando lo que mande el
// cliente.
type Product struct {
	ID               string
	BusinessID       string
	Name             string
	Description      string
	Price            int64 // centavos
	SKU              string
	CategoryID       string
	ImageURL         string
	AdditionalImages []string
	Inventory        int
	InStock          bool
	HasVariants      bool
	Variants         []Variant
	Tags             []string
	IsFeatured       bool
	IsOnSale         bool
	SalePrice        int64 // centavos; 0 = sin precio de oferta
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SyncStock recalcula InStock a partir del inventario.
func (p *Product) SyncStock() {
	p.InStock = p.Inventory > 0
}

// Variant una combinación concreta de opciones del producto (ej. Talla=M, Color=Azul)
// con su propio SKU, inventario y precio opcional que reemplaza al del producto.
type Variant struct {
	Options   map[string]string `json:"options"`
	SKU       string            `json:"sku"`
	Price     int64             `json:"price,omitempty"` // centavos; 0 = hereda el del producto
	Inventory int               `json:"inventory"`
}

// ProductCategory agrupación simple de productos. La categoría por defecto
// ("Other") recibe los productos de cualquier categoría que se elimine y no
// puede eliminarse a sí misma.
type ProductCategory struct {
	ID         string
	BusinessID string
	Name       string
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DefaultProductCategoryName nombre de la categoría sembrada al registrar el negocio.
const DefaultProductCategoryName = "Other"
