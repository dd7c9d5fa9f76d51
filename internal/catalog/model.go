package catalog

// CategoryFallback stands in for products published without a category so
// they remain filterable.
const CategoryFallback = "uncategorized"

// Product is one catalog entry. The catalog is read-only to the rest of
// the system; only the seeder writes it.
type Product struct {
	ID          string   `gorm:"primaryKey" json:"id"`
	Slug        string   `gorm:"uniqueIndex" json:"slug"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"salePrice,omitempty"`
	Image       string   `json:"image"`
	Category    string   `json:"category,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"reviews,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Colors      []string `gorm:"serializer:json" json:"colors,omitempty"`
	Sizes       []string `gorm:"serializer:json" json:"sizes,omitempty"`

	// Position preserves the seed file's newest-first ordering, which is
	// what the "newest" sort returns.
	Position int `json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// EffectivePrice is the sale price when one is set, the list price
// otherwise.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// CategoryOrFallback never returns the empty string.
func (p Product) CategoryOrFallback() string {
	if p.Category == "" {
		return CategoryFallback
	}
	return p.Category
}
