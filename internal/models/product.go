package models

// Product is one catalog row. A product name may appear in up to two rows:
// one carrying promotional stock (Promotion set) and one carrying regular
// stock (Promotion empty).
type Product struct {
	Name       string
	Price      int
	Quantity   int
	OutOfStock bool
	Promotion  string
}

// IsPromotional reports whether the row is linked to a promotion.
func (p Product) IsPromotional() bool {
	return p.Promotion != ""
}

// Sellable returns the stock available on this row, zero when depleted.
func (p Product) Sellable() int {
	if p.OutOfStock {
		return 0
	}
	return p.Quantity
}

// SetQuantity updates the row stock, flooring at zero and flipping the
// out-of-stock sentinel when nothing remains.
func (p *Product) SetQuantity(quantity int) {
	if quantity <= 0 {
		p.Quantity = 0
		p.OutOfStock = true
		return
	}
	p.Quantity = quantity
	p.OutOfStock = false
}

// Catalog holds the in-memory product rows in their file order.
type Catalog struct {
	Rows []Product
}

// Clone returns a deep copy so the live catalog can be replaced wholesale.
func (c *Catalog) Clone() Catalog {
	rows := make([]Product, len(c.Rows))
	copy(rows, c.Rows)
	return Catalog{Rows: rows}
}

// Has reports whether any row exists for the product name.
func (c *Catalog) Has(name string) bool {
	for _, r := range c.Rows {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RowsFor returns pointers to every row holding the product name.
func (c *Catalog) RowsFor(name string) []*Product {
	var rows []*Product
	for i := range c.Rows {
		if c.Rows[i].Name == name {
			rows = append(rows, &c.Rows[i])
		}
	}
	return rows
}

// Price returns the unit price of a product, ok=false when unknown.
func (c *Catalog) Price(name string) (int, bool) {
	for _, r := range c.Rows {
		if r.Name == name {
			return r.Price, true
		}
	}
	return 0, false
}

// PromotionName returns the promotion linked to a product, or "" when the
// product has no promotional row.
func (c *Catalog) PromotionName(name string) string {
	for _, r := range c.Rows {
		if r.Name == name && r.IsPromotional() {
			return r.Promotion
		}
	}
	return ""
}

// PromotionStock returns the sellable stock on the promotional row.
func (c *Catalog) PromotionStock(name string) int {
	for _, r := range c.Rows {
		if r.Name == name && r.IsPromotional() {
			return r.Sellable()
		}
	}
	return 0
}

// SellableStock returns the total non-depleted stock across all rows of a
// product, promotional and regular combined.
func (c *Catalog) SellableStock(name string) int {
	total := 0
	for _, r := range c.Rows {
		if r.Name == name {
			total += r.Sellable()
		}
	}
	return total
}

// AllRowsDepleted reports whether every row of a product is out of stock.
func (c *Catalog) AllRowsDepleted(name string) bool {
	found := false
	for _, r := range c.Rows {
		if r.Name != name {
			continue
		}
		found = true
		if r.Sellable() > 0 {
			return false
		}
	}
	return found
}
