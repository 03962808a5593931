package models

import "github.com/google/uuid"

// PaidItem is one accumulated paid line of the running receipt.
type PaidItem struct {
	Name      string
	Quantity  int
	UnitPrice int
	// Promotional marks lines sold under an active promotion; those are
	// excluded from the membership discount base.
	Promotional bool
}

// QuantityItem is a name/quantity pair kept in input order so receipts render
// deterministically. Used for gifts and shortage allocations.
type QuantityItem struct {
	Name     string
	Quantity int
}

// UnclaimedPromotion records a product where the customer under-bought by
// exactly one unit and may still claim the bundle gift.
type UnclaimedPromotion struct {
	Name string
	Get  int
}

// Session is the running receipt state of one checkout. It is treated as an
// immutable snapshot: every transition clones it, edits the clone, and swaps
// it in under the single-writer discipline.
type Session struct {
	ReceiptID  string
	Paid       []PaidItem
	Gifts      []QuantityItem
	Shortages  []QuantityItem
	Unclaimed  []UnclaimedPromotion
	Membership bool
}

// NewSession starts an empty session with a fresh receipt identifier.
func NewSession() *Session {
	return &Session{ReceiptID: uuid.NewString()}
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	next := &Session{
		ReceiptID:  s.ReceiptID,
		Paid:       make([]PaidItem, len(s.Paid)),
		Gifts:      make([]QuantityItem, len(s.Gifts)),
		Shortages:  make([]QuantityItem, len(s.Shortages)),
		Unclaimed:  make([]UnclaimedPromotion, len(s.Unclaimed)),
		Membership: s.Membership,
	}
	copy(next.Paid, s.Paid)
	copy(next.Gifts, s.Gifts)
	copy(next.Shortages, s.Shortages)
	copy(next.Unclaimed, s.Unclaimed)
	return next
}

// AddPaid merges a paid quantity into the running receipt.
func (s *Session) AddPaid(name string, quantity, unitPrice int, promotional bool) {
	for i := range s.Paid {
		if s.Paid[i].Name == name {
			s.Paid[i].Quantity += quantity
			return
		}
	}
	s.Paid = append(s.Paid, PaidItem{
		Name:        name,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Promotional: promotional,
	})
}

// AddGift merges a gift quantity into the running receipt.
func (s *Session) AddGift(name string, quantity int) {
	for i := range s.Gifts {
		if s.Gifts[i].Name == name {
			s.Gifts[i].Quantity += quantity
			return
		}
	}
	s.Gifts = append(s.Gifts, QuantityItem{Name: name, Quantity: quantity})
}

// AddShortage merges a shortage-stock quantity into the running receipt.
func (s *Session) AddShortage(name string, quantity int) {
	for i := range s.Shortages {
		if s.Shortages[i].Name == name {
			s.Shortages[i].Quantity += quantity
			return
		}
	}
	s.Shortages = append(s.Shortages, QuantityItem{Name: name, Quantity: quantity})
}

// GiftQuantity returns the accumulated gift quantity for a product.
func (s *Session) GiftQuantity(name string) int {
	for _, g := range s.Gifts {
		if g.Name == name {
			return g.Quantity
		}
	}
	return 0
}

// ShortageQuantity returns the accumulated shortage quantity for a product.
func (s *Session) ShortageQuantity(name string) int {
	for _, sh := range s.Shortages {
		if sh.Name == name {
			return sh.Quantity
		}
	}
	return 0
}

// RemoveShortage drops the shortage entry of a product and subtracts its
// quantity from the product's paid line. Used when the customer declines
// full-price billing for the shortage part of a promotional order.
func (s *Session) RemoveShortage(name string) {
	qty := 0
	kept := s.Shortages[:0]
	for _, sh := range s.Shortages {
		if sh.Name == name {
			qty = sh.Quantity
			continue
		}
		kept = append(kept, sh)
	}
	s.Shortages = kept
	if qty == 0 {
		return
	}

	items := s.Paid[:0]
	for _, p := range s.Paid {
		if p.Name == name {
			p.Quantity -= qty
			if p.Quantity <= 0 {
				continue
			}
		}
		items = append(items, p)
	}
	s.Paid = items
}

// ClaimPromotion grants the pending extra gift of a product and drops it from
// the unclaimed list. Returns false when the product has no pending offer.
func (s *Session) ClaimPromotion(name string) bool {
	for i, u := range s.Unclaimed {
		if u.Name == name {
			s.AddGift(name, u.Get)
			s.Unclaimed = append(s.Unclaimed[:i], s.Unclaimed[i+1:]...)
			return true
		}
	}
	return false
}

// UnclaimedNames lists products still carrying a declined or unanswered
// one-more-free offer, in order of appearance.
func (s *Session) UnclaimedNames() []string {
	names := make([]string, 0, len(s.Unclaimed))
	for _, u := range s.Unclaimed {
		names = append(names, u.Name)
	}
	return names
}

// UnitPrice returns the unit price recorded on a product's paid line.
func (s *Session) UnitPrice(name string) int {
	for _, p := range s.Paid {
		if p.Name == name {
			return p.UnitPrice
		}
	}
	return 0
}
