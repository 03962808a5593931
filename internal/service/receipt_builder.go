package service

import (
	"github.com/wvmart/kiosk/internal/config"
	"github.com/wvmart/kiosk/internal/models"
)

// ReceiptBuilder turns an accumulated session into a final receipt, applying
// the promotional-gift discount and the capped membership discount.
type ReceiptBuilder struct {
	ratePercent int
	maxDiscount int
}

// NewReceiptBuilder constructs a ReceiptBuilder from the membership settings.
func NewReceiptBuilder(cfg config.MembershipConfig) *ReceiptBuilder {
	return &ReceiptBuilder{ratePercent: cfg.RatePercent, maxDiscount: cfg.MaxDiscount}
}

// Build computes the final receipt. Gift quantities count toward the product
// lines and the price subtotal, then their value is subtracted back out as
// the event discount. The membership discount applies only to the
// non-promotional base: lines sold without an active promotion plus all
// shortage-stock amounts, capped at the configured maximum.
func (b *ReceiptBuilder) Build(s *models.Session) models.Receipt {
	receipt := models.Receipt{
		ID:        s.ReceiptID,
		Gifts:     append([]models.QuantityItem(nil), s.Gifts...),
		Unclaimed: s.UnclaimedNames(),
	}

	for _, item := range s.Paid {
		qty := item.Quantity + s.GiftQuantity(item.Name)
		amount := qty * item.UnitPrice
		receipt.Lines = append(receipt.Lines, models.ReceiptLine{
			Name:     item.Name,
			Quantity: qty,
			Amount:   amount,
		})
		receipt.TotalQuantity += qty
		receipt.TotalPrice += amount
	}

	for _, g := range s.Gifts {
		receipt.EventDiscount += g.Quantity * s.UnitPrice(g.Name)
	}

	if s.Membership {
		receipt.MembershipDiscount = b.membershipDiscount(s)
	}

	receipt.FinalPrice = receipt.TotalPrice - receipt.EventDiscount - receipt.MembershipDiscount
	return receipt
}

// membershipDiscount computes rate% of the non-promotional base, capped.
func (b *ReceiptBuilder) membershipDiscount(s *models.Session) int {
	base := 0
	for _, item := range s.Paid {
		if !item.Promotional {
			base += item.Quantity * item.UnitPrice
		}
	}
	for _, sh := range s.Shortages {
		base += sh.Quantity * s.UnitPrice(sh.Name)
	}

	discount := base * b.ratePercent / 100
	if discount > b.maxDiscount {
		discount = b.maxDiscount
	}
	return discount
}
