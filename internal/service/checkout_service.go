package service

import (
	"github.com/rs/zerolog/log"

	"github.com/wvmart/kiosk/internal/models"
	"github.com/wvmart/kiosk/internal/repository"
)

// PendingDecisions lists the confirmations a processed order still needs from
// the customer before the receipt can be issued.
type PendingDecisions struct {
	// Upsells are products where the customer may claim one more free unit.
	Upsells []models.UnclaimedPromotion
	// Shortages are promotional orders partially billed at full price from
	// regular stock, awaiting the customer's consent.
	Shortages []models.QuantityItem
}

// CheckoutService drives one customer checkout session: parse and validate
// the order, resolve promotions, allocate stock, collect the interactive
// decisions, issue the receipt and settle the catalog. All engine calls are
// serialized; the session snapshot is cloned and swapped on every transition.
type CheckoutService struct {
	repo     *repository.CatalogRepository
	resolver *PromotionResolver
	receipts *ReceiptBuilder

	session *models.Session
}

// NewCheckoutService constructs a CheckoutService.
func NewCheckoutService(repo *repository.CatalogRepository, resolver *PromotionResolver, receipts *ReceiptBuilder) *CheckoutService {
	return &CheckoutService{repo: repo, resolver: resolver, receipts: receipts}
}

// Begin starts a fresh session for the next customer.
func (s *CheckoutService) Begin() {
	s.session = models.NewSession()
	log.Info().Str("receiptId", s.session.ReceiptID).Msg("checkout session started")
}

// Session exposes the current session snapshot for rendering.
func (s *CheckoutService) Session() *models.Session {
	return s.session
}

// ProcessOrder validates a raw order line and folds its allocations into the
// running receipt. On any validation error the session is left untouched and
// the caller re-prompts. The returned decisions must be resolved before
// Checkout.
func (s *CheckoutService) ProcessOrder(raw string) (PendingDecisions, error) {
	catalog := s.repo.Catalog()

	lines, err := ParseOrders(raw, catalog)
	if err != nil {
		return PendingDecisions{}, err
	}

	for i := range lines {
		state, err := s.resolver.Resolve(catalog, lines[i].Name)
		if err != nil {
			return PendingDecisions{}, err
		}
		lines[i].Promotion = state
	}

	var pending PendingDecisions
	next := s.session.Clone()

	for _, line := range lines {
		price, _ := catalog.Price(line.Name)
		alloc := Allocate(line.Quantity, catalog.PromotionStock(line.Name), line.Promotion)

		next.AddPaid(line.Name, alloc.Paid, price, line.Promotion.Active())
		if alloc.Gift > 0 {
			next.AddGift(line.Name, alloc.Gift)
		}
		if alloc.OfferExtraGift {
			offer := models.UnclaimedPromotion{Name: line.Name, Get: line.Promotion.Get}
			next.Unclaimed = append(next.Unclaimed, offer)
			pending.Upsells = append(pending.Upsells, offer)
		}
		if alloc.Shortage > 0 {
			next.AddShortage(line.Name, alloc.Shortage)
			pending.Shortages = append(pending.Shortages, models.QuantityItem{Name: line.Name, Quantity: alloc.Shortage})
		}

		log.Debug().
			Str("product", line.Name).
			Int("requested", line.Quantity).
			Int("paid", alloc.Paid).
			Int("gift", alloc.Gift).
			Int("shortage", alloc.Shortage).
			Bool("upsell", alloc.OfferExtraGift).
			Msg("order allocated")
	}

	s.session = next
	return pending, nil
}

// ResolveUpsell settles a one-more-free offer. Accepting grants the bundle
// gift and clears the product from the unclaimed report; declining leaves it
// there as an informational receipt line.
func (s *CheckoutService) ResolveUpsell(name string, accept bool) {
	if !accept {
		log.Debug().Str("product", name).Msg("extra gift declined")
		return
	}
	next := s.session.Clone()
	if next.ClaimPromotion(name) {
		s.session = next
		log.Debug().Str("product", name).Msg("extra gift claimed")
	}
}

// ResolveShortage settles the full-price billing of a shortage. Accepting
// deducts the shortage from the regular stock row immediately; declining
// removes the shortage quantity from the order entirely.
func (s *CheckoutService) ResolveShortage(name string, accept bool) {
	if accept {
		s.repo.DeductRegularStock(name, s.session.ShortageQuantity(name))
		log.Debug().Str("product", name).Msg("shortage billing accepted")
		return
	}
	next := s.session.Clone()
	next.RemoveShortage(name)
	s.session = next
	log.Debug().Str("product", name).Msg("shortage billing declined")
}

// ApplyMembership marks the session for the membership discount.
func (s *CheckoutService) ApplyMembership(accept bool) {
	if !accept {
		return
	}
	next := s.session.Clone()
	next.Membership = true
	s.session = next
}

// Checkout issues the final receipt and deducts the sold quantities from the
// catalog. The catalog is edited on a clone and swapped in whole.
func (s *CheckoutService) Checkout() (models.Receipt, error) {
	receipt := s.receipts.Build(s.session)

	next := s.repo.Catalog().Clone()
	if err := DeductSoldStock(&next, s.session); err != nil {
		return models.Receipt{}, err
	}
	s.repo.Replace(next)

	log.Info().
		Str("receiptId", receipt.ID).
		Int("totalQuantity", receipt.TotalQuantity).
		Int("totalPrice", receipt.TotalPrice).
		Int("finalPrice", receipt.FinalPrice).
		Msg("checkout completed")
	return receipt, nil
}
