package service

import "github.com/wvmart/kiosk/internal/models"

// Allocate splits an order quantity across promotional and regular stock.
//
// With an active buy=B get=G promotion and promotional stock S, the stock is
// "enough" when S covers the full requested quantity. Then the order breaks
// into floor(Q/(B+G)) full bundles plus a remainder; the remainder equal to B
// means the customer is one unit short of another free bundle and gets the
// upsell offer.
//
// When S < Q the shortage is S mod (B+G) + (Q - S): units that cannot take
// part in bundling and are billed at full price from regular stock. The
// formula is intentionally kept as documented even though it mixes a stock
// modulo with a raw deficit.
func Allocate(quantity, promoStock int, promo models.PromotionState) models.Allocation {
	if !promo.Active() {
		return models.Allocation{Paid: quantity}
	}

	span := promo.Buy + promo.Get

	if promoStock >= quantity {
		bundles := quantity / span
		remainder := quantity % span
		return models.Allocation{
			Paid:           bundles*promo.Buy + remainder,
			Gift:           bundles * promo.Get,
			OfferExtraGift: remainder == promo.Buy,
		}
	}

	shortage := promoStock%span + (quantity - promoStock)
	maxBundles := (quantity - shortage) / span
	return models.Allocation{
		Paid:     maxBundles*promo.Buy + shortage,
		Gift:     maxBundles * promo.Get,
		Shortage: shortage,
	}
}
