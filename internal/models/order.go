package models

// OrderLine is one validated order entry: a product and the quantity the
// customer asked for, plus the promotion state attached after resolution.
// Duplicate product names in the raw input are summed into a single line.
type OrderLine struct {
	Name      string
	Quantity  int
	Promotion PromotionState
}

// Allocation is the outcome of running one order line through the stock and
// promotion allocation engine.
type Allocation struct {
	// Paid is the quantity the customer pays for, shortage included.
	Paid int
	// Gift is the quantity handed over for free under the promotion.
	Gift int
	// Shortage is the part of the order that promotional stock could not
	// cover, billed at full price from regular stock.
	Shortage int
	// OfferExtraGift is set when the customer bought exactly Buy units past
	// the last full bundle and may claim one more bundle's gift for free.
	OfferExtraGift bool
}
