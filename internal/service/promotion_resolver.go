package service

import (
	"fmt"
	"time"

	"github.com/wvmart/kiosk/internal/models"
	"github.com/wvmart/kiosk/internal/utils"
)

// PromotionResolver resolves the promotion state of a product for today.
type PromotionResolver struct {
	promotions map[string]models.Promotion
	now        func() time.Time
}

// NewPromotionResolver builds a resolver over the promotion definitions.
// now is injectable so date-window behavior is testable.
func NewPromotionResolver(promotions map[string]models.Promotion, now func() time.Time) *PromotionResolver {
	if now == nil {
		now = time.Now
	}
	return &PromotionResolver{promotions: promotions, now: now}
}

// Resolve returns one of the three promotion states for a product. A product
// linked to an undefined promotion is a programming error in the catalog and
// is returned as a fatal ErrPromotionNotDefined.
func (r *PromotionResolver) Resolve(catalog *models.Catalog, name string) (models.PromotionState, error) {
	promoName := catalog.PromotionName(name)
	if promoName == "" {
		return models.NoPromotion(), nil
	}

	promo, ok := r.promotions[promoName]
	if !ok {
		return models.PromotionState{}, fmt.Errorf("%w: %q on product %q", utils.ErrPromotionNotDefined, promoName, name)
	}

	if promo.ActiveOn(r.now()) {
		return models.InProgress(promo.Buy, promo.Get), nil
	}
	return models.NotInProgress(), nil
}
