package service

import (
	"testing"

	"github.com/wvmart/kiosk/internal/models"
)

func TestAllocateWithEnoughPromotionStock(t *testing.T) {
	tests := []struct {
		name       string
		quantity   int
		promoStock int
		buy, get   int
		wantPaid   int
		wantGift   int
		wantOffer  bool
	}{
		{
			name:     "buy1 get1 remainder equals buy raises upsell",
			quantity: 3, promoStock: 10, buy: 1, get: 1,
			wantPaid: 2, wantGift: 1, wantOffer: true,
		},
		{
			name:     "exact bundles no upsell",
			quantity: 6, promoStock: 10, buy: 2, get: 1,
			wantPaid: 4, wantGift: 2, wantOffer: false,
		},
		{
			name:     "remainder equals buy on buy2 get1",
			quantity: 5, promoStock: 10, buy: 2, get: 1,
			wantPaid: 4, wantGift: 1, wantOffer: true,
		},
		{
			name:     "remainder short of buy no upsell",
			quantity: 4, promoStock: 10, buy: 2, get: 1,
			wantPaid: 3, wantGift: 1, wantOffer: false,
		},
		{
			name:     "single unit under buy1 get1 raises upsell",
			quantity: 1, promoStock: 5, buy: 1, get: 1,
			wantPaid: 1, wantGift: 0, wantOffer: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(tt.quantity, tt.promoStock, models.InProgress(tt.buy, tt.get))
			if got.Paid != tt.wantPaid {
				t.Errorf("Paid = %d, want %d", got.Paid, tt.wantPaid)
			}
			if got.Gift != tt.wantGift {
				t.Errorf("Gift = %d, want %d", got.Gift, tt.wantGift)
			}
			if got.Shortage != 0 {
				t.Errorf("Shortage = %d, want 0", got.Shortage)
			}
			if got.OfferExtraGift != tt.wantOffer {
				t.Errorf("OfferExtraGift = %v, want %v", got.OfferExtraGift, tt.wantOffer)
			}
		})
	}
}

func TestAllocateWithShortage(t *testing.T) {
	// buy=2 get=1, stock 5, order 7: shortage = 5 mod 3 + (7-5) = 4,
	// maxBundles = (7-4) div 3 = 1, paid = 2+4 = 6, gift = 1.
	got := Allocate(7, 5, models.InProgress(2, 1))

	if got.Shortage != 4 {
		t.Errorf("Shortage = %d, want 4", got.Shortage)
	}
	if got.Paid != 6 {
		t.Errorf("Paid = %d, want 6", got.Paid)
	}
	if got.Gift != 1 {
		t.Errorf("Gift = %d, want 1", got.Gift)
	}
	if got.OfferExtraGift {
		t.Error("OfferExtraGift = true, want false on the shortage path")
	}
}

func TestAllocateShortageNeverRaisesUpsell(t *testing.T) {
	// buy=1 get=1, stock 2, order 3: shortage = 0 + 1 = 1, paid = 1+1 = 2, gift = 1.
	got := Allocate(3, 2, models.InProgress(1, 1))

	if got.Shortage != 1 || got.Paid != 2 || got.Gift != 1 {
		t.Errorf("got paid=%d gift=%d shortage=%d, want 2/1/1", got.Paid, got.Gift, got.Shortage)
	}
	if got.OfferExtraGift {
		t.Error("OfferExtraGift = true, want false")
	}
}

func TestAllocateWithoutActivePromotion(t *testing.T) {
	for _, state := range []models.PromotionState{models.NoPromotion(), models.NotInProgress()} {
		got := Allocate(5, 10, state)
		if got.Paid != 5 || got.Gift != 0 || got.Shortage != 0 || got.OfferExtraGift {
			t.Errorf("state %v: got %+v, want paid-only allocation", state.Kind, got)
		}
	}
}

func TestAllocateQuantityConservation(t *testing.T) {
	// Paid + gift always equals requested quantity plus the granted bundle
	// gifts; the shortage is a subset of paid, never an addition.
	for q := 1; q <= 12; q++ {
		for s := 0; s <= 12; s++ {
			got := Allocate(q, s, models.InProgress(2, 1))
			if got.Paid+got.Gift != q {
				t.Fatalf("q=%d s=%d: paid %d + gift %d != requested %d", q, s, got.Paid, got.Gift, q)
			}
			if got.Shortage > got.Paid {
				t.Fatalf("q=%d s=%d: shortage %d exceeds paid %d", q, s, got.Shortage, got.Paid)
			}
			if got.Paid < 0 || got.Gift < 0 || got.Shortage < 0 {
				t.Fatalf("q=%d s=%d: negative allocation %+v", q, s, got)
			}
			if consumed := got.Paid + got.Gift - got.Shortage; s < q && consumed > s {
				t.Fatalf("q=%d s=%d: consumed %d from promotional stock of %d", q, s, consumed, s)
			}
		}
	}
}
