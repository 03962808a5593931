package service

import (
	"testing"

	"github.com/wvmart/kiosk/internal/config"
	"github.com/wvmart/kiosk/internal/models"
)

func testReceiptBuilder() *ReceiptBuilder {
	return NewReceiptBuilder(config.MembershipConfig{RatePercent: 30, MaxDiscount: 8000})
}

func TestBuildEmptySession(t *testing.T) {
	r := testReceiptBuilder().Build(models.NewSession())

	if r.TotalQuantity != 0 || r.TotalPrice != 0 {
		t.Errorf("totals = %d/%d, want 0/0", r.TotalQuantity, r.TotalPrice)
	}
	if r.EventDiscount != 0 || r.MembershipDiscount != 0 || r.FinalPrice != 0 {
		t.Errorf("discounts/final = %d/%d/%d, want all 0", r.EventDiscount, r.MembershipDiscount, r.FinalPrice)
	}
	if r.ID == "" {
		t.Error("receipt ID missing")
	}
}

func TestBuildNonPromotionalOnly(t *testing.T) {
	s := models.NewSession()
	s.AddPaid("물", 3, 1000, false)

	r := testReceiptBuilder().Build(s)

	if r.TotalQuantity != 3 || r.TotalPrice != 3000 {
		t.Errorf("totals = %d/%d, want 3/3000", r.TotalQuantity, r.TotalPrice)
	}
	if r.EventDiscount != 0 || r.MembershipDiscount != 0 {
		t.Errorf("discounts = %d/%d, want 0/0", r.EventDiscount, r.MembershipDiscount)
	}
	if r.FinalPrice != 3000 {
		t.Errorf("FinalPrice = %d, want 3000", r.FinalPrice)
	}
}

func TestBuildCountsGiftsInTotalsAndDiscountsThemBack(t *testing.T) {
	s := models.NewSession()
	s.AddPaid("콜라", 2, 1000, true)
	s.AddGift("콜라", 1)

	r := testReceiptBuilder().Build(s)

	if len(r.Lines) != 1 || r.Lines[0].Quantity != 3 || r.Lines[0].Amount != 3000 {
		t.Fatalf("lines = %+v, want one line 콜라 x3 3000", r.Lines)
	}
	if r.TotalQuantity != 3 || r.TotalPrice != 3000 {
		t.Errorf("totals = %d/%d, want 3/3000", r.TotalQuantity, r.TotalPrice)
	}
	if r.EventDiscount != 1000 {
		t.Errorf("EventDiscount = %d, want 1000", r.EventDiscount)
	}
	if r.FinalPrice != 2000 {
		t.Errorf("FinalPrice = %d, want 2000", r.FinalPrice)
	}
}

func TestBuildMembershipDiscount(t *testing.T) {
	t.Run("30 percent of non-promotional base", func(t *testing.T) {
		s := models.NewSession()
		s.AddPaid("물", 2, 1000, false)
		s.AddPaid("콜라", 3, 1000, true)
		s.AddGift("콜라", 1)
		s.Membership = true

		r := testReceiptBuilder().Build(s)

		// Base is the 2,000 of plain stock only; promotional lines are excluded.
		if r.MembershipDiscount != 600 {
			t.Errorf("MembershipDiscount = %d, want 600", r.MembershipDiscount)
		}
	})

	t.Run("shortage amounts join the base", func(t *testing.T) {
		s := models.NewSession()
		s.AddPaid("콜라", 6, 1000, true) // 4 shortage inside
		s.AddGift("콜라", 1)
		s.AddShortage("콜라", 4)
		s.Membership = true

		r := testReceiptBuilder().Build(s)

		if r.MembershipDiscount != 1200 {
			t.Errorf("MembershipDiscount = %d, want 1200 (30%% of 4,000)", r.MembershipDiscount)
		}
	})

	t.Run("capped at maximum", func(t *testing.T) {
		s := models.NewSession()
		s.AddPaid("정식도시락", 8, 6400, false)
		s.Membership = true

		r := testReceiptBuilder().Build(s)

		// 30% of 51,200 is 15,360; the cap wins.
		if r.MembershipDiscount != 8000 {
			t.Errorf("MembershipDiscount = %d, want 8000", r.MembershipDiscount)
		}
		if r.FinalPrice != 51200-8000 {
			t.Errorf("FinalPrice = %d, want %d", r.FinalPrice, 51200-8000)
		}
	})

	t.Run("not applied without the flag", func(t *testing.T) {
		s := models.NewSession()
		s.AddPaid("물", 2, 1000, false)

		r := testReceiptBuilder().Build(s)

		if r.MembershipDiscount != 0 {
			t.Errorf("MembershipDiscount = %d, want 0", r.MembershipDiscount)
		}
	})
}

func TestBuildMergesMultipleOrdersOfSameProduct(t *testing.T) {
	s := models.NewSession()
	s.AddPaid("콜라", 2, 1000, true)
	s.AddGift("콜라", 1)
	s.AddPaid("콜라", 4, 1000, true)
	s.AddGift("콜라", 2)

	r := testReceiptBuilder().Build(s)

	if len(r.Lines) != 1 {
		t.Fatalf("got %d lines, want merged single line", len(r.Lines))
	}
	if r.Lines[0].Quantity != 9 || r.Lines[0].Amount != 9000 {
		t.Errorf("line = %+v, want 콜라 x9 9000", r.Lines[0])
	}
	if r.EventDiscount != 3000 {
		t.Errorf("EventDiscount = %d, want 3000", r.EventDiscount)
	}
}

func TestBuildReportsUnclaimedPromotions(t *testing.T) {
	s := models.NewSession()
	s.AddPaid("콜라", 1, 1000, true)
	s.Unclaimed = append(s.Unclaimed, models.UnclaimedPromotion{Name: "콜라", Get: 1})

	r := testReceiptBuilder().Build(s)

	if len(r.Unclaimed) != 1 || r.Unclaimed[0] != "콜라" {
		t.Errorf("Unclaimed = %v, want [콜라]", r.Unclaimed)
	}
}
