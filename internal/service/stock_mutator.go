package service

import (
	"fmt"

	"github.com/wvmart/kiosk/internal/models"
	"github.com/wvmart/kiosk/internal/utils"
)

// DeductSoldStock removes the sold quantities of a finished checkout from the
// catalog. Shortage quantities were already taken from the regular row when
// the customer accepted shortage billing, so only the promotional-path part
// of each sale is settled here.
//
// Per product: a single-row product loses paid+gift from its row, floored at
// zero. A two-row product settles against the promotional row first; when that
// row cannot cover the sale (or was already depleted, in which case its stock
// counts as merged into the regular row) it is marked out of stock and the
// remaining non-shortage quantity comes out of the regular row.
//
// Zero or more than two rows for a paid product is a catalog invariant
// violation and aborts the run.
func DeductSoldStock(catalog *models.Catalog, s *models.Session) error {
	for _, item := range s.Paid {
		sold := item.Quantity + s.GiftQuantity(item.Name)
		rows := catalog.RowsFor(item.Name)

		switch len(rows) {
		case 1:
			rows[0].SetQuantity(rows[0].Sellable() - sold)
		case 2:
			deductTwoRows(rows, sold, s.ShortageQuantity(item.Name))
		default:
			return fmt.Errorf("%w: %d catalog rows for sold product %q", utils.ErrCatalogCorrupted, len(rows), item.Name)
		}
	}
	return nil
}

func deductTwoRows(rows []*models.Product, sold, shortage int) {
	promo, regular := rows[0], rows[1]
	if !promo.IsPromotional() {
		promo, regular = regular, promo
	}

	if promo.Sellable() >= sold {
		promo.SetQuantity(promo.Sellable() - sold)
		return
	}

	promo.SetQuantity(0)
	regular.SetQuantity(regular.Sellable() - (sold - shortage))
}
