package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/wvmart/kiosk/internal/models"
	"github.com/wvmart/kiosk/internal/utils"
)

// ParseOrders validates a raw order line of the form
// [name-quantity],[name-quantity]... against the catalog and returns one
// order line per product, duplicates summed, in order of first appearance.
// It is pure: validation failures leave no state behind and the caller
// re-prompts.
func ParseOrders(raw string, catalog *models.Catalog) ([]models.OrderLine, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty order", utils.ErrMalformedInput)
	}
	if !validOrderCharset(raw) {
		return nil, fmt.Errorf("%w: unexpected characters in %q", utils.ErrMalformedInput, raw)
	}

	lines, err := extractOrders(raw)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if !catalog.Has(line.Name) {
			return nil, fmt.Errorf("%w: %q", utils.ErrUnknownProduct, line.Name)
		}
		if catalog.AllRowsDepleted(line.Name) {
			return nil, fmt.Errorf("%w: %q", utils.ErrOutOfStock, line.Name)
		}
		if line.Quantity > catalog.SellableStock(line.Name) {
			return nil, fmt.Errorf("%w: %q has %d left, %d requested",
				utils.ErrInsufficientStock, line.Name, catalog.SellableStock(line.Name), line.Quantity)
		}
	}
	return lines, nil
}

// validOrderCharset allows letters, digits, comma, hyphen and square brackets.
func validOrderCharset(raw string) bool {
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		switch r {
		case ',', '-', '[', ']':
			continue
		}
		return false
	}
	return true
}

// extractOrders splits the raw line into groups, checks group syntax, and
// sums duplicate product names preserving first-appearance order.
func extractOrders(raw string) ([]models.OrderLine, error) {
	var lines []models.OrderLine
	index := make(map[string]int)

	for _, group := range strings.Split(raw, ",") {
		name, qty, err := parseGroup(group)
		if err != nil {
			return nil, err
		}
		if i, ok := index[name]; ok {
			lines[i].Quantity += qty
			continue
		}
		index[name] = len(lines)
		lines = append(lines, models.OrderLine{
			Name:      name,
			Quantity:  qty,
			Promotion: models.NoPromotion(),
		})
	}
	return lines, nil
}

func parseGroup(group string) (string, int, error) {
	if !strings.HasPrefix(group, "[") || !strings.HasSuffix(group, "]") {
		return "", 0, fmt.Errorf("%w: group %q is missing brackets", utils.ErrMalformedInput, group)
	}

	fields := strings.Split(group[1:len(group)-1], "-")
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("%w: group %q must be name-quantity", utils.ErrMalformedInput, group)
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return "", 0, fmt.Errorf("%w: group %q has no product name", utils.ErrMalformedInput, group)
	}

	qty, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || qty <= 0 {
		return "", 0, fmt.Errorf("%w: %q", utils.ErrInvalidQuantity, fields[1])
	}
	return name, qty, nil
}
