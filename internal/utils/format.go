package utils

import "strconv"

// FormatMoney renders an amount with thousands separators, e.g. 1234567 -> "1,234,567".
func FormatMoney(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	if len(digits) <= 3 {
		return sign + digits
	}

	var out []byte
	lead := len(digits) % 3
	if lead > 0 {
		out = append(out, digits[:lead]...)
	}
	for i := lead; i < len(digits); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i:i+3]...)
	}
	return sign + string(out)
}
