package models

// ReceiptLine is one rendered line of the final receipt.
type ReceiptLine struct {
	Name     string
	Quantity int
	Amount   int
}

// Receipt is the final computed receipt for one checkout. Quantities on the
// product lines include gifts; the value given away is subtracted back out
// through EventDiscount.
type Receipt struct {
	ID                 string
	Lines              []ReceiptLine
	Gifts              []QuantityItem
	Unclaimed          []string
	TotalQuantity      int
	TotalPrice         int
	EventDiscount      int
	MembershipDiscount int
	FinalPrice         int
}
