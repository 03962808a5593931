package models

import "time"

// Promotion is a buy-N-get-M rule active over an inclusive date range.
type Promotion struct {
	Name      string
	Buy       int
	Get       int
	StartDate time.Time
	EndDate   time.Time
}

// ActiveOn reports whether the promotion runs on the calendar date of t.
func (p Promotion) ActiveOn(t time.Time) bool {
	day := truncateToDate(t)
	return !day.Before(truncateToDate(p.StartDate)) && !day.After(truncateToDate(p.EndDate))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PromotionKind tags the three promotion states an order can resolve to.
type PromotionKind int

const (
	// PromotionNone means the product has no linked promotion.
	PromotionNone PromotionKind = iota
	// PromotionNotInProgress means a promotion exists but today is outside
	// its active range.
	PromotionNotInProgress
	// PromotionInProgress means the promotion is active; Buy and Get are set.
	PromotionInProgress
)

// PromotionState is the resolved promotion of one order line. Buy and Get
// are meaningful only when Kind is PromotionInProgress.
type PromotionState struct {
	Kind PromotionKind
	Buy  int
	Get  int
}

// NoPromotion returns the state for a product without a linked promotion.
func NoPromotion() PromotionState {
	return PromotionState{Kind: PromotionNone}
}

// NotInProgress returns the state for a linked but currently inactive promotion.
func NotInProgress() PromotionState {
	return PromotionState{Kind: PromotionNotInProgress}
}

// InProgress returns the state for an active promotion with its parameters.
func InProgress(buy, get int) PromotionState {
	return PromotionState{Kind: PromotionInProgress, Buy: buy, Get: get}
}

// Active reports whether the promotion applies to the current sale.
func (s PromotionState) Active() bool {
	return s.Kind == PromotionInProgress
}
