package calculation

import (
	"github.com/shopspring/decimal"
)

// HedgeQuote is the deterministic economics of one recurring-expense hedge:
// how many shares the ratio implies, what they cost, and the four net
// outcome totals for a single period. Outcomes are signed net amounts;
// expenses make them negative.
type HedgeQuote struct {
	Shares  decimal.Decimal `json:"shares"`
	Premium decimal.Decimal `json:"premium"`

	HedgedIfEvent     decimal.Decimal `json:"hedged_if_event"`
	HedgedIfNoEvent   decimal.Decimal `json:"hedged_if_no_event"`
	UnhedgedIfEvent   decimal.Decimal `json:"unhedged_if_event"`
	UnhedgedIfNoEvent decimal.Decimal `json:"unhedged_if_no_event"`
}

// ConsolationQuote is the deterministic economics of a single-event
// consolation hedge. Unlike the recurring-expense mode, the unhedged
// outcome is the same whichever way the event resolves: the entry cost is
// sunk either way.
type ConsolationQuote struct {
	Shares  decimal.Decimal `json:"shares"`
	Premium decimal.Decimal `json:"premium"`

	HedgedIfAdverse     decimal.Decimal `json:"hedged_if_adverse"`
	HedgedIfFavorable   decimal.Decimal `json:"hedged_if_favorable"`
	UnhedgedIfAdverse   decimal.Decimal `json:"unhedged_if_adverse"`
	UnhedgedIfFavorable decimal.Decimal `json:"unhedged_if_favorable"`
}

// CalculateHedging computes the recurring-expense hedge for one period.
// A winning share redeems for 1-feeRate, so covering hedgeRatio of the
// additional exposure (adverse-baseline) takes exposure*ratio/(1-feeRate)
// shares at price each.
//
// The function is deliberately permissive: inverted inputs (adverse below
// baseline) yield negative share counts, and extreme prices are not
// clamped. Input validation belongs to the caller's boundary layer.
func CalculateHedging(baseline, adverse, hedgeRatio, price, feeRate decimal.Decimal) HedgeQuote {
	payout := decimal.NewFromInt(1).Sub(feeRate)
	additionalExposure := adverse.Sub(baseline)

	shares := additionalExposure.Mul(hedgeRatio).Div(payout)
	premium := shares.Mul(price)

	return HedgeQuote{
		Shares:  shares,
		Premium: premium,
		// Expense paid, premium sunk, winning shares redeemed net of fee.
		HedgedIfEvent: adverse.Neg().Sub(premium).Add(shares.Mul(payout)),
		// Expense paid, premium sunk, shares expire worthless.
		HedgedIfNoEvent:   baseline.Neg().Sub(premium),
		UnhedgedIfEvent:   adverse.Neg(),
		UnhedgedIfNoEvent: baseline.Neg(),
	}
}

// CalculateConsolationHedging computes the single-event consolation hedge:
// hedgeRatio scales the desired consolation, and the share count is sized
// so the net-of-fee redemption delivers exactly that scaled amount.
func CalculateConsolationHedging(entryCost, consolation, hedgeRatio, price, feeRate decimal.Decimal) ConsolationQuote {
	payout := decimal.NewFromInt(1).Sub(feeRate)
	target := consolation.Mul(hedgeRatio)

	shares := target.Div(payout)
	premium := shares.Mul(price)

	return ConsolationQuote{
		Shares:  shares,
		Premium: premium,
		// Entry cost sunk, consolation received net of premium.
		HedgedIfAdverse: entryCost.Neg().Add(shares.Mul(payout)).Sub(premium),
		// Entry cost and premium sunk, no consolation.
		HedgedIfFavorable:   entryCost.Neg().Sub(premium),
		UnhedgedIfAdverse:   entryCost.Neg(),
		UnhedgedIfFavorable: entryCost.Neg(),
	}
}
