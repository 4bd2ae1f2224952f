package booking

import "github.com/shopspring/decimal"

type PriceCalculator interface {
	Calculate(servicePrice decimal.Decimal) (Pricing, error)
}

// DepositPriceCalculator charges the service's base price and takes a
// percentage of it as deposit. Discounts and credits belong to the ledger
// and are always zero here.
type DepositPriceCalculator struct {
	DepositPercent decimal.Decimal
}

func NewDepositPriceCalculator(depositPercent float64) *DepositPriceCalculator {
	pct := decimal.NewFromFloat(depositPercent)
	if pct.IsNegative() {
		pct = decimal.Zero
	}
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		pct = decimal.NewFromInt(100)
	}
	return &DepositPriceCalculator{DepositPercent: pct}
}

func (pc *DepositPriceCalculator) Calculate(servicePrice decimal.Decimal) (Pricing, error) {
	base := NewMoney(servicePrice)
	if base.IsNegative() {
		return Pricing{}, ErrNegativePrice
	}

	discount := ZeroMoney()
	credits := ZeroMoney()
	total := base.Sub(discount).Sub(credits)

	return Pricing{
		ServicePrice:   base,
		Deposit:        total.Percent(pc.DepositPercent),
		Discount:       discount,
		CreditsApplied: credits,
		Total:          total,
	}, nil
}
