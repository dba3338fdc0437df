package service

import "github.com/shopspring/decimal"

// destinationCountry keys the VAT rate lookup. Every marketplace export
// handled here ships domestically.
const destinationCountry = "TH"

// ExtractVat splits a VAT-inclusive amount into the ex-VAT base and the
// VAT portion, both rounded half-up to 2 decimal places. rate is a
// percentage, e.g. 7 for 7%.
func ExtractVat(grossAmount, rate float64) (priceExVat, vatAmount float64) {
	gross := decimal.NewFromFloat(grossAmount)
	divisor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(rate).Div(decimal.NewFromInt(100)))

	base := gross.Div(divisor).Round(2)
	vat := gross.Sub(base).Round(2)

	priceExVat, _ = base.Float64()
	vatAmount, _ = vat.Float64()
	return priceExVat, vatAmount
}

// Round2 rounds half-up to 2 decimal places using exact decimal math.
func Round2(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}
