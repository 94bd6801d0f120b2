package domain

// Rate is one tier of the track's rate card.
type Rate struct {
	Option          int64
	Label           string
	BasePrice       int64
	DurationMinutes int64
	Laps            int64
}

// BasePriceMoney returns the base price as Money.
func (r Rate) BasePriceMoney() *Money {
	return Pesos(r.BasePrice)
}

var rateCard = []Rate{
	{Option: 1, Label: "Basic", BasePrice: 15000, DurationMinutes: 30, Laps: 10},
	{Option: 2, Label: "Standard", BasePrice: 20000, DurationMinutes: 35, Laps: 15},
	{Option: 3, Label: "Premium", BasePrice: 25000, DurationMinutes: 40, Laps: 20},
}

// ResolveRate maps a fee option to its tier.
func ResolveRate(option int64) (Rate, error) {
	for _, r := range rateCard {
		if r.Option == option {
			return r, nil
		}
	}
	return Rate{}, ErrInvalidFeeOption
}

// Rates lists the rate card ordered by option.
func Rates() []Rate {
	out := make([]Rate, len(rateCard))
	copy(out, rateCard)
	return out
}
