package shop

import "github.com/lpautet/mud-r-sub003/internal/model"

// Classification — решение магазина по предлагаемому предмету.
type Classification int

const (
	// Worthless — предмет с нулевой базовой ценой, не торгуется никогда.
	Worthless Classification = iota
	// Refused — магазин таким не торгует.
	Refused
	// Depleted — исчерпанный wand/staff, скупке не подлежит.
	Depleted
	// Accepted — магазин готов купить предмет.
	Accepted
)

// String returns a short name for the classification.
func (c Classification) String() string {
	switch c {
	case Worthless:
		return "Worthless"
	case Refused:
		return "Refused"
	case Depleted:
		return "Depleted"
	case Accepted:
		return "Accepted"
	default:
		return "Unknown"
	}
}

// Classify decides whether the shop trades in the item. Accept rules are
// scanned in order: a rule whose type matches the item accepts it outright
// (unless it is a used-up wand or staff); a rule of another type accepts
// only through a non-empty keyword expression that evaluates true.
func Classify(it *model.Item, s *Shop) Classification {
	if it.Cost < 1 {
		return Worthless
	}
	if it.HasFlag(model.FlagNoSell) {
		return Refused
	}
	for _, rule := range s.Rules {
		if rule.Type == it.Type {
			if it.IsDepletable() && it.Charges() == 0 {
				return Depleted
			}
			return Accepted
		}
		if rule.Keywords != "" && Evaluate(it, rule.Keywords) {
			return Accepted
		}
	}
	return Refused
}
