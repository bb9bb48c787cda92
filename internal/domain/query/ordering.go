package query

// Ordering selects how a numeric attribute is compared against a value.
type Ordering uint8

const (
	Greater Ordering = iota
	GreaterEqual
	Equal
	LessEqual
	Less
)

var orderingSymbols = [...]string{">", ">=", "=", "<=", "<"}

// Compare reports whether lhs stands in the ordering to rhs.
func (o Ordering) Compare(lhs, rhs int) bool {
	switch o {
	case Greater:
		return lhs > rhs
	case GreaterEqual:
		return lhs >= rhs
	case Equal:
		return lhs == rhs
	case LessEqual:
		return lhs <= rhs
	case Less:
		return lhs < rhs
	}
	return false
}

func (o Ordering) String() string {
	if int(o) < len(orderingSymbols) {
		return orderingSymbols[o]
	}
	return "?"
}
