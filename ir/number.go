package ir

import (
	"math/big"
	"regexp"
	"strings"
)

var decimalRE = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// floatPrec is the precision of decimals whose exponent is too large for
// an exact rational.
const floatPrec = 512

// Decimal is the value of a decimal number. It is exact unless the
// exponent is too large for big.Rat, in which case it is a big.Float.
type Decimal struct {
	rat  *big.Rat
	flt  *big.Float
	text string
}

// ParseNumber reads a decimal number, optionally with an exponent.
// Fractions, hex and special float values are not numbers here.
func ParseNumber(text string) (Decimal, bool) {
	text = strings.TrimSpace(text)
	if !decimalRE.MatchString(text) {
		return Decimal{}, false
	}
	if r, ok := new(big.Rat).SetString(text); ok {
		return Decimal{rat: r}, true
	}
	f, _, err := big.ParseFloat(text, 10, floatPrec, big.ToNearestEven)
	if err != nil {
		return Decimal{}, false
	}
	return Decimal{flt: f, text: text}, true
}

// Exact reports whether d holds its exact value.
func (d Decimal) Exact() bool {
	return d.rat != nil
}

func (d Decimal) float() *big.Float {
	if d.flt != nil {
		return d.flt
	}
	return new(big.Float).SetPrec(floatPrec).SetRat(d.rat)
}

// Cmp compares d and o by value.
func (d Decimal) Cmp(o Decimal) int {
	if d.rat != nil && o.rat != nil {
		return d.rat.Cmp(o.rat)
	}
	return d.float().Cmp(o.float())
}

func (d Decimal) String() string {
	if d.rat != nil {
		return d.rat.RatString()
	}
	return d.text
}

// Decimal returns the value of y when y is a number or a string holding
// one.
func (y *Node) Decimal() (Decimal, bool) {
	switch y.Type {
	case NumberType, StringType:
		return ParseNumber(y.Text())
	default:
		return Decimal{}, false
	}
}
