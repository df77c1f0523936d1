package value

import (
	"math"
	"strconv"
	"strings"
)

// ToNumber implements the to-Number conversion: Null→0,
// Boolean→0/1, Number→itself, String→parsed decimal (with hex/binary/
// octal prefixes and the Infinity/-Infinity/NaN literals), anything
// else→NaN.
func ToNumber(v Value) float64 {
	switch t := v.(type) {
	case Null:
		return 0
	case Boolean:
		if t {
			return 1
		}
		return 0
	case Number:
		return float64(t)
	case Str:
		return parseNumberString(string(t))
	default:
		return math.NaN()
	}
}

func parseNumberString(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return math.NaN()
	}

	switch trimmed {
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	case "NaN":
		return math.NaN()
	}

	neg := false
	rest := trimmed
	if strings.HasPrefix(rest, "+") {
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}

	var n float64
	var err error
	switch {
	case strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X"):
		var i int64
		i, err = strconv.ParseInt(rest[2:], 16, 64)
		n = float64(i)
	case strings.HasPrefix(rest, "0b") || strings.HasPrefix(rest, "0B"):
		var i int64
		i, err = strconv.ParseInt(rest[2:], 2, 64)
		n = float64(i)
	case len(rest) > 1 && rest[0] == '0' && !strings.ContainsAny(rest, ".eE"):
		var i int64
		i, err = strconv.ParseInt(rest, 8, 64)
		n = float64(i)
	default:
		n, err = strconv.ParseFloat(rest, 64)
	}
	if err != nil {
		return math.NaN()
	}
	if neg {
		n = -n
	}
	return n
}

// ParseIntRadix implements the stdlib parseInt contract: parse s as an
// integer in the given radix (2..36). ok is false on a malformed
// literal or an out-of-range radix.
func ParseIntRadix(s string, radix int) (float64, bool) {
	if radix < 2 || radix > 36 {
		return 0, false
	}
	i, err := strconv.ParseInt(strings.TrimSpace(s), radix, 64)
	if err != nil {
		return 0, false
	}
	return float64(i), true
}

// ToStringValue renders v in its display form.
func ToStringValue(v Value) string {
	return Stringify(v)
}

// ToBoolean applies the truthiness rules.
func ToBoolean(v Value) bool {
	return v.Truthy()
}
