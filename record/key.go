package record

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// Key identifies one row of an Items collection.
//
// Keys are compared after normalization: every integer width, integral
// floats, booleans and decimal integer strings ("10", "-3") collapse to int,
// other strings stay strings and nil becomes the empty string. This lets
// rows keyed by database ids be addressed as Get(10) or Get("10").
type Key = any

// NormalizeKey returns the canonical form of k.
func NormalizeKey(k Key) Key {
	switch v := k.(type) {
	case nil:
		return ""
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return uintKey(uint64(v))
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return uintKey(v)
	case float32:
		return floatKey(float64(v))
	case float64:
		return floatKey(v)
	case bool:
		if v {
			return 1
		}

		return 0
	case string:
		if n, ok := integerString(v); ok {
			return n
		}

		return v
	default:
		return fmt.Sprint(v)
	}
}

func uintKey(v uint64) Key {
	if v > math.MaxInt {
		return strconv.FormatUint(v, 10)
	}

	return int(v)
}

func floatKey(v float64) Key {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return int(math.Trunc(v))
}

// integerString reports whether s is a canonical decimal integer:
// no sign on zero, no leading zeros, no plus sign.
func integerString(s string) (int, bool) {
	if s == "" || s == "-" {
		return 0, false
	}

	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}

	if digits[0] == '0' && (len(digits) > 1 || s[0] == '-') {
		return 0, false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

// CompareKeys orders normalized keys: integers first in numeric order,
// then strings lexically.
func CompareKeys(a, b Key) int {
	a, b = NormalizeKey(a), NormalizeKey(b)

	ai, aInt := a.(int)
	bi, bInt := b.(int)

	switch {
	case aInt && bInt:
		return cmp.Compare(ai, bi)
	case aInt:
		return -1
	case bInt:
		return 1
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}
