package util

import "strconv"

// GoThousands formats n with '_' as the thousands separator, e.g. 1234567
// becomes "1_234_567". Used in log lines the way the teacher formats token
// amounts.
func GoThousands[T int | int64 | uint64 | uint32](n T) string {
	s := strconv.FormatInt(int64(n), 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '_')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// GoTh is the short alias used at most call sites.
func GoTh[T int | int64 | uint64 | uint32](n T) string {
	return GoThousands(n)
}

// SortKeys returns the keys of m sorted with less.
func SortKeys[K comparable, V any](m map[K]V, less func(a, b K) bool) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && less(keys[j], keys[j-1]); j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}
