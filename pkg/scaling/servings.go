package scaling

// ParseServings normalizes a raw serving descriptor into a usable number.
// Descriptors are human-authored: a plain number, or free text such as
// "4 people" or "4 to 6". Numeric inputs pass through untouched; strings
// yield the first contiguous run of digits; anything else defaults to 1.
// Ranges like "4 to 6" therefore resolve to their first number.
//
// ParseServings never fails. It is a best-effort normalizer, not a
// validator.
func ParseServings(value interface{}) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	case string:
		if n, ok := firstNumber(v); ok {
			return float64(n)
		}
	}
	return 1
}

// firstNumber scans s for the first contiguous run of digits and parses
// it as an integer.
func firstNumber(s string) (int, bool) {
	n := 0
	found := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			found = true
			continue
		}
		if found {
			break
		}
	}
	return n, found
}
