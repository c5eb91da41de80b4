package util

import "strconv"

const DefaultLimit = 50

// Window normalizes a skip/limit pair taken from the query string. A
// non-positive limit falls back to def.
func Window(skip, limit, def int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = def
	}
	return skip, limit
}

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
