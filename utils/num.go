package utils

import "strconv"

// ParseNonNegativeInt parses a plain decimal token. Signs, spaces and
// anything overflowing bitSize are rejected, so "+5", " 5" and
// "99999999999" all fail the way an unknown token does.
func ParseNonNegativeInt(token string, bitSize int) (int64, bool) {
	if token == "" {
		return 0, false
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	value, err := strconv.ParseInt(token, 10, bitSize)
	if err != nil {
		return 0, false
	}
	return value, true
}
