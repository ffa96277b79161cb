package postgres

import "strings"

// offset converts a 1-based page into a row offset. Page and limit floors
// match the API defaults so a bad filter never produces a negative offset.
func offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return (page - 1) * limit
}

func lower(s string) string {
	return strings.ToLower(s)
}
