package service

import "time"

// normalizePage clamps page/limit to sane values, applying defaultLimit when
// the caller passed none.
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
