package item

import "github.com/allocbot/allocbot-backend/internal/domain"

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies paging defaults and clamps values.
func normalize(f *domain.ItemFilter) {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
