package store

import "github.com/pageza/skinroutine/backend/internal/models"

// Matches reports whether p satisfies every present field of f
func (f ProductFilter) Matches(p models.Product) bool {
	if f.SkinTypes != nil && !intersects(p.SkinTypes, f.SkinTypes) {
		return false
	}
	if f.Concerns != nil && !intersects(p.Concerns, f.Concerns) {
		return false
	}
	if f.Category != nil && p.Category != *f.Category {
		return false
	}
	if f.IsHomeRemedy != nil && p.IsHomeRemedy != *f.IsHomeRemedy {
		return false
	}
	return true
}

func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
