// Package quota decides whether a parsed URL may be admitted into a tenant
// dictionary under the tenant's subscription ceilings. Checks run strictly
// before any mutation: either every value of the URL is admitted or none.
package quota

import (
	"levelshort/internal/apperrors"
	"levelshort/internal/domain/models"
	"levelshort/internal/subscription"
	"levelshort/internal/tenantstore"
)

// CategoryDepth names the hierarchy depth ceiling in violation payloads.
const CategoryDepth = "depth"

// Check verifies the parsed levels against the tier ceilings given the
// tenant's current dictionary. The depth ceiling is checked first, then
// levels are walked outside-in with categories in their fixed order; the
// first violation found is returned.
func Check(store *tenantstore.Store, levels []models.URLLevel, tier subscription.Tier) error {
	depth := len(levels) - 1 // the top-level site is not a stored level
	if tier.MaxLevels != subscription.Unlimited && depth > tier.MaxLevels {
		return apperrors.Violation(CategoryDepth, 0, depth, tier.MaxLevels)
	}

	for i := 1; i < len(levels); i++ {
		for _, category := range models.Categories() {
			limit := tier.LimitFor(category)
			if limit == subscription.Unlimited {
				continue
			}

			projected := store.Count(i, category) + newDistinct(store, &levels[i], i, category)
			if projected > limit {
				return apperrors.Violation(category.String(), i, projected, limit)
			}
		}
	}

	return nil
}

// newDistinct counts the values of the level that are not yet registered,
// deduplicating repeats inside the URL itself.
func newDistinct(store *tenantstore.Store, level *models.URLLevel, idx int, c models.ValueCategory) int {
	seen := make(map[string]struct{})
	for _, value := range level.Values(c) {
		if store.Has(idx, c, value) {
			continue
		}
		seen[value] = struct{}{}
	}
	return len(seen)
}
