// Package subscription holds the closed table of subscription tiers and
// their quota ceilings. Tiers are immutable value objects; two lookups of
// the same name yield equal descriptors (equality by tier name).
package subscription

import (
	"strings"

	"levelshort/internal/apperrors"
	"levelshort/internal/domain/models"
)

// Unlimited marks a ceiling that is not enforced.
const Unlimited = -1

// Tier - an immutable subscription descriptor. All ceiling fields use
// Unlimited for "no ceiling".
type Tier struct {
	// Name: canonical tier name, upper case.
	Name string `json:"name"`
	// MaxLevels: maximum hierarchy depth, excluding the top-level site.
	MaxLevels int `json:"max_levels"`
	// MaxLevelNames..MaxQueryParamValues: maximum distinct values per
	// level for each category.
	MaxLevelNames       int `json:"max_level_names"`
	MaxPathVariables    int `json:"max_path_variables"`
	MaxQueryParamNames  int `json:"max_query_param_names"`
	MaxQueryParamValues int `json:"max_query_param_values"`
	// MaxAdmins, MaxEmployees, HistoryDays: account ceilings outside the
	// encoding core, exposed to the web layer only.
	MaxAdmins    int `json:"max_admins"`
	MaxEmployees int `json:"max_employees"`
	HistoryDays  int `json:"history_days"`
}

// LimitFor returns the per-level ceiling for a value category.
func (t Tier) LimitFor(c models.ValueCategory) int {
	switch c {
	case models.CategoryLevelName:
		return t.MaxLevelNames
	case models.CategoryPathVariable:
		return t.MaxPathVariables
	case models.CategoryQueryParamName:
		return t.MaxQueryParamNames
	case models.CategoryQueryParamValue:
		return t.MaxQueryParamValues
	}
	return Unlimited
}

// Canonical tier names.
const (
	Free         = "FREE"
	Tier1        = "TIER_1"
	TierInfinity = "TIER_INFINITY"
)

var tiers = map[string]Tier{
	Free: {
		Name:                Free,
		MaxLevels:           5,
		MaxLevelNames:       10,
		MaxPathVariables:    10,
		MaxQueryParamNames:  10,
		MaxQueryParamValues: 10,
		MaxAdmins:           1,
		MaxEmployees:        5,
		HistoryDays:         30,
	},
	Tier1: {
		Name:                Tier1,
		MaxLevels:           10,
		MaxLevelNames:       100,
		MaxPathVariables:    100,
		MaxQueryParamNames:  100,
		MaxQueryParamValues: 100,
		MaxAdmins:           5,
		MaxEmployees:        50,
		HistoryDays:         365,
	},
	TierInfinity: {
		Name:                TierInfinity,
		MaxLevels:           Unlimited,
		MaxLevelNames:       Unlimited,
		MaxPathVariables:    Unlimited,
		MaxQueryParamNames:  Unlimited,
		MaxQueryParamValues: Unlimited,
		MaxAdmins:           Unlimited,
		MaxEmployees:        Unlimited,
		HistoryDays:         Unlimited,
	},
}

// GetSubscription looks up a tier by name, case-insensitively.
func GetSubscription(name string) (Tier, error) {
	tier, ok := tiers[strings.ToUpper(name)]
	if !ok {
		return Tier{}, apperrors.New(apperrors.KindNoExistingSubscription, "unknown subscription tier %q", name)
	}
	return tier, nil
}
