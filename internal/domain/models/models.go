// Package models contains the domain structures of the leveled URL shortener:
// parsed URL levels, value categories and the per-tenant code dictionaries.
package models

import "encoding/json"

// ValueCategory identifies which dictionary of a level a value belongs to.
type ValueCategory int

const (
	// CategoryLevelName: purely alphabetic path segment.
	CategoryLevelName ValueCategory = iota
	// CategoryPathVariable: path segment containing non-alphabetic characters.
	CategoryPathVariable
	// CategoryQueryParamName: name part of a query parameter.
	CategoryQueryParamName
	// CategoryQueryParamValue: value part of a query parameter.
	CategoryQueryParamValue
)

// Categories returns all value categories in their fixed evaluation order.
func Categories() []ValueCategory {
	return []ValueCategory{
		CategoryLevelName,
		CategoryPathVariable,
		CategoryQueryParamName,
		CategoryQueryParamValue,
	}
}

// String returns the wire name of the category.
func (c ValueCategory) String() string {
	switch c {
	case CategoryLevelName:
		return "levelName"
	case CategoryPathVariable:
		return "pathVariable"
	case CategoryQueryParamName:
		return "queryParamName"
	case CategoryQueryParamValue:
		return "queryParamValue"
	}
	return "unknown"
}

// ParseCategory converts a wire name back into a ValueCategory.
func ParseCategory(s string) (ValueCategory, bool) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// URLLevel - one level of a parsed URL. For the top level only LevelName is
// set (the site itself). For deeper levels exactly one of LevelName or
// PathVariable is non-empty. QueryParamNames and QueryParamValues are
// parallel slices of equal length.
type URLLevel struct {
	LevelName        string   `json:"level_name,omitempty"`
	PathVariable     string   `json:"path_variable,omitempty"`
	QueryParamNames  []string `json:"query_param_names,omitempty"`
	QueryParamValues []string `json:"query_param_values,omitempty"`
}

// Values returns the natural values this level contributes to a category.
func (l *URLLevel) Values(c ValueCategory) []string {
	switch c {
	case CategoryLevelName:
		if l.LevelName != "" {
			return []string{l.LevelName}
		}
	case CategoryPathVariable:
		if l.PathVariable != "" {
			return []string{l.PathVariable}
		}
	case CategoryQueryParamName:
		return l.QueryParamNames
	case CategoryQueryParamValue:
		return l.QueryParamValues
	}
	return nil
}

// CodeTable - a forward map (natural value -> code) and its inverse
// (code -> natural value). Both are always mutated together.
type CodeTable struct {
	Forward map[string]string `json:"forward"`
	Inverse map[string]string `json:"inverse"`
}

// NewCodeTable creates an empty code table.
func NewCodeTable() CodeTable {
	return CodeTable{
		Forward: make(map[string]string),
		Inverse: make(map[string]string),
	}
}

// LevelDictionary - the four code tables of one hierarchy level.
type LevelDictionary struct {
	LevelName       CodeTable `json:"levelName"`
	PathVariable    CodeTable `json:"pathVariable"`
	QueryParamName  CodeTable `json:"queryParamName"`
	QueryParamValue CodeTable `json:"queryParamValue"`
}

// NewLevelDictionary creates a dictionary with four empty code tables.
func NewLevelDictionary() *LevelDictionary {
	return &LevelDictionary{
		LevelName:       NewCodeTable(),
		PathVariable:    NewCodeTable(),
		QueryParamName:  NewCodeTable(),
		QueryParamValue: NewCodeTable(),
	}
}

// Table returns the code table of the given category.
func (d *LevelDictionary) Table(c ValueCategory) *CodeTable {
	switch c {
	case CategoryLevelName:
		return &d.LevelName
	case CategoryPathVariable:
		return &d.PathVariable
	case CategoryQueryParamName:
		return &d.QueryParamName
	case CategoryQueryParamValue:
		return &d.QueryParamValue
	}
	return nil
}

// TenantRecord - the persisted state of one tenant: its identity, the
// site hash assigned on first URL registration, and one LevelDictionary
// per populated hierarchy level (index 0 = level 1; the top-level site
// itself is never stored here).
type TenantRecord struct {
	TenantID string             `json:"tenantId"`
	SiteHash string             `json:"siteHash,omitempty"`
	Site     string             `json:"site"`
	Tier     string             `json:"tier"`
	Levels   []*LevelDictionary `json:"levels"`
}

// Clone returns a deep copy of the record so repository callers can mutate
// it without aliasing the stored state.
func (r *TenantRecord) Clone() *TenantRecord {
	b, err := json.Marshal(r)
	if err != nil {
		return nil
	}
	cp := &TenantRecord{}
	if err := json.Unmarshal(b, cp); err != nil {
		return nil
	}
	return cp
}
