// Package urlparse validates URL strings and splits them into the ordered
// sequence of hierarchy levels consumed by the encoding core.
package urlparse

import (
	"regexp"
	"strings"

	"levelshort/internal/apperrors"
	"levelshort/internal/domain/models"
)

// urlPattern accepts http(s) URLs with an ASCII host (TLD of at least two
// letters), non-empty path segments and an optional trailing query string.
// Spaces are rejected everywhere.
var urlPattern = regexp.MustCompile(`^https?://[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}(/[^/?\s]+)*(\?[^\s]+)?$`)

var alphabetic = regexp.MustCompile(`^[A-Za-z]+$`)

// Validate checks the syntactic shape of a raw URL before parsing.
func Validate(raw string) error {
	for i := 0; i < len(raw); i++ {
		if raw[i] > 127 {
			return apperrors.New(apperrors.KindInvalidURL, "non-ASCII character in URL %q", raw)
		}
	}
	if !urlPattern.MatchString(raw) {
		return apperrors.New(apperrors.KindInvalidURL, "malformed URL %q", raw)
	}
	return nil
}

// Parse splits a validated URL into its levels. The result is never empty:
// the first element is always the top-level site, carrying only LevelName.
// A purely alphabetic segment becomes a level name, anything else a path
// variable; query parameters are attached to the level of their segment in
// their original order.
func Parse(raw string) ([]models.URLLevel, error) {
	rest := strings.TrimPrefix(raw, "https://")
	if rest == raw {
		rest = strings.TrimPrefix(raw, "http://")
	}
	if rest == raw || rest == "" {
		return nil, apperrors.New(apperrors.KindInvalidURL, "missing scheme in %q", raw)
	}

	segments := strings.Split(rest, "/")
	levels := make([]models.URLLevel, 0, len(segments))
	levels = append(levels, models.URLLevel{LevelName: segments[0]})

	for _, seg := range segments[1:] {
		level, err := parseSegment(seg)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	return levels, nil
}

func parseSegment(seg string) (models.URLLevel, error) {
	head, query, hasQuery := strings.Cut(seg, "?")
	if head == "" {
		return models.URLLevel{}, apperrors.New(apperrors.KindInvalidURL, "empty path segment")
	}

	var level models.URLLevel
	if alphabetic.MatchString(head) {
		level.LevelName = head
	} else {
		level.PathVariable = head
	}

	if !hasQuery {
		return level, nil
	}

	for _, pair := range strings.Split(query, "&") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" || value == "" {
			return models.URLLevel{}, apperrors.New(apperrors.KindInvalidURL, "malformed query pair %q", pair)
		}
		level.QueryParamNames = append(level.QueryParamNames, name)
		level.QueryParamValues = append(level.QueryParamValues, value)
	}

	return level, nil
}
