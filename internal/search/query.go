package search

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query is a parsed search request.
type Query struct {
	Criteria Criteria
	Sort     SortKey
	Page     int
}

// FieldError reports the query parameter that could not be parsed.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func ParseQuery(values url.Values) (Query, error) {
	q := Query{
		Criteria: Criteria{
			Areas:     listParam(values, "area"),
			City:      strings.TrimSpace(values.Get("city")),
			Languages: listParam(values, "language"),
			Gender:    strings.TrimSpace(values.Get("gender")),
		},
		Sort: SortRating,
		Page: 1,
	}

	if raw := strings.TrimSpace(values.Get("minExperience")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Query{}, &FieldError{Field: "minExperience", Reason: "must be a non-negative integer"}
		}
		q.Criteria.MinExperience = n
	}
	if raw := strings.TrimSpace(values.Get("minRating")); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < 0 || f > 10 {
			return Query{}, &FieldError{Field: "minRating", Reason: "must be between 0 and 10"}
		}
		q.Criteria.MinRating = f
	}
	if raw := strings.TrimSpace(values.Get("verified")); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Query{}, &FieldError{Field: "verified", Reason: "must be a boolean"}
		}
		q.Criteria.VerifiedOnly = b
	}
	if raw := strings.TrimSpace(values.Get("sort")); raw != "" {
		key := SortKey(raw)
		if !key.Valid() {
			return Query{}, &FieldError{Field: "sort", Reason: "unknown sort key"}
		}
		q.Sort = key
	}
	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Query{}, &FieldError{Field: "page", Reason: "must be a positive integer"}
		}
		q.Page = n
	}
	return q, nil
}

// listParam accepts both repeated parameters and comma-separated values.
func listParam(values url.Values, key string) []string {
	var out []string
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
