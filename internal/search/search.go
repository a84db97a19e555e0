// Package search filters, orders and pages the lawyer catalog. Everything
// here is pure: inputs are never modified and equal inputs give equal output.
package search

import (
	"sort"
	"strings"

	"courtvista-backend/internal/catalog"
)

const PageSize = 6

type SortKey string

const (
	SortRating     SortKey = "rating"
	SortExperience SortKey = "experience"
	SortReviews    SortKey = "reviews"
	SortFeesLow    SortKey = "fees_low"
	SortFeesHigh   SortKey = "fees_high"
)

var SortKeys = []SortKey{SortRating, SortExperience, SortReviews, SortFeesLow, SortFeesHigh}

func (k SortKey) Valid() bool {
	for _, known := range SortKeys {
		if k == known {
			return true
		}
	}
	return false
}

// Criteria is a conjunction of predicates. Zero values are inactive.
type Criteria struct {
	Areas         []string `json:"areas,omitempty"`
	City          string   `json:"city,omitempty"`
	MinExperience int      `json:"minExperience,omitempty"`
	MinRating     float64  `json:"minRating,omitempty"`
	Languages     []string `json:"languages,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	VerifiedOnly  bool     `json:"verifiedOnly,omitempty"`
}

func (c Criteria) Matches(l catalog.Lawyer) bool {
	if len(c.Areas) > 0 && !anyIn(l.Specializations, c.Areas) {
		return false
	}
	if c.City != "" && !strings.Contains(strings.ToLower(l.City), strings.ToLower(c.City)) {
		return false
	}
	if c.MinExperience > 0 && l.Experience < c.MinExperience {
		return false
	}
	if c.MinRating > 0 && l.Rating < c.MinRating {
		return false
	}
	if len(c.Languages) > 0 && !anyIn(l.Languages, c.Languages) {
		return false
	}
	if c.Gender != "" && l.Gender != c.Gender {
		return false
	}
	if c.VerifiedOnly && !l.Verified {
		return false
	}
	return true
}

func anyIn(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// Filter keeps the lawyers matching c, in input order.
func Filter(lawyers []catalog.Lawyer, c Criteria) []catalog.Lawyer {
	out := make([]catalog.Lawyer, 0, len(lawyers))
	for _, l := range lawyers {
		if c.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

// Sort returns a stably ordered copy. Unknown keys keep input order.
func Sort(lawyers []catalog.Lawyer, key SortKey) []catalog.Lawyer {
	out := make([]catalog.Lawyer, len(lawyers))
	copy(out, lawyers)

	var less func(a, b catalog.Lawyer) bool
	switch key {
	case SortRating:
		less = func(a, b catalog.Lawyer) bool { return a.Rating > b.Rating }
	case SortExperience:
		less = func(a, b catalog.Lawyer) bool { return a.Experience > b.Experience }
	case SortReviews:
		less = func(a, b catalog.Lawyer) bool { return a.ReviewCount > b.ReviewCount }
	case SortFeesLow:
		less = func(a, b catalog.Lawyer) bool { return a.ConsultationFee < b.ConsultationFee }
	case SortFeesHigh:
		less = func(a, b catalog.Lawyer) bool { return a.ConsultationFee > b.ConsultationFee }
	default:
		return out
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// Paginate returns page (1-based) of list. Out-of-range pages are empty.
func Paginate(list []catalog.Lawyer, page int) []catalog.Lawyer {
	if page < 1 || page > TotalPages(len(list)) {
		return []catalog.Lawyer{}
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(list) {
		end = len(list)
	}
	out := make([]catalog.Lawyer, end-start)
	copy(out, list[start:end])
	return out
}

type Result struct {
	Items      []catalog.Lawyer `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
	Sort       SortKey          `json:"sort"`
}

func Run(lawyers []catalog.Lawyer, c Criteria, key SortKey, page int) Result {
	ordered := Sort(Filter(lawyers, c), key)
	return Result{
		Items:      Paginate(ordered, page),
		Page:       page,
		PageSize:   PageSize,
		Total:      len(ordered),
		TotalPages: TotalPages(len(ordered)),
		Sort:       key,
	}
}
