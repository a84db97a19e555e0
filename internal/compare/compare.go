package compare

import (
	"errors"
	"fmt"

	"courtvista-backend/internal/catalog"
)

const MaxLawyers = 3

var ErrCompareLimit = fmt.Errorf("you can compare up to %d lawyers at a time", MaxLawyers)

var ErrUnknownLawyer = errors.New("lawyer not found")

// Toggle removes id when present and appends it otherwise.
// The input slice is never modified.
func Toggle(ids []int, id int) ([]int, error) {
	if contains(ids, id) {
		return Remove(ids, id), nil
	}
	if len(ids) >= MaxLawyers {
		return append([]int(nil), ids...), ErrCompareLimit
	}
	if _, ok := catalog.LawyerByID(id); !ok {
		return append([]int(nil), ids...), ErrUnknownLawyer
	}
	out := make([]int, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, id), nil
}

func Remove(ids []int, id int) []int {
	out := make([]int, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

func contains(ids []int, id int) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

type Column struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Initials        string   `json:"initials"`
	Rating          float64  `json:"rating"`
	RatingLabel     string   `json:"ratingLabel"`
	Experience      int      `json:"experience"`
	Specializations []string `json:"specializations"`
	Jurisdiction    string   `json:"jurisdiction"`
	FeesRange       string   `json:"feesRange"`
	ReviewCount     int      `json:"reviewCount"`
	Languages       []string `json:"languages"`
	Verified        bool     `json:"verified"`
	Education       string   `json:"education"`
	ProfilePath     string   `json:"profilePath"`
	BookPath        string   `json:"bookPath"`
}

// Columns resolves ids against the catalog. Unknown and repeated ids are dropped
// and at most MaxLawyers columns are returned.
func Columns(ids []int) []Column {
	cols := make([]Column, 0, MaxLawyers)
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if len(cols) == MaxLawyers {
			break
		}
		if seen[id] {
			continue
		}
		l, ok := catalog.LawyerByID(id)
		if !ok {
			continue
		}
		seen[id] = true
		cols = append(cols, Column{
			ID:              l.ID,
			Name:            l.Name,
			Initials:        catalog.Initials(l.Name),
			Rating:          l.Rating,
			RatingLabel:     catalog.RatingLabel(l.Rating),
			Experience:      l.Experience,
			Specializations: catalog.AreaNames(l.Specializations),
			Jurisdiction:    l.Jurisdiction,
			FeesRange:       l.FeesRange,
			ReviewCount:     l.ReviewCount,
			Languages:       l.Languages,
			Verified:        l.Verified,
			Education:       l.Education,
			ProfilePath:     fmt.Sprintf("/lawyer/%d", l.ID),
			BookPath:        fmt.Sprintf("/book/%d", l.ID),
		})
	}
	return cols
}
