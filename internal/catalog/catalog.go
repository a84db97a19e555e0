// Package catalog holds the static lawyer directory, the practice-area
// taxonomy and the seeded Q&A entries. Nothing here changes at runtime;
// callers must treat returned values as read-only.
package catalog

import (
	"math"
	"sort"
	"strings"
)

var (
	lawyersByID = indexLawyers(lawyers)
	areasByID   = indexAreas(practiceAreas)
)

func indexLawyers(list []Lawyer) map[int]int {
	idx := make(map[int]int, len(list))
	for i, l := range list {
		idx[l.ID] = i
	}
	return idx
}

func indexAreas(list []PracticeArea) map[string]int {
	idx := make(map[string]int, len(list))
	for i, a := range list {
		idx[a.ID] = i
	}
	return idx
}

// Lawyers returns every lawyer in catalog order.
func Lawyers() []Lawyer {
	out := make([]Lawyer, len(lawyers))
	copy(out, lawyers)
	return out
}

func LawyerByID(id int) (Lawyer, bool) {
	i, ok := lawyersByID[id]
	if !ok {
		return Lawyer{}, false
	}
	return lawyers[i], true
}

func PracticeAreas() []PracticeArea {
	out := make([]PracticeArea, len(practiceAreas))
	copy(out, practiceAreas)
	return out
}

func AreaByID(id string) (PracticeArea, bool) {
	i, ok := areasByID[id]
	if !ok {
		return PracticeArea{}, false
	}
	return practiceAreas[i], true
}

// AreaNames maps practice-area ids to display names, skipping unknown ids.
func AreaNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if a, ok := AreaByID(id); ok {
			names = append(names, a.Name)
		}
	}
	return names
}

func Cities() []string {
	return append([]string(nil), cities...)
}

func Languages() []string {
	return append([]string(nil), languages...)
}

func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Featured returns the n highest-rated lawyers; ties keep catalog order.
func Featured(n int) []Lawyer {
	list := Lawyers()
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Rating > list[j].Rating
	})
	if n < 0 {
		n = 0
	}
	if n > len(list) {
		n = len(list)
	}
	return list[:n]
}

func CatalogStats() Stats {
	var s Stats
	for _, l := range lawyers {
		s.TotalLawyers++
		if l.Verified {
			s.VerifiedLawyers++
		}
		s.TotalReviews += l.ReviewCount
	}
	return s
}

// FindByName returns the first lawyer whose name contains needle, ignoring case.
func FindByName(needle string) (Lawyer, bool) {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return Lawyer{}, false
	}
	for _, l := range lawyers {
		if strings.Contains(strings.ToLower(l.Name), needle) {
			return l, true
		}
	}
	return Lawyer{}, false
}

func RatingLabel(rating float64) string {
	switch {
	case rating >= 9:
		return "Exceptional"
	case rating >= 8:
		return "Excellent"
	case rating >= 7:
		return "Very Good"
	case rating >= 6:
		return "Good"
	default:
		return "Average"
	}
}

func Initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

func SummarizeReviews(l Lawyer) ReviewSummary {
	counts := make(map[int]int, 5)
	total := 0
	for _, r := range l.Reviews {
		counts[r.Rating]++
		total += r.Rating
	}

	summary := ReviewSummary{
		Count:        len(l.Reviews),
		Distribution: make([]StarCount, 0, 5),
	}
	if summary.Count > 0 {
		avg := float64(total) / float64(summary.Count)
		summary.Average = math.Round(avg*10) / 10
	}
	for stars := 5; stars >= 1; stars-- {
		summary.Distribution = append(summary.Distribution, StarCount{Stars: stars, Count: counts[stars]})
	}
	return summary
}
