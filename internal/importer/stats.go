package importer

import (
	"math"
	"sort"
)

// Stats summarizes one import run.
type Stats struct {
	// Notes is the number of note files found.
	Notes int `json:"notes"`
	// Imported is the number of notes that produced a new deck.
	Imported int `json:"imported"`
	// Skipped is the number of notes whose deck was already stored.
	Skipped int `json:"skipped"`
	// Failed is the number of notes that could not be read or generated.
	Failed int `json:"failed"`
	// Cards describes cards per imported note.
	Cards CardStats `json:"cards"`
}

// CardStats contains statistics about card counts per deck.
type CardStats struct {
	Total int     `json:"total"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Mean  float64 `json:"mean"`
	P95   int     `json:"p95"`
}

// computeCardStats computes total, min, max, mean, and p95 from card counts.
func computeCardStats(counts []int) CardStats {
	if len(counts) == 0 {
		return CardStats{}
	}

	// Sort for percentile calculation
	sorted := make([]int, len(counts))
	copy(sorted, counts)
	sort.Ints(sorted)

	sum := 0
	for _, c := range counts {
		sum += c
	}
	mean := float64(sum) / float64(len(counts))

	p95Index := int(math.Ceil(float64(len(sorted))*0.95)) - 1
	if p95Index < 0 {
		p95Index = 0
	}

	return CardStats{
		Total: sum,
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Mean:  math.Round(mean*100) / 100, // Round to 2 decimal places
		P95:   sorted[p95Index],
	}
}
