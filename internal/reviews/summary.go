package reviews

import "math"

// Summarize computes the average and the 5-to-1 distribution. Percentages are
// rounded independently so they need not add up to 100.
func Summarize(list []Review) Summary {
	counts := [6]int{}
	total := 0
	for _, r := range list {
		if r.Rating < 1 || r.Rating > 5 {
			continue
		}
		counts[r.Rating]++
		total += r.Rating
	}

	s := Summary{Count: len(list), Distribution: make([]StarCount, 0, 5)}
	if s.Count > 0 {
		s.Average = float64(total) / float64(s.Count)
	}
	for star := 5; star >= 1; star-- {
		row := StarCount{Star: star, Count: counts[star]}
		if s.Count > 0 {
			row.Percentage = int(math.Floor(float64(counts[star])*100/float64(s.Count) + 0.5))
		}
		s.Distribution = append(s.Distribution, row)
	}
	return s
}
