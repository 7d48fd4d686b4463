package filter

import "math"

// Share is one slice of a distribution
type Share struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Percent is part/total as a whole percentage; zero when total is zero
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part) * 100 / float64(total))
}

// Distribution counts records per value of a field, in first-seen order
func Distribution(records []Record, field string) []Share {
	labels := Distinct(records, field)
	shares := make([]Share, 0, len(labels))
	total := 0
	for _, l := range labels {
		n := count(records, newSetCriterion(field, []string{l}))
		shares = append(shares, Share{Label: l, Count: n})
		total += n
	}
	return withPercent(shares, total)
}

// BucketDistribution counts records per bucket of a numeric field.
// Records outside every bucket are not counted.
func BucketDistribution(records []Record, field string, buckets []Bucket) []Share {
	shares := make([]Share, 0, len(buckets))
	total := 0
	for _, b := range buckets {
		n := count(records, &rangeCriterion{field: field, ranges: []Range{b.Range}})
		shares = append(shares, Share{Label: b.Label, Count: n})
		total += n
	}
	return withPercent(shares, total)
}

// Shares turns precomputed counts into a distribution
func Shares(labels []string, counts []int) []Share {
	shares := make([]Share, 0, len(labels))
	total := 0
	for i, l := range labels {
		n := 0
		if i < len(counts) {
			n = counts[i]
		}
		shares = append(shares, Share{Label: l, Count: n})
		total += n
	}
	return withPercent(shares, total)
}

func withPercent(shares []Share, total int) []Share {
	for i := range shares {
		shares[i].Percent = Percent(shares[i].Count, total)
	}
	return shares
}

// Average of a numeric field over the records that coerce
func Average(records []Record, field string) float64 {
	sum, n := 0.0, 0
	for _, r := range records {
		if v, ok := asNumber(r[field]); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Round(sum/float64(n)*10) / 10
}
