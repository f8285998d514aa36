// Package entity contains the core business objects of the storefront.
package entity

import (
	"math"
	"strconv"
)

const (
	// MinRating and MaxRating bound the star scale used by reviews.
	MinRating = 1
	MaxRating = 5
)

// RatingSummary is the denormalized review aggregate stored on a product.
type RatingSummary struct {
	AvgRating       float64        `json:"avgRating"`       // Mean of all counted ratings, 0 when RatingCount is 0.
	RatingCount     int            `json:"ratingCount"`     // Number of counted reviews.
	RatingBreakdown map[string]int `json:"ratingBreakdown"` // Star ("1".."5") to count.
}

// EmptyRatingSummary returns the summary of a product nobody has reviewed yet.
func EmptyRatingSummary() RatingSummary {
	return RatingSummary{
		RatingBreakdown: emptyBreakdown(),
	}
}

// Normalize fills in whatever a partially written summary is missing so that
// callers can treat it exactly like EmptyRatingSummary plus data.
func (s RatingSummary) Normalize() RatingSummary {
	breakdown := emptyBreakdown()
	for star, count := range s.RatingBreakdown {
		if _, ok := breakdown[star]; ok {
			breakdown[star] = count
		}
	}

	out := RatingSummary{
		AvgRating:       s.AvgRating,
		RatingCount:     s.RatingCount,
		RatingBreakdown: breakdown,
	}
	if out.RatingCount <= 0 {
		out.RatingCount = 0
		out.AvgRating = 0
		out.RatingBreakdown = emptyBreakdown()
	}

	return out
}

// HasReviews reports whether the average is meaningful to display.
func (s RatingSummary) HasReviews() bool {
	return s.RatingCount > 0
}

// Add returns the summary after counting one more rating.
// avg' = (avg*count + rating) / (count+1)
func (s RatingSummary) Add(rating int) RatingSummary {
	next := s.Normalize()
	newCount := next.RatingCount + 1
	next.AvgRating = (next.AvgRating*float64(next.RatingCount) + float64(rating)) / float64(newCount)
	next.RatingCount = newCount
	next.RatingBreakdown[StarKey(rating)]++

	return next
}

// Replace returns the summary after swapping a previously counted rating for a
// new one. The count does not change. When the old rating has no bucket to
// come out of it was never counted, and the new one is added instead.
func (s RatingSummary) Replace(oldRating, newRating int) RatingSummary {
	next := s.Normalize()
	oldKey := StarKey(oldRating)
	if next.RatingCount == 0 || next.RatingBreakdown[oldKey] == 0 {
		return next.Add(newRating)
	}

	total := next.AvgRating*float64(next.RatingCount) - float64(oldRating) + float64(newRating)
	next.AvgRating = total / float64(next.RatingCount)
	next.RatingBreakdown[oldKey]--
	next.RatingBreakdown[StarKey(newRating)]++

	return next
}

// SummarizeRatings builds a summary from scratch out of stored ratings.
// Ratings off the star scale are ignored.
func SummarizeRatings(ratings []int) RatingSummary {
	summary := EmptyRatingSummary()
	for _, rating := range ratings {
		if ValidRating(rating) {
			summary = summary.Add(rating)
		}
	}

	return summary
}

// Matches reports whether two summaries agree on count and breakdown and
// their averages differ by less than float noise.
func (s RatingSummary) Matches(other RatingSummary) bool {
	a, b := s.Normalize(), other.Normalize()
	if a.RatingCount != b.RatingCount {
		return false
	}
	if math.Abs(a.AvgRating-b.AvgRating) > 1e-9 {
		return false
	}
	for star, count := range a.RatingBreakdown {
		if b.RatingBreakdown[star] != count {
			return false
		}
	}

	return true
}

// BreakdownTotal is the sum of all star buckets.
func (s RatingSummary) BreakdownTotal() int {
	total := 0
	for _, count := range s.RatingBreakdown {
		total += count
	}

	return total
}

// RoundedAvg rounds the average to one decimal for display.
func (s RatingSummary) RoundedAvg() float64 {
	return math.Round(s.AvgRating*10) / 10
}

// StarKey is the breakdown map key for a star value.
func StarKey(rating int) string {
	return strconv.Itoa(rating)
}

// ValidRating reports whether rating is on the star scale.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

func emptyBreakdown() map[string]int {
	breakdown := make(map[string]int, MaxRating)
	for star := MinRating; star <= MaxRating; star++ {
		breakdown[StarKey(star)] = 0
	}

	return breakdown
}
