package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingSummary_AddIsIncrementalMean(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
	}{
		{"single", []int{3}},
		{"five five four", []int{5, 5, 4}},
		{"every star", []int{1, 2, 3, 4, 5}},
		{"long run", []int{5, 1, 4, 4, 2, 3, 5, 5, 1, 2, 3, 4, 4, 5, 5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := EmptyRatingSummary()
			sum := 0
			for _, r := range tt.ratings {
				summary = summary.Add(r)
				sum += r
			}

			assert.Equal(t, len(tt.ratings), summary.RatingCount)
			assert.InDelta(t, float64(sum)/float64(len(tt.ratings)), summary.AvgRating, 1e-9)
			assert.Equal(t, summary.RatingCount, summary.BreakdownTotal())
		})
	}
}

func TestRatingSummary_AddFiveFiveFour(t *testing.T) {
	summary := EmptyRatingSummary().Add(5).Add(5).Add(4)

	assert.Equal(t, 3, summary.RatingCount)
	assert.InDelta(t, 4.6666666, summary.AvgRating, 1e-6)
	assert.Equal(t, 2, summary.RatingBreakdown["5"])
	assert.Equal(t, 1, summary.RatingBreakdown["4"])
	assert.InDelta(t, 4.7, summary.RoundedAvg(), 1e-9)
}

func TestRatingSummary_AddDoesNotMutateReceiver(t *testing.T) {
	before := EmptyRatingSummary().Add(4)
	_ = before.Add(1)

	assert.Equal(t, 1, before.RatingCount)
	assert.Equal(t, 0, before.RatingBreakdown["1"])
}

func TestRatingSummary_MissingFieldsBehaveLikeEmpty(t *testing.T) {
	partials := []RatingSummary{
		{},
		{RatingBreakdown: map[string]int{"5": 0}},
		{AvgRating: 0, RatingCount: 0, RatingBreakdown: nil},
	}

	expected := EmptyRatingSummary().Add(4)
	for _, partial := range partials {
		got := partial.Add(4)
		assert.Equal(t, expected, got)
	}
}

func TestRatingSummary_NormalizeDropsUnknownStars(t *testing.T) {
	summary := RatingSummary{
		AvgRating:       3,
		RatingCount:     1,
		RatingBreakdown: map[string]int{"3": 1, "7": 9},
	}.Normalize()

	require.Len(t, summary.RatingBreakdown, 5)
	assert.Equal(t, 1, summary.RatingBreakdown["3"])
	_, ok := summary.RatingBreakdown["7"]
	assert.False(t, ok)
}

func TestRatingSummary_Replace(t *testing.T) {
	summary := EmptyRatingSummary().Add(5).Add(1)

	replaced := summary.Replace(1, 3)

	assert.Equal(t, 2, replaced.RatingCount)
	assert.InDelta(t, 4.0, replaced.AvgRating, 1e-9)
	assert.Equal(t, 0, replaced.RatingBreakdown["1"])
	assert.Equal(t, 1, replaced.RatingBreakdown["3"])
	assert.Equal(t, replaced.RatingCount, replaced.BreakdownTotal())
}

func TestRatingSummary_ReplaceOnEmptyCountsNewRating(t *testing.T) {
	replaced := EmptyRatingSummary().Replace(2, 4)

	assert.Equal(t, 1, replaced.RatingCount)
	assert.InDelta(t, 4.0, replaced.AvgRating, 1e-9)
	assert.Equal(t, 0, replaced.RatingBreakdown["2"])
}

func TestRatingSummary_ReplaceUncountedRatingAddsNewOne(t *testing.T) {
	summary := RatingSummary{
		AvgRating:       4,
		RatingCount:     1,
		RatingBreakdown: map[string]int{"4": 1},
	}

	replaced := summary.Replace(1, 5)

	assert.Equal(t, 2, replaced.RatingCount)
	assert.InDelta(t, 4.5, replaced.AvgRating, 1e-9)
	assert.Equal(t, 0, replaced.RatingBreakdown["1"])
	assert.Equal(t, 1, replaced.RatingBreakdown["4"])
	assert.Equal(t, 1, replaced.RatingBreakdown["5"])
	assert.Equal(t, replaced.RatingCount, replaced.BreakdownTotal())
	assert.LessOrEqual(t, replaced.AvgRating, float64(MaxRating))
}

func TestRatingSummary_NormalizeZeroCountClearsBreakdown(t *testing.T) {
	summary := RatingSummary{
		RatingCount:     0,
		RatingBreakdown: map[string]int{"3": 2},
	}.Normalize()

	assert.Equal(t, 0, summary.RatingCount)
	assert.Equal(t, 0, summary.BreakdownTotal())
	assert.Equal(t, EmptyRatingSummary(), summary)

	negative := RatingSummary{AvgRating: 2, RatingCount: -3, RatingBreakdown: map[string]int{"2": 1}}.Normalize()
	assert.Equal(t, EmptyRatingSummary(), negative)
}

func TestRatingSummary_HasReviews(t *testing.T) {
	assert.False(t, EmptyRatingSummary().HasReviews())
	assert.True(t, EmptyRatingSummary().Add(2).HasReviews())
}

func TestValidRating(t *testing.T) {
	for _, r := range []int{1, 2, 3, 4, 5} {
		assert.True(t, ValidRating(r), r)
	}
	for _, r := range []int{-1, 0, 6, 10} {
		assert.False(t, ValidRating(r), r)
	}
}

func TestSummarizeRatings(t *testing.T) {
	summary := SummarizeRatings([]int{5, 5, 4, 0, 9})

	assert.Equal(t, 3, summary.RatingCount)
	assert.True(t, summary.Matches(EmptyRatingSummary().Add(5).Add(5).Add(4)))
	assert.Equal(t, EmptyRatingSummary(), SummarizeRatings(nil))
}

func TestRatingSummary_Matches(t *testing.T) {
	base := EmptyRatingSummary().Add(5).Add(4)

	assert.True(t, base.Matches(EmptyRatingSummary().Add(4).Add(5)))
	assert.False(t, base.Matches(EmptyRatingSummary().Add(5).Add(3)), "different breakdown")
	assert.False(t, base.Matches(EmptyRatingSummary().Add(5)), "different count")

	skewed := base
	skewed.AvgRating += 0.01
	assert.False(t, base.Matches(skewed), "different average")
	assert.True(t, RatingSummary{}.Matches(EmptyRatingSummary()))
}
