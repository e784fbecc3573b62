package ranking

import (
	"math"
	"testing"
	"time"

	model "bid-portal/internal/models"

	"github.com/stretchr/testify/require"
)

func bid(id string, price float64, days int) model.Bid {
	return model.Bid{
		BidID:              id,
		ProjectID:          "proj1",
		ContractorID:       "c-" + id,
		Status:             model.BidSubmitted,
		FinalContractPrice: price,
		CompletionDays:     days,
	}
}

// Test ComputeStats
func TestComputeStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bids []model.Bid
		want Stats
	}{
		{
			name: "empty",
			bids: nil,
			want: Stats{},
		},
		{
			name: "two_bids",
			bids: []model.Bid{bid("b1", 100000, 30), bid("b2", 90000, 45)},
			want: Stats{
				Count:        2,
				AveragePrice: 95000,
				LowestPrice:  90000,
				HighestPrice: 100000,
				AverageDays:  37.5,
				FastestDays:  30,
			},
		},
		{
			name: "nan_and_zero_prices_excluded",
			bids: []model.Bid{bid("b1", math.NaN(), 30), bid("b2", 0, 10), bid("b3", 80000, 20)},
			want: Stats{
				Count:        3,
				AveragePrice: 80000,
				LowestPrice:  80000,
				HighestPrice: 80000,
				AverageDays:  20,
				FastestDays:  10,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ComputeStats(tc.bids))
		})
	}
}

// Test ComputeBadges
func TestComputeBadges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bids []model.Bid
		want Badges
	}{
		{
			name: "empty",
			bids: nil,
			want: Badges{},
		},
		{
			name: "distinct_winners",
			bids: []model.Bid{bid("b1", 100000, 30), bid("b2", 90000, 45)},
			want: Badges{LowestPriceBidID: "b2", FastestBidID: "b1"},
		},
		{
			name: "price_tie_goes_to_first_in_order",
			bids: []model.Bid{bid("b1", 90000, 40), bid("b2", 90000, 35)},
			want: Badges{LowestPriceBidID: "b1", FastestBidID: "b2"},
		},
		{
			name: "days_tie_goes_to_first_in_order",
			bids: []model.Bid{bid("b1", 95000, 30), bid("b2", 90000, 30)},
			want: Badges{LowestPriceBidID: "b2", FastestBidID: "b1"},
		},
		{
			name: "nan_price_never_wins",
			bids: []model.Bid{bid("b1", math.NaN(), 30), bid("b2", 120000, 45)},
			want: Badges{LowestPriceBidID: "b2", FastestBidID: "b1"},
		},
		{
			name: "no_valid_prices",
			bids: []model.Bid{bid("b1", 0, 30), bid("b2", math.NaN(), 45)},
			want: Badges{FastestBidID: "b1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ComputeBadges(tc.bids))
		})
	}
}

// Test SortField validation
func TestSortField_Valid(t *testing.T) {
	t.Parallel()

	for _, field := range []SortField{ByContractor, ByPrice, ByDays, ByRetention, ByWarranty, ByDateSubmitted} {
		require.True(t, field.Valid(), string(field))
	}
	require.False(t, SortField("status").Valid())
	require.False(t, SortField("").Valid())
}

// Test SortBids
func TestSortBids(t *testing.T) {
	t.Parallel()

	ids := func(bids []model.Bid) []string {
		out := make([]string, len(bids))
		for i, b := range bids {
			out[i] = b.BidID
		}
		return out
	}

	t.Run("by_price_ascending", func(t *testing.T) {
		input := []model.Bid{bid("b1", 100000, 30), bid("b2", 90000, 45), bid("b3", 95000, 20)}
		require.Equal(t, []string{"b2", "b3", "b1"}, ids(SortBids(input, ByPrice, true)))
		// Input untouched
		require.Equal(t, "b1", input[0].BidID)
	})

	t.Run("by_price_descending", func(t *testing.T) {
		input := []model.Bid{bid("b1", 100000, 30), bid("b2", 90000, 45), bid("b3", 95000, 20)}
		require.Equal(t, []string{"b1", "b3", "b2"}, ids(SortBids(input, ByPrice, false)))
	})

	t.Run("nan_price_sorts_last_both_directions", func(t *testing.T) {
		input := []model.Bid{bid("b1", math.NaN(), 30), bid("b2", 90000, 45), bid("b3", 95000, 20)}
		require.Equal(t, []string{"b2", "b3", "b1"}, ids(SortBids(input, ByPrice, true)))
		require.Equal(t, []string{"b3", "b2", "b1"}, ids(SortBids(input, ByPrice, false)))
	})

	t.Run("equal_prices_keep_input_order", func(t *testing.T) {
		input := []model.Bid{bid("b1", 90000, 30), bid("b2", 90000, 45), bid("b3", 90000, 20)}
		require.Equal(t, []string{"b1", "b2", "b3"}, ids(SortBids(input, ByPrice, true)))
	})

	t.Run("by_contractor_case_insensitive", func(t *testing.T) {
		a := bid("b1", 1, 1)
		a.Terms.ContractorName = "acme Roofing"
		b := bid("b2", 1, 1)
		b.Terms.ContractorName = "Barton Builders"
		c := bid("b3", 1, 1)
		c.Terms.ContractorName = "ACME Construction"
		require.Equal(t, []string{"b3", "b1", "b2"}, ids(SortBids([]model.Bid{a, b, c}, ByContractor, true)))
	})

	t.Run("by_days", func(t *testing.T) {
		input := []model.Bid{bid("b1", 1, 45), bid("b2", 1, 20), bid("b3", 1, 30)}
		require.Equal(t, []string{"b2", "b3", "b1"}, ids(SortBids(input, ByDays, true)))
	})

	t.Run("by_date_submitted", func(t *testing.T) {
		base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		early := bid("b1", 1, 1)
		early.DateSubmitted = base
		late := bid("b2", 1, 1)
		late.DateSubmitted = base.Add(time.Hour)
		require.Equal(t, []string{"b2", "b1"}, ids(SortBids([]model.Bid{early, late}, ByDateSubmitted, false)))
	})

	t.Run("by_warranty", func(t *testing.T) {
		a := bid("b1", 1, 1)
		a.Terms.WarrantyYears = 5
		b := bid("b2", 1, 1)
		b.Terms.WarrantyYears = 1
		require.Equal(t, []string{"b2", "b1"}, ids(SortBids([]model.Bid{a, b}, ByWarranty, true)))
	})
}
