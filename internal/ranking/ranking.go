// Package ranking derives sortable, aggregate views over a project's bid set.
// Everything here is a pure function over its input; no mutation, no storage.
package ranking

import (
	"math"
	"sort"

	model "bid-portal/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Stats aggregates a bid set. Bids whose price or timeline is missing or NaN
// are excluded from the affected aggregate instead of poisoning it.
type Stats struct {
	Count        int     `json:"count"`
	AveragePrice float64 `json:"average_price"`
	LowestPrice  float64 `json:"lowest_price"`
	HighestPrice float64 `json:"highest_price"`
	AverageDays  float64 `json:"average_days"`
	FastestDays  int     `json:"fastest_days"`
}

// Badges identifies the standout bids. Ties go to the first bid encountered
// in input order; with bids listed in submission order that is the earliest
// submission.
type Badges struct {
	LowestPriceBidID string `json:"lowest_price_bid_id"`
	FastestBidID     string `json:"fastest_bid_id"`
}

// SortField selects the bid attribute to sort a comparison view by
type SortField string

const (
	ByContractor    SortField = "contractor"
	ByPrice         SortField = "finalContractPrice"
	ByDays          SortField = "completionDays"
	ByRetention     SortField = "progressRetentionPercent"
	ByWarranty      SortField = "warrantyYears"
	ByDateSubmitted SortField = "dateSubmitted"
)

// Valid reports whether the field is sortable
func (f SortField) Valid() bool {
	switch f {
	case ByContractor, ByPrice, ByDays, ByRetention, ByWarranty, ByDateSubmitted:
		return true
	}
	return false
}

// ComputeStats aggregates count, price and timeline figures over a bid set
func ComputeStats(bids []model.Bid) Stats {
	stats := Stats{Count: len(bids)}

	var (
		priceSum   float64
		priceCount int
		daysSum    int
		daysCount  int
	)
	for _, bid := range bids {
		if validPrice(bid.FinalContractPrice) {
			if priceCount == 0 || bid.FinalContractPrice < stats.LowestPrice {
				stats.LowestPrice = bid.FinalContractPrice
			}
			if priceCount == 0 || bid.FinalContractPrice > stats.HighestPrice {
				stats.HighestPrice = bid.FinalContractPrice
			}
			priceSum += bid.FinalContractPrice
			priceCount++
		}
		if bid.CompletionDays >= 1 {
			if daysCount == 0 || bid.CompletionDays < stats.FastestDays {
				stats.FastestDays = bid.CompletionDays
			}
			daysSum += bid.CompletionDays
			daysCount++
		}
	}
	if priceCount > 0 {
		stats.AveragePrice = priceSum / float64(priceCount)
	}
	if daysCount > 0 {
		stats.AverageDays = float64(daysSum) / float64(daysCount)
	}
	return stats
}

// ComputeBadges returns the lowest-price and fastest-timeline bid IDs.
// Strictly-better comparisons keep the first qualifying bid on ties.
func ComputeBadges(bids []model.Bid) Badges {
	var badges Badges
	var bestPrice float64
	var bestDays int

	for _, bid := range bids {
		if validPrice(bid.FinalContractPrice) &&
			(badges.LowestPriceBidID == "" || bid.FinalContractPrice < bestPrice) {
			badges.LowestPriceBidID = bid.BidID
			bestPrice = bid.FinalContractPrice
		}
		if bid.CompletionDays >= 1 &&
			(badges.FastestBidID == "" || bid.CompletionDays < bestDays) {
			badges.FastestBidID = bid.BidID
			bestDays = bid.CompletionDays
		}
	}
	return badges
}

// SortBids returns a copy of the bid set stably sorted by the selected field.
// Contractor names compare locale-aware; numeric and date fields compare
// numerically and chronologically.
func SortBids(bids []model.Bid, field SortField, ascending bool) []model.Bid {
	sorted := append([]model.Bid(nil), bids...)

	var less func(a, b model.Bid) bool
	switch field {
	case ByContractor:
		coll := collate.New(language.English, collate.Loose)
		less = func(a, b model.Bid) bool {
			return coll.CompareString(a.Terms.ContractorName, b.Terms.ContractorName) < 0
		}
	case ByDays:
		less = func(a, b model.Bid) bool { return a.CompletionDays < b.CompletionDays }
	case ByRetention:
		less = func(a, b model.Bid) bool { return lessFloat(a.Terms.ProgressRetentionPercent, b.Terms.ProgressRetentionPercent) }
	case ByWarranty:
		less = func(a, b model.Bid) bool { return a.Terms.WarrantyYears < b.Terms.WarrantyYears }
	case ByDateSubmitted:
		less = func(a, b model.Bid) bool { return a.DateSubmitted.Before(b.DateSubmitted) }
	default: // ByPrice
		less = func(a, b model.Bid) bool { return lessFloat(a.FinalContractPrice, b.FinalContractPrice) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return less(sorted[i], sorted[j])
		}
		return less(sorted[j], sorted[i])
	})
	return sorted
}

// NaN sorts last regardless of direction
func lessFloat(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a < b
}

func validPrice(price float64) bool {
	return !math.IsNaN(price) && price > 0
}
