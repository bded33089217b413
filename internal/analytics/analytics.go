// Package analytics считает сводную статистику по уже выбранным объявлениям.
// Все функции чистые: ни хранилища, ни ошибок.
package analytics

import (
	"regexp"
	"strconv"

	"harvesthub/models"
)

// Покупатель условно экономит треть рыночной цены: рынок = price * 1.5.
const marketMarkup = 1.5

var leadingNumber = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)

// ParseQuantity берет ведущее число из строки вида "12 kg".
// Нераспознанное количество считается нулем.
func ParseQuantity(s string) float64 {
	m := leadingNumber.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

type MonthStats struct {
	Quantity float64 `json:"quantity"`
	Earnings float64 `json:"earnings"`
}

type FarmerStats struct {
	TotalQuantity float64               `json:"total_quantity"`
	TotalEarnings float64               `json:"total_earnings"`
	SellCount     int                   `json:"sell_count"`
	BarterCount   int                   `json:"barter_count"`
	DonateCount   int                   `json:"donate_count"`
	MonthlyData   map[string]MonthStats `json:"monthly_data"`
}

// Farmer считает статистику по всем объявлениям одного фермера.
func Farmer(listings []models.Listing) FarmerStats {
	stats := FarmerStats{MonthlyData: map[string]MonthStats{}}
	for _, l := range listings {
		qty := ParseQuantity(l.Quantity)
		stats.TotalQuantity += qty

		var earned float64
		switch l.Type {
		case models.ListingSell:
			stats.SellCount++
			earned = price(l) * qty
		case models.ListingBarter:
			stats.BarterCount++
		case models.ListingDonate:
			stats.DonateCount++
		}
		stats.TotalEarnings += earned

		if month := l.AvailableDate.Month(); month != "" {
			m := stats.MonthlyData[month]
			m.Quantity += qty
			m.Earnings += earned
			stats.MonthlyData[month] = m
		}
	}
	return stats
}

type BuyerStats struct {
	TotalListings     int            `json:"total_listings"`
	AvgSavingsPerItem float64        `json:"avg_savings_per_item"`
	CropTypes         map[string]int `json:"crop_types"`
}

// Buyer считает статистику по доступным объявлениям на продажу и бартер.
// Экономия усредняется только по объявлениям на продажу с указанной ценой.
func Buyer(listings []models.Listing) BuyerStats {
	stats := BuyerStats{CropTypes: map[string]int{}}
	var savings float64
	var priced int
	for _, l := range listings {
		if l.Type != models.ListingSell && l.Type != models.ListingBarter {
			continue
		}
		stats.TotalListings++
		stats.CropTypes[l.Title]++
		if l.Type == models.ListingSell && l.Price != nil {
			savings += *l.Price*marketMarkup - *l.Price
			priced++
		}
	}
	if priced > 0 {
		stats.AvgSavingsPerItem = savings / float64(priced)
	}
	return stats
}

type NGOStats struct {
	TotalClaimedQuantity float64            `json:"total_claimed_quantity"`
	ClaimedCount         int                `json:"claimed_count"`
	AvailableCount       int                `json:"available_count"`
	MonthlyClaims        map[string]float64 `json:"monthly_claims"`
	CropTypes            map[string]int     `json:"crop_types"`
}

// NGO сравнивает пожертвования, полученные НКО, с доступными сейчас.
func NGO(claimed, available []models.Listing) NGOStats {
	stats := NGOStats{
		ClaimedCount:   len(claimed),
		AvailableCount: len(available),
		MonthlyClaims:  map[string]float64{},
		CropTypes:      map[string]int{},
	}
	for _, l := range claimed {
		qty := ParseQuantity(l.Quantity)
		stats.TotalClaimedQuantity += qty
		stats.CropTypes[l.Title]++
		if month := l.AvailableDate.Month(); month != "" {
			stats.MonthlyClaims[month] += qty
		}
	}
	return stats
}

func price(l models.Listing) float64 {
	if l.Price == nil {
		return 0
	}
	return *l.Price
}
