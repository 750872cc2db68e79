package store

import (
	"sort"

	"elms/models"
)

// rollupMonthly buckets approved payments by calendar month. Shared by both
// implementations so the rollup is identical regardless of backend.
func rollupMonthly(payments []models.Payment) []MonthRevenue {
	buckets := make(map[string]int64)
	for _, p := range payments {
		buckets[p.CreatedAt.Format("2006-01")] += p.Amount
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	rollup := make([]MonthRevenue, len(months))
	for i, m := range months {
		rollup[i] = MonthRevenue{Month: m, Revenue: buckets[m]}
	}
	return rollup
}
