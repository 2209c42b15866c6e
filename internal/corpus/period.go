package corpus

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Period identifies one quarterly statement.
type Period struct {
	Year    int
	Quarter int
}

// Key renders the period as it appears in file names and matrix rows.
func (p Period) Key() string {
	return fmt.Sprintf("%dQ%d", p.Year, p.Quarter)
}

func (p Period) String() string { return p.Key() }

// ParsePeriod parses a key such as 1994Q1 (case-insensitive Q).
func ParsePeriod(key string) (Period, error) {
	trimmed := strings.TrimSpace(key)
	idx := strings.IndexAny(trimmed, "Qq")
	if idx <= 0 || idx == len(trimmed)-1 {
		return Period{}, fmt.Errorf("parse period %q: expected YYYYQn", key)
	}
	year, err := strconv.Atoi(trimmed[:idx])
	if err != nil || year <= 0 {
		return Period{}, fmt.Errorf("parse period %q: invalid year", key)
	}
	quarter, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil || quarter < 1 || quarter > 4 {
		return Period{}, fmt.Errorf("parse period %q: quarter must be 1-4", key)
	}
	return Period{Year: year, Quarter: quarter}, nil
}

// Periods lists every (year, quarter) pair from startYear through endYear,
// ordered by year then quarter.
func Periods(startYear, endYear int, quarters []int) ([]Period, error) {
	if endYear < startYear {
		return nil, fmt.Errorf("periods: end year %d before start year %d", endYear, startYear)
	}
	if len(quarters) == 0 {
		return nil, fmt.Errorf("periods: no quarters given")
	}
	qs := slices.Clone(quarters)
	slices.Sort(qs)
	qs = slices.Compact(qs)
	for _, q := range qs {
		if q < 1 || q > 4 {
			return nil, fmt.Errorf("periods: quarter %d out of range", q)
		}
	}

	out := make([]Period, 0, (endYear-startYear+1)*len(qs))
	for year := startYear; year <= endYear; year++ {
		for _, q := range qs {
			out = append(out, Period{Year: year, Quarter: q})
		}
	}
	return out, nil
}

// Keys maps periods to their string keys, preserving order.
func Keys(periods []Period) []string {
	keys := make([]string, len(periods))
	for i, p := range periods {
		keys[i] = p.Key()
	}
	return keys
}
