package normalize

import "sort"

// WordCount maps a normalized token to its number of occurrences in one
// document. Every count is positive.
type WordCount map[string]int

// Entry is a single token count.
type Entry struct {
	Token string
	Count int
}

// Total returns the sum of all counts.
func (wc WordCount) Total() int {
	total := 0
	for _, count := range wc {
		total += count
	}
	return total
}

// Entries returns the counts ordered by descending count, then token.
func (wc WordCount) Entries() []Entry {
	entries := make([]Entry, 0, len(wc))
	for token, count := range wc {
		entries = append(entries, Entry{Token: token, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})
	return entries
}

// Top returns at most n entries in Entries order. n <= 0 returns all.
func (wc WordCount) Top(n int) []Entry {
	entries := wc.Entries()
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
