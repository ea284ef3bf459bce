// Package report computes read-only views over a loaded collection mapping:
// missing/owned listings, album statistics, duplicates, and exchange
// comparison against another collector's ledger.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// numbersPerLine controls chunked formatting of sticker listings.
const numbersPerLine = 10

// Missing returns the sorted sticker numbers absent from the mapping, for
// an album of albumSize stickers.
func Missing(owned map[int]int, albumSize int) []int {
	missing := make([]int, 0, albumSize)
	for n := 1; n <= albumSize; n++ {
		if _, ok := owned[n]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

// Owned returns the sorted sticker numbers present in the mapping.
func Owned(owned map[int]int) []int {
	numbers := make([]int, 0, len(owned))
	for n := range owned {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// Duplicates returns spare copies per sticker: quantity minus the one kept
// in the album, for every number owned more than once.
func Duplicates(owned map[int]int) map[int]int {
	dup := make(map[int]int)
	for n, amount := range owned {
		if amount > 1 {
			dup[n] = amount - 1
		}
	}
	return dup
}

// Stats summarises album completion.
type Stats struct {
	Owned      int
	Missing    int
	Total      int
	Duplicates int
	Progress   float64 // percentage of the album owned
}

// Summarise computes Stats for the mapping.
func Summarise(owned map[int]int, albumSize int) Stats {
	dup := 0
	for _, amount := range owned {
		if amount > 1 {
			dup += amount - 1
		}
	}
	st := Stats{
		Owned:      len(owned),
		Missing:    albumSize - len(owned),
		Total:      albumSize,
		Duplicates: dup,
	}
	if albumSize > 0 {
		st.Progress = float64(len(owned)) / float64(albumSize) * 100
	}
	return st
}

func (s Stats) String() string {
	var b strings.Builder
	b.WriteString("Collection Stats:\n")
	fmt.Fprintf(&b, "- Owned: %d (%.1f%%)\n", s.Owned, s.Progress)
	fmt.Fprintf(&b, "- Missing: %d\n", s.Missing)
	fmt.Fprintf(&b, "- Total: %d\n", s.Total)
	fmt.Fprintf(&b, "- Duplicates for exchange: %d", s.Duplicates)
	return b.String()
}

// FormatNumbers renders sticker numbers in comma-separated chunks of ten
// per line, matching the ledger listing style.
func FormatNumbers(numbers []int) string {
	if len(numbers) == 0 {
		return ""
	}
	var lines []string
	for start := 0; start < len(numbers); start += numbersPerLine {
		end := start + numbersPerLine
		if end > len(numbers) {
			end = len(numbers)
		}
		parts := make([]string, 0, end-start)
		for _, n := range numbers[start:end] {
			parts = append(parts, strconv.Itoa(n))
		}
		lines = append(lines, strings.Join(parts, ", "))
	}
	return strings.Join(lines, "\n")
}
