package report

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"
)

// Fetcher downloads another collector's ledger for exchange comparison.
// The remote file must have the same two-column shape as the local ledger.
type Fetcher struct {
	HTTPClient *http.Client
}

// NewFetcher returns a Fetcher with a bounded request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchCollection downloads and parses a remote ledger into a sticker
// number -> quantity mapping. Malformed rows are skipped like on local load.
func (f *Fetcher) FetchCollection(url string) (map[int]int, error) {
	resp, err := f.HTTPClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch remote collection: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote collection returned status %d", resp.StatusCode)
	}
	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse remote collection: %w", err)
	}
	owned := make(map[int]int)
	for i, rec := range records {
		if i == 0 || len(rec) < 2 {
			continue
		}
		number, err1 := strconv.Atoi(rec[0])
		amount, err2 := strconv.Atoi(rec[1])
		if err1 != nil || err2 != nil || amount < 0 {
			continue
		}
		owned[number] = amount
	}
	return owned, nil
}

// Offer is one exchangeable sticker: the number and how many spare copies
// the offering side holds.
type Offer struct {
	Number int
	Spare  int
}

// Exchange lists mutually useful trades between two collections.
type Exchange struct {
	// TheyGive are stickers we miss that the other side has spares of.
	TheyGive []Offer
	// WeGive are stickers the other side misses that we have spares of.
	WeGive []Offer
}

// CompareCollections computes exchange opportunities between ours and theirs
// over an album of albumSize stickers.
func CompareCollections(ours, theirs map[int]int, albumSize int) Exchange {
	ourSpares := Duplicates(ours)
	theirSpares := Duplicates(theirs)

	var ex Exchange
	for _, n := range Missing(ours, albumSize) {
		if spare, ok := theirSpares[n]; ok {
			ex.TheyGive = append(ex.TheyGive, Offer{Number: n, Spare: spare})
		}
	}
	for _, n := range Missing(theirs, albumSize) {
		if spare, ok := ourSpares[n]; ok {
			ex.WeGive = append(ex.WeGive, Offer{Number: n, Spare: spare})
		}
	}
	sort.Slice(ex.TheyGive, func(i, j int) bool { return ex.TheyGive[i].Number < ex.TheyGive[j].Number })
	sort.Slice(ex.WeGive, func(i, j int) bool { return ex.WeGive[i].Number < ex.WeGive[j].Number })
	return ex
}
