package collection

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// CSV ledger columns. One row per distinct owned sticker number.
var headers = []string{"sticker_number", "amount"}

// Store persists owned sticker quantities in a two-column CSV ledger.
// The file is created with its header on first use. Row order is
// insignificant; malformed rows are skipped on read.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore returns a Store backed by the CSV file at path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the ledger file location.
func (s *Store) Path() string { return s.path }

// Load reads the ledger and returns the sticker number -> quantity mapping.
// A missing file yields an empty mapping and creates the ledger.
func (s *Store) Load() (map[int]int, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open collection: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}
	owned := make(map[int]int)
	for i, rec := range records {
		if i == 0 { // header
			continue
		}
		if len(rec) < 2 {
			continue
		}
		number, err1 := strconv.Atoi(rec[0])
		amount, err2 := strconv.Atoi(rec[1])
		if err1 != nil || err2 != nil || amount < 0 {
			if s.logger != nil {
				s.logger.Warn("skipping malformed ledger row", "row", i+1)
			}
			continue
		}
		owned[number] = amount
	}
	return owned, nil
}

// Add increments the quantity of each submitted number, repeats included,
// and persists the result. It returns the post-commit quantities of the
// submitted numbers. An empty submission is a no-op.
func (s *Store) Add(numbers []int) (map[int]int, error) {
	if len(numbers) == 0 {
		return map[int]int{}, nil
	}
	owned, err := s.Load()
	if err != nil {
		return nil, err
	}
	for _, n := range numbers {
		owned[n]++
	}
	if err := s.write(owned); err != nil {
		return nil, err
	}
	committed := make(map[int]int, len(numbers))
	for _, n := range numbers {
		committed[n] = owned[n]
	}
	if s.logger != nil {
		s.logger.Info("committed stickers", "count", len(numbers), "path", s.path)
	}
	return committed, nil
}

// ensure creates the ledger file with its header if it does not exist.
func (s *Store) ensure() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return s.write(nil)
}

// write replaces the ledger atomically: rows are written sorted by sticker
// number into a temp file which is then renamed over the ledger.
func (s *Store) write(owned map[int]int) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".collection-*.csv")
	if err != nil {
		return fmt.Errorf("create temp ledger: %w", err)
	}
	tmpName := tmp.Name()
	w := csv.NewWriter(tmp)
	if err := w.Write(headers); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write ledger header: %w", err)
	}
	numbers := make([]int, 0, len(owned))
	for n := range owned {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	for _, n := range numbers {
		rec := []string{strconv.Itoa(n), strconv.Itoa(owned[n])}
		if err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("write ledger row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flush ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}
