package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrIndexOutOfRange is returned when a positional mutation references
// an entry beyond the current month's list.
var ErrIndexOutOfRange = errors.New("index out of range")

// fileExt is the extension of month files under the storage root.
const fileExt = ".csv"

// Store reads and writes per-month transaction files under a single
// storage root: one "YYYY" directory per year, one "MM.csv" file per
// month. The files are the single source of truth; callers reload
// after every write before trusting positional indices again.
type Store struct {
	root string
}

// NewStore returns a store rooted at the given directory. The root is
// passed in explicitly - the store never consults the process
// environment.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// path returns the backing file for a month key.
func (s *Store) path(m Month) string {
	return filepath.Join(s.root, fmt.Sprintf("%04d", m.Year), fmt.Sprintf("%02d%s", int(m.Month), fileExt))
}

// Load reads every transaction for one month, stably sorted by date
// ascending. A month with no backing file yields an empty list, not an
// error. A malformed row fails the whole load so a broken file is
// never silently truncated.
func (s *Store) Load(m Month) ([]Transaction, error) {
	name := s.path(m)

	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open %v: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row width is validated by parseRecord

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", name, err)
	}

	txs := make([]Transaction, 0, len(records))

	for i, record := range records {
		tx, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%v: row %d: %w", name, i+1, err)
		}

		txs = append(txs, tx)
	}

	sortTransactions(txs)

	return txs, nil
}

// Save sorts the given transactions by date and rewrites the month's
// backing file with them, creating the year directory if needed. The
// previous content is fully replaced.
func (s *Store) Save(m Month, txs []Transaction) error {
	sortTransactions(txs)

	name := s.path(m)

	err := os.MkdirAll(filepath.Dir(name), 0o755)
	if err != nil {
		return fmt.Errorf("failed to make directory for %v: %w", name, err)
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", name, err)
	}

	w := csv.NewWriter(f)

	for i := range txs {
		if err := w.Write(txs[i].record()); err != nil {
			f.Close()

			return fmt.Errorf("failed to write %v: %w", name, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()

		return fmt.Errorf("failed to write %v: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %v: %w", name, err)
	}

	return nil
}

// Add appends one transaction to the month its date belongs to and
// rewrites that month's file.
func (s *Store) Add(tx Transaction) error {
	m := MonthOf(tx.Date)

	txs, err := s.Load(m)
	if err != nil {
		return err
	}

	return s.Save(m, append(txs, tx))
}

// RemoveAt deletes the i-th entry of the month's date-sorted list and
// rewrites the file. The index refers to the list as Load returns it.
func (s *Store) RemoveAt(m Month, i int) error {
	txs, err := s.Load(m)
	if err != nil {
		return err
	}

	if i < 0 || i >= len(txs) {
		return fmt.Errorf("%w: entry %d of %d in %v", ErrIndexOutOfRange, i, len(txs), m)
	}

	return s.Save(m, append(txs[:i], txs[i+1:]...))
}

// ListMonths scans the storage root and returns a "YYYY-MM" label for
// every month file found inside a year directory, sorted ascending.
// Only leaf files count; nested directories are skipped. A missing or
// empty root yields an empty catalog, not an error.
func (s *Store) ListMonths() ([]string, error) {
	years, err := os.ReadDir(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read storage root %v: %w", s.root, err)
	}

	var labels []string

	for _, year := range years {
		if !year.IsDir() {
			continue
		}

		months, err := os.ReadDir(filepath.Join(s.root, year.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read year directory %v: %w", year.Name(), err)
		}

		for _, month := range months {
			if month.IsDir() {
				continue
			}

			stem := strings.TrimSuffix(month.Name(), filepath.Ext(month.Name()))
			labels = append(labels, fmt.Sprintf("%v-%v", year.Name(), stem))
		}
	}

	sort.Strings(labels)

	return labels, nil
}

// SumAmounts folds the month's amounts over addition. A month with no
// backing file sums to zero.
func (s *Store) SumAmounts(m Month) (decimal.Decimal, error) {
	txs, err := s.Load(m)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for i := range txs {
		sum = sum.Add(txs[i].Amount)
	}

	return sum, nil
}

// sortTransactions orders by date ascending; the sort is stable so
// same-day entries keep their original file order.
func sortTransactions(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Before(txs[j])
	})
}
