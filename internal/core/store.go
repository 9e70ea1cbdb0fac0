package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Store is the in-memory catalog, backed by a flat CSV file. Items are kept
// as an ordered sequence (insertion/load order); duplicate ids are permitted
// and every lookup returns the first match.
type Store struct {
	items  []Item
	logger zerolog.Logger
}

func NewStore(logger zerolog.Logger) *Store {
	return &Store{logger: logger}
}

// Load parses the persisted record stream. Records that are short, have an
// empty required field, fail numeric parsing, or name an unknown category
// are skipped without surfacing an error. The stored discount field is
// ignored; the discount always derives from the category.
func (s *Store) Load(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				s.logger.Debug().Err(err).Msg("skipping unreadable inventory record")
				continue
			}
			return fmt.Errorf("failed to read inventory: %w", err)
		}
		item, ok := s.parseRecord(record)
		if !ok {
			continue
		}
		s.items = append(s.items, item)
	}
}

// parseRecord maps one record (id,name,category,price,quantity[,discount])
// to an Item, reporting whether the record was usable.
func (s *Store) parseRecord(record []string) (Item, bool) {
	if len(record) < 5 {
		s.logger.Debug().Strs("record", record).Msg("skipping short inventory record")
		return Item{}, false
	}
	for _, field := range record[:5] {
		if field == "" {
			s.logger.Debug().Strs("record", record).Msg("skipping inventory record with empty field")
			return Item{}, false
		}
	}

	id, err := strconv.Atoi(record[0])
	if err != nil {
		s.logger.Debug().Str("id", record[0]).Msg("skipping inventory record with bad id")
		return Item{}, false
	}
	category, err := ParseCategory(record[2])
	if err != nil {
		s.logger.Debug().Str("category", record[2]).Msg("skipping inventory record with unknown category")
		return Item{}, false
	}
	price, err := decimal.NewFromString(record[3])
	if err != nil {
		s.logger.Debug().Str("price", record[3]).Msg("skipping inventory record with bad price")
		return Item{}, false
	}
	qty, err := strconv.Atoi(record[4])
	if err != nil {
		s.logger.Debug().Str("quantity", record[4]).Msg("skipping inventory record with bad quantity")
		return Item{}, false
	}

	item, err := NewItem(id, record[1], price, qty, category)
	if err != nil {
		return Item{}, false
	}
	return item, true
}

// Save serializes every item in sequence order. The discount field is
// written for file compatibility even though Load never reads it.
func (s *Store) Save(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, it := range s.items {
		record := []string{
			strconv.Itoa(it.ID),
			it.Name,
			it.Category.Label(),
			it.Price.String(),
			strconv.Itoa(it.Quantity),
			it.Category.DiscountPercent().String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write inventory record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush inventory: %w", err)
	}
	return nil
}

// LoadFile populates the store from path. A missing file means an empty
// inventory, not an error.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug().Str("path", path).Msg("inventory file missing, starting empty")
			return nil
		}
		return fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer f.Close()
	return s.Load(f)
}

// SaveFile persists the store to path, truncating any previous content.
func (s *Store) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create inventory file: %w", err)
	}
	if err := s.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close inventory file: %w", err)
	}
	s.logger.Debug().Str("path", path).Int("items", len(s.items)).Msg("inventory saved")
	return nil
}

// Add appends an item. There is no duplicate-id check; two items may share
// an id and lookups resolve to the first.
func (s *Store) Add(item Item) {
	s.items = append(s.items, item)
}

// Find returns the index of the first item with the given id.
func (s *Store) Find(id int) (int, bool) {
	for i := range s.items {
		if s.items[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Edit replaces name, price, and quantity of the first item with the given
// id. Category and discount are untouched.
func (s *Store) Edit(id int, name string, price decimal.Decimal, qty int) error {
	idx, ok := s.Find(id)
	if !ok {
		return ErrNotFound
	}
	s.items[idx].Edit(name, price, qty)
	return nil
}

// Delete removes the first item with the given id.
func (s *Store) Delete(id int) error {
	idx, ok := s.Find(id)
	if !ok {
		return ErrNotFound
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}

// Items returns the current sequence in display order.
func (s *Store) Items() []Item {
	return s.items
}

func (s *Store) Len() int {
	return len(s.items)
}
