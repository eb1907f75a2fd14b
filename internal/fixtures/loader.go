// Package fixtures loads mock order and buyer documents from JSON
// files on disk.
package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sellerdesk/fulfillment/pkg/shipping"
)

// Store reads fixture documents from a directory. File naming follows
// the demo data layout: order.<id>.json and buyer.<id>.json.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// LoadOrder reads the order document for the given id.
func (s *Store) LoadOrder(id int) (*shipping.OrderData, error) {
	var data shipping.OrderData
	if err := s.load(fmt.Sprintf("order.%d.json", id), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// LoadBuyer reads the buyer document for the given id.
func (s *Store) LoadBuyer(id int) (*shipping.Buyer, error) {
	var buyer shipping.Buyer
	if err := s.load(fmt.Sprintf("buyer.%d.json", id), &buyer); err != nil {
		return nil, err
	}
	return &buyer, nil
}

func (s *Store) load(name string, v any) error {
	path := filepath.Join(s.dir, name)

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file not found: %s", path)
		}
		return err
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

var _ shipping.OrderSource = (*Store)(nil)
