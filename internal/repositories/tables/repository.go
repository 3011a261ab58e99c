// Package tables keeps live game tables in memory.
//
// Each Table wraps one dealer. The dealer itself is not safe for concurrent
// use, so every access goes through Table.Do, which holds the table's lock
// for the duration of the call. Tables do not survive a restart.
package tables

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/onenight-api/internal/dealer"
)

// Table is one live game
type Table struct {
	ID        string
	CreatedAt time.Time

	mu     sync.Mutex
	dealer *dealer.Dealer
}

// NewTable wraps d as a table
func NewTable(id string, d *dealer.Dealer, createdAt time.Time) *Table {
	return &Table{ID: id, CreatedAt: createdAt, dealer: d}
}

// Do runs fn with exclusive access to the table's dealer
func (t *Table) Do(fn func(d *dealer.Dealer) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.dealer)
}

// CreateInput contains parameters for registering a table
type CreateInput struct {
	Table *Table
}

// CreateOutput contains the registered table
type CreateOutput struct {
	Table *Table
}

// GetInput contains parameters for looking up a table
type GetInput struct {
	ID string
}

// GetOutput contains the table
type GetOutput struct {
	Table *Table
}

// DeleteInput contains parameters for removing a table
type DeleteInput struct {
	ID string
}

// DeleteOutput is returned by Delete
type DeleteOutput struct{}

// Repository defines the interface for live table storage
type Repository interface {
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
	Count(ctx context.Context) int
}
