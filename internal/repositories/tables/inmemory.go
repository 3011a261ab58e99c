package tables

import (
	"context"
	"sync"

	"github.com/KirkDiggler/onenight-api/internal/errors"
)

// InMemoryRepository implements Repository with a map
type InMemoryRepository struct {
	mu        sync.RWMutex
	store     map[string]*Table
	maxTables int
}

// NewInMemory creates an empty store. maxTables of zero means no limit.
func NewInMemory(maxTables int) *InMemoryRepository {
	return &InMemoryRepository{
		store:     make(map[string]*Table),
		maxTables: maxTables,
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create registers a new table
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Table == nil {
		return nil, errors.InvalidArgument("table is required")
	}
	if input.Table.ID == "" {
		return nil, errors.InvalidArgument("table ID is required")
	}
	if input.Table.dealer == nil {
		return nil, errors.InvalidArgument("table dealer is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Table.ID]; exists {
		return nil, errors.AlreadyExistsf("table %s already exists", input.Table.ID)
	}
	if r.maxTables > 0 && len(r.store) >= r.maxTables {
		return nil, errors.Unavailable("table limit reached").WithMeta("max_tables", r.maxTables)
	}

	r.store[input.Table.ID] = input.Table
	return &CreateOutput{Table: input.Table}, nil
}

// Get looks up a table by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("table ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.store[input.ID]
	if !ok {
		return nil, errors.NotFoundf("table %s not found", input.ID).WithMeta("table_id", input.ID)
	}
	return &GetOutput{Table: t}, nil
}

// Delete removes a table
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("table ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[input.ID]; !ok {
		return nil, errors.NotFoundf("table %s not found", input.ID).WithMeta("table_id", input.ID)
	}
	delete(r.store, input.ID)
	return &DeleteOutput{}, nil
}

// Count returns the number of live tables
func (r *InMemoryRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}
