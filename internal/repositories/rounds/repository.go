// Package rounds archives finished rounds in redis for a limited time.
//
// The archive is write-once: a round is saved when its vote is resolved and
// is never updated. Live tables are not stored here.
package rounds

import (
	"context"
	"time"

	"github.com/KirkDiggler/onenight-api/internal/dealer"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=roundsmock github.com/KirkDiggler/onenight-api/internal/repositories/rounds Repository

// Round is the record of one finished round
type Round struct {
	ID                 string                `json:"id"`
	TableID            string                `json:"table_id"`
	PlayerCount        int                   `json:"player_count"`
	InitialPlayerCards []roles.Role          `json:"initial_player_cards"`
	FinalPlayerCards   []roles.Role          `json:"final_player_cards"`
	CenterCards        []roles.Role          `json:"center_cards"`
	Executed           []int                 `json:"executed"`
	IsTie              bool                  `json:"is_tie"`
	Result             dealer.VictoryResult  `json:"result"`
	History            []dealer.HistoryEntry `json:"history"`
	FinishedAt         time.Time             `json:"finished_at"`
	ExpiresAt          time.Time             `json:"expires_at"`
}

// SaveInput contains parameters for archiving a round
type SaveInput struct {
	Round *Round
	// TTL is how long the round is kept. Zero uses the repository default.
	TTL time.Duration
}

// SaveOutput contains the archived round
type SaveOutput struct {
	Round *Round
}

// GetInput contains parameters for fetching one round
type GetInput struct {
	ID string
}

// GetOutput contains the fetched round
type GetOutput struct {
	Round *Round
}

// ListByTableInput contains parameters for listing a table's rounds
type ListByTableInput struct {
	TableID string
}

// ListByTableOutput contains the table's rounds, oldest first
type ListByTableOutput struct {
	Rounds []*Round
}

// Repository defines the interface for the round archive
type Repository interface {
	// Save archives a finished round
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves an archived round by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByTable returns the archived rounds played at a table
	ListByTable(ctx context.Context, input ListByTableInput) (*ListByTableOutput, error)
}
