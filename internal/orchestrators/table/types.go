package table

import (
	"time"

	"github.com/KirkDiggler/onenight-api/internal/dealer"
	"github.com/KirkDiggler/onenight-api/internal/repositories/rounds"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

// CreateTableInput defines the request for opening a table. Exactly one of
// Pool, Selected or PlayerCount picks the cards.
type CreateTableInput struct {
	// Pool is a ready pool of playerCount+3 role tokens
	Pool []string
	// Selected roles are combined with WerewolfCount werewolves
	Selected      []string
	WerewolfCount int
	// PlayerCount and Mode pick a preset pool
	PlayerCount int
	Mode        string
	// Seed makes the table's shuffles reproducible
	Seed *uint64
}

// CreateTableOutput defines the response for opening a table
type CreateTableOutput struct {
	TableID string
	Deal    *dealer.Deal
}

// RedealInput defines the request for dealing the same pool again
type RedealInput struct {
	TableID string
}

// RedealOutput defines the response for a redeal
type RedealOutput struct {
	Deal *dealer.Deal
}

// GetTableInput defines the request for reading a table
type GetTableInput struct {
	TableID string
}

// GetTableOutput defines the response for reading a table
type GetTableOutput struct {
	TableID   string
	CreatedAt time.Time
	Session   *dealer.Session
}

// ViewCardInput defines the request for a seat's one look at its card
type ViewCardInput struct {
	TableID string
	Seat    int
}

// ViewCardOutput defines the response for a card view
type ViewCardOutput struct {
	Role        roles.Role
	DisplayName string
}

// SwapPlayersInput defines the request for exchanging two seats' cards
type SwapPlayersInput struct {
	TableID string
	SeatA   int
	SeatB   int
}

// SwapPlayersOutput defines the response for a seat swap
type SwapPlayersOutput struct{}

// SwapCenterInput defines the request for exchanging a seat with a center card
type SwapCenterInput struct {
	TableID string
	Seat    int
	Center  int
}

// SwapCenterOutput defines the response for a center swap
type SwapCenterOutput struct{}

// EndNightInput defines the request for closing the action phase
type EndNightInput struct {
	TableID string
}

// EndNightOutput defines the response for closing the action phase
type EndNightOutput struct{}

// AdvanceTurnInput defines the request for moving the turn cursor
type AdvanceTurnInput struct {
	TableID string
}

// AdvanceTurnOutput defines the response for moving the turn cursor
type AdvanceTurnOutput struct {
	TurnIndex int
}

// GetNightStepsInput defines the request for the night's wake order
type GetNightStepsInput struct {
	TableID string
}

// GetNightStepsOutput defines the response for the night's wake order
type GetNightStepsOutput struct {
	Steps []dealer.NightStep
}

// CopyRoleInput defines the request for a doppelganger copy
type CopyRoleInput struct {
	TableID          string
	DoppelgangerSeat int
	TargetSeat       int
}

// CopyRoleOutput defines the response for a doppelganger copy
type CopyRoleOutput struct {
	Role roles.Role
}

// RunNightInput defines the request for an unattended night
type RunNightInput struct {
	TableID string
	Choices *dealer.NightChoices
}

// RunNightOutput defines the response for an unattended night
type RunNightOutput struct {
	Log []dealer.NightLogEntry
}

// ResolveVoteInput defines the request for ending a round. Either Votes is
// set and tallied, or Executed and IsTie are taken as given.
type ResolveVoteInput struct {
	TableID  string
	Votes    map[int]int
	Executed []int
	IsTie    bool
}

// ResolveVoteOutput defines the response for ending a round
type ResolveVoteOutput struct {
	Executed []int
	IsTie    bool
	Result   *dealer.VictoryResult
	// RoundID is set when the round was archived
	RoundID string
}

// ListRoundsInput defines the request for a table's archived rounds
type ListRoundsInput struct {
	TableID string
}

// ListRoundsOutput defines the response for a table's archived rounds
type ListRoundsOutput struct {
	Rounds []*rounds.Round
}

// DeleteTableInput defines the request for closing a table
type DeleteTableInput struct {
	TableID string
}

// DeleteTableOutput defines the response for closing a table
type DeleteTableOutput struct{}
