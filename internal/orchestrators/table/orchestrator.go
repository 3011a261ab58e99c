// Package table implements the table orchestrator, which runs One Night
// rounds on live tables and archives the finished ones
package table

//go:generate mockgen -destination=mock/mock_service.go -package=tablemock github.com/KirkDiggler/onenight-api/internal/orchestrators/table Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/onenight-api/internal/dealer"
	"github.com/KirkDiggler/onenight-api/internal/errors"
	"github.com/KirkDiggler/onenight-api/internal/pkg/clock"
	"github.com/KirkDiggler/onenight-api/internal/pkg/idgen"
	"github.com/KirkDiggler/onenight-api/internal/pkg/rng"
	"github.com/KirkDiggler/onenight-api/internal/presets"
	"github.com/KirkDiggler/onenight-api/internal/repositories/rounds"
	"github.com/KirkDiggler/onenight-api/internal/repositories/tables"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

// Service defines the interface for table operations
type Service interface {
	// Table lifecycle
	CreateTable(ctx context.Context, input *CreateTableInput) (*CreateTableOutput, error)
	Redeal(ctx context.Context, input *RedealInput) (*RedealOutput, error)
	GetTable(ctx context.Context, input *GetTableInput) (*GetTableOutput, error)
	DeleteTable(ctx context.Context, input *DeleteTableInput) (*DeleteTableOutput, error)

	// Night actions
	ViewCard(ctx context.Context, input *ViewCardInput) (*ViewCardOutput, error)
	SwapPlayers(ctx context.Context, input *SwapPlayersInput) (*SwapPlayersOutput, error)
	SwapCenter(ctx context.Context, input *SwapCenterInput) (*SwapCenterOutput, error)
	EndNight(ctx context.Context, input *EndNightInput) (*EndNightOutput, error)
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)
	GetNightSteps(ctx context.Context, input *GetNightStepsInput) (*GetNightStepsOutput, error)
	CopyRole(ctx context.Context, input *CopyRoleInput) (*CopyRoleOutput, error)
	RunNight(ctx context.Context, input *RunNightInput) (*RunNightOutput, error)

	// Day
	ResolveVote(ctx context.Context, input *ResolveVoteInput) (*ResolveVoteOutput, error)
	ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error)
}

// Config holds the dependencies for the table orchestrator
type Config struct {
	TableRepo   tables.Repository
	Presets     *presets.Table
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// Roller shuffles tables created without a seed
	Roller dice.Roller

	// RoundArchive is optional. Without it rounds are not kept.
	RoundArchive     rounds.Repository
	RoundIDGenerator idgen.Generator
	RoundTTL         time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.TableRepo == nil {
		vb.RequiredField("TableRepo")
	}
	if c.Presets == nil {
		vb.RequiredField("Presets")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.RoundTTL < 0 {
		vb.Field("RoundTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	tableRepo tables.Repository
	presets   *presets.Table
	idGen     idgen.Generator
	clock     clock.Clock
	roller    dice.Roller

	archive  rounds.Repository
	roundIDs idgen.Generator
	roundTTL time.Duration
}

// NewOrchestrator creates a new table orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roundIDs := cfg.RoundIDGenerator
	if roundIDs == nil {
		roundIDs = idgen.NewUUID("round")
	}

	return &orchestrator{
		tableRepo: cfg.TableRepo,
		presets:   cfg.Presets,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
		roller:    cfg.Roller,
		archive:   cfg.RoundArchive,
		roundIDs:  roundIDs,
		roundTTL:  cfg.RoundTTL,
	}, nil
}

// CreateTable opens a table and deals its first round
func (o *orchestrator) CreateTable(ctx context.Context, input *CreateTableInput) (*CreateTableOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sources := 0
	for _, set := range []bool{len(input.Pool) > 0, len(input.Selected) > 0, input.PlayerCount > 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, errors.InvalidArgument("exactly one of pool, selected roles or player count is required")
	}

	roller := o.roller
	if input.Seed != nil {
		roller = rng.New(*input.Seed)
	}
	d, err := dealer.New(&dealer.Config{Roller: roller, Clock: o.clock})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dealer")
	}

	var deal *dealer.Deal
	switch {
	case len(input.Pool) > 0:
		deal, err = d.StartGameWithSelection(normalize(input.Pool))
	case len(input.Selected) > 0:
		deal, err = d.StartGameWithSelection(dealer.AssemblePool(normalize(input.Selected), input.WerewolfCount))
	default:
		mode := input.Mode
		if mode == "" {
			mode = presets.ModeBeginner
		}
		deal, err = d.Deal(o.presets, input.PlayerCount, mode)
	}
	if err != nil {
		return nil, err
	}

	id := o.idGen.Generate()
	created, err := o.tableRepo.Create(ctx, &tables.CreateInput{
		Table: tables.NewTable(id, d, o.clock.Now()),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create table %s", id)
	}

	slog.Info("table created",
		"table_id", created.Table.ID,
		"players", len(deal.PlayerCards),
		"seeded", input.Seed != nil)

	return &CreateTableOutput{TableID: created.Table.ID, Deal: deal}, nil
}

// Redeal shuffles the table's pool again and starts a fresh round
func (o *orchestrator) Redeal(ctx context.Context, input *RedealInput) (*RedealOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var deal *dealer.Deal
	_, err := o.withTable(ctx, input.TableID, func(d *dealer.Dealer) error {
		var err error
		deal, err = d.Redeal()
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("table redealt", "table_id", input.TableID)

	return &RedealOutput{Deal: deal}, nil
}

// GetTable returns a snapshot of the table's session
func (o *orchestrator) GetTable(ctx context.Context, input *GetTableInput) (*GetTableOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var session *dealer.Session
	t, err := o.withTable(ctx, input.TableID, func(d *dealer.Dealer) error {
		session = d.Session()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &GetTableOutput{TableID: t.ID, CreatedAt: t.CreatedAt, Session: session}, nil
}

// DeleteTable closes a table
func (o *orchestrator) DeleteTable(ctx context.Context, input *DeleteTableInput) (*DeleteTableOutput, error) {
	if input == nil || input.TableID == "" {
		return nil, errors.InvalidArgument("table ID is required")
	}

	if _, err := o.tableRepo.Delete(ctx, &tables.DeleteInput{ID: input.TableID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete table %s", input.TableID)
	}

	slog.Info("table deleted", "table_id", input.TableID)

	return &DeleteTableOutput{}, nil
}

// ViewCard reveals a seat's current card to that seat
func (o *orchestrator) ViewCard(ctx context.Context, input *ViewCardInput) (*ViewCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var role roles.Role
	_, err := o.withTable(ctx, input.TableID, func(d *dealer.Dealer) error {
		var err error
		role, err = d.ViewCard(input.Seat)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("card viewed", "table_id", input.TableID, "cards", dealer.EntityIDs(dealer.Seat(input.Seat)))

	return &ViewCardOutput{Role: role, DisplayName: roles.DisplayName(role)}, nil
}

// SwapPlayers exchanges the cards of two seats
func (o *orchestrator) SwapPlayers(ctx context.Context, input *SwapPlayersInput) (*SwapPlayersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, err := o.withTable(ctx, input.TableID, func(d *dealer.Dealer) error {
		return d.SwapBetweenPlayers(input.SeatA, input.SeatB)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("cards swapped",
		"table_id", input.TableID,
		"cards", dealer.EntityIDs(dealer.Seat(input.SeatA), dealer.Seat(input.SeatB)))

	return &SwapPlayersOutput{}, nil
}

// SwapCenter exchanges a seat's card with a center card
func (o *orchestrator) SwapCenter(ctx context.Context, input *SwapCenterInput) (*SwapCenterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, err := o.withTable(ctx, input.TableID, func(d *dealer.Dealer) error {
		return d.SwapWithCenter(input.Seat, input.Center)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("cards swapped",
		"table_id", input.TableID,
		"cards", dealer.EntityIDs(dealer.Seat(input.Seat), dealer.Center(input.Center)))

	return &SwapCenterOutput{}, nil
}

// EndNight closes the action phase
func (o *orchestrator) EndNight(ctx context.Context, input *EndNightInput) (*EndNightOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, err := o.withTable(ctx, input.TableID, func(d *dealer.Dealer) error {
		return d.EndActionPhase()
	})
	if err != nil {
		return nil, err
	}

	slog.Info("night ended", "table_id", input.TableID)

	return &EndNightOutput{}, nil
}

// AdvanceTurn moves the table's turn cursor to the next seat
func (o *orchestrator) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var turn int
	_, err := o.withTable(ctx, input.TableID, func(d *dealer.Dealer) error {
		var err error
		turn, err = d.AdvanceTurn()
		return err
	})
	if err != nil {
		return nil, err
	}

	return &AdvanceTurnOutput{TurnIndex: turn}, nil
}

// GetNightSteps returns the wake order for the dealt cards
func (o *orchestrator) GetNightSteps(ctx context.Context, input *GetNightStepsInput) (*GetNightStepsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var steps []dealer.NightStep
	_, err := o.withTable(ctx, input.TableID, func(d *dealer.Dealer) error {
		var err error
		steps, err = d.NightSteps()
		return err
	})
	if err != nil {
		return nil, err
	}

	return &GetNightStepsOutput{Steps: steps}, nil
}

// CopyRole lets the doppelganger look at another seat's card
func (o *orchestrator) CopyRole(ctx context.Context, input *CopyRoleInput) (*CopyRoleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var role roles.Role
	_, err := o.withTable(ctx, input.TableID, func(d *dealer.Dealer) error {
		var err error
		role, err = d.CopyRole(input.DoppelgangerSeat, input.TargetSeat)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &CopyRoleOutput{Role: role}, nil
}

// RunNight plays the whole night without a narrator
func (o *orchestrator) RunNight(ctx context.Context, input *RunNightInput) (*RunNightOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var log []dealer.NightLogEntry
	_, err := o.withTable(ctx, input.TableID, func(d *dealer.Dealer) error {
		var err error
		log, err = d.RunNightAutomation(input.Choices)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("night automated", "table_id", input.TableID, "entries", len(log))
	for _, entry := range log {
		slog.Debug("night action",
			"table_id", input.TableID,
			"role", entry.Role,
			"action", entry.Action,
			"targets", dealer.EntityIDs(entry.Targets...))
	}

	return &RunNightOutput{Log: log}, nil
}

// ResolveVote ends the round, decides the winner and archives the result
func (o *orchestrator) ResolveVote(ctx context.Context, input *ResolveVoteInput) (*ResolveVoteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.Votes != nil && (len(input.Executed) > 0 || input.IsTie) {
		return nil, errors.InvalidArgument("provide either votes or an outcome, not both")
	}

	out := &ResolveVoteOutput{}
	var session *dealer.Session
	_, err := o.withTable(ctx, input.TableID, func(d *dealer.Dealer) error {
		current := d.Session()
		if current == nil {
			return d.EndActionPhase()
		}

		executed, isTie := input.Executed, input.IsTie
		if input.Votes != nil {
			var err error
			executed, isTie, err = dealer.TallyVotes(current.PlayerCount, input.Votes)
			if err != nil {
				return err
			}
		}

		result, err := d.EvaluateVictory(executed, isTie)
		if err != nil {
			return err
		}
		if err := d.EndActionPhase(); err != nil {
			return err
		}

		session = d.Session()
		out.Executed, out.IsTie, out.Result = executed, isTie, result
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("vote resolved",
		"table_id", input.TableID,
		"executed", out.Executed,
		"tie", out.IsTie,
		"winner", out.Result.Winner())

	out.RoundID = o.archiveRound(ctx, input.TableID, session, out)

	return out, nil
}

// ListRounds returns the table's archived rounds, oldest first
func (o *orchestrator) ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error) {
	if input == nil || input.TableID == "" {
		return nil, errors.InvalidArgument("table ID is required")
	}
	if o.archive == nil {
		return nil, errors.Unimplemented("round archive is not configured")
	}

	listed, err := o.archive.ListByTable(ctx, rounds.ListByTableInput{TableID: input.TableID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list rounds for table %s", input.TableID)
	}

	return &ListRoundsOutput{Rounds: listed.Rounds}, nil
}

// archiveRound saves the round when an archive is configured. A failed
// save is logged and does not fail the vote.
func (o *orchestrator) archiveRound(ctx context.Context, tableID string, s *dealer.Session, out *ResolveVoteOutput) string {
	if o.archive == nil {
		return ""
	}

	round := &rounds.Round{
		ID:                 o.roundIDs.Generate(),
		TableID:            tableID,
		PlayerCount:        s.PlayerCount,
		InitialPlayerCards: s.InitialPlayerCards,
		FinalPlayerCards:   s.PlayerCards,
		CenterCards:        s.CenterCards,
		Executed:           out.Executed,
		IsTie:              out.IsTie,
		Result:             *out.Result,
		History:            s.History,
	}

	saved, err := o.archive.Save(ctx, rounds.SaveInput{Round: round, TTL: o.roundTTL})
	if err != nil {
		slog.Warn("failed to archive round",
			"table_id", tableID,
			"round_id", round.ID,
			"error", err)
		return ""
	}

	return saved.Round.ID
}

// withTable runs fn against the table's dealer while holding its lock
func (o *orchestrator) withTable(ctx context.Context, id string, fn func(d *dealer.Dealer) error) (*tables.Table, error) {
	if id == "" {
		return nil, errors.InvalidArgument("table ID is required")
	}

	got, err := o.tableRepo.Get(ctx, &tables.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get table %s", id)
	}

	if err := got.Table.Do(fn); err != nil {
		return nil, err
	}
	return got.Table, nil
}

func normalize(tokens []string) []roles.Role {
	out := make([]roles.Role, len(tokens))
	for i, t := range tokens {
		out[i] = roles.Role(roles.Normalize(t))
	}
	return out
}
