// Package v1alpha1 serves the table service over gRPC
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/onenight-api/internal/errors"
	"github.com/KirkDiggler/onenight-api/internal/orchestrators/table"
)

// TableHandlerConfig holds dependencies for the table handler
type TableHandlerConfig struct {
	TableService table.Service
}

// Validate ensures all required dependencies are present
func (c *TableHandlerConfig) Validate() error {
	if c.TableService == nil {
		return errors.InvalidArgument("table service is required")
	}
	return nil
}

// TableHandler implements TableServiceServer
type TableHandler struct {
	tableService table.Service
}

var _ TableServiceServer = (*TableHandler)(nil)

// NewTableHandler creates a new table handler with the given configuration
func NewTableHandler(cfg *TableHandlerConfig) (*TableHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &TableHandler{
		tableService: cfg.TableService,
	}, nil
}

// respond encodes a successful result or converts err for the wire
func respond(from any, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	out, err := encode(from)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// CreateTable opens a table from a pool, a role selection or a preset
func (h *TableHandler) CreateTable(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in createTableRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tableService.CreateTable(ctx, &table.CreateTableInput{
		Pool:          in.Pool,
		Selected:      in.Selected,
		WerewolfCount: in.WerewolfCount,
		PlayerCount:   in.PlayerCount,
		Mode:          in.Mode,
		Seed:          in.Seed,
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(createTableResponse{TableID: out.TableID, Deal: out.Deal}, nil)
}

// Redeal shuffles the table's pool again
func (h *TableHandler) Redeal(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in tableRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tableService.Redeal(ctx, &table.RedealInput{TableID: in.TableID})
	if err != nil {
		return respond(nil, err)
	}

	return respond(dealResponse{Deal: out.Deal}, nil)
}

// GetTable returns the table's full session
func (h *TableHandler) GetTable(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in tableRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tableService.GetTable(ctx, &table.GetTableInput{TableID: in.TableID})
	if err != nil {
		return respond(nil, err)
	}

	return respond(getTableResponse{TableID: out.TableID, CreatedAt: out.CreatedAt, Session: out.Session}, nil)
}

// DeleteTable closes a table
func (h *TableHandler) DeleteTable(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in tableRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	_, err := h.tableService.DeleteTable(ctx, &table.DeleteTableInput{TableID: in.TableID})
	return respond(emptyResponse{}, err)
}

// ViewCard shows a seat its card once
func (h *TableHandler) ViewCard(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in viewCardRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tableService.ViewCard(ctx, &table.ViewCardInput{TableID: in.TableID, Seat: in.Seat})
	if err != nil {
		return respond(nil, err)
	}

	return respond(viewCardResponse{Role: out.Role, DisplayName: out.DisplayName}, nil)
}

// SwapPlayers exchanges two seats' cards
func (h *TableHandler) SwapPlayers(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in swapPlayersRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	_, err := h.tableService.SwapPlayers(ctx, &table.SwapPlayersInput{
		TableID: in.TableID,
		SeatA:   in.SeatA,
		SeatB:   in.SeatB,
	})
	return respond(emptyResponse{}, err)
}

// SwapCenter exchanges a seat's card with a center card
func (h *TableHandler) SwapCenter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in swapCenterRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	_, err := h.tableService.SwapCenter(ctx, &table.SwapCenterInput{
		TableID: in.TableID,
		Seat:    in.Seat,
		Center:  in.Center,
	})
	return respond(emptyResponse{}, err)
}

// EndNight closes the action phase
func (h *TableHandler) EndNight(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in tableRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	_, err := h.tableService.EndNight(ctx, &table.EndNightInput{TableID: in.TableID})
	return respond(emptyResponse{}, err)
}

// AdvanceTurn moves the turn cursor
func (h *TableHandler) AdvanceTurn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in tableRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tableService.AdvanceTurn(ctx, &table.AdvanceTurnInput{TableID: in.TableID})
	if err != nil {
		return respond(nil, err)
	}

	return respond(advanceTurnResponse{TurnIndex: out.TurnIndex}, nil)
}

// GetNightSteps returns the wake order
func (h *TableHandler) GetNightSteps(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in tableRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tableService.GetNightSteps(ctx, &table.GetNightStepsInput{TableID: in.TableID})
	if err != nil {
		return respond(nil, err)
	}

	return respond(nightStepsResponse{Steps: out.Steps}, nil)
}

// CopyRole resolves the doppelganger's copy
func (h *TableHandler) CopyRole(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in copyRoleRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tableService.CopyRole(ctx, &table.CopyRoleInput{
		TableID:          in.TableID,
		DoppelgangerSeat: in.DoppelgangerSeat,
		TargetSeat:       in.TargetSeat,
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(copyRoleResponse{Role: out.Role}, nil)
}

// RunNight plays the night without a narrator
func (h *TableHandler) RunNight(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in runNightRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tableService.RunNight(ctx, &table.RunNightInput{
		TableID: in.TableID,
		Choices: in.Choices.toDealer(),
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(runNightResponse{Log: out.Log}, nil)
}

// ResolveVote ends the round and names the winner
func (h *TableHandler) ResolveVote(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in resolveVoteRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tableService.ResolveVote(ctx, &table.ResolveVoteInput{
		TableID:  in.TableID,
		Votes:    in.Votes,
		Executed: in.Executed,
		IsTie:    in.IsTie,
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(resolveVoteResponse{
		Executed: out.Executed,
		IsTie:    out.IsTie,
		Result:   out.Result,
		Winner:   out.Result.Winner(),
		RoundID:  out.RoundID,
	}, nil)
}

// ListRounds returns the table's archived rounds
func (h *TableHandler) ListRounds(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in tableRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tableService.ListRounds(ctx, &table.ListRoundsInput{TableID: in.TableID})
	if err != nil {
		return respond(nil, err)
	}

	return respond(listRoundsResponse{Rounds: out.Rounds}, nil)
}
