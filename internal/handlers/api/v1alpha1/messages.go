package v1alpha1

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/onenight-api/internal/dealer"
	"github.com/KirkDiggler/onenight-api/internal/errors"
	"github.com/KirkDiggler/onenight-api/internal/repositories/rounds"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

// Request fields. Seats and center cards are zero based.

type tableRequest struct {
	TableID string `json:"table_id"`
}

type createTableRequest struct {
	Pool          []string `json:"pool"`
	Selected      []string `json:"selected"`
	WerewolfCount int      `json:"werewolf_count"`
	PlayerCount   int      `json:"player_count"`
	Mode          string   `json:"mode"`
	// Seed travels as a JSON number, so only values below 2^53 survive
	Seed *uint64 `json:"seed"`
}

type viewCardRequest struct {
	TableID string `json:"table_id"`
	Seat    int    `json:"seat"`
}

type swapPlayersRequest struct {
	TableID string `json:"table_id"`
	SeatA   int    `json:"seat_a"`
	SeatB   int    `json:"seat_b"`
}

type swapCenterRequest struct {
	TableID string `json:"table_id"`
	Seat    int    `json:"seat"`
	Center  int    `json:"center"`
}

type copyRoleRequest struct {
	TableID          string `json:"table_id"`
	DoppelgangerSeat int    `json:"doppelganger_seat"`
	TargetSeat       int    `json:"target_seat"`
}

type nightChoices struct {
	WerewolfCenter      *int  `json:"werewolf_center"`
	SeerPlayer          *int  `json:"seer_player"`
	SeerCenters         []int `json:"seer_centers"`
	RobberTarget        *int  `json:"robber_target"`
	TroublemakerTargets []int `json:"troublemaker_targets"`
	DrunkCenter         *int  `json:"drunk_center"`
}

type runNightRequest struct {
	TableID string        `json:"table_id"`
	Choices *nightChoices `json:"choices"`
}

type resolveVoteRequest struct {
	TableID string `json:"table_id"`
	// Votes maps voter seat to voted seat
	Votes    map[int]int `json:"votes"`
	Executed []int       `json:"executed"`
	IsTie    bool        `json:"is_tie"`
}

// Responses

type createTableResponse struct {
	TableID string       `json:"table_id"`
	Deal    *dealer.Deal `json:"deal"`
}

type dealResponse struct {
	Deal *dealer.Deal `json:"deal"`
}

type getTableResponse struct {
	TableID   string          `json:"table_id"`
	CreatedAt time.Time       `json:"created_at"`
	Session   *dealer.Session `json:"session"`
}

type viewCardResponse struct {
	Role        roles.Role `json:"role"`
	DisplayName string     `json:"display_name"`
}

type advanceTurnResponse struct {
	TurnIndex int `json:"turn_index"`
}

type nightStepsResponse struct {
	Steps []dealer.NightStep `json:"steps"`
}

type copyRoleResponse struct {
	Role roles.Role `json:"role"`
}

type runNightResponse struct {
	Log []dealer.NightLogEntry `json:"log"`
}

type resolveVoteResponse struct {
	Executed []int                 `json:"executed"`
	IsTie    bool                  `json:"is_tie"`
	Result   *dealer.VictoryResult `json:"result"`
	Winner   string                `json:"winner"`
	RoundID  string                `json:"round_id,omitempty"`
}

type listRoundsResponse struct {
	Rounds []*rounds.Round `json:"rounds"`
}

type emptyResponse struct{}

// decode reads a Struct request into a wire message
func decode(req *structpb.Struct, into any) error {
	if req == nil {
		return nil
	}
	raw, err := protojson.Marshal(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request")
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

// encode turns a wire message into a Struct response
func encode(from any) (*structpb.Struct, error) {
	raw, err := json.Marshal(from)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

func (c *nightChoices) toDealer() *dealer.NightChoices {
	if c == nil {
		return nil
	}
	return &dealer.NightChoices{
		WerewolfCenter:      c.WerewolfCenter,
		SeerPlayer:          c.SeerPlayer,
		SeerCenters:         c.SeerCenters,
		RobberTarget:        c.RobberTarget,
		TroublemakerTargets: c.TroublemakerTargets,
		DrunkCenter:         c.DrunkCenter,
	}
}
