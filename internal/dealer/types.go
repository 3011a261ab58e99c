package dealer

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/onenight-api/internal/roles"
)

// Table sizes
const (
	MinPlayers  = 4
	MaxPlayers  = 12
	CenterCards = 3
	// MinPoolSize is the shortest pool that can describe any table at all
	MinPoolSize = 6
)

// CardKind tells seats and center slots apart
type CardKind string

// Card kinds
const (
	KindSeat   CardKind = "seat"
	KindCenter CardKind = "center"
)

// CardRef points at one card position on the table
type CardRef struct {
	Kind  CardKind `json:"kind"`
	Index int      `json:"index"`
}

var _ core.Entity = CardRef{}

// Seat refers to a player's card
func Seat(i int) CardRef { return CardRef{Kind: KindSeat, Index: i} }

// Center refers to a center card
func Center(i int) CardRef { return CardRef{Kind: KindCenter, Index: i} }

// GetID returns an identifier such as seat-3 or center-1
func (c CardRef) GetID() string {
	return fmt.Sprintf("%s-%d", c.Kind, c.Index)
}

// GetType returns the card kind
func (c CardRef) GetType() string {
	return string(c.Kind)
}

// EntityIDs lists the identifiers of entities in order
func EntityIDs[E core.Entity](entities ...E) []string {
	ids := make([]string, len(entities))
	for i, e := range entities {
		ids[i] = e.GetID()
	}
	return ids
}

// Action names a history entry
type Action string

// History actions
const (
	ActionView Action = "view"
	ActionSwap Action = "swap"
	ActionCopy Action = "copy"
)

// HistoryEntry records one operation against the session
type HistoryEntry struct {
	Action Action    `json:"action"`
	Cards  []CardRef `json:"cards"`
	At     time.Time `json:"at"`
}

// Session is the state of one dealt round
type Session struct {
	PlayerCount        int            `json:"player_count"`
	PlayerCards        []roles.Role   `json:"player_cards"`
	CenterCards        []roles.Role   `json:"center_cards"`
	InitialPlayerCards []roles.Role   `json:"initial_player_cards"`
	Viewed             []bool         `json:"viewed"`
	TurnIndex          int            `json:"turn_index"`
	ActionPhase        bool           `json:"action_phase"`
	History            []HistoryEntry `json:"history"`
}

func (s *Session) clone() *Session {
	out := &Session{
		PlayerCount:        s.PlayerCount,
		PlayerCards:        cloneRoles(s.PlayerCards),
		CenterCards:        cloneRoles(s.CenterCards),
		InitialPlayerCards: cloneRoles(s.InitialPlayerCards),
		Viewed:             make([]bool, len(s.Viewed)),
		TurnIndex:          s.TurnIndex,
		ActionPhase:        s.ActionPhase,
		History:            make([]HistoryEntry, len(s.History)),
	}
	copy(out.Viewed, s.Viewed)
	for i, h := range s.History {
		cards := make([]CardRef, len(h.Cards))
		copy(cards, h.Cards)
		out.History[i] = HistoryEntry{Action: h.Action, Cards: cards, At: h.At}
	}
	return out
}

func (s *Session) record(action Action, at time.Time, cards ...CardRef) {
	s.History = append(s.History, HistoryEntry{Action: action, Cards: cards, At: at})
}

func (s *Session) swapPlayers(i, j int, at time.Time) {
	s.PlayerCards[i], s.PlayerCards[j] = s.PlayerCards[j], s.PlayerCards[i]
	s.record(ActionSwap, at, Seat(i), Seat(j))
}

func (s *Session) swapCenter(seat, center int, at time.Time) {
	s.PlayerCards[seat], s.CenterCards[center] = s.CenterCards[center], s.PlayerCards[seat]
	s.record(ActionSwap, at, Seat(seat), Center(center))
}

// seatsHolding returns the seats whose current card normalizes to r
func (s *Session) seatsHolding(r roles.Role) []int {
	var seats []int
	for i, card := range s.PlayerCards {
		if roles.Of(card) == r {
			seats = append(seats, i)
		}
	}
	return seats
}

// Deal is the result of a shuffle: seat cards then center cards
type Deal struct {
	PlayerCards []roles.Role `json:"player_cards"`
	CenterCards []roles.Role `json:"center_cards"`
}

// NightStep is one role's turn during the night
type NightStep struct {
	Role    roles.Role `json:"role"`
	Players []int      `json:"players"`
}

// VictoryResult says which side won. Exactly one field is true.
type VictoryResult struct {
	Good   bool `json:"good"`
	Wolf   bool `json:"wolf"`
	Tanner bool `json:"tanner"`
}

// Winner names the winning side
func (v *VictoryResult) Winner() string {
	switch {
	case v.Good:
		return "good"
	case v.Tanner:
		return "tanner"
	case v.Wolf:
		return "wolf"
	default:
		return ""
	}
}

func cloneRoles(in []roles.Role) []roles.Role {
	out := make([]roles.Role, len(in))
	copy(out, in)
	return out
}
