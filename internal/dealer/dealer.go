package dealer

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/onenight-api/internal/errors"
	"github.com/KirkDiggler/onenight-api/internal/pkg/clock"
	"github.com/KirkDiggler/onenight-api/internal/presets"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

// Config holds the dependencies for a Dealer
type Config struct {
	Roller dice.Roller
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Dealer shuffles pools and runs one session at a time
type Dealer struct {
	roller  dice.Roller
	clock   clock.Clock
	pool    []roles.Role
	session *Session
}

// New creates a Dealer with no session
func New(cfg *Config) (*Dealer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Dealer{
		roller: cfg.Roller,
		clock:  cfg.Clock,
	}, nil
}

// AssemblePool builds a pool from werewolfCount werewolves followed by each
// selected role once. Mason always contributes a pair.
func AssemblePool(selected []roles.Role, werewolfCount int) []roles.Role {
	if werewolfCount < 0 {
		werewolfCount = 0
	}
	pool := make([]roles.Role, 0, werewolfCount+len(selected)+1)
	for i := 0; i < werewolfCount; i++ {
		pool = append(pool, roles.Werewolf)
	}
	for _, r := range selected {
		pool = append(pool, r)
		if roles.Of(r) == roles.Mason {
			pool = append(pool, r)
		}
	}
	return pool
}

// StartGameWithSelection shuffles pool and deals it. The last three cards
// go to the center. Any previous session is discarded.
func (d *Dealer) StartGameWithSelection(pool []roles.Role) (*Deal, error) {
	if len(pool) < MinPoolSize {
		return nil, invalid(ReasonPoolTooShort,
			"pool has %d cards, need at least %d", len(pool), MinPoolSize)
	}
	playerCount := len(pool) - CenterCards
	if playerCount < MinPlayers || playerCount > MaxPlayers {
		return nil, invalid(ReasonPlayerCountOutOfRange,
			"pool of %d cards seats %d players, need %d to %d", len(pool), playerCount, MinPlayers, MaxPlayers)
	}

	shuffled := cloneRoles(pool)
	if err := d.shuffle(shuffled); err != nil {
		return nil, err
	}

	d.pool = cloneRoles(pool)
	d.session = &Session{
		PlayerCount:        playerCount,
		PlayerCards:        cloneRoles(shuffled[:playerCount]),
		CenterCards:        cloneRoles(shuffled[playerCount:]),
		InitialPlayerCards: cloneRoles(shuffled[:playerCount]),
		Viewed:             make([]bool, playerCount),
		ActionPhase:        true,
		History:            []HistoryEntry{},
	}

	return d.currentDeal(), nil
}

// Redeal shuffles the pool of the current session again
func (d *Dealer) Redeal() (*Deal, error) {
	if d.session == nil {
		return nil, noSession()
	}
	return d.StartGameWithSelection(d.pool)
}

// Deal draws playerCount+3 cards from a preset pool and starts with them
func (d *Dealer) Deal(table *presets.Table, playerCount int, mode string) (*Deal, error) {
	if table == nil {
		return nil, errors.InvalidArgument("preset table is required")
	}
	pool, err := table.Pool(playerCount, mode)
	if err != nil {
		return nil, err
	}
	required := playerCount + CenterCards
	if len(pool) < required {
		return nil, invalid(ReasonPresetPoolTooShort,
			"preset for %d players in mode %q has %d cards, need %d", playerCount, mode, len(pool), required)
	}

	if err := d.shuffle(pool); err != nil {
		return nil, err
	}
	return d.StartGameWithSelection(pool[:required])
}

// Session returns a deep copy of the current session, or nil
func (d *Dealer) Session() *Session {
	if d.session == nil {
		return nil
	}
	return d.session.clone()
}

// ViewCard reveals a seat's current card. Each seat may look once.
func (d *Dealer) ViewCard(seat int) (roles.Role, error) {
	s := d.session
	if s == nil {
		return "", noSession()
	}
	if seat < 0 || seat >= s.PlayerCount {
		return "", seatOutOfRange(seat, s.PlayerCount)
	}
	if s.Viewed[seat] {
		return "", errors.AlreadyExistsf("seat %d has already viewed its card", seat).
			WithMeta("seat", seat)
	}

	s.Viewed[seat] = true
	s.record(ActionView, d.clock.Now(), Seat(seat))
	return s.PlayerCards[seat], nil
}

// SwapBetweenPlayers exchanges the cards at seats i and j
func (d *Dealer) SwapBetweenPlayers(i, j int) error {
	s := d.session
	if s == nil {
		return noSession()
	}
	if i < 0 || i >= s.PlayerCount {
		return seatOutOfRange(i, s.PlayerCount)
	}
	if j < 0 || j >= s.PlayerCount {
		return seatOutOfRange(j, s.PlayerCount)
	}
	if !s.ActionPhase {
		return actionPhaseOver()
	}

	s.swapPlayers(i, j, d.clock.Now())
	return nil
}

// SwapWithCenter exchanges a seat's card with a center card
func (d *Dealer) SwapWithCenter(seat, center int) error {
	s := d.session
	if s == nil {
		return noSession()
	}
	if seat < 0 || seat >= s.PlayerCount {
		return seatOutOfRange(seat, s.PlayerCount)
	}
	if center < 0 || center >= CenterCards {
		return centerOutOfRange(center)
	}
	if !s.ActionPhase {
		return actionPhaseOver()
	}

	s.swapCenter(seat, center, d.clock.Now())
	return nil
}

// EndActionPhase closes the night. Later swaps fail.
func (d *Dealer) EndActionPhase() error {
	if d.session == nil {
		return noSession()
	}
	d.session.ActionPhase = false
	return nil
}

// AdvanceTurn moves the round-robin cursor to the next seat and returns it
func (d *Dealer) AdvanceTurn() (int, error) {
	s := d.session
	if s == nil {
		return 0, noSession()
	}
	s.TurnIndex = (s.TurnIndex + 1) % s.PlayerCount
	return s.TurnIndex, nil
}

func (d *Dealer) currentDeal() *Deal {
	return &Deal{
		PlayerCards: cloneRoles(d.session.PlayerCards),
		CenterCards: cloneRoles(d.session.CenterCards),
	}
}

// shuffle is Fisher-Yates driven by the roller
func (d *Dealer) shuffle(cards []roles.Role) error {
	for i := len(cards) - 1; i > 0; i-- {
		j, err := d.pick(i + 1)
		if err != nil {
			return err
		}
		cards[i], cards[j] = cards[j], cards[i]
	}
	return nil
}

// pick returns a value in [0, n)
func (d *Dealer) pick(n int) (int, error) {
	roll, err := d.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	if roll < 1 || roll > n {
		return 0, errors.Internalf("roller returned %d for a d%d", roll, n)
	}
	return roll - 1, nil
}
