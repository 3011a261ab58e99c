package dealer

import (
	"github.com/KirkDiggler/onenight-api/internal/errors"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

// NightSteps lists the roles that wake tonight and the seats that were
// dealt them. Swaps made during the night do not change the answer.
func (d *Dealer) NightSteps() ([]NightStep, error) {
	if d.session == nil {
		return nil, noSession()
	}
	return nightSteps(d.session), nil
}

func nightSteps(s *Session) []NightStep {
	seats := make(map[roles.Role][]int)
	for i, card := range s.InitialPlayerCards {
		r := roles.Of(card)
		seats[r] = append(seats[r], i)
	}

	steps := make([]NightStep, 0, len(seats))
	for _, r := range roles.NightOrder() {
		players := seats[r]
		if len(players) == 0 {
			continue
		}
		// masons wake as a pair or not at all
		if r == roles.Mason && len(players) != 2 {
			continue
		}
		steps = append(steps, NightStep{Role: r, Players: players})
	}
	return steps
}

// CopyRole resolves a doppelganger's look at another seat. It returns the
// target's current card and records the copy. No cards move.
func (d *Dealer) CopyRole(doppelSeat, targetSeat int) (roles.Role, error) {
	s := d.session
	if s == nil {
		return "", noSession()
	}
	if doppelSeat < 0 || doppelSeat >= s.PlayerCount {
		return "", seatOutOfRange(doppelSeat, s.PlayerCount)
	}
	if targetSeat < 0 || targetSeat >= s.PlayerCount {
		return "", seatOutOfRange(targetSeat, s.PlayerCount)
	}
	if roles.Of(s.InitialPlayerCards[doppelSeat]) != roles.Doppelganger {
		return "", invalid(ReasonNotDoppelganger, "seat %d was not dealt the doppelganger", doppelSeat)
	}
	if doppelSeat == targetSeat {
		return "", invalid(ReasonSelfTarget, "doppelganger must copy another seat")
	}
	for _, h := range s.History {
		if h.Action == ActionCopy && len(h.Cards) > 0 && h.Cards[0] == Seat(doppelSeat) {
			return "", errors.AlreadyExistsf("seat %d has already copied a role", doppelSeat).
				WithMeta("seat", doppelSeat)
		}
	}

	s.record(ActionCopy, d.clock.Now(), Seat(doppelSeat), Seat(targetSeat))
	return s.PlayerCards[targetSeat], nil
}
