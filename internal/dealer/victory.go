package dealer

import (
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

// TallyVotes counts votes, keyed by voter seat with the voted seat as value.
// A single seat with the most votes is executed. A shared lead or an empty
// ballot is a tie and executes nobody.
func TallyVotes(playerCount int, votes map[int]int) ([]int, bool, error) {
	counts := make(map[int]int, len(votes))
	for voter, target := range votes {
		if voter < 0 || voter >= playerCount {
			return nil, false, seatOutOfRange(voter, playerCount)
		}
		if target < 0 || target >= playerCount {
			return nil, false, seatOutOfRange(target, playerCount)
		}
		counts[target]++
	}
	if len(counts) == 0 {
		return nil, true, nil
	}

	best := 0
	var leaders []int
	for seat, n := range counts {
		switch {
		case n > best:
			best = n
			leaders = []int{seat}
		case n == best:
			leaders = append(leaders, seat)
		}
	}
	if len(leaders) > 1 {
		return nil, true, nil
	}
	return leaders, false, nil
}

// EvaluateVictory decides the round from the cards as they lie now.
//
// On a tie nobody dies, so the wolves win if any wolf card is out, with a
// lone minion standing in for absent werewolves. Otherwise the village wins
// if any executed seat holds a werewolf, the tanner wins if an executed
// seat holds the tanner, and the wolves win in every other case.
func (d *Dealer) EvaluateVictory(executed []int, isTie bool) (*VictoryResult, error) {
	s := d.session
	if s == nil {
		return nil, noSession()
	}
	for _, seat := range executed {
		if seat < 0 || seat >= s.PlayerCount {
			return nil, seatOutOfRange(seat, s.PlayerCount)
		}
	}

	wolfPresent := len(s.seatsHolding(roles.Werewolf)) > 0
	if !wolfPresent && len(s.seatsHolding(roles.Minion)) > 0 {
		wolfPresent = true
	}

	if isTie {
		if wolfPresent {
			return &VictoryResult{Wolf: true}, nil
		}
		return &VictoryResult{Good: true}, nil
	}

	dead := make(map[roles.Role]bool, len(executed))
	for _, seat := range executed {
		dead[roles.Of(s.PlayerCards[seat])] = true
	}
	switch {
	case dead[roles.Werewolf]:
		return &VictoryResult{Good: true}, nil
	case dead[roles.Tanner]:
		return &VictoryResult{Tanner: true}, nil
	default:
		return &VictoryResult{Wolf: true}, nil
	}
}
