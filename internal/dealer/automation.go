package dealer

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/onenight-api/internal/errors"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

// NightChoices carries the targets picked by players for an unattended
// night. Anything left unset is chosen with the dealer's roller.
type NightChoices struct {
	// WerewolfCenter is the center card a lone werewolf peeks at
	WerewolfCenter *int
	// SeerPlayer is the seat the seer looks at. When unset the seer looks
	// at two center cards instead.
	SeerPlayer *int
	// SeerCenters are the two center cards the seer looks at
	SeerCenters []int
	// RobberTarget is the seat the robber steals from
	RobberTarget *int
	// TroublemakerTargets are the two seats the troublemaker exchanges
	TroublemakerTargets []int
	// DrunkCenter is the center card the drunk takes
	DrunkCenter *int
}

// Night log actions
const (
	LogPlaceholder = "placeholder"
	LogPeek        = "peek"
	LogIdentify    = "identify"
	LogSwap        = "swap"
)

// NightLogEntry describes one thing that happened during an unattended night
type NightLogEntry struct {
	Role     roles.Role   `json:"role"`
	Players  []int        `json:"players"`
	Action   string       `json:"action"`
	Targets  []CardRef    `json:"targets,omitempty"`
	Revealed []roles.Role `json:"revealed,omitempty"`
	Message  string       `json:"message"`
}

// RunNightAutomation plays every night step in order against the live
// cards. Swaps are recorded in the session history exactly as the manual
// swap calls would record them. Choices are checked before anything moves,
// and the session is only updated if the whole night succeeds.
func (d *Dealer) RunNightAutomation(choices *NightChoices) ([]NightLogEntry, error) {
	if d.session == nil {
		return nil, noSession()
	}
	if !d.session.ActionPhase {
		return nil, actionPhaseOver()
	}
	if choices == nil {
		choices = &NightChoices{}
	}

	steps := nightSteps(d.session)
	if err := d.validateChoices(steps, choices); err != nil {
		return nil, err
	}

	work := d.session.clone()
	var log []NightLogEntry
	for _, step := range steps {
		entries, err := d.runStep(work, step, choices)
		if err != nil {
			return nil, err
		}
		log = append(log, entries...)
	}

	d.session = work
	return log, nil
}

func (d *Dealer) validateChoices(steps []NightStep, c *NightChoices) error {
	n := d.session.PlayerCount
	checkSeat := func(seat int) error {
		if seat < 0 || seat >= n {
			return seatOutOfRange(seat, n)
		}
		return nil
	}
	checkCenter := func(center int) error {
		if center < 0 || center >= CenterCards {
			return centerOutOfRange(center)
		}
		return nil
	}
	actors := make(map[roles.Role][]int, len(steps))
	for _, step := range steps {
		actors[step.Role] = step.Players
	}

	if c.WerewolfCenter != nil {
		if err := checkCenter(*c.WerewolfCenter); err != nil {
			return err
		}
	}
	if c.SeerPlayer != nil {
		if err := checkSeat(*c.SeerPlayer); err != nil {
			return err
		}
		if contains(actors[roles.Seer], *c.SeerPlayer) {
			return invalid(ReasonSelfTarget, "seer must look at another seat")
		}
	} else if len(c.SeerCenters) > 0 {
		if len(c.SeerCenters) != 2 {
			return invalid(ReasonIncompleteCenterChoice, "seer looks at exactly two center cards, got %d", len(c.SeerCenters))
		}
		for _, center := range c.SeerCenters {
			if err := checkCenter(center); err != nil {
				return err
			}
		}
		if c.SeerCenters[0] == c.SeerCenters[1] {
			return invalid(ReasonDuplicateTarget, "seer must look at two different center cards")
		}
	}
	if c.RobberTarget != nil {
		if err := checkSeat(*c.RobberTarget); err != nil {
			return err
		}
		if contains(actors[roles.Robber], *c.RobberTarget) {
			return invalid(ReasonSelfTarget, "robber must rob another seat")
		}
	}
	if len(c.TroublemakerTargets) > 0 {
		if len(c.TroublemakerTargets) != 2 {
			return invalid(ReasonDuplicateTarget, "troublemaker exchanges exactly two seats, got %d", len(c.TroublemakerTargets))
		}
		for _, seat := range c.TroublemakerTargets {
			if err := checkSeat(seat); err != nil {
				return err
			}
			if contains(actors[roles.Troublemaker], seat) {
				return invalid(ReasonSelfTarget, "troublemaker must exchange two other seats")
			}
		}
		if c.TroublemakerTargets[0] == c.TroublemakerTargets[1] {
			return invalid(ReasonDuplicateTarget, "troublemaker must exchange two different seats")
		}
	}
	if c.DrunkCenter != nil {
		if err := checkCenter(*c.DrunkCenter); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dealer) runStep(s *Session, step NightStep, c *NightChoices) ([]NightLogEntry, error) {
	entry := NightLogEntry{Role: step.Role, Players: step.Players}

	switch step.Role {
	case roles.Doppelganger:
		entry.Action = LogPlaceholder
		entry.Message = "doppelganger copy is resolved through CopyRole"
		return []NightLogEntry{entry}, nil

	case roles.Werewolf:
		if len(step.Players) > 1 {
			entry.Action = LogIdentify
			entry.Targets = seatRefs(step.Players)
			entry.Message = fmt.Sprintf("werewolves see each other at seats %s", seatList(step.Players))
			return []NightLogEntry{entry}, nil
		}
		center, err := d.chooseCenter(c.WerewolfCenter)
		if err != nil {
			return nil, err
		}
		entry.Action = LogPeek
		entry.Targets = []CardRef{Center(center)}
		entry.Revealed = []roles.Role{s.CenterCards[center]}
		entry.Message = fmt.Sprintf("lone werewolf peeks at center %d", center)
		return []NightLogEntry{entry}, nil

	case roles.Minion:
		wolves := s.seatsHolding(roles.Werewolf)
		entry.Action = LogIdentify
		entry.Targets = seatRefs(wolves)
		if len(wolves) == 0 {
			entry.Message = "minion sees no werewolves"
		} else {
			entry.Message = fmt.Sprintf("minion sees werewolves at seats %s", seatList(wolves))
		}
		return []NightLogEntry{entry}, nil

	case roles.Mason:
		entry.Action = LogIdentify
		entry.Targets = seatRefs(step.Players)
		entry.Message = fmt.Sprintf("masons see each other at seats %s", seatList(step.Players))
		return []NightLogEntry{entry}, nil

	case roles.Seer:
		entry.Action = LogPeek
		if c.SeerPlayer != nil {
			seat := *c.SeerPlayer
			entry.Targets = []CardRef{Seat(seat)}
			entry.Revealed = []roles.Role{s.PlayerCards[seat]}
			entry.Message = fmt.Sprintf("seer looks at seat %d", seat)
			return []NightLogEntry{entry}, nil
		}
		centers := c.SeerCenters
		if len(centers) == 0 {
			var err error
			if centers, err = d.twoCenters(); err != nil {
				return nil, err
			}
		}
		for _, center := range centers {
			entry.Targets = append(entry.Targets, Center(center))
			entry.Revealed = append(entry.Revealed, s.CenterCards[center])
		}
		entry.Message = fmt.Sprintf("seer looks at center %d and %d", centers[0], centers[1])
		return []NightLogEntry{entry}, nil

	case roles.Robber:
		var out []NightLogEntry
		for _, robber := range step.Players {
			target, err := d.chooseOtherSeat(s.PlayerCount, c.RobberTarget, robber)
			if err != nil {
				return nil, err
			}
			s.swapPlayers(robber, target, d.clock.Now())
			out = append(out, NightLogEntry{
				Role:     step.Role,
				Players:  []int{robber},
				Action:   LogSwap,
				Targets:  []CardRef{Seat(target)},
				Revealed: []roles.Role{s.PlayerCards[robber]},
				Message:  fmt.Sprintf("robber at seat %d takes the card from seat %d", robber, target),
			})
		}
		return out, nil

	case roles.Troublemaker:
		var out []NightLogEntry
		for _, tm := range step.Players {
			a, b, err := d.chooseTwoOtherSeats(s.PlayerCount, c.TroublemakerTargets, tm)
			if err != nil {
				return nil, err
			}
			s.swapPlayers(a, b, d.clock.Now())
			out = append(out, NightLogEntry{
				Role:    step.Role,
				Players: []int{tm},
				Action:  LogSwap,
				Targets: []CardRef{Seat(a), Seat(b)},
				Message: fmt.Sprintf("troublemaker exchanges seats %d and %d", a, b),
			})
		}
		return out, nil

	case roles.Drunk:
		var out []NightLogEntry
		for _, drunk := range step.Players {
			center, err := d.chooseCenter(c.DrunkCenter)
			if err != nil {
				return nil, err
			}
			s.swapCenter(drunk, center, d.clock.Now())
			out = append(out, NightLogEntry{
				Role:    step.Role,
				Players: []int{drunk},
				Action:  LogSwap,
				Targets: []CardRef{Center(center)},
				Message: fmt.Sprintf("drunk at seat %d takes center %d without looking", drunk, center),
			})
		}
		return out, nil

	case roles.Insomniac:
		var out []NightLogEntry
		for _, seat := range step.Players {
			out = append(out, NightLogEntry{
				Role:     step.Role,
				Players:  []int{seat},
				Action:   LogPeek,
				Targets:  []CardRef{Seat(seat)},
				Revealed: []roles.Role{s.PlayerCards[seat]},
				Message:  fmt.Sprintf("insomniac at seat %d checks their card", seat),
			})
		}
		return out, nil

	default:
		return nil, errors.Internalf("no night action for %s", step.Role).
			WithMeta("role", string(step.Role))
	}
}

func (d *Dealer) chooseCenter(chosen *int) (int, error) {
	if chosen != nil {
		return *chosen, nil
	}
	return d.pick(CenterCards)
}

func (d *Dealer) twoCenters() ([]int, error) {
	first, err := d.pick(CenterCards)
	if err != nil {
		return nil, err
	}
	second, err := d.pick(CenterCards - 1)
	if err != nil {
		return nil, err
	}
	if second >= first {
		second++
	}
	return []int{first, second}, nil
}

// chooseOtherSeat returns chosen, or a random seat other than self
func (d *Dealer) chooseOtherSeat(playerCount int, chosen *int, self int) (int, error) {
	if chosen != nil {
		return *chosen, nil
	}
	seat, err := d.pick(playerCount - 1)
	if err != nil {
		return 0, err
	}
	if seat >= self {
		seat++
	}
	return seat, nil
}

func (d *Dealer) chooseTwoOtherSeats(playerCount int, chosen []int, self int) (int, int, error) {
	if len(chosen) == 2 {
		return chosen[0], chosen[1], nil
	}
	others := make([]int, 0, playerCount-1)
	for i := 0; i < playerCount; i++ {
		if i != self {
			others = append(others, i)
		}
	}
	first, err := d.pick(len(others))
	if err != nil {
		return 0, 0, err
	}
	a := others[first]
	others = append(others[:first], others[first+1:]...)
	second, err := d.pick(len(others))
	if err != nil {
		return 0, 0, err
	}
	return a, others[second], nil
}

func seatRefs(seats []int) []CardRef {
	out := make([]CardRef, len(seats))
	for i, s := range seats {
		out[i] = Seat(s)
	}
	return out
}

func seatList(seats []int) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, ", ")
}

func contains(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}
