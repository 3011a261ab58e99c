package dealer_test

import (
	"github.com/KirkDiggler/onenight-api/internal/dealer"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

func (s *DealerTestSuite) TestEvaluateVictory() {
	testCases := []struct {
		name     string
		seats    []roles.Role
		executed []int
		isTie    bool
		expected dealer.VictoryResult
	}{
		{
			name:     "werewolf executed",
			seats:    []roles.Role{roles.Werewolf, roles.Villager, roles.Seer, roles.Robber},
			executed: []int{0},
			expected: dealer.VictoryResult{Good: true},
		},
		{
			name:     "tanner executed with no wolf out",
			seats:    []roles.Role{roles.Villager, roles.Seer, roles.Tanner, roles.Robber},
			executed: []int{2},
			expected: dealer.VictoryResult{Tanner: true},
		},
		{
			name:     "villager executed while a wolf lives",
			seats:    []roles.Role{roles.Seer, roles.Werewolf, roles.Robber, roles.Villager},
			executed: []int{3},
			expected: dealer.VictoryResult{Wolf: true},
		},
		{
			name:     "tie with a wolf out",
			seats:    []roles.Role{roles.Seer, roles.Werewolf, roles.Robber, roles.Villager},
			isTie:    true,
			expected: dealer.VictoryResult{Wolf: true},
		},
		{
			name:     "tie with no wolf and no minion",
			seats:    []roles.Role{roles.Seer, roles.Villager, roles.Robber, roles.Villager},
			isTie:    true,
			expected: dealer.VictoryResult{Good: true},
		},
		{
			name:     "tie with only a minion",
			seats:    []roles.Role{roles.Seer, roles.Minion, roles.Robber, roles.Villager},
			isTie:    true,
			expected: dealer.VictoryResult{Wolf: true},
		},
		{
			name:     "werewolf and tanner both executed",
			seats:    []roles.Role{roles.Tanner, roles.Werewolf, roles.Robber, roles.Villager},
			executed: []int{0, 1},
			expected: dealer.VictoryResult{Good: true},
		},
		{
			name:     "minion executed with no wolf out",
			seats:    []roles.Role{roles.Seer, roles.Minion, roles.Robber, roles.Villager},
			executed: []int{1},
			expected: dealer.VictoryResult{Wolf: true},
		},
		{
			name:     "nobody executed without a tie",
			seats:    []roles.Role{roles.Seer, roles.Villager, roles.Robber, roles.Villager},
			expected: dealer.VictoryResult{Wolf: true},
		},
		{
			name:     "tie ignores executed seats",
			seats:    []roles.Role{roles.Werewolf, roles.Villager, roles.Robber, roles.Villager},
			executed: []int{0},
			isTie:    true,
			expected: dealer.VictoryResult{Wolf: true},
		},
		{
			name:     "card names are normalized",
			seats:    []roles.Role{"狼人", "Villager", "皮匠", "seer"},
			executed: []int{2},
			expected: dealer.VictoryResult{Good: false, Tanner: true},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			pool := append(append([]roles.Role{}, tc.seats...), roles.Villager, roles.Drunk, roles.Insomniac)
			s.start(pool)

			result, err := s.dealer.EvaluateVictory(tc.executed, tc.isTie)
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, *result)
		})
	}
}

func (s *DealerTestSuite) TestEvaluateVictoryUsesCurrentCards() {
	s.start([]roles.Role{
		roles.Werewolf, roles.Villager, roles.Robber, roles.Seer,
		roles.Tanner, roles.Villager, roles.Drunk,
	})

	// the wolf card leaves the table for the center and the tanner comes out
	s.Require().NoError(s.dealer.SwapWithCenter(0, 0))

	result, err := s.dealer.EvaluateVictory([]int{0}, false)
	s.Require().NoError(err)
	s.Assert().Equal(dealer.VictoryResult{Tanner: true}, *result)
	s.Assert().Equal("tanner", result.Winner())

	tie, err := s.dealer.EvaluateVictory(nil, true)
	s.Require().NoError(err)
	s.Assert().Equal("good", tie.Winner())
}

func (s *DealerTestSuite) TestEvaluateVictoryErrors() {
	_, err := s.dealer.EvaluateVictory([]int{0}, false)
	s.Assert().True(dealer.IsStateError(err))

	s.start(fourPlayers())

	_, err = s.dealer.EvaluateVictory([]int{4}, false)
	s.Assert().True(dealer.IsRangeError(err))

	_, err = s.dealer.EvaluateVictory([]int{0, -1}, true)
	s.Assert().True(dealer.IsRangeError(err))
}

func (s *DealerTestSuite) TestTallyVotes() {
	testCases := []struct {
		name     string
		votes    map[int]int
		executed []int
		isTie    bool
	}{
		{
			name:     "clear majority",
			votes:    map[int]int{0: 2, 1: 2, 2: 3, 3: 2},
			executed: []int{2},
		},
		{
			name:     "single vote",
			votes:    map[int]int{0: 1},
			executed: []int{1},
		},
		{
			name:  "two way split",
			votes: map[int]int{0: 1, 1: 0, 2: 3, 3: 2},
			isTie: true,
		},
		{
			name:  "everyone votes for someone different",
			votes: map[int]int{0: 1, 1: 2, 2: 3, 3: 0},
			isTie: true,
		},
		{
			name:  "no votes",
			votes: map[int]int{},
			isTie: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			executed, isTie, err := dealer.TallyVotes(4, tc.votes)
			s.Require().NoError(err)
			s.Assert().Equal(tc.executed, executed)
			s.Assert().Equal(tc.isTie, isTie)
		})
	}
}

func (s *DealerTestSuite) TestTallyVotesRange() {
	_, _, err := dealer.TallyVotes(4, map[int]int{0: 4})
	s.Assert().True(dealer.IsRangeError(err))

	_, _, err = dealer.TallyVotes(4, map[int]int{-1: 0})
	s.Assert().True(dealer.IsRangeError(err))
}
