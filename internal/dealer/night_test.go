package dealer_test

import (
	"github.com/KirkDiggler/onenight-api/internal/dealer"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

// fullNight seats one of every waking role, in wake order, on eight seats
func fullNight() []roles.Role {
	return []roles.Role{
		roles.Doppelganger, roles.Werewolf, roles.Minion, roles.Seer,
		roles.Robber, roles.Troublemaker, roles.Drunk, roles.Insomniac,
		roles.Villager, roles.Tanner, roles.Hunter,
	}
}

func intPtr(v int) *int { return &v }

func (s *DealerTestSuite) TestNightStepsNeedSession() {
	_, err := s.dealer.NightSteps()
	s.Assert().True(dealer.IsStateError(err))
}

func (s *DealerTestSuite) TestNightStepsFollowWakeOrder() {
	s.start([]roles.Role{
		roles.Insomniac, roles.Werewolf, roles.Seer, roles.Villager, roles.Werewolf, roles.Mason, roles.Mason,
		roles.Drunk, roles.Robber, roles.Minion,
	})

	steps, err := s.dealer.NightSteps()
	s.Require().NoError(err)
	s.Assert().Equal([]dealer.NightStep{
		{Role: roles.Werewolf, Players: []int{1, 4}},
		{Role: roles.Mason, Players: []int{5, 6}},
		{Role: roles.Seer, Players: []int{2}},
		{Role: roles.Insomniac, Players: []int{0}},
	}, steps)
}

func (s *DealerTestSuite) TestNightStepsDropLoneMason() {
	s.start([]roles.Role{
		roles.Mason, roles.Seer, roles.Robber, roles.Villager,
		roles.Mason, roles.Villager, roles.Villager,
	})

	steps, err := s.dealer.NightSteps()
	s.Require().NoError(err)
	for _, step := range steps {
		s.Assert().NotEqual(roles.Mason, step.Role)
	}
	s.Assert().Len(steps, 2)
}

func (s *DealerTestSuite) TestNightStepsNormalizeTokens() {
	s.start([]roles.Role{"狼人", "Seer", "守夜人", "MASON", "alpha wolf", "村民", "村民"})

	steps, err := s.dealer.NightSteps()
	s.Require().NoError(err)
	s.Assert().Equal([]dealer.NightStep{
		{Role: roles.Werewolf, Players: []int{0}},
		{Role: roles.Mason, Players: []int{2, 3}},
		{Role: roles.Seer, Players: []int{1}},
	}, steps)
}

func (s *DealerTestSuite) TestNightStepsIgnoreSwaps() {
	s.start(fullNight())

	before, err := s.dealer.NightSteps()
	s.Require().NoError(err)

	s.Require().NoError(s.dealer.SwapBetweenPlayers(0, 7))
	s.Require().NoError(s.dealer.SwapWithCenter(1, 2))
	s.Require().NoError(s.dealer.SwapBetweenPlayers(3, 4))
	s.Require().NoError(s.dealer.SwapWithCenter(5, 0))

	after, err := s.dealer.NightSteps()
	s.Require().NoError(err)
	s.Assert().Equal(before, after)
	s.Assert().Len(after, 8)
}

func (s *DealerTestSuite) TestCopyRole() {
	s.start(fullNight())
	s.Require().NoError(s.dealer.SwapBetweenPlayers(3, 4))

	copied, err := s.dealer.CopyRole(0, 3)
	s.Require().NoError(err)
	s.Assert().Equal(roles.Robber, copied)

	sess := s.dealer.Session()
	s.Assert().Equal(roles.Doppelganger, sess.PlayerCards[0])
	last := sess.History[len(sess.History)-1]
	s.Assert().Equal(dealer.ActionCopy, last.Action)
	s.Assert().Equal([]dealer.CardRef{dealer.Seat(0), dealer.Seat(3)}, last.Cards)

	_, err = s.dealer.CopyRole(0, 5)
	s.Assert().True(dealer.IsRepeatedActionError(err))
}

func (s *DealerTestSuite) TestCopyRoleErrors() {
	_, err := s.dealer.CopyRole(0, 1)
	s.Assert().True(dealer.IsStateError(err))

	s.start(fullNight())

	_, err = s.dealer.CopyRole(0, 8)
	s.Assert().True(dealer.IsRangeError(err))

	_, err = s.dealer.CopyRole(-1, 2)
	s.Assert().True(dealer.IsRangeError(err))

	_, err = s.dealer.CopyRole(1, 2)
	s.Assert().True(dealer.IsValidationError(err))
	s.Assert().Equal(dealer.ReasonNotDoppelganger, dealer.Reason(err))

	_, err = s.dealer.CopyRole(0, 0)
	s.Assert().Equal(dealer.ReasonSelfTarget, dealer.Reason(err))

	s.Assert().Empty(s.dealer.Session().History)
}

func (s *DealerTestSuite) TestRunNightAutomationWithChoices() {
	s.start(fullNight())

	log, err := s.dealer.RunNightAutomation(&dealer.NightChoices{
		WerewolfCenter:      intPtr(0),
		SeerPlayer:          intPtr(1),
		RobberTarget:        intPtr(2),
		TroublemakerTargets: []int{0, 1},
		DrunkCenter:         intPtr(1),
	})
	s.Require().NoError(err)
	s.Require().Len(log, 8)

	s.Assert().Equal(dealer.LogPlaceholder, log[0].Action)
	s.Assert().Equal(roles.Doppelganger, log[0].Role)

	s.Assert().Equal(dealer.LogPeek, log[1].Action)
	s.Assert().Equal([]dealer.CardRef{dealer.Center(0)}, log[1].Targets)
	s.Assert().Equal([]roles.Role{roles.Villager}, log[1].Revealed)

	s.Assert().Equal(roles.Minion, log[2].Role)
	s.Assert().Equal([]dealer.CardRef{dealer.Seat(1)}, log[2].Targets)

	s.Assert().Equal([]roles.Role{roles.Werewolf}, log[3].Revealed)

	s.Assert().Equal(dealer.LogSwap, log[4].Action)
	s.Assert().Equal([]roles.Role{roles.Minion}, log[4].Revealed)

	s.Assert().Equal([]dealer.CardRef{dealer.Seat(0), dealer.Seat(1)}, log[5].Targets)
	s.Assert().Empty(log[5].Revealed)

	s.Assert().Equal([]dealer.CardRef{dealer.Center(1)}, log[6].Targets)
	s.Assert().Empty(log[6].Revealed)

	s.Assert().Equal([]roles.Role{roles.Insomniac}, log[7].Revealed)

	sess := s.dealer.Session()
	s.Assert().Equal([]roles.Role{
		roles.Werewolf, roles.Doppelganger, roles.Robber, roles.Seer,
		roles.Minion, roles.Troublemaker, roles.Tanner, roles.Insomniac,
	}, sess.PlayerCards)
	s.Assert().Equal([]roles.Role{roles.Villager, roles.Drunk, roles.Hunter}, sess.CenterCards)
	s.Assert().Equal(fullNight()[:8], sess.InitialPlayerCards)

	s.Require().Len(sess.History, 3)
	for _, h := range sess.History {
		s.Assert().Equal(dealer.ActionSwap, h.Action)
	}
}

func (s *DealerTestSuite) TestRunNightAutomationRandomTargets() {
	pool := fullNight()
	s.start(pool)

	log, err := s.dealer.RunNightAutomation(nil)
	s.Require().NoError(err)
	s.Assert().Len(log, 8)

	s.Assert().ElementsMatch(pool, s.allCards())
	s.Assert().Len(s.dealer.Session().History, 3)

	// the seer looked at two different center cards
	s.Require().Len(log[3].Targets, 2)
	s.Assert().NotEqual(log[3].Targets[0], log[3].Targets[1])

	// the robber never robs itself
	s.Assert().NotEqual(dealer.Seat(4), log[4].Targets[0])
}

func (s *DealerTestSuite) TestRunNightAutomationPackOfWolves() {
	s.start([]roles.Role{
		roles.Werewolf, roles.Villager, roles.Werewolf, roles.Mason, roles.Mason, roles.Seer,
		roles.Tanner, roles.Villager, roles.Hunter,
	})

	log, err := s.dealer.RunNightAutomation(&dealer.NightChoices{SeerCenters: []int{0, 2}})
	s.Require().NoError(err)
	s.Require().Len(log, 3)

	s.Assert().Equal(dealer.LogIdentify, log[0].Action)
	s.Assert().Equal([]dealer.CardRef{dealer.Seat(0), dealer.Seat(2)}, log[0].Targets)
	s.Assert().Empty(log[0].Revealed)

	s.Assert().Equal([]dealer.CardRef{dealer.Seat(3), dealer.Seat(4)}, log[1].Targets)

	s.Assert().Equal([]roles.Role{roles.Tanner, roles.Hunter}, log[2].Revealed)
	s.Assert().Empty(s.dealer.Session().History)
}

func (s *DealerTestSuite) TestRunNightAutomationRejectsBadChoices() {
	s.start(fullNight())

	testCases := []struct {
		name    string
		choices *dealer.NightChoices
		check   func(error) bool
	}{
		{"wolf center out of range", &dealer.NightChoices{WerewolfCenter: intPtr(3)}, dealer.IsRangeError},
		{"seer seat out of range", &dealer.NightChoices{SeerPlayer: intPtr(8)}, dealer.IsRangeError},
		{"seer looks at itself", &dealer.NightChoices{SeerPlayer: intPtr(3)}, dealer.IsValidationError},
		{"seer one center", &dealer.NightChoices{SeerCenters: []int{1}}, dealer.IsValidationError},
		{"seer same center twice", &dealer.NightChoices{SeerCenters: []int{1, 1}}, dealer.IsValidationError},
		{"robber robs itself", &dealer.NightChoices{RobberTarget: intPtr(4)}, dealer.IsValidationError},
		{"troublemaker includes itself", &dealer.NightChoices{TroublemakerTargets: []int{5, 1}}, dealer.IsValidationError},
		{"troublemaker same seat twice", &dealer.NightChoices{TroublemakerTargets: []int{1, 1}}, dealer.IsValidationError},
		{"troublemaker seat out of range", &dealer.NightChoices{TroublemakerTargets: []int{1, 9}}, dealer.IsRangeError},
		{"drunk center out of range", &dealer.NightChoices{DrunkCenter: intPtr(-1)}, dealer.IsRangeError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.dealer.RunNightAutomation(tc.choices)
			s.Require().Error(err)
			s.Assert().True(tc.check(err), "unexpected error %v", err)
			s.Assert().Equal(fullNight()[:8], s.dealer.Session().PlayerCards)
			s.Assert().Empty(s.dealer.Session().History)
		})
	}
}

func (s *DealerTestSuite) TestRunNightAutomationIsAllOrNothing() {
	s.start(fullNight())
	// 10 rolls dealt the cards; robber and troublemaker targets are given,
	// so the next roll is the drunk's and it fails
	s.roller.failAfter = s.roller.calls

	_, err := s.dealer.RunNightAutomation(&dealer.NightChoices{
		WerewolfCenter:      intPtr(0),
		SeerPlayer:          intPtr(1),
		RobberTarget:        intPtr(2),
		TroublemakerTargets: []int{0, 1},
	})
	s.Require().Error(err)

	sess := s.dealer.Session()
	s.Assert().Equal(fullNight()[:8], sess.PlayerCards)
	s.Assert().Empty(sess.History)
}

func (s *DealerTestSuite) TestRunNightAutomationStates() {
	_, err := s.dealer.RunNightAutomation(nil)
	s.Assert().True(dealer.IsStateError(err))

	s.start(fullNight())
	s.Require().NoError(s.dealer.EndActionPhase())

	_, err = s.dealer.RunNightAutomation(nil)
	s.Assert().True(dealer.IsStateError(err))
}
