package dealer_test

import (
	"bytes"

	"github.com/KirkDiggler/onenight-api/internal/dealer"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

func (s *DealerTestSuite) TestWriteDeal() {
	deal := s.start(fourPlayers())

	var buf bytes.Buffer
	s.Require().NoError(dealer.WriteDeal(&buf, deal))

	s.Assert().Equal(
		"player,1,werewolf\n"+
			"player,2,seer\n"+
			"player,3,robber\n"+
			"player,4,troublemaker\n"+
			"center,1,villager\n"+
			"center,2,tanner\n"+
			"center,3,drunk\n",
		buf.String())
}

func (s *DealerTestSuite) TestWriteDealKeepsCustomTokens() {
	var buf bytes.Buffer
	err := dealer.WriteDeal(&buf, &dealer.Deal{
		PlayerCards: []roles.Role{"alpha, wolf"},
		CenterCards: []roles.Role{"狼人"},
	})
	s.Require().NoError(err)
	s.Assert().Equal("player,1,\"alpha, wolf\"\ncenter,1,狼人\n", buf.String())

	s.Assert().Error(dealer.WriteDeal(&buf, nil))
}
