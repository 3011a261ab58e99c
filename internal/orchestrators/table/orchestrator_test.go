package table_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/onenight-api/internal/dealer"
	"github.com/KirkDiggler/onenight-api/internal/errors"
	"github.com/KirkDiggler/onenight-api/internal/orchestrators/table"
	"github.com/KirkDiggler/onenight-api/internal/pkg/clock"
	"github.com/KirkDiggler/onenight-api/internal/pkg/idgen"
	"github.com/KirkDiggler/onenight-api/internal/presets"
	"github.com/KirkDiggler/onenight-api/internal/repositories/rounds"
	roundsmock "github.com/KirkDiggler/onenight-api/internal/repositories/rounds/mock"
	"github.com/KirkDiggler/onenight-api/internal/repositories/tables"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

// topRoller always rolls the highest face, so shuffles keep the pool order
type topRoller struct{}

func (topRoller) Roll(size int) (int, error) { return size, nil }

func (topRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = size
	}
	return out, nil
}

var testStart = time.Date(2024, 10, 31, 21, 0, 0, 0, time.UTC)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockArchive  *roundsmock.MockRepository
	tableRepo    tables.Repository
	clock        *clock.Manual
	orchestrator table.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockArchive = roundsmock.NewMockRepository(s.ctrl)
	s.tableRepo = tables.NewInMemory(10)
	s.clock = clock.NewManual(testStart)
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = table.NewOrchestrator(s.config())
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) config() *table.Config {
	return &table.Config{
		TableRepo:        s.tableRepo,
		Presets:          presets.Default(),
		IDGenerator:      idgen.NewSequential("table"),
		Clock:            s.clock,
		Roller:           topRoller{},
		RoundArchive:     s.mockArchive,
		RoundIDGenerator: idgen.NewSequential("round"),
		RoundTTL:         time.Hour,
	}
}

// openTable deals werewolf, seer, robber, troublemaker to seats 0..3 and
// villager, tanner, drunk to the center
func (s *OrchestratorTestSuite) openTable() string {
	out, err := s.orchestrator.CreateTable(s.ctx, &table.CreateTableInput{
		Pool: []string{"Werewolf", "seer", "robber", "Trouble Maker", "villager", "tanner", "drunk"},
	})
	s.Require().NoError(err)
	return out.TableID
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresDependencies() {
	cfg := s.config()
	cfg.TableRepo = nil
	_, err := table.NewOrchestrator(cfg)
	s.Assert().True(errors.IsInvalidArgument(err))

	cfg = s.config()
	cfg.Roller = nil
	cfg.Clock = nil
	_, err = table.NewOrchestrator(cfg)
	s.Assert().Error(err)

	_, err = table.NewOrchestrator(nil)
	s.Assert().Error(err)

	cfg = s.config()
	cfg.RoundArchive = nil
	cfg.RoundIDGenerator = nil
	_, err = table.NewOrchestrator(cfg)
	s.Assert().NoError(err)
}

func (s *OrchestratorTestSuite) TestCreateTableFromPool() {
	out, err := s.orchestrator.CreateTable(s.ctx, &table.CreateTableInput{
		Pool: []string{"狼人", "SEER", "robber", "troublemaker", "villager", "tanner", "drunk"},
	})
	s.Require().NoError(err)

	s.Assert().Equal("table_1", out.TableID)
	s.Assert().Equal([]roles.Role{roles.Werewolf, roles.Seer, roles.Robber, roles.Troublemaker}, out.Deal.PlayerCards)
	s.Assert().Equal([]roles.Role{roles.Villager, roles.Tanner, roles.Drunk}, out.Deal.CenterCards)
	s.Assert().Equal(1, s.tableRepo.Count(s.ctx))
}

func (s *OrchestratorTestSuite) TestCreateTableFromSelection() {
	out, err := s.orchestrator.CreateTable(s.ctx, &table.CreateTableInput{
		Selected:      []string{"seer", "robber", "troublemaker", "villager", "drunk"},
		WerewolfCount: 2,
	})
	s.Require().NoError(err)

	s.Assert().Equal([]roles.Role{roles.Werewolf, roles.Werewolf, roles.Seer, roles.Robber}, out.Deal.PlayerCards)
	s.Assert().Equal([]roles.Role{roles.Troublemaker, roles.Villager, roles.Drunk}, out.Deal.CenterCards)
}

func (s *OrchestratorTestSuite) TestCreateTableFromPreset() {
	out, err := s.orchestrator.CreateTable(s.ctx, &table.CreateTableInput{PlayerCount: 4})
	s.Require().NoError(err)

	s.Assert().Equal([]roles.Role{roles.Werewolf, roles.Werewolf, roles.Seer, roles.Robber}, out.Deal.PlayerCards)
	s.Assert().Equal([]roles.Role{roles.Troublemaker, roles.Drunk, roles.Villager}, out.Deal.CenterCards)

	_, err = s.orchestrator.CreateTable(s.ctx, &table.CreateTableInput{PlayerCount: 11})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.CreateTable(s.ctx, &table.CreateTableInput{PlayerCount: 4, Mode: "expert"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateTableNeedsExactlyOneSource() {
	testCases := []struct {
		name  string
		input *table.CreateTableInput
	}{
		{"nothing", &table.CreateTableInput{}},
		{"pool and preset", &table.CreateTableInput{
			Pool:        []string{"werewolf", "seer", "robber", "troublemaker", "villager", "tanner", "drunk"},
			PlayerCount: 4,
		}},
		{"pool and selection", &table.CreateTableInput{
			Pool:     []string{"werewolf"},
			Selected: []string{"seer"},
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.CreateTable(s.ctx, tc.input)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}

	_, err := s.orchestrator.CreateTable(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Zero(s.tableRepo.Count(s.ctx))
}

func (s *OrchestratorTestSuite) TestCreateTableRejectsShortPool() {
	_, err := s.orchestrator.CreateTable(s.ctx, &table.CreateTableInput{
		Pool: []string{"werewolf", "seer", "robber"},
	})
	s.Assert().Equal(dealer.ReasonPoolTooShort, dealer.Reason(err))
	s.Assert().Zero(s.tableRepo.Count(s.ctx))
}

func (s *OrchestratorTestSuite) TestSeededTablesDealAlike() {
	seed := uint64(20241031)
	input := &table.CreateTableInput{PlayerCount: 9, Seed: &seed}

	first, err := s.orchestrator.CreateTable(s.ctx, input)
	s.Require().NoError(err)
	second, err := s.orchestrator.CreateTable(s.ctx, input)
	s.Require().NoError(err)

	s.Assert().NotEqual(first.TableID, second.TableID)
	s.Assert().Equal(first.Deal, second.Deal)
}

func (s *OrchestratorTestSuite) TestUnknownTable() {
	_, err := s.orchestrator.GetTable(s.ctx, &table.GetTableInput{TableID: "table_404"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.orchestrator.ViewCard(s.ctx, &table.ViewCardInput{TableID: ""})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.DeleteTable(s.ctx, &table.DeleteTableInput{TableID: "table_404"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestViewCard() {
	id := s.openTable()

	out, err := s.orchestrator.ViewCard(s.ctx, &table.ViewCardInput{TableID: id, Seat: 0})
	s.Require().NoError(err)
	s.Assert().Equal(roles.Werewolf, out.Role)
	s.Assert().Equal(roles.DisplayName(roles.Werewolf), out.DisplayName)

	_, err = s.orchestrator.ViewCard(s.ctx, &table.ViewCardInput{TableID: id, Seat: 0})
	s.Assert().True(dealer.IsRepeatedActionError(err))

	_, err = s.orchestrator.ViewCard(s.ctx, &table.ViewCardInput{TableID: id, Seat: 4})
	s.Assert().True(dealer.IsRangeError(err))
}

func (s *OrchestratorTestSuite) TestSwapsAndSnapshot() {
	id := s.openTable()

	_, err := s.orchestrator.SwapPlayers(s.ctx, &table.SwapPlayersInput{TableID: id, SeatA: 0, SeatB: 3})
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	_, err = s.orchestrator.SwapCenter(s.ctx, &table.SwapCenterInput{TableID: id, Seat: 1, Center: 2})
	s.Require().NoError(err)

	got, err := s.orchestrator.GetTable(s.ctx, &table.GetTableInput{TableID: id})
	s.Require().NoError(err)
	s.Assert().Equal(id, got.TableID)
	s.Assert().Equal(testStart, got.CreatedAt)
	s.Assert().Equal([]roles.Role{roles.Troublemaker, roles.Drunk, roles.Robber, roles.Werewolf}, got.Session.PlayerCards)
	s.Assert().Equal([]roles.Role{roles.Villager, roles.Tanner, roles.Seer}, got.Session.CenterCards)
	s.Require().Len(got.Session.History, 2)
	s.Assert().Equal(testStart.Add(time.Minute), got.Session.History[1].At)

	_, err = s.orchestrator.EndNight(s.ctx, &table.EndNightInput{TableID: id})
	s.Require().NoError(err)

	_, err = s.orchestrator.SwapPlayers(s.ctx, &table.SwapPlayersInput{TableID: id, SeatA: 0, SeatB: 1})
	s.Assert().True(dealer.IsStateError(err))
}

func (s *OrchestratorTestSuite) TestRedealStartsFreshRound() {
	id := s.openTable()
	_, err := s.orchestrator.SwapPlayers(s.ctx, &table.SwapPlayersInput{TableID: id, SeatA: 0, SeatB: 1})
	s.Require().NoError(err)

	out, err := s.orchestrator.Redeal(s.ctx, &table.RedealInput{TableID: id})
	s.Require().NoError(err)
	s.Assert().Equal([]roles.Role{roles.Werewolf, roles.Seer, roles.Robber, roles.Troublemaker}, out.Deal.PlayerCards)

	got, err := s.orchestrator.GetTable(s.ctx, &table.GetTableInput{TableID: id})
	s.Require().NoError(err)
	s.Assert().Empty(got.Session.History)
	s.Assert().True(got.Session.ActionPhase)
}

func (s *OrchestratorTestSuite) TestAdvanceTurnWraps() {
	id := s.openTable()

	var turn int
	for i := 0; i < 4; i++ {
		out, err := s.orchestrator.AdvanceTurn(s.ctx, &table.AdvanceTurnInput{TableID: id})
		s.Require().NoError(err)
		turn = out.TurnIndex
	}
	s.Assert().Equal(0, turn)
}

func (s *OrchestratorTestSuite) TestNightStepsAndCopyRole() {
	id := s.openTable()

	steps, err := s.orchestrator.GetNightSteps(s.ctx, &table.GetNightStepsInput{TableID: id})
	s.Require().NoError(err)
	s.Assert().Equal([]dealer.NightStep{
		{Role: roles.Werewolf, Players: []int{0}},
		{Role: roles.Seer, Players: []int{1}},
		{Role: roles.Robber, Players: []int{2}},
		{Role: roles.Troublemaker, Players: []int{3}},
	}, steps.Steps)

	_, err = s.orchestrator.CopyRole(s.ctx, &table.CopyRoleInput{TableID: id, DoppelgangerSeat: 0, TargetSeat: 1})
	s.Assert().Equal(dealer.ReasonNotDoppelganger, dealer.Reason(err))
}

func (s *OrchestratorTestSuite) TestCopyRole() {
	out, err := s.orchestrator.CreateTable(s.ctx, &table.CreateTableInput{
		Pool: []string{"doppelganger", "werewolf", "seer", "villager", "tanner", "drunk", "robber"},
	})
	s.Require().NoError(err)

	copied, err := s.orchestrator.CopyRole(s.ctx, &table.CopyRoleInput{TableID: out.TableID, DoppelgangerSeat: 0, TargetSeat: 2})
	s.Require().NoError(err)
	s.Assert().Equal(roles.Seer, copied.Role)
}

func (s *OrchestratorTestSuite) TestRunNight() {
	id := s.openTable()

	out, err := s.orchestrator.RunNight(s.ctx, &table.RunNightInput{
		TableID: id,
		Choices: &dealer.NightChoices{
			WerewolfCenter:      intPtr(1),
			SeerPlayer:          intPtr(0),
			RobberTarget:        intPtr(0),
			TroublemakerTargets: []int{0, 1},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Log, 4)
	s.Assert().Equal([]roles.Role{roles.Tanner}, out.Log[0].Revealed)
	s.Assert().Equal([]roles.Role{roles.Werewolf}, out.Log[2].Revealed)

	got, err := s.orchestrator.GetTable(s.ctx, &table.GetTableInput{TableID: id})
	s.Require().NoError(err)
	s.Assert().Equal([]roles.Role{roles.Seer, roles.Robber, roles.Werewolf, roles.Troublemaker}, got.Session.PlayerCards)

	_, err = s.orchestrator.RunNight(s.ctx, &table.RunNightInput{
		TableID: id,
		Choices: &dealer.NightChoices{RobberTarget: intPtr(2)},
	})
	s.Assert().True(dealer.IsValidationError(err))
}

func (s *OrchestratorTestSuite) TestResolveVoteArchivesRound() {
	id := s.openTable()
	_, err := s.orchestrator.SwapPlayers(s.ctx, &table.SwapPlayersInput{TableID: id, SeatA: 0, SeatB: 1})
	s.Require().NoError(err)

	s.mockArchive.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rounds.SaveInput) (*rounds.SaveOutput, error) {
			s.Assert().Equal(time.Hour, input.TTL)
			r := input.Round
			s.Assert().Equal("round_1", r.ID)
			s.Assert().Equal(id, r.TableID)
			s.Assert().Equal(4, r.PlayerCount)
			s.Assert().Equal([]roles.Role{roles.Werewolf, roles.Seer, roles.Robber, roles.Troublemaker}, r.InitialPlayerCards)
			s.Assert().Equal([]roles.Role{roles.Seer, roles.Werewolf, roles.Robber, roles.Troublemaker}, r.FinalPlayerCards)
			s.Assert().Equal([]int{1}, r.Executed)
			s.Assert().True(r.Result.Good)
			s.Assert().Len(r.History, 1)
			return &rounds.SaveOutput{Round: r}, nil
		})

	out, err := s.orchestrator.ResolveVote(s.ctx, &table.ResolveVoteInput{
		TableID: id,
		Votes:   map[int]int{0: 1, 2: 1, 3: 0},
	})
	s.Require().NoError(err)
	s.Assert().Equal([]int{1}, out.Executed)
	s.Assert().False(out.IsTie)
	s.Assert().Equal("good", out.Result.Winner())
	s.Assert().Equal("round_1", out.RoundID)

	got, err := s.orchestrator.GetTable(s.ctx, &table.GetTableInput{TableID: id})
	s.Require().NoError(err)
	s.Assert().False(got.Session.ActionPhase)
}

func (s *OrchestratorTestSuite) TestResolveVoteTie() {
	id := s.openTable()

	s.mockArchive.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(&rounds.SaveOutput{Round: &rounds.Round{ID: "round_1"}}, nil)

	out, err := s.orchestrator.ResolveVote(s.ctx, &table.ResolveVoteInput{
		TableID: id,
		Votes:   map[int]int{0: 1, 1: 0},
	})
	s.Require().NoError(err)
	s.Assert().Nil(out.Executed)
	s.Assert().True(out.IsTie)
	s.Assert().True(out.Result.Wolf)
}

func (s *OrchestratorTestSuite) TestResolveVoteExplicitExecution() {
	id := s.openTable()

	s.mockArchive.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("archive down"))

	out, err := s.orchestrator.ResolveVote(s.ctx, &table.ResolveVoteInput{
		TableID:  id,
		Executed: []int{2},
	})
	s.Require().NoError(err)
	s.Assert().True(out.Result.Wolf)
	s.Assert().Empty(out.RoundID)
}

func (s *OrchestratorTestSuite) TestResolveVoteRejectsBadBallot() {
	id := s.openTable()

	_, err := s.orchestrator.ResolveVote(s.ctx, &table.ResolveVoteInput{
		TableID: id,
		Votes:   map[int]int{0: 7},
	})
	s.Assert().True(dealer.IsRangeError(err))

	_, err = s.orchestrator.ResolveVote(s.ctx, &table.ResolveVoteInput{
		TableID:  id,
		Executed: []int{-1},
	})
	s.Assert().True(dealer.IsRangeError(err))
}

func (s *OrchestratorTestSuite) TestRejectedVoteKeepsNightOpen() {
	id := s.openTable()

	_, err := s.orchestrator.ResolveVote(s.ctx, &table.ResolveVoteInput{
		TableID:  id,
		Executed: []int{99},
	})
	s.Require().True(dealer.IsRangeError(err))

	_, err = s.orchestrator.ResolveVote(s.ctx, &table.ResolveVoteInput{
		TableID: id,
		Votes:   map[int]int{-1: 0},
	})
	s.Require().True(dealer.IsRangeError(err))

	got, err := s.orchestrator.GetTable(s.ctx, &table.GetTableInput{TableID: id})
	s.Require().NoError(err)
	s.Assert().True(got.Session.ActionPhase)

	_, err = s.orchestrator.SwapPlayers(s.ctx, &table.SwapPlayersInput{TableID: id, SeatA: 0, SeatB: 1})
	s.Assert().NoError(err)
}

func (s *OrchestratorTestSuite) TestResolveVoteNeedsOneOutcomeSource() {
	id := s.openTable()

	testCases := []struct {
		name  string
		input *table.ResolveVoteInput
	}{
		{"votes and executed", &table.ResolveVoteInput{
			TableID:  id,
			Votes:    map[int]int{0: 1, 2: 1},
			Executed: []int{1},
		}},
		{"votes and tie", &table.ResolveVoteInput{
			TableID: id,
			Votes:   map[int]int{0: 1, 1: 0},
			IsTie:   true,
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.ResolveVote(s.ctx, tc.input)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}

	got, err := s.orchestrator.GetTable(s.ctx, &table.GetTableInput{TableID: id})
	s.Require().NoError(err)
	s.Assert().True(got.Session.ActionPhase)
}

func (s *OrchestratorTestSuite) TestResolveVoteWithoutArchive() {
	cfg := s.config()
	cfg.RoundArchive = nil
	o, err := table.NewOrchestrator(cfg)
	s.Require().NoError(err)

	created, err := o.CreateTable(s.ctx, &table.CreateTableInput{PlayerCount: 4})
	s.Require().NoError(err)

	out, err := o.ResolveVote(s.ctx, &table.ResolveVoteInput{TableID: created.TableID, Executed: []int{0}})
	s.Require().NoError(err)
	s.Assert().True(out.Result.Good)
	s.Assert().Empty(out.RoundID)

	_, err = o.ListRounds(s.ctx, &table.ListRoundsInput{TableID: created.TableID})
	s.Assert().Equal(errors.CodeUnimplemented, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestListRounds() {
	s.mockArchive.EXPECT().
		ListByTable(s.ctx, rounds.ListByTableInput{TableID: "table_1"}).
		Return(&rounds.ListByTableOutput{Rounds: []*rounds.Round{{ID: "round_1"}, {ID: "round_2"}}}, nil)

	out, err := s.orchestrator.ListRounds(s.ctx, &table.ListRoundsInput{TableID: "table_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Rounds, 2)
	s.Assert().Equal("round_2", out.Rounds[1].ID)

	_, err = s.orchestrator.ListRounds(s.ctx, &table.ListRoundsInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteTable() {
	id := s.openTable()

	_, err := s.orchestrator.DeleteTable(s.ctx, &table.DeleteTableInput{TableID: id})
	s.Require().NoError(err)

	_, err = s.orchestrator.GetTable(s.ctx, &table.GetTableInput{TableID: id})
	s.Assert().True(errors.IsNotFound(err))
}

func intPtr(v int) *int { return &v }
