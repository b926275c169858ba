package game

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dtownsend/battleword/internal/dependencies/mocks"
	"github.com/dtownsend/battleword/internal/model"
	"github.com/dtownsend/battleword/internal/services/judge"
	"github.com/dtownsend/battleword/internal/storage/memory"
	"github.com/dtownsend/battleword/internal/testutil"
)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (ws wordSet) IsValidWord(word string) bool {
	_, ok := ws[word]
	return ok
}

type ControllerSuite struct {
	suite.Suite
	controller *Controller
	store      *memory.Storage
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	dict := newWordSet("AT", "TO", "CAT", "FAT", "FOLK", "JOLLY", "MOAT")
	logger := testutil.NopLogger()
	s.store = memory.New()
	s.ctx = context.Background()
	s.controller = NewController(
		s.store,
		judge.New(dict, logger),
		mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		mocks.NewMockRandom(),
		logger,
	)
}

// startGame creates a game and pins its board and racks to a known
// scenario. Memory storage hands back the same pointer, so mutating the
// returned game is enough.
func (s *ControllerSuite) startGame(boardText string, roots []model.Coordinate, racks [][]rune) *model.Game {
	game, err := s.controller.CreateGame(s.ctx, []string{"alice", "bob"}, 5, 5)
	s.Require().NoError(err)

	board, err := model.ParseBoard(boardText, roots,
		[]model.Direction{model.DirectionNorth, model.DirectionSouth})
	s.Require().NoError(err)

	game.Board = board
	game.Hands = &model.Hands{Racks: racks}
	game.Bag = &model.Bag{}
	return game
}

func emptyBoard(w, h int) string {
	row := strings.TrimSpace(strings.Repeat("_ ", w))
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

var defaultRoots = []model.Coordinate{{X: 2, Y: 0}, {X: 2, Y: 4}}

func (s *ControllerSuite) TestCreateGameDefaults() {
	game, err := s.controller.CreateGame(s.ctx, []string{"alice", "bob"}, DefaultBoardWidth, DefaultBoardHeight)
	s.Require().NoError(err)

	s.NotEmpty(game.ID)
	s.Equal(model.GameStatePlaying, game.State)
	s.Equal(0, game.CurrentTurn)
	s.Equal(model.NoWinner, game.Winner)
	s.Len(game.Hands.Racks[0], DefaultHandSize)
	s.Len(game.Hands.Racks[1], DefaultHandSize)
	s.Equal(98-2*DefaultHandSize, game.Bag.Remaining())

	stored, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.ID, stored.ID)
}

func (s *ControllerSuite) TestSubmitMoveUnknownGame() {
	_, err := s.controller.SubmitMove(s.ctx, "no-such-game",
		model.PlaceMove(0, 'A', model.Coordinate{X: 2, Y: 0}))
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestSubmitMoveUnknownKind() {
	game := s.startGame(emptyBoard(5, 5), defaultRoots, [][]rune{{'A'}, {'A'}})

	_, err := s.controller.SubmitMove(s.ctx, game.ID,
		model.Move{Kind: "teleport", Player: 0})
	s.ErrorIs(err, model.ErrUnknownMoveKind)
}

func (s *ControllerSuite) TestSubmitMoveInvalidPlayer() {
	game := s.startGame(emptyBoard(5, 5), defaultRoots, [][]rune{{'A'}, {'A'}})

	var invalid *model.InvalidPlayerError
	_, err := s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(5, 'A', model.Coordinate{X: 2, Y: 0}))
	s.Require().ErrorAs(err, &invalid)
	s.Equal(5, invalid.Player)
}

func (s *ControllerSuite) TestFirstPlacementMustBeOnRoot() {
	game := s.startGame(emptyBoard(5, 5), defaultRoots, [][]rune{{'A', 'T'}, {'A'}})

	var nonAdjacent *model.NonAdjacentError
	_, err := s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(0, 'A', model.Coordinate{X: 0, Y: 0}))
	s.Require().ErrorAs(err, &nonAdjacent)

	// Nothing consumed by the failed attempt
	s.Equal([]rune{'A', 'T'}, game.Hands.Racks[0])

	result, err := s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(0, 'A', model.Coordinate{X: 2, Y: 0}))
	s.Require().NoError(err)
	s.Equal(model.OutcomeNoBattle, result.Outcome.Kind)
	s.Equal(1, game.CurrentTurn)
}

func (s *ControllerSuite) TestPlacementValidation() {
	game := s.startGame(strings.Join([]string{
		"_ _ T _ _",
		"_ _ _ _ _",
		"_ _ _ _ _",
		"_ _ _ _ _",
		"_ _ O _ _",
	}, "\n"), defaultRoots, [][]rune{{'A'}, {'T'}})

	var oob *model.OutOfBoundsError
	_, err := s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(0, 'A', model.Coordinate{X: 9, Y: 9}))
	s.ErrorAs(err, &oob)

	var occupied *model.SquareOccupiedError
	_, err = s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(0, 'A', model.Coordinate{X: 2, Y: 0}))
	s.ErrorAs(err, &occupied)

	var nonAdjacent *model.NonAdjacentError
	_, err = s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(0, 'A', model.Coordinate{X: 2, Y: 3}))
	s.ErrorAs(err, &nonAdjacent)

	// Adjacency is to own squares only: next to the enemy O does not count
	_, err = s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(0, 'A', model.Coordinate{X: 1, Y: 4}))
	s.ErrorAs(err, &nonAdjacent)

	var unavailable *model.TileUnavailableError
	_, err = s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(0, 'Z', model.Coordinate{X: 2, Y: 1}))
	s.Require().ErrorAs(err, &unavailable)
	s.Equal('Z', unavailable.Tile)

	s.Equal(0, game.CurrentTurn) // No failed attempt consumed the turn
}

func (s *ControllerSuite) TestPlacementRefillsRackFromBag() {
	game := s.startGame(emptyBoard(5, 5), defaultRoots, [][]rune{{'A', 'T'}, {'A'}})
	game.Bag = &model.Bag{Tiles: []rune{'E'}}

	_, err := s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(0, 'A', model.Coordinate{X: 2, Y: 0}))
	s.Require().NoError(err)

	s.Equal([]rune{'T', 'E'}, game.Hands.Racks[0])
	s.Equal(0, game.Bag.Remaining())

	// An empty bag just stops refilling
	game.Hands.Racks[1] = []rune{'T'}
	_, err = s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(1, 'T', model.Coordinate{X: 2, Y: 4}))
	s.Require().NoError(err)
	s.Empty(game.Hands.Racks[1])
}

func (s *ControllerSuite) TestSwapMove() {
	game := s.startGame(strings.Join([]string{
		"_ _ T _ _",
		"_ _ A _ _",
		"_ _ _ _ _",
		"_ _ _ _ _",
		"_ _ O _ _",
	}, "\n"), defaultRoots, [][]rune{{'C'}, {'T'}})

	result, err := s.controller.SubmitMove(s.ctx, game.ID,
		model.SwapMove(0, model.Coordinate{X: 2, Y: 0}, model.Coordinate{X: 2, Y: 1}))
	s.Require().NoError(err)
	s.Equal(model.OutcomeNoBattle, result.Outcome.Kind)
	s.Equal(1, game.CurrentTurn)

	sq, err := game.Board.Get(model.Coordinate{X: 2, Y: 0})
	s.Require().NoError(err)
	s.Equal('A', sq.Letter)
	sq, err = game.Board.Get(model.Coordinate{X: 2, Y: 1})
	s.Require().NoError(err)
	s.Equal('T', sq.Letter)

	// Swapping enemy or empty squares fails without consuming the turn
	var notOwned *model.NotOwnedError
	_, err = s.controller.SubmitMove(s.ctx, game.ID,
		model.SwapMove(1, model.Coordinate{X: 2, Y: 4}, model.Coordinate{X: 2, Y: 0}))
	s.ErrorAs(err, &notOwned)
	s.Equal(1, game.CurrentTurn)
}

func (s *ControllerSuite) TestAttackDestroysWeakDefence() {
	game := s.startGame(strings.Join([]string{
		"_ _ T _ _",
		"_ _ A _ _",
		"_ _ _ _ _",
		"_ _ X _ _",
		"_ _ O _ _",
	}, "\n"), defaultRoots, [][]rune{{'C'}, {}})

	result, err := s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(0, 'C', model.Coordinate{X: 2, Y: 2}))
	s.Require().NoError(err)
	s.Equal(model.OutcomeAttackerWins, result.Outcome.Kind)
	s.Equal([]int{0}, result.Outcome.WeakDefenders)

	// The invalid XO is wiped and its letters returned
	for _, pos := range []model.Coordinate{{X: 2, Y: 3}, {X: 2, Y: 4}} {
		sq, err := game.Board.Get(pos)
		s.Require().NoError(err)
		s.True(sq.IsEmpty())
	}
	s.ElementsMatch([]rune{'X', 'O'}, game.Hands.Racks[1])

	// CAT stands
	sq, err := game.Board.Get(model.Coordinate{X: 2, Y: 2})
	s.Require().NoError(err)
	s.Equal('C', sq.Letter)
}

func (s *ControllerSuite) TestFailedAttackDestroysAttackers() {
	game := s.startGame(strings.Join([]string{
		"_ _ T _ _",
		"_ _ A _ _",
		"_ _ _ _ _",
		"_ _ T _ _",
		"_ _ O _ _",
	}, "\n"), defaultRoots, [][]rune{{'C'}, {}})

	// CAT attacks TO; valid and within one letter, so the defence holds
	// and the whole attacking word is destroyed
	result, err := s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(0, 'C', model.Coordinate{X: 2, Y: 2}))
	s.Require().NoError(err)
	s.Equal(model.OutcomeDefenderWins, result.Outcome.Kind)

	for _, pos := range []model.Coordinate{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}} {
		sq, err := game.Board.Get(pos)
		s.Require().NoError(err)
		s.True(sq.IsEmpty())
	}
	s.ElementsMatch([]rune{'C', 'A', 'T'}, game.Hands.Racks[0])

	// TO stands
	sq, err := game.Board.Get(model.Coordinate{X: 2, Y: 3})
	s.Require().NoError(err)
	s.Equal('T', sq.Letter)
}

func (s *ControllerSuite) TestBattleTruncatesStrandedTerritory() {
	game := s.startGame(strings.Join([]string{
		"_ _ T _ _",
		"_ _ A _ _",
		"_ _ _ _ _",
		"_ _ X O _",
		"_ _ O N _",
	}, "\n"), defaultRoots, [][]rune{{'C'}, {}})

	// Both defending words through the X are invalid and fall. The N in
	// the corner survives the battle but loses its path to the root and
	// is truncated away.
	result, err := s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(0, 'C', model.Coordinate{X: 2, Y: 2}))
	s.Require().NoError(err)
	s.Equal(model.OutcomeAttackerWins, result.Outcome.Kind)
	s.Equal([]int{0, 1}, result.Outcome.WeakDefenders)

	for _, pos := range []model.Coordinate{
		{X: 2, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 3}, {X: 3, Y: 4},
	} {
		sq, err := game.Board.Get(pos)
		s.Require().NoError(err)
		s.True(sq.IsEmpty())
	}
	s.ElementsMatch([]rune{'X', 'O', 'O', 'N'}, game.Hands.Racks[1])
	s.Empty(game.Board.DisconnectedSquares())
}

func (s *ControllerSuite) TestReachingFarEdgeWins() {
	game := s.startGame(strings.Join([]string{
		"_ _ T _ _",
		"_ _ A _ _",
		"_ _ C _ _",
		"_ _ A _ _",
		"_ _ _ _ _",
	}, "\n"), defaultRoots, [][]rune{{'T'}, {}})

	result, err := s.controller.SubmitMove(s.ctx, game.ID,
		model.PlaceMove(0, 'T', model.Coordinate{X: 2, Y: 4}))
	s.Require().NoError(err)
	s.True(result.GameOver)
	s.Equal(0, result.Winner)
	s.Equal(model.GameStateFinished, game.State)
	s.Equal(0, game.Winner)
	s.Equal(0, game.CurrentTurn) // The turn does not pass after a win
}
