package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/dtownsend/battleword/internal/model"
)

type RedisStorageSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *Storage
	ctx   context.Context
}

func TestRedisStorageSuite(t *testing.T) {
	suite.Run(t, new(RedisStorageSuite))
}

func (s *RedisStorageSuite) SetupTest() {
	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	cfg := DefaultConfig()
	cfg.GameTTL = time.Hour
	s.store = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *RedisStorageSuite) TearDownTest() {
	s.NoError(s.store.Close())
	s.mini.Close()
}

func (s *RedisStorageSuite) newGame(id model.GameID) *model.Game {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	board := model.NewBoard(3, 3)
	s.Require().NoError(board.Set(model.Coordinate{X: 1, Y: 0}, 0, 'A'))
	return &model.Game{
		ID:          id,
		State:       model.GameStatePlaying,
		Board:       board,
		Hands:       &model.Hands{Racks: [][]rune{{'B', 'C'}, {'D'}}},
		Bag:         &model.Bag{Tiles: []rune{'E', 'F'}},
		Players:     []string{"alice", "bob"},
		CurrentTurn: 1,
		MoveCount:   3,
		Winner:      model.NoWinner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *RedisStorageSuite) TestSaveAndGetGameRoundTrip() {
	game := s.newGame("g1")
	s.Require().NoError(s.store.SaveGame(s.ctx, game))

	got, err := s.store.GetGame(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal(game, got)

	// The serialized board keeps ownership and letters
	sq, err := got.Board.Get(model.Coordinate{X: 1, Y: 0})
	s.Require().NoError(err)
	s.True(sq.OccupiedBy(0))
	s.Equal('A', sq.Letter)
}

func (s *RedisStorageSuite) TestGetMissingGame() {
	_, err := s.store.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *RedisStorageSuite) TestSaveGameSetsTTL() {
	s.Require().NoError(s.store.SaveGame(s.ctx, s.newGame("g1")))

	s.Greater(s.mini.TTL(gameKey("g1")), time.Duration(0))
	s.Greater(s.mini.TTL(gameIndexKey()), time.Duration(0))
}

func (s *RedisStorageSuite) TestGameExpiry() {
	s.Require().NoError(s.store.SaveGame(s.ctx, s.newGame("g1")))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.store.GetGame(s.ctx, "g1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *RedisStorageSuite) TestDeleteGame() {
	s.Require().NoError(s.store.SaveGame(s.ctx, s.newGame("g1")))
	s.Require().NoError(s.store.DeleteGame(s.ctx, "g1"))

	_, err := s.store.GetGame(s.ctx, "g1")
	s.ErrorIs(err, model.ErrGameNotFound)

	ids, err := s.store.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *RedisStorageSuite) TestListGameIDs() {
	ids, err := s.store.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)

	s.Require().NoError(s.store.SaveGame(s.ctx, s.newGame("g1")))
	s.Require().NoError(s.store.SaveGame(s.ctx, s.newGame("g2")))

	ids, err = s.store.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.GameID{"g1", "g2"}, ids)
}

func (s *RedisStorageSuite) TestDictionaryWords() {
	_, err := s.store.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)

	s.Require().NoError(s.store.SaveDictionaryWords(s.ctx, []string{"CAT", "DOG"}))

	words, err := s.store.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"CAT", "DOG"}, words)

	// Reloading replaces rather than accumulates
	s.Require().NoError(s.store.SaveDictionaryWords(s.ctx, []string{"BIRD"}))
	words, err = s.store.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"BIRD"}, words)
}

func (s *RedisStorageSuite) TestNewRejectsBadURL() {
	cfg := DefaultConfig()
	cfg.URL = "not-a-url"
	_, err := New(cfg)
	s.Error(err)
}
