package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dtownsend/battleword/internal/model"
)

type MemoryStorageSuite struct {
	suite.Suite
	store *Storage
	ctx   context.Context
}

func TestMemoryStorageSuite(t *testing.T) {
	suite.Run(t, new(MemoryStorageSuite))
}

func (s *MemoryStorageSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *MemoryStorageSuite) newGame(id model.GameID) *model.Game {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Game{
		ID:        id,
		State:     model.GameStatePlaying,
		Board:     model.NewBoard(5, 5),
		Hands:     &model.Hands{Racks: [][]rune{{'A'}, {'B'}}},
		Bag:       &model.Bag{Tiles: []rune{'C'}},
		Players:   []string{"alice", "bob"},
		Winner:    model.NoWinner,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *MemoryStorageSuite) TestSaveAndGetGame() {
	game := s.newGame("g1")
	s.Require().NoError(s.store.SaveGame(s.ctx, game))

	got, err := s.store.GetGame(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal(game, got)
}

func (s *MemoryStorageSuite) TestGetMissingGame() {
	_, err := s.store.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *MemoryStorageSuite) TestDeleteGame() {
	s.Require().NoError(s.store.SaveGame(s.ctx, s.newGame("g1")))
	s.Require().NoError(s.store.DeleteGame(s.ctx, "g1"))

	_, err := s.store.GetGame(s.ctx, "g1")
	s.ErrorIs(err, model.ErrGameNotFound)

	// Deleting again is a no-op
	s.NoError(s.store.DeleteGame(s.ctx, "g1"))
}

func (s *MemoryStorageSuite) TestListGameIDs() {
	ids, err := s.store.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)

	s.Require().NoError(s.store.SaveGame(s.ctx, s.newGame("g1")))
	s.Require().NoError(s.store.SaveGame(s.ctx, s.newGame("g2")))

	ids, err = s.store.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.GameID{"g1", "g2"}, ids)
}

func (s *MemoryStorageSuite) TestDictionaryWords() {
	_, err := s.store.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)

	words := []string{"CAT", "DOG"}
	s.Require().NoError(s.store.SaveDictionaryWords(s.ctx, words))

	got, err := s.store.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, got)

	// The stored copy is insulated from caller mutation
	words[0] = "MUTATED"
	got[1] = "ALSO MUTATED"
	fresh, err := s.store.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"CAT", "DOG"}, fresh)
}
