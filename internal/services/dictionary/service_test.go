package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dtownsend/battleword/internal/storage/memory"
	"github.com/dtownsend/battleword/internal/testutil"
)

type DictionarySuite struct {
	suite.Suite
	store   *memory.Storage
	service *Service
	ctx     context.Context
}

func TestDictionarySuite(t *testing.T) {
	suite.Run(t, new(DictionarySuite))
}

func (s *DictionarySuite) SetupTest() {
	s.store = memory.New()
	s.service = New(s.store, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *DictionarySuite) TestNotLoadedRejectsEverything() {
	s.False(s.service.IsLoaded())
	s.False(s.service.IsValidWord("CAT"))
	s.Equal(0, s.service.WordCount())
}

func (s *DictionarySuite) TestLoadWords() {
	s.Require().NoError(s.service.LoadWords([]string{"CAT", "DOG"}))

	s.True(s.service.IsLoaded())
	s.Equal(2, s.service.WordCount())
	s.True(s.service.IsValidWord("CAT"))
	s.False(s.service.IsValidWord("BIRD"))
}

func (s *DictionarySuite) TestMatchingIsExact() {
	s.Require().NoError(s.service.LoadWords([]string{"CAT"}))

	s.True(s.service.IsValidWord("CAT"))
	s.False(s.service.IsValidWord("cat"))
	s.False(s.service.IsValidWord("Cat"))
	s.False(s.service.IsValidWord("CAT "))
	s.False(s.service.IsValidWord(""))
}

func (s *DictionarySuite) TestSingleLettersAreOrdinaryWords() {
	s.Require().NoError(s.service.LoadWords([]string{"A", "I"}))

	s.True(s.service.IsValidWord("A"))
	s.True(s.service.IsValidWord("I"))
	s.False(s.service.IsValidWord("B"))
}

func (s *DictionarySuite) TestLoadFromStorage() {
	s.Require().NoError(s.store.SaveDictionaryWords(s.ctx, []string{"CAT", "DOG"}))

	s.Require().NoError(s.service.LoadFromStorage(s.ctx))
	s.True(s.service.IsValidWord("DOG"))
}

func (s *DictionarySuite) TestLoadFromStorageEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, ErrDictionaryNotLoaded)
	s.False(s.service.IsLoaded())
}

func (s *DictionarySuite) TestLoadFromFile() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("CAT\nDOG\n\n  BIRD  \n"), 0o644))

	s.Require().NoError(s.service.LoadFromFile(s.ctx, path))

	s.Equal(3, s.service.WordCount())
	s.True(s.service.IsValidWord("BIRD")) // Whitespace trimmed, blanks dropped

	// The file's contents are persisted for later LoadFromStorage
	words, err := s.store.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"CAT", "DOG", "BIRD"}, words)
}

func (s *DictionarySuite) TestLoadFromFileMissing() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "nope.txt"))
	s.Error(err)
}

func (s *DictionarySuite) TestReloadReplacesWords() {
	s.Require().NoError(s.service.LoadWords([]string{"CAT"}))
	s.Require().NoError(s.service.LoadWords([]string{"DOG"}))

	s.False(s.service.IsValidWord("CAT"))
	s.True(s.service.IsValidWord("DOG"))
	s.Equal(1, s.service.WordCount())
}
