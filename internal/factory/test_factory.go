package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/dtownsend/battleword/internal/dependencies/mocks"
	"github.com/dtownsend/battleword/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small all-caps dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// Short battle-ready words
		"AT", "BE", "DO", "GO", "IT", "NO", "ON", "OR", "TO", "UP",
		"AND", "ANT", "ARE", "ARK", "ART", "BAT", "BIG", "CAT", "DOG", "EAT",
		"FAT", "HAT", "MAT", "NET", "ONE", "RAT", "RED", "RUN", "SUN", "TEN",
		"TOE", "TOP", "WAR", "WIN",
		// 4-letter words
		"ARTS", "BEAR", "BEAT", "DEEP", "EAST", "FOLK", "GAME", "GOLD", "HAND", "LAND",
		"MOAT", "NEAT", "OATS", "RATE", "ROOT", "TEAM", "TIDE", "TONE", "WARD", "WORD",
		// 5-letter and longer
		"EATEN", "GREAT", "JOLLY", "NORTH", "REACH", "SILLY", "SOUTH", "STAND", "STONE", "TRADE",
		"ATTACK", "BATTLE", "DEFEND", "LETTER",
	}
	return t.DictionaryService.LoadWords(words)
}
