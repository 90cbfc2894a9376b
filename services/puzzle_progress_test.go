package services

import (
	"testing"

	"github.com/Henry-L/hl-apps/data"
	"github.com/Henry-L/hl-apps/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCatalog: 2 puzzles, 3 non-puzzles, with the second puzzle and a clue
// gated behind the first puzzle.
func testCatalog() []models.Item {
	return []models.Item{
		{ID: "safe", Kind: models.KindPuzzle, HasInput: true, Answer: "75732"},
		{ID: "blueprint", Kind: models.KindClue},
		{ID: "photo", Kind: models.KindHerring},
		{ID: "wires", Kind: models.KindPuzzle, HasInput: true, Answer: "RED,BLUE,GREEN", UnlockedBy: "safe"},
		{ID: "diary", Kind: models.KindClue, UnlockedBy: "safe"},
	}
}

func visibleIDs(catalog []models.Item, solved models.SolvedSet) []string {
	var ids []string
	for _, item := range VisibleItems(catalog, solved) {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestVisibleItemsGating(t *testing.T) {
	catalog := testCatalog()
	solved := models.NewSolvedSet()

	assert.Equal(t, []string{"safe", "blueprint", "photo"}, visibleIDs(catalog, solved))

	solved.Add("safe")
	assert.Equal(t, []string{"safe", "blueprint", "photo", "wires", "diary"}, visibleIDs(catalog, solved))

	// Re-evaluation is idempotent, nothing flaps back to locked
	assert.Equal(t, []string{"safe", "blueprint", "photo", "wires", "diary"}, visibleIDs(catalog, solved))
}

func TestSubmitAnswerCorrect(t *testing.T) {
	catalog := testCatalog()
	solved := models.NewSolvedSet()

	assert.True(t, SubmitAnswer(catalog, solved, "safe", "75732"))
	assert.True(t, solved.Has("safe"))
}

func TestSubmitAnswerNormalization(t *testing.T) {
	catalog := testCatalog()
	solved := models.NewSolvedSet("safe")

	assert.True(t, SubmitAnswer(catalog, solved, "wires", "red, blue , GREEN"))
}

func TestSubmitAnswerWrong(t *testing.T) {
	catalog := testCatalog()
	solved := models.NewSolvedSet()

	assert.False(t, SubmitAnswer(catalog, solved, "safe", "12345"))
	assert.Len(t, solved, 0)

	// Content and order still have to match exactly
	solved.Add("safe")
	assert.False(t, SubmitAnswer(catalog, solved, "wires", "GREEN,BLUE,RED"))
}

func TestSubmitAnswerIdempotent(t *testing.T) {
	catalog := testCatalog()
	solved := models.NewSolvedSet("safe")

	assert.True(t, SubmitAnswer(catalog, solved, "safe", "whatever"))
	assert.Len(t, solved, 1)
}

func TestSubmitAnswerRejectedCases(t *testing.T) {
	catalog := testCatalog()
	solved := models.NewSolvedSet()

	// Unknown item, item without input, and locked item are all plain
	// rejections with no state change
	assert.False(t, SubmitAnswer(catalog, solved, "nope", "75732"))
	assert.False(t, SubmitAnswer(catalog, solved, "blueprint", "75732"))
	assert.False(t, SubmitAnswer(catalog, solved, "wires", "RED,BLUE,GREEN"))
	assert.Len(t, solved, 0)
}

func TestIsGameWon(t *testing.T) {
	catalog := testCatalog()
	solved := models.NewSolvedSet()

	assert.False(t, IsGameWon(catalog, solved))

	solved.Add("safe")
	assert.False(t, IsGameWon(catalog, solved))

	// Only the two puzzles matter, clues and herrings never do
	solved.Add("wires")
	assert.True(t, IsGameWon(catalog, solved))
}

func TestCountSolvedPuzzles(t *testing.T) {
	catalog := testCatalog()

	solvedCount, total := CountSolvedPuzzles(catalog, models.NewSolvedSet("safe", "blueprint"))
	assert.Equal(t, 1, solvedCount)
	assert.Equal(t, 2, total)
}

func TestResetProgress(t *testing.T) {
	catalog := testCatalog()
	solved := models.NewSolvedSet("safe", "wires")
	assert.Len(t, visibleIDs(catalog, solved), 5)

	solved = ResetProgress()
	assert.Len(t, solved, 0)
	assert.Equal(t, []string{"safe", "blueprint", "photo"}, visibleIDs(catalog, solved))
}

func TestValidateCatalog(t *testing.T) {
	require.NoError(t, ValidateCatalog(testCatalog()))

	dup := []models.Item{
		{ID: "a", Kind: models.KindClue},
		{ID: "a", Kind: models.KindClue},
	}
	assert.Error(t, ValidateCatalog(dup))

	danglingUnlock := []models.Item{
		{ID: "a", Kind: models.KindClue, UnlockedBy: "ghost"},
	}
	assert.Error(t, ValidateCatalog(danglingUnlock))

	missingAnswer := []models.Item{
		{ID: "a", Kind: models.KindPuzzle, HasInput: true},
	}
	assert.Error(t, ValidateCatalog(missingAnswer))

	herringWithInput := []models.Item{
		{ID: "a", Kind: models.KindHerring, HasInput: true, Answer: "x"},
	}
	assert.Error(t, ValidateCatalog(herringWithInput))
}

func TestShippedCatalogsAreValid(t *testing.T) {
	require.NoError(t, ValidateCatalog(data.Player1Items))
	require.NoError(t, ValidateCatalog(data.Player2Items))
}

func TestNormalizeAnswer(t *testing.T) {
	assert.Equal(t, "RED,BLUE,GREEN", normalizeAnswer("red, blue , GREEN"))
	assert.Equal(t, "6:12", normalizeAnswer(" 6 : 12 "))
	assert.Equal(t, "", normalizeAnswer("  \t\n"))
}
