package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Henry-L/hl-apps/models"
)

// VisibleItems returns the catalog items the player can currently see. An
// item with no unlock requirement is always visible; a gated item is
// visible once its prerequisite has been solved. The check is a pure
// predicate over the solved set, so re-evaluating never hides an item that
// was visible before.
func VisibleItems(catalog []models.Item, solved models.SolvedSet) []models.Item {
	visible := make([]models.Item, 0, len(catalog))
	for _, item := range catalog {
		if item.UnlockedBy == "" || solved.Has(item.UnlockedBy) {
			visible = append(visible, item)
		}
	}
	return visible
}

// SubmitAnswer checks rawAnswer against the item's expected answer and, on
// a match, records the item as solved. Unknown items, items without an
// answer input, and items the player cannot see yet are all rejected the
// same way as a wrong answer, so the response leaks nothing about the
// catalog. Re-submitting a solved item succeeds without changing the set.
func SubmitAnswer(catalog []models.Item, solved models.SolvedSet, itemID, rawAnswer string) bool {
	item := findItem(catalog, itemID)
	if item == nil || !item.HasInput {
		return false
	}
	if item.UnlockedBy != "" && !solved.Has(item.UnlockedBy) {
		return false
	}
	if solved.Has(item.ID) {
		return true
	}
	if normalizeAnswer(rawAnswer) != normalizeAnswer(item.Answer) {
		return false
	}
	solved.Add(item.ID)
	return true
}

// IsGameWon reports whether every answer-requiring item has been solved.
// Clues and herrings never count toward the win.
func IsGameWon(catalog []models.Item, solved models.SolvedSet) bool {
	for _, item := range catalog {
		if item.HasInput && !solved.Has(item.ID) {
			return false
		}
	}
	return true
}

// ResetProgress returns a fresh empty solved set for restarting a run.
func ResetProgress() models.SolvedSet {
	return models.NewSolvedSet()
}

// CountSolvedPuzzles returns how many answer-requiring items are solved and
// how many exist in total.
func CountSolvedPuzzles(catalog []models.Item, solved models.SolvedSet) (solvedCount, total int) {
	for _, item := range catalog {
		if !item.HasInput {
			continue
		}
		total++
		if solved.Has(item.ID) {
			solvedCount++
		}
	}
	return solvedCount, total
}

// ValidateCatalog checks a catalog once at startup: IDs must be unique,
// answers must be present exactly on answer-requiring items, and unlock
// references must point at existing items.
func ValidateCatalog(catalog []models.Item) error {
	ids := make(map[string]struct{}, len(catalog))
	for _, item := range catalog {
		if item.ID == "" {
			return fmt.Errorf("catalog item with empty id (title %q)", item.Title)
		}
		if _, dup := ids[item.ID]; dup {
			return fmt.Errorf("duplicate catalog item id %q", item.ID)
		}
		ids[item.ID] = struct{}{}

		switch item.Kind {
		case models.KindPuzzle, models.KindClue, models.KindHerring:
		default:
			return fmt.Errorf("item %q has unknown kind %q", item.ID, item.Kind)
		}
		if item.HasInput != (item.Kind == models.KindPuzzle) {
			return fmt.Errorf("item %q: has_input must be set exactly on puzzles", item.ID)
		}
		if item.HasInput && item.Answer == "" {
			return fmt.Errorf("puzzle %q has no answer", item.ID)
		}
		if !item.HasInput && item.Answer != "" {
			return fmt.Errorf("item %q has an answer but no input", item.ID)
		}
	}
	for _, item := range catalog {
		if item.UnlockedBy == "" {
			continue
		}
		if _, ok := ids[item.UnlockedBy]; !ok {
			return fmt.Errorf("item %q unlocked by unknown item %q", item.ID, item.UnlockedBy)
		}
	}
	return nil
}

// normalizeAnswer uppercases and strips all whitespace so multi-token
// answers are insensitive to case and spacing but still exact on content
// and order.
func normalizeAnswer(answer string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, answer)
}

func findItem(catalog []models.Item, id string) *models.Item {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}
