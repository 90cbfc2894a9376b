package models

import (
	"sort"
	"time"
)

// ItemKind tags a catalog item as a puzzle, a clue, or a red herring.
type ItemKind string

const (
	KindPuzzle  ItemKind = "puzzle"
	KindClue    ItemKind = "clue"
	KindHerring ItemKind = "herring"
)

// Item is one entry in an escape-room catalog. Catalogs are fixed at
// startup and never mutated. Answer is present iff HasInput is true and is
// never serialized to players.
type Item struct {
	ID          string   `json:"id"`
	Kind        ItemKind `json:"kind"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	HasInput    bool     `json:"has_input"`
	Placeholder string   `json:"placeholder,omitempty"`
	Answer      string   `json:"-"`
	UnlockedBy  string   `json:"unlocked_by,omitempty"`
}

// SolvedSet holds the item IDs a player has answered correctly. It only
// grows during a session; an explicit reset replaces it with a fresh set.
type SolvedSet map[string]struct{}

// NewSolvedSet builds a set from stored IDs.
func NewSolvedSet(ids ...string) SolvedSet {
	s := make(SolvedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s SolvedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s SolvedSet) Add(id string) {
	s[id] = struct{}{}
}

// IDs returns the solved IDs in sorted order for stable storage.
func (s SolvedSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// EscapeSession is the persisted per-player session state. The session ID
// doubles as the access capability, mirroring a per-device saved game.
type EscapeSession struct {
	SessionID string    `bson:"session_id" json:"session_id"`
	Player    int       `bson:"player" json:"player"`
	Solved    []string  `bson:"solved" json:"solved"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
