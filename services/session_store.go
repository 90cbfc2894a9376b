package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Henry-L/hl-apps/config"
	"github.com/Henry-L/hl-apps/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const escapeSessionsCollection = "escape_sessions"

var ErrSessionNotFound = errors.New("escape session not found")

// EscapeSessionStore persists per-session solved state. The engine itself
// never touches storage; the HTTP layer loads a session, runs the pure
// progress functions, and saves the result back.
type EscapeSessionStore interface {
	Create(ctx context.Context, session *models.EscapeSession) error
	Get(ctx context.Context, sessionID string) (*models.EscapeSession, error)
	SaveSolved(ctx context.Context, sessionID string, solved models.SolvedSet) error
}

// MongoEscapeSessionStore keeps sessions in the escape_sessions collection.
type MongoEscapeSessionStore struct{}

func NewMongoEscapeSessionStore() *MongoEscapeSessionStore {
	return &MongoEscapeSessionStore{}
}

func (s *MongoEscapeSessionStore) Create(ctx context.Context, session *models.EscapeSession) error {
	coll := config.OpenCollection(escapeSessionsCollection)
	_, err := coll.InsertOne(ctx, session)
	return err
}

func (s *MongoEscapeSessionStore) Get(ctx context.Context, sessionID string) (*models.EscapeSession, error) {
	coll := config.OpenCollection(escapeSessionsCollection)
	var session models.EscapeSession
	err := coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MongoEscapeSessionStore) SaveSolved(ctx context.Context, sessionID string, solved models.SolvedSet) error {
	coll := config.OpenCollection(escapeSessionsCollection)
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "solved", Value: solved.IDs()},
		{Key: "updated_at", Value: time.Now()},
	}}}
	res, err := coll.UpdateOne(ctx, bson.M{"session_id": sessionID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// MemoryEscapeSessionStore is a map-backed store used in tests.
type MemoryEscapeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.EscapeSession
}

func NewMemoryEscapeSessionStore() *MemoryEscapeSessionStore {
	return &MemoryEscapeSessionStore{sessions: make(map[string]*models.EscapeSession)}
}

func (s *MemoryEscapeSessionStore) Create(ctx context.Context, session *models.EscapeSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.SessionID] = &copied
	return nil
}

func (s *MemoryEscapeSessionStore) Get(ctx context.Context, sessionID string) (*models.EscapeSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *MemoryEscapeSessionStore) SaveSolved(ctx context.Context, sessionID string, solved models.SolvedSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.Solved = solved.IDs()
	session.UpdatedAt = time.Now()
	return nil
}
