package notes

import (
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"example.com/notes-store/internal/stringsx"
)

const logTitleMax = 64

// Store keeps notes in memory and is the only place identifiers are minted.
// The zero value is not usable; call NewStore.
type Store struct {
	mu    sync.Mutex
	notes map[int64]Note

	lastID atomic.Int64
	log    *zap.Logger
}

func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		notes: make(map[int64]Note),
		log:   logger,
	}
}

// Add assigns the next identifier to n, stores it and returns it.
// Identifiers start at 1 and are never reused, even after a delete.
func (s *Store) Add(n Note) Note {
	n.ID = s.lastID.Add(1)

	s.mu.Lock()
	s.notes[n.ID] = n
	s.mu.Unlock()

	s.log.Debug("note added", zap.Int64("id", n.ID), zap.String("title", stringsx.Clip(n.Title, logTitleMax)))
	return n
}

func (s *Store) GetByID(id int64) (Note, error) {
	s.mu.Lock()
	n, ok := s.notes[id]
	s.mu.Unlock()

	if !ok {
		return Note{}, &NotFoundError{Op: "get", ID: id}
	}
	return n, nil
}

// Update replaces the stored note carrying n.ID.
func (s *Store) Update(n Note) error {
	s.mu.Lock()
	if _, ok := s.notes[n.ID]; !ok {
		s.mu.Unlock()
		return &NotFoundError{Op: "update", ID: n.ID}
	}
	s.notes[n.ID] = n
	s.mu.Unlock()

	s.log.Debug("note updated", zap.Int64("id", n.ID), zap.String("title", stringsx.Clip(n.Title, logTitleMax)))
	return nil
}

func (s *Store) DeleteByID(id int64) error {
	s.mu.Lock()
	if _, ok := s.notes[id]; !ok {
		s.mu.Unlock()
		return &NotFoundError{Op: "delete", ID: id}
	}
	delete(s.notes, id)
	s.mu.Unlock()

	s.log.Debug("note deleted", zap.Int64("id", id))
	return nil
}

// ListAll returns a copy of every stored note ordered by identifier,
// which is also insertion order.
func (s *Store) ListAll() []Note {
	s.mu.Lock()
	out := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}
