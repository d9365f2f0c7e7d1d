package server

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Rooms is the registry of live sessions, one per room id. Sessions are
// fully independent; the registry only creates and looks them up.
type Rooms struct {
	mu   sync.Mutex
	log  *zap.Logger
	byID map[string]*Session
}

// DefaultRoomID is the always-present room covering the four-player
// single-table case; clients may connect to it without creating a room
// first.
const DefaultRoomID = "lobby"

func NewRooms(log *zap.Logger) *Rooms {
	r := &Rooms{
		log:  log,
		byID: map[string]*Session{},
	}
	r.byID[DefaultRoomID] = NewSession(DefaultRoomID, log)
	return r
}

func (r *Rooms) Create() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := NewSession(uuid.NewString(), r.log)
	r.byID[s.ID()] = s
	r.log.Info("room created", zap.String("room", s.ID()))
	return s
}

func (r *Rooms) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	return s, ok
}

type RoomInfo struct {
	ID            string `json:"id"`
	PlayersJoined int    `json:"players_joined"`
	Started       bool   `json:"started"`
}

func (r *Rooms) List() []RoomInfo {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.byID))
	for _, s := range r.byID {
		sessions = append(sessions, s)
	}
	r.mu.Unlock()

	out := make([]RoomInfo, 0, len(sessions))
	for _, s := range sessions {
		joined, started := s.Info()
		out = append(out, RoomInfo{ID: s.ID(), PlayersJoined: joined, Started: started})
	}
	return out
}
