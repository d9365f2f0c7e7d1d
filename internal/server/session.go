package server

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/markli1hoshipu/gulugulu-poker-sub001/internal/engine"
)

// wsConn is the slice of *websocket.Conn the session needs; tests
// substitute a recording fake.
type wsConn interface {
	WriteJSON(v interface{}) error
}

type client struct {
	conn wsConn
	seat int
	name string
}

// Session owns one room's game state. Every mutation is serialized
// through mu, and the broadcast snapshot is taken under the same lock,
// so no client ever observes a partially applied mutation. A
// disconnected seat keeps its cards and name for the session's
// lifetime; there is no reconnection mechanism.
type Session struct {
	mu      sync.Mutex
	id      string
	log     *zap.Logger
	state   engine.GameState
	seats   []*client
	conns   map[wsConn]*client
	corrupt bool
}

func NewSession(id string, log *zap.Logger) *Session {
	return &Session{
		id:    id,
		log:   log,
		state: engine.NewGame(time.Now().UnixNano()),
		conns: map[wsConn]*client{},
	}
}

func (s *Session) ID() string {
	return s.id
}

// HandleConnection runs the read loop for one websocket client until it
// disconnects.
func (s *Session) HandleConnection(conn *websocket.Conn) {
	defer s.detach(conn)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.send(conn, ServerMessage{Type: msgError, Message: "invalid json"})
			continue
		}
		s.HandleMessage(conn, msg)
	}
}

func (s *Session) HandleMessage(conn wsConn, msg ClientMessage) {
	switch msg.Type {
	case msgJoinGame:
		p, err := msg.joinPayload()
		if err != nil {
			s.send(conn, ServerMessage{Type: msgJoinError, Message: err.Error()})
			return
		}
		s.join(conn, p.Name)
	case msgRequestState:
		s.sendState(conn)
	case msgPlayCards:
		p, err := msg.playPayload()
		if err != nil {
			s.send(conn, ServerMessage{Type: msgPlayError, Message: err.Error()})
			return
		}
		s.play(conn, p.CardIndices)
	case msgRestartGame:
		s.restart()
	default:
		s.send(conn, ServerMessage{Type: msgError, Message: "unknown message type"})
	}
}

func (s *Session) join(conn wsConn, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conns[conn] != nil {
		s.sendLocked(conn, ServerMessage{Type: msgJoinError, Message: "already joined"})
		return
	}
	for _, c := range s.seats {
		if c.name == name {
			s.sendLocked(conn, ServerMessage{Type: msgJoinError, Message: "name already taken"})
			return
		}
	}
	if len(s.seats) >= engine.NumSeats {
		s.sendLocked(conn, ServerMessage{Type: msgJoinError, Message: "room is full"})
		return
	}

	c := &client{conn: conn, seat: len(s.seats), name: name}
	s.seats = append(s.seats, c)
	s.conns[conn] = c
	s.log.Info("player joined",
		zap.String("room", s.id),
		zap.String("name", name),
		zap.Int("seat", c.seat))
	s.sendLocked(conn, ServerMessage{Type: msgJoinSuccess})

	if len(s.seats) == engine.NumSeats {
		if err := s.startRoundLocked(); err != nil {
			return
		}
	}
	s.broadcastLocked(nil)
}

// startRoundLocked deals a round. DealError is fatal to round start:
// the session stays in the lobby and every client is told.
func (s *Session) startRoundLocked() error {
	if err := engine.DealRound(&s.state); err != nil {
		s.log.Error("deal failed", zap.String("room", s.id), zap.Error(err))
		s.broadcastMessageLocked(ServerMessage{Type: msgError, Message: err.Error()})
		return err
	}
	s.log.Info("round dealt",
		zap.String("room", s.id),
		zap.Int("round", s.state.RoundNumber),
		zap.Int("dealer", s.state.Dealer))
	return nil
}

func (s *Session) play(conn wsConn, indices []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.conns[conn]
	if c == nil {
		s.sendLocked(conn, ServerMessage{Type: msgPlayError, Message: "join the game first"})
		return
	}
	if s.corrupt {
		s.sendLocked(conn, ServerMessage{Type: msgPlayError, Message: "session corrupted, restart required"})
		return
	}

	// Client indices address the sorted presentation hand; translate
	// them to original-hand positions before the engine sees them.
	_, origIndex := engine.SortedHand(s.state.Players[c.seat].Hand, s.state.Round.Trump)
	mapped := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(origIndex) {
			s.sendLocked(conn, ServerMessage{Type: msgPlayError, Message: "card index out of range"})
			return
		}
		mapped = append(mapped, origIndex[i])
	}

	prev := s.state
	if err := engine.PlayCards(&s.state, c.seat, mapped); err != nil {
		var verr *engine.ValidationError
		if !errors.As(err, &verr) {
			s.log.Error("play failed", zap.String("room", s.id), zap.Error(err))
		}
		s.sendLocked(conn, ServerMessage{Type: msgPlayError, Message: err.Error()})
		return
	}
	if s.state.Phase == engine.PhaseRoundComplete {
		if err := s.startRoundLocked(); err != nil {
			return
		}
	}
	if err := engine.CheckConservation(s.state); err != nil {
		s.corrupt = true
		s.log.Error("card conservation broken", zap.String("room", s.id), zap.Error(err))
		s.broadcastMessageLocked(ServerMessage{Type: msgError, Message: err.Error()})
		return
	}
	s.broadcastLocked(buildEvents(prev, s.state))
}

// restart resets to a fresh game with the same seats. When the table is
// already full the next round starts immediately, the same trigger as
// the fourth join.
func (s *Session) restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = engine.NewGame(time.Now().UnixNano())
	s.corrupt = false
	s.log.Info("game restarted", zap.String("room", s.id))
	if len(s.seats) == engine.NumSeats {
		if err := s.startRoundLocked(); err != nil {
			return
		}
	}
	s.broadcastLocked(nil)
}

func (s *Session) sendState(conn wsConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendLocked(conn, ServerMessage{Type: msgGameState, State: s.snapshotLocked(s.viewerLocked(conn))})
}

func (s *Session) viewerLocked(conn wsConn) int {
	if c := s.conns[conn]; c != nil {
		return c.seat
	}
	return -1
}

func (s *Session) snapshotLocked(viewer int) *GameSnapshot {
	names := make([]string, 0, len(s.seats))
	for _, c := range s.seats {
		names = append(names, c.name)
	}
	return BuildSnapshot(s.state, names, viewer)
}

// broadcastLocked pushes one personalized snapshot per connection.
func (s *Session) broadcastLocked(events []Event) {
	for conn, c := range s.conns {
		msg := ServerMessage{Type: msgGameState, State: s.snapshotLocked(c.seat), Events: events}
		if err := conn.WriteJSON(msg); err != nil {
			s.log.Warn("broadcast failed",
				zap.String("room", s.id),
				zap.Int("seat", c.seat),
				zap.Error(err))
		}
	}
}

func (s *Session) broadcastMessageLocked(msg ServerMessage) {
	for conn := range s.conns {
		_ = conn.WriteJSON(msg)
	}
}

func (s *Session) send(conn wsConn, msg ServerMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendLocked(conn, msg)
}

func (s *Session) sendLocked(conn wsConn, msg ServerMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		s.log.Warn("send failed", zap.String("room", s.id), zap.Error(err))
	}
}

// detach drops the connection but keeps the seat: a mid-round
// disconnect does not free or reassign it.
func (s *Session) detach(conn *websocket.Conn) {
	_ = conn.Close()
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.conns[conn]; c != nil {
		c.conn = nil
		delete(s.conns, conn)
		s.log.Info("player disconnected",
			zap.String("room", s.id),
			zap.Int("seat", c.seat))
	}
}

// Info reports lobby facts for the room listing.
func (s *Session) Info() (joined int, started bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seats), s.state.Phase != engine.PhaseLobby
}
