package server

import (
	"encoding/json"
	"errors"

	"github.com/markli1hoshipu/gulugulu-poker-sub001/internal/engine"
)

// ClientMessage is the tagged envelope every client event arrives in.
// Payloads are validated per type before they reach the state machine.
type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

const (
	msgJoinGame     = "join_game"
	msgRequestState = "request_game_state"
	msgPlayCards    = "play_cards"
	msgRestartGame  = "restart_game"

	msgJoinSuccess = "join_success"
	msgJoinError   = "join_error"
	msgGameState   = "game_state"
	msgPlayError   = "play_error"
	msgError       = "error"
)

type JoinPayload struct {
	Name string `json:"name"`
}

type PlayPayload struct {
	CardIndices []int `json:"card_indices"`
}

func (m ClientMessage) joinPayload() (JoinPayload, error) {
	var p JoinPayload
	if len(m.Payload) == 0 {
		return p, errors.New("join_game requires a payload")
	}
	if err := json.Unmarshal(m.Payload, &p); err != nil {
		return p, errors.New("malformed join_game payload")
	}
	if p.Name == "" {
		return p, errors.New("name required")
	}
	return p, nil
}

func (m ClientMessage) playPayload() (PlayPayload, error) {
	var p PlayPayload
	if len(m.Payload) == 0 {
		return p, errors.New("play_cards requires a payload")
	}
	if err := json.Unmarshal(m.Payload, &p); err != nil {
		return p, errors.New("malformed play_cards payload")
	}
	if len(p.CardIndices) == 0 {
		return p, errors.New("card_indices required")
	}
	return p, nil
}

// ServerMessage is the envelope pushed back to clients: a snapshot with
// optional marker events, or an explicit error.
type ServerMessage struct {
	Type    string        `json:"type"`
	State   *GameSnapshot `json:"state,omitempty"`
	Events  []Event       `json:"events,omitempty"`
	Message string        `json:"message,omitempty"`
}

type CardDTO struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

func cardToDTO(c engine.Card) CardDTO {
	return CardDTO{Suit: c.Suit.String(), Rank: c.Rank.String()}
}

func cardsToDTO(cards []engine.Card) []CardDTO {
	out := make([]CardDTO, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToDTO(c))
	}
	return out
}
