package server

import "github.com/markli1hoshipu/gulugulu-poker-sub001/internal/engine"

type PlayerSnapshot struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Team     int       `json:"team"`
	HandSize int       `json:"hand_size"`
	Hand     []CardDTO `json:"hand,omitempty"`
}

type TrickPlaySnapshot struct {
	PlayerID int       `json:"player_id"`
	Cards    []CardDTO `json:"cards"`
}

// GameSnapshot is the authoritative full-state view pushed after every
// mutation. It is built per viewer: only the viewer's own seat carries
// the full hand, every other seat exposes hand_size alone.
type GameSnapshot struct {
	Started       bool                `json:"started"`
	Players       []PlayerSnapshot    `json:"players"`
	CurrentPlayer int                 `json:"current_player"`
	CurrentTrick  []TrickPlaySnapshot `json:"current_trick"`
	LeadPlayer    int                 `json:"lead_player"`
	TrumpSuit     *string             `json:"trump_suit"`
	TrumpRank     string              `json:"trump_rank"`
	RoundNumber   int                 `json:"round_number"`
	TeamScores    [2]int              `json:"team_scores"`
	GameOver      bool                `json:"game_over"`
	PlayersNeeded int                 `json:"players_needed"`
	PlayersJoined int                 `json:"players_joined"`
	PlayerList    []string            `json:"player_list"`
}

// BuildSnapshot renders the game for one viewer seat. A viewer of -1
// (a connection that has not joined) sees no hand at all. The viewer's
// hand is sent in presentation order; play_cards indices refer to
// positions in that order.
func BuildSnapshot(g engine.GameState, names []string, viewer int) *GameSnapshot {
	ctx := g.Round.Trump

	players := make([]PlayerSnapshot, 0, len(names))
	list := make([]string, 0, len(names))
	for seat, name := range names {
		p := PlayerSnapshot{
			ID:       seat,
			Name:     name,
			Team:     engine.TeamOf(seat),
			HandSize: len(g.Players[seat].Hand),
		}
		if seat == viewer {
			sorted, _ := engine.SortedHand(g.Players[seat].Hand, ctx)
			p.Hand = cardsToDTO(sorted)
		}
		players = append(players, p)
		list = append(list, name)
	}

	trick := make([]TrickPlaySnapshot, 0, len(g.Round.Trick.Plays))
	for _, pl := range g.Round.Trick.Plays {
		trick = append(trick, TrickPlaySnapshot{
			PlayerID: pl.Seat,
			Cards:    cardsToDTO(pl.Cards),
		})
	}

	current := -1
	if seat, ok := engine.CurrentSeat(g); ok {
		current = seat
	}
	lead := -1
	if g.Phase == engine.PhasePlaying {
		lead = engine.LeadSeat(g)
	}
	var trumpSuit *string
	if ctx.TrumpSuit != nil {
		s := ctx.TrumpSuit.String()
		trumpSuit = &s
	}
	trumpRank := ""
	if g.Phase != engine.PhaseLobby {
		trumpRank = ctx.TrumpRank.String()
	}

	return &GameSnapshot{
		Started:       g.Phase != engine.PhaseLobby,
		Players:       players,
		CurrentPlayer: current,
		CurrentTrick:  trick,
		LeadPlayer:    lead,
		TrumpSuit:     trumpSuit,
		TrumpRank:     trumpRank,
		RoundNumber:   g.RoundNumber,
		TeamScores:    g.Round.Points,
		GameOver:      g.Phase == engine.PhaseGameOver,
		PlayersNeeded: engine.NumSeats - len(names),
		PlayersJoined: len(names),
		PlayerList:    list,
	}
}
