package server

import "github.com/markli1hoshipu/gulugulu-poker-sub001/internal/engine"

// Event is an informational marker layered on a game_state broadcast.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type RoundResultView struct {
	TeamScores   [2]int   `json:"team_scores"`
	BottomPoints int      `json:"bottom_points"`
	BottomWinner int      `json:"bottom_winner"`
	WinnerTeam   int      `json:"winner_team"`
	Levels       []string `json:"levels"`
}

func roundResultView(r *engine.RoundResult) RoundResultView {
	return RoundResultView{
		TeamScores:   r.Points,
		BottomPoints: r.BottomPoints,
		BottomWinner: r.BottomWinner,
		WinnerTeam:   r.WinnerTeam,
		Levels:       []string{r.Levels[0].String(), r.Levels[1].String()},
	}
}

// buildEvents diffs the state around a mutation and emits the
// round_complete / game_complete markers.
func buildEvents(prev, next engine.GameState) []Event {
	var events []Event
	if next.LastResult != nil && next.LastResult != prev.LastResult {
		events = append(events, Event{Type: "round_complete", Data: roundResultView(next.LastResult)})
	}
	if next.Phase == engine.PhaseGameOver && prev.Phase != engine.PhaseGameOver {
		events = append(events, Event{Type: "game_complete", Data: roundResultView(next.LastResult)})
	}
	return events
}
