package engine

// finishRound settles a round once every hand is empty: the bottom's
// points are doubled and credited to the team that won the final trick,
// the team with the higher round total wins the round (dealer's team on
// a tie) and advances its level by one rank. A team that would advance
// past ace wins the game.
func finishRound(g *GameState) {
	last := g.Round.History[len(g.Round.History)-1]
	bottomPoints := 0
	for _, c := range g.Round.Bottom {
		bottomPoints += CardPoints(c.Rank)
	}
	g.Round.Points[TeamOf(last.Winner)] += 2 * bottomPoints

	winnerTeam := TeamOf(g.Dealer)
	if g.Round.Points[0] != g.Round.Points[1] {
		winnerTeam = 0
		if g.Round.Points[1] > g.Round.Points[0] {
			winnerTeam = 1
		}
	}

	gameOver := g.Levels[winnerTeam] == RankA
	if !gameOver {
		g.Levels[winnerTeam]++
	}

	g.LastResult = &RoundResult{
		Points:       g.Round.Points,
		BottomPoints: bottomPoints,
		BottomWinner: TeamOf(last.Winner),
		WinnerTeam:   winnerTeam,
		Levels:       g.Levels,
	}

	g.Dealer = (g.Dealer + 1) % NumSeats
	if gameOver {
		g.Phase = PhaseGameOver
		return
	}
	g.Phase = PhaseRoundComplete
}
