package engine

import "testing"

// lastTrickGame is one trick away from the end of a round.
func lastTrickGame(ctx TrumpContext, bottom []Card) GameState {
	g := playReady([NumSeats][]Card{
		{{SuitHearts, Rank5}},
		{{SuitHearts, Rank8}},
		{{SuitHearts, Rank9}},
		{{SuitHearts, RankA}},
	}, ctx, 0)
	g.Round.Bottom = bottom
	return g
}

func finishLastTrick(t *testing.T, g *GameState) {
	t.Helper()
	for seat := 0; seat < NumSeats; seat++ {
		if err := PlayCards(g, seat, []int{0}); err != nil {
			t.Fatalf("seat %d: %v", seat, err)
		}
	}
}

func TestBottomPointsDoubledToLastTrickWinner(t *testing.T) {
	g := lastTrickGame(TrumpContext{TrumpRank: Rank3}, []Card{
		{SuitClubs, Rank5},
		{SuitClubs, Rank10},
	})
	finishLastTrick(t, &g)

	// Seat 3 wins the last trick: 5 trick points plus 2x(5+10) from the bottom.
	if g.LastResult.BottomWinner != 1 {
		t.Fatalf("bottom winner team = %d, want 1", g.LastResult.BottomWinner)
	}
	if g.LastResult.BottomPoints != 15 {
		t.Fatalf("bottom points = %d, want 15", g.LastResult.BottomPoints)
	}
	if g.LastResult.Points[1] != 35 {
		t.Fatalf("team 1 points = %d, want 35", g.LastResult.Points[1])
	}
}

func TestRoundWinnerAdvancesLevel(t *testing.T) {
	g := lastTrickGame(TrumpContext{TrumpRank: Rank2}, nil)
	finishLastTrick(t, &g)

	if g.Phase != PhaseRoundComplete {
		t.Fatalf("phase = %v, want round complete", g.Phase)
	}
	if g.LastResult.WinnerTeam != 1 {
		t.Fatalf("winner team = %d, want 1", g.LastResult.WinnerTeam)
	}
	if g.Levels[1] != Rank3 || g.Levels[0] != Rank2 {
		t.Fatalf("levels = %v, want winning team advanced by one", g.Levels)
	}
	if g.Dealer != 1 {
		t.Fatalf("dealer = %d, want rotation to 1", g.Dealer)
	}
}

func TestScorelessTieGoesToDealerTeam(t *testing.T) {
	g := lastTrickGame(TrumpContext{TrumpRank: Rank2}, nil)
	// No point cards anywhere: both teams end at zero.
	g.Players[0].Hand = []Card{{SuitHearts, Rank6}}
	finishLastTrick(t, &g)

	if g.LastResult.Points != [2]int{0, 0} {
		t.Fatalf("expected scoreless round, got %v", g.LastResult.Points)
	}
	if g.LastResult.WinnerTeam != 0 {
		t.Fatalf("tie should go to the dealer's team, got %d", g.LastResult.WinnerTeam)
	}
}

func TestGameOverWhenLevelWouldPassAce(t *testing.T) {
	g := lastTrickGame(TrumpContext{TrumpRank: Rank2}, nil)
	g.Levels[1] = RankA
	finishLastTrick(t, &g)

	if g.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", g.Phase)
	}
	if g.Levels[1] != RankA {
		t.Fatalf("level advanced past ace: %v", g.Levels[1])
	}
}

func TestNextRoundDealAfterRoundComplete(t *testing.T) {
	g := lastTrickGame(TrumpContext{TrumpRank: Rank2}, nil)
	finishLastTrick(t, &g)
	round := g.RoundNumber

	if err := DealRound(&g); err != nil {
		t.Fatalf("next deal: %v", err)
	}
	if g.RoundNumber != round+1 {
		t.Fatalf("round number = %d, want %d", g.RoundNumber, round+1)
	}
	if g.Round.Trump.TrumpRank != g.Levels[TeamOf(1)] {
		t.Fatalf("trump rank should track the new dealer team's level")
	}
	if err := CheckConservation(g); err != nil {
		t.Fatalf("conservation after redeal: %v", err)
	}
}
