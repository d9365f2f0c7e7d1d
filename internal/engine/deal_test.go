package engine

import "testing"

func TestDealShapes(t *testing.T) {
	g := NewGame(42)
	if err := DealRound(&g); err != nil {
		t.Fatalf("deal: %v", err)
	}
	for seat, p := range g.Players {
		if len(p.Hand) != HandSize {
			t.Fatalf("seat %d hand size %d, want %d", seat, len(p.Hand), HandSize)
		}
	}
	if len(g.Round.Bottom) != BottomSize {
		t.Fatalf("bottom size %d, want %d", len(g.Round.Bottom), BottomSize)
	}
	if err := CheckConservation(g); err != nil {
		t.Fatalf("conservation after deal: %v", err)
	}
	if g.Phase != PhasePlaying {
		t.Fatalf("phase after deal = %v, want playing", g.Phase)
	}
	if lead, _ := CurrentSeat(g); lead != g.Dealer {
		t.Fatalf("dealer should lead the first trick, got %d", lead)
	}
}

func TestDealDeterministic(t *testing.T) {
	g1 := NewGame(7)
	g2 := NewGame(7)
	if err := DealRound(&g1); err != nil {
		t.Fatalf("deal: %v", err)
	}
	if err := DealRound(&g2); err != nil {
		t.Fatalf("deal: %v", err)
	}
	for seat := 0; seat < NumSeats; seat++ {
		for i := range g1.Players[seat].Hand {
			if g1.Players[seat].Hand[i] != g2.Players[seat].Hand[i] {
				t.Fatalf("determinism mismatch at seat %d card %d", seat, i)
			}
		}
	}
	if g1.Round.Trump.TrumpRank != g2.Round.Trump.TrumpRank {
		t.Fatalf("trump rank differs across identical seeds")
	}
}

func TestDealShoeComposition(t *testing.T) {
	shoe := BuildShoe()
	if len(shoe) != ShoeSize {
		t.Fatalf("shoe size %d, want %d", len(shoe), ShoeSize)
	}
	counts := multiset(shoe)
	if counts[Card{SuitJoker, RankBigJoker}] != DeckCount {
		t.Fatalf("expected %d big jokers", DeckCount)
	}
	if counts[Card{SuitSpades, RankA}] != DeckCount {
		t.Fatalf("expected %d spade aces", DeckCount)
	}
	for c, n := range counts {
		if n != DeckCount {
			t.Fatalf("card %v appears %d times, want %d", c, n, DeckCount)
		}
	}
}

func TestDealTrumpSuitFromDealerHand(t *testing.T) {
	g := NewGame(3)
	if err := DealRound(&g); err != nil {
		t.Fatalf("deal: %v", err)
	}
	ctx := g.Round.Trump
	if ctx.TrumpRank != Rank2 {
		t.Fatalf("first round trump rank = %v, want 2", ctx.TrumpRank)
	}
	if ctx.TrumpSuit == nil {
		// Legal: the dealer may hold no level-rank card.
		return
	}
	found := false
	for _, c := range g.Players[g.Dealer].Hand {
		if c.Rank == ctx.TrumpRank && c.Suit == *ctx.TrumpSuit {
			found = true
		}
	}
	if !found {
		t.Fatalf("declared trump suit %v not backed by a dealer level card", *ctx.TrumpSuit)
	}
}
