package engine

import "math/rand"

// BuildShoe merges three standard 54-card decks.
func BuildShoe() []Card {
	shoe := make([]Card, 0, ShoeSize)
	suits := []Suit{SuitClubs, SuitDiamonds, SuitHearts, SuitSpades}
	for d := 0; d < DeckCount; d++ {
		for _, s := range suits {
			for r := Rank2; r <= RankA; r++ {
				shoe = append(shoe, Card{Suit: s, Rank: r})
			}
		}
		shoe = append(shoe,
			Card{Suit: SuitJoker, Rank: RankSmallJoker},
			Card{Suit: SuitJoker, Rank: RankBigJoker},
		)
	}
	return shoe
}

func Shuffle(shoe []Card, seed int64) []Card {
	shuffled := make([]Card, len(shoe))
	copy(shuffled, shoe)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// DealRound shuffles a fresh shoe and deals 39 cards to each seat in
// seat order starting from the dealer; the 6 remaining cards form the
// bottom. The round's trump context is fixed here: the level of the
// dealer's team is the trump rank, and the suit of the first level-rank
// card in the dealer's dealt hand (if any) becomes the trump suit.
func DealRound(g *GameState) error {
	g.Phase = PhaseDealing
	shoe := Shuffle(BuildShoe(), g.Seed+int64(g.RoundNumber))
	if len(shoe) != ShoeSize {
		return &DealError{Reason: "shoe is not 162 cards"}
	}
	if len(shoe)-NumSeats*HandSize != BottomSize {
		return &DealError{Reason: "deal leaves wrong remainder"}
	}

	idx := 0
	for i := 0; i < NumSeats; i++ {
		seat := (g.Dealer + i) % NumSeats
		g.Players[seat].Hand = append([]Card(nil), shoe[idx:idx+HandSize]...)
		idx += HandSize
	}
	bottom := append([]Card(nil), shoe[idx:]...)

	trumpRank := g.Levels[TeamOf(g.Dealer)]
	ctx := TrumpContext{TrumpRank: trumpRank}
	for _, c := range g.Players[g.Dealer].Hand {
		if c.Rank == trumpRank && c.Suit != SuitJoker {
			s := c.Suit
			ctx.TrumpSuit = &s
			break
		}
	}
	g.Phase = PhaseTrumpDeclared

	g.RoundNumber++
	g.Round = RoundState{
		Trump:  ctx,
		Bottom: bottom,
		Trick:  TrickState{Leader: g.Dealer},
	}
	g.Phase = PhasePlaying
	return nil
}
