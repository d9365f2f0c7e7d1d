package engine

import "fmt"

type Suit int

type Rank int

const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitHearts
	SuitSpades
	SuitJoker
)

const (
	Rank2  Rank = 2
	Rank3  Rank = 3
	Rank4  Rank = 4
	Rank5  Rank = 5
	Rank6  Rank = 6
	Rank7  Rank = 7
	Rank8  Rank = 8
	Rank9  Rank = 9
	Rank10 Rank = 10
	RankJ  Rank = 11
	RankQ  Rank = 12
	RankK  Rank = 13
	RankA  Rank = 14
	// Jokers carry SuitJoker and exist outside the level ladder.
	RankSmallJoker Rank = 15
	RankBigJoker   Rank = 16
)

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "C"
	case SuitDiamonds:
		return "D"
	case SuitHearts:
		return "H"
	case SuitSpades:
		return "S"
	case SuitJoker:
		return "J"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch {
	case r >= Rank2 && r <= Rank10:
		return fmt.Sprintf("%d", int(r))
	case r == RankJ:
		return "J"
	case r == RankQ:
		return "Q"
	case r == RankK:
		return "K"
	case r == RankA:
		return "A"
	case r == RankSmallJoker:
		return "SJ"
	case r == RankBigJoker:
		return "BJ"
	default:
		return "?"
	}
}

// Card is a pure value; three merged decks mean value-identical
// duplicates are legal and compare equal.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	if c.Suit == SuitJoker {
		return c.Rank.String()
	}
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

// TrumpContext is the per-round ordering context. A nil TrumpSuit means
// no suit trump was declared; rank trump (jokers, 2s, the level rank)
// still applies.
type TrumpContext struct {
	TrumpSuit *Suit
	TrumpRank Rank
}

type Phase int

const (
	PhaseLobby Phase = iota
	PhaseDealing
	PhaseTrumpDeclared
	PhasePlaying
	PhaseRoundComplete
	PhaseGameOver
)

const (
	NumSeats   = 4
	DeckCount  = 3
	ShoeSize   = 162
	HandSize   = 39
	BottomSize = 6
)

// TeamOf maps a seat to its partnership: seats 0&2 vs 1&3.
func TeamOf(seat int) int {
	return seat % 2
}

type PlayerState struct {
	Seat int
	Hand []Card
}

// Play is one seat's contribution to a trick.
type Play struct {
	Seat  int
	Cards []Card
}

// FollowClass identifies what followers are obliged to match: either the
// trump class or a led natural suit.
type FollowClass struct {
	Trump bool
	Suit  Suit
}

type TrickState struct {
	Leader        int
	Plays         []Play
	RequiredCount int
	Follow        FollowClass
}

type CompletedTrick struct {
	Leader int
	Plays  []Play
	Winner int
	Points int
}

type RoundState struct {
	Trump   TrumpContext
	Bottom  []Card
	Trick   TrickState
	History []CompletedTrick
	Points  [2]int
}

// RoundResult is the settlement of the last finished round, kept for
// auditing and for the round_complete marker after the next deal starts.
type RoundResult struct {
	Points       [2]int
	BottomPoints int
	BottomWinner int
	WinnerTeam   int
	Levels       [2]Rank
}

type GameState struct {
	Phase       Phase
	Seed        int64
	RoundNumber int
	Dealer      int
	Levels      [2]Rank
	Round       RoundState
	Players     [NumSeats]PlayerState
	LastResult  *RoundResult
}

func NewGame(seed int64) GameState {
	g := GameState{
		Phase:  PhaseLobby,
		Seed:   seed,
		Levels: [2]Rank{Rank2, Rank2},
	}
	for i := range g.Players {
		g.Players[i] = PlayerState{Seat: i}
	}
	return g
}

// CurrentSeat returns the seat holding turn authority.
func CurrentSeat(g GameState) (int, bool) {
	if g.Phase != PhasePlaying {
		return -1, false
	}
	t := g.Round.Trick
	if len(t.Plays) >= NumSeats {
		return -1, false
	}
	return (t.Leader + len(t.Plays)) % NumSeats, true
}

// LeadSeat returns the leader of the trick in progress.
func LeadSeat(g GameState) int {
	return g.Round.Trick.Leader
}
