package engine

// Weight bands, highest first. The 2s band is checked before the level
// band so that a level of 2 still scores in the 2s band.
const (
	weightBigJoker   = 10000
	weightSmallJoker = 9999
	weightLevelOn    = 9500
	weightLevelOff   = 9000
	weightTwoOn      = 8800
	weightTwoOff     = 8500
	weightTrumpSuit  = 7000
)

func SuitPriority(s Suit) int {
	switch s {
	case SuitSpades:
		return 4
	case SuitHearts:
		return 3
	case SuitDiamonds:
		return 2
	case SuitClubs:
		return 1
	default:
		return 0
	}
}

func RankValue(r Rank) int {
	return int(r)
}

// IsTrump reports whether the card belongs to the trump class under ctx:
// jokers, every 2, every level-rank card, and the declared trump suit.
func IsTrump(c Card, ctx TrumpContext) bool {
	if c.Rank == RankBigJoker || c.Rank == RankSmallJoker {
		return true
	}
	if c.Rank == Rank2 || c.Rank == ctx.TrumpRank {
		return true
	}
	return ctx.TrumpSuit != nil && c.Suit == *ctx.TrumpSuit
}

// Weight computes the total-order display weight of a card under ctx.
// Value-identical duplicates tie; all other pairs order strictly. For
// trick comparison the weight is only meaningful between cards of the
// same follow class.
func Weight(c Card, ctx TrumpContext) int {
	onSuit := ctx.TrumpSuit != nil && c.Suit == *ctx.TrumpSuit
	switch {
	case c.Rank == RankBigJoker:
		return weightBigJoker
	case c.Rank == RankSmallJoker:
		return weightSmallJoker
	case c.Rank == Rank2:
		if onSuit {
			return weightTwoOn
		}
		return weightTwoOff + SuitPriority(c.Suit)
	case c.Rank == ctx.TrumpRank:
		if onSuit {
			return weightLevelOn
		}
		return weightLevelOff + SuitPriority(c.Suit)
	case onSuit:
		return weightTrumpSuit + RankValue(c.Rank)
	default:
		return SuitPriority(c.Suit)*100 + RankValue(c.Rank)
	}
}

// CardPoints returns the scoring value of a rank: 5s are worth 5,
// 10s and kings 10, everything else nothing.
func CardPoints(r Rank) int {
	switch r {
	case Rank5:
		return 5
	case Rank10, RankK:
		return 10
	default:
		return 0
	}
}

// RoundPointTotal is the fixed sum of point cards in the shoe,
// usable as a conservation check.
const RoundPointTotal = DeckCount * 4 * (5 + 10 + 10)

// InFollowClass reports whether a card may satisfy the follow
// obligation fc under ctx. Trump classes absorb every trump card;
// a suit class takes only non-trump cards of that suit.
func InFollowClass(c Card, fc FollowClass, ctx TrumpContext) bool {
	if fc.Trump {
		return IsTrump(c, ctx)
	}
	return !IsTrump(c, ctx) && c.Suit == fc.Suit
}

// classOf returns the follow class a led card establishes.
func classOf(c Card, ctx TrumpContext) FollowClass {
	if IsTrump(c, ctx) {
		return FollowClass{Trump: true}
	}
	return FollowClass{Suit: c.Suit}
}
