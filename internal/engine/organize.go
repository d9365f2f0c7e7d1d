package engine

import "sort"

// SortedHand returns the hand in presentation order together with a
// mapping from each sorted position to the card's index in the original
// hand. The trump block comes first, then the natural-suit blocks
// interleaved by color so adjacent blocks never share a color. The input
// multiset is preserved exactly.
//
// When several cards are value-identical the mapping consumes original
// indices left to right, so duplicate entries stay distinct.
func SortedHand(hand []Card, ctx TrumpContext) ([]Card, []int) {
	var trump []Card
	bySuit := map[Suit][]Card{}
	for _, c := range hand {
		if IsTrump(c, ctx) {
			trump = append(trump, c)
		} else {
			bySuit[c.Suit] = append(bySuit[c.Suit], c)
		}
	}

	byWeightDesc := func(block []Card) {
		sort.SliceStable(block, func(i, j int) bool {
			return Weight(block[i], ctx) > Weight(block[j], ctx)
		})
	}
	byWeightDesc(trump)
	for _, block := range bySuit {
		byWeightDesc(block)
	}

	spades := bySuit[SuitSpades]
	hearts := bySuit[SuitHearts]
	diamonds := bySuit[SuitDiamonds]
	clubs := bySuit[SuitClubs]

	var order [][]Card
	switch {
	case len(hearts) == 0 && len(diamonds) > 0 && len(clubs) > 0:
		// Diamond slots in right after the trump/spade block to keep
		// the black-red alternation.
		order = [][]Card{spades, diamonds, clubs}
	case len(spades) > 0 || len(spades)+len(clubs) >= len(hearts)+len(diamonds):
		order = [][]Card{spades, hearts, clubs, diamonds}
	default:
		order = [][]Card{hearts, spades, diamonds, clubs}
	}

	sorted := make([]Card, 0, len(hand))
	sorted = append(sorted, trump...)
	for _, block := range order {
		sorted = append(sorted, block...)
	}

	used := make([]bool, len(hand))
	origIndex := make([]int, len(sorted))
	for i, c := range sorted {
		for j, orig := range hand {
			if !used[j] && orig == c {
				used[j] = true
				origIndex[i] = j
				break
			}
		}
	}
	return sorted, origIndex
}
