package engine

import "sort"

// PlayCards validates and applies seat's play of the given original-hand
// indices. Rule breaches come back as *ValidationError with no state
// mutated, so the caller may retry.
func PlayCards(g *GameState, seat int, indices []int) error {
	if g.Phase != PhasePlaying {
		return validationf("no trick in progress")
	}
	current, ok := CurrentSeat(*g)
	if !ok || seat != current {
		return validationf("not your turn")
	}
	if len(indices) == 0 {
		return validationf("no cards selected")
	}

	hand := g.Players[seat].Hand
	seen := map[int]bool{}
	for _, i := range indices {
		if i < 0 || i >= len(hand) {
			return validationf("card index %d out of range", i)
		}
		if seen[i] {
			return validationf("card index %d selected twice", i)
		}
		seen[i] = true
	}
	cards := make([]Card, 0, len(indices))
	for _, i := range indices {
		cards = append(cards, hand[i])
	}

	ctx := g.Round.Trump
	t := &g.Round.Trick
	if len(t.Plays) == 0 {
		// Leading: the play fixes the required count and follow class.
		// Every led card must belong to the one class it establishes.
		fc := classOf(cards[0], ctx)
		for _, c := range cards[1:] {
			if classOf(c, ctx) != fc {
				return validationf("lead must be a single suit or all trump")
			}
		}
		t.RequiredCount = len(cards)
		t.Follow = fc
	} else {
		if len(cards) != t.RequiredCount {
			return validationf("must play exactly %d cards", t.RequiredCount)
		}
		inHand := 0
		for _, c := range hand {
			if InFollowClass(c, t.Follow, ctx) {
				inHand++
			}
		}
		obliged := inHand
		if obliged > t.RequiredCount {
			obliged = t.RequiredCount
		}
		played := 0
		for _, c := range cards {
			if InFollowClass(c, t.Follow, ctx) {
				played++
			}
		}
		if played < obliged {
			return validationf("must follow with %s before other cards", t.Follow.describe())
		}
	}

	removeByIndices(&g.Players[seat].Hand, indices)
	t.Plays = append(t.Plays, Play{Seat: seat, Cards: cards})
	if len(t.Plays) == NumSeats {
		resolveTrick(g)
	}
	return nil
}

func (fc FollowClass) describe() string {
	if fc.Trump {
		return "trump"
	}
	return fc.Suit.String()
}

// removeByIndices splices the listed positions out of the hand,
// highest first so earlier positions stay valid.
func removeByIndices(hand *[]Card, indices []int) {
	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, i := range sorted {
		*hand = append((*hand)[:i], (*hand)[i+1:]...)
	}
}

// resolveTrick picks the winner, credits points and rotates the lead.
// A play contends with its strongest card that is trump or of the led
// class; a play holding neither is ineligible regardless of weight.
// Trump outranks every non-matching class, and on a value-identical tie
// the earlier play stands.
func resolveTrick(g *GameState) {
	t := g.Round.Trick
	ctx := g.Round.Trump

	winner := t.Leader
	bestWeight := -1
	points := 0
	for _, p := range t.Plays {
		for _, c := range p.Cards {
			points += CardPoints(c.Rank)
		}
		w := contenderWeight(p.Cards, t.Follow, ctx)
		if w > bestWeight {
			bestWeight = w
			winner = p.Seat
		}
	}

	g.Round.Points[TeamOf(winner)] += points
	g.Round.History = append(g.Round.History, CompletedTrick{
		Leader: t.Leader,
		Plays:  t.Plays,
		Winner: winner,
		Points: points,
	})
	g.Round.Trick = TrickState{Leader: winner}

	if handsEmpty(g) {
		finishRound(g)
	}
}

// contenderWeight is the weight a play competes with in trick
// resolution: its strongest trump or led-class card, -1 when it has
// neither. Every trump band sits above every plain band, so one weight
// maximum covers both "trump beats the led suit" and "higher trump
// beats lower trump". The follow obligation (InFollowClass) is a
// different relation and stays out of this.
func contenderWeight(cards []Card, fc FollowClass, ctx TrumpContext) int {
	best := -1
	for _, c := range cards {
		if !IsTrump(c, ctx) && !InFollowClass(c, fc, ctx) {
			continue
		}
		if w := Weight(c, ctx); w > best {
			best = w
		}
	}
	return best
}

func handsEmpty(g *GameState) bool {
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}
