package sim

import (
	"fmt"
	"math/rand"

	"github.com/markli1hoshipu/gulugulu-poker-sub001/internal/engine"
)

// RunSelfPlayRounds drives full rounds with uniformly random legal
// plays under a seeded RNG, checking card conservation and turn
// authority after every step. It returns the first violation found.
func RunSelfPlayRounds(seed int64, rounds int, maxStepsPerRound int) error {
	state := engine.NewGame(seed)
	rng := rand.New(rand.NewSource(seed))

	for r := 0; r < rounds; r++ {
		if err := engine.DealRound(&state); err != nil {
			return failure(seed, r, 0, fmt.Sprintf("deal: %v", err))
		}
		for step := 0; ; step++ {
			if step >= maxStepsPerRound {
				return failure(seed, r, step, "round did not terminate")
			}
			if state.Phase != engine.PhasePlaying {
				break
			}
			seat, ok := engine.CurrentSeat(state)
			if !ok {
				return failure(seed, r, step, "no seat holds turn authority")
			}
			indices := choosePlay(state, seat, rng)
			if len(indices) == 0 {
				return failure(seed, r, step, fmt.Sprintf("no legal play for seat %d", seat))
			}
			if err := engine.PlayCards(&state, seat, indices); err != nil {
				return failure(seed, r, step, fmt.Sprintf("seat %d play rejected: %v", seat, err))
			}
			if err := engine.CheckConservation(state); err != nil {
				return failure(seed, r, step, err.Error())
			}
		}
		if state.Phase == engine.PhaseGameOver {
			return nil
		}
		if state.Phase != engine.PhaseRoundComplete {
			return failure(seed, r, 0, fmt.Sprintf("unexpected phase %v after round", state.Phase))
		}
	}
	return nil
}

// choosePlay builds a random legal set of original-hand indices for
// seat: a random single-card lead (occasionally two cards of one
// class), or a follow that honors the forced-follow obligation.
func choosePlay(g engine.GameState, seat int, rng *rand.Rand) []int {
	hand := g.Players[seat].Hand
	if len(hand) == 0 {
		return nil
	}
	t := g.Round.Trick
	ctx := g.Round.Trump

	if len(t.Plays) == 0 {
		i := rng.Intn(len(hand))
		if rng.Intn(4) == 0 {
			for j := range hand {
				if j != i && sameClass(hand[i], hand[j], ctx) {
					return []int{i, j}
				}
			}
		}
		return []int{i}
	}

	var inClass, offClass []int
	for i, c := range hand {
		if engine.InFollowClass(c, t.Follow, ctx) {
			inClass = append(inClass, i)
		} else {
			offClass = append(offClass, i)
		}
	}
	rng.Shuffle(len(inClass), func(i, j int) { inClass[i], inClass[j] = inClass[j], inClass[i] })
	rng.Shuffle(len(offClass), func(i, j int) { offClass[i], offClass[j] = offClass[j], offClass[i] })

	picked := inClass
	if len(picked) > t.RequiredCount {
		picked = picked[:t.RequiredCount]
	}
	for _, i := range offClass {
		if len(picked) == t.RequiredCount {
			break
		}
		picked = append(picked, i)
	}
	return picked
}

func sameClass(a, b engine.Card, ctx engine.TrumpContext) bool {
	if engine.IsTrump(a, ctx) || engine.IsTrump(b, ctx) {
		return engine.IsTrump(a, ctx) && engine.IsTrump(b, ctx)
	}
	return a.Suit == b.Suit
}

func failure(seed int64, round, step int, reason string) error {
	return fmt.Errorf("self-play seed=%d round=%d step=%d: %s", seed, round, step, reason)
}
