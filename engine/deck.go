package engine

import "math/rand"

// Deck owns the 52-card universe, partitioned at all times into a
// shuffled "remaining" sequence and a "dealt" history. It is built once
// per session and reset between hands rather than reallocated.
type Deck struct {
	remaining []Card
	dealt     []Card
}

// NewDeck returns a full deck in canonical (unshuffled) order.
func NewDeck() *Deck {
	return &Deck{
		remaining: allCards(),
		dealt:     make([]Card, 0, 52),
	}
}

// Shuffle applies an in-place Fisher-Yates permutation to the cards
// still remaining, driven entirely by the caller's source. The same rng
// stream always produces the same order.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.remaining), func(i, j int) {
		d.remaining[i], d.remaining[j] = d.remaining[j], d.remaining[i]
	})
}

// Deal removes and returns the first n remaining cards, appending them
// to the dealt history. n < 1 is a usage error; n beyond availability
// fails with DeckExhaustedError reporting both counts.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 1 {
		return nil, usageErrorf("deal count must be positive, got %d", n)
	}
	if n > len(d.remaining) {
		return nil, &DeckExhaustedError{Requested: n, Remaining: len(d.remaining)}
	}
	cards := make([]Card, n)
	copy(cards, d.remaining[:n])
	d.dealt = append(d.dealt, cards...)
	d.remaining = d.remaining[n:]
	return cards, nil
}

// Reset restores the full unshuffled ordering and clears the dealt
// history.
func (d *Deck) Reset() {
	d.remaining = allCards()
	d.dealt = d.dealt[:0]
}

// Remaining reports how many cards are still dealable.
func (d *Deck) Remaining() int {
	return len(d.remaining)
}

// Dealt returns a copy of the dealt history in deal order.
func (d *Deck) Dealt() []Card {
	out := make([]Card, len(d.dealt))
	copy(out, d.dealt)
	return out
}
