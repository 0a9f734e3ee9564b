package tetris

import "math/rand"

// Randomizer picks the kind of each newly generated piece.
type Randomizer interface {
	Next() Kind
	// Name identifies the policy, e.g. for score tables.
	Name() string
}

// Randomizer names accepted by NewRandomizer.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// NewRandomizer builds a randomizer by name. Unknown names fall back to the
// uniform policy.
func NewRandomizer(name string, seed int64) Randomizer {
	if name == RandomizerBag {
		return NewBag(seed)
	}
	return NewUniform(seed)
}

// Uniform draws every kind independently with probability 1/7. Droughts and
// floods are possible; there is no fairness guarantee.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a seeded uniform randomizer.
func NewUniform(seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed))}
}

func (u *Uniform) Next() Kind   { return Kinds[u.rng.Intn(len(Kinds))] }
func (u *Uniform) Name() string { return RandomizerUniform }

// Bag deals all seven kinds in shuffled order before reshuffling, so any kind
// appears at least once every 13 pieces.
type Bag struct {
	rng  *rand.Rand
	bag  []Kind
	next int
}

// NewBag returns a seeded 7-bag randomizer.
func NewBag(seed int64) *Bag {
	return &Bag{rng: rand.New(rand.NewSource(seed))}
}

func (b *Bag) Next() Kind {
	if b.next >= len(b.bag) {
		b.refill()
	}
	k := b.bag[b.next]
	b.next++
	return k
}

func (b *Bag) Name() string { return RandomizerBag }

func (b *Bag) refill() {
	b.bag = append(b.bag[:0], Kinds[:]...)
	b.rng.Shuffle(len(b.bag), func(i, j int) { b.bag[i], b.bag[j] = b.bag[j], b.bag[i] })
	b.next = 0
}
