package polling

import (
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
)

// manualVote builds a 4-option ballot for choice 1 piece by piece so tests
// can tamper with individual parts. Returns the ballot and the per-option
// blindings.
func manualVote(t *testing.T, gens *PedersenGens) (*Vote, []*ristretto.Scalar, *ristretto.Scalar) {
	assert := assert.New(t)

	var zero, one ristretto.Scalar
	zero.SetZero()
	one.SetOne()

	blindings := make([]*ristretto.Scalar, 4)
	var rsum ristretto.Scalar
	rsum.SetZero()
	for i := range blindings {
		var r ristretto.Scalar
		r.Rand()
		blindings[i] = &r
		rsum.Add(&rsum, &r)
	}

	commitments := []*ristretto.Point{
		gens.Commit(&zero, blindings[0]),
		gens.Commit(&one, blindings[1]),
		gens.Commit(&zero, blindings[2]),
		gens.Commit(&zero, blindings[3]),
	}

	var rpad ristretto.Scalar
	rpad.Rand()
	rsum.Add(&rsum, &rpad)
	pad := gens.Commit(&zero, &rpad)

	zeroProof, err := ProveZero(&ZeroInstance{G: gens.G, H: gens.H, Commitment: pad}, &rpad)
	assert.Nil(err)

	orProofs := make([]*PedersenOrProof, 4)
	for i, c := range commitments {
		var d ristretto.Point
		d.Sub(c, gens.G)
		instance := &PedersenOrInstance{G: gens.G, H: gens.H, C: c, D: &d}
		if i == 1 {
			orProofs[i], err = ProvePedersenOrOne(instance, blindings[i])
		} else {
			orProofs[i], err = ProvePedersenOrZero(instance, blindings[i])
		}
		assert.Nil(err)
	}

	return &Vote{
		Commitments: commitments,
		Pad:         pad,
		RSum:        &rsum,
		ZeroProof:   zeroProof,
		OrProofs:    orProofs,
	}, blindings, &rpad
}

func TestVerifyVote(t *testing.T) {
	assert := assert.New(t)

	gens := NewPedersenGens()
	vote, _, _ := manualVote(t, gens)
	assert.Nil(VerifyVote(gens, vote))

	for choice := 0; choice < 3; choice++ {
		built, err := NewVote(gens, choice, 3)
		assert.Nil(err)
		assert.Nil(VerifyVote(gens, built))
	}
}

func TestVerifyVoteRejectsNonBitOption(t *testing.T) {
	assert := assert.New(t)

	gens := NewPedersenGens()
	vote, blindings, _ := manualVote(t, gens)

	// Replace option 2 with a commitment to two and the best forgery its
	// caster can produce.
	vote.Commitments[2] = gens.Commit(uint64ToScalar(2), blindings[2])
	var d ristretto.Point
	d.Sub(vote.Commitments[2], gens.G)
	instance := &PedersenOrInstance{G: gens.G, H: gens.H, C: vote.Commitments[2], D: &d}
	forged, err := ProvePedersenOrOne(instance, blindings[2])
	assert.Nil(err)
	vote.OrProofs[2] = forged

	assert.NotNil(VerifyVote(gens, vote))
}

func TestVerifyVoteRejectsPadMismatch(t *testing.T) {
	assert := assert.New(t)

	gens := NewPedersenGens()
	vote, _, _ := manualVote(t, gens)

	// Swap the pad for a fresh zero commitment with its own valid proof,
	// leaving RSum stale. Every sub-proof verifies on its own; only the
	// homomorphic sum check can catch this.
	var zero, rpad2 ristretto.Scalar
	zero.SetZero()
	rpad2.Rand()
	vote.Pad = gens.Commit(&zero, &rpad2)
	proof, err := ProveZero(&ZeroInstance{G: gens.G, H: gens.H, Commitment: vote.Pad}, &rpad2)
	assert.Nil(err)
	vote.ZeroProof = proof

	assert.Nil(VerifyZero(&ZeroInstance{G: gens.G, H: gens.H, Commitment: vote.Pad}, vote.ZeroProof))
	for i, c := range vote.Commitments {
		var d ristretto.Point
		d.Sub(c, gens.G)
		assert.Nil(VerifyPedersenOr(&PedersenOrInstance{G: gens.G, H: gens.H, C: c, D: &d}, vote.OrProofs[i]))
	}
	assert.ErrorIs(VerifyVote(gens, vote), ErrVerification)
}

func TestVerifyVoteRejectsDoubleVote(t *testing.T) {
	assert := assert.New(t)

	gens := NewPedersenGens()
	vote, blindings, _ := manualVote(t, gens)

	// Flip option 0 from zero to one as well: a valid bit vector of weight
	// two. All OR proofs hold; the sum check must reject.
	var one ristretto.Scalar
	one.SetOne()
	vote.Commitments[0] = gens.Commit(&one, blindings[0])
	var d ristretto.Point
	d.Sub(vote.Commitments[0], gens.G)
	instance := &PedersenOrInstance{G: gens.G, H: gens.H, C: vote.Commitments[0], D: &d}
	proof, err := ProvePedersenOrOne(instance, blindings[0])
	assert.Nil(err)
	vote.OrProofs[0] = proof

	assert.ErrorIs(VerifyVote(gens, vote), ErrVerification)
}

func TestVerifyVoteShape(t *testing.T) {
	assert := assert.New(t)

	gens := NewPedersenGens()
	vote, _, _ := manualVote(t, gens)

	short := &Vote{
		Commitments: vote.Commitments,
		Pad:         vote.Pad,
		RSum:        vote.RSum,
		ZeroProof:   vote.ZeroProof,
		OrProofs:    vote.OrProofs[:3],
	}
	assert.ErrorIs(VerifyVote(gens, short), ErrShapeMismatch)

	_, err := NewVote(gens, 4, 4)
	assert.ErrorIs(err, ErrShapeMismatch)
	_, err = NewVote(gens, 0, 0)
	assert.ErrorIs(err, ErrShapeMismatch)
}
