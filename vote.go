package polling

import (
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

// Vote is a cast single-choice ballot: one Pedersen commitment per poll
// option, a padding commitment to zero absorbing leftover blinding, the
// total blinding RSum, a zero proof over the pad and one bit OR proof per
// option.
type Vote struct {
	Commitments []*ristretto.Point
	Pad         *ristretto.Point
	RSum        *ristretto.Scalar
	ZeroProof   *ZeroProof
	OrProofs    []*PedersenOrProof
}

// NewVote builds a ballot choosing option choice out of options. The
// per-option commitments form a one-hot vector; RSum is the sum of every
// blinding including the pad's.
func NewVote(gens *PedersenGens, choice, options int) (*Vote, error) {
	if options <= 0 || choice < 0 || choice >= options {
		return nil, fmt.Errorf("%w: choice %d of %d options", ErrShapeMismatch, choice, options)
	}

	var zero, one ristretto.Scalar
	zero.SetZero()
	one.SetOne()

	commitments := make([]*ristretto.Point, options)
	blindings := make([]*ristretto.Scalar, options)
	var rsum ristretto.Scalar
	rsum.SetZero()
	for i := 0; i < options; i++ {
		var r ristretto.Scalar
		r.Rand()
		blindings[i] = &r
		rsum.Add(&rsum, &r)
		if i == choice {
			commitments[i] = gens.Commit(&one, &r)
		} else {
			commitments[i] = gens.Commit(&zero, &r)
		}
	}

	var rpad ristretto.Scalar
	rpad.Rand()
	rsum.Add(&rsum, &rpad)
	pad := gens.Commit(&zero, &rpad)

	zeroProof, err := ProveZero(&ZeroInstance{G: gens.G, H: gens.H, Commitment: pad}, &rpad)
	if err != nil {
		return nil, err
	}

	orProofs := make([]*PedersenOrProof, options)
	for i := 0; i < options; i++ {
		var d ristretto.Point
		d.Sub(commitments[i], gens.G)
		instance := &PedersenOrInstance{G: gens.G, H: gens.H, C: commitments[i], D: &d}
		if i == choice {
			orProofs[i], err = ProvePedersenOrOne(instance, blindings[i])
		} else {
			orProofs[i], err = ProvePedersenOrZero(instance, blindings[i])
		}
		if err != nil {
			return nil, err
		}
	}

	return &Vote{
		Commitments: commitments,
		Pad:         pad,
		RSum:        &rsum,
		ZeroProof:   zeroProof,
		OrProofs:    orProofs,
	}, nil
}

// VerifyVote accepts a ballot iff all of the following hold:
//
//  1. sum(Commitments) + Pad == Commit(1, RSum), so the committed values
//     sum to exactly one,
//  2. the zero proof over Pad holds, so the pad contributes no value,
//  3. every per-option OR proof holds, so each committed value is a bit.
//
// Together these force the committed vector to be one-hot. The result is a
// strict conjunction: any failing sub-check rejects the ballot.
func VerifyVote(gens *PedersenGens, vote *Vote) error {
	if len(vote.Commitments) == 0 {
		return fmt.Errorf("%w: ballot without options", ErrShapeMismatch)
	}
	if len(vote.OrProofs) != len(vote.Commitments) {
		return fmt.Errorf("%w: %d commitments, %d or proofs",
			ErrShapeMismatch, len(vote.Commitments), len(vote.OrProofs))
	}

	var sum ristretto.Point
	sum.SetZero()
	for _, c := range vote.Commitments {
		sum.Add(&sum, c)
	}
	sum.Add(&sum, vote.Pad)

	var one ristretto.Scalar
	one.SetOne()
	if !pointsEqual(&sum, gens.Commit(&one, vote.RSum)) {
		return fmt.Errorf("%w: ballot sum is not a commitment to one", ErrVerification)
	}

	if err := VerifyZero(&ZeroInstance{G: gens.G, H: gens.H, Commitment: vote.Pad}, vote.ZeroProof); err != nil {
		return fmt.Errorf("pad: %w", err)
	}

	for i, c := range vote.Commitments {
		var d ristretto.Point
		d.Sub(c, gens.G)
		instance := &PedersenOrInstance{G: gens.G, H: gens.H, C: c, D: &d}
		if err := VerifyPedersenOr(instance, vote.OrProofs[i]); err != nil {
			return fmt.Errorf("option %d: %w", i, err)
		}
	}
	return nil
}
