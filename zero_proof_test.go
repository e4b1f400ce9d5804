package polling

import (
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
)

func zeroCommitment(gens *PedersenGens) (*ristretto.Point, *ristretto.Scalar) {
	var zero, r ristretto.Scalar
	zero.SetZero()
	r.Rand()
	return gens.Commit(&zero, &r), &r
}

func TestZeroProof(t *testing.T) {
	assert := assert.New(t)

	gens := NewPedersenGens()
	commitment, r := zeroCommitment(gens)
	instance := &ZeroInstance{G: gens.G, H: gens.H, Commitment: commitment}

	proof, err := ProveZero(instance, r)
	assert.Nil(err)
	assert.Nil(VerifyZero(instance, proof))
}

func TestZeroProofRejectsTampering(t *testing.T) {
	assert := assert.New(t)

	gens := NewPedersenGens()
	commitment, r := zeroCommitment(gens)
	instance := &ZeroInstance{G: gens.G, H: gens.H, Commitment: commitment}
	proof, err := ProveZero(instance, r)
	assert.Nil(err)

	var one ristretto.Scalar
	one.SetOne()

	var badC ristretto.Scalar
	badC.Add(proof.C, &one)
	assert.ErrorIs(VerifyZero(instance, &ZeroProof{Z: proof.Z, C: &badC}), ErrVerification)

	var badZ ristretto.Scalar
	badZ.Add(proof.Z, &one)
	assert.ErrorIs(VerifyZero(instance, &ZeroProof{Z: &badZ, C: proof.C}), ErrVerification)
}

func TestZeroProofRejectsNonZeroOpening(t *testing.T) {
	assert := assert.New(t)

	gens := NewPedersenGens()
	var one, r ristretto.Scalar
	one.SetOne()
	r.Rand()
	instance := &ZeroInstance{G: gens.G, H: gens.H, Commitment: gens.Commit(&one, &r)}

	// An honest prover run against a commitment to one yields a proof the
	// verifier must reject.
	proof, err := ProveZero(instance, &r)
	assert.Nil(err)
	assert.ErrorIs(VerifyZero(instance, proof), ErrVerification)
}

func TestZeroProofRejectsDegenerateInstance(t *testing.T) {
	assert := assert.New(t)

	gens := NewPedersenGens()
	commitment, r := zeroCommitment(gens)
	var id ristretto.Point
	id.SetZero()

	instance := &ZeroInstance{G: gens.G, H: &id, Commitment: commitment}
	_, err := ProveZero(instance, r)
	assert.ErrorIs(err, ErrDegenerateInstance)

	good := &ZeroInstance{G: gens.G, H: gens.H, Commitment: commitment}
	proof, err := ProveZero(good, r)
	assert.Nil(err)
	assert.ErrorIs(VerifyZero(instance, proof), ErrDegenerateInstance)
	assert.ErrorIs(VerifyZero(&ZeroInstance{G: gens.G, H: gens.H, Commitment: &id}, proof), ErrDegenerateInstance)
}
