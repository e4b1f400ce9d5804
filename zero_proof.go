package polling

import (
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

// ZeroInstance states that Commitment is a Pedersen commitment to zero,
// i.e. Commitment = r*H for some blinding r known to the prover.
type ZeroInstance struct {
	G          *ristretto.Point
	H          *ristretto.Point
	Commitment *ristretto.Point
}

// ZeroProof is a Schnorr proof of knowledge of the blinding of a
// commitment to zero: Z = alpha + C*r with A = alpha*H.
type ZeroProof struct {
	Z *ristretto.Scalar
	C *ristretto.Scalar
}

func (instance *ZeroInstance) Check() error {
	if isIdentity(instance.G) || isIdentity(instance.H) || isIdentity(instance.Commitment) {
		return fmt.Errorf("%w: identity element in zero instance", ErrDegenerateInstance)
	}
	return nil
}

func zeroChallenge(instance *ZeroInstance, a *ristretto.Point) *ristretto.Scalar {
	t := InitialTranscript(ZERO_PROOF_DOMAIN_TAG)
	AppendPoint("g", instance.G, t)
	AppendPoint("h", instance.H, t)
	AppendPoint("commitment", instance.Commitment, t)
	AppendPoint("A", a, t)
	return ChallengeScalar("c", t)
}

func ProveZero(instance *ZeroInstance, r *ristretto.Scalar) (*ZeroProof, error) {
	if err := instance.Check(); err != nil {
		return nil, err
	}

	var alpha ristretto.Scalar
	alpha.Rand()
	var a ristretto.Point
	a.ScalarMult(instance.H, &alpha)

	c := zeroChallenge(instance, &a)

	var cr, z ristretto.Scalar
	cr.Mul(c, r)
	z.Add(&alpha, &cr)

	return &ZeroProof{Z: &z, C: c}, nil
}

// VerifyZero recomputes A' = Z*H - C*Commitment and accepts iff the
// transcript challenge over A' equals C.
func VerifyZero(instance *ZeroInstance, proof *ZeroProof) error {
	if err := instance.Check(); err != nil {
		return err
	}

	a := branchCommitment(instance.H, instance.Commitment, proof.C, proof.Z)
	if !zeroChallenge(instance, a).Equals(proof.C) {
		return fmt.Errorf("%w: zero opening challenge mismatch", ErrVerification)
	}
	return nil
}
