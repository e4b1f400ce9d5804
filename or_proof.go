package polling

import (
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

// PedersenOrInstance states that C opens to zero under H, or D opens to
// zero under H. With D = C - G this says the commitment C holds a bit.
type PedersenOrInstance struct {
	G *ristretto.Point
	H *ristretto.Point
	C *ristretto.Point
	D *ristretto.Point
}

// PedersenOrProof is a two-branch CDS OR proof. The verifier binds the two
// branch challenges together: Challenge1 + Challenge2 must equal the
// transcript challenge, so at most one branch can be simulated.
type PedersenOrProof struct {
	Challenge1 *ristretto.Scalar
	Challenge2 *ristretto.Scalar
	Z1         *ristretto.Scalar
	Z2         *ristretto.Scalar
}

func (instance *PedersenOrInstance) Check() error {
	if isIdentity(instance.G) || isIdentity(instance.H) ||
		isIdentity(instance.C) || isIdentity(instance.D) {
		return fmt.Errorf("%w: identity element in or instance", ErrDegenerateInstance)
	}
	return nil
}

func pedersenOrChallenge(instance *PedersenOrInstance, a1, a2 *ristretto.Point) *ristretto.Scalar {
	t := InitialTranscript(PEDERSEN_OR_DOMAIN_TAG)
	AppendPoint("g", instance.G, t)
	AppendPoint("h", instance.H, t)
	AppendPoint("c", instance.C, t)
	AppendPoint("d", instance.D, t)
	AppendPoint("A1", a1, t)
	AppendPoint("A2", a2, t)
	return ChallengeScalar("e", t)
}

// ProvePedersenOrZero proves the instance for a committed zero: branch one
// (C = r*H) is real, branch two is simulated.
func ProvePedersenOrZero(instance *PedersenOrInstance, r *ristretto.Scalar) (*PedersenOrProof, error) {
	if err := instance.Check(); err != nil {
		return nil, err
	}

	// Simulated branch 2: pick z2, c2 and solve A2 = z2*H - c2*D.
	var z2, c2 ristretto.Scalar
	z2.Rand()
	c2.Rand()
	a2 := branchCommitment(instance.H, instance.D, &c2, &z2)

	// Real branch 1: A1 = alpha*H.
	var alpha ristretto.Scalar
	alpha.Rand()
	var a1 ristretto.Point
	a1.ScalarMult(instance.H, &alpha)

	e := pedersenOrChallenge(instance, &a1, a2)
	var c1 ristretto.Scalar
	c1.Sub(e, &c2)
	var c1r, z1 ristretto.Scalar
	c1r.Mul(&c1, r)
	z1.Add(&alpha, &c1r)

	return &PedersenOrProof{
		Challenge1: &c1,
		Challenge2: &c2,
		Z1:         &z1,
		Z2:         &z2,
	}, nil
}

// ProvePedersenOrOne proves the instance for a committed one: branch two
// (D = r*H) is real, branch one is simulated.
func ProvePedersenOrOne(instance *PedersenOrInstance, r *ristretto.Scalar) (*PedersenOrProof, error) {
	if err := instance.Check(); err != nil {
		return nil, err
	}

	// Simulated branch 1: A1 = z1*H - c1*C.
	var z1, c1 ristretto.Scalar
	z1.Rand()
	c1.Rand()
	a1 := branchCommitment(instance.H, instance.C, &c1, &z1)

	// Real branch 2: A2 = alpha*H.
	var alpha ristretto.Scalar
	alpha.Rand()
	var a2 ristretto.Point
	a2.ScalarMult(instance.H, &alpha)

	e := pedersenOrChallenge(instance, a1, &a2)
	var c2 ristretto.Scalar
	c2.Sub(e, &c1)
	var c2r, z2 ristretto.Scalar
	c2r.Mul(&c2, r)
	z2.Add(&alpha, &c2r)

	return &PedersenOrProof{
		Challenge1: &c1,
		Challenge2: &c2,
		Z1:         &z1,
		Z2:         &z2,
	}, nil
}

// VerifyPedersenOr recomputes both branch commitments and accepts iff
// Challenge1 + Challenge2 equals the transcript challenge over them.
func VerifyPedersenOr(instance *PedersenOrInstance, proof *PedersenOrProof) error {
	if err := instance.Check(); err != nil {
		return err
	}

	a1 := branchCommitment(instance.H, instance.C, proof.Challenge1, proof.Z1)
	a2 := branchCommitment(instance.H, instance.D, proof.Challenge2, proof.Z2)

	var sum ristretto.Scalar
	sum.Add(proof.Challenge1, proof.Challenge2)
	if !sum.Equals(pedersenOrChallenge(instance, a1, a2)) {
		return fmt.Errorf("%w: or challenge split mismatch", ErrVerification)
	}
	return nil
}
