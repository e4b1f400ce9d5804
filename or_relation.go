package polling

import (
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

// OrRelationInstance states that Commitment opens under G to one of the
// candidate messages Ms, i.e. Commitment - Ms[i]*G = r*H for some branch i
// known only to the prover.
type OrRelationInstance struct {
	G          *ristretto.Point
	H          *ristretto.Point
	Commitment *ristretto.Point
	Ms         []*ristretto.Scalar
}

// OrRelationProof generalizes PedersenOrProof to n branches; the branch
// challenges must sum to the transcript challenge.
type OrRelationProof struct {
	Challenges []*ristretto.Scalar
	Zs         []*ristretto.Scalar
}

func (instance *OrRelationInstance) Check() error {
	if len(instance.Ms) == 0 {
		return fmt.Errorf("%w: empty candidate set", ErrDegenerateInstance)
	}
	if isIdentity(instance.G) || isIdentity(instance.H) || isIdentity(instance.Commitment) {
		return fmt.Errorf("%w: identity element in or relation instance", ErrDegenerateInstance)
	}
	return nil
}

// branchBases returns a_i = Commitment - Ms[i]*G, the per-branch statement
// "a_i opens to zero under H".
func (instance *OrRelationInstance) branchBases() []*ristretto.Point {
	as := make([]*ristretto.Point, len(instance.Ms))
	for i, m := range instance.Ms {
		var mg, a ristretto.Point
		mg.ScalarMult(instance.G, m)
		a.Sub(instance.Commitment, &mg)
		as[i] = &a
	}
	return as
}

func orRelationChallenge(instance *OrRelationInstance, aa []*ristretto.Point) *ristretto.Scalar {
	t := InitialTranscript(OR_RELATION_DOMAIN_TAG)
	AppendPoint("g", instance.G, t)
	AppendPoint("h", instance.H, t)
	AppendPoint("commitment", instance.Commitment, t)
	appendInt64("n", uint64(len(instance.Ms)), t)
	for _, m := range instance.Ms {
		AppendScalar("m", m, t)
	}
	for _, a := range aa {
		AppendPoint("A", a, t)
	}
	return ChallengeScalar("c", t)
}

// branchCommitment recomputes A = z*H - c*a for one branch of a sigma
// protocol. Shared by the zero proof and both OR verifiers.
func branchCommitment(h, a *ristretto.Point, c, z *ristretto.Scalar) *ristretto.Point {
	var zh, ca, out ristretto.Point
	zh.ScalarMult(h, z)
	ca.ScalarMult(a, c)
	out.Sub(&zh, &ca)
	return &out
}

func scalarSum(scalars []*ristretto.Scalar) *ristretto.Scalar {
	var sum ristretto.Scalar
	sum.SetZero()
	for _, s := range scalars {
		sum.Add(&sum, s)
	}
	return &sum
}

// ProveOrRelation proves that Commitment opens to Ms[index], with r the
// commitment blinding. All other branches are simulated.
func ProveOrRelation(instance *OrRelationInstance, index int, r *ristretto.Scalar) (*OrRelationProof, error) {
	if err := instance.Check(); err != nil {
		return nil, err
	}
	n := len(instance.Ms)
	if index < 0 || index >= n {
		return nil, fmt.Errorf("%w: branch index %d with %d candidates", ErrShapeMismatch, index, n)
	}

	as := instance.branchBases()
	challenges := make([]*ristretto.Scalar, n)
	zs := make([]*ristretto.Scalar, n)
	aa := make([]*ristretto.Point, n)

	for i := range as {
		if i == index {
			continue
		}
		var ci, zi ristretto.Scalar
		ci.Rand()
		zi.Rand()
		challenges[i] = &ci
		zs[i] = &zi
		aa[i] = branchCommitment(instance.H, as[i], &ci, &zi)
	}

	var alpha ristretto.Scalar
	alpha.Rand()
	var areal ristretto.Point
	areal.ScalarMult(instance.H, &alpha)
	aa[index] = &areal

	e := orRelationChallenge(instance, aa)

	// The real branch takes whatever challenge share is left.
	var creal ristretto.Scalar
	creal.SetZero()
	creal.Add(&creal, e)
	for i, c := range challenges {
		if i == index {
			continue
		}
		creal.Sub(&creal, c)
	}
	var cr, zreal ristretto.Scalar
	cr.Mul(&creal, r)
	zreal.Add(&alpha, &cr)
	challenges[index] = &creal
	zs[index] = &zreal

	return &OrRelationProof{Challenges: challenges, Zs: zs}, nil
}

// VerifyOrRelation recomputes every branch commitment and accepts iff the
// branch challenges sum to the transcript challenge.
func VerifyOrRelation(instance *OrRelationInstance, proof *OrRelationProof) error {
	if err := instance.Check(); err != nil {
		return err
	}
	n := len(instance.Ms)
	if len(proof.Challenges) != n || len(proof.Zs) != n {
		return fmt.Errorf("%w: %d candidates, %d challenges, %d responses",
			ErrShapeMismatch, n, len(proof.Challenges), len(proof.Zs))
	}

	as := instance.branchBases()
	aa := make([]*ristretto.Point, n)
	for i := range as {
		aa[i] = branchCommitment(instance.H, as[i], proof.Challenges[i], proof.Zs[i])
	}

	if !scalarSum(proof.Challenges).Equals(orRelationChallenge(instance, aa)) {
		return fmt.Errorf("%w: or relation challenge sum mismatch", ErrVerification)
	}
	return nil
}
