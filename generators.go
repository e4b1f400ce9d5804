package polling

import (
	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/sha3"
)

// PedersenGens holds the two fixed independent generators of the commitment
// scheme. G carries the committed message, H the blinding; H is derived from
// G by hashing, so its discrete log relative to G is unknown.
type PedersenGens struct {
	G *ristretto.Point
	H *ristretto.Point
}

func NewPedersenGens() *PedersenGens {
	var base ristretto.Point
	base.SetBase()

	return &PedersenGens{
		G: &base,
		H: hashToPoint(&base),
	}
}

// DefaultPedersenGens derives H the way dalek's bulletproofs crate does,
// from the SHA3-512 digest of the compressed base point.
func DefaultPedersenGens() *PedersenGens {
	var base ristretto.Point
	base.SetBase()

	h := sha3.New512()
	h.Write(base.Bytes())

	return &PedersenGens{
		G: &base,
		H: pointFromUniformBytes(h.Sum(nil)),
	}
}

// Commit returns value*G + blinding*H.
func (pg *PedersenGens) Commit(value, blinding *ristretto.Scalar) *ristretto.Point {
	return multiscalarMul([]*ristretto.Scalar{value, blinding}, []*ristretto.Point{pg.G, pg.H})
}
