package polling

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
)

const HASH_TO_POINT_DOMAIN_TAG = "private-polling-hash-to-point"

// scalarOrder is the little-endian encoding of the Ristretto group order
// l = 2^252 + 27742317777372353535851937790883648493.
var scalarOrder = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

func scalarIsCanonical(buf *[32]byte) bool {
	for i := 31; i >= 0; i-- {
		if buf[i] < scalarOrder[i] {
			return true
		}
		if buf[i] > scalarOrder[i] {
			return false
		}
	}
	// equal to the group order
	return false
}

// scalarFromBytes decodes the unique reduced little-endian encoding of a
// scalar. Encodings of values >= l are rejected, never silently reduced.
func scalarFromBytes(buf []byte) (*ristretto.Scalar, error) {
	if len(buf) != 32 {
		return nil, fmt.Errorf("%w: scalar must be 32 bytes, got %d", ErrDecode, len(buf))
	}
	var buf32 [32]byte
	copy(buf32[:], buf)
	if !scalarIsCanonical(&buf32) {
		return nil, fmt.Errorf("%w: scalar encoding not reduced", ErrDecode)
	}
	var s ristretto.Scalar
	s.SetBytes(&buf32)
	return &s, nil
}

func pointFromBytes(buf []byte) (*ristretto.Point, error) {
	if len(buf) != 32 {
		return nil, fmt.Errorf("%w: point must be 32 bytes, got %d", ErrDecode, len(buf))
	}
	var buf32 [32]byte
	copy(buf32[:], buf)
	var p ristretto.Point
	if !p.SetBytes(&buf32) {
		return nil, fmt.Errorf("%w: invalid ristretto point encoding", ErrDecode)
	}
	return &p, nil
}

func hashToPoint(public *ristretto.Point) *ristretto.Point {
	hash := blake2b.New512()
	hash.Write([]byte(HASH_TO_POINT_DOMAIN_TAG))
	hash.Write(public.Bytes())
	var key [64]byte
	copy(key[:], hash.Sum(nil))
	return pointFromUniformBytes(key[:])
}

func pointFromUniformBytes(key []byte) *ristretto.Point {
	var r1Bytes, r2Bytes [32]byte
	copy(r1Bytes[:], key[:32])
	copy(r2Bytes[:], key[32:])
	var r, r1, r2 ristretto.Point
	return r.Add(r1.SetElligator(&r1Bytes), r2.SetElligator(&r2Bytes))
}

func multiscalarMul(scalars []*ristretto.Scalar, points []*ristretto.Point) *ristretto.Point {
	var p ristretto.Point
	p.SetZero()
	for i := range scalars {
		var t ristretto.Point
		t.ScalarMult(points[i], scalars[i])
		p.Add(&p, &t)
	}
	return &p
}

func fromBytesModOrderWide(data []byte) *ristretto.Scalar {
	var data64 [64]byte
	copy(data64[:], data)
	var hs ristretto.Scalar
	return hs.SetReduced(&data64)
}

func uint64ToScalar(i uint64) *ristretto.Scalar {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	var s ristretto.Scalar
	return s.SetBytes(&buf)
}

func isIdentity(p *ristretto.Point) bool {
	var id ristretto.Point
	id.SetZero()
	return bytes.Equal(p.Bytes(), id.Bytes())
}

func pointsEqual(p, q *ristretto.Point) bool {
	return bytes.Equal(p.Bytes(), q.Bytes())
}
