package polling

import (
	"encoding/binary"
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

// Wire layout: 32-byte canonical scalar and compressed point encodings,
// concatenated in struct order. Variable-length proofs carry a uint32
// little-endian branch count; challenge and response lists must have equal
// length, enforced at decode time.
const (
	scalarSize = 32
	pointSize  = 32

	ZeroProofSize       = 2 * scalarSize
	PedersenOrProofSize = 4 * scalarSize
)

func (p *ZeroProof) ToBytes() []byte {
	var buf []byte
	buf = append(buf, p.Z.Bytes()...)
	buf = append(buf, p.C.Bytes()...)
	return buf
}

func ZeroProofFromBytes(buf []byte) (*ZeroProof, error) {
	if len(buf) != ZeroProofSize {
		return nil, fmt.Errorf("%w: zero proof must be %d bytes, got %d", ErrDecode, ZeroProofSize, len(buf))
	}
	z, err := scalarFromBytes(buf[:scalarSize])
	if err != nil {
		return nil, err
	}
	c, err := scalarFromBytes(buf[scalarSize:])
	if err != nil {
		return nil, err
	}
	return &ZeroProof{Z: z, C: c}, nil
}

func (p *PedersenOrProof) ToBytes() []byte {
	var buf []byte
	buf = append(buf, p.Challenge1.Bytes()...)
	buf = append(buf, p.Challenge2.Bytes()...)
	buf = append(buf, p.Z1.Bytes()...)
	buf = append(buf, p.Z2.Bytes()...)
	return buf
}

func PedersenOrProofFromBytes(buf []byte) (*PedersenOrProof, error) {
	if len(buf) != PedersenOrProofSize {
		return nil, fmt.Errorf("%w: or proof must be %d bytes, got %d", ErrDecode, PedersenOrProofSize, len(buf))
	}
	scalars := make([]*ristretto.Scalar, 4)
	for i := range scalars {
		s, err := scalarFromBytes(buf[i*scalarSize : (i+1)*scalarSize])
		if err != nil {
			return nil, err
		}
		scalars[i] = s
	}
	return &PedersenOrProof{
		Challenge1: scalars[0],
		Challenge2: scalars[1],
		Z1:         scalars[2],
		Z2:         scalars[3],
	}, nil
}

func (p *OrRelationProof) ToBytes() []byte {
	buf := make([]byte, 4, 4+2*len(p.Challenges)*scalarSize)
	binary.LittleEndian.PutUint32(buf, uint32(len(p.Challenges)))
	for _, c := range p.Challenges {
		buf = append(buf, c.Bytes()...)
	}
	for _, z := range p.Zs {
		buf = append(buf, z.Bytes()...)
	}
	return buf
}

func OrRelationProofFromBytes(buf []byte) (*OrRelationProof, error) {
	if len(buf) < 4 {
		return nil, fmt.Errorf("%w: or relation proof too short", ErrDecode)
	}
	n := int(binary.LittleEndian.Uint32(buf))
	if n == 0 || len(buf) != 4+2*n*scalarSize {
		return nil, fmt.Errorf("%w: or relation proof of %d bytes for %d branches", ErrDecode, len(buf), n)
	}
	buf = buf[4:]

	challenges := make([]*ristretto.Scalar, n)
	zs := make([]*ristretto.Scalar, n)
	for i := 0; i < n; i++ {
		c, err := scalarFromBytes(buf[i*scalarSize : (i+1)*scalarSize])
		if err != nil {
			return nil, err
		}
		challenges[i] = c
	}
	buf = buf[n*scalarSize:]
	for i := 0; i < n; i++ {
		z, err := scalarFromBytes(buf[i*scalarSize : (i+1)*scalarSize])
		if err != nil {
			return nil, err
		}
		zs[i] = z
	}
	return &OrRelationProof{Challenges: challenges, Zs: zs}, nil
}

func (v *Vote) ToBytes() []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(len(v.Commitments)))
	for _, c := range v.Commitments {
		buf = append(buf, c.Bytes()...)
	}
	buf = append(buf, v.Pad.Bytes()...)
	buf = append(buf, v.RSum.Bytes()...)
	buf = append(buf, v.ZeroProof.ToBytes()...)
	for _, p := range v.OrProofs {
		buf = append(buf, p.ToBytes()...)
	}
	return buf
}

func VoteFromBytes(buf []byte) (*Vote, error) {
	if len(buf) < 4 {
		return nil, fmt.Errorf("%w: vote too short", ErrDecode)
	}
	n := int(binary.LittleEndian.Uint32(buf))
	size := 4 + n*pointSize + pointSize + scalarSize + ZeroProofSize + n*PedersenOrProofSize
	if n == 0 || len(buf) != size {
		return nil, fmt.Errorf("%w: vote of %d bytes for %d options", ErrDecode, len(buf), n)
	}
	buf = buf[4:]

	commitments := make([]*ristretto.Point, n)
	for i := 0; i < n; i++ {
		c, err := pointFromBytes(buf[:pointSize])
		if err != nil {
			return nil, err
		}
		commitments[i] = c
		buf = buf[pointSize:]
	}

	pad, err := pointFromBytes(buf[:pointSize])
	if err != nil {
		return nil, err
	}
	buf = buf[pointSize:]

	rsum, err := scalarFromBytes(buf[:scalarSize])
	if err != nil {
		return nil, err
	}
	buf = buf[scalarSize:]

	zeroProof, err := ZeroProofFromBytes(buf[:ZeroProofSize])
	if err != nil {
		return nil, err
	}
	buf = buf[ZeroProofSize:]

	orProofs := make([]*PedersenOrProof, n)
	for i := 0; i < n; i++ {
		p, err := PedersenOrProofFromBytes(buf[:PedersenOrProofSize])
		if err != nil {
			return nil, err
		}
		orProofs[i] = p
		buf = buf[PedersenOrProofSize:]
	}

	return &Vote{
		Commitments: commitments,
		Pad:         pad,
		RSum:        rsum,
		ZeroProof:   zeroProof,
		OrProofs:    orProofs,
	}, nil
}
