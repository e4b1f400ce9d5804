package polling

import (
	"encoding/binary"

	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"
)

// Each protocol derives its Fiat-Shamir challenge under its own literal
// domain tag, so a transcript of one protocol can never be replayed as the
// transcript of another.
const (
	ZERO_PROOF_DOMAIN_TAG  = "private-polling-pedersen-zero-challenge"
	PEDERSEN_OR_DOMAIN_TAG = "private-polling-pedersen-or-challenge"
	OR_RELATION_DOMAIN_TAG = "private-polling-or-relation-challenge"
)

func InitialTranscript(label string) *merlin.Transcript {
	return merlin.NewTranscript(label)
}

func appendBytes(field, data []byte, t *merlin.Transcript) {
	t.AppendMessage(field, data)
}

func appendInt64(label string, i uint64, t *merlin.Transcript) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, i)
	appendBytes([]byte(label), buf, t)
}

func AppendScalar(label string, s *ristretto.Scalar, t *merlin.Transcript) {
	appendBytes([]byte(label), s.Bytes(), t)
}

func AppendPoint(label string, p *ristretto.Point, t *merlin.Transcript) {
	appendBytes([]byte(label), p.Bytes(), t)
}

// ChallengeScalar extracts 64 uniform bytes and reduces them mod the group
// order, a wide reduction with negligible bias.
func ChallengeScalar(label string, t *merlin.Transcript) *ristretto.Scalar {
	return fromBytesModOrderWide(t.ExtractBytes([]byte(label), 64))
}
