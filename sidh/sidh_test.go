package sidh

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpeak-crypto/sidh751/internal/field"
)

func TestKeyExchangeAgrees(t *testing.T) {
	alicePub, aliceSec, err := GenerateAliceKeypair(rand.Reader)
	require.NoError(t, err)
	bobPub, bobSec, err := GenerateBobKeypair(rand.Reader)
	require.NoError(t, err)

	aliceShared := aliceSec.SharedSecret(&bobPub)
	bobShared := bobSec.SharedSecret(&alicePub)

	assert.Equal(t, aliceShared, bobShared)
}

func TestPublicKeyWireRoundTrip(t *testing.T) {
	alicePub, _, err := GenerateAliceKeypair(rand.Reader)
	require.NoError(t, err)

	var buf [PublicKeySize]byte
	alicePub.ToBytes(buf[:])
	decoded, err := PublicKeyAliceFromBytes(buf[:])
	require.NoError(t, err)

	assert.True(t, field.VartimeEq(&alicePub.AffineXP, &decoded.AffineXP))
	assert.True(t, field.VartimeEq(&alicePub.AffineXQ, &decoded.AffineXQ))
	assert.True(t, field.VartimeEq(&alicePub.AffineXQmP, &decoded.AffineXQmP))

	bobPub, _, err := GenerateBobKeypair(rand.Reader)
	require.NoError(t, err)

	bobPub.ToBytes(buf[:])
	decodedBob, err := PublicKeyBobFromBytes(buf[:])
	require.NoError(t, err)

	assert.True(t, field.VartimeEq(&bobPub.AffineXP, &decodedBob.AffineXP))
	assert.True(t, field.VartimeEq(&bobPub.AffineXQ, &decodedBob.AffineXQ))
	assert.True(t, field.VartimeEq(&bobPub.AffineXQmP, &decodedBob.AffineXQmP))
}

func TestPublicKeyFromBytesRejectsShortInput(t *testing.T) {
	_, err := PublicKeyAliceFromBytes(make([]byte, PublicKeySize-1))
	assert.Error(t, err)

	_, err = PublicKeyBobFromBytes(make([]byte, PublicKeySize-1))
	assert.Error(t, err)
}

func TestAliceScalarIsEven(t *testing.T) {
	_, sec, err := GenerateAliceKeypair(rand.Reader)
	require.NoError(t, err)

	assert.Equal(t, byte(0), sec.Scalar[0]&1, "Alice's scalar must be even")
	assert.Equal(t, byte(0), sec.Scalar[47], "Alice's scalar must fit under 2^372")
	assert.LessOrEqual(t, sec.Scalar[46], byte(15))
}

func TestDifferentKeypairsProduceDifferentSharedSecrets(t *testing.T) {
	alicePub1, aliceSec1, err := GenerateAliceKeypair(rand.Reader)
	require.NoError(t, err)
	_, aliceSec2, err := GenerateAliceKeypair(rand.Reader)
	require.NoError(t, err)
	bobPub, bobSec, err := GenerateBobKeypair(rand.Reader)
	require.NoError(t, err)

	s1 := aliceSec1.SharedSecret(&bobPub)
	s2 := aliceSec2.SharedSecret(&bobPub)
	assert.NotEqual(t, s1, s2)

	agree1 := bobSec.SharedSecret(&alicePub1)
	assert.Equal(t, s1, agree1)
}
