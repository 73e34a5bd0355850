package auth_test

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirdfi/fund-orchestrator/internal/auth"
)

func newTestKey(t *testing.T) (*btcec.PrivateKey, string) {
	t.Helper()
	privKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	return privKey, hex.EncodeToString(privKey.PubKey().SerializeCompressed())
}

func signHex(privKey *btcec.PrivateKey, digest []byte) string {
	sig := ecdsa.Sign(privKey, digest)
	return hex.EncodeToString(sig.Serialize())
}

func TestDigestIsDeterministic(t *testing.T) {
	d1 := auth.NewDigest("deposit", "caller", 7).AddUint64(100).AddString("usdt")
	d2 := auth.NewDigest("deposit", "caller", 7).AddUint64(100).AddString("usdt")
	require.Equal(t, d1.SumHex(), d2.SumHex())
}

func TestDigestFieldsDoNotCollide(t *testing.T) {
	// "ab" + "c" and "a" + "bc" must hash differently.
	d1 := auth.NewDigest("m", "c", 1).AddString("ab").AddString("c")
	d2 := auth.NewDigest("m", "c", 1).AddString("a").AddString("bc")
	require.NotEqual(t, d1.SumHex(), d2.SumHex())

	d3 := auth.NewDigest("m", "c", 1).AddUint64(5)
	d4 := auth.NewDigest("m", "c", 2).AddUint64(5)
	require.NotEqual(t, d3.SumHex(), d4.SumHex())
}

func TestSingleSignerVerify(t *testing.T) {
	privKey, pubKeyHex := newTestKey(t)
	signer, err := auth.NewSingleSigner(pubKeyHex)
	require.NoError(t, err)

	digest := auth.NewDigest("deposit", pubKeyHex, 1).AddUint64(1000).Sum()
	sigHex := signHex(privKey, digest)

	require.NoError(t, signer.Verify(digest, []string{sigHex}))
}

func TestSingleSignerRejectsWrongKey(t *testing.T) {
	_, pubKeyHex := newTestKey(t)
	otherKey, _ := newTestKey(t)

	signer, err := auth.NewSingleSigner(pubKeyHex)
	require.NoError(t, err)

	digest := auth.NewDigest("deposit", pubKeyHex, 1).AddUint64(1000).Sum()
	sigHex := signHex(otherKey, digest)

	err = signer.Verify(digest, []string{sigHex})
	assert.ErrorIs(t, err, auth.ErrInvalidSignature)
}

func TestSingleSignerRejectsWrongDigest(t *testing.T) {
	privKey, pubKeyHex := newTestKey(t)
	signer, err := auth.NewSingleSigner(pubKeyHex)
	require.NoError(t, err)

	digest := auth.NewDigest("deposit", pubKeyHex, 1).AddUint64(1000).Sum()
	tampered := auth.NewDigest("deposit", pubKeyHex, 1).AddUint64(2000).Sum()
	sigHex := signHex(privKey, digest)

	err = signer.Verify(tampered, []string{sigHex})
	assert.ErrorIs(t, err, auth.ErrInvalidSignature)
}

func TestSingleSignerRequiresExactlyOneSignature(t *testing.T) {
	privKey, pubKeyHex := newTestKey(t)
	signer, err := auth.NewSingleSigner(pubKeyHex)
	require.NoError(t, err)

	digest := auth.NewDigest("deposit", pubKeyHex, 1).Sum()
	sigHex := signHex(privKey, digest)

	assert.ErrorIs(t, signer.Verify(digest, nil), auth.ErrInvalidSignature)
	assert.ErrorIs(t, signer.Verify(digest, []string{sigHex, sigHex}), auth.ErrInvalidSignature)
}

func TestThresholdWalletVerify(t *testing.T) {
	key1, pub1 := newTestKey(t)
	key2, pub2 := newTestKey(t)
	_, pub3 := newTestKey(t)

	wallet, err := auth.NewThresholdWallet(2, []string{pub1, pub2, pub3})
	require.NoError(t, err)

	digest := auth.NewDigest("withdraw", "wallet-1", 3).AddUint64(500).Sum()

	require.NoError(t, wallet.Verify(digest, []string{
		signHex(key1, digest),
		signHex(key2, digest),
	}))
}

func TestThresholdWalletRejectsTooFewSigners(t *testing.T) {
	key1, pub1 := newTestKey(t)
	_, pub2 := newTestKey(t)
	_, pub3 := newTestKey(t)

	wallet, err := auth.NewThresholdWallet(2, []string{pub1, pub2, pub3})
	require.NoError(t, err)

	digest := auth.NewDigest("withdraw", "wallet-1", 3).Sum()

	err = wallet.Verify(digest, []string{signHex(key1, digest)})
	assert.ErrorIs(t, err, auth.ErrThresholdNotMet)
}

func TestThresholdWalletRejectsDuplicatedSignature(t *testing.T) {
	key1, pub1 := newTestKey(t)
	_, pub2 := newTestKey(t)
	_, pub3 := newTestKey(t)

	wallet, err := auth.NewThresholdWallet(2, []string{pub1, pub2, pub3})
	require.NoError(t, err)

	digest := auth.NewDigest("withdraw", "wallet-1", 3).Sum()
	sigHex := signHex(key1, digest)

	// The same signature twice only matches one distinct key.
	err = wallet.Verify(digest, []string{sigHex, sigHex})
	assert.ErrorIs(t, err, auth.ErrThresholdNotMet)
}

func TestThresholdWalletRejectsOutsideSigner(t *testing.T) {
	key1, pub1 := newTestKey(t)
	_, pub2 := newTestKey(t)
	outsider, _ := newTestKey(t)

	wallet, err := auth.NewThresholdWallet(2, []string{pub1, pub2})
	require.NoError(t, err)

	digest := auth.NewDigest("withdraw", "wallet-1", 3).Sum()

	err = wallet.Verify(digest, []string{
		signHex(key1, digest),
		signHex(outsider, digest),
	})
	assert.ErrorIs(t, err, auth.ErrThresholdNotMet)
}

func TestNewThresholdWalletValidation(t *testing.T) {
	_, pub1 := newTestKey(t)
	_, pub2 := newTestKey(t)

	_, err := auth.NewThresholdWallet(0, []string{pub1})
	assert.Error(t, err)

	_, err = auth.NewThresholdWallet(3, []string{pub1, pub2})
	assert.Error(t, err)

	_, err = auth.NewThresholdWallet(1, []string{pub1, pub1})
	assert.ErrorIs(t, err, auth.ErrInvalidPublicKey)

	_, err = auth.NewThresholdWallet(1, []string{"not-hex"})
	assert.ErrorIs(t, err, auth.ErrInvalidPublicKey)
}
