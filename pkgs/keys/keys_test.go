package keys

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldrail/btchdkit/pkgs/networks"
)

func TestWIFImport(t *testing.T) {
	priv, compressed, err := PrivateKeyFromWIF("5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ", networks.Bitcoin)
	require.NoError(t, err)
	assert.False(t, compressed)
	assert.Equal(t, "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d", hex.EncodeToString(priv.Bytes()))
}

func TestWIFExport(t *testing.T) {
	d, ok := new(big.Int).SetString("2BD036D77C4FE1F4DAFEAA005A1DC7F69522E4B3B53E7F537FA16C5ED5986D03", 16)
	require.True(t, ok)

	priv, err := NewPrivateKeyFromInt(d, networks.Bitcoin)
	require.NoError(t, err)

	assert.Equal(t, "5J9ajYkr763m6HvUkGar3nybCL4e5UMYRP1svduPM3fx1paSK6o", priv.WIF(false))
}

func TestWIFRoundTrip(t *testing.T) {
	priv, err := RandomPrivateKey(networks.Bitcoin)
	require.NoError(t, err)

	for _, compressed := range []bool{true, false} {
		wif := priv.WIF(compressed)
		recovered, gotCompressed, err := PrivateKeyFromWIF(wif, networks.Bitcoin)
		require.NoError(t, err)
		assert.Equal(t, compressed, gotCompressed)
		assert.Equal(t, priv.Bytes(), recovered.Bytes())
	}
}

func TestWIFWrongNetworkRejected(t *testing.T) {
	priv, err := RandomPrivateKey(networks.Bitcoin)
	require.NoError(t, err)

	wif := priv.WIF(true)
	_, _, err = PrivateKeyFromWIF(wif, networks.BitcoinTestnet)
	assert.ErrorIs(t, err, ErrWrongNetwork)
}

func TestWIFChecksumRejected(t *testing.T) {
	priv, err := RandomPrivateKey(networks.Bitcoin)
	require.NoError(t, err)

	wif := []byte(priv.WIF(true))
	wif[len(wif)-1] ^= 0x01
	if wif[len(wif)-1] == byte(priv.WIF(true)[len(wif)-1]) {
		wif[len(wif)-1] ^= 0x02
	}

	_, _, err = PrivateKeyFromWIF(string(wif), networks.Bitcoin)
	assert.Error(t, err)
}

func TestPrivateToPublic(t *testing.T) {
	priv, _, err := PrivateKeyFromWIF("L2AnMo4KYaNTKFwgd2ZSsgcxAo8QSwJ9QYSiBSm44a4WZrwPKTum", networks.Bitcoin)
	require.NoError(t, err)

	pub := priv.ToPublic()
	want, err := hex.DecodeString("03b82761f2482254b93fdf45f26c5d00bd51883fb7cd143080318c5be9746a5f5f")
	require.NoError(t, err)

	assert.Equal(t, want, pub.Encode(true))
}

func TestSEC1RoundTrip(t *testing.T) {
	priv, err := RandomPrivateKey(networks.Bitcoin)
	require.NoError(t, err)
	pub := priv.ToPublic()

	for _, compressed := range []bool{true, false} {
		encoded := pub.Encode(compressed)
		decoded, err := DecodePublicKey(encoded, networks.Bitcoin)
		require.NoError(t, err)
		assert.True(t, pub.Equal(decoded))
	}
}

func TestDecodePublicKeyInvalidEncoding(t *testing.T) {
	_, err := DecodePublicKey([]byte{0x01, 0x02, 0x03}, networks.Bitcoin)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}
