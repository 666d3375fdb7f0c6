// SPDX-License-Identifier: ice License 1.0

package secret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()
	key, err := Decode("MFRGGZDFMZTWQ2LK")
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdefghij"), key)
	key, err = Decode("mfrggzdfmztwq2lk")
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdefghij"), key)
	key, err = Decode("MFRG GZDF MZTW Q2LK")
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdefghij"), key)
	key, err = Decode(" mfrg gzdf mztw q2lk ")
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdefghij"), key)
	key, err = Decode("MFRA====")
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), key)
}

func TestDecodeStrict(t *testing.T) {
	t.Parallel()
	key, err := DecodeStrict("MFRG GZDF MZTW Q2LK")
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdefghij"), key)
	key, err = DecodeStrict("mfrggzdfmztwq2lk")
	require.ErrorIs(t, err, ErrInvalidSecret)
	assert.Nil(t, key)
}

func TestDecodeInvalidSecret(t *testing.T) {
	t.Parallel()
	for _, secretText := range []string{
		"",
		"    ",
		"MFRGGZDFMZTWQ2L!",
		"MFRGGZDFMZTWQ2L1",
		"MFRGG",
		"нет",
	} {
		key, err := Decode(secretText)
		require.ErrorIs(t, err, ErrInvalidSecret, "secret %q", secretText)
		assert.Nil(t, key, "secret %q", secretText)
	}
}
