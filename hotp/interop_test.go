// SPDX-License-Identifier: ice License 1.0

package hotp

import (
	"testing"

	pquernahotp "github.com/pquerna/otp/hotp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xlzd/gotp"
)

func TestGenerateMatchesGOTP(t *testing.T) {
	t.Parallel()
	generator := gotp.NewDefaultHOTP("MFRGGZDFMZTWQ2LK")
	for counter := uint64(0); counter <= 32; counter++ {
		code, err := GenerateString("MFRGGZDFMZTWQ2LK", counter)
		require.NoError(t, err)
		assert.Equal(t, generator.At(int(counter)), code, "counter %v", counter)
	}
}

func TestGenerateMatchesPquernaOTP(t *testing.T) {
	t.Parallel()
	for counter := uint64(0); counter <= 32; counter++ {
		expected, err := pquernahotp.GenerateCode("MFRGGZDFMZTWQ2LK", counter)
		require.NoError(t, err)
		code, err := GenerateString("MFRGGZDFMZTWQ2LK", counter)
		require.NoError(t, err)
		assert.Equal(t, expected, code, "counter %v", counter)
	}
}
