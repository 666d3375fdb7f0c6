// SPDX-License-Identifier: ice License 1.0

package totp

import (
	"github.com/ice-blockchain/onetimepass/hotp"
)

// Public API.

const (
	DefaultInterval uint = 30
)

type (
	// Params customizes code derivation. Zero values assume the RFC 6238 defaults.
	// Variadic call sites use the first value and ignore the rest.
	Params struct {
		Digest hotp.Digest
		Digits uint8
		// Interval is the length of one time step, in seconds.
		Interval uint
	}
)
