// SPDX-License-Identifier: ice License 1.0

package hotp

import (
	"crypto/sha1" //nolint:gosec // RFC 4226 default.
	"hash"

	"github.com/pkg/errors"
)

// Public API.

const (
	DefaultDigits uint8  = 6
	DefaultTrials uint64 = 1000
)

type (
	// Digest builds the hash fed into the HMAC. It has to produce at least 20 bytes of output.
	Digest func() hash.Hash
	// Params customizes code derivation. Zero values assume the RFC 4226 defaults.
	// Variadic call sites use the first value and ignore the rest.
	Params struct {
		Digest Digest
		Digits uint8
	}
)

var (
	ErrNotFound = errors.New("code not found")
)

// Private API.

const (
	counterLength    = 8
	truncationLength = 4
	// Digit lengths beyond this exceed the 31 bit truncation space, so the modulus is skipped for them.
	maxEffectiveDigits uint8 = 10
	maxTruncatedValue        = 0x7FFFFFFF
)

var (
	defaultDigest Digest = sha1.New
)
