// SPDX-License-Identifier: ice License 1.0

package hotp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/onetimepass/log"
	"github.com/ice-blockchain/onetimepass/secret"
)

// Generate derives the code for the given counter, per RFC 4226.
func Generate(secretText string, counter uint64, opt ...Params) (uint32, error) {
	params := defaulted(opt)
	key, err := secret.Decode(secretText)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to decode secret")
	}

	return truncate(hmacDigest(params.Digest, key, counter), params.Digits), nil
}

// GenerateString is Generate formatted as a decimal string, left-padded with zeros to the configured digit length.
func GenerateString(secretText string, counter uint64, opt ...Params) (string, error) {
	params := defaulted(opt)
	code, err := Generate(secretText, counter, params)
	if err != nil {
		return "", errors.Wrapf(err, "failed to generate code for counter %v", counter)
	}

	return fmt.Sprintf("%0*d", int(params.Digits), code), nil
}

func UnsafeGenerateString(secretText string, counter uint64, opt ...Params) string {
	code, err := GenerateString(secretText, counter, opt...)
	log.Panic(err)

	return code
}

// Validate scans the counters last+1 .. last+trials, in ascending order, for one that derives the candidate code.
// It returns the matching counter, which the caller has to persist as the new `last` to keep replay protection
// monotonic, or ErrNotFound when the range is exhausted. Counters at or before last are never considered again.
func Validate(candidate, secretText string, last, trials uint64, opt ...Params) (uint64, error) {
	params := defaulted(opt)
	expected, possible := parseCode(candidate, params.Digits)
	if !possible {
		return 0, errors.Wrapf(ErrNotFound, "candidate %q cannot be a %v digit code", candidate, params.Digits)
	}
	key, err := secret.Decode(secretText)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to decode secret")
	}
	for counter := last + 1; counter != 0 && counter-last <= trials; counter++ {
		if truncate(hmacDigest(params.Digest, key, counter), params.Digits) == expected {
			return counter, nil
		}
	}

	return 0, errors.Wrapf(ErrNotFound, "none of the %v counters after %v derive the candidate", trials, last)
}

// IsPossibleCode reports whether the candidate is worth any cryptographic work at all:
// decimal digits only, no longer than the configured digit length.
func IsPossibleCode(candidate string, digits uint8) bool {
	if candidate == "" || len(candidate) > int(digits) {
		return false
	}
	for i := 0; i < len(candidate); i++ {
		if candidate[i] < '0' || candidate[i] > '9' {
			return false
		}
	}

	return true
}

func defaulted(opt []Params) Params {
	params := Params{}
	if len(opt) > 0 {
		params = opt[0]
	}
	if params.Digest == nil {
		params.Digest = defaultDigest
	}
	if params.Digits == 0 {
		params.Digits = DefaultDigits
	}

	return params
}

func parseCode(candidate string, digits uint8) (uint32, bool) {
	if !IsPossibleCode(candidate, digits) {
		return 0, false
	}
	code, err := strconv.ParseUint(candidate, 10, 32)
	if err != nil || code > maxTruncatedValue {
		return 0, false
	}

	return uint32(code), true
}

func hmacDigest(digest Digest, key []byte, counter uint64) []byte {
	message := make([]byte, counterLength)
	binary.BigEndian.PutUint64(message, counter)
	mac := hmac.New(digest, key)
	mac.Write(message) //nolint:errcheck,gosec // Never fails, per the hash.Hash contract.

	return mac.Sum(nil)
}

func truncate(digest []byte, digits uint8) uint32 {
	offset := digest[len(digest)-1] & 0x0F //nolint:gomnd // The low 4 bits, per RFC 4226.
	value := binary.BigEndian.Uint32(digest[offset:offset+truncationLength]) & maxTruncatedValue
	if digits >= maxEffectiveDigits {
		return value
	}

	return value % pow10(digits)
}

func pow10(digits uint8) uint32 {
	modulus := uint32(1)
	for i := uint8(0); i < digits; i++ {
		modulus *= 10 //nolint:gomnd // .
	}

	return modulus
}
