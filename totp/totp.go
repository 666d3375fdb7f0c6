// SPDX-License-Identifier: ice License 1.0

package totp

import (
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/onetimepass/hotp"
	"github.com/ice-blockchain/onetimepass/log"
	"github.com/ice-blockchain/onetimepass/time"
)

// Generate derives the code for the time step now falls into, per RFC 6238. A nil now means the current time.
func Generate(now *time.Time, secretText string, opt ...Params) (uint32, error) {
	params := defaulted(opt)
	code, err := hotp.Generate(secretText, params.counter(now), params.hotpParams())
	if err != nil {
		return 0, errors.Wrapf(err, "failed to generate code for time %v", now)
	}

	return code, nil
}

// GenerateString is Generate formatted as a decimal string, left-padded with zeros to the configured digit length.
func GenerateString(now *time.Time, secretText string, opt ...Params) (string, error) {
	params := defaulted(opt)
	code, err := hotp.GenerateString(secretText, params.counter(now), params.hotpParams())
	if err != nil {
		return "", errors.Wrapf(err, "failed to generate code for time %v", now)
	}

	return code, nil
}

func UnsafeGenerateString(now *time.Time, secretText string, opt ...Params) string {
	code, err := GenerateString(now, secretText, opt...)
	log.Panic(err)

	return code
}

// Verify reports whether the candidate matches the code of any time step within now ± window steps.
// It is intentionally stateless: repeated checks of the same candidate keep succeeding until the clock
// leaves the window, so replay tracking across calls stays with the caller.
func Verify(now *time.Time, candidate, secretText string, window uint8, opt ...Params) (bool, error) {
	params := defaulted(opt)
	if !hotp.IsPossibleCode(candidate, params.Digits) {
		return false, nil
	}
	expected, err := strconv.ParseUint(candidate, 10, 32)
	if err != nil {
		return false, nil //nolint:nilerr // A candidate that does not even parse cannot match any code.
	}
	base := params.counter(now)
	for offset := -int64(window); offset <= int64(window); offset++ {
		counter, valid := offsetCounter(base, offset)
		if !valid {
			continue
		}
		code, err := hotp.Generate(secretText, counter, params.hotpParams())
		if err != nil {
			return false, errors.Wrapf(err, "failed to generate code for time step %v", counter)
		}
		if code == uint32(expected) {
			return true, nil
		}
	}

	return false, nil
}

func (p Params) counter(now *time.Time) uint64 {
	if now == nil {
		now = time.Now()
	}

	return uint64(now.Unix()) / uint64(p.Interval)
}

func (p Params) hotpParams() hotp.Params {
	return hotp.Params{Digest: p.Digest, Digits: p.Digits}
}

func defaulted(opt []Params) Params {
	params := Params{}
	if len(opt) > 0 {
		params = opt[0]
	}
	if params.Digits == 0 {
		params.Digits = hotp.DefaultDigits
	}
	if params.Interval == 0 {
		params.Interval = DefaultInterval
	}

	return params
}

func offsetCounter(base uint64, offset int64) (uint64, bool) {
	if offset < 0 {
		if base < uint64(-offset) {
			return 0, false
		}

		return base - uint64(-offset), true
	}
	if base > math.MaxUint64-uint64(offset) {
		return 0, false
	}

	return base + uint64(offset), true
}
