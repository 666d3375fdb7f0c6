// SPDX-License-Identifier: ice License 1.0

package secret

import (
	"encoding/base32"
	"strings"

	"github.com/pkg/errors"
)

// Decode strips embedded spaces, upper-cases the remainder and base32-decodes it into the raw key bytes.
func Decode(secretText string) ([]byte, error) {
	return decode(secretText, true)
}

// DecodeStrict is Decode without the case normalization, so lower case input is rejected.
func DecodeStrict(secretText string) ([]byte, error) {
	return decode(secretText, false)
}

func decode(secretText string, casefold bool) ([]byte, error) {
	normalized := strings.ReplaceAll(secretText, " ", "")
	if casefold {
		normalized = strings.ToUpper(normalized)
	}
	key, err := base32.StdEncoding.DecodeString(normalized)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSecret, "not valid base32: %v", err.Error())
	}
	if len(key) == 0 {
		return nil, errors.Wrap(ErrInvalidSecret, "decodes to an empty key")
	}

	return key, nil
}
