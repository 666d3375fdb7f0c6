// SPDX-License-Identifier: ice License 1.0

package secret

import (
	"github.com/pkg/errors"
)

// Public API.

var (
	ErrInvalidSecret = errors.New("invalid secret")
)
