// SPDX-License-Identifier: ice License 1.0

package authenticator

import (
	stdlibtime "time"

	"github.com/ice-blockchain/onetimepass/hotp"
	"github.com/ice-blockchain/onetimepass/secret"
	"github.com/ice-blockchain/onetimepass/time"
)

// Public API.

type (
	Authenticator interface {
		Generator
		Validator
	}
	Generator interface {
		GenerateHOTP(userSecret string, counter uint64) (string, error)
		GenerateTOTP(now *time.Time, userSecret string) (string, error)
	}
	Validator interface {
		ValidateHOTP(candidate, userSecret string, lastCounter uint64) (uint64, error)
		ValidateTOTP(now *time.Time, candidate, userSecret string) (bool, error)
	}
)

var (
	ErrInvalidSecret = secret.ErrInvalidSecret
	ErrNotFound      = hotp.ErrNotFound
)

// Private API.

const (
	sha1Algorithm   = "sha1"
	sha256Algorithm = "sha256"
	sha512Algorithm = "sha512"
)

type (
	authenticator struct {
		digest hotp.Digest
		cfg    *config
	}
	config struct {
		OneTimePass struct {
			Algorithm string              `yaml:"algorithm" mapstructure:"algorithm"`
			Digits    uint8               `yaml:"digits" mapstructure:"digits"`
			Interval  stdlibtime.Duration `yaml:"interval" mapstructure:"interval"`
			Window    uint8               `yaml:"window" mapstructure:"window"`
			Trials    uint64              `yaml:"trials" mapstructure:"trials"`
		} `yaml:"onetimepass/authenticator" mapstructure:"onetimepass/authenticator"` //nolint:tagliatelle // Nope.
	}
)

var (
	_ Authenticator = (*authenticator)(nil)
)
