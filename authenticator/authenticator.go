// SPDX-License-Identifier: ice License 1.0

package authenticator

import (
	"crypto/sha1" //nolint:gosec // RFC 4226 default.
	"crypto/sha256"
	"crypto/sha512"
	stdlibtime "time"

	"dario.cat/mergo"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	appcfg "github.com/ice-blockchain/onetimepass/config"
	"github.com/ice-blockchain/onetimepass/hotp"
	"github.com/ice-blockchain/onetimepass/log"
	"github.com/ice-blockchain/onetimepass/secret"
	"github.com/ice-blockchain/onetimepass/terror"
	"github.com/ice-blockchain/onetimepass/time"
	"github.com/ice-blockchain/onetimepass/totp"
)

func New(applicationYamlKey string) Authenticator {
	var cfg config
	appcfg.MustLoadFromKey(applicationYamlKey, &cfg)
	if err := mergo.Merge(&cfg, defaultConfig()); err != nil {
		log.Panic(errors.Wrapf(err, "failed to merge default config for key %q", applicationYamlKey))
	}
	if err := cfg.validate(); err != nil {
		log.Panic(errors.Wrapf(err, "invalid config for key %q", applicationYamlKey))
	}

	return &authenticator{digest: cfg.digest(), cfg: &cfg}
}

func (a *authenticator) GenerateHOTP(userSecret string, counter uint64) (string, error) {
	code, err := hotp.GenerateString(userSecret, counter, a.hotpParams())
	if err != nil {
		return "", errors.Wrapf(a.tagged(err), "failed to generate hotp code for counter %v", counter)
	}

	return code, nil
}

func (a *authenticator) GenerateTOTP(now *time.Time, userSecret string) (string, error) {
	code, err := totp.GenerateString(now, userSecret, a.totpParams())
	if err != nil {
		return "", errors.Wrapf(a.tagged(err), "failed to generate totp code")
	}

	return code, nil
}

func (a *authenticator) ValidateHOTP(candidate, userSecret string, lastCounter uint64) (uint64, error) {
	counter, err := hotp.Validate(candidate, userSecret, lastCounter, a.cfg.OneTimePass.Trials, a.hotpParams())
	if err != nil {
		return 0, errors.Wrapf(a.tagged(err), "failed to validate hotp code after counter %v", lastCounter)
	}

	return counter, nil
}

func (a *authenticator) ValidateTOTP(now *time.Time, candidate, userSecret string) (bool, error) {
	valid, err := totp.Verify(now, candidate, userSecret, a.cfg.OneTimePass.Window, a.totpParams())
	if err != nil {
		return false, errors.Wrapf(a.tagged(err), "failed to validate totp code")
	}

	return valid, nil
}

func (a *authenticator) hotpParams() hotp.Params {
	return hotp.Params{Digest: a.digest, Digits: a.cfg.OneTimePass.Digits}
}

func (a *authenticator) totpParams() totp.Params {
	return totp.Params{
		Digest:   a.digest,
		Digits:   a.cfg.OneTimePass.Digits,
		Interval: uint(a.cfg.OneTimePass.Interval / stdlibtime.Second),
	}
}

func (*authenticator) tagged(err error) error {
	if errors.Is(err, secret.ErrInvalidSecret) {
		return terror.New(err, map[string]any{"field": "userSecret"})
	}

	return err
}

func defaultConfig() *config {
	var cfg config
	cfg.OneTimePass.Algorithm = sha1Algorithm
	cfg.OneTimePass.Digits = hotp.DefaultDigits
	cfg.OneTimePass.Interval = stdlibtime.Duration(totp.DefaultInterval) * stdlibtime.Second
	cfg.OneTimePass.Trials = hotp.DefaultTrials

	return &cfg
}

func (cfg *config) digest() hotp.Digest {
	switch cfg.OneTimePass.Algorithm {
	case sha1Algorithm:
		return sha1.New
	case sha256Algorithm:
		return sha256.New
	case sha512Algorithm:
		return sha512.New
	}

	return nil
}

//nolint:gomnd // The bound is the number of checks below.
func (cfg *config) validate() error {
	errs := make([]error, 0, 3)
	if cfg.digest() == nil {
		errs = append(errs, errors.Errorf("unsupported algorithm %q", cfg.OneTimePass.Algorithm))
	}
	if cfg.OneTimePass.Interval < stdlibtime.Second || cfg.OneTimePass.Interval%stdlibtime.Second != 0 {
		errs = append(errs, errors.Errorf("interval %v is not a positive whole number of seconds", cfg.OneTimePass.Interval))
	}
	if cfg.OneTimePass.Trials == 0 {
		errs = append(errs, errors.New("trials must be positive"))
	}

	return multierror.Append(nil, errs...).ErrorOrNil()
}
