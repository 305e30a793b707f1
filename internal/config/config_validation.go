// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"time"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required at startup. All violations are joined together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.App.PasswordDigest {
	case DigestMD5, DigestBcrypt:
	case DigestHMAC:
		if cfg.App.PasswordHashKey == "" {
			errs = append(errs, ErrInvalidAppConfigs)
		}
	default:
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration < time.Second || cfg.Auth.TokenHeader == "" {
		errs = append(errs, ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	return errors.Join(errs...)
}
