package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/sky-take-out/internal/config"
	"github.com/MKhiriev/sky-take-out/internal/utils"
)

// NewPasswordDigester returns the digest selected by cfg.PasswordDigest.
func NewPasswordDigester(cfg config.App) (PasswordDigester, error) {
	switch cfg.PasswordDigest {
	case "", config.DigestMD5:
		return md5Digester{}, nil
	case config.DigestHMAC:
		if cfg.PasswordHashKey == "" {
			return nil, ErrMissingPasswordHashKey
		}
		return hmacDigester{key: cfg.PasswordHashKey}, nil
	case config.DigestBcrypt:
		return bcryptDigester{cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPasswordDigest, cfg.PasswordDigest)
	}
}

// md5Digester matches the digests stored by the legacy back office.
type md5Digester struct{}

func (md5Digester) Digest(password string) (string, error) {
	return utils.MD5Hex(password), nil
}

func (md5Digester) Matches(digest, password string) bool {
	return utils.EqualDigests(digest, utils.MD5Hex(password))
}

// hmacDigester keys HMAC-SHA256 with a server-side secret.
type hmacDigester struct {
	key string
}

func (d hmacDigester) Digest(password string) (string, error) {
	return utils.HashString(password, d.key), nil
}

func (d hmacDigester) Matches(digest, password string) bool {
	return utils.EqualDigests(digest, utils.HashString(password, d.key))
}

type bcryptDigester struct {
	cost int
}

func (d bcryptDigester) Digest(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

func (d bcryptDigester) Matches(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
