package config

import "time"

// Supported password digests.
const (
	DigestMD5    = "md5"
	DigestHMAC   = "hmac"
	DigestBcrypt = "bcrypt"
)

// defaultConfig mirrors the values the legacy back office shipped with.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:        "debug",
			PasswordDigest:  DigestMD5,
			DefaultPassword: "123456",
		},
		Auth: Auth{
			TokenDuration:  2 * time.Hour,
			TokenHeader:    "token",
			ProtectedPaths: []string{"/admin/**"},
			ExcludedPaths:  []string{"/admin/employee/login"},
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: 10},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}
