package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
// Durations may be written as strings ("2h") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		LogLevel        string `json:"log_level"`
		PasswordDigest  string `json:"password_digest"`
		PasswordHashKey string `json:"password_hash_key"`
		DefaultPassword string `json:"default_password"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenDuration  Duration `json:"token_duration"`
		TokenHeader    string   `json:"token_header"`
		ProtectedPaths []string `json:"protected_paths"`
		ExcludedPaths  []string `json:"excluded_paths"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:        jsonCfg.App.LogLevel,
			PasswordDigest:  jsonCfg.App.PasswordDigest,
			PasswordHashKey: jsonCfg.App.PasswordHashKey,
			DefaultPassword: jsonCfg.App.DefaultPassword,
		},
		Auth: Auth{
			TokenSignKey:   jsonCfg.Auth.TokenSignKey,
			TokenDuration:  time.Duration(jsonCfg.Auth.TokenDuration),
			TokenHeader:    jsonCfg.Auth.TokenHeader,
			ProtectedPaths: jsonCfg.Auth.ProtectedPaths,
			ExcludedPaths:  jsonCfg.Auth.ExcludedPaths,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "2h" or "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
