// Package config loads goannot's runtime configuration from environment
// variables, an optional .env file, and ~/.goannot.yaml, in that order of
// precedence, via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the resolved set of settings the CLI and server façades need
// at startup.
type Config struct {
	GenesFile       string
	AnnotationsFile string
	Addr            string
	RedisAddr       string
	AuditDB         string
}

const defaultAddr = ":8080"

// Load reads configuration from the environment (GENES_FILE,
// ANNOTATIONS_FILE, GOANNOT_ADDR, GOANNOT_REDIS_ADDR, GOANNOT_AUDIT_DB), an
// optional .env file in the working directory, and ~/.goannot.yaml, with
// that precedence (env wins). GenesFile and AnnotationsFile are required;
// their absence is a ConfigError surfaced as a plain error here for the
// façade to print and exit on. Callers that want to let a CLI flag take
// priority over the environment for individual fields should use Resolve
// instead and validate after merging in the flag values.
func Load() (Config, error) {
	cfg := Resolve()
	if cfg.GenesFile == "" {
		return Config{}, fmt.Errorf("GENES_FILE is required")
	}
	if cfg.AnnotationsFile == "" {
		return Config{}, fmt.Errorf("ANNOTATIONS_FILE is required")
	}
	return cfg, nil
}

// Resolve reads the same sources as Load (environment, .env, ~/.goannot.yaml)
// but performs no required-field validation, so a caller can merge its own
// higher-precedence source (e.g. CLI flags) into the result before deciding
// what's still missing.
func Resolve() Config {
	v := viper.New()
	v.SetDefault("addr", defaultAddr)
	v.AutomaticEnv()
	v.BindEnv("genes_file", "GENES_FILE")
	v.BindEnv("annotations_file", "ANNOTATIONS_FILE")
	v.BindEnv("addr", "GOANNOT_ADDR")
	v.BindEnv("redis_addr", "GOANNOT_REDIS_ADDR")
	v.BindEnv("audit_db", "GOANNOT_AUDIT_DB")

	if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigName(".goannot")
		v.SetConfigType("yaml")
		v.AddConfigPath(home)
		_ = v.ReadInConfig() // absent config file is not an error
	}

	loadDotEnv(v, ".env")

	return Config{
		GenesFile:       v.GetString("genes_file"),
		AnnotationsFile: v.GetString("annotations_file"),
		Addr:            v.GetString("addr"),
		RedisAddr:       v.GetString("redis_addr"),
		AuditDB:         v.GetString("audit_db"),
	}
}

// loadDotEnv merges key=value pairs from a dotenv file at path into v, if
// the file exists. Missing keys already set via the real environment take
// precedence because AutomaticEnv consults os.Getenv directly.
func loadDotEnv(v *viper.Viper, path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	if _, err := os.Stat(abs); err != nil {
		return
	}
	v.SetConfigFile(abs)
	v.SetConfigType("env")
	_ = v.MergeInConfig()
}
