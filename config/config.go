package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/fernandosanchezjr/fastrng/sources"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptyAddress = errors.New("empty address in config")
	ErrBadSchedule  = errors.New("empty fixture verify schedule")
	ErrBadSize      = errors.New("fixture sizes must not be negative")
)

type SourceConfig struct {
	Kind string `yaml:"kind"`
	Seed uint64 `yaml:"seed"`
	Seq  uint64 `yaml:"seq"`
}

type ServerConfig struct {
	HTTPAddress string        `yaml:"http"`
	RPCAddress  string        `yaml:"rpc"`
	SessionTTL  time.Duration `yaml:"session-ttl"`
}

type FixturesConfig struct {
	DBPath         string `yaml:"db,omitempty"`
	VerifySchedule string `yaml:"verify-schedule"`
	Words          int    `yaml:"words"`
	Bytes          int    `yaml:"bytes"`
}

type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Server   ServerConfig   `yaml:"server"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	LogLevel string         `yaml:"log-level"`
}

func Default() *Config {
	return &Config{
		Source: SourceConfig{Kind: sources.KindPCG, Seed: 0, Seq: 0},
		Server: ServerConfig{
			HTTPAddress: ":8080",
			RPCAddress:  ":12000",
			SessionTTL:  10 * time.Minute,
		},
		Fixtures: FixturesConfig{
			VerifySchedule: "@every 1h",
			Words:          16,
			Bytes:          1 << 16,
		},
		LogLevel: "debug",
	}
}

func (c *Config) Validate() error {
	if !isKnownKind(c.Source.Kind) {
		return fmt.Errorf("%w: %q", sources.ErrUnknownKind, c.Source.Kind)
	}
	if c.Server.HTTPAddress == "" || c.Server.RPCAddress == "" {
		return ErrEmptyAddress
	}
	if c.Fixtures.VerifySchedule == "" {
		return ErrBadSchedule
	}
	if c.Fixtures.Words < 0 || c.Fixtures.Bytes < 0 {
		return ErrBadSize
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.DebugLevel
	}
	return level
}

func isKnownKind(kind string) bool {
	for _, k := range sources.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}
