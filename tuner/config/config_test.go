package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative gate floor", func(c *Config) { c.GateRMSFloor = -0.1 }},
		{"zero min frequency", func(c *Config) { c.MinFrequency = 0 }},
		{"inverted band", func(c *Config) { c.MaxFrequency = 40 }},
		{"confidence above one", func(c *Config) { c.MinConfidence = 1.5 }},
		{"zero smoothing alpha", func(c *Config) { c.SmoothingAlpha = 0 }},
		{"jump alpha above one", func(c *Config) { c.JumpAlpha = 1.2 }},
		{"zero jump ratio", func(c *Config) { c.JumpRatio = 0 }},
		{"negative tolerance", func(c *Config) { c.ToleranceCents = -5 }},
		{"zero confirm window", func(c *Config) { c.ConfirmWindow = 0 }},
		{"negative confirm window", func(c *Config) { c.ConfirmWindow = -time.Second }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
