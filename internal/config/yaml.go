package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

type yamlGame struct {
	Bet   float64  `yaml:"bet"`
	Delay duration `yaml:"delay"`
}

type yamlFile struct {
	Wallet struct {
		ConnectDelay duration `yaml:"connect_delay"`
	} `yaml:"wallet"`
	Shop struct {
		VerifyDelay   duration `yaml:"verify_delay"`
		TransferDelay duration `yaml:"transfer_delay"`
	} `yaml:"shop"`
	Games map[string]yamlGame `yaml:"games"`
}

func (c *Config) applyYAML(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var f yamlFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return err
	}

	if f.Wallet.ConnectDelay.Duration > 0 {
		c.ConnectDelay = f.Wallet.ConnectDelay.Duration
	}
	if f.Shop.VerifyDelay.Duration > 0 {
		c.VerifyDelay = f.Shop.VerifyDelay.Duration
	}
	if f.Shop.TransferDelay.Duration > 0 {
		c.TransferDelay = f.Shop.TransferDelay.Duration
	}

	for id, g := range f.Games {
		gc, ok := c.Games[id]
		if !ok {
			gc = GameConfig{}
		}
		if g.Bet > 0 {
			gc.Bet = g.Bet
		}
		if g.Delay.Duration > 0 {
			gc.Delay = g.Delay.Duration
		}
		c.Games[id] = gc
	}

	return nil
}
