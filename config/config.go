// Package config reads default settings from SAMPLEIDENTITY_* environment
// variables. Command-line flags take these as their defaults.
package config

import (
	"github.com/carbocation/sampleidentity/identity"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable.
const Prefix = "sampleidentity"

type Config struct {
	Threads        int     `envconfig:"THREADS" default:"1"`
	BaseAccuracy   float64 `envconfig:"BASE_ACCURACY" default:"0.99"`
	HetBalance     float64 `envconfig:"HET_BALANCE" default:"0.5"`
	ErrorRate      float64 `envconfig:"ERROR_RATE" default:"0.01"`
	RatioThreshold float64 `envconfig:"RATIO_THRESHOLD" default:"5"`

	// Google Cloud project used for BigQuery billing
	Project string `envconfig:"PROJECT"`
	// Destination for verdict uploads, as dataset.table
	BigQueryTable string `envconfig:"BQ_TABLE"`
}

func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process(Prefix, &cfg)
	return cfg, err
}

func (c Config) Params() identity.Params {
	return identity.Params{
		BaseAccuracy:   c.BaseAccuracy,
		HetBalance:     c.HetBalance,
		ErrorRate:      c.ErrorRate,
		RatioThreshold: c.RatioThreshold,
	}
}
