// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

type Config struct {
	HTTPAddress    string `json:"httpAddress"`
	MetricsEnabled bool   `json:"metricsEnabled"`
	LogLevel       string `json:"logLevel"`

	// DatabaseDir holds the leveldb state. State is kept in memory when empty.
	DatabaseDir string `json:"databaseDir"`

	ActivityCacheSize int `json:"activityCacheSize"`
}

func (c *Config) SetDefaults() {
	c.HTTPAddress = "127.0.0.1:9650"
	c.MetricsEnabled = true
	c.LogLevel = "info"

	c.ActivityCacheSize = 128
}
