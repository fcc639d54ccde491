package config

import (
	"github.com/spf13/viper"
)

// Keys shared by CLI flags and NLPD_* environment variables.
const (
	KeyAddr          = "addr"
	KeyModelsDir     = "models-dir"
	KeyModel         = "model"
	KeyMaxInflight   = "max-inflight"
	KeyMaxQueueDepth = "max-queue-depth"
	KeyMaxWaitMS     = "max-wait-ms"
	KeyMaxBodyBytes  = "max-body-bytes"
	KeyCORSOrigins   = "cors-origins"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
)

// Overlay copies every key explicitly set in v (a changed flag or an
// environment variable) over cfg. Unset keys keep the file value.
func Overlay(cfg Config, v *viper.Viper) Config {
	if v == nil {
		return cfg
	}
	if v.IsSet(KeyAddr) {
		cfg.Addr = v.GetString(KeyAddr)
	}
	if v.IsSet(KeyModelsDir) {
		cfg.ModelsDir = v.GetString(KeyModelsDir)
	}
	if v.IsSet(KeyModel) {
		cfg.Model = v.GetString(KeyModel)
	}
	if v.IsSet(KeyMaxInflight) {
		cfg.MaxInflight = v.GetInt(KeyMaxInflight)
	}
	if v.IsSet(KeyMaxQueueDepth) {
		cfg.MaxQueueDepth = v.GetInt(KeyMaxQueueDepth)
	}
	if v.IsSet(KeyMaxWaitMS) {
		cfg.MaxWaitMS = v.GetInt(KeyMaxWaitMS)
	}
	if v.IsSet(KeyMaxBodyBytes) {
		cfg.MaxBodyBytes = v.GetInt64(KeyMaxBodyBytes)
	}
	if v.IsSet(KeyCORSOrigins) {
		cfg.CORSOrigins = SplitCSV(v.GetString(KeyCORSOrigins))
	}
	if v.IsSet(KeyLogLevel) {
		cfg.LogLevel = v.GetString(KeyLogLevel)
	}
	if v.IsSet(KeyLogFormat) {
		cfg.LogFormat = v.GetString(KeyLogFormat)
	}
	return cfg
}
