package config

import (
	log "github.com/sirupsen/logrus"
)

type GlobalConfiguration struct {
	logLevel       log.Level
	rcloneBinary   string
	rcloneConfig   string
	fastList       bool
	excludes       []string
	warnDeltaBytes uint64
}

func (config *GlobalConfiguration) LogLevel() log.Level {
	return config.logLevel
}

func (config *GlobalConfiguration) RcloneBinary() string {
	return config.rcloneBinary
}

func (config *GlobalConfiguration) RcloneConfig() string {
	return config.rcloneConfig
}

func (config *GlobalConfiguration) FastList() bool {
	return config.fastList
}

func (config *GlobalConfiguration) Excludes() []string {
	return config.excludes
}

// WarnDeltaBytes is the aggregated delta size above which the serve
// loop logs a warning. Zero disables the check.
func (config *GlobalConfiguration) WarnDeltaBytes() uint64 {
	return config.warnDeltaBytes
}
