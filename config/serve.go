package config

import (
	"time"

	"github.com/gorhill/cronexpr"
)

type ServeConfiguration struct {
	updateInterval time.Duration
	schedule       *cronexpr.Expression
	source         string
	destination    string
}

func (config *ServeConfiguration) UpdateInterval() time.Duration {
	return config.updateInterval
}

// Schedule returns the cron expression driving periodic comparisons,
// or nil when only the plain update interval is configured.
func (config *ServeConfiguration) Schedule() *cronexpr.Expression {
	return config.schedule
}

func (config *ServeConfiguration) Source() string {
	return config.source
}

func (config *ServeConfiguration) Destination() string {
	return config.destination
}
