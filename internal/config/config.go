package config

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	LogLevel zapcore.Level
	Enpal    EnpalConfig `mapstructure:"enpal"`
	MQTT     MQTTConfig  `mapstructure:"mqtt"`

	MonitorConfig MonitorConfig `mapstructure:"monitor"`
	Port          uint          `mapstructure:"port"`
	HttpLog       bool          `mapstructure:"http_log"`
}

type EnpalConfig struct {
	Host string
}

type MonitorConfig struct {
	PollIntervalMillis uint32 `mapstructure:"poll_interval_millis"`
}

func (c MonitorConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMillis) * time.Millisecond
}

// CacheTTL is half the poll interval, so consumers polling on the same
// interval but staggered in time still share at most one fetch per
// half-interval.
func (c MonitorConfig) CacheTTL() time.Duration {
	return c.PollInterval() / 2
}

type MQTTConfig struct {
	Host              string
	Port              int
	Username          string
	Password          string
	BaseTopic         string `mapstructure:"base_topic"`
	HADiscoveryEnable bool   `mapstructure:"ha_discovery_enable"`
	HADiscoveryTopic  string `mapstructure:"ha_discovery_topic"`
}

func CheckMQTTTopic(baseTopic string) (string, error) {
	// check and fix base topic
	lowerBaseTopic := strings.ToLower(baseTopic)
	baseTopicRegexp := regexp.MustCompile("^[a-z0-9_]+$")
	matches := baseTopicRegexp.FindAllStringSubmatch(lowerBaseTopic, 1)
	if len(matches) <= 0 {
		return "", errors.New("invalid topic. can only contain letters, numbers and underscores")
	}
	return lowerBaseTopic, nil
}

// CheckHost validates the inverter host: a dotted-quad or resolvable
// hostname, optionally with a port.
func CheckHost(host string) (string, error) {
	trimmed := strings.TrimSpace(host)
	hostRegexp := regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9.-]*[a-zA-Z0-9])?(:[0-9]+)?$`)
	if !hostRegexp.MatchString(trimmed) {
		return "", errors.New("invalid host. expected an IP address or hostname, optionally with a port")
	}
	return trimmed, nil
}
