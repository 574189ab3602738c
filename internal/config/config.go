package config

import (
	"fmt"
	"os"
	"time"

	"alertmon/internal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Http    HttpConfig    `yaml:"http"`
	Db      DbConfig      `yaml:"db"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Slack   SlackConfig   `yaml:"slack"`
	Tracing TracingConfig `yaml:"tracing"`
	Engine  EngineConfig  `yaml:"engine"`
	Rules   []RuleConfig  `yaml:"rules"`
}

type HttpConfig struct {
	Port int `yaml:"port"`
}

type DbConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type KafkaConfig struct {
	Brokers      string `yaml:"brokers"`
	SamplesTopic string `yaml:"samples_topic"`
	EventsTopic  string `yaml:"events_topic"`
	GroupID      string `yaml:"group_id"`
}

type SlackConfig struct {
	Enabled        bool                 `yaml:"enabled"`
	Channels       map[string]string    `yaml:"channels"`
	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	FailureThreshold    int `yaml:"failure_threshold"`
	TimeoutDuration     int `yaml:"timeout_duration"`
	HalfOpenMaxRequests int `yaml:"half_open_max_requests"`
}

type TracingConfig struct {
	Enabled           bool   `yaml:"enabled"`
	CollectorEndpoint string `yaml:"collector_endpoint"`
}

type EngineConfig struct {
	SimilarityThreshold float64       `yaml:"similarity_threshold"`
	SweepInterval       time.Duration `yaml:"sweep_interval"`
	ResolvedRetention   time.Duration `yaml:"resolved_retention"`
	PendingCeiling      time.Duration `yaml:"pending_ceiling"`
}

// RuleConfig is the on-disk shape of an alert rule. Durations use Go
// duration syntax ("5m", "1h30m").
type RuleConfig struct {
	ID                  string            `yaml:"id"`
	Name                string            `yaml:"name"`
	Category            string            `yaml:"category"`
	Metric              string            `yaml:"metric"`
	Severity            string            `yaml:"severity"`
	Operator            string            `yaml:"operator"`
	Threshold           float64           `yaml:"threshold"`
	EvaluationInterval  time.Duration     `yaml:"evaluation_interval"`
	ForDuration         time.Duration     `yaml:"for_duration"`
	SuppressionEnabled  bool              `yaml:"suppression_enabled"`
	SuppressionDuration time.Duration     `yaml:"suppression_duration"`
	AutoResolveEnabled  bool              `yaml:"auto_resolve_enabled"`
	AutoResolveDuration time.Duration     `yaml:"auto_resolve_duration"`
	CorrelationEnabled  bool              `yaml:"correlation_enabled"`
	CorrelationWindow   time.Duration     `yaml:"correlation_window"`
	Channels            []string          `yaml:"channels"`
	Labels              map[string]string `yaml:"labels"`
	Annotations         map[string]string `yaml:"annotations"`
}

func Load() (Config, error) {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		// Default: try relative path from project root
		configPath = "configs/prod.yaml"

		// If that doesn't exist, try from cmd/alertmon
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "../../configs/prod.yaml"
		}
	}

	byteYaml, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("could not read %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(byteYaml, &config); err != nil {
		return Config{}, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return config, nil
}

func GetSlackToken() string {
	return os.Getenv("SLACK_BOT_TOKEN")
}

// BuildRules converts the configured rules into model rules. A missing
// ID gets a fresh UUID; a malformed one is an error.
func (c Config) BuildRules() ([]*models.AlertRule, error) {
	rules := make([]*models.AlertRule, 0, len(c.Rules))
	for _, rc := range c.Rules {
		id := uuid.New()
		if rc.ID != "" {
			parsed, err := uuid.Parse(rc.ID)
			if err != nil {
				return nil, fmt.Errorf("rule %q: invalid id %q: %w", rc.Name, rc.ID, err)
			}
			id = parsed
		}

		severity := models.Severity(rc.Severity)
		if !severity.Valid() {
			return nil, fmt.Errorf("rule %q: invalid severity %q", rc.Name, rc.Severity)
		}

		rules = append(rules, &models.AlertRule{
			ID:                   id,
			Name:                 rc.Name,
			Category:             rc.Category,
			Metric:               rc.Metric,
			Severity:             severity,
			Operator:             rc.Operator,
			Threshold:            rc.Threshold,
			EvaluationInterval:   rc.EvaluationInterval,
			ForDuration:          rc.ForDuration,
			SuppressionEnabled:   rc.SuppressionEnabled,
			SuppressionDuration:  rc.SuppressionDuration,
			AutoResolveEnabled:   rc.AutoResolveEnabled,
			AutoResolveDuration:  rc.AutoResolveDuration,
			CorrelationEnabled:   rc.CorrelationEnabled,
			CorrelationWindow:    rc.CorrelationWindow,
			NotificationChannels: rc.Channels,
			Labels:               rc.Labels,
			Annotations:          rc.Annotations,
		})
	}
	return rules, nil
}
