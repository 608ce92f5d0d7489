package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type LojistaConfig struct {
	Env              string `yaml:"env"`
	HTTPServer       `yaml:"http_server"`
	StoreDB          `yaml:"store_db"`
	LogConfig        `yaml:"log_config"`
	KafkaService     `yaml:"kafka-service"`
	AdminWebhook     `yaml:"admin-webhook"`
	CommissionPolicy `yaml:"commission_policy"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type StoreDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"store-events"`
}

type AdminWebhook struct {
	URL string `yaml:"url" env:"ADMIN_WEBHOOK_URL"`
}

// CommissionPolicy carries the day thresholds of the blocking policy and the
// sweep cadence. The thresholds are deliberately configuration, not code.
type CommissionPolicy struct {
	WarnAfterDays  int           `yaml:"warn_after_days" env:"COMMISSION_WARN_AFTER_DAYS" env-default:"20"`
	BlockAfterDays int           `yaml:"block_after_days" env:"COMMISSION_BLOCK_AFTER_DAYS" env-default:"30"`
	SweepInterval  time.Duration `yaml:"sweep_interval" env:"COMMISSION_SWEEP_INTERVAL" env-default:"1h"`
}

func MustLoad() *LojistaConfig {

	// Processing env config variable and file
	configPath := os.Getenv("LOJISTA_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("LOJISTA_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg LojistaConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
