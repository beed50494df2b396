package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port           int
	AgingThreshold int
	StoragePath    string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once.
// SCHEDULER_* environment variables, optionally from a .env file, override it.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load(viper.New(), "./")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads the configuration from dir into v. A missing config file leaves
// the defaults in place.
func Load(v *viper.Viper, dir string) (*SchedulerConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.priority.aging_threshold", 3)
	v.SetDefault("storage.path", "scheduler_runs.sqlite3")

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("config file not found, using defaults")
	}

	return &SchedulerConfig{
		Port:           v.GetInt("port"),
		AgingThreshold: v.GetInt("scheduler.priority.aging_threshold"),
		StoragePath:    v.GetString("storage.path"),
	}, nil
}
