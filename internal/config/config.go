package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration. Secrets (the API key) come from the
// environment or the optional config file; never committed.
type Config struct {
	// APIKey authenticates against the completion API.
	APIKey string `mapstructure:"api_key"`
	// Model is the completion model id (e.g. meta-llama/Llama-3.1-8B-Instruct).
	Model string `mapstructure:"model"`
	// BaseURL is the completion API endpoint.
	BaseURL string `mapstructure:"base_url"`
	// RequestTimeout bounds each model call; expiry is treated like any
	// other collaborator failure.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// MaxOutputTokens caps the orchestrator completions.
	MaxOutputTokens int `mapstructure:"max_output_tokens"`
	// PlannerMaxTokens caps the planner completion.
	PlannerMaxTokens int `mapstructure:"planner_max_tokens"`
	// PlannerWindow is how many trailing transcript messages the planner
	// sees. Bounded context caps cost and latency at the price of losing
	// slots volunteered earlier; a known limitation, kept configurable.
	PlannerWindow int `mapstructure:"planner_window"`
	// DBPath is the path to the SQLite store.
	DBPath string `mapstructure:"db_path"`
	// ListenAddr is the HTTP chat API bind address.
	ListenAddr string `mapstructure:"listen_addr"`
}

// Load builds config from defaults, an optional goodfoods.yml in dir (or the
// working directory when dir is empty), and GOODFOODS_* environment
// variables, in increasing priority.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetDefault("model", "meta-llama/Llama-3.1-8B-Instruct")
	v.SetDefault("base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("request_timeout", 60*time.Second)
	v.SetDefault("max_output_tokens", 1024)
	v.SetDefault("planner_max_tokens", 500)
	v.SetDefault("planner_window", 20)
	v.SetDefault("db_path", defaultDBPath(dir))
	v.SetDefault("listen_addr", ":8080")

	v.SetConfigName("goodfoods")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	} else {
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("GOODFOODS")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GOODFOODS_API_KEY")
	}
	if cfg.PlannerWindow <= 0 {
		cfg.PlannerWindow = 20
	}
	return &cfg, nil
}

func defaultDBPath(dir string) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, "data", "restaurants.db")
}
