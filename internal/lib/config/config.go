package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SourceGH  = "gh"
	SourceAPI = "api"
)

type Config struct {
	Env              string        `yaml:"env" env:"ENV" env-default:"local"`
	Source           string        `yaml:"source" env:"DAPKA_SOURCE" env-default:"gh"`
	GitHubToken      string        `yaml:"github_token" env:"GITHUB_TOKEN"`
	GHBinary         string        `yaml:"gh_binary" env:"GH_BINARY" env-default:"gh"`
	CommandTimeout   time.Duration `yaml:"command_timeout" env:"DAPKA_COMMAND_TIMEOUT" env-default:"2m"`
	OutDir           string        `yaml:"out_dir" env:"DAPKA_OUT_DIR" env-default:"."`
	InstructionsPath string        `yaml:"instructions_path" env-default:".github/copilot-instructions.md"`
	Report           Report        `yaml:"report"`
	HTTPServer       HTTPServer    `yaml:"http_server"`
}

type Report struct {
	Metric          string   `yaml:"metric" env-default:"time_to_merge_in_seconds"`
	Funcs           []string `yaml:"funcs" env:"DAPKA_FUNCS"`
	NonAIMultiplier int      `yaml:"non_ai_multiplier" env-default:"2"`
	Bins            int      `yaml:"bins" env-default:"30"`
	WidthInches     float64  `yaml:"width_inches" env-default:"8"`
	HeightInches    float64  `yaml:"height_inches" env-default:"6"`
}

type HTTPServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Load reads the config file when one is given, falling back to the environment.
// path > CONFIG_PATH > env only.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: failed to read env: %w", op, err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to read config: %w", op, err)
	}

	return &cfg, nil
}

// MustLoad panics if config can not be loaded.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}
