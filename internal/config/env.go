package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Env is the process configuration. Values come from defaults, then an
// optional YAML file, then environment variables.
type Env struct {
	AppAddr     string   `yaml:"app_addr"`
	GinMode     string   `yaml:"gin_mode"`
	CORSOrigins []string `yaml:"cors_allowed_origins"`

	DB DBConfig `yaml:"db"`

	LogLevel  string `yaml:"log_level"`
	LogPretty bool   `yaml:"log_pretty"`

	// APIBaseURL is where the browse command reaches the movies API.
	APIBaseURL string `yaml:"api_base_url"`
}

type DBConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Name         string `yaml:"name"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

func Defaults() Env {
	return Env{
		AppAddr: ":8080",
		CORSOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		},
		DB: DBConfig{
			Host:         "127.0.0.1",
			Port:         3306,
			User:         "root",
			Name:         "movies",
			MaxOpenConns: 25,
		},
		LogLevel:   "info",
		APIBaseURL: "http://localhost:8080",
	}
}

// Load builds the configuration. path may be empty to skip the YAML file.
func Load(path string) (Env, error) {
	env := Defaults()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return env, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &env); err != nil {
			return env, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&env, os.LookupEnv)
	return env, nil
}

func applyEnv(env *Env, lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("APP_ADDR", &env.AppAddr)
	str("GIN_MODE", &env.GinMode)
	str("DB_HOST", &env.DB.Host)
	str("DB_USER", &env.DB.User)
	str("DB_NAME", &env.DB.Name)
	str("LOG_LEVEL", &env.LogLevel)
	str("MOVIES_API_URL", &env.APIBaseURL)

	// empty password is legitimate, so only presence matters
	if v, ok := lookup("DB_PASSWORD"); ok {
		env.DB.Password = v
	}
	if v, ok := lookup("DB_PORT"); ok {
		if port, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && port > 0 {
			env.DB.Port = port
		}
	}
	if v, ok := lookup("LOG_PRETTY"); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			env.LogPretty = b
		}
	}
	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok && strings.TrimSpace(v) != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
		env.CORSOrigins = origins
	}
}
