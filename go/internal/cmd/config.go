package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the API server settings loaded from config.yaml.
// Environment variables override the file; see applyEnv.
type Config struct {
	API struct {
		Port string `yaml:"port"`
	} `yaml:"api"`
	Ball struct {
		APIKey    string `yaml:"api_key"`
		AssetsDir string `yaml:"assets_dir"`
	} `yaml:"ball"`
	Redis struct {
		Addr string `yaml:"addr"`
	} `yaml:"redis"`
	Boxscore struct {
		RefreshInterval time.Duration `yaml:"refresh_interval"`
	} `yaml:"boxscore"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// loadConfig reads the yaml file when present and layers env overrides
// on top. A missing file is fine; env alone can configure everything.
func loadConfig(path string) (*Config, error) {
	var config Config
	config.API.Port = "8080"
	config.Boxscore.RefreshInterval = time.Hour

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config.applyEnv()
	return &config, nil
}

func (c *Config) applyEnv() {
	c.API.Port = getEnv("PORT", c.API.Port)
	c.Ball.APIKey = getEnv("BALL_API_KEY", c.Ball.APIKey)
	c.Ball.AssetsDir = getEnv("BALL_ASSETS_DIR", c.Ball.AssetsDir)
	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	if v := os.Getenv("BOXSCORE_REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Boxscore.RefreshInterval = d
		}
	}
}
