package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Storage struct {
		// Backend selects the persistence collaborator: "redis", "file" or
		// "memory". The store snapshot is rewritten on every mutation.
		Backend  string `yaml:"backend" default:"redis"`
		Key      string `yaml:"key" default:"resumeforge:resumes"`
		FilePath string `yaml:"file_path" default:"data/resumes.json"`
		Redis    struct {
			URL      string        `yaml:"url" default:"redis://localhost:6379"`
			Password string        `yaml:"password"`
			DB       int           `yaml:"db" default:"0"`
			Timeout  time.Duration `yaml:"timeout" default:"5s"`
		} `yaml:"redis"`
	} `yaml:"storage"`

	LLM struct {
		Provider    string        `yaml:"provider" default:"claude"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model" default:"claude-3-haiku-20240307"`
		MaxTokens   int           `yaml:"max_tokens" default:"1024"`
		Temperature float32       `yaml:"temperature" default:"0.7"`
		Timeout     time.Duration `yaml:"timeout" default:"60s"`
		RateLimit   int           `yaml:"rate_limit" default:"30"` // requests per minute
	} `yaml:"llm"`

	ATS struct {
		// Scorer selects the analysis collaborator: "mock" simulates the
		// external scoring API, "llm" delegates to the configured provider.
		Scorer         string        `yaml:"scorer" default:"mock"`
		MaxUploadBytes int64         `yaml:"max_upload_bytes" default:"5242880"`
		MockDelay      time.Duration `yaml:"mock_delay" default:"2s"`
	} `yaml:"ats"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Storage.Backend = "redis"
	config.Storage.Key = "resumeforge:resumes"
	config.Storage.FilePath = "data/resumes.json"
	config.Storage.Redis.URL = "redis://localhost:6379"
	config.Storage.Redis.DB = 0
	config.Storage.Redis.Timeout = 5 * time.Second

	config.LLM.Provider = "claude"
	config.LLM.Model = "claude-3-haiku-20240307"
	config.LLM.MaxTokens = 1024
	config.LLM.Temperature = 0.7
	config.LLM.Timeout = 60 * time.Second
	config.LLM.RateLimit = 30

	config.ATS.Scorer = "mock"
	config.ATS.MaxUploadBytes = 5 * 1024 * 1024
	config.ATS.MockDelay = 2 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}

	if key := os.Getenv("STORAGE_KEY"); key != "" {
		c.Storage.Key = key
	}

	if filePath := os.Getenv("STORAGE_FILE_PATH"); filePath != "" {
		c.Storage.FilePath = filePath
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Storage.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Storage.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Storage.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Storage.Redis.Timeout = timeout
		}
	}

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if maxTokens := os.Getenv("LLM_MAX_TOKENS"); maxTokens != "" {
		if tokens, err := strconv.Atoi(maxTokens); err == nil {
			c.LLM.MaxTokens = tokens
		}
	}

	if rateLimit := os.Getenv("LLM_RATE_LIMIT"); rateLimit != "" {
		if limit, err := strconv.Atoi(rateLimit); err == nil {
			c.LLM.RateLimit = limit
		}
	}

	if scorer := os.Getenv("ATS_SCORER"); scorer != "" {
		c.ATS.Scorer = scorer
	}

	if maxUpload := os.Getenv("ATS_MAX_UPLOAD_BYTES"); maxUpload != "" {
		if size, err := strconv.ParseInt(maxUpload, 10, 64); err == nil {
			c.ATS.MaxUploadBytes = size
		}
	}

	if mockDelay := os.Getenv("ATS_MOCK_DELAY"); mockDelay != "" {
		if delay, err := time.ParseDuration(mockDelay); err == nil {
			c.ATS.MockDelay = delay
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
