package config

import (
	"log"

	"github.com/spf13/viper"
)

type WebServerConfig struct {
	Port            string `mapstructure:"port"`
	IP              string `mapstructure:"ip"`
	Scheme          string `mapstructure:"scheme"`
	BaseURL         string `mapstructure:"base_url"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type RedisConfig struct {
	Address          string `mapstructure:"address"`
	Password         string `mapstructure:"password"`
	DB               int    `mapstructure:"db"`
	PoolSize         int    `mapstructure:"pool_size"`
	MinIdleConns     int    `mapstructure:"min_idle_conns"`
	OperationTimeout int    `mapstructure:"operation_timeout"`
}

type CacheConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MaxSizeMB   int  `mapstructure:"max_size_mb"`
	TTLSeconds  int  `mapstructure:"ttl_seconds"`
	CounterSize int  `mapstructure:"counter_size"`
}

type SessionConfig struct {
	CookieName string `mapstructure:"cookie_name"`
	TTLHours   int    `mapstructure:"ttl_hours"`
	Secure     bool   `mapstructure:"secure"`
}

// RateLimitConfig holds the per-route request budgets. Each tier is enforced
// per client IP; /health is exempt entirely.
type RateLimitConfig struct {
	PagesPerMinute        float64 `mapstructure:"pages_per_minute"`
	VerifyPerMinute       float64 `mapstructure:"verify_per_minute"`
	ProfessionalPerMinute float64 `mapstructure:"professional_per_minute"`
	AnalysisPerMinute     float64 `mapstructure:"analysis_per_minute"`
	DownloadPerHour       float64 `mapstructure:"download_per_hour"`
	Burst                 int     `mapstructure:"burst"`
}

type CaptchaConfig struct {
	SiteKey        string `mapstructure:"site_key"`
	SecretKey      string `mapstructure:"secret_key"`
	VerifyURL      string `mapstructure:"verify_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type SecurityConfig struct {
	HeadersEnabled  bool `mapstructure:"headers_enabled"`
	TokenTTLSeconds int  `mapstructure:"token_ttl_seconds"`
}

type ResumeConfig struct {
	PDFPath      string `mapstructure:"pdf_path"`
	DownloadName string `mapstructure:"download_name"`
}

type AdminConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Enabled bool   `mapstructure:"enabled"`
}

type LoggingConfig struct {
	Debug bool `mapstructure:"debug"`
}

type Config struct {
	WebServer WebServerConfig `mapstructure:"webserver"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Session   SessionConfig   `mapstructure:"session"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Captcha   CaptchaConfig   `mapstructure:"captcha"`
	Security  SecurityConfig  `mapstructure:"security"`
	Resume    ResumeConfig    `mapstructure:"resume"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

func LoadConfig() (Config, error) {
	var config Config

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Enable environment variable overrides
	viper.SetEnvPrefix("RESUMEPORTAL")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults plus env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Error reading config file: %v", err)
			return config, err
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		log.Printf("Unable to decode into struct: %v", err)
		return config, err
	}

	return config, nil
}

func MustLoadConfig() Config {
	config, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return config
}

func setDefaults() {
	// WebServer defaults
	viper.SetDefault("webserver.port", "8080")
	viper.SetDefault("webserver.ip", "127.0.0.1")
	viper.SetDefault("webserver.scheme", "http")
	viper.SetDefault("webserver.base_url", "")
	viper.SetDefault("webserver.read_timeout", 15)
	viper.SetDefault("webserver.write_timeout", 15)
	viper.SetDefault("webserver.shutdown_timeout", 30)

	// Redis defaults
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.min_idle_conns", 5)
	viper.SetDefault("redis.operation_timeout", 5)

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.max_size_mb", 50)
	viper.SetDefault("cache.ttl_seconds", 300)
	viper.SetDefault("cache.counter_size", 100000)

	// Session defaults
	viper.SetDefault("session.cookie_name", "resume_portal_session")
	viper.SetDefault("session.ttl_hours", 24)
	viper.SetDefault("session.secure", false)

	// RateLimit defaults
	viper.SetDefault("ratelimit.pages_per_minute", 100.0)
	viper.SetDefault("ratelimit.verify_per_minute", 10.0)
	viper.SetDefault("ratelimit.professional_per_minute", 5.0)
	viper.SetDefault("ratelimit.analysis_per_minute", 20.0)
	viper.SetDefault("ratelimit.download_per_hour", 5.0)
	viper.SetDefault("ratelimit.burst", 5)

	// Captcha defaults (empty secret means verification is treated as satisfied)
	viper.SetDefault("captcha.site_key", "")
	viper.SetDefault("captcha.secret_key", "")
	viper.SetDefault("captcha.verify_url", "https://www.google.com/recaptcha/api/siteverify")
	viper.SetDefault("captcha.timeout_seconds", 10)

	// Security defaults
	viper.SetDefault("security.headers_enabled", true)
	viper.SetDefault("security.token_ttl_seconds", 300)

	// Resume defaults
	viper.SetDefault("resume.pdf_path", "static/documents/Elson-Ealias-Resume-2025.pdf")
	viper.SetDefault("resume.download_name", "Elson-Ealias-Resume-2025.pdf")

	// Admin defaults
	viper.SetDefault("admin.api_key", "")
	viper.SetDefault("admin.enabled", false)

	// Logging defaults
	viper.SetDefault("logging.debug", false)
}
