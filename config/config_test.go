package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.WebServer.Port != "8080" {
		t.Errorf("WebServer.Port = %q, want 8080", cfg.WebServer.Port)
	}
	if cfg.Redis.Address != "localhost:6379" {
		t.Errorf("Redis.Address = %q, want localhost:6379", cfg.Redis.Address)
	}
	if cfg.Session.CookieName != "resume_portal_session" {
		t.Errorf("Session.CookieName = %q, want resume_portal_session", cfg.Session.CookieName)
	}
	if cfg.Security.TokenTTLSeconds != 300 {
		t.Errorf("Security.TokenTTLSeconds = %d, want 300", cfg.Security.TokenTTLSeconds)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled = false, want true by default")
	}
	if cfg.Admin.Enabled {
		t.Error("Admin.Enabled = true, want false by default")
	}
	if cfg.Logging.Debug {
		t.Error("Logging.Debug = true, want false by default")
	}
	if cfg.Cache.TTLSeconds != 300 {
		t.Errorf("Cache.TTLSeconds = %d, want 300", cfg.Cache.TTLSeconds)
	}
}

func TestLoadConfig_RateLimitTiers(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"PagesPerMinute", cfg.RateLimit.PagesPerMinute, 100},
		{"VerifyPerMinute", cfg.RateLimit.VerifyPerMinute, 10},
		{"ProfessionalPerMinute", cfg.RateLimit.ProfessionalPerMinute, 5},
		{"AnalysisPerMinute", cfg.RateLimit.AnalysisPerMinute, 20},
		{"DownloadPerHour", cfg.RateLimit.DownloadPerHour, 5},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if cfg.RateLimit.Burst != 5 {
		t.Errorf("Burst = %d, want 5", cfg.RateLimit.Burst)
	}
}
