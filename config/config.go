package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppConfig holds environment driven configuration values. Credentials are
// never defaulted in code; they must come from the environment.
type AppConfig struct {
	AppPort        string
	GinMode        string
	AllowedOrigins []string

	// Firestore
	FirestoreProjectID string
	ServiceAccountJSON string

	// Milestone policy. Step is the threshold spacing for total-class
	// milestones; ScanMinutes > 0 enables the background scan worker.
	MilestoneStep        int
	MilestoneScanMinutes int

	// Discipline classification markers, matched as case-insensitive
	// substrings of the class name. NoGiMarker is checked first.
	GiMarker   string
	NoGiMarker string

	RateLimitPerMinute int

	// Logging
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load reads configuration once during boot. Precedence:
// config/config.json -> defaults -> environment variable overrides.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	_ = loadJSONConfig(filepath.Join("config", "config.json"), &cfg)
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// Reset clears the cached configuration. Test helper.
func Reset() {
	cfg = AppConfig{}
	loaded = false
}

// loadJSONConfig reads a grouped JSON file into out if present. Returns an
// error only for invalid JSON.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil // missing file is fine
	}
	defer f.Close()

	var raw map[string]any
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return err
	}

	getString := func(m map[string]any, key string) string {
		if s, ok := m[key].(string); ok {
			return s
		}
		return ""
	}
	getInt := func(m map[string]any, key string) int {
		switch t := m[key].(type) {
		case float64:
			return int(t)
		case int:
			return t
		}
		return 0
	}
	getStringSlice := func(m map[string]any, key string) []string {
		arr, ok := m[key].([]any)
		if !ok {
			return nil
		}
		res := make([]string, 0, len(arr))
		for _, it := range arr {
			if s, ok := it.(string); ok {
				res = append(res, s)
			}
		}
		return res
	}

	if app, ok := raw["app"].(map[string]any); ok {
		out.AppPort = getString(app, "AppPort")
		if v := getInt(app, "RateLimitPerMinute"); v != 0 {
			out.RateLimitPerMinute = v
		}
		if list := getStringSlice(app, "AllowedOrigins"); len(list) > 0 {
			out.AllowedOrigins = list
		}
	}

	if g, ok := raw["gin"].(map[string]any); ok {
		if v := getString(g, "Mode"); v != "" {
			out.GinMode = v
		}
	}

	if fs, ok := raw["firestore"].(map[string]any); ok {
		out.FirestoreProjectID = getString(fs, "ProjectID")
	}

	if ms, ok := raw["milestones"].(map[string]any); ok {
		if v := getInt(ms, "Step"); v != 0 {
			out.MilestoneStep = v
		}
		if v := getInt(ms, "ScanMinutes"); v != 0 {
			out.MilestoneScanMinutes = v
		}
	}

	if cl, ok := raw["classes"].(map[string]any); ok {
		if v := getString(cl, "GiMarker"); v != "" {
			out.GiMarker = v
		}
		if v := getString(cl, "NoGiMarker"); v != "" {
			out.NoGiMarker = v
		}
	}

	if lg, ok := raw["log"].(map[string]any); ok {
		if v := getString(lg, "Level"); v != "" {
			out.LogLevel = v
		}
		if v := getString(lg, "Path"); v != "" {
			out.LogPath = v
		}
		if v := getInt(lg, "MaxSizeMB"); v != 0 {
			out.LogMaxSizeMB = v
		}
		if v := getInt(lg, "MaxBackups"); v != 0 {
			out.LogMaxBackups = v
		}
		if v := getInt(lg, "MaxAgeDays"); v != 0 {
			out.LogMaxAgeDays = v
		}
		if b, ok := lg["Compress"].(bool); ok {
			out.LogCompress = b
		}
	}

	return nil
}

// applyDefaults sets sane defaults for zero-value fields.
func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "3000"
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.MilestoneStep == 0 {
		c.MilestoneStep = 25
	}
	if c.GiMarker == "" {
		c.GiMarker = "gi"
	}
	if c.NoGiMarker == "" {
		c.NoGiMarker = "no-gi"
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 60
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

// applyEnvOverrides maps known environment variables onto config values when present.
func applyEnvOverrides(c *AppConfig) {
	if v := os.Getenv("APP_PORT"); v != "" {
		c.AppPort = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.GinMode = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("FIRESTORE_PROJECT_ID"); v != "" {
		c.FirestoreProjectID = v
	}
	if v := os.Getenv("SERVICE_ACCOUNT_JSON"); v != "" {
		c.ServiceAccountJSON = v
	}
	if v := os.Getenv("MILESTONE_STEP"); v != "" {
		c.MilestoneStep = mustParseInt(v)
	}
	if v := os.Getenv("MILESTONE_SCAN_MINUTES"); v != "" {
		c.MilestoneScanMinutes = mustParseInt(v)
	}
	if v := os.Getenv("CLASS_GI_MARKER"); v != "" {
		c.GiMarker = v
	}
	if v := os.Getenv("CLASS_NOGI_MARKER"); v != "" {
		c.NoGiMarker = v
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		c.RateLimitPerMinute = mustParseInt(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_PATH"); v != "" {
		c.LogPath = v
	}
	if v := os.Getenv("LOG_MAX_SIZE_MB"); v != "" {
		c.LogMaxSizeMB = mustParseInt(v)
	}
	if v := os.Getenv("LOG_MAX_BACKUPS"); v != "" {
		c.LogMaxBackups = mustParseInt(v)
	}
	if v := os.Getenv("LOG_MAX_AGE_DAYS"); v != "" {
		c.LogMaxAgeDays = mustParseInt(v)
	}
	if v := os.Getenv("LOG_COMPRESS"); v != "" {
		c.LogCompress = v == "true"
	}
}

func mustParseInt(val string) int {
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("invalid integer value %s: %v", val, err)
	}
	return i
}

func splitAndTrim(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
