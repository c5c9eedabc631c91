package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultAppPort    = "3000"
	defaultAppEnv     = "local"
	defaultDataFile   = "products.json"
	defaultJWTSecret  = "change-me-in-production"
	defaultTokenTTL   = "1h"
	defaultAdminEmail = "admin@admin.com"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env once. Missing files are fine;
// defaults apply for any key left unset.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_PORT":           defaultAppPort,
		"APP_ENV":            defaultAppEnv,
		"DATA_FILE":          defaultDataFile,
		"JWT_SECRET":         defaultJWTSecret,
		"TOKEN_TTL":          defaultTokenTTL,
		"ADMIN_EMAIL":        defaultAdminEmail,
		"STORAGE_DISK":       "local",
		"STORAGE_LOCAL_ROOT": ".",
		"RATE_LIMIT":         "300",
		"RATE_WINDOW":        "1m",
	}
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// DataFile is the path (relative to the storage disk root) of the flat
// JSON file holding the product collection.
func DataFile() string {
	_ = Load()
	return get("DATA_FILE", defaultDataFile)
}

func JWTSecret() string {
	_ = Load()
	return get("JWT_SECRET", defaultJWTSecret)
}

// TokenTTL is the bearer token lifetime. Falls back to one hour when the
// configured value does not parse as a duration.
func TokenTTL() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("TOKEN_TTL", defaultTokenTTL))
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// AdminEmail is the single administrator identity allowed to mutate the
// product catalogue.
func AdminEmail() string {
	_ = Load()
	return get("ADMIN_EMAIL", defaultAdminEmail)
}

// ── Storage ──────────────────────────────────────────────────────────────────

func StorageDefault() string {
	_ = Load()
	return get("STORAGE_DISK", "local")
}

func StorageLocalRoot() string {
	_ = Load()
	return get("STORAGE_LOCAL_ROOT", ".")
}

func StorageS3Bucket() string   { _ = Load(); return get("S3_BUCKET", "") }
func StorageS3Region() string   { _ = Load(); return get("S3_REGION", "us-east-1") }
func StorageS3Key() string      { _ = Load(); return get("S3_KEY", "") }
func StorageS3Secret() string   { _ = Load(); return get("S3_SECRET", "") }
func StorageS3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }
func StorageS3URL() string      { _ = Load(); return get("S3_URL", "") }

// ── Rate limiting ────────────────────────────────────────────────────────────

func RateLimit() int {
	_ = Load()
	n, err := strconv.Atoi(get("RATE_LIMIT", "300"))
	if err != nil || n <= 0 {
		return 300
	}
	return n
}

func RateWindow() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("RATE_WINDOW", "1m"))
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

// Set overrides a single key in place. Intended for tests and for CLI flag
// overrides applied before the server starts.
func Set(key, value string) {
	_ = Load()
	mu.Lock()
	values[strings.ToUpper(strings.TrimSpace(key))] = value
	mu.Unlock()
}
