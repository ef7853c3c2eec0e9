package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFiles(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigFiles(t,
		"port: '9000'\njwt_ttl: 24h\nlog_level: debug\nlogin_rate_per_min: 5\n",
		"jwt_key: 'secret'\nmongo_uri: 'mongodb://db:27017'\nmongo_db: 'tracker'\n",
	)

	cfg := MustLoad(dir)

	if cfg.Public.Port != "9000" {
		t.Errorf("port: got %q", cfg.Public.Port)
	}
	if cfg.JwtTTL() != 24*time.Hour {
		t.Errorf("jwt_ttl: got %v", cfg.JwtTTL())
	}
	if cfg.JwtKey() != "secret" {
		t.Errorf("jwt_key: got %q", cfg.JwtKey())
	}
	if cfg.Private.MongoDB != "tracker" {
		t.Errorf("mongo_db: got %q", cfg.Private.MongoDB)
	}
}

func TestMustLoad_Defaults(t *testing.T) {
	dir := writeConfigFiles(t, "log_level: info\n", "jwt_key: 'k'\n")

	cfg := MustLoad(dir)

	if cfg.Public.Port != "8080" {
		t.Errorf("default port: got %q", cfg.Public.Port)
	}
	if cfg.JwtTTL() != 168*time.Hour {
		t.Errorf("default jwt_ttl: got %v", cfg.JwtTTL())
	}
	if cfg.Public.LoginRatePerMin != 10 {
		t.Errorf("default login rate: got %d", cfg.Public.LoginRatePerMin)
	}
}

func TestMustLoad_MissingJwtKey(t *testing.T) {
	dir := writeConfigFiles(t, "port: '8080'\n", "mongo_db: 'x'\n")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing jwt_key, got none")
		}
	}()

	_ = MustLoad(dir)
}

func TestMustLoad_MissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for missing config folder, got none")
		}
	}()

	_ = MustLoad(t.TempDir())
}
