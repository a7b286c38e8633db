package postgres

import (
	"testing"
	"time"

	"github.com/ogurasousui/employee-records/internal/platform/config"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:          config.DriverPostgres,
		Host:            "localhost",
		Port:            15432,
		User:            "app",
		Password:        "p@ss word",
		Name:            "employees",
		SSLMode:         "disable",
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}
}

func TestBuildPoolConfig(t *testing.T) {
	t.Parallel()

	poolCfg, err := BuildPoolConfig(testDatabaseConfig())
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MaxConns != 20 {
		t.Errorf("expected MaxConns 20, got %d", poolCfg.MaxConns)
	}
	if poolCfg.MinConns != 5 {
		t.Errorf("expected MinConns 5, got %d", poolCfg.MinConns)
	}
	if poolCfg.MaxConnLifetime != 30*time.Minute {
		t.Errorf("unexpected MaxConnLifetime: %v", poolCfg.MaxConnLifetime)
	}
	if poolCfg.MaxConnIdleTime != 10*time.Minute {
		t.Errorf("unexpected MaxConnIdleTime: %v", poolCfg.MaxConnIdleTime)
	}
	if poolCfg.ConnConfig.Database != "employees" {
		t.Errorf("expected database employees, got %s", poolCfg.ConnConfig.Database)
	}
	if poolCfg.ConnConfig.Password != "p@ss word" {
		t.Errorf("password not decoded from DSN: %q", poolCfg.ConnConfig.Password)
	}
}

func TestBuildPoolConfig_SessionParams(t *testing.T) {
	t.Parallel()

	poolCfg, err := BuildPoolConfig(testDatabaseConfig())
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	params := poolCfg.ConnConfig.RuntimeParams
	if params["application_name"] != ApplicationName {
		t.Errorf("unexpected application_name: %q", params["application_name"])
	}
	if params["timezone"] != "UTC" {
		t.Errorf("unexpected timezone: %q", params["timezone"])
	}
}

func TestBuildPoolConfig_MinConnsCappedByMaxConns(t *testing.T) {
	t.Parallel()

	cfg := testDatabaseConfig()
	cfg.MaxOpenConns = 4
	cfg.MaxIdleConns = 10

	poolCfg, err := BuildPoolConfig(cfg)
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MinConns != 4 {
		t.Errorf("expected MinConns capped to 4, got %d", poolCfg.MinConns)
	}
}
