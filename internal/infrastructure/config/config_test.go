package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected redis addr: %s", cfg.Redis.Addr)
	}
	if cfg.Redis.PoolSize != 10 {
		t.Fatalf("unexpected redis pool size: %d", cfg.Redis.PoolSize)
	}
}

func TestLoad_RedisCredentials(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache.internal:6380")
	t.Setenv("REDIS_PASSWORD", "s3cret")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_POOL_SIZE", "25")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Redis.Addr != "cache.internal:6380" {
		t.Fatalf("unexpected addr: %s", cfg.Redis.Addr)
	}
	if cfg.Redis.Password != "s3cret" {
		t.Fatalf("unexpected password: %s", cfg.Redis.Password)
	}
	if cfg.Redis.DB != 2 {
		t.Fatalf("unexpected db: %d", cfg.Redis.DB)
	}
	if cfg.Redis.PoolSize != 25 {
		t.Fatalf("unexpected pool size: %d", cfg.Redis.PoolSize)
	}
}
