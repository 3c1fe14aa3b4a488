package config

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// The config watcher applies reloads while request goroutines read the shared
// config, so readers and ApplyReloadable must be safe to run concurrently.
// This test fails under -race if either side bypasses the lock.
func TestApplyReloadableConcurrentReads(t *testing.T) {
	cfg := &Config{}
	cfg.JWT.Secret = "old-secret"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Auth.RecheckAdminRole = true
	cfg.Admin.PromoteSecret = "old-promote"

	newCfg := &Config{}
	newCfg.JWT.Secret = "new-secret"
	newCfg.JWT.ExpireTime = 2 * time.Hour
	newCfg.Auth.RecheckAdminRole = false
	newCfg.Admin.PromoteSecret = "new-promote"

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				secret := cfg.JWTSecret()
				if secret != "old-secret" && secret != "new-secret" {
					t.Errorf("torn secret read: %q", secret)
					return
				}
				cfg.JWTExpireTime()
				cfg.RecheckAdminRole()
				cfg.PromoteSecret()
			}
		}()
	}

	for i := 0; i < 200; i++ {
		cfg.ApplyReloadable(newCfg)
	}
	close(stop)
	wg.Wait()

	assert.Equal(t, "new-secret", cfg.JWTSecret())
	assert.Equal(t, 2*time.Hour, cfg.JWTExpireTime())
	assert.False(t, cfg.RecheckAdminRole())
	assert.Equal(t, "new-promote", cfg.PromoteSecret())
}

// Sections that are only read at startup must survive a reload untouched.
func TestApplyReloadableLeavesRestartOnlySections(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Server.Mode = "release"
	cfg.Database.DBName = "codedex"
	cfg.Storage.Type = "local"

	newCfg := &Config{}
	newCfg.Server.Port = "9999"
	newCfg.Database.DBName = "other"
	newCfg.Storage.Type = "minio"

	cfg.ApplyReloadable(newCfg)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "codedex", cfg.Database.DBName)
	assert.Equal(t, "local", cfg.Storage.Type)
}
