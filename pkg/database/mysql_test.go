package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldMigrate(t *testing.T) {
	assert.True(t, shouldMigrate("debug", false))
	assert.True(t, shouldMigrate("", false))
	assert.True(t, shouldMigrate("debug", true))
	assert.True(t, shouldMigrate("release", true), "-migrate forces migration in release mode")
	assert.False(t, shouldMigrate("release", false))
}
