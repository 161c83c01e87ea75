package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "SurveyAPI", cfg.DBName)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("DB_NAME", "surveys_test")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("PORT", "9090")

	cfg := Load()
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "surveys_test", cfg.DBName)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "9090", cfg.Port)
}
