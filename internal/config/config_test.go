package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"KAKAO_REST_API_KEY", "KAKAO_BASE_URL", "OPENAI_API_KEY", "OPENAI_MODEL",
		"DATABASE_URL", "POSTGRES_HOST", "APP_PORT", "HTTP_CLIENT_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "https://dapi.kakao.com", cfg.KakaoBaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 10*time.Second, cfg.HTTPClientTimeout)
	assert.False(t, cfg.HasKakao())
	assert.False(t, cfg.HasOpenAI())
	assert.Equal(t, "host=localhost port=5432 user=lunch_user password=lunch_pass dbname=lunch_db sslmode=disable", cfg.DSN())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("KAKAO_REST_API_KEY", "kakao-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/lunch")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "3s")

	cfg := Load()

	assert.True(t, cfg.HasKakao())
	assert.True(t, cfg.HasOpenAI())
	assert.Equal(t, "postgres://u:p@db/lunch", cfg.DSN())
	assert.Equal(t, 3*time.Second, cfg.HTTPClientTimeout)
}

func TestInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("HTTP_CLIENT_TIMEOUT", "soon")

	assert.Equal(t, 10*time.Second, Load().HTTPClientTimeout)
}
