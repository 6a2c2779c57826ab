// Package config предоставляет загрузку конфигурации приложения из переменных окружения.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config содержит все параметры конфигурации приложения.
// Создается один раз при старте процесса и передается в конструкторы компонентов.
type Config struct {
	KakaoAPIKey  string // REST API ключ Kakao Local API (KAKAO_REST_API_KEY)
	KakaoBaseURL string // Базовый URL Kakao Local API

	OpenAIAPIKey  string // Ключ OpenAI; пустой ключ отключает генерацию ключевых слов
	OpenAIBaseURL string // Базовый URL OpenAI-совместимого API
	OpenAIModel   string // Модель для chat completions

	DatabaseURL      string // Полный DSN PostgreSQL, имеет приоритет над POSTGRES_*
	PostgresHost     string // Хост PostgreSQL
	PostgresPort     string // Порт PostgreSQL
	PostgresUser     string // Пользователь PostgreSQL
	PostgresPassword string // Пароль PostgreSQL
	PostgresDB       string // Имя базы данных PostgreSQL

	ElasticsearchURL   string // URL для подключения к Elasticsearch/OpenSearch
	ElasticsearchIndex string // Индекс зеркала рекомендаций

	AppPort           string        // Порт для HTTP сервера
	LogLevel          string        // Уровень логирования zap
	HTTPClientTimeout time.Duration // Таймаут исходящих HTTP запросов
}

// Load загружает конфигурацию из переменных окружения.
// Если переменная не установлена, используется значение по умолчанию.
func Load() *Config {
	return &Config{
		KakaoAPIKey:        os.Getenv("KAKAO_REST_API_KEY"),
		KakaoBaseURL:       getEnv("KAKAO_BASE_URL", "https://dapi.kakao.com"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		PostgresHost:       getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:       getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:       getEnv("POSTGRES_USER", "lunch_user"),
		PostgresPassword:   getEnv("POSTGRES_PASSWORD", "lunch_pass"),
		PostgresDB:         getEnv("POSTGRES_DB", "lunch_db"),
		ElasticsearchURL:   getEnv("ELASTICSEARCH_URL", "http://localhost:9200"),
		ElasticsearchIndex: getEnv("ELASTICSEARCH_INDEX", "recommendations"),
		AppPort:            getEnv("APP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		HTTPClientTimeout:  getDuration("HTTP_CLIENT_TIMEOUT", 10*time.Second),
	}
}

// DSN возвращает строку подключения к PostgreSQL для lib/pq.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresDB,
	)
}

// HasKakao сообщает, задан ли ключ Kakao.
func (c *Config) HasKakao() bool {
	return c.KakaoAPIKey != ""
}

// HasOpenAI сообщает, задан ли ключ OpenAI.
func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
