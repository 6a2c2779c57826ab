// @title           Lunch Solution Center API
// @version         1.0
// @description     REST API сервиса выбора места для обеда: поиск ресторанов рядом с локацией по свободному описанию, рекомендации меню и рекомендации сообщества.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  akozadaev@inbox.ru
// @contact.url    https://github.com/akozadaev/lunch_solution_center

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @schemes   http https
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/akozadaev/lunch_solution_center/docs" // swagger docs
	"github.com/akozadaev/lunch_solution_center/internal/config"
	"github.com/akozadaev/lunch_solution_center/internal/handlers"
	"github.com/akozadaev/lunch_solution_center/internal/kakao"
	"github.com/akozadaev/lunch_solution_center/internal/keywords"
	"github.com/akozadaev/lunch_solution_center/internal/logging"
	"github.com/akozadaev/lunch_solution_center/internal/menu"
	"github.com/akozadaev/lunch_solution_center/internal/openai"
	"github.com/akozadaev/lunch_solution_center/internal/search"
	"github.com/akozadaev/lunch_solution_center/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	if !cfg.HasKakao() {
		logger.Warn("KAKAO_REST_API_KEY is not set, place search will fail")
	}

	// Kakao Local API: геокодер и поиск ресторанов
	kakaoClient := kakao.NewClient(cfg.KakaoAPIKey, cfg.KakaoBaseURL, cfg.HTTPClientTimeout, logger)

	// OpenAI опционален: без ключа ключевые слова строятся только по словарям
	var generator keywords.Generator
	var menuGenerator menu.Generator
	if cfg.HasOpenAI() {
		oc, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.HTTPClientTimeout, logger)
		if err != nil {
			logger.Fatal("error creating OpenAI client", zap.Error(err))
		}
		generator = oc
		menuGenerator = oc
	} else {
		logger.Warn("OPENAI_API_KEY is not set, keyword generation and menu recommendations are disabled")
	}

	builder := keywords.NewBuilder(generator, logger)
	searchService := search.NewService(cfg.HasKakao(), kakaoClient, kakaoClient, builder, logger)
	recommender := menu.NewRecommender(menuGenerator, logger)

	// Инициализация PostgreSQL клиента
	pgStorage, err := storage.NewPostgresStorage(cfg.DSN())
	if err != nil {
		logger.Fatal("error creating PostgreSQL client", zap.Error(err))
	}
	defer pgStorage.Close()
	logger.Info("connected to PostgreSQL")

	if ddl, path := readFirst("migrations/001_recommendations.sql"); ddl != nil {
		if err := pgStorage.ApplySchema(context.Background(), string(ddl)); err != nil {
			logger.Fatal("error applying schema", zap.String("path", path), zap.Error(err))
		}
	} else {
		logger.Warn("could not read schema file from any location")
	}

	// Elasticsearch - необязательное поисковое зеркало рекомендаций
	var index handlers.RecommendationIndex
	if esStorage, err := newElasticsearchStorage(cfg, logger); err != nil {
		logger.Warn("recommendation search is disabled", zap.Error(err))
	} else {
		index = esStorage
	}

	h := handlers.NewHandlers(searchService, recommender, pgStorage, index, logger)

	// Настройка роутера
	router := mux.NewRouter()
	h.Register(router)

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("http://localhost:"+cfg.AppPort+"/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	router.Use(handlers.RequestLogger(logger))

	// Настройка сервера; CORS снаружи роутера, чтобы preflight OPTIONS не получал 405
	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      handlers.CORS(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Ожидание сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// newElasticsearchStorage создает клиент и индекс рекомендаций с маппингом из migrations.
func newElasticsearchStorage(cfg *config.Config, logger *zap.Logger) (*storage.ElasticsearchStorage, error) {
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:         []string{cfg.ElasticsearchURL},
		DisableMetaHeader: true,
	})
	if err != nil {
		return nil, err
	}

	esStorage := storage.NewElasticsearchStorageWithURL(esClient, cfg.ElasticsearchIndex, cfg.ElasticsearchURL)

	mapping, _ := readFirst("migrations/elasticsearch_mapping.json")
	if mapping == nil {
		return nil, errors.New("could not read mapping file from any location")
	}
	if err := esStorage.CreateIndex(context.Background(), string(mapping)); err != nil {
		return nil, err
	}

	logger.Info("elasticsearch index created/verified", zap.String("index", cfg.ElasticsearchIndex))
	return esStorage, nil
}

// readFirst читает файл относительно рабочего каталога, родителя или бинарника.
func readFirst(rel string) ([]byte, string) {
	paths := []string{
		rel,
		filepath.Join("..", rel),
		filepath.Join(filepath.Dir(os.Args[0]), "..", rel),
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			return data, path
		}
	}
	return nil, ""
}
