// Command indexer переносит рекомендации сообщества из PostgreSQL в индекс Elasticsearch.
// Запускается после восстановления Elasticsearch или при смене маппинга.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"

	"github.com/akozadaev/lunch_solution_center/internal/config"
	"github.com/akozadaev/lunch_solution_center/internal/logging"
	"github.com/akozadaev/lunch_solution_center/internal/storage"
)

func main() {
	mappingPath := flag.String("mapping", "migrations/elasticsearch_mapping.json", "путь к маппингу индекса")
	flag.Parse()

	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pgStorage, err := storage.NewPostgresStorage(cfg.DSN())
	if err != nil {
		logger.Fatal("error creating PostgreSQL client", zap.Error(err))
	}
	defer pgStorage.Close()

	// Инициализация Elasticsearch клиента
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:         []string{cfg.ElasticsearchURL},
		DisableMetaHeader: true,
	})
	if err != nil {
		logger.Fatal("error creating Elasticsearch client", zap.Error(err))
	}

	esStorage := storage.NewElasticsearchStorageWithURL(esClient, cfg.ElasticsearchIndex, cfg.ElasticsearchURL)

	mapping, err := os.ReadFile(*mappingPath)
	if err != nil {
		logger.Fatal("error reading mapping file", zap.String("path", *mappingPath), zap.Error(err))
	}
	if err := esStorage.CreateIndex(ctx, string(mapping)); err != nil {
		logger.Fatal("error creating index", zap.Error(err))
	}

	recs, err := pgStorage.ListRecommendations(ctx, storage.SortLatest)
	if err != nil {
		logger.Fatal("error loading recommendations", zap.Error(err))
	}

	logger.Info("indexing recommendations", zap.Int("count", len(recs)), zap.String("index", cfg.ElasticsearchIndex))

	if err := esStorage.BulkIndexRecommendations(ctx, recs); err != nil {
		logger.Fatal("error indexing recommendations", zap.Error(err))
	}

	logger.Info("indexing completed successfully")
}
