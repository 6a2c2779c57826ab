// Package search реализует конвейер поиска заведений:
// геокодирование, ключевые слова, поиск в Kakao, дедупликация и формирование ответа.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/akozadaev/lunch_solution_center/internal/apperr"
	"github.com/akozadaev/lunch_solution_center/internal/keywords"
	"github.com/akozadaev/lunch_solution_center/internal/logging"
	"github.com/akozadaev/lunch_solution_center/internal/models"
)

// Пользовательские сообщения валидации.
const (
	MsgLocationRequired = "어디 근처에서 찾을지(주소/지역)를 입력해 주세요."
	MsgFreeTextRequired = "오늘 점심에 대한 생각을 한 줄 적어 주세요."
)

// Geocoder переводит текст локации в координаты.
type Geocoder interface {
	Resolve(ctx context.Context, locationText string) (models.Coordinate, error)
}

// PlaceSearcher ищет заведения по списку ключевых слов вокруг центра.
type PlaceSearcher interface {
	SearchAll(ctx context.Context, center models.Coordinate, keywords []string) ([]models.PlaceRecord, error)
}

// KeywordBuilder строит ключевые слова из свободного текста.
type KeywordBuilder interface {
	Build(ctx context.Context, freeText string) []string
}

// Service выполняет поиск заведений последовательно, шаг за шагом.
type Service struct {
	configured bool
	geocoder   Geocoder
	searcher   PlaceSearcher
	builder    KeywordBuilder
	logger     *zap.Logger
}

// NewService создает Service. configured=false означает отсутствие ключа Kakao:
// каждый запрос завершится apperr.ConfigurationError до любых внешних вызовов.
func NewService(configured bool, geocoder Geocoder, searcher PlaceSearcher, builder KeywordBuilder, logger *zap.Logger) *Service {
	return &Service{
		configured: configured,
		geocoder:   geocoder,
		searcher:   searcher,
		builder:    builder,
		logger:     logging.OrNop(logger),
	}
}

// Search выполняет полный конвейер поиска для запроса.
func (s *Service) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	if !s.configured {
		return nil, &apperr.ConfigurationError{Key: "KAKAO_REST_API_KEY"}
	}
	if err := Validate(req); err != nil {
		return nil, err
	}

	start := time.Now()

	center, err := s.geocoder.Resolve(ctx, req.LocationKeyword)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve location: %w", err)
	}

	kws := keywords.WithRawText(s.builder.Build(ctx, req.FreeText), req.FreeText)

	records, err := s.searcher.SearchAll(ctx, center, kws)
	if err != nil {
		return nil, fmt.Errorf("failed to search places: %w", err)
	}

	places := Shape(center, records)

	s.logger.Info("places searched",
		zap.String("location", req.LocationKeyword),
		zap.Strings("keywords", kws),
		zap.Int("places", len(places)),
		zap.Duration("took", time.Since(start)),
	)

	return &models.SearchResponse{
		Center: center,
		Places: places,
	}, nil
}

// Validate проверяет обязательные поля запроса.
func Validate(req models.SearchRequest) error {
	if strings.TrimSpace(req.LocationKeyword) == "" {
		return &apperr.ValidationError{Field: "locationKeyword", Message: MsgLocationRequired}
	}
	if strings.TrimSpace(req.FreeText) == "" {
		return &apperr.ValidationError{Field: "freeText", Message: MsgFreeTextRequired}
	}
	return nil
}
