package kakao

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/akozadaev/lunch_solution_center/internal/models"
)

// Параметры поиска заведений вокруг центра.
const (
	CategoryRestaurant = "FD6"   // Группа категорий "음식점"
	SearchRadiusMeters = 1000    // Радиус 1 км
	PageSize           = 15      // Максимум Kakao на страницу
	MaxPages           = 3       // Не более 45 записей на ключевое слово
	KeywordSuffix      = " 맛집" // Добавляется к каждому ключевому слову
)

// SearchOne ищет рестораны по запросу вокруг center, проходя страницы по порядку.
// Остановка: пустая страница, meta.is_end или лимит MaxPages.
// Ошибка любой страницы прерывает поиск.
func (c *Client) SearchOne(ctx context.Context, center models.Coordinate, query string) ([]models.PlaceRecord, error) {
	var all []models.PlaceRecord

	for page := 1; page <= MaxPages; page++ {
		params := url.Values{}
		params.Set("query", query)
		params.Set("category_group_code", CategoryRestaurant)
		params.Set("x", formatDegrees(center.Lng))
		params.Set("y", formatDegrees(center.Lat))
		params.Set("radius", strconv.Itoa(SearchRadiusMeters))
		params.Set("size", strconv.Itoa(PageSize))
		params.Set("page", strconv.Itoa(page))

		result, err := c.get(ctx, keywordSearchPath, params)
		if err != nil {
			return nil, fmt.Errorf("search %q page %d: %w", query, page, err)
		}

		if len(result.Documents) == 0 {
			break
		}
		all = append(all, result.Documents...)

		if result.Meta.IsEnd {
			break
		}
	}

	c.logger.Debug("keyword search finished",
		zap.String("query", query),
		zap.Int("results", len(all)),
	)

	return all, nil
}

// SearchAll выполняет SearchOne для каждого ключевого слова (с суффиксом KeywordSuffix)
// последовательно и объединяет результаты без дублей по ID.
func (c *Client) SearchAll(ctx context.Context, center models.Coordinate, keywords []string) ([]models.PlaceRecord, error) {
	var merged []models.PlaceRecord

	for _, keyword := range keywords {
		records, err := c.SearchOne(ctx, center, keyword+KeywordSuffix)
		if err != nil {
			return nil, err
		}
		merged = append(merged, records...)
	}

	return DedupeByID(merged), nil
}

// DedupeByID удаляет записи с повторяющимся ID, сохраняя первое вхождение и порядок.
func DedupeByID(records []models.PlaceRecord) []models.PlaceRecord {
	seen := make(map[string]bool, len(records))
	unique := make([]models.PlaceRecord, 0, len(records))
	for _, r := range records {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		unique = append(unique, r)
	}
	return unique
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
