package kakao

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/akozadaev/lunch_solution_center/internal/apperr"
	"github.com/akozadaev/lunch_solution_center/internal/models"
)

const (
	addressSearchPath = "/v2/local/search/address.json"
	keywordSearchPath = "/v2/local/search/keyword.json"
)

// Resolve переводит адрес или название района в координаты.
// Сначала выполняется поиск по адресу, затем по ключевому слову (станции, кварталы).
// Если оба поиска пусты, возвращается apperr.ErrNotFound.
func (c *Client) Resolve(ctx context.Context, locationText string) (models.Coordinate, error) {
	for _, path := range []string{addressSearchPath, keywordSearchPath} {
		params := url.Values{}
		params.Set("query", locationText)
		params.Set("size", "1")

		result, err := c.get(ctx, path, params)
		if err != nil {
			return models.Coordinate{}, fmt.Errorf("geocode %q: %w", locationText, err)
		}

		if len(result.Documents) == 0 {
			continue
		}
		if coord, ok := ParseCoordinate(result.Documents[0].X, result.Documents[0].Y); ok {
			c.logger.Debug("location resolved",
				zap.String("query", locationText),
				zap.String("via", path),
				zap.Float64("lng", coord.Lng),
				zap.Float64("lat", coord.Lat),
			)
			return coord, nil
		}
	}

	return models.Coordinate{}, apperr.ErrNotFound
}

// ParseCoordinate разбирает строковые x (долгота) и y (широта) Kakao.
func ParseCoordinate(x, y string) (models.Coordinate, bool) {
	lng, ok := ParseNumber(x)
	if !ok {
		return models.Coordinate{}, false
	}
	lat, ok := ParseNumber(y)
	if !ok {
		return models.Coordinate{}, false
	}
	return models.Coordinate{Lng: lng, Lat: lat}, true
}

// ParseNumber разбирает число из строкового поля Kakao; NaN и бесконечности отвергаются.
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
