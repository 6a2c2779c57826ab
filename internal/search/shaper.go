package search

import (
	"github.com/akozadaev/lunch_solution_center/internal/geo"
	"github.com/akozadaev/lunch_solution_center/internal/kakao"
	"github.com/akozadaev/lunch_solution_center/internal/models"
)

// Shape преобразует записи Kakao в формат ответа, сохраняя порядок.
func Shape(center models.Coordinate, records []models.PlaceRecord) []models.Place {
	places := make([]models.Place, 0, len(records))
	for _, r := range records {
		place := models.Place{
			ID:       r.ID,
			Name:     r.PlaceName,
			Category: r.CategoryName,
			Address:  r.RoadAddressName,
			Link:     r.PlaceURL,
			MapURL:   r.PlaceURL,
		}
		if place.Address == "" {
			place.Address = r.AddressName
		}

		coord, hasCoord := kakao.ParseCoordinate(r.X, r.Y)
		if hasCoord {
			place.Lat = &coord.Lat
			place.Lng = &coord.Lng
		}
		place.DistanceKm = resolveDistance(center, r.Distance, coord, hasCoord)

		places = append(places, place)
	}
	return places
}

// resolveDistance выбирает расстояние в км: значение Kakao (если не пустое, не "0"
// и разбирается), иначе гаверсинус по координатам, иначе nil.
func resolveDistance(center models.Coordinate, distance string, point models.Coordinate, hasPoint bool) *float64 {
	if distance != "" && distance != "0" {
		if meters, ok := kakao.ParseNumber(distance); ok && meters != 0 {
			km := geo.MetersToKm(meters)
			return &km
		}
	}
	if !hasPoint {
		return nil
	}
	km := geo.DistanceKm(center, point)
	return &km
}
