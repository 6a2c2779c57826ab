// Package geo содержит расчет расстояний между координатами.
package geo

import (
	"math"

	"github.com/akozadaev/lunch_solution_center/internal/models"
)

// EarthRadiusKm - средний радиус Земли в километрах.
const EarthRadiusKm = 6371.0

// DistanceKm возвращает расстояние по большому кругу (формула гаверсинуса)
// в километрах, округленное до одного знака.
func DistanceKm(center, point models.Coordinate) float64 {
	dLat := toRad(point.Lat - center.Lat)
	dLng := toRad(point.Lng - center.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(center.Lat))*math.Cos(toRad(point.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return Round1(EarthRadiusKm * c)
}

// MetersToKm переводит метры в километры с округлением до одного знака.
func MetersToKm(meters float64) float64 {
	return Round1(meters / 1000)
}

// Round1 округляет до одного знака после запятой (половина вверх).
func Round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
