package models

import "time"

// Coordinate представляет географические координаты в градусах.
type Coordinate struct {
	Lng float64 `json:"lng"` // Долгота (x у Kakao)
	Lat float64 `json:"lat"` // Широта (y у Kakao)
}

// PlaceRecord представляет заведение в ответе Kakao Local API.
// Координаты и дистанция приходят строками.
type PlaceRecord struct {
	ID              string `json:"id"`
	PlaceName       string `json:"place_name"`
	CategoryName    string `json:"category_name"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	X               string `json:"x"` // Долгота
	Y               string `json:"y"` // Широта
	PlaceURL        string `json:"place_url"`
	Distance        string `json:"distance,omitempty"` // Метры от центра, если передан x/y
}

// Place представляет заведение в ответе API поиска.
type Place struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Address    string   `json:"address"`
	Link       string   `json:"link"`
	MapURL     string   `json:"mapUrl"`
	DistanceKm *float64 `json:"distanceKm"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
}

// SearchRequest представляет запрос на поиск заведений
type SearchRequest struct {
	FreeText        string `json:"freeText"`
	LocationKeyword string `json:"locationKeyword"`
}

// SearchResponse представляет ответ с найденными заведениями
type SearchResponse struct {
	Center Coordinate `json:"center"`
	Places []Place    `json:"places"`
}

// Recommendation представляет рекомендацию сообщества в PostgreSQL
type Recommendation struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Reason     string    `json:"reason"`
	KakaoURL   *string   `json:"kakao_url"`
	Categories []string  `json:"categories"`
	CreatedAt  time.Time `json:"created_at"`
	Likes      int       `json:"likes"`
}

// CreateRecommendationRequest представляет запрос на добавление рекомендации
type CreateRecommendationRequest struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Reason     string   `json:"reason"`
	KakaoURL   *string  `json:"kakaoUrl"`
	Categories []string `json:"categories"`
}

// LikeRequest представляет запрос на изменение счетчика лайков.
// ID принимается числом или строкой.
type LikeRequest struct {
	ID    interface{} `json:"id"`
	Delta int         `json:"delta"`
}

// MenuRequest представляет запрос на рекомендацию меню
type MenuRequest struct {
	Mood    string `json:"mood"`
	Keyword string `json:"keyword"`
}

// Menu представляет одно рекомендованное меню
type Menu struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// MenuResponse представляет ответ с рекомендациями меню
type MenuResponse struct {
	Menus []Menu `json:"menus"`
}

// ErrorResponse представляет тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
