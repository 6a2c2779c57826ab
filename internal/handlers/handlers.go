// Package handlers содержит HTTP обработчики REST API сервиса выбора места для обеда.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/akozadaev/lunch_solution_center/internal/apperr"
	"github.com/akozadaev/lunch_solution_center/internal/logging"
	"github.com/akozadaev/lunch_solution_center/internal/models"
)

// Пользовательские сообщения об ошибках поиска и меню.
const (
	msgInvalidBody       = "요청 형식이 올바르지 않아요."
	msgLocationNotFound  = "입력한 주소/지역으로 위치를 찾지 못했어요."
	msgKakaoNotSet       = "KAKAO_REST_API_KEY 가 설정되어 있지 않아요."
	msgSearchFailed      = "맛집(장소) 검색 중 서버에서 오류가 발생했어요."
	msgOpenAINotSet      = "OPENAI_API_KEY가 설정되어 있지 않아요."
	msgMenuFailed        = "메뉴 추천 중 서버에서 오류가 발생했어요."
	msgMethodNotAllowed  = "허용되지 않은 요청 방식이에요."
	msgIndexNotAvailable = "추천 검색을 사용할 수 없어요."
)

// PlaceSearcher выполняет конвейер поиска заведений.
type PlaceSearcher interface {
	Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error)
}

// MenuRecommender рекомендует меню по настроению.
type MenuRecommender interface {
	Recommend(ctx context.Context, req models.MenuRequest) (*models.MenuResponse, error)
}

// RecommendationStore - источник истины для рекомендаций сообщества.
type RecommendationStore interface {
	ListRecommendations(ctx context.Context, sortBy string) ([]*models.Recommendation, error)
	CreateRecommendation(ctx context.Context, req *models.CreateRecommendationRequest) (*models.Recommendation, error)
	AddLike(ctx context.Context, id int, delta int) (*models.Recommendation, error)
}

// RecommendationIndex - поисковое зеркало рекомендаций.
type RecommendationIndex interface {
	IndexRecommendation(ctx context.Context, rec *models.Recommendation) error
	SearchRecommendations(ctx context.Context, text string, limit int) ([]*models.Recommendation, error)
}

// Handlers содержит зависимости для обработки HTTP запросов.
type Handlers struct {
	search PlaceSearcher
	menu   MenuRecommender
	store  RecommendationStore
	index  RecommendationIndex // может быть nil, если Elasticsearch недоступен
	logger *zap.Logger
}

// NewHandlers создает новый экземпляр Handlers.
func NewHandlers(search PlaceSearcher, menu MenuRecommender, store RecommendationStore, index RecommendationIndex, logger *zap.Logger) *Handlers {
	return &Handlers{
		search: search,
		menu:   menu,
		store:  store,
		index:  index,
		logger: logging.OrNop(logger),
	}
}

// Register регистрирует маршруты API на router.
func (h *Handlers) Register(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	router.HandleFunc("/api/search-places", h.SearchPlaces).Methods(http.MethodPost)
	router.HandleFunc("/api/recommend", h.RecommendMenus).Methods(http.MethodPost)
	router.HandleFunc("/api/frommer-recommendations", h.ListRecommendations).Methods(http.MethodGet)
	router.HandleFunc("/api/frommer-recommendations", h.CreateRecommendation).Methods(http.MethodPost)
	router.HandleFunc("/api/frommer-recommendations/like", h.LikeRecommendation).Methods(http.MethodPost)
	router.HandleFunc("/api/frommer-recommendations/search", h.SearchRecommendations).Methods(http.MethodGet)
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})
}

// SearchPlaces обрабатывает POST запрос на поиск ресторанов рядом с локацией.
// Эндпоинт: POST /api/search-places
//
// @Summary      Найти рестораны рядом
// @Description  Геокодирует locationKeyword, строит ключевые слова из freeText и ищет рестораны в радиусе 1 км через Kakao Local API.
// @Tags         places
// @Accept       json
// @Produce      json
// @Param        request  body      models.SearchRequest  true  "Запрос на поиск"
// @Success      200      {object}  models.SearchResponse
// @Failure      400      {object}  models.ErrorResponse  "Неверный запрос или локация не найдена"
// @Failure      500      {object}  models.ErrorResponse  "Нет ключа Kakao или ошибка внешнего API"
// @Router       /api/search-places [post]
func (h *Handlers) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	resp, err := h.search.Search(r.Context(), req)
	if err != nil {
		var (
			cfgErr      *apperr.ConfigurationError
			validErr    *apperr.ValidationError
			upstreamErr *apperr.UpstreamError
		)
		switch {
		case errors.As(err, &cfgErr):
			h.logger.Error("search is not configured", zap.Error(err))
			writeError(w, http.StatusInternalServerError, msgKakaoNotSet)
		case errors.As(err, &validErr):
			writeError(w, http.StatusBadRequest, validErr.Message)
		case errors.Is(err, apperr.ErrNotFound):
			writeError(w, http.StatusBadRequest, msgLocationNotFound)
		case errors.As(err, &upstreamErr):
			h.logger.Error("search-places upstream error", zap.Error(err))
			writeError(w, http.StatusInternalServerError, upstreamErr.Error())
		default:
			h.logger.Error("search-places failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, msgSearchFailed)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// RecommendMenus обрабатывает POST запрос на рекомендацию трех меню.
// Эндпоинт: POST /api/recommend
//
// @Summary      Рекомендовать меню
// @Description  Возвращает три меню с причинами по настроению и ключевому слову. Невалидный ответ модели дает пустой список.
// @Tags         menus
// @Accept       json
// @Produce      json
// @Param        request  body      models.MenuRequest  true  "Настроение и ключевое слово"
// @Success      200      {object}  models.MenuResponse
// @Failure      500      {object}  models.ErrorResponse  "Нет ключа OpenAI или ошибка генерации"
// @Router       /api/recommend [post]
func (h *Handlers) RecommendMenus(w http.ResponseWriter, r *http.Request) {
	var req models.MenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	resp, err := h.menu.Recommend(r.Context(), req)
	if err != nil {
		var cfgErr *apperr.ConfigurationError
		if errors.As(err, &cfgErr) {
			writeError(w, http.StatusInternalServerError, msgOpenAINotSet)
			return
		}
		h.logger.Error("recommend failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgMenuFailed)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck обрабатывает GET запрос на проверку работоспособности сервиса.
// Эндпоинт: GET /health
//
// @Summary      Проверка работоспособности сервиса
// @Description  Возвращает статус сервиса.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Заголовки уже отправлены, остается только залогировать.
		zap.L().Error("error encoding response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}
