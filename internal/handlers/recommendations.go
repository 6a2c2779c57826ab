package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/akozadaev/lunch_solution_center/internal/apperr"
	"github.com/akozadaev/lunch_solution_center/internal/models"
	"github.com/akozadaev/lunch_solution_center/internal/storage"
)

// Пользовательские сообщения рекомендаций сообщества.
const (
	msgListFailed      = "추천 리스트를 불러오지 못했어요."
	msgFieldsRequired  = "식당 이름, 주소, 추천 이유를 모두 입력해 주세요."
	msgUnknownCategory = "알 수 없는 태그예요."
	msgDuplicateName   = "이미 같은 이름의 식당이 등록되어 있어요."
	msgSaveFailed      = "추천을 저장하지 못했어요."
	msgInvalidID       = "잘못된 ID입니다."
	msgRecordNotFound  = "해당 식당을 찾지 못했어요."
	msgLikeFailed      = "좋아요 처리 중 오류가 발생했어요."
	msgQueryRequired   = "검색어를 입력해 주세요."
	msgIndexFailed     = "추천 검색 중 오류가 발생했어요."
)

// AllowedCategories - допустимые теги рекомендаций.
var AllowedCategories = []string{"음식점", "카페", "프럼다이닝"}

// ListRecommendations обрабатывает GET запрос на получение списка рекомендаций.
// Эндпоинт: GET /api/frommer-recommendations
//
// @Summary      Получить рекомендации сообщества
// @Description  Возвращает все рекомендации: сначала новые (sort=latest) или по числу лайков (sort=likes).
// @Tags         recommendations
// @Produce      json
// @Param        sort  query     string  false  "latest или likes"
// @Success      200   {array}   models.Recommendation
// @Failure      500   {object}  models.ErrorResponse  "Внутренняя ошибка сервера"
// @Router       /api/frommer-recommendations [get]
func (h *Handlers) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.store.ListRecommendations(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		h.logger.Error("error listing recommendations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

// CreateRecommendation обрабатывает POST запрос на добавление рекомендации.
// Эндпоинт: POST /api/frommer-recommendations
//
// @Summary      Добавить рекомендацию
// @Description  Сохраняет ресторан с причиной рекомендации. Имя уникально без учета регистра.
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateRecommendationRequest  true  "Новая рекомендация"
// @Success      201      {object}  models.Recommendation
// @Failure      400      {object}  models.ErrorResponse  "Не заполнены поля или неизвестный тег"
// @Failure      409      {object}  models.ErrorResponse  "Ресторан с таким именем уже есть"
// @Failure      500      {object}  models.ErrorResponse  "Внутренняя ошибка сервера"
// @Router       /api/frommer-recommendations [post]
func (h *Handlers) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	req.Reason = strings.TrimSpace(req.Reason)
	if req.Name == "" || req.Address == "" || req.Reason == "" {
		writeError(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}
	if req.KakaoURL != nil && strings.TrimSpace(*req.KakaoURL) == "" {
		req.KakaoURL = nil
	}
	for _, c := range req.Categories {
		if !isAllowedCategory(c) {
			writeError(w, http.StatusBadRequest, msgUnknownCategory)
			return
		}
	}

	rec, err := h.store.CreateRecommendation(r.Context(), &req)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			writeError(w, http.StatusConflict, msgDuplicateName)
			return
		}
		h.logger.Error("error creating recommendation", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	h.mirror(r, rec)
	writeJSON(w, http.StatusCreated, rec)
}

// LikeRecommendation обрабатывает POST запрос на изменение счетчика лайков.
// Эндпоинт: POST /api/frommer-recommendations/like
//
// @Summary      Лайк рекомендации
// @Description  delta = -1 уменьшает счетчик, иначе увеличивает. Счетчик не опускается ниже нуля.
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        request  body      models.LikeRequest  true  "ID и изменение"
// @Success      200      {object}  models.Recommendation
// @Failure      400      {object}  models.ErrorResponse  "Неверный ID"
// @Failure      404      {object}  models.ErrorResponse  "Рекомендация не найдена"
// @Failure      500      {object}  models.ErrorResponse  "Внутренняя ошибка сервера"
// @Router       /api/frommer-recommendations/like [post]
func (h *Handlers) LikeRecommendation(w http.ResponseWriter, r *http.Request) {
	var req models.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	id, ok := parseID(req.ID)
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	delta := 1
	if req.Delta == -1 {
		delta = -1
	}

	rec, err := h.store.AddLike(r.Context(), id, delta)
	if err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, msgRecordNotFound)
			return
		}
		h.logger.Error("error updating likes", zap.Int("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgLikeFailed)
		return
	}

	h.mirror(r, rec)
	writeJSON(w, http.StatusOK, rec)
}

// SearchRecommendations обрабатывает GET запрос на полнотекстовый поиск рекомендаций.
// Эндпоинт: GET /api/frommer-recommendations/search
//
// @Summary      Поиск по рекомендациям
// @Description  Ищет по имени, тегам, причине и адресу в индексе Elasticsearch.
// @Tags         recommendations
// @Produce      json
// @Param        q      query     string  true   "Поисковый запрос"
// @Param        limit  query     int     false  "Размер выдачи (по умолчанию 20)"
// @Success      200    {array}   models.Recommendation
// @Failure      400    {object}  models.ErrorResponse  "Пустой запрос"
// @Failure      500    {object}  models.ErrorResponse  "Ошибка поиска"
// @Router       /api/frommer-recommendations/search [get]
func (h *Handlers) SearchRecommendations(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, msgQueryRequired)
		return
	}
	if h.index == nil {
		writeError(w, http.StatusInternalServerError, msgIndexNotAvailable)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = storage.DefaultSearchLimit
	}

	recs, err := h.index.SearchRecommendations(r.Context(), q, limit)
	if err != nil {
		h.logger.Error("error searching recommendations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgIndexFailed)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

// mirror обновляет документ в Elasticsearch. Ошибка не влияет на ответ:
// PostgreSQL остается источником истины, индекс догоняется cmd/indexer.
func (h *Handlers) mirror(r *http.Request, rec *models.Recommendation) {
	if h.index == nil {
		return
	}
	if err := h.index.IndexRecommendation(r.Context(), rec); err != nil {
		h.logger.Warn("failed to mirror recommendation", zap.Int("id", rec.ID), zap.Error(err))
	}
}

// parseID принимает ID числом или строкой, только целые значения.
func parseID(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, false
		}
		return int(v), true
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

func isAllowedCategory(c string) bool {
	for _, allowed := range AllowedCategories {
		if c == allowed {
			return true
		}
	}
	return false
}
