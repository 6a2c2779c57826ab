// Package menu рекомендует три обеденных меню по настроению через LLM.
package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/akozadaev/lunch_solution_center/internal/apperr"
	"github.com/akozadaev/lunch_solution_center/internal/logging"
	"github.com/akozadaev/lunch_solution_center/internal/models"
)

// Generator - сервис генерации текста.
type Generator interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

const (
	temperature = 0.8
	emptyInput  = "(입력 없음)"
)

const menuPrompt = `
너는 한국 직장인의 점심 메뉴를 추천해주는 어시스턴트야.

사용자의 기분 또는 상황: %s
사용자가 원하는 키워드: %s

아래 형식의 JSON만 반환해:
{
  "menus": [
    { "name": "메뉴명", "reason": "추천 이유" },
    { "name": "메뉴명", "reason": "추천 이유" },
    { "name": "메뉴명", "reason": "추천 이유" }
  ]
}

규칙:
- 총 3개만 추천할 것
- 내용은 한국 회사 점심 문화에 잘 맞게 작성할 것
`

// Recommender запрашивает рекомендации меню у Generator.
type Recommender struct {
	generator Generator
	logger    *zap.Logger
}

// NewRecommender создает Recommender. generator == nil означает отсутствие ключа OpenAI.
func NewRecommender(generator Generator, logger *zap.Logger) *Recommender {
	return &Recommender{generator: generator, logger: logging.OrNop(logger)}
}

// Recommend возвращает меню. Ответ LLM, который не разбирается как JSON,
// дает пустой список, а не ошибку.
func (r *Recommender) Recommend(ctx context.Context, req models.MenuRequest) (*models.MenuResponse, error) {
	if r.generator == nil {
		return nil, &apperr.ConfigurationError{Key: "OPENAI_API_KEY"}
	}

	prompt := fmt.Sprintf(menuPrompt, orEmpty(req.Mood), orEmpty(req.Keyword))
	content, err := r.generator.Complete(ctx, prompt, temperature)
	if err != nil {
		return nil, fmt.Errorf("failed to generate menus: %w", err)
	}

	resp := ParseMenus(content)
	if len(resp.Menus) == 0 {
		r.logger.Warn("menu response is not valid JSON", zap.Int("length", len(content)))
	}
	return resp, nil
}

// ParseMenus разбирает JSON ответа. Допускается обертка в блок ```json.
func ParseMenus(content string) *models.MenuResponse {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var resp models.MenuResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &resp); err != nil || resp.Menus == nil {
		return &models.MenuResponse{Menus: []models.Menu{}}
	}
	return &resp
}

func orEmpty(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return emptyInput
	}
	return s
}
