package keywords

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/akozadaev/lunch_solution_center/internal/logging"
)

// Generator - внешний сервис генерации текста (LLM). Может отсутствовать.
type Generator interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// generatorTemperature - низкая температура: нужны предсказуемые короткие ответы.
const generatorTemperature = 0.3

const keywordPrompt = `너는 한국 직장인의 점심 식당 검색을 돕는 어시스턴트야.
아래 문장은 사용자의 기분이나 상황이야. 이 문장에서 카카오맵 식당 검색에 쓸 한국어 검색 키워드를 1~3개 뽑아줘.
키워드는 메뉴명이나 음식 종류로 하고, 쉼표(,)로만 구분해서 키워드만 출력해. 다른 설명은 쓰지 마.

문장: %s`

// strategy - одна ступень цепочки. nil или пустой результат передает ход следующей.
type strategy struct {
	name string
	run  func(ctx context.Context, text string) []string
}

// Builder строит список ключевых слов из свободного текста.
// Стратегии пробуются по порядку, первая непустая побеждает.
type Builder struct {
	generator  Generator
	logger     *zap.Logger
	strategies []strategy
}

// NewBuilder создает Builder. generator может быть nil: тогда шаг LLM пропускается.
func NewBuilder(generator Generator, logger *zap.Logger) *Builder {
	b := &Builder{
		generator: generator,
		logger:    logging.OrNop(logger),
	}
	b.strategies = []strategy{
		{name: "taste", run: tasteStrategy},
		{name: "menu", run: menuStrategy},
	}
	if generator != nil {
		b.strategies = append(b.strategies, strategy{name: "generator", run: b.generatorStrategy})
	}
	return b
}

// Build возвращает ключевые слова для поиска. Для непустого текста результат
// никогда не пуст: последним вариантом служит сам текст после trim.
func (b *Builder) Build(ctx context.Context, freeText string) []string {
	text := strings.TrimSpace(freeText)
	if text == "" {
		return nil
	}

	for _, s := range b.strategies {
		if kws := s.run(ctx, text); len(kws) > 0 {
			b.logger.Debug("keywords built",
				zap.String("strategy", s.name),
				zap.Strings("keywords", kws),
			)
			return kws
		}
	}

	return []string{text}
}

func tasteStrategy(_ context.Context, text string) []string {
	phrases := ExtractTastePhrases(text)
	if len(phrases) == 0 {
		return nil
	}
	return ExpandToMenuCategories(phrases)
}

func menuStrategy(_ context.Context, text string) []string {
	return ExtractMenuKeywords(text)
}

// generatorStrategy спрашивает LLM. Ошибки не пробрасываются: поиск работает и без LLM.
func (b *Builder) generatorStrategy(ctx context.Context, text string) []string {
	content, err := b.generator.Complete(ctx, fmt.Sprintf(keywordPrompt, text), generatorTemperature)
	if err != nil {
		b.logger.Warn("keyword generation failed, using raw text", zap.Error(err))
		return nil
	}
	return ParseGenerated(content)
}

// ParseGenerated разбирает ответ LLM: разделители - запятые и переводы строк,
// пустые элементы отбрасываются, не более MaxKeywords.
func ParseGenerated(content string) []string {
	parts := strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	var kws []string
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			kws = append(kws, kw)
		}
	}
	return truncate(kws, MaxKeywords)
}

// WithRawText добавляет исходный текст к производным ключевым словам:
// сначала производные, затем текст, без дублей.
func WithRawText(derived []string, freeText string) []string {
	raw := strings.TrimSpace(freeText)

	out := make([]string, 0, len(derived)+1)
	seen := make(map[string]bool, len(derived)+1)
	for _, kw := range append(append([]string{}, derived...), raw) {
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}
