package keywords

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator возвращает заранее заданный ответ и считает вызовы.
type stubGenerator struct {
	content string
	err     error
	calls   int
	prompt  string
}

func (s *stubGenerator) Complete(_ context.Context, prompt string, _ float64) (string, error) {
	s.calls++
	s.prompt = prompt
	return s.content, s.err
}

func TestExtractTastePhrases(t *testing.T) {
	assert.Equal(t, []string{"해장"}, ExtractTastePhrases("해장국 땡긴다"))
	assert.Equal(t, []string{"매운", "국물"}, ExtractTastePhrases("매운 국물 먹고싶어"))
	assert.Empty(t, ExtractTastePhrases("아무거나"))
}

func TestExpandToMenuCategoriesStaysWithinPhrase(t *testing.T) {
	phrases := ExtractTastePhrases("해장국 땡긴다")
	got := ExpandToMenuCategories(phrases)

	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), MaxKeywords)
	for _, c := range got {
		assert.Contains(t, categoriesFor("해장"), c)
	}
}

func TestExpandToMenuCategoriesDedupesAndCaps(t *testing.T) {
	got := ExpandToMenuCategories([]string{"뜨끈", "국물", "매운"})

	assert.Equal(t, []string{"국밥", "칼국수", "우동", "찌개"}, got)
}

func TestExtractMenuKeywordsPrefersSpecificDish(t *testing.T) {
	got := ExtractMenuKeywords("찌개 중에서도 부대찌개가 먹고 싶어")

	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "부대찌개", got[0])
	assert.Less(t, indexOf(got, "부대찌개"), indexOf(got, "찌개"))
}

func TestExtractMenuKeywordsCaps(t *testing.T) {
	got := ExtractMenuKeywords("김밥 라멘 우동 초밥 피자 카레")

	assert.Len(t, got, MaxKeywords)
}

func TestBuildTasteWins(t *testing.T) {
	gen := &stubGenerator{content: "무시"}
	b := NewBuilder(gen, nil)

	got := b.Build(context.Background(), "  매운 국물 먹고싶어 ")

	assert.Equal(t, []string{"김치찌개", "짬뽕", "마라탕", "떡볶이"}, got)
	assert.Zero(t, gen.calls)
}

func TestBuildMenuKeywordBranch(t *testing.T) {
	gen := &stubGenerator{content: "무시"}
	b := NewBuilder(gen, nil)

	got := b.Build(context.Background(), "오늘은 돈까스")

	assert.Equal(t, []string{"돈까스"}, got)
	assert.Zero(t, gen.calls)
}

func TestBuildWithoutGeneratorReturnsRawText(t *testing.T) {
	b := NewBuilder(nil, nil)

	assert.Equal(t, []string{"팀장님이랑 먹을 곳"}, b.Build(context.Background(), " 팀장님이랑 먹을 곳 "))
	assert.Empty(t, b.Build(context.Background(), "   "))
}

func TestBuildUsesGenerator(t *testing.T) {
	gen := &stubGenerator{content: "쌀국수, 팟타이\n분짜, , 반미, 월남쌈"}
	b := NewBuilder(gen, nil)

	got := b.Build(context.Background(), "동남아 느낌")

	assert.Equal(t, []string{"쌀국수", "팟타이", "분짜", "반미"}, got)
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompt, "문장: 동남아 느낌")
}

func TestBuildGeneratorFailureFallsBack(t *testing.T) {
	for name, gen := range map[string]*stubGenerator{
		"error": {err: errors.New("boom")},
		"empty": {content: " , \n "},
	} {
		t.Run(name, func(t *testing.T) {
			b := NewBuilder(gen, nil)

			assert.Equal(t, []string{"동남아 느낌"}, b.Build(context.Background(), "동남아 느낌"))
		})
	}
}

func TestWithRawText(t *testing.T) {
	assert.Equal(t,
		[]string{"김치찌개", "짬뽕", "매운 국물 먹고싶어"},
		WithRawText([]string{"김치찌개", "짬뽕"}, " 매운 국물 먹고싶어"),
	)
	assert.Equal(t, []string{"돈까스"}, WithRawText([]string{"돈까스"}, "돈까스"))
	assert.Equal(t, []string{"a", "b"}, WithRawText([]string{"a", "a"}, "b"))
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
