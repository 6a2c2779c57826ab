// Package keywords превращает свободный текст о настроении в ключевые слова для поиска заведений.
package keywords

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// MaxKeywords ограничивает число производных ключевых слов (и запросов к Kakao).
const MaxKeywords = 4

// tasteEntry связывает фразу о вкусе/настроении с категориями меню.
type tasteEntry struct {
	phrase     string
	categories []string
}

// tasteTable - фиксированная таблица фраз. Порядок определяет порядок результата.
var tasteTable = []tasteEntry{
	{"가볍게", []string{"샐러드", "샌드위치", "포케"}},
	{"가벼운", []string{"샐러드", "샌드위치", "포케"}},
	{"든든", []string{"국밥", "돈까스", "제육볶음", "덮밥"}},
	{"매운", []string{"김치찌개", "짬뽕", "마라탕", "떡볶이"}},
	{"매콤", []string{"김치찌개", "짬뽕", "마라탕", "떡볶이"}},
	{"얼큰", []string{"짬뽕", "육개장", "김치찌개"}},
	{"국물", []string{"국밥", "찌개", "칼국수", "쌀국수"}},
	{"뜨끈", []string{"국밥", "칼국수", "우동"}},
	{"따뜻한", []string{"국밥", "칼국수", "우동"}},
	{"시원한", []string{"냉면", "밀면", "메밀소바"}},
	{"해장", []string{"해장국", "콩나물국밥", "순대국", "짬뽕"}},
	{"건강", []string{"비빔밥", "샐러드", "한정식"}},
	{"고기", []string{"제육볶음", "불고기", "삼겹살"}},
	{"간단", []string{"김밥", "분식", "덮밥"}},
	{"빨리", []string{"김밥", "분식", "덮밥"}},
	{"느끼", []string{"파스타", "피자", "햄버거"}},
}

// menuKeywords - явные названия блюд и категорий.
var menuKeywords = []string{
	"김치찌개", "된장찌개", "부대찌개", "순두부찌개", "찌개",
	"순대국밥", "돼지국밥", "콩나물국밥", "국밥", "해장국", "순대국",
	"물냉면", "비빔냉면", "냉면", "밀면",
	"짜장면", "짬뽕", "탕수육", "마라탕",
	"라멘", "우동", "초밥", "돈까스", "덮밥",
	"파스타", "피자", "햄버거", "샐러드", "샌드위치",
	"쌀국수", "칼국수", "떡볶이", "김밥",
	"삼겹살", "제육볶음", "불고기", "비빔밥",
	"카레", "중식", "일식", "한식", "양식",
}

// sortedMenuKeywords - menuKeywords по убыванию длины в символах.
// Длинное (конкретное) блюдо проверяется раньше общей категории.
var sortedMenuKeywords = sortByLengthDesc(menuKeywords)

// ExtractTastePhrases возвращает фразы таблицы вкусов, входящие в text как подстрока.
// Сравнение чувствительно к регистру.
func ExtractTastePhrases(text string) []string {
	var found []string
	for _, e := range tasteTable {
		if strings.Contains(text, e.phrase) {
			found = append(found, e.phrase)
		}
	}
	return found
}

// ExpandToMenuCategories объединяет категории найденных фраз в порядке первого появления,
// без дублей, не более MaxKeywords.
func ExpandToMenuCategories(phrases []string) []string {
	var categories []string
	seen := make(map[string]bool)
	for _, phrase := range phrases {
		for _, category := range categoriesFor(phrase) {
			if seen[category] {
				continue
			}
			seen[category] = true
			categories = append(categories, category)
		}
	}
	return truncate(categories, MaxKeywords)
}

// ExtractMenuKeywords возвращает явные названия блюд из text, от более длинных к коротким,
// не более MaxKeywords.
func ExtractMenuKeywords(text string) []string {
	var found []string
	for _, kw := range sortedMenuKeywords {
		if strings.Contains(text, kw) {
			found = append(found, kw)
		}
	}
	return truncate(found, MaxKeywords)
}

func categoriesFor(phrase string) []string {
	for _, e := range tasteTable {
		if e.phrase == phrase {
			return e.categories
		}
	}
	return nil
}

func sortByLengthDesc(words []string) []string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i]) > utf8.RuneCountInString(sorted[j])
	})
	return sorted
}

func truncate(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
