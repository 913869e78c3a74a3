package usecase

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestExtractFinanceSections(t *testing.T) {
	text := strings.Join([]string{
		"Краткий анализ: выручка растёт.",
		"",
		"Рекомендации:",
		"- Сократить аренду",
		"• Пересмотреть тарифы",
		"3. Автоматизировать учёт",
		"",
		"Возможные риски:",
		"- Кассовый разрыв",
	}, "\n")

	recommendations, warnings := ExtractFinanceSections(text)
	wantRecs := []string{"Сократить аренду", "Пересмотреть тарифы", "Автоматизировать учёт"}
	if !reflect.DeepEqual(recommendations, wantRecs) {
		t.Fatalf("recommendations = %v, want %v", recommendations, wantRecs)
	}
	wantWarns := []string{"Кассовый разрыв"}
	if !reflect.DeepEqual(warnings, wantWarns) {
		t.Fatalf("warnings = %v, want %v", warnings, wantWarns)
	}
}

func TestExtractFinanceSectionsFirstMatchPriority(t *testing.T) {
	// A line matching both keyword sets activates recommendations: that
	// check runs first.
	text := "Важные рекомендации:\n- пункт один"
	recommendations, warnings := ExtractFinanceSections(text)
	if len(recommendations) != 1 || len(warnings) != 0 {
		t.Fatalf("recommendations = %v, warnings = %v, want item in recommendations only", recommendations, warnings)
	}
}

func TestExtractFinanceSectionsCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("Рекомендации:\n")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "- пункт %d\n", i)
	}
	recommendations, _ := ExtractFinanceSections(b.String())
	if len(recommendations) != maxRecommendations {
		t.Fatalf("len(recommendations) = %d, want %d", len(recommendations), maxRecommendations)
	}
}

func TestExtractFinanceSectionsEmptyText(t *testing.T) {
	recommendations, warnings := ExtractFinanceSections("")
	if len(recommendations) != 0 {
		t.Fatalf("recommendations = %v, want empty", recommendations)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want empty", warnings)
	}
}

func TestExtractFinanceSectionsIdempotent(t *testing.T) {
	text := "Рекомендации:\n- пункт\nРиски:\n- риск"
	r1, w1 := ExtractFinanceSections(text)
	r2, w2 := ExtractFinanceSections(text)
	if !reflect.DeepEqual(r1, r2) || !reflect.DeepEqual(w1, w2) {
		t.Fatal("structuring the same text twice produced different output")
	}
}

func TestExtractSummarySections(t *testing.T) {
	text := strings.Join([]string{
		"Резюме: обсуждение квартального плана.",
		"Задачи:",
		"1. Подготовить отчёт",
		"2. Согласовать бюджет",
		"Следующие шаги:",
		"- Назначить встречу",
	}, "\n")
	tasks, nextSteps := ExtractSummarySections(text)
	wantTasks := []string{"Подготовить отчёт", "Согласовать бюджет"}
	if !reflect.DeepEqual(tasks, wantTasks) {
		t.Fatalf("tasks = %v, want %v", tasks, wantTasks)
	}
	wantSteps := []string{"Назначить встречу"}
	if !reflect.DeepEqual(nextSteps, wantSteps) {
		t.Fatalf("next steps = %v, want %v", nextSteps, wantSteps)
	}
}

func TestExtractSummarySectionsSkipsBareMarkers(t *testing.T) {
	tasks, _ := ExtractSummarySections("Задачи:\n-\n- реальная задача")
	want := []string{"реальная задача"}
	if !reflect.DeepEqual(tasks, want) {
		t.Fatalf("tasks = %v, want %v", tasks, want)
	}
}

func TestExtractCompanyRecommendations(t *testing.T) {
	text := strings.Join([]string{
		"1. Основная информация: ООО Ромашка",
		"5. Рекомендации по работе с компанией:",
		"- Запросить выписку из ЕГРЮЛ",
		"* Проверить арбитражные дела",
		"",
		"не список, игнорируется",
	}, "\n")
	recommendations := ExtractCompanyRecommendations(text)
	want := []string{"Запросить выписку из ЕГРЮЛ", "Проверить арбитражные дела"}
	if !reflect.DeepEqual(recommendations, want) {
		t.Fatalf("recommendations = %v, want %v", recommendations, want)
	}
}

func TestExtractCompanyRecommendationsTriggerLineNotCaptured(t *testing.T) {
	// The trigger line carries a list shape, but the company-card scan
	// only captures lines after the trigger.
	recommendations := ExtractCompanyRecommendations("- Рекомендации:\n- первый пункт")
	want := []string{"первый пункт"}
	if !reflect.DeepEqual(recommendations, want) {
		t.Fatalf("recommendations = %v, want %v", recommendations, want)
	}
}

func TestSplitMarketingPostsBlankLineBlocks(t *testing.T) {
	text := "Первый пост\n\nВторой пост\n\nТретий пост"
	posts := SplitMarketingPosts(text)
	if len(posts) != 3 {
		t.Fatalf("len(posts) = %d, want 3", len(posts))
	}
}

func TestSplitMarketingPostsCap(t *testing.T) {
	blocks := make([]string, 7)
	for i := range blocks {
		blocks[i] = fmt.Sprintf("Пост номер %c", 'a'+i)
	}
	posts := SplitMarketingPosts(strings.Join(blocks, "\n\n"))
	if len(posts) != maxPosts {
		t.Fatalf("len(posts) = %d, want %d", len(posts), maxPosts)
	}
}

func TestSplitMarketingPostsOrdinalAndVariantMarkers(t *testing.T) {
	text := strings.Join([]string{
		"1. Короткий пост",
		"с продолжением",
		"2. Второй пост",
		"Вариант 3: длинный пост",
	}, "\n")
	posts := SplitMarketingPosts(text)
	want := []string{
		"1. Короткий пост\nс продолжением",
		"2. Второй пост",
		"Вариант 3: длинный пост",
	}
	if !reflect.DeepEqual(posts, want) {
		t.Fatalf("posts = %v, want %v", posts, want)
	}
}

func TestSplitMarketingPostsSeparatorRules(t *testing.T) {
	posts := SplitMarketingPosts("Первый\n---\nВторой")
	want := []string{"Первый", "Второй"}
	if !reflect.DeepEqual(posts, want) {
		t.Fatalf("dash separator: posts = %v, want %v", posts, want)
	}

	// Equals rules start a block but the line itself is kept.
	posts = SplitMarketingPosts("Первый\n===\nВторой")
	want = []string{"Первый", "===\nВторой"}
	if !reflect.DeepEqual(posts, want) {
		t.Fatalf("equals separator: posts = %v, want %v", posts, want)
	}
}

func TestSplitMarketingPostsNoBoundaries(t *testing.T) {
	text := "Единственный пост без разделителей"
	posts := SplitMarketingPosts(text)
	if len(posts) != 1 || posts[0] != text {
		t.Fatalf("posts = %v, want the whole text as a single post", posts)
	}
}
