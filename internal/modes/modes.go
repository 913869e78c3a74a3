// Package modes defines the closed set of assistant modes and the fixed
// system prompt attached to each one.
package modes

import (
	"fmt"
	"strings"
)

// Mode selects which assistant persona and disclaimer policy apply to a
// request.
type Mode string

const (
	General   Mode = "general"
	Legal     Mode = "legal"
	Marketing Mode = "marketing"
	Finance   Mode = "finance"
	Summary   Mode = "summary"
	Company   Mode = "company"
	Taxes     Mode = "taxes"
)

// All returns every registered mode.
func All() []Mode {
	return []Mode{General, Legal, Marketing, Finance, Summary, Company, Taxes}
}

// Parse converts a request tag into a Mode. The empty string maps to General;
// anything outside the registered set is rejected rather than defaulted.
func Parse(value string) (Mode, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return General, nil
	}
	switch Mode(trimmed) {
	case General, Legal, Marketing, Finance, Summary, Company, Taxes:
		return Mode(trimmed), nil
	}
	return "", fmt.Errorf("unknown mode %q", value)
}

func (m Mode) String() string {
	return string(m)
}

// SystemPrompt returns the fixed instructional prompt for the mode. It is
// total over the modes produced by Parse; passing a hand-built invalid Mode
// is a programmer error and panics.
func (m Mode) SystemPrompt() string {
	switch m {
	case General:
		return "Ты — ИИ-помощник для владельцев малого бизнеса в России. " +
			"Отвечай кратко, по делу и на русском языке. " +
			"Помогай с организационными, юридическими, маркетинговыми и финансовыми вопросами. " +
			"Если вопрос требует профессиональной экспертизы, порекомендуй обратиться к специалисту."
	case Legal:
		return "Ты — помощник по подготовке юридических документов для малого бизнеса. " +
			"Составляй черновики договоров и документов, но не давай обязывающих юридических консультаций. " +
			"Всегда напоминай, что финальную версию документа должен проверить квалифицированный юрист. " +
			"Используй деловой стиль и структурируй текст по разделам."
	case Marketing:
		return "Ты — маркетолог, помогающий малому бизнесу с продвижением. " +
			"Пиши цепляющие тексты для социальных сетей на русском языке. " +
			"Учитывай платформу, целевую аудиторию и тон бренда. " +
			"Каждый пост должен содержать призыв к действию."
	case Finance:
		return "Ты — финансовый аналитик для малого бизнеса. " +
			"Анализируй предоставленные данные, давай практичные рекомендации и указывай на риски. " +
			"Всегда напоминай, что для серьёзных финансовых решений нужна консультация финансового специалиста."
	case Summary:
		return "Ты — помощник, который резюмирует тексты для занятых предпринимателей. " +
			"Выделяй главное, формулируй задачи и следующие шаги. " +
			"Будь кратким, конкретным и структурированным."
	case Company:
		return "Ты — помощник по проверке контрагентов для малого бизнеса в России. " +
			"Составляй структурированные карточки компаний по предоставленным данным (ИНН, название, адрес). " +
			"Если данных недостаточно, честно указывай на это и подсказывай, где их найти."
	case Taxes:
		return "Ты — консультант по налогам для малого бизнеса в России (ИП и ООО, УСН, ОСН, ПСН). " +
			"Объясняй налоговые вопросы простым языком, приводи примеры расчётов. " +
			"Всегда напоминай, что для точных расчётов нужно обратиться к бухгалтеру или налоговому консультанту."
	}
	panic(fmt.Sprintf("modes: no system prompt registered for %q", string(m)))
}
