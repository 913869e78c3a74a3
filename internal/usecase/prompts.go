package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultPlatform    = "general"
	defaultTone        = "friendly"
	defaultSummaryType = "general"
)

// The builders interpolate required fields directly and elide the clause of
// any absent optional field entirely. Each prompt closes with a numbered
// output-structure instruction; domains carrying legal or financial risk also
// get a mandatory professional-referral directive.

func BuildLegalContractPrompt(req LegalContractRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Составь черновик договора типа %q.\n\n", req.ContractType)
	fmt.Fprintf(&b, "Стороны: %s\n", req.Parties)
	fmt.Fprintf(&b, "Предмет договора: %s\n", req.Subject)
	if strings.TrimSpace(req.Amount) != "" {
		fmt.Fprintf(&b, "Сумма/цена: %s\n", req.Amount)
	}
	if strings.TrimSpace(req.AdditionalInfo) != "" {
		fmt.Fprintf(&b, "Дополнительная информация: %s\n", req.AdditionalInfo)
	}
	b.WriteString("\nСоздай структурированный текст договора с основными разделами:\n")
	b.WriteString("1. Преамбула (стороны договора)\n")
	b.WriteString("2. Предмет договора\n")
	b.WriteString("3. Права и обязанности сторон\n")
	b.WriteString("4. Сумма и порядок расчетов\n")
	b.WriteString("5. Сроки\n")
	b.WriteString("6. Ответственность сторон\n")
	b.WriteString("7. Прочие условия\n")
	b.WriteString("8. Реквизиты и подписи\n\n")
	b.WriteString("ВАЖНО: В конце договора обязательно добавь предупреждение о том, что это черновик и для финального использования необходимо обратиться к юристу.")
	return b.String()
}

func BuildMarketingPostPrompt(req MarketingPostRequest) string {
	platform := strings.TrimSpace(req.Platform)
	if platform == "" {
		platform = defaultPlatform
	}
	tone := strings.TrimSpace(req.Tone)
	if tone == "" {
		tone = defaultTone
	}
	var b strings.Builder
	b.WriteString("Создай несколько вариантов промо-поста для социальных сетей.\n\n")
	fmt.Fprintf(&b, "Описание бизнеса: %s\n", req.BusinessDescription)
	fmt.Fprintf(&b, "Цель промоакции: %s\n", req.PromotionGoal)
	fmt.Fprintf(&b, "Платформа: %s\n", platform)
	if strings.TrimSpace(req.TargetAudience) != "" {
		fmt.Fprintf(&b, "Целевая аудитория: %s\n", req.TargetAudience)
	}
	fmt.Fprintf(&b, "Тон: %s\n\n", tone)
	b.WriteString("Создай 3-5 вариантов постов разной длины и стиля. Каждый пост должен быть:\n")
	b.WriteString("- Привлекательным и цепляющим\n")
	fmt.Fprintf(&b, "- Соответствовать платформе %s\n", platform)
	b.WriteString("- Включать призыв к действию\n")
	b.WriteString("- Быть готовым к публикации")
	return b.String()
}

func BuildFinanceReportPrompt(req FinanceReportRequest) string {
	var dataDesc []string
	if len(req.SalesData) > 0 {
		dataDesc = append(dataDesc, "Данные по продажам: "+renderData(req.SalesData))
	}
	if len(req.ExpensesData) > 0 {
		dataDesc = append(dataDesc, "Данные по расходам: "+renderData(req.ExpensesData))
	}
	if strings.TrimSpace(req.Period) != "" {
		dataDesc = append(dataDesc, "Период: "+req.Period)
	}
	var b strings.Builder
	b.WriteString("Проанализируй финансовые данные малого бизнеса и дай рекомендации.\n\n")
	if len(dataDesc) > 0 {
		b.WriteString(strings.Join(dataDesc, "\n"))
	} else {
		b.WriteString("Данные не предоставлены, дай общие рекомендации по управлению финансами малого бизнеса.")
	}
	b.WriteString("\n\n")
	if strings.TrimSpace(req.Questions) != "" {
		fmt.Fprintf(&b, "Конкретные вопросы: %s\n\n", req.Questions)
	}
	b.WriteString("Сделай:\n")
	b.WriteString("1. Краткий анализ (если есть данные)\n")
	b.WriteString("2. Список рекомендаций по улучшению финансового состояния\n")
	b.WriteString("3. Укажи на возможные риски\n\n")
	b.WriteString("ВАЖНО: Всегда напоминай, что это общие рекомендации и для серьёзных финансовых решений нужно обратиться к финансовому консультанту.")
	return b.String()
}

func BuildSummaryPrompt(req SummaryRequest) string {
	summaryType := strings.TrimSpace(req.SummaryType)
	if summaryType == "" {
		summaryType = defaultSummaryType
	}
	var b strings.Builder
	b.WriteString("Резюмируй следующий текст и выдели ключевые моменты:\n\n")
	b.WriteString(req.Text)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Тип резюме: %s\n\n", summaryType)
	b.WriteString("Сделай:\n")
	b.WriteString("1. Краткое резюме основных моментов\n")
	b.WriteString("2. Список задач (если применимо)\n")
	b.WriteString("3. Следующие шаги (если применимо)\n\n")
	b.WriteString("Будь конкретным и структурированным.")
	return b.String()
}

func BuildCompanyCardPrompt(req CompanyCardRequest) string {
	var infoParts []string
	if strings.TrimSpace(req.INN) != "" {
		infoParts = append(infoParts, "ИНН: "+req.INN)
	}
	if strings.TrimSpace(req.CompanyName) != "" {
		infoParts = append(infoParts, "Название: "+req.CompanyName)
	}
	if strings.TrimSpace(req.Address) != "" {
		infoParts = append(infoParts, "Адрес: "+req.Address)
	}
	if strings.TrimSpace(req.AdditionalInfo) != "" {
		infoParts = append(infoParts, "Дополнительно: "+req.AdditionalInfo)
	}
	var b strings.Builder
	b.WriteString("Создай карточку компании на основе предоставленной информации.\n\n")
	if len(infoParts) > 0 {
		b.WriteString(strings.Join(infoParts, "\n"))
	} else {
		b.WriteString("Информация не предоставлена. Дай общую структуру карточки компании.")
	}
	b.WriteString("\n\n")
	b.WriteString("Создай структурированную карточку компании, включающую:\n")
	b.WriteString("1. Основная информация (название, ИНН, ОГРН если известен)\n")
	b.WriteString("2. Вид деятельности (ОКВЭД, если можно определить)\n")
	b.WriteString("3. Налоговый режим (если можно определить)\n")
	b.WriteString("4. Контакты (адрес, телефон, email если известны)\n")
	b.WriteString("5. Рекомендации по работе с компанией\n")
	b.WriteString("6. Потенциальные риски (если применимо)\n\n")
	b.WriteString("ВАЖНО: Если информации недостаточно, укажи это и предложи, где её можно найти.")
	return b.String()
}

func BuildTaxConsultationPrompt(req TaxConsultationRequest) string {
	var contextParts []string
	if strings.TrimSpace(req.BusinessType) != "" {
		contextParts = append(contextParts, "Тип бизнеса: "+req.BusinessType)
	}
	if strings.TrimSpace(req.TaxRegime) != "" {
		contextParts = append(contextParts, "Налоговый режим: "+req.TaxRegime)
	}
	if req.Revenue > 0 {
		contextParts = append(contextParts, "Выручка: "+strconv.FormatFloat(req.Revenue, 'f', -1, 64)+" руб.")
	}
	if strings.TrimSpace(req.AdditionalContext) != "" {
		contextParts = append(contextParts, "Контекст: "+req.AdditionalContext)
	}
	var b strings.Builder
	b.WriteString("Ответь на вопрос о налогах для малого бизнеса в России.\n\n")
	fmt.Fprintf(&b, "Вопрос: %s\n\n", req.Question)
	if len(contextParts) > 0 {
		b.WriteString(strings.Join(contextParts, "\n"))
		b.WriteString("\n\n")
	}
	b.WriteString("Дай подробный, структурированный ответ:\n")
	b.WriteString("1. Прямой ответ на вопрос\n")
	b.WriteString("2. Объяснение (если нужно)\n")
	b.WriteString("3. Примеры расчётов (если применимо)\n")
	b.WriteString("4. Практические рекомендации\n")
	b.WriteString("5. Важные предупреждения\n\n")
	b.WriteString("ВАЖНО: Всегда напоминай, что для точных расчётов нужно обратиться к бухгалтеру или налоговому консультанту.")
	return b.String()
}

func renderData(data map[string]interface{}) string {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprint(data)
	}
	return string(encoded)
}
