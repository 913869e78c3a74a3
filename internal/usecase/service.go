package usecase

import (
	"context"

	"github.com/bizcopilot/backend/internal/common"
	"github.com/bizcopilot/backend/internal/llm"
	"github.com/bizcopilot/backend/internal/modes"
)

// Fixed disclaimer sets returned regardless of what the structurers find.
var (
	legalContractWarnings = []string{
		"Это черновик договора. Для финального использования обязательно обратитесь к квалифицированному юристу.",
		"Договор не является юридической гарантией и требует профессиональной проверки.",
	}
	financeFallbackWarnings = []string{
		"Это общие рекомендации. Для серьёзных финансовых решений обратитесь к финансовому консультанту.",
		"Анализ основан на предоставленных данных и может не учитывать все нюансы вашего бизнеса.",
	}
	taxConsultationWarnings = []string{
		"⚠️ Это общая информация. Для точных расчётов обратитесь к бухгалтеру или налоговому консультанту.",
		"Налоговое законодательство может изменяться. Проверяйте актуальность информации.",
	}
)

// Service runs the templated use cases: build the prompt, call the gateway
// once, structure the reply.
type Service struct {
	gateway *llm.Gateway
}

func NewService(gateway *llm.Gateway) *Service {
	return &Service{gateway: gateway}
}

func (s *Service) generate(ctx context.Context, mode modes.Mode, prompt string) (string, error) {
	logger := common.Logger()
	logger.Debug("usecase: invoking model", "mode", mode, "prompt_length", len(prompt))
	return s.gateway.Generate(ctx, mode.SystemPrompt(), []llm.Message{{Role: llm.RoleUser, Content: prompt}})
}

func (s *Service) LegalContract(ctx context.Context, req LegalContractRequest) (*LegalContractResponse, error) {
	text, err := s.generate(ctx, modes.Legal, BuildLegalContractPrompt(req))
	if err != nil {
		return nil, err
	}
	return &LegalContractResponse{
		ContractText: text,
		Warnings:     append([]string(nil), legalContractWarnings...),
	}, nil
}

func (s *Service) MarketingPost(ctx context.Context, req MarketingPostRequest) (*MarketingPostResponse, error) {
	text, err := s.generate(ctx, modes.Marketing, BuildMarketingPostPrompt(req))
	if err != nil {
		return nil, err
	}
	return &MarketingPostResponse{Posts: SplitMarketingPosts(text)}, nil
}

func (s *Service) FinanceReport(ctx context.Context, req FinanceReportRequest) (*FinanceReportResponse, error) {
	text, err := s.generate(ctx, modes.Finance, BuildFinanceReportPrompt(req))
	if err != nil {
		return nil, err
	}
	recommendations, warnings := ExtractFinanceSections(text)
	if len(warnings) == 0 {
		warnings = append([]string(nil), financeFallbackWarnings...)
	}
	return &FinanceReportResponse{
		Analysis:        text,
		Recommendations: recommendations,
		Warnings:        warnings,
	}, nil
}

func (s *Service) Summary(ctx context.Context, req SummaryRequest) (*SummaryResponse, error) {
	text, err := s.generate(ctx, modes.Summary, BuildSummaryPrompt(req))
	if err != nil {
		return nil, err
	}
	tasks, nextSteps := ExtractSummarySections(text)
	return &SummaryResponse{
		Summary:   text,
		Tasks:     tasks,
		NextSteps: nextSteps,
	}, nil
}

func (s *Service) CompanyCard(ctx context.Context, req CompanyCardRequest) (*CompanyCardResponse, error) {
	text, err := s.generate(ctx, modes.Company, BuildCompanyCardPrompt(req))
	if err != nil {
		return nil, err
	}
	return &CompanyCardResponse{
		CardText:        text,
		Recommendations: ExtractCompanyRecommendations(text),
	}, nil
}

func (s *Service) TaxConsultation(ctx context.Context, req TaxConsultationRequest) (*TaxConsultationResponse, error) {
	text, err := s.generate(ctx, modes.Taxes, BuildTaxConsultationPrompt(req))
	if err != nil {
		return nil, err
	}
	return &TaxConsultationResponse{
		Answer:   text,
		Warnings: append([]string(nil), taxConsultationWarnings...),
	}, nil
}
