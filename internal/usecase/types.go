// Package usecase implements the templated tasks: prompt assembly per use
// case and best-effort structuring of the model's free-text reply.
package usecase

import (
	"errors"
	"strings"
)

type LegalContractRequest struct {
	ContractType   string `json:"contract_type"`
	Parties        string `json:"parties"`
	Subject        string `json:"subject"`
	Amount         string `json:"amount,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
}

func (r LegalContractRequest) Validate() error {
	if strings.TrimSpace(r.ContractType) == "" {
		return errors.New("contract_type required")
	}
	if strings.TrimSpace(r.Parties) == "" {
		return errors.New("parties required")
	}
	if strings.TrimSpace(r.Subject) == "" {
		return errors.New("subject required")
	}
	return nil
}

type LegalContractResponse struct {
	ContractText string   `json:"contract_text"`
	Warnings     []string `json:"warnings"`
}

type MarketingPostRequest struct {
	BusinessDescription string `json:"business_description"`
	PromotionGoal       string `json:"promotion_goal"`
	Platform            string `json:"platform,omitempty"`
	TargetAudience      string `json:"target_audience,omitempty"`
	Tone                string `json:"tone,omitempty"`
}

func (r MarketingPostRequest) Validate() error {
	if strings.TrimSpace(r.BusinessDescription) == "" {
		return errors.New("business_description required")
	}
	if strings.TrimSpace(r.PromotionGoal) == "" {
		return errors.New("promotion_goal required")
	}
	return nil
}

type MarketingPostResponse struct {
	Posts []string `json:"posts"`
}

type FinanceReportRequest struct {
	SalesData    map[string]interface{} `json:"sales_data,omitempty"`
	ExpensesData map[string]interface{} `json:"expenses_data,omitempty"`
	Period       string                 `json:"period,omitempty"`
	Questions    string                 `json:"questions,omitempty"`
}

func (r FinanceReportRequest) Validate() error {
	return nil
}

type FinanceReportResponse struct {
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
	Warnings        []string `json:"warnings"`
}

type SummaryRequest struct {
	Text        string `json:"text"`
	SummaryType string `json:"summary_type,omitempty"`
}

func (r SummaryRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("text required")
	}
	return nil
}

type SummaryResponse struct {
	Summary   string   `json:"summary"`
	Tasks     []string `json:"tasks"`
	NextSteps []string `json:"next_steps"`
}

type CompanyCardRequest struct {
	INN            string `json:"inn,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	Address        string `json:"address,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
}

func (r CompanyCardRequest) Validate() error {
	return nil
}

type CompanyCardResponse struct {
	CardText        string                 `json:"card_text"`
	StructuredData  map[string]interface{} `json:"structured_data,omitempty"`
	Recommendations []string               `json:"recommendations"`
}

type TaxConsultationRequest struct {
	Question          string  `json:"question"`
	BusinessType      string  `json:"business_type,omitempty"`
	TaxRegime         string  `json:"tax_regime,omitempty"`
	Revenue           float64 `json:"revenue,omitempty"`
	AdditionalContext string  `json:"additional_context,omitempty"`
}

func (r TaxConsultationRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return errors.New("question required")
	}
	return nil
}

type TaxConsultationResponse struct {
	Answer       string                 `json:"answer"`
	Calculations map[string]interface{} `json:"calculations,omitempty"`
	Warnings     []string               `json:"warnings"`
}
