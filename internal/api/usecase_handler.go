package api

import (
	"encoding/json"
	"net/http"

	"github.com/bizcopilot/backend/internal/common"
	"github.com/bizcopilot/backend/internal/usecase"
)

// decodeUseCase decodes and validates a use-case request body, reporting 400
// on either failure. It returns false when the handler should stop.
func decodeUseCase(w http.ResponseWriter, r *http.Request, req interface {
	Validate() error
}) bool {
	logger := common.Logger()
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		logger.Warn("api: usecase decode failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	if err := req.Validate(); err != nil {
		logger.Warn("api: usecase validation failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (s *Server) handleLegalContract(w http.ResponseWriter, r *http.Request) {
	var req usecase.LegalContractRequest
	if !decodeUseCase(w, r, &req) {
		return
	}
	resp, err := s.usecases.LegalContract(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMarketingPost(w http.ResponseWriter, r *http.Request) {
	var req usecase.MarketingPostRequest
	if !decodeUseCase(w, r, &req) {
		return
	}
	resp, err := s.usecases.MarketingPost(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFinanceReport(w http.ResponseWriter, r *http.Request) {
	var req usecase.FinanceReportRequest
	if !decodeUseCase(w, r, &req) {
		return
	}
	resp, err := s.usecases.FinanceReport(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	var req usecase.SummaryRequest
	if !decodeUseCase(w, r, &req) {
		return
	}
	resp, err := s.usecases.Summary(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompanyCard(w http.ResponseWriter, r *http.Request) {
	var req usecase.CompanyCardRequest
	if !decodeUseCase(w, r, &req) {
		return
	}
	resp, err := s.usecases.CompanyCard(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTaxConsultation(w http.ResponseWriter, r *http.Request) {
	var req usecase.TaxConsultationRequest
	if !decodeUseCase(w, r, &req) {
		return
	}
	resp, err := s.usecases.TaxConsultation(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
