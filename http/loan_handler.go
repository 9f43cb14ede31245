package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
	"github.com/dvillagrablanco/inmova-app-sub018/service"
)

type amortizationRequest struct {
	domain.LoanTerms
	IncludeSchedule bool `json:"include_schedule"`
}

type LoanHandler struct {
	service *service.LoanService
	logger  *logrus.Logger
}

func NewLoanHandler(service *service.LoanService, logger *logrus.Logger) *LoanHandler {
	return &LoanHandler{service: service, logger: logger}
}

func (h *LoanHandler) CalculateAmortization(w http.ResponseWriter, r *http.Request) {
	var input amortizationRequest
	if err := decodeJSON(w, r, &input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateLoan(input.LoanTerms, input.IncludeSchedule)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
