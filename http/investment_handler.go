package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
	"github.com/dvillagrablanco/inmova-app-sub018/service"
)

type InvestmentHandler struct {
	service *service.InvestmentService
	logger  *logrus.Logger
}

func NewInvestmentHandler(service *service.InvestmentService, logger *logrus.Logger) *InvestmentHandler {
	return &InvestmentHandler{service: service, logger: logger}
}

func (h *InvestmentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var input domain.InvestmentRequest
	if err := decodeJSON(w, r, &input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	analysis, err := h.service.Analyze(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, analysis)
}

func (h *InvestmentHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.service.GetAnalysis(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, analysis)
}

func (h *InvestmentHandler) CalculateIRR(w http.ResponseWriter, r *http.Request) {
	var input domain.CashFlowProjection
	if err := decodeJSON(w, r, &input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateIRR(input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
