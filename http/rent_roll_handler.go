package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
	"github.com/dvillagrablanco/inmova-app-sub018/service"
)

// RentRollHandler answers 200 even for invalid rent rolls; validity is part
// of the payload, not of the transport.
type RentRollHandler struct {
	service *service.RentRollService
	logger  *logrus.Logger
}

func NewRentRollHandler(service *service.RentRollService, logger *logrus.Logger) *RentRollHandler {
	return &RentRollHandler{service: service, logger: logger}
}

func (h *RentRollHandler) decode(w http.ResponseWriter, r *http.Request) (domain.RentRollDocument, bool) {
	var doc domain.RentRollDocument
	if err := decodeJSON(w, r, &doc); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return doc, false
	}
	return doc, true
}

func (h *RentRollHandler) Validate(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.decode(w, r)
	if !ok {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, h.service.Validate(doc))
}

func (h *RentRollHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.decode(w, r)
	if !ok {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, h.service.Summarize(doc))
}

func (h *RentRollHandler) Report(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.decode(w, r)
	if !ok {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, h.service.Report(r.Context(), doc))
}
