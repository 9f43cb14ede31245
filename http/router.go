package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Loan       *LoanHandler
	Investment *InvestmentHandler
	RentRoll   *RentRollHandler
}

func NewRouter(h Handlers, limiter *RateLimiter) *mux.Router {
	r := mux.NewRouter()

	limited := func(fn http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, fn)
	}

	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	r.Handle("/loan/amortization", limited(h.Loan.CalculateAmortization)).Methods(http.MethodPost)

	r.Handle("/investment/analyze", limited(h.Investment.Analyze)).Methods(http.MethodPost)
	r.Handle("/investment/irr", limited(h.Investment.CalculateIRR)).Methods(http.MethodPost)
	r.HandleFunc("/investment/analyses/{id}", h.Investment.GetAnalysis).Methods(http.MethodGet)

	r.Handle("/rent-roll/validate", limited(h.RentRoll.Validate)).Methods(http.MethodPost)
	r.Handle("/rent-roll/summary", limited(h.RentRoll.Summarize)).Methods(http.MethodPost)
	r.Handle("/rent-roll/report", limited(h.RentRoll.Report)).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
