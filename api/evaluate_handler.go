package api

import (
	"encoding/json"
	"net/http"

	"code.cloudfoundry.org/lager"
)

type EvaluateHandler struct {
	logger    lager.Logger
	evaluator Evaluator
}

func NewEvaluateHandler(logger lager.Logger, evaluator Evaluator) *EvaluateHandler {
	return &EvaluateHandler{
		logger:    logger,
		evaluator: evaluator,
	}
}

type evaluateRequest struct {
	Password string `json:"password"`
}

func (h *EvaluateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("evaluate-api")

	var request evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Error("failed-to-decode-request", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result := h.evaluator.Evaluate(logger, request.Password)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.Error("failed-to-encode-response", err)
	}
}
