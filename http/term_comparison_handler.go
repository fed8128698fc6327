package http

import (
	"log/slog"
	"net/http"

	"property-simulator/domain"
	"property-simulator/service"
)

type TermComparisonHandler struct {
	service *service.TermComparisonService
	logger  *slog.Logger
}

func NewTermComparisonHandler(
	service *service.TermComparisonService,
	logger *slog.Logger,
) *TermComparisonHandler {
	return &TermComparisonHandler{service: service, logger: logger}
}

func (h *TermComparisonHandler) CompareTerms(w http.ResponseWriter, r *http.Request) {
	var input domain.TermComparisonInput
	if !readRequest(w, r, h.logger, &input) {
		return
	}

	result, err := h.service.Compare(input)
	if err != nil {
		h.logger.Warn("term comparison rejected",
			"request_id", RequestIDFrom(r.Context()),
			"error", err,
		)
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, h.logger, presentTermComparison(result))
}
