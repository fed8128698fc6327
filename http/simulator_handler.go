package http

import (
	"errors"
	"log/slog"
	"net/http"

	"property-simulator/domain"
	"property-simulator/service"
)

type SimulatorHandler struct {
	service *service.SimulatorService
	metrics *Metrics
	logger  *slog.Logger
}

func NewSimulatorHandler(
	service *service.SimulatorService,
	metrics *Metrics,
	logger *slog.Logger,
) *SimulatorHandler {
	return &SimulatorHandler{service: service, metrics: metrics, logger: logger}
}

func (h *SimulatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input domain.SimulationInput
	if !readRequest(w, r, h.logger, &input) {
		return
	}

	result, err := h.service.Simulate(input)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.metrics.observeSimulation(input.Loan.RateMode, input.Profile.PropertyPurpose)
	writeJSON(w, h.logger, presentSimulation(result))
}

func (h *SimulatorHandler) IMT(w http.ResponseWriter, r *http.Request) {
	var input domain.IMTInput
	if !readRequest(w, r, h.logger, &input) {
		return
	}

	amount, bracket, err := h.service.IMT(input)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, h.logger, presentIMT(amount, bracket))
}

func (h *SimulatorHandler) TaxTables(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, h.logger, h.service.Tables())
}

func (h *SimulatorHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Warn("simulation rejected",
		"request_id", RequestIDFrom(r.Context()),
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNoTermFits):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
