package http

import (
	"encoding/json"
	"net/http"

	"github.com/gajihub/payroll-backend-go/internal/domain/simulation"
	"github.com/gajihub/payroll-backend-go/internal/handler/http/response"
	simulationService "github.com/gajihub/payroll-backend-go/internal/service/simulation"
)

type SimulationHandler interface {
	RetirementProjection(w http.ResponseWriter, r *http.Request)
	EisBenefits(w http.ResponseWriter, r *http.Request)
}

type simulationHandlerImpl struct {
	simulationService *simulationService.Service
}

func NewSimulationHandler(svc *simulationService.Service) SimulationHandler {
	return &simulationHandlerImpl{simulationService: svc}
}

func (h *simulationHandlerImpl) RetirementProjection(w http.ResponseWriter, r *http.Request) {
	var params simulation.RetirementParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := params.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.simulationService.ProjectRetirement(params))
}

func (h *simulationHandlerImpl) EisBenefits(w http.ResponseWriter, r *http.Request) {
	var req simulation.EisBenefitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.simulationService.ProjectEisBenefits(req.AssumedMonthlyWage))
}
