package http

import (
	"encoding/json"
	"net/http"

	"github.com/gajihub/payroll-backend-go/internal/domain/statutory"
	"github.com/gajihub/payroll-backend-go/internal/handler/http/response"
	statutoryService "github.com/gajihub/payroll-backend-go/internal/service/statutory"
)

type StatutoryHandler interface {
	SalaryBreakdown(w http.ResponseWriter, r *http.Request)
}

type statutoryHandlerImpl struct {
	calculator *statutoryService.Calculator
}

func NewStatutoryHandler(calculator *statutoryService.Calculator) StatutoryHandler {
	return &statutoryHandlerImpl{calculator: calculator}
}

// SalaryBreakdown is the standalone what-if calculator: one salary plus
// relief elections in, the full deduction breakdown out. Nothing is stored.
func (h *statutoryHandlerImpl) SalaryBreakdown(w http.ResponseWriter, r *http.Request) {
	var req statutory.SalaryBreakdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.calculator.Breakdown(req))
}
