package handler

import (
	"net/http"

	"vetify/internal/usecase"
	"vetify/pkg/render"
)

type DashboardHandler struct {
	directoryUsecase   usecase.DirectoryUsecase
	appointmentUsecase usecase.AppointmentUsecase
	render             *render.Engine
}

func NewDashboardHandler(
	directoryUsecase usecase.DirectoryUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	render *render.Engine,
) *DashboardHandler {
	return &DashboardHandler{
		directoryUsecase:   directoryUsecase,
		appointmentUsecase: appointmentUsecase,
		render:             render,
	}
}

// Index renders the dashboard metrics.
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalPets, err := h.directoryUsecase.CountPets(ctx)
	if err != nil {
		serverError(w)
		return
	}

	totalOwners, err := h.directoryUsecase.CountOwners(ctx)
	if err != nil {
		serverError(w)
		return
	}

	totalToday, err := h.appointmentUsecase.CountToday(ctx)
	if err != nil {
		serverError(w)
		return
	}

	urgencies, err := h.appointmentUsecase.UrgencyCountsToday(ctx)
	if err != nil {
		serverError(w)
		return
	}

	data := viewData(w, r)
	data["TotalMascotas"] = totalPets
	data["TotalDuenos"] = totalOwners
	data["TotalCitasHoy"] = totalToday
	data["UrgAltas"] = urgencies["alta"]

	h.render.HTML(w, http.StatusOK, "index.html", data)
}
