package handler

import (
	"net/http"

	"vetify/internal/usecase"
	"vetify/pkg/render"
)

type VetHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	render           *render.Engine
}

func NewVetHandler(directoryUsecase usecase.DirectoryUsecase, render *render.Engine) *VetHandler {
	return &VetHandler{
		directoryUsecase: directoryUsecase,
		render:           render,
	}
}

func (h *VetHandler) List(w http.ResponseWriter, r *http.Request) {
	vets, err := h.directoryUsecase.ListVeterinarians(r.Context())
	if err != nil {
		serverError(w)
		return
	}

	data := viewData(w, r)
	data["Veterinarios"] = vets

	h.render.HTML(w, http.StatusOK, "vets.html", data)
}
