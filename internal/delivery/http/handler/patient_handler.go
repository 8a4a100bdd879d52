package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"vetify/internal/delivery/dto"
	"vetify/internal/usecase"
	"vetify/pkg/flash"
	"vetify/pkg/render"
	"vetify/pkg/validator"
)

type PatientHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
	render           *render.Engine
}

func NewPatientHandler(
	directoryUsecase usecase.DirectoryUsecase,
	validator *validator.CustomValidator,
	render *render.Engine,
) *PatientHandler {
	return &PatientHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
		render:           render,
	}
}

// RegisterPage shows the owner+pet intake form.
func (h *PatientHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "register.html", viewData(w, r))
}

// Register creates an owner and their pet from the intake form.
func (h *PatientHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flash.Set(w, flash.CategoryError, "Por favor completa todos los campos obligatorios.")
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	petSpecies := strings.TrimSpace(r.FormValue("pet_type"))
	if petSpecies == "" {
		petSpecies = "Otro"
	}

	ageStr := strings.TrimSpace(r.FormValue("pet_age"))
	if ageStr == "" {
		ageStr = "0"
	}
	weightStr := strings.TrimSpace(r.FormValue("pet_weight"))
	if weightStr == "" {
		weightStr = "0"
	}

	age, ageErr := strconv.Atoi(ageStr)
	weight, weightErr := strconv.ParseFloat(weightStr, 64)
	if ageErr != nil || weightErr != nil {
		flash.Set(w, flash.CategoryError, "Revisa la edad y el peso de la mascota.")
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	req := dto.RegisterPatientRequest{
		OwnerName:  strings.TrimSpace(r.FormValue("owner_name")),
		OwnerPhone: strings.TrimSpace(r.FormValue("owner_phone")),
		OwnerEmail: strings.TrimSpace(r.FormValue("owner_email")),
		PetName:    strings.TrimSpace(r.FormValue("pet_name")),
		PetSpecies: petSpecies,
		PetBreed:   strings.TrimSpace(r.FormValue("pet_breed")),
		PetAge:     age,
		PetWeight:  weight,
	}

	if err := h.validator.Validate(&req); err != nil {
		flash.Set(w, flash.CategoryError, "Por favor completa todos los campos obligatorios.")
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	if _, _, err := h.directoryUsecase.RegisterPatient(r.Context(), &req); err != nil {
		serverError(w)
		return
	}

	flash.Set(w, flash.CategorySuccess, fmt.Sprintf("Paciente %s registrado correctamente.", req.PetName))
	http.Redirect(w, r, "/citas", http.StatusFound)
}

// Patients lists every registered pet with its owner's contact data.
func (h *PatientHandler) Patients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.directoryUsecase.ListPatientsDetail(r.Context())
	if err != nil {
		serverError(w)
		return
	}

	data := viewData(w, r)
	data["Pacientes"] = patients
	data["Total"] = len(patients)

	h.render.HTML(w, http.StatusOK, "pacientes.html", data)
}
