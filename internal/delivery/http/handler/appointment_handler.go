package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vetify/internal/converter"
	"vetify/internal/delivery/dto"
	"vetify/internal/domain/entity"
	"vetify/internal/usecase"
	"vetify/pkg/flash"
	"vetify/pkg/render"
	"vetify/pkg/validator"

	"github.com/gorilla/mux"
)

// formLayout combines the separate date and time form inputs.
const formLayout = "2006-01-02T15:04"

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	directoryUsecase   usecase.DirectoryUsecase
	validator          *validator.CustomValidator
	render             *render.Engine
}

func NewAppointmentHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	directoryUsecase usecase.DirectoryUsecase,
	validator *validator.CustomValidator,
	render *render.Engine,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		directoryUsecase:   directoryUsecase,
		validator:          validator,
		render:             render,
	}
}

// NewPage shows the booking form, redirecting away when there is
// nothing to book yet.
func (h *AppointmentHandler) NewPage(w http.ResponseWriter, r *http.Request) {
	pets, vets, ok := h.loadFormOptions(w, r)
	if !ok {
		return
	}

	data := viewData(w, r)
	data["Mascotas"] = pets
	data["Vets"] = vets

	h.render.HTML(w, http.StatusOK, "appointment.html", data)
}

// Create books an appointment: numeric coercion and date parsing happen
// here, triage and the slot guard inside the usecase.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flash.Set(w, flash.CategoryError, "Selecciona una mascota y un veterinario válidos.")
		http.Redirect(w, r, "/appointment", http.StatusFound)
		return
	}

	petID, petErr := strconv.Atoi(r.FormValue("mascota_id"))
	vetID, vetErr := strconv.Atoi(r.FormValue("vet_id"))
	if petErr != nil || vetErr != nil {
		flash.Set(w, flash.CategoryError, "Selecciona una mascota y un veterinario válidos.")
		http.Redirect(w, r, "/appointment", http.StatusFound)
		return
	}

	fechaStr := strings.TrimSpace(r.FormValue("fecha_cita"))
	horaStr := strings.TrimSpace(r.FormValue("hora_cita"))
	if fechaStr == "" || horaStr == "" {
		flash.Set(w, flash.CategoryError, "Indica la fecha y la hora de la cita.")
		http.Redirect(w, r, "/appointment", http.StatusFound)
		return
	}

	scheduledAt, err := time.Parse(formLayout, fechaStr+"T"+horaStr)
	if err != nil {
		flash.Set(w, flash.CategoryError, "Formato de fecha u hora no válido.")
		http.Redirect(w, r, "/appointment", http.StatusFound)
		return
	}

	serviceType := r.FormValue("tipo_servicio")
	if serviceType == "" {
		serviceType = "Consulta"
	}

	req := dto.AppointmentRequest{
		PetID:       petID,
		VetID:       vetID,
		ScheduledAt: scheduledAt,
		ServiceType: serviceType,
		Symptoms:    r.FormValue("sintomas"),
	}

	if err := h.validator.Validate(&req); err != nil {
		flashValidationErrors(w, h.validator.FormatValidationErrors(err))
		http.Redirect(w, r, "/appointment", http.StatusFound)
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrScheduleConflict:
			flash.Set(w, flash.CategoryError, "El profesional seleccionado ya tiene una cita en esa fecha y hora.")
			http.Redirect(w, r, "/appointment", http.StatusFound)
		default:
			serverError(w)
		}
		return
	}

	flash.Set(w, flash.CategorySuccess, fmt.Sprintf(
		"Cita creada para el %s a las %s. Urgencia: %s.",
		fechaStr, horaStr, strings.ToUpper(string(appointment.Urgency)),
	))
	http.Redirect(w, r, "/citas", http.StatusFound)
}

// Agenda renders today's appointments with the day's headline metrics.
func (h *AppointmentHandler) Agenda(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	citas, err := h.appointmentUsecase.ListToday(ctx)
	if err != nil {
		serverError(w)
		return
	}

	totalPets, err := h.directoryUsecase.CountPets(ctx)
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
	data["Citas"] = citas
	data["TotalMascotas"] = totalPets
	data["TotalCitasHoy"] = totalToday
	data["UrgAltas"] = urgencies["alta"]

	h.render.HTML(w, http.StatusOK, "agenda.html", data)
}

// List renders all appointments grouped by day, optionally filtered by
// the ?urg= query parameter.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := strings.ToLower(r.URL.Query().Get("urg"))
	if filter == "" {
		filter = usecase.UrgencyFilterAll
	}

	view, err := h.appointmentUsecase.GroupedByDay(r.Context(), filter)
	if err != nil {
		serverError(w)
		return
	}

	data := viewData(w, r)
	data["Grupos"] = view.Groups
	data["Counts"] = view.Counts
	data["TotalCitas"] = view.Total
	data["UrgenciaActual"] = view.Filter

	h.render.HTML(w, http.StatusOK, "citas.html", data)
}

// Detail renders the full appointment view.
func (h *AppointmentHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	detail, err := h.appointmentUsecase.GetDetail(r.Context(), id)
	if err != nil {
		h.handleLookupError(w, r, err)
		return
	}

	data := viewData(w, r)
	data["Cita"] = detail

	h.render.HTML(w, http.StatusOK, "cita_detalle.html", data)
}

// EditPage shows the edit form prefilled from the raw appointment.
func (h *AppointmentHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetRaw(r.Context(), id)
	if err != nil {
		h.handleLookupError(w, r, err)
		return
	}

	pets, vets, ok := h.loadFormOptions(w, r)
	if !ok {
		return
	}

	data := viewData(w, r)
	data["Cita"] = converter.AppointmentToForm(appointment)
	data["Mascotas"] = pets
	data["Vets"] = vets

	h.render.HTML(w, http.StatusOK, "cita_editar.html", data)
}

// Edit overwrites the appointment's service fields; the usecase
// recomputes urgency and re-checks the slot excluding this appointment.
func (h *AppointmentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	if _, err := h.appointmentUsecase.GetRaw(r.Context(), id); err != nil {
		h.handleLookupError(w, r, err)
		return
	}

	editURL := fmt.Sprintf("/cita/%d/editar", id)

	if err := r.ParseForm(); err != nil {
		flash.Set(w, flash.CategoryError, "Datos inválidos.")
		http.Redirect(w, r, editURL, http.StatusFound)
		return
	}

	petID, petErr := strconv.Atoi(r.FormValue("mascota_id"))
	vetID, vetErr := strconv.Atoi(r.FormValue("vet_id"))
	if petErr != nil || vetErr != nil {
		flash.Set(w, flash.CategoryError, "Datos inválidos.")
		http.Redirect(w, r, editURL, http.StatusFound)
		return
	}

	fechaStr := strings.TrimSpace(r.FormValue("fecha_cita"))
	horaStr := strings.TrimSpace(r.FormValue("hora_cita"))
	scheduledAt, err := time.Parse(formLayout, fechaStr+"T"+horaStr)
	if err != nil {
		flash.Set(w, flash.CategoryError, "Formato de fecha u hora no válido.")
		http.Redirect(w, r, editURL, http.StatusFound)
		return
	}

	serviceType := r.FormValue("tipo_servicio")
	if serviceType == "" {
		serviceType = "Consulta"
	}

	req := dto.AppointmentRequest{
		PetID:       petID,
		VetID:       vetID,
		ScheduledAt: scheduledAt,
		ServiceType: serviceType,
		Symptoms:    r.FormValue("sintomas"),
	}

	if err := h.validator.Validate(&req); err != nil {
		flashValidationErrors(w, h.validator.FormatValidationErrors(err))
		http.Redirect(w, r, editURL, http.StatusFound)
		return
	}

	if err := h.appointmentUsecase.Update(r.Context(), id, &req); err != nil {
		switch err {
		case usecase.ErrScheduleConflict:
			flash.Set(w, flash.CategoryError, "El horario ya está ocupado.")
			http.Redirect(w, r, editURL, http.StatusFound)
		default:
			serverError(w)
		}
		return
	}

	flash.Set(w, flash.CategorySuccess, "Cita actualizada correctamente.")
	http.Redirect(w, r, fmt.Sprintf("/cita/%d", id), http.StatusFound)
}

// Delete removes the appointment permanently.
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), id); err != nil {
		serverError(w)
		return
	}

	flash.Set(w, flash.CategorySuccess, "Cita eliminada correctamente.")
	http.Redirect(w, r, "/citas", http.StatusFound)
}

func (h *AppointmentHandler) appointmentID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		flash.Set(w, flash.CategoryError, "La cita seleccionada no existe.")
		http.Redirect(w, r, "/citas", http.StatusFound)
		return 0, false
	}
	return id, true
}

func (h *AppointmentHandler) handleLookupError(w http.ResponseWriter, r *http.Request, err error) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		flash.Set(w, flash.CategoryError, "La cita seleccionada no existe.")
		http.Redirect(w, r, "/citas", http.StatusFound)
	default:
		serverError(w)
	}
}

// loadFormOptions fetches the booking-form selects, redirecting away
// with a notice when either list is empty.
func (h *AppointmentHandler) loadFormOptions(w http.ResponseWriter, r *http.Request) ([]entity.PetRow, []entity.Veterinarian, bool) {
	pets, err := h.directoryUsecase.ListPets(r.Context())
	if err != nil {
		serverError(w)
		return nil, nil, false
	}
	vets, err := h.directoryUsecase.ListVeterinarians(r.Context())
	if err != nil {
		serverError(w)
		return nil, nil, false
	}

	if len(pets) == 0 {
		flash.Set(w, flash.CategoryError, "Primero registra un paciente.")
		http.Redirect(w, r, "/register", http.StatusFound)
		return nil, nil, false
	}
	if len(vets) == 0 {
		flash.Set(w, flash.CategoryError, "No hay veterinarios registrados.")
		http.Redirect(w, r, "/", http.StatusFound)
		return nil, nil, false
	}

	return pets, vets, true
}
