package http

import (
	"net/http"

	"vetify/internal/delivery/http/handler"
	"vetify/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	dashboardHandler   *handler.DashboardHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	vetHandler         *handler.VetHandler
	sessionMiddleware  *middleware.SessionMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	vetHandler *handler.VetHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		dashboardHandler:   dashboardHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		vetHandler:         vetHandler,
		sessionMiddleware:  sessionMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Auth routes (public)
	r.router.HandleFunc("/login", r.authHandler.LoginPage).Methods(http.MethodGet)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodGet)

	// Everything else requires an active session
	protected := r.router.PathPrefix("/").Subrouter()
	protected.Use(r.sessionMiddleware.Require)

	protected.HandleFunc("/", r.dashboardHandler.Index).Methods(http.MethodGet)

	protected.HandleFunc("/register", r.patientHandler.RegisterPage).Methods(http.MethodGet)
	protected.HandleFunc("/register", r.patientHandler.Register).Methods(http.MethodPost)
	protected.HandleFunc("/pacientes", r.patientHandler.Patients).Methods(http.MethodGet)

	protected.HandleFunc("/appointment", r.appointmentHandler.NewPage).Methods(http.MethodGet)
	protected.HandleFunc("/appointment", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/agenda", r.appointmentHandler.Agenda).Methods(http.MethodGet)
	protected.HandleFunc("/citas", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/cita/{id:[0-9]+}", r.appointmentHandler.Detail).Methods(http.MethodGet)
	protected.HandleFunc("/cita/{id:[0-9]+}/editar", r.appointmentHandler.EditPage).Methods(http.MethodGet)
	protected.HandleFunc("/cita/{id:[0-9]+}/editar", r.appointmentHandler.Edit).Methods(http.MethodPost)
	protected.HandleFunc("/cita/{id:[0-9]+}/eliminar", r.appointmentHandler.Delete).Methods(http.MethodPost)

	protected.HandleFunc("/vets", r.vetHandler.List).Methods(http.MethodGet)

	return r.router
}
