package handler

import (
	"net/http"
	"sort"
	"strings"

	"vetify/internal/delivery/http/middleware"
	"vetify/pkg/flash"
)

// viewData builds the base template payload: the session user for the
// navbar plus any pending flash notice.
func viewData(w http.ResponseWriter, r *http.Request) map[string]interface{} {
	data := map[string]interface{}{}
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		data["User"] = user
	}
	if msg := flash.Pop(w, r); msg != nil {
		data["Flash"] = msg
	}
	return data
}

// flashValidationErrors joins formatted field errors (sorted by field so
// the message is stable) into a single error notice.
func flashValidationErrors(w http.ResponseWriter, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(errs))
	for _, field := range fields {
		messages = append(messages, errs[field])
	}

	flash.Set(w, flash.CategoryError, strings.Join(messages, ". ")+".")
}

func serverError(w http.ResponseWriter) {
	http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
}
