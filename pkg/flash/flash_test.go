package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carry moves the cookies a handler set into a fresh request, the way a
// browser would across a redirect.
func carry(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge >= 0 {
			req.AddCookie(cookie)
		}
	}
	return req
}

func TestSetPopRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	Set(rec, CategorySuccess, "Paciente Luna registrado correctamente.")

	req := carry(t, rec)
	rec = httptest.NewRecorder()
	msg := Pop(rec, req)

	require.NotNil(t, msg)
	assert.Equal(t, CategorySuccess, msg.Category)
	assert.Equal(t, "Paciente Luna registrado correctamente.", msg.Message)

	// Pop expires the cookie so the notice shows once.
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestPopWithoutCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, Pop(rec, req))
	// Nothing to expire either.
	assert.Empty(t, rec.Result().Cookies())
}

func TestPopMalformedValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "vetify_flash", Value: "sin-separador"})

	rec := httptest.NewRecorder()
	assert.Nil(t, Pop(rec, req))

	// The broken cookie is still cleared.
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestMessageSurvivesEscaping(t *testing.T) {
	rec := httptest.NewRecorder()
	Set(rec, CategoryError, "El horario ya está ocupado.")

	msg := Pop(httptest.NewRecorder(), carry(t, rec))
	require.NotNil(t, msg)
	assert.Equal(t, "El horario ya está ocupado.", msg.Message)
}
