// Package flash implements one-shot notices carried across a redirect
// in a short-lived cookie. The message is consumed on first read.
package flash

import (
	"net/http"
	"net/url"
	"strings"
)

const cookieName = "vetify_flash"

// Known categories, used as CSS hooks by the base template.
const (
	CategorySuccess = "success"
	CategoryError   = "error"
)

type Message struct {
	Category string
	Message  string
}

// Set queues a notice for the next rendered page.
func Set(w http.ResponseWriter, category, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

// Pop returns the pending notice, clearing it, or nil when none is set.
func Pop(w http.ResponseWriter, r *http.Request) *Message {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}

	// Expire the cookie regardless of whether the value parses.
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}

	category, message, found := strings.Cut(raw, "|")
	if !found || message == "" {
		return nil
	}

	return &Message{Category: category, Message: message}
}
