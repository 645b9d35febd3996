package server

import (
	"net/http"
)

const flashCookieName = "wb_flash"

// flashData survives one redirect. On a failed submit it carries the error
// and the entered field values so the form re-renders without retyping.
type flashData struct {
	Error    string
	Litres   string
	Postcode string
}

func (s *Service) setFlash(w http.ResponseWriter, f flashData) {
	encoded, err := s.cookie.Encode(flashCookieName, f)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode flash cookie")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Service) popFlash(w http.ResponseWriter, r *http.Request) flashData {
	var f flashData

	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return f
	}

	if err := s.cookie.Decode(flashCookieName, cookie.Value, &f); err != nil {
		s.logger.WithError(err).Debug("failed to decode flash cookie")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return f
}
