package server

import (
	"net/http"
	"net/url"

	"waterbutt/internal/claims"
	"waterbutt/pkg/types"
)

type HomePageData struct {
	Title   string
	Notice  string
	Error   string
	Form    flashData
	Summary *types.Summary
}

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {

	summary, err := s.refreshSummary(r.Context())
	flash := s.popFlash(w, r)

	data := HomePageData{
		Title:   "The Big Butt Count",
		Notice:  r.URL.Query().Get("notice"),
		Error:   flash.Error,
		Form:    flash,
		Summary: summary,
	}

	if err != nil {
		s.logger.WithError(err).Error("failed to refresh submissions")
		if data.Error == "" {
			data.Error = "We couldn't load the latest totals. Showing the last known figures."
		}
	}

	// First request after a failed refresh has nothing cached yet
	if data.Summary == nil {
		data.Summary = claims.Summarize(nil, s.config.GoalLitres)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) redirectWithNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	v := url.Values{}
	v.Set("notice", notice)
	http.Redirect(w, r, path+"?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) redirectWithError(w http.ResponseWriter, r *http.Request, path, msg string) {
	v := url.Values{}
	v.Set("error", msg)
	http.Redirect(w, r, path+"?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
