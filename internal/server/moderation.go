package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"waterbutt/pkg/types"

	"github.com/alexedwards/flow"
)

type ModerationPageData struct {
	Title   string
	Notice  string
	Error   string
	Summary *types.Summary
}

// No access control here: anyone who can reach /moderation can approve.
// Deployments are expected to fence these routes off at the proxy.
func (s *Service) handleModeration(w http.ResponseWriter, r *http.Request) {

	summary, err := s.refreshSummary(r.Context())

	data := ModerationPageData{
		Title:   "Moderation",
		Notice:  r.URL.Query().Get("notice"),
		Error:   r.URL.Query().Get("error"),
		Summary: summary,
	}

	if err != nil {
		s.logger.WithError(err).Error("failed to refresh submissions for moderation")
		if data.Error == "" {
			data.Error = "Couldn't load the latest submissions. Showing the last known set."
		}
	}

	if data.Summary == nil {
		data.Summary = &types.Summary{GoalLitres: s.config.GoalLitres}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.moderation", data); err != nil {
		s.logger.WithError(err).Error("failed to render moderation page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleApprove(w http.ResponseWriter, r *http.Request) {
	submissionID := flow.Param(r.Context(), "id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summary, err := s.claims.Approve(ctx, submissionID)
	if err != nil {
		if errors.Is(err, types.ErrSubmissionNotFound) {
			s.redirectWithError(w, r, "/moderation", "No submission with that id exists.")
			return
		}

		s.logger.WithError(err).Error("failed to approve submission")
		s.redirectWithError(w, r, "/moderation", "Approval failed. Please try again.")
		return
	}

	s.storeSummary(summary)
	s.redirectWithNotice(w, r, "/moderation", "Submission approved.")
}
