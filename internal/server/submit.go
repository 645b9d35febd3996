package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"waterbutt/internal/claims"
	"waterbutt/pkg/types"
)

const maxPhotoBytes = 10 << 20

type submitForm struct {
	Litres   string `form:"litres"`
	Postcode string `form:"postcode"`
}

func (s *Service) handleSubmit(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		s.logger.WithError(err).Error("failed to parse submission form")
		s.setFlash(w, flashData{Error: "We couldn't read your submission. Please try again."})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	var submission = new(submitForm)
	if err := decoder.Decode(submission, r.Form); err != nil {
		s.logger.WithError(err).Error("failed to decode submission form")
		s.setFlash(w, flashData{Error: "We couldn't read your submission. Please try again."})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	input := claims.SubmitInput{
		Litres:   submission.Litres,
		Postcode: submission.Postcode,
	}

	photo, header, err := r.FormFile("photo")
	if err == nil {
		defer photo.Close()
		input.Photo = photo
		input.FileName = header.Filename
		input.ContentType = header.Header.Get("Content-Type")
	} else if !errors.Is(err, http.ErrMissingFile) {
		s.logger.WithError(err).Error("failed to read submission photo")
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	summary, err := s.claims.Submit(ctx, input, s.pendingSnapshot(ctx))
	if err != nil {
		s.setFlash(w, flashData{
			Error:    submitErrorMessage(err),
			Litres:   submission.Litres,
			Postcode: submission.Postcode,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s.storeSummary(summary)
	s.redirectWithNotice(w, r, "/", "Thanks! Your water butt has been counted and is awaiting approval.")
}

// pendingSnapshot is the client-held pending set the duplicate check runs
// against. It prefers the cached summary; the check stays advisory either way.
func (s *Service) pendingSnapshot(ctx context.Context) []*types.Submission {
	if cached := s.currentSummary(); cached != nil {
		return cached.Pending
	}

	summary, err := s.refreshSummary(ctx)
	if err != nil || summary == nil {
		return nil
	}

	return summary.Pending
}

func submitErrorMessage(err error) string {
	var validationErr *types.ValidationError
	var uploadErr *types.UploadError
	var persistErr *types.PersistError

	switch {
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Please check the following and try again: %s.", strings.Join(validationErr.Fields, ", "))
	case errors.Is(err, types.ErrDuplicatePending):
		return "A water butt for this postcode is already awaiting approval."
	case errors.As(err, &uploadErr):
		return "We couldn't upload your photo. Nothing was saved, please try again."
	case errors.As(err, &persistErr):
		return "We couldn't save your submission. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
