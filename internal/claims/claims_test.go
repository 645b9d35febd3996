package claims

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"waterbutt/pkg/types"
)

type fakeStore struct {
	submissions []*types.Submission
	listErr     error
	createErr   error

	approveCalls []string
}

func (f *fakeStore) Submissions(_ context.Context) ([]*types.Submission, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.submissions, nil
}

func (f *fakeStore) CreateSubmission(_ context.Context, submission *types.Submission) error {
	if f.createErr != nil {
		return f.createErr
	}

	submission.ID = fmt.Sprintf("sub-%03d", len(f.submissions)+1)
	submission.CreatedAt = time.Now()
	f.submissions = append(f.submissions, submission)
	return nil
}

func (f *fakeStore) ApproveSubmission(_ context.Context, submissionID string) error {
	f.approveCalls = append(f.approveCalls, submissionID)

	for _, s := range f.submissions {
		if s.ID == submissionID {
			s.Approved = true
			return nil
		}
	}

	return types.ErrSubmissionNotFound
}

type fakePhotos struct {
	uploads []string
	err     error
}

func (f *fakePhotos) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	f.uploads = append(f.uploads, key)
	return key, nil
}

var errBackendDown = errors.New("backend down")

func litresPtr(l int64) *int64 {
	return &l
}
