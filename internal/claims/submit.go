package claims

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"waterbutt/internal/utils"
	"waterbutt/pkg/types"
)

// photoKeyPrefix is the logical folder all claim photos land under.
const photoKeyPrefix = "butts"

type SubmitInput struct {
	Litres   string
	Postcode string

	Photo       io.Reader
	FileName    string
	ContentType string
}

// NormalizePostcode trims and upper-cases a postcode. Normalized postcodes
// are what gets stored and what the duplicate-pending check compares.
func NormalizePostcode(postcode string) string {
	return strings.ToUpper(strings.TrimSpace(postcode))
}

// Submit validates a claim, checks it against the caller's snapshot of
// pending submissions, uploads the photo and only then creates the record.
// The photo upload happening first means a failed insert can strand an
// uploaded photo; nothing compensates for that today.
//
// The pending snapshot makes the one-pending-per-postcode rule advisory:
// two sessions racing on the same postcode can both get through.
func (s *Service) Submit(ctx context.Context, input SubmitInput, pending []*types.Submission) (*types.Summary, error) {

	var invalid []string

	litres, err := strconv.ParseInt(strings.TrimSpace(input.Litres), 10, 64)
	if err != nil || litres <= 0 {
		invalid = append(invalid, "litres")
	}

	postcode := NormalizePostcode(input.Postcode)
	if postcode == "" {
		invalid = append(invalid, "postcode")
	}

	if input.Photo == nil {
		invalid = append(invalid, "photo")
	}

	if len(invalid) > 0 {
		return nil, &types.ValidationError{Fields: invalid}
	}

	for _, p := range pending {
		if NormalizePostcode(p.Postcode) == postcode {
			return nil, types.ErrDuplicatePending
		}
	}

	photoKey, err := s.photos.Upload(ctx, s.photoKey(input.FileName), input.Photo, input.ContentType)
	if err != nil {
		return nil, &types.UploadError{Err: err}
	}

	submission := &types.Submission{
		Litres:   utils.Int64Ptr(litres),
		Postcode: postcode,
		PhotoKey: photoKey,
		Approved: false,
	}

	if err := s.store.CreateSubmission(ctx, submission); err != nil {
		return nil, &types.PersistError{Err: err}
	}

	return s.Refresh(ctx)
}

// photoKey builds a per-upload key from the submission time, a short random
// suffix and the original file extension.
func (s *Service) photoKey(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s/%d-%s%s", photoKeyPrefix, s.now().UnixMilli(), utils.NanoIDSize(8), ext)
}
