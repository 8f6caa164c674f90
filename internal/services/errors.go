package services

import (
	"errors"

	"github.com/yungbote/mh1-bff/internal/normalization"
	"github.com/yungbote/mh1-bff/internal/platform/apierr"
)

// contentError maps a fetch/normalize failure to an API error. Missing
// top-level content becomes a 404 with notFoundCode when one is given;
// everything else is a 500 with failedCode.
func contentError(err error, notFoundCode, failedCode string) error {
	if err == nil {
		return nil
	}
	if notFoundCode != "" && errors.Is(err, normalization.ErrNotFound) {
		return apierr.NotFound(notFoundCode, err)
	}
	return apierr.Internal(failedCode, err)
}
