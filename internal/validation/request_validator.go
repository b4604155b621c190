package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/veranemoloko/video-downloader/internal/domain"
	apperrors "github.com/veranemoloko/video-downloader/internal/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateRequest checks a download request before any extraction starts.
// A missing URL is reported as apperrors.ErrMissingURL.
func ValidateRequest(req *domain.DownloadRequest) error {
	if req == nil {
		return apperrors.ErrMissingURL
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.StructField() == "URL" {
				return apperrors.ErrMissingURL
			}
		}
	}

	return fmt.Errorf("invalid request: %w", err)
}
