package usecase

import (
	"profile-editor/internal/domain"
	"profile-editor/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// RegisterProfileRules installs the field validators and the cross-field
// rules a committed profile must satisfy.
func RegisterProfileRules(v *validator.Validate) {
	validation.RegisterValidators(v)
	v.RegisterStructValidation(committedProfileRules, domain.CommittedProfile{})
}

// NewValidator returns a validator ready to check committed profiles.
func NewValidator() *validator.Validate {
	v := validator.New()
	RegisterProfileRules(v)
	return v
}

func committedProfileRules(sl validator.StructLevel) {
	p := sl.Current().Interface().(domain.CommittedProfile)

	switch p.ResumeMode {
	case domain.ResumeModeFile:
		if !p.ResumeFile.Present() || p.ResumeLink != "" {
			sl.ReportError(p.ResumeFile, "ResumeFile", "ResumeFile", "resume_active", "")
		}
	case domain.ResumeModeLink:
		if !validation.IsRequired(p.ResumeLink) || p.ResumeFile.Present() {
			sl.ReportError(p.ResumeLink, "ResumeLink", "ResumeLink", "resume_active", "")
		}
	}

	if !p.ProfilePicture.Present() {
		sl.ReportError(p.ProfilePicture, "ProfilePicture", "ProfilePicture", "picture_present", "")
	}

	if blob, ok := p.ProfilePicture.Blob(); ok {
		if !validation.IsValidFileType(blob, PictureTypes) || !validation.IsValidFileSize(blob, PictureMaxBytes) {
			sl.ReportError(p.ProfilePicture, "ProfilePicture", "ProfilePicture", "picture_file", "")
		}
	}
}
