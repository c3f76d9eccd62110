package usecase

import (
	"fmt"
	"maps"
	"unicode/utf8"

	"profile-editor/internal/domain"
	"profile-editor/pkg/logger"
	"profile-editor/pkg/validation"
)

const (
	BioMinLength    = 150
	BioMaxLength    = 200
	PictureMaxBytes = 2 * 1024 * 1024
)

// PictureTypes are the declared MIME types accepted for a new profile picture.
var PictureTypes = []string{"image/jpeg", "image/jpg"}

// Error messages, one per rule violation.
const (
	MsgUsernameRequired  = "Username is required"
	MsgBioRequired       = "Bio is required"
	MsgBioLength         = "Bio must be between 150 and 200 characters"
	MsgInvalidURL        = "Please enter a valid URL"
	MsgResumeFileMissing = "Resume file is required"
	MsgResumeLinkMissing = "Resume link is required"
	MsgPictureRequired   = "Profile picture is required"
	MsgPictureType       = "Only JPG/JPEG files are allowed"
	MsgPictureSize       = "Image size must be less than 2MB"
	MsgEmailRequired     = "Email is required"
	MsgEmailInvalid      = "Please enter a valid email address"
	MsgLinkedInRequired  = "LinkedIn profile is required"
	MsgLinkedInInvalid   = "Please enter a valid LinkedIn URL"
	MsgLeetCodeRequired  = "LeetCode profile is required"
	MsgLeetCodeInvalid   = "Please enter a valid LeetCode URL"
	MsgCodeChefInvalid   = "Please enter a valid CodeChef URL"
	MsgGfGInvalid        = "Please enter a valid GeeksforGeeks URL"
)

// SaveFunc receives a validated profile on submit, or nil on cancel.
// A non-nil error rejects the profile.
type SaveFunc func(profile *domain.CommittedProfile) error

// ValidationResult is the outcome of a full validation pass.
type ValidationResult struct {
	Valid  bool
	Errors map[domain.FieldName]string
}

// ProfileForm owns a draft and its per-field state while the user edits.
// Every mutation re-runs Validate so errors always describe the current draft.
// A ProfileForm is not safe for concurrent use.
type ProfileForm struct {
	draft    domain.ProfileDraft
	touched  map[domain.FieldName]bool
	errors   map[domain.FieldName]string
	editMode bool
	seed     *domain.CommittedProfile

	previews domain.PreviewRegistry
	preview  string // handle for the current picture, if any
	onSave   SaveFunc
}

// NewProfileForm initialises a form. With editMode and a seed the draft
// starts from the seed and every field counts as touched, so rule
// violations show without further interaction.
func NewProfileForm(seed *domain.CommittedProfile, editMode bool, previews domain.PreviewRegistry, onSave SaveFunc) *ProfileForm {
	f := &ProfileForm{
		draft:    domain.DefaultDraft(),
		touched:  make(map[domain.FieldName]bool),
		errors:   make(map[domain.FieldName]string),
		editMode: editMode,
		previews: previews,
		onSave:   onSave,
	}

	if editMode && seed != nil {
		f.seed = seed
		f.draft = seed.Draft()
		f.draft.ResumeMode = domain.ResumeModeFile
		if seed.ResumeLink != "" {
			f.draft.ResumeMode = domain.ResumeModeLink
		}
		for _, name := range domain.DraftFields {
			f.touched[name] = true
		}
		f.refreshPreview()
	}

	f.Validate()
	return f
}

// SetField overwrites a text field and marks it touched.
func (f *ProfileForm) SetField(name domain.FieldName, value string) error {
	if err := f.draft.SetText(name, value); err != nil {
		return err
	}
	f.touched[name] = true
	f.Validate()
	return nil
}

// SetFileField overwrites a file field; a nil file clears the selection.
func (f *ProfileForm) SetFileField(name domain.FieldName, file *domain.FileBlob) error {
	ref := domain.NoFile()
	if file != nil {
		ref = domain.NewFile(*file)
	}
	if err := f.draft.SetFile(name, ref); err != nil {
		return err
	}
	f.touched[name] = true
	if name == domain.FieldProfilePicture {
		f.refreshPreview()
	}
	f.Validate()
	return nil
}

// Blur marks a field touched without changing it.
func (f *ProfileForm) Blur(name domain.FieldName) error {
	if _, err := domain.ParseFieldName(string(name)); err != nil {
		return err
	}
	f.touched[name] = true
	f.Validate()
	return nil
}

// ToggleResumeMode switches the active resume representation and clears
// the inactive one.
func (f *ProfileForm) ToggleResumeMode(mode domain.ResumeMode) error {
	switch mode {
	case domain.ResumeModeLink:
		f.draft.ResumeFile = domain.NoFile()
	case domain.ResumeModeFile:
		f.draft.ResumeLink = ""
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidResumeMode, string(mode))
	}
	f.draft.ResumeMode = mode
	f.Validate()
	return nil
}

// Validate recomputes every field error from the current draft and
// replaces the stored errors. Rules are evaluated independently.
func (f *ProfileForm) Validate() ValidationResult {
	d := &f.draft
	errs := make(map[domain.FieldName]string)

	if !validation.IsRequired(d.Username) {
		errs[domain.FieldUsername] = MsgUsernameRequired
	}

	if !validation.IsRequired(d.Bio) {
		errs[domain.FieldBio] = MsgBioRequired
	} else if !validation.ValidateLength(d.Bio, BioMinLength, BioMaxLength) {
		errs[domain.FieldBio] = MsgBioLength
	}

	if d.PortfolioLink != "" && !validation.IsValidURL(d.PortfolioLink) {
		errs[domain.FieldPortfolioLink] = MsgInvalidURL
	}

	if d.ResumeMode == domain.ResumeModeLink {
		if !validation.IsRequired(d.ResumeLink) {
			errs[domain.FieldResumeLink] = MsgResumeLinkMissing
		} else if !validation.IsValidURL(d.ResumeLink) {
			errs[domain.FieldResumeLink] = MsgInvalidURL
		}
	} else if !d.ResumeFile.Present() && !f.hasSeedResumeFile() {
		errs[domain.FieldResumeFile] = MsgResumeFileMissing
	}

	switch d.ProfilePicture.Kind() {
	case domain.FileNone:
		if !f.editMode {
			errs[domain.FieldProfilePicture] = MsgPictureRequired
		}
	case domain.FileNew:
		blob, _ := d.ProfilePicture.Blob()
		// both checks run; the size message wins when both fail
		if !validation.IsValidFileType(blob, PictureTypes) {
			errs[domain.FieldProfilePicture] = MsgPictureType
		}
		if !validation.IsValidFileSize(blob, PictureMaxBytes) {
			errs[domain.FieldProfilePicture] = MsgPictureSize
		}
	}

	if !validation.IsRequired(d.Email) {
		errs[domain.FieldEmail] = MsgEmailRequired
	} else if !validation.IsValidEmail(d.Email) {
		errs[domain.FieldEmail] = MsgEmailInvalid
	}

	if !validation.IsRequired(d.LinkedIn) {
		errs[domain.FieldLinkedIn] = MsgLinkedInRequired
	} else if !validation.IsValidURL(d.LinkedIn) {
		errs[domain.FieldLinkedIn] = MsgLinkedInInvalid
	}

	if !validation.IsRequired(d.LeetCode) {
		errs[domain.FieldLeetCode] = MsgLeetCodeRequired
	} else if !validation.IsValidURL(d.LeetCode) {
		errs[domain.FieldLeetCode] = MsgLeetCodeInvalid
	}

	if d.CodeChef != "" && !validation.IsValidURL(d.CodeChef) {
		errs[domain.FieldCodeChef] = MsgCodeChefInvalid
	}

	if d.GeeksforGeeks != "" && !validation.IsValidURL(d.GeeksforGeeks) {
		errs[domain.FieldGeeksforGeeks] = MsgGfGInvalid
	}

	f.errors = errs
	return ValidationResult{Valid: len(errs) == 0, Errors: maps.Clone(errs)}
}

// Submit touches every field and validates. On success the draft is handed
// to the save callback as a CommittedProfile; on failure nothing is saved
// and a *domain.ValidationFailure is returned.
func (f *ProfileForm) Submit() (*domain.CommittedProfile, error) {
	for _, name := range domain.DraftFields {
		f.touched[name] = true
	}

	result := f.Validate()
	if !result.Valid {
		logger.Log.Debug("Profile submit rejected", "fields", len(result.Errors))
		return nil, &domain.ValidationFailure{Errors: result.Errors}
	}

	profile := f.commit()
	if f.onSave != nil {
		if err := f.onSave(profile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

// Cancel discards the draft and signals the save callback with nil.
func (f *ProfileForm) Cancel() error {
	f.Close()
	f.draft = domain.DefaultDraft()
	f.touched = make(map[domain.FieldName]bool)
	f.Validate()
	if f.onSave != nil {
		return f.onSave(nil)
	}
	return nil
}

// Close releases the picture preview. The form stays usable.
func (f *ProfileForm) Close() {
	if f.preview != "" && f.previews != nil {
		f.previews.Release(f.preview)
	}
	f.preview = ""
}

// EditMode reports whether the form edits an existing profile.
func (f *ProfileForm) EditMode() bool { return f.editMode }

// Draft returns a copy of the current draft.
func (f *ProfileForm) Draft() domain.ProfileDraft { return f.draft }

// Touched reports whether the user has interacted with a field.
func (f *ProfileForm) Touched(name domain.FieldName) bool { return f.touched[name] }

// Errors returns the current error for every invalid field.
func (f *ProfileForm) Errors() map[domain.FieldName]string { return maps.Clone(f.errors) }

// VisibleErrors returns errors of touched fields only.
func (f *ProfileForm) VisibleErrors() map[domain.FieldName]string {
	visible := make(map[domain.FieldName]string)
	for name, msg := range f.errors {
		if f.touched[name] {
			visible[name] = msg
		}
	}
	return visible
}

// BioStatus reports the raw bio length for the character counter.
func (f *ProfileForm) BioStatus() domain.BioStatus {
	n := utf8.RuneCountInString(f.draft.Bio)
	return domain.BioStatus{Count: n, InRange: n >= BioMinLength && n <= BioMaxLength}
}

// PreviewHandle is the display handle of the chosen picture, if any.
func (f *ProfileForm) PreviewHandle() string { return f.preview }

// State returns a rendering copy of the form.
func (f *ProfileForm) State() domain.FormState {
	fields := make(map[domain.FieldName]domain.FieldState, len(domain.DraftFields))
	for _, name := range domain.DraftFields {
		fields[name] = domain.FieldState{Touched: f.touched[name], Error: f.errors[name]}
	}
	return domain.FormState{
		EditMode:       f.editMode,
		Draft:          f.draft,
		Fields:         fields,
		VisibleErrors:  f.VisibleErrors(),
		Valid:          len(f.errors) == 0,
		Bio:            f.BioStatus(),
		PicturePreview: f.preview,
	}
}

func (f *ProfileForm) hasSeedResumeFile() bool {
	return f.editMode && f.seed != nil && f.seed.ResumeFile.Present()
}

// commit copies the draft into a snapshot. In edit mode files the user did
// not replace are carried over from the seed.
func (f *ProfileForm) commit() *domain.CommittedProfile {
	p := domain.CommittedProfile(f.draft)
	if p.ResumeMode == domain.ResumeModeFile {
		p.ResumeLink = ""
		if !p.ResumeFile.Present() && f.hasSeedResumeFile() {
			p.ResumeFile = f.seed.ResumeFile
		}
	} else {
		p.ResumeFile = domain.NoFile()
	}
	if !p.ProfilePicture.Present() && f.editMode && f.seed != nil {
		p.ProfilePicture = f.seed.ProfilePicture
	}
	return &p
}

// refreshPreview replaces the picture preview with one for the current draft.
func (f *ProfileForm) refreshPreview() {
	f.Close()
	if f.previews == nil {
		return
	}
	blob, ok := f.draft.ProfilePicture.Blob()
	if !ok {
		return
	}
	id, err := f.previews.Create(blob.Data)
	if err != nil {
		logger.Log.Debug("No preview for profile picture", "name", blob.Name, "error", err)
		return
	}
	f.preview = id
}
