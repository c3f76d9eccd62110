package usecase

import (
	"fmt"

	"profile-editor/internal/domain"
	"profile-editor/pkg/logger"
	"profile-editor/pkg/platform"

	"github.com/go-playground/validator/v10"
)

// profileEditor switches between the edit form and the read-only view
// and holds the last committed profile.
type profileEditor struct {
	mode    domain.AppMode
	profile *domain.CommittedProfile
	form    *ProfileForm

	// preview handle of the committed picture while viewing
	viewPreview string

	previews domain.PreviewRegistry
	validate *validator.Validate
}

// NewProfileEditor starts a session editor in editing mode with no
// profile. validate must have the profile rules registered, see
// RegisterProfileRules.
func NewProfileEditor(previews domain.PreviewRegistry, validate *validator.Validate) domain.ProfileEditor {
	e := &profileEditor{
		mode:     domain.ModeEditing,
		previews: previews,
		validate: validate,
	}
	e.form = e.newForm(nil, false)
	return e
}

func (e *profileEditor) newForm(seed *domain.CommittedProfile, editMode bool) *ProfileForm {
	return NewProfileForm(seed, editMode, e.previews, e.handleSave)
}

// handleSave is the form's save callback: a profile commits, nil cancels.
func (e *profileEditor) handleSave(p *domain.CommittedProfile) error {
	if p == nil {
		e.form.Close()
		if e.profile != nil {
			e.enterViewing()
			return nil
		}
		e.form = e.newForm(nil, false)
		return nil
	}

	if e.validate != nil {
		if err := e.validate.Struct(p); err != nil {
			logger.Log.Error("Refusing to commit inconsistent profile", "error", err)
			return fmt.Errorf("commit profile: %w", err)
		}
	}

	e.form.Close()
	e.profile = p
	e.enterViewing()
	logger.Log.Info("Profile committed", "username", p.Username)
	return nil
}

func (e *profileEditor) enterViewing() {
	e.mode = domain.ModeViewing
	e.form = nil
	e.releaseViewPreview()
	if e.previews == nil {
		return
	}
	if blob, ok := e.profile.ProfilePicture.Blob(); ok {
		id, err := e.previews.Create(blob.Data)
		if err != nil {
			logger.Log.Debug("No preview for committed picture", "error", err)
			return
		}
		e.viewPreview = id
	}
}

func (e *profileEditor) releaseViewPreview() {
	if e.viewPreview != "" && e.previews != nil {
		e.previews.Release(e.viewPreview)
	}
	e.viewPreview = ""
}

func (e *profileEditor) editing() (*ProfileForm, error) {
	if e.mode != domain.ModeEditing || e.form == nil {
		return nil, fmt.Errorf("%w: not editing", domain.ErrInvalidTransition)
	}
	return e.form, nil
}

func (e *profileEditor) Mode() domain.AppMode { return e.mode }

func (e *profileEditor) Profile() *domain.CommittedProfile { return e.profile }

func (e *profileEditor) State() domain.EditorState {
	state := domain.EditorState{Mode: e.mode}
	if e.mode == domain.ModeEditing {
		fs := e.form.State()
		state.Form = &fs
		return state
	}
	state.View = &domain.ProfileView{
		Profile:        e.profile,
		PicturePreview: e.viewPreview,
		Links:          profileLinks(e.profile),
	}
	return state
}

func (e *profileEditor) SetField(name domain.FieldName, value string) error {
	form, err := e.editing()
	if err != nil {
		return err
	}
	return form.SetField(name, value)
}

func (e *profileEditor) SetFileField(name domain.FieldName, file *domain.FileBlob) error {
	form, err := e.editing()
	if err != nil {
		return err
	}
	return form.SetFileField(name, file)
}

func (e *profileEditor) Blur(name domain.FieldName) error {
	form, err := e.editing()
	if err != nil {
		return err
	}
	return form.Blur(name)
}

func (e *profileEditor) ToggleResumeMode(mode domain.ResumeMode) error {
	form, err := e.editing()
	if err != nil {
		return err
	}
	return form.ToggleResumeMode(mode)
}

func (e *profileEditor) Submit() (*domain.CommittedProfile, error) {
	form, err := e.editing()
	if err != nil {
		return nil, err
	}
	return form.Submit()
}

func (e *profileEditor) Cancel() error {
	form, err := e.editing()
	if err != nil {
		return err
	}
	return form.Cancel()
}

// Edit re-enters editing, seeding the form from the committed profile.
func (e *profileEditor) Edit() error {
	if e.mode != domain.ModeViewing {
		return fmt.Errorf("%w: not viewing", domain.ErrInvalidTransition)
	}
	e.releaseViewPreview()
	e.mode = domain.ModeEditing
	e.form = e.newForm(e.profile, true)
	return nil
}

// Close releases every preview handle the editor holds.
func (e *profileEditor) Close() {
	if e.form != nil {
		e.form.Close()
	}
	e.releaseViewPreview()
}

// profileLinks lists the non-empty links of a profile in display order.
func profileLinks(p *domain.CommittedProfile) []domain.LinkInfo {
	candidates := []struct {
		field domain.FieldName
		url   string
	}{
		{domain.FieldPortfolioLink, p.PortfolioLink},
		{domain.FieldResumeLink, p.ResumeLink},
		{domain.FieldLinkedIn, p.LinkedIn},
		{domain.FieldLeetCode, p.LeetCode},
		{domain.FieldCodeChef, p.CodeChef},
		{domain.FieldGeeksforGeeks, p.GeeksforGeeks},
	}

	links := make([]domain.LinkInfo, 0, len(candidates))
	for _, c := range candidates {
		if c.url == "" {
			continue
		}
		link := domain.LinkInfo{Field: c.field, URL: c.url}
		if info, ok := platform.Detect(c.url); ok {
			link.Platform = info.Platform
			link.Username = info.Username
		}
		links = append(links, link)
	}
	return links
}
