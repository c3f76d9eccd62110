package domain

import "context"

// BioStatus drives the character counter shown under the bio field.
type BioStatus struct {
	Count   int  `json:"count"`
	InRange bool `json:"inRange"`
}

// FormState is a read-only copy of a form, for rendering.
type FormState struct {
	EditMode       bool                     `json:"editMode"`
	Draft          ProfileDraft             `json:"draft"`
	Fields         map[FieldName]FieldState `json:"fields"`
	VisibleErrors  map[FieldName]string     `json:"visibleErrors"`
	Valid          bool                     `json:"valid"`
	Bio            BioStatus                `json:"bio"`
	PicturePreview string                   `json:"picturePreview,omitempty"`
}

// LinkInfo annotates a profile link with the platform it points to.
type LinkInfo struct {
	Field    FieldName `json:"field"`
	URL      string    `json:"url"`
	Platform string    `json:"platform,omitempty"`
	Username string    `json:"username,omitempty"`
}

// ProfileView is the read-only rendering of a committed profile.
type ProfileView struct {
	Profile        *CommittedProfile `json:"profile"`
	PicturePreview string            `json:"picturePreview,omitempty"`
	Links          []LinkInfo        `json:"links"`
}

// EditorState is everything a client needs to render the page.
type EditorState struct {
	Mode AppMode      `json:"mode"`
	Form *FormState   `json:"form,omitempty"`
	View *ProfileView `json:"view,omitempty"`
}

// PreviewRegistry hands out display handles for in-memory images.
// Every handle must be released once its owner no longer shows it.
type PreviewRegistry interface {
	Create(data []byte) (string, error)
	Release(id string)
}

// ProfileEditor is the per-session view/edit state machine.
type ProfileEditor interface {
	Mode() AppMode
	State() EditorState
	SetField(name FieldName, value string) error
	SetFileField(name FieldName, file *FileBlob) error
	Blur(name FieldName) error
	ToggleResumeMode(mode ResumeMode) error
	Submit() (*CommittedProfile, error)
	Cancel() error
	Edit() error
	Profile() *CommittedProfile
	Close()
}

// SessionRepository keeps one editor per browser session. Operations on a
// single session are serialised.
type SessionRepository interface {
	Create(ctx context.Context) (string, error)
	WithSession(ctx context.Context, id string, fn func(ProfileEditor) error) error
	Delete(ctx context.Context, id string) error
	Len() int
}

// ProfileUsecase is the session-scoped entry point used by the transport.
type ProfileUsecase interface {
	EnsureSession(ctx context.Context, id string) (string, error)
	State(ctx context.Context, sessionID string) (*EditorState, error)
	SetField(ctx context.Context, sessionID string, name string, value string) (*EditorState, error)
	SetFile(ctx context.Context, sessionID string, name string, file *FileBlob) (*EditorState, error)
	Blur(ctx context.Context, sessionID string, name string) (*EditorState, error)
	ToggleResumeMode(ctx context.Context, sessionID string, mode string) (*EditorState, error)
	Submit(ctx context.Context, sessionID string) (*EditorState, error)
	Cancel(ctx context.Context, sessionID string) (*EditorState, error)
	Edit(ctx context.Context, sessionID string) (*EditorState, error)
}

// PreviewReader serves preview images by handle.
type PreviewReader interface {
	Open(id string) ([]byte, string, error)
}
