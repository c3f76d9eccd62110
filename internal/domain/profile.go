package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FieldName is the wire name of a draft field.
type FieldName string

const (
	FieldUsername       FieldName = "username"
	FieldBio            FieldName = "bio"
	FieldPortfolioLink  FieldName = "portfolioLink"
	FieldResumeFile     FieldName = "resumeFile"
	FieldResumeLink     FieldName = "resumeLink"
	FieldProfilePicture FieldName = "profilePicture"
	FieldEmail          FieldName = "email"
	FieldLinkedIn       FieldName = "linkedIn"
	FieldLeetCode       FieldName = "leetCode"
	FieldCodeChef       FieldName = "codeChef"
	FieldGeeksforGeeks  FieldName = "geeksforGeeks"
)

// DraftFields lists every draft field in form order.
var DraftFields = []FieldName{
	FieldUsername,
	FieldBio,
	FieldPortfolioLink,
	FieldResumeFile,
	FieldResumeLink,
	FieldProfilePicture,
	FieldEmail,
	FieldLinkedIn,
	FieldLeetCode,
	FieldCodeChef,
	FieldGeeksforGeeks,
}

// ParseFieldName resolves a wire name to a known field.
func ParseFieldName(s string) (FieldName, error) {
	for _, f := range DraftFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// IsFile reports whether the field holds a file reference rather than text.
func (f FieldName) IsFile() bool {
	return f == FieldResumeFile || f == FieldProfilePicture
}

type ResumeMode string

const (
	ResumeModeFile ResumeMode = "file"
	ResumeModeLink ResumeMode = "link"
)

func ParseResumeMode(s string) (ResumeMode, error) {
	switch ResumeMode(strings.ToLower(strings.TrimSpace(s))) {
	case ResumeModeFile:
		return ResumeModeFile, nil
	case ResumeModeLink:
		return ResumeModeLink, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidResumeMode, s)
}

// AppMode is the state of the view/edit coordinator.
type AppMode string

const (
	ModeEditing AppMode = "editing"
	ModeViewing AppMode = "viewing"
)

// FileBlob is an in-memory file selected by the user.
// Data must not be modified once the blob is handed to a form.
type FileBlob struct {
	Name string `json:"name"`
	Type string `json:"type"` // declared MIME type
	Size int64  `json:"size"`
	Data []byte `json:"-"`
}

func (b *FileBlob) MIMEType() string {
	if b == nil {
		return ""
	}
	return b.Type
}

func (b *FileBlob) ByteSize() int64 {
	if b == nil {
		return 0
	}
	return b.Size
}

type FileRefKind int

const (
	FileNone FileRefKind = iota
	FileNew
	FileExisting
)

func (k FileRefKind) String() string {
	switch k {
	case FileNew:
		return "new"
	case FileExisting:
		return "existing"
	default:
		return "none"
	}
}

// FileRef is either nothing, a newly chosen file, or a reference to a
// file recorded earlier (e.g. an image kept from a previous save).
type FileRef struct {
	kind FileRefKind
	blob *FileBlob
	ref  string
}

func NoFile() FileRef { return FileRef{} }

func NewFile(b FileBlob) FileRef {
	return FileRef{kind: FileNew, blob: &b}
}

func ExistingFile(ref string) FileRef {
	if ref == "" {
		return FileRef{}
	}
	return FileRef{kind: FileExisting, ref: ref}
}

func (r FileRef) Kind() FileRefKind { return r.kind }
func (r FileRef) Present() bool     { return r.kind != FileNone }

// Blob returns the new file, if that is what r holds.
func (r FileRef) Blob() (*FileBlob, bool) {
	if r.kind != FileNew {
		return nil, false
	}
	b := *r.blob
	return &b, true
}

// Ref returns the existing-file reference, if that is what r holds.
func (r FileRef) Ref() (string, bool) {
	if r.kind != FileExisting {
		return "", false
	}
	return r.ref, true
}

type fileRefJSON struct {
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
	Size int64  `json:"size,omitempty"`
	Ref  string `json:"ref,omitempty"`
}

func (r FileRef) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case FileNew:
		return json.Marshal(fileRefJSON{Kind: r.kind.String(), Name: r.blob.Name, Type: r.blob.Type, Size: r.blob.Size})
	case FileExisting:
		return json.Marshal(fileRefJSON{Kind: r.kind.String(), Ref: r.ref})
	}
	return []byte("null"), nil
}

// ProfileDraft is the mutable form content. The validate tags describe a
// committable profile and are checked on CommittedProfile.
type ProfileDraft struct {
	Username       string     `json:"username" validate:"required_trim"`
	Bio            string     `json:"bio" validate:"required_trim,trimmed_len=150:200"`
	PortfolioLink  string     `json:"portfolioLink" validate:"abs_url"`
	ResumeMode     ResumeMode `json:"resumeMode" validate:"oneof=file link"`
	ResumeFile     FileRef    `json:"resumeFile"`
	ResumeLink     string     `json:"resumeLink" validate:"abs_url"`
	ProfilePicture FileRef    `json:"profilePicture"`
	Email          string     `json:"email" validate:"required_trim,loose_email"`
	LinkedIn       string     `json:"linkedIn" validate:"required_trim,abs_url"`
	LeetCode       string     `json:"leetCode" validate:"required_trim,abs_url"`
	CodeChef       string     `json:"codeChef" validate:"abs_url"`
	GeeksforGeeks  string     `json:"geeksforGeeks" validate:"abs_url"`
}

// DefaultDraft is the content of a fresh form.
func DefaultDraft() ProfileDraft {
	return ProfileDraft{ResumeMode: ResumeModeFile}
}

// Text returns the value of a text field.
func (d *ProfileDraft) Text(f FieldName) (string, error) {
	p, err := d.textField(f)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// SetText overwrites a text field.
func (d *ProfileDraft) SetText(f FieldName, value string) error {
	p, err := d.textField(f)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// SetFile overwrites a file field.
func (d *ProfileDraft) SetFile(f FieldName, ref FileRef) error {
	switch f {
	case FieldResumeFile:
		d.ResumeFile = ref
	case FieldProfilePicture:
		d.ProfilePicture = ref
	default:
		if _, err := ParseFieldName(string(f)); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", ErrNotFileField, f)
	}
	return nil
}

func (d *ProfileDraft) textField(f FieldName) (*string, error) {
	switch f {
	case FieldUsername:
		return &d.Username, nil
	case FieldBio:
		return &d.Bio, nil
	case FieldPortfolioLink:
		return &d.PortfolioLink, nil
	case FieldResumeLink:
		return &d.ResumeLink, nil
	case FieldEmail:
		return &d.Email, nil
	case FieldLinkedIn:
		return &d.LinkedIn, nil
	case FieldLeetCode:
		return &d.LeetCode, nil
	case FieldCodeChef:
		return &d.CodeChef, nil
	case FieldGeeksforGeeks:
		return &d.GeeksforGeeks, nil
	case FieldResumeFile, FieldProfilePicture:
		return nil, fmt.Errorf("%w: %s", ErrNotTextField, f)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
}

// CommittedProfile is an accepted snapshot of a draft. It is only created
// by a successful submit and replaced wholesale afterwards.
type CommittedProfile ProfileDraft

// Draft returns a copy of the snapshot usable as form seed data.
func (p *CommittedProfile) Draft() ProfileDraft {
	return ProfileDraft(*p)
}

// FieldState is the per-field interaction state of a form.
type FieldState struct {
	Touched bool   `json:"touched"`
	Error   string `json:"error,omitempty"`
}

// ValidationFailure is returned by a rejected submit.
type ValidationFailure struct {
	Errors map[FieldName]string
}

func (e *ValidationFailure) Error() string {
	names := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return "profile has invalid fields: " + strings.Join(names, ", ")
}

var (
	ErrUnknownField      = errors.New("unknown profile field")
	ErrNotFileField      = errors.New("field does not hold a file")
	ErrNotTextField      = errors.New("field holds a file")
	ErrInvalidResumeMode = errors.New("invalid resume mode")
	ErrInvalidTransition = errors.New("operation not allowed in current mode")
	ErrSessionNotFound   = errors.New("session not found")
)
