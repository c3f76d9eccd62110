package usecase_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"profile-editor/internal/domain"

	"github.com/stretchr/testify/require"
)

// fakePreviews hands out sequential handles and tracks which are live.
type fakePreviews struct {
	mu     sync.Mutex
	next   int
	live   map[string]bool
	fail   bool
	events []string
}

func newFakePreviews() *fakePreviews {
	return &fakePreviews{live: map[string]bool{}}
}

func (p *fakePreviews) Create(data []byte) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return "", errors.New("cannot decode")
	}
	p.next++
	id := fmt.Sprintf("preview-%d", p.next)
	p.live[id] = true
	p.events = append(p.events, "create:"+id)
	return id, nil
}

func (p *fakePreviews) Release(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.live, id)
	p.events = append(p.events, "release:"+id)
}

func (p *fakePreviews) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}

func validBio() string {
	return strings.Repeat("b", 160)
}

func jpegBlob(name string, size int64) *domain.FileBlob {
	return &domain.FileBlob{Name: name, Type: "image/jpeg", Size: size, Data: []byte{0xff, 0xd8, 0xff}}
}

func pdfBlob() *domain.FileBlob {
	return &domain.FileBlob{Name: "cv.pdf", Type: "application/pdf", Size: 1024, Data: []byte("%PDF")}
}

type fieldSetter interface {
	SetField(name domain.FieldName, value string) error
	SetFileField(name domain.FieldName, file *domain.FileBlob) error
}

// fillValid enters a complete, valid profile in file resume mode.
func fillValid(t *testing.T, f fieldSetter) {
	t.Helper()
	require.NoError(t, f.SetField(domain.FieldUsername, "jane"))
	require.NoError(t, f.SetField(domain.FieldBio, validBio()))
	require.NoError(t, f.SetField(domain.FieldEmail, "jane@example.com"))
	require.NoError(t, f.SetField(domain.FieldLinkedIn, "https://linkedin.com/in/jane"))
	require.NoError(t, f.SetField(domain.FieldLeetCode, "https://leetcode.com/jane"))
	require.NoError(t, f.SetFileField(domain.FieldResumeFile, pdfBlob()))
	require.NoError(t, f.SetFileField(domain.FieldProfilePicture, jpegBlob("me.jpg", 100*1024)))
}
