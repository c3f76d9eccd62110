package validation_test

import (
	"strings"
	"testing"

	"profile-editor/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFile struct {
	mime string
	size int64
}

func (f testFile) MIMEType() string { return f.mime }
func (f testFile) ByteSize() int64  { return f.size }

type blobFile struct {
	mime string
	size int64
}

func (f *blobFile) MIMEType() string { return f.mime }
func (f *blobFile) ByteSize() int64  { return f.size }

func TestIsRequired(t *testing.T) {
	assert.False(t, validation.IsRequired(""))
	assert.False(t, validation.IsRequired("   \t\n"))
	assert.True(t, validation.IsRequired(" a "))
}

func TestValidateLength(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"149 chars", strings.Repeat("a", 149), false},
		{"150 chars", strings.Repeat("a", 150), true},
		{"200 chars", strings.Repeat("a", 200), true},
		{"201 chars", strings.Repeat("a", 201), false},
		{"padding is trimmed", "  " + strings.Repeat("a", 149) + "  ", false},
		{"multi-byte counts runes", strings.Repeat("é", 150), true},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validation.ValidateLength(tc.value, 150, 200))
		})
	}

	t.Run("Should accept empty when min is zero", func(t *testing.T) {
		assert.True(t, validation.ValidateLength("", 0, 10))
	})
}

func TestIsValidURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://localhost:8080/path?q=1",
		"  https://linkedin.com/in/jane  ",
		"mailto:jane@example.com",
		"ftp://files.example.com/cv.pdf",
		"http:example.com",
		"https:/example.com",
		"http:///path",
		"HTTPS://Example.com",
	}
	for _, v := range valid {
		assert.True(t, validation.IsValidURL(v), v)
	}

	invalid := []string{
		"",
		"   ",
		"not a url",
		"example.com",
		"//example.com",
		"https://",
		"http://:80",
		"https:",
		"https:///",
		"1http://example.com",
	}
	for _, v := range invalid {
		assert.False(t, validation.IsValidURL(v), v)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, validation.IsValidEmail("a@b.co"))
	assert.True(t, validation.IsValidEmail("jane.doe+tag@mail.example.org"))

	assert.False(t, validation.IsValidEmail(""))
	assert.False(t, validation.IsValidEmail("invalid-email"))
	assert.False(t, validation.IsValidEmail("a@b"))
	assert.False(t, validation.IsValidEmail("a b@c.de"))
	assert.False(t, validation.IsValidEmail("@b.co"))
	assert.False(t, validation.IsValidEmail("a@@b.co"))

	t.Run("Should reject Unicode whitespace", func(t *testing.T) {
		assert.False(t, validation.IsValidEmail("jane\u00a0doe@example.com"))
		assert.False(t, validation.IsValidEmail("jane@exa\u2003mple.com"))
		assert.False(t, validation.IsValidEmail("jane@example.c\ufeffom"))
		assert.False(t, validation.IsValidEmail("jane\vdoe@example.com"))
	})
}

func TestFileChecks(t *testing.T) {
	allowed := []string{"image/jpeg", "image/jpg"}

	t.Run("Should check declared MIME type", func(t *testing.T) {
		assert.True(t, validation.IsValidFileType(testFile{mime: "image/jpeg"}, allowed))
		assert.True(t, validation.IsValidFileType(testFile{mime: "image/jpg"}, allowed))
		assert.False(t, validation.IsValidFileType(testFile{mime: "image/png"}, allowed))
		assert.False(t, validation.IsValidFileType(testFile{mime: ""}, allowed))
	})

	t.Run("Should accept size equal to the limit", func(t *testing.T) {
		assert.True(t, validation.IsValidFileSize(testFile{size: 2 << 20}, 2<<20))
		assert.False(t, validation.IsValidFileSize(testFile{size: 2<<20 + 1}, 2<<20))
	})

	t.Run("Should reject missing file", func(t *testing.T) {
		assert.False(t, validation.IsValidFileType(nil, allowed))
		assert.False(t, validation.IsValidFileSize(nil, 1))
	})

	t.Run("Should treat a typed nil pointer as missing", func(t *testing.T) {
		var f *blobFile
		assert.NotPanics(t, func() {
			assert.False(t, validation.IsValidFileType(f, allowed))
			assert.False(t, validation.IsValidFileSize(f, 1))
		})
		assert.True(t, validation.IsValidFileType(&blobFile{mime: "image/jpeg"}, allowed))
	})
}

type taggedProfile struct {
	Username string `validate:"required_trim"`
	Bio      string `validate:"trimmed_len=3:5"`
	Website  string `validate:"abs_url"`
	Email    string `validate:"loose_email"`
}

func TestRegisterValidators(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	t.Run("Should pass a valid struct", func(t *testing.T) {
		err := v.Struct(taggedProfile{Username: "jane", Bio: "abcd"})
		assert.NoError(t, err)
	})

	t.Run("Should report every failing tag", func(t *testing.T) {
		err := v.Struct(taggedProfile{Username: "  ", Bio: "ab", Website: "nope", Email: "x@y"})
		require.Error(t, err)

		var tags []string
		for _, fe := range err.(validator.ValidationErrors) {
			tags = append(tags, fe.Tag())
		}
		assert.ElementsMatch(t, []string{"required_trim", "trimmed_len", "abs_url", "loose_email"}, tags)
	})

	t.Run("Should fail on a malformed range param", func(t *testing.T) {
		type bad struct {
			S string `validate:"trimmed_len=5"`
		}
		assert.Error(t, v.Struct(bad{S: "abcde"}))
	})
}

func TestFormatValidationErrors(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	type profile struct {
		Bio           string `validate:"trimmed_len=150:200"`
		GeeksforGeeks string `validate:"abs_url"`
		ResumeMode    string `validate:"oneof=file link"`
		SomeOther     string `validate:"required"`
	}

	err := v.Struct(profile{Bio: "short", GeeksforGeeks: "gfg", ResumeMode: "pdf"})
	msgs := validation.FormatValidationErrors(err)

	assert.Contains(t, msgs, "Bio: must be between 150 and 200 characters")
	assert.Contains(t, msgs, "GeeksforGeeks profile: is not a valid URL")
	assert.Contains(t, msgs, "Resume type: must be one of: file, link")
	assert.Contains(t, msgs, "Some Other: is required")

	t.Run("Should pass through non-validation errors", func(t *testing.T) {
		msgs := validation.FormatValidationErrors(assert.AnError)
		assert.Equal(t, []string{assert.AnError.Error()}, msgs)
	})
}
