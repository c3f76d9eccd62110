package security

import (
	"bytes"
	"strings"
)

// Magic byte signatures of the upload types the editor expects
var magicBytes = []struct {
	mime       string
	signatures [][]byte
}{
	{"image/jpeg", [][]byte{{0xFF, 0xD8, 0xFF}}},
	{"image/png", [][]byte{{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}}},
	{"image/gif", [][]byte{{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}}, // GIF87a & GIF89a
	{"application/pdf", [][]byte{{0x25, 0x50, 0x44, 0x46}}},                                                // %PDF
	{"application/msword", [][]byte{{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}},                     // OLE Compound Document
	{"application/zip", [][]byte{{0x50, 0x4B, 0x03, 0x04}}},                                                // ZIP (PK..), also DOCX
}

// genericTypes carry no information about the content
var genericTypes = map[string]bool{
	"":                         true,
	"application/octet-stream": true,
}

// DetectContentType identifies a file from its leading bytes. It returns
// an empty string when no signature matches.
func DetectContentType(data []byte) string {
	for _, m := range magicBytes {
		for _, sig := range m.signatures {
			if bytes.HasPrefix(data, sig) {
				return m.mime
			}
		}
	}
	return ""
}

// DeclaredType returns the type a client declared for an upload. When the
// client sent none, or only a generic binary type, the content decides.
func DeclaredType(declared string, data []byte) string {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	if !genericTypes[declared] {
		return declared
	}
	if detected := DetectContentType(data); detected != "" {
		return detected
	}
	return declared
}
