// Package platform recognises links to the coding and professional
// profiles the editor asks for.
package platform

import (
	"regexp"
	"strings"
)

const (
	LinkedIn      = "linkedin"
	LeetCode      = "leetcode"
	CodeChef      = "codechef"
	GeeksforGeeks = "geeksforgeeks"
)

// Info describes a recognised profile link.
type Info struct {
	Platform string
	Username string
}

type matcher struct {
	name     string
	host     []string
	pattern  *regexp.Regexp
	excluded []string
}

var matchers = []matcher{
	{
		name:    LinkedIn,
		host:    []string{"linkedin.com/in/"},
		pattern: regexp.MustCompile(`(?i)linkedin\.com/in/([^/?#]+)`),
	},
	{
		name:     LeetCode,
		host:     []string{"leetcode.com/"},
		pattern:  regexp.MustCompile(`(?i)leetcode\.com/(?:u/)?([a-zA-Z0-9_-]+)`),
		excluded: []string{"/problems/", "/contest/", "/discuss/", "/playground/", "/explore/", "/study-plan/"},
	},
	{
		name:    CodeChef,
		host:    []string{"codechef.com"},
		pattern: regexp.MustCompile(`(?i)codechef\.com/users/([a-zA-Z0-9_]+)`),
	},
	{
		name:    GeeksforGeeks,
		host:    []string{"geeksforgeeks.org", "gfg.dev"},
		pattern: regexp.MustCompile(`(?i)(?:geeksforgeeks\.org|gfg\.dev)/user/([a-zA-Z0-9_]+)`),
	},
}

// Detect returns the platform and username a URL points to.
func Detect(urlStr string) (Info, bool) {
	lower := strings.ToLower(urlStr)
	for _, m := range matchers {
		if !containsAny(lower, m.host) || containsAny(lower, m.excluded) {
			continue
		}
		sub := m.pattern.FindStringSubmatch(urlStr)
		if len(sub) < 2 {
			continue
		}
		return Info{Platform: m.name, Username: sub[1]}, true
	}
	return Info{}, false
}

// Match reports whether urlStr is a profile link for the named platform.
func Match(name, urlStr string) bool {
	info, ok := Detect(urlStr)
	return ok && info.Platform == name
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
