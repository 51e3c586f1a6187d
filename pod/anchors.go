package pod

import (
	"fmt"
	"regexp"
	"strings"
)

// Allocator issues URL- and selector-safe anchor identifiers for one logical
// document. The registry of issued identifiers grows monotonically and lives
// for the whole processing session; it can be seeded with identifiers issued
// for a sibling document sharing the same page. Never shared between
// concurrently running sessions.
type Allocator struct {
	used map[string]struct{}
}

func NewAllocator() *Allocator {
	return &Allocator{used: make(map[string]struct{})}
}

// Seed marks identifiers issued elsewhere as taken.
func (a *Allocator) Seed(ids []string) {
	for _, id := range ids {
		a.used[id] = struct{}{}
	}
}

// Issued returns every identifier registered so far, for seeding a sibling
// document's allocator.
func (a *Allocator) Issued() []string {
	out := make([]string, 0, len(a.used))
	for id := range a.used {
		out = append(out, id)
	}
	return out
}

var (
	entityRe    = regexp.MustCompile(`&[A-Za-z0-9#]+;`)
	spanRe      = regexp.MustCompile(`<[^<>]*>`)
	asciiLetter = regexp.MustCompile(`[A-Za-z]`)
	leadingRe   = regexp.MustCompile(`^[^A-Za-z]+`)
	invalidRe   = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
)

// Normalize turns arbitrary heading or route text into a valid anchor
// identifier, without consulting the registry. The result always matches
// ^[a-zA-Z][-a-zA-Z0-9_]*$.
func Normalize(text string) string {
	s := entityRe.ReplaceAllString(text, "")
	// markup spans may nest - strip inside out
	for {
		t := spanRe.ReplaceAllString(s, "")
		if t == s {
			break
		}
		s = t
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if !asciiLetter.MatchString(s) {
		// keep the identifier non-empty and starting with a letter
		s = "pod" + s
	}
	s = leadingRe.ReplaceAllString(s, "")
	s = invalidRe.ReplaceAllString(s, "-")
	return s
}

// Allocate returns an anchor identifier for text. With unique set the result
// is guaranteed distinct from every previously registered identifier,
// disambiguated by a numeric suffix, and is registered. Without it the bare
// normalized string is returned and the registry is left untouched - callers
// use that mode for cross-references where matching the target matters more
// than collision freedom.
func (a *Allocator) Allocate(text string, unique bool) string {
	id := Normalize(text)
	if !unique {
		return id
	}
	if _, taken := a.used[id]; !taken {
		a.used[id] = struct{}{}
		return id
	}
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s%d", id, i)
		if _, taken := a.used[candidate]; !taken {
			a.used[candidate] = struct{}{}
			return candidate
		}
	}
}
