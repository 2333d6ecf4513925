package directive

import (
	"strings"

	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/kballard/go-shellquote"
)

// Command names a directive's action.
type Command string

const (
	// Exclude stops emitting lines when its tags match.
	Exclude Command = "exclude"
	// Include starts emitting lines when its tags match.
	Include Command = "include"
	// Only emits lines when its tags match and stops otherwise.
	Only Command = "only"
	// Location overrides the destination path when its tags match.
	Location Command = "location"
)

// Known reports whether c is one of the four recognized commands.
func (c Command) Known() bool {
	switch c {
	case Exclude, Include, Only, Location:
		return true
	}
	return false
}

// Directive is one parsed annotation.
type Directive struct {
	Command Command
	Args    []string
}

// Tags returns the tag arguments gating the directive. For location the
// first argument is the path and is not a tag.
func (d Directive) Tags() []string {
	if d.Command == Location {
		if len(d.Args) == 0 {
			return nil
		}
		return d.Args[1:]
	}
	return d.Args
}

// Path returns the destination argument of a location directive.
func (d Directive) Path() string {
	if d.Command != Location || len(d.Args) == 0 {
		return ""
	}
	return d.Args[0]
}

// Find returns the text between the first occurrence of key on line and the
// next non-overlapping occurrence after it. key is matched literally.
func Find(line, key string) (string, bool) {
	if key == "" {
		return "", false
	}

	start := strings.Index(line, key)
	if start < 0 {
		return "", false
	}

	rest := line[start+len(key):]
	end := strings.Index(rest, key)
	if end < 0 {
		return "", false
	}

	return rest[:end], true
}

// Parse splits a directive body into command and arguments. An unknown
// command is not an error here; callers decide how to report it.
func Parse(body string) (Directive, error) {
	words, err := shellquote.Split(body)
	if err != nil {
		return Directive{}, errors.Wrapf(err, errors.ErrDirectiveMalformed, "Malformed directive %q", strings.TrimSpace(body))
	}
	if len(words) == 0 {
		return Directive{}, errors.New(errors.ErrDirectiveMalformed, "Empty directive")
	}

	d := Directive{Command: Command(words[0]), Args: words[1:]}
	if d.Command == Location && len(d.Args) == 0 {
		return Directive{}, errors.New(errors.ErrDirectiveMalformed, "location directive needs a path")
	}

	return d, nil
}
