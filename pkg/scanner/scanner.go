package scanner

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotf/pkg/directive"
	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/types"
)

// Diagnostic is a non-fatal problem found in a source file.
type Diagnostic struct {
	File string
	Line int
	Err  *errors.DotfError
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s @ %s:%d", d.Err.Message, d.File, d.Line)
}

// Result is what a full pass over one file produces besides its lines.
type Result struct {
	// Location is the resolved destination path.
	Location    string
	Diagnostics []Diagnostic
	Lines       int
	Emitted     int
}

// EmitFunc receives each emitted line, terminator included.
type EmitFunc func(line []byte) error

// Scanner evaluates directives against a fixed tag set and delimiter.
type Scanner struct {
	tags types.TagSet
	key  string
	home string
}

type state struct {
	mode     types.Mode
	location string
}

// New creates a Scanner. home anchors default and relative destinations.
func New(tags types.TagSet, key, home string) *Scanner {
	return &Scanner{tags: tags, key: key, home: home}
}

// DefaultLocation is where a file goes when no location directive applies:
// its basename, dot-prefixed if needed, in the home directory.
func DefaultLocation(name, home string) string {
	base := filepath.Base(name)
	if !strings.HasPrefix(base, ".") {
		base = "." + base
	}
	return filepath.Join(home, base)
}

func (s *Scanner) initial(name string) state {
	mode := types.ModeStop
	if s.tags.Has(types.UniversalTag) {
		mode = types.ModeGo
	}
	return state{mode: mode, location: DefaultLocation(name, s.home)}
}

// apply is the fold step for a parsed directive.
func (s *Scanner) apply(st state, d directive.Directive) state {
	matches := s.tags.Matches(d.Tags())

	switch d.Command {
	case directive.Exclude:
		if matches {
			st.mode = types.ModeStop
		}
	case directive.Include:
		if matches {
			st.mode = types.ModeGo
		}
	case directive.Only:
		if matches {
			st.mode = types.ModeGo
		} else {
			st.mode = types.ModeStop
		}
	case directive.Location:
		if matches {
			st.location = s.resolve(d.Path())
		}
	}
	return st
}

// resolve expands ~ and anchors relative paths at the home directory.
func (s *Scanner) resolve(path string) string {
	switch {
	case path == "~":
		return s.home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(s.home, path[2:])
	case filepath.IsAbs(path):
		return filepath.Clean(path)
	default:
		return filepath.Join(s.home, path)
	}
}

// Scan reads r line by line, calling emit for every line that is in go mode
// after its own directive has been applied. A nil emit only resolves the
// location. name identifies the file in diagnostics and seeds the default
// location. Errors from r or emit abort the scan.
func (s *Scanner) Scan(name string, r io.Reader, emit EmitFunc) (Result, error) {
	st := s.initial(name)
	res := Result{}
	br := bufio.NewReader(r)

	for {
		line, readErr := br.ReadBytes('\n')
		if len(line) > 0 {
			res.Lines++

			if body, ok := directive.Find(string(line), s.key); ok {
				d, err := directive.Parse(body)
				switch {
				case err != nil:
					res.Diagnostics = append(res.Diagnostics, diagnostic(name, res.Lines, err))
				case !d.Command.Known():
					res.Diagnostics = append(res.Diagnostics, Diagnostic{
						File: name,
						Line: res.Lines,
						Err:  errors.Newf(errors.ErrDirectiveUnknown, "Unrecognized command: %s", d.Command),
					})
				default:
					st = s.apply(st, d)
				}
			}

			if st.mode == types.ModeGo {
				res.Emitted++
				if emit != nil {
					if err := emit(line); err != nil {
						return res, err
					}
				}
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return res, errors.Wrapf(readErr, errors.ErrFileRead, "Error reading %s", name)
		}
	}

	res.Location = st.location
	return res, nil
}

// ScanFile opens path on fsys and scans it.
func (s *Scanner) ScanFile(fsys types.FS, path string, emit EmitFunc) (Result, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrFileRead, "Error opening file %s", path)
	}
	defer func() { _ = f.Close() }()

	return s.Scan(path, f, emit)
}

// Location resolves the destination of the file at path without emitting.
func (s *Scanner) Location(fsys types.FS, path string) (Result, error) {
	return s.ScanFile(fsys, path, nil)
}

func diagnostic(name string, line int, err error) Diagnostic {
	var de *errors.DotfError
	if e, ok := err.(*errors.DotfError); ok {
		de = e
	} else {
		de = errors.Wrap(err, errors.ErrDirectiveMalformed, "Malformed directive")
	}
	return Diagnostic{File: name, Line: line, Err: de}
}
