package quiver

import (
	"fmt"
	"os"
	"strings"
)

// Body returns the body lines of the record tagged tag, in file order,
// without terminators. Score marker lines are metadata, not body, and are
// skipped. A record that has only a score marker yields an empty body.
// A tag that is not in the file fails with ErrTagNotFound.
func (s *Store) Body(tag string) ([]string, error) {
	if s.Mode != ModeRead {
		return nil, fmt.Errorf("read %s opened in %s mode: %w", s.Path, s.Mode, ErrWrongMode)
	}
	if tag == "" {
		return nil, fmt.Errorf("%s: empty tag: %w", s.Path, ErrTagNotFound)
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	found := false
	var body []string
	sc := newScanner(f)
	for sc.Scan() {
		line := sc.Text()
		class, toks := classify(line)
		if class == classTag {
			if markerTag(toks) == tag {
				found = true
				continue
			}
			if found {
				// start of the next record, do not consume it
				break
			}
			continue
		}
		if found && class != classScore {
			body = append(body, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", s.Path, err)
	}
	if !found {
		return nil, fmt.Errorf("tag %q in %s: %w", tag, s.Path, ErrTagNotFound)
	}
	return body, nil
}

// RawBlocks returns the verbatim text (markers included) of every record
// whose tag is in tags, concatenated in file order, plus the list of tags
// that actually matched, also in file order. Requested tags absent from
// the file are simply not in the matched list; diffing against the
// request to report them is the caller's job, not an error here.
func (s *Store) RawBlocks(tags []string) (string, []string, error) {
	if s.Mode != ModeRead {
		return "", nil, fmt.Errorf("read %s opened in %s mode: %w", s.Path, s.Mode, ErrWrongMode)
	}

	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		if t != "" {
			want[t] = true
		}
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	var (
		sb      strings.Builder
		matched []string
		copying bool
	)
	sc := newScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if class, toks := classify(line); class == classTag {
			cur := markerTag(toks)
			copying = want[cur]
			if copying {
				matched = append(matched, cur)
			}
		}
		if copying {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return "", nil, fmt.Errorf("scanning %s: %w", s.Path, err)
	}
	return sb.String(), matched, nil
}
