package quiver

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Mode selects which operations a Store allows. A Store is opened for
// reading or writing, never both.
type Mode int

const (
	ModeRead Mode = iota + 1
	ModeWrite
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Store is a handle to one Quiver file in a fixed access mode.
//
// Tags are snapshotted by a single scan at open time. Appends extend the
// snapshot so duplicate detection works across a whole write session, but
// mutation of the file by someone else between open and append is not
// detected. Single writer per file is assumed.
type Store struct {
	// Path of the Quiver file. For ModeWrite it does not have to exist
	// yet; the first append creates it.
	Path string

	Mode Mode

	tags []string
}

// Open opens path in the given mode. Opening a non-existent path for
// reading is not an error: it yields a handle with an empty tag list.
func Open(path string, mode Mode) (*Store, error) {
	if mode != ModeRead && mode != ModeWrite {
		return nil, fmt.Errorf("open %s: mode must be ModeRead or ModeWrite: %w", path, ErrWrongMode)
	}
	tags, err := readTags(path)
	if err != nil {
		return nil, err
	}
	return &Store{Path: path, Mode: mode, tags: tags}, nil
}

// readTags scans path and collects the tag of every tag marker in
// encounter order. The scan does not deduplicate: uniqueness is an
// append-time invariant, not a read-time guarantee, so a hand-edited or
// corrupted file can legitimately show duplicates here. Markers with no
// tag token are not indexed.
func readTags(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var tags []string
	sc := newScanner(f)
	for sc.Scan() {
		if class, toks := classify(sc.Text()); class == classTag {
			if tag := markerTag(toks); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning tags of %s: %w", path, err)
	}
	return tags, nil
}

// Tags returns a copy of the tag snapshot, in file order.
func (s *Store) Tags() []string {
	return append([]string{}, s.tags...)
}

// Size returns the number of records in the snapshot.
func (s *Store) Size() int {
	return len(s.tags)
}

func (s *Store) hasTag(tag string) bool {
	for _, t := range s.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Append writes one record: the tag marker, the score marker if score is
// non-empty, then the body lines. score is the raw payload of the score
// marker, e.g. "plddt=92.1|rmsd=0.8". Body lines may or may not carry
// their own terminator; each is written with exactly one.
//
// The tag must not already exist in the handle's snapshot. There is no
// rollback on a partial write; a failed append can leave a malformed
// trailing record behind.
func (s *Store) Append(tag string, score string, lines []string) error {
	if s.Mode != ModeWrite {
		return fmt.Errorf("append to %s opened in %s mode: %w", s.Path, s.Mode, ErrWrongMode)
	}
	if tag == "" {
		return fmt.Errorf("append to %s: tag must not be empty", s.Path)
	}
	if s.hasTag(tag) {
		return fmt.Errorf("append %q to %s: %w", tag, s.Path, ErrDuplicateTag)
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s %s\n", tagMarker, tag)
	if score != "" {
		fmt.Fprintf(w, "%s %s %s\n", scoreMarker, tag, score)
	}
	for _, line := range lines {
		w.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			w.WriteByte('\n')
		}
	}
	err = w.Flush()
	errClose := f.Close()
	if err == nil {
		err = errClose
	}
	if err != nil {
		return fmt.Errorf("append %q to %s: %w", tag, s.Path, err)
	}
	s.tags = append(s.tags, tag)
	return nil
}
