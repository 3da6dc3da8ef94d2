package quiver

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StageRename rewrites path with its tag markers replaced positionally by
// newTags (first marker gets newTags[0] and so on) and returns the path
// of the staged copy. Score markers get their tag field substituted too,
// payload untouched, and are re-emitted directly after their record's tag
// marker ahead of any body lines. Two tag markers back to back are
// malformed input and fail with ErrConsecutiveTags.
//
// The staged file is created in the same directory as path so the caller
// can finish with an atomic rename on the same volume; StageRename never
// touches the original. len(newTags) must equal the number of tag markers
// in the file.
func StageRename(path string, newTags []string) (string, error) {
	current, err := readTags(path)
	if err != nil {
		return "", err
	}
	if len(current) != len(newTags) {
		return "", fmt.Errorf("rename %s: file has %d tags, %d replacements given: %w",
			path, len(current), len(newTags), ErrTagCountMismatch)
	}

	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".rename-")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	fail := func(err error) (string, error) {
		tmp.Close()
		os.Remove(tmpPath)
		return "", err
	}

	w := bufio.NewWriter(tmp)
	writeLine := func(line string) {
		w.WriteString(line)
		w.WriteByte('\n')
	}

	// lines of the record being rewritten; score markers are held apart
	// so they land right after the substituted tag marker
	var scores, body []string
	emitRecord := func() {
		for _, line := range scores {
			writeLine(line)
		}
		for _, line := range body {
			writeLine(line)
		}
		scores, body = scores[:0], body[:0]
	}

	idx := -1
	sc := newScanner(in)
	for sc.Scan() {
		line := sc.Text()
		class, toks := classify(line)
		switch class {
		case classTag:
			if idx >= 0 && len(scores) == 0 && len(body) == 0 {
				return fail(fmt.Errorf("rename %s: tag marker %q directly follows another: %w",
					path, line, ErrConsecutiveTags))
			}
			emitRecord()
			idx++
			if idx >= len(newTags) {
				// unreachable given the count check above, unless the
				// file changed under us
				return fail(fmt.Errorf("rename %s: ran out of replacement tags at marker %d: %w",
					path, idx+1, ErrTagCountMismatch))
			}
			fmt.Fprintf(w, "%s %s\n", tagMarker, newTags[idx])
		case classScore:
			if idx < 0 {
				// stray marker before any tag, pass through
				writeLine(line)
				continue
			}
			if len(toks) > 2 {
				scores = append(scores,
					fmt.Sprintf("%s %s %s", scoreMarker, newTags[idx], strings.Join(toks[2:], " ")))
			} else {
				// too short to carry a payload, pass through unchanged
				scores = append(scores, line)
			}
		default:
			if idx < 0 {
				writeLine(line)
				continue
			}
			body = append(body, line)
		}
	}
	if err := sc.Err(); err != nil {
		return fail(fmt.Errorf("scanning %s: %w", path, err))
	}
	emitRecord()

	if err := w.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	return tmpPath, nil
}

// RenameTags stages a rewrite of path via StageRename and swaps it over
// the original with an atomic rename.
func RenameTags(path string, newTags []string) error {
	staged, err := StageRename(path, newTags)
	if err != nil {
		return err
	}
	if err := os.Rename(staged, path); err != nil {
		os.Remove(staged)
		return err
	}
	return nil
}
