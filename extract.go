package quiver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quiverfmt/quiver/atomicfile"
)

// ExtractAll writes every record of qvPath to dir, one <tag>.pdb per
// record. Files that already exist are left alone. Returns the paths
// actually written.
func ExtractAll(qvPath, dir string) ([]string, error) {
	s, err := Open(qvPath, ModeRead)
	if err != nil {
		return nil, err
	}
	var written []string
	for _, tag := range s.Tags() {
		outPath := filepath.Join(dir, tag+".pdb")
		if fileExists(outPath) {
			continue
		}
		body, err := s.Body(tag)
		if err != nil {
			return written, err
		}
		if err := writeLines(outPath, body); err != nil {
			return written, err
		}
		written = append(written, outPath)
	}
	return written, nil
}

// ExtractSelected writes the requested records of qvPath to outDir
// (created if needed), one <tag>.pdb per record. Requested tags are
// deduplicated and sorted; files that already exist are skipped. A tag
// missing from the file lands in the missing list instead of aborting the
// batch; any other failure aborts immediately.
func ExtractSelected(qvPath string, tags []string, outDir string) (written, missing []string, err error) {
	unique := CleanTags(tags)
	sort.Strings(unique)
	if len(unique) == 0 {
		return nil, nil, errors.New("no tags provided")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", outDir, err)
	}
	s, err := Open(qvPath, ModeRead)
	if err != nil {
		return nil, nil, err
	}
	for _, tag := range unique {
		outPath := filepath.Join(outDir, tag+".pdb")
		if fileExists(outPath) {
			continue
		}
		body, err := s.Body(tag)
		if errors.Is(err, ErrTagNotFound) {
			missing = append(missing, tag)
			continue
		}
		if err != nil {
			return written, missing, err
		}
		if err := writeLines(outPath, body); err != nil {
			return written, missing, err
		}
		written = append(written, outPath)
	}
	return written, missing, nil
}

// Slice returns the verbatim Quiver text of the requested records plus
// the requested tags that are not in the file. Partially matched requests
// succeed; only a request where nothing matched fails, wrapping
// ErrTagNotFound.
func Slice(qvPath string, tags []string) (string, []string, error) {
	s, err := Open(qvPath, ModeRead)
	if err != nil {
		return "", nil, err
	}
	text, matched, err := s.RawBlocks(tags)
	if err != nil {
		return "", nil, err
	}
	found := make(map[string]bool, len(matched))
	for _, t := range matched {
		found[t] = true
	}
	var missing []string
	for _, t := range tags {
		if t != "" && !found[t] {
			missing = append(missing, t)
		}
	}
	if len(matched) == 0 {
		return "", missing, fmt.Errorf("no requested tags in %s: %w", qvPath, ErrTagNotFound)
	}
	return text, missing, nil
}

// FromPDBFiles packs the given PDB files into Quiver text, in argument
// order. The tag of each record is the file name without directory and
// extension. A payload lacking a final terminator gets one so the next
// marker starts on its own line.
func FromPDBFiles(paths []string) (string, error) {
	var sb strings.Builder
	for _, p := range paths {
		tag := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		if tag == "" {
			return "", fmt.Errorf("no tag derivable from file name %q", p)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "%s %s\n", tagMarker, tag)
		sb.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

// CleanTags trims the given tags, drops empties and deduplicates,
// preserving first-seen order.
func CleanTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// writeLines writes lines to path atomically, one terminator per line.
func writeLines(path string, lines []string) error {
	w, err := atomicfile.New(path)
	if err != nil {
		return err
	}
	defer w.RemoveIfNotClosed()
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Close()
}

// fileExists returns true if path exists and is a regular file.
func fileExists(path string) bool {
	st, err := os.Lstat(path)
	return err == nil && st.Mode().IsRegular()
}
