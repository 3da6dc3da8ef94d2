package quiver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/quiverfmt/quiver/atomicfile"
)

var logger = zap.NewNop()

// SetLogger routes engine diagnostics to l. The engine is quiet by
// default; its only log site is the skipped-malformed-score-marker
// warning in ReadScoreRecords.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// ScoreRecord maps column name to value string. Every record carries a
// "tag" column plus the numeric columns harvested from its score marker.
type ScoreRecord map[string]string

// ReadScoreRecords harvests every score marker in path, in encounter
// order. A marker too short to carry a payload is skipped with a warning;
// inside a well-formed marker, an entry that is not key=value fails with
// ErrScoreEntry and a value that is not numeric fails with ErrScoreValue.
// Garbage must not silently reach an exported table.
func ReadScoreRecords(path string) ([]ScoreRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []ScoreRecord
	sc := newScanner(f)
	for sc.Scan() {
		line := sc.Text()
		class, toks := classify(line)
		if class != classScore {
			continue
		}
		if len(toks) < 3 {
			// likely the truncated tail of a crashed writer
			logger.Warn("skipping malformed score line",
				zap.String("file", path), zap.String("line", line))
			continue
		}
		tag := toks[1]
		rec := ScoreRecord{"tag": tag}
		for _, entry := range strings.Split(toks[2], "|") {
			kv := strings.Split(entry, "=")
			if len(kv) != 2 {
				return nil, fmt.Errorf("%s: score entry %q for tag %q: %w", path, entry, tag, ErrScoreEntry)
			}
			if _, err := strconv.ParseFloat(kv[1], 64); err != nil {
				return nil, fmt.Errorf("%s: score %s=%q for tag %q: %w", path, kv[0], kv[1], tag, ErrScoreValue)
			}
			rec[kv[0]] = kv[1]
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// scoreColumns returns "tag" followed by every other column seen across
// records, sorted. tag is always first and excluded from the sort.
func scoreColumns(records []ScoreRecord) []string {
	seen := map[string]bool{}
	var cols []string
	for _, rec := range records {
		for k := range rec {
			if k != "tag" && !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return append([]string{"tag"}, cols...)
}

// ExportScores writes the score table of path as a tab-separated file
// next to it, extension replaced by .csv, and returns the output path.
// Records missing a column get the literal NaN. Fails with ErrNoScoreData
// when the file has no score markers at all.
func ExportScores(path string) (string, error) {
	records, err := ReadScoreRecords(path)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", fmt.Errorf("%s: %w", path, ErrNoScoreData)
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".csv"
	w, err := atomicfile.New(outPath)
	if err != nil {
		return "", err
	}
	defer w.RemoveIfNotClosed()

	cols := scoreColumns(records)
	if _, err := w.WriteString(strings.Join(cols, "\t") + "\n"); err != nil {
		return "", err
	}
	row := make([]string, len(cols))
	for _, rec := range records {
		for i, col := range cols {
			v, ok := rec[col]
			if !ok {
				v = "NaN"
			}
			row[i] = v
		}
		if _, err := w.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return outPath, nil
}
