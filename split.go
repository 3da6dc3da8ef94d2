package quiver

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Split partitions the file into shards of nTags records each, written to
// outDir (created if needed) as <prefix>_<n>.qv with n counting from 0.
// Shard boundaries fall on tag markers, so every shard starts with a
// marker line and concatenating the shards in order reproduces the file.
func (s *Store) Split(nTags int, outDir, prefix string) error {
	if s.Mode != ModeRead {
		return fmt.Errorf("split %s opened in %s mode: %w", s.Path, s.Mode, ErrWrongMode)
	}
	if nTags <= 0 {
		return fmt.Errorf("split %s into shards of %d: %w", s.Path, nTags, ErrShardSize)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		outFile  *os.File
		out      *bufio.Writer
		shardIdx int
		tagCount int
	)
	closeShard := func() error {
		if outFile == nil {
			return nil
		}
		err := out.Flush()
		errClose := outFile.Close()
		outFile = nil
		if err == nil {
			err = errClose
		}
		return err
	}

	sc := newScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if class, _ := classify(line); class == classTag {
			if tagCount%nTags == 0 {
				if err := closeShard(); err != nil {
					return err
				}
				name := filepath.Join(outDir, fmt.Sprintf("%s_%d.qv", prefix, shardIdx))
				outFile, err = os.Create(name)
				if err != nil {
					return err
				}
				out = bufio.NewWriter(outFile)
				shardIdx++
			}
			tagCount++
		}
		if outFile != nil {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		closeShard()
		return fmt.Errorf("scanning %s: %w", s.Path, err)
	}
	return closeShard()
}
