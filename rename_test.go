package quiver

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert"
)

func TestStageRename(t *testing.T) {
	path := writeQV(t, "QV_TAG a\nBODY1\nQV_SCORE a k=1\nQV_TAG b\nBODY2\n")
	staged, err := StageRename(path, []string{"x", "y"})
	assert.NoError(t, err)

	// staged copy lives next to the original so the caller can finish
	// with an atomic rename on the same volume
	assert.Equal(t, filepath.Dir(path), filepath.Dir(staged))

	// the score marker is renamed and lands right after its tag marker,
	// ahead of the body
	want := "QV_TAG x\nQV_SCORE x k=1\nBODY1\nQV_TAG y\nBODY2\n"
	assert.Equal(t, want, readFileString(t, staged))

	// the original is untouched
	assert.Equal(t, "QV_TAG a\nBODY1\nQV_SCORE a k=1\nQV_TAG b\nBODY2\n", readFileString(t, path))
}

func TestStageRenameNoScores(t *testing.T) {
	path := writeQV(t, "QV_TAG a\nATOM 1\nATOM 2\nQV_TAG b\nATOM 3\n")
	staged, err := StageRename(path, []string{"x", "y"})
	assert.NoError(t, err)
	assert.Equal(t, "QV_TAG x\nATOM 1\nATOM 2\nQV_TAG y\nATOM 3\n", readFileString(t, staged))
}

func TestStageRenameCountMismatch(t *testing.T) {
	path := writeQV(t, "QV_TAG a\nATOM 1\nQV_TAG b\nATOM 2\n")
	_, err := StageRename(path, []string{"x"})
	assert.True(t, errors.Is(err, ErrTagCountMismatch))
	_, err = StageRename(path, []string{"x", "y", "z"})
	assert.True(t, errors.Is(err, ErrTagCountMismatch))
}

func TestStageRenameConsecutiveTagMarkers(t *testing.T) {
	path := writeQV(t, "QV_TAG a\nQV_TAG b\nATOM 1\n")
	_, err := StageRename(path, []string{"x", "y"})
	assert.True(t, errors.Is(err, ErrConsecutiveTags))
}

func TestRenameTagsSwapsInPlace(t *testing.T) {
	path := writeQV(t, "QV_TAG a\nATOM 1\nQV_TAG b\nATOM 2\n")
	err := RenameTags(path, []string{"x", "y"})
	assert.NoError(t, err)
	assert.Equal(t, "QV_TAG x\nATOM 1\nQV_TAG y\nATOM 2\n", readFileString(t, path))

	s, err := Open(path, ModeRead)
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, s.Tags())
}
