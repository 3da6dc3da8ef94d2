package quiver

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert"
)

func TestReadScoreRecords(t *testing.T) {
	path := writeQV(t, "QV_TAG tag1\nATOM 1\nQV_SCORE tag1 a=1.0|b=2.0\nQV_TAG tag2\nQV_SCORE tag2 c=3.0\nATOM 2\n")
	records, err := ReadScoreRecords(path)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, ScoreRecord{"tag": "tag1", "a": "1.0", "b": "2.0"}, records[0])
	assert.Equal(t, ScoreRecord{"tag": "tag2", "c": "3.0"}, records[1])
}

func TestReadScoreRecordsSkipsShortMarker(t *testing.T) {
	// a marker with no payload tokens is skipped, not fatal
	path := writeQV(t, "QV_SCORE tag1\nQV_TAG tag2\nQV_SCORE tag2 k=2.5\nATOM 1\n")
	records, err := ReadScoreRecords(path)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "tag2", records[0]["tag"])
}

func TestReadScoreRecordsBadEntry(t *testing.T) {
	path := writeQV(t, "QV_SCORE tag1 justakey\n")
	_, err := ReadScoreRecords(path)
	assert.True(t, errors.Is(err, ErrScoreEntry))

	path = writeQV(t, "QV_SCORE tag1 a=1=2\n")
	_, err = ReadScoreRecords(path)
	assert.True(t, errors.Is(err, ErrScoreEntry))
}

func TestReadScoreRecordsBadValue(t *testing.T) {
	path := writeQV(t, "QV_SCORE tag1 a=1.0|b=abc\n")
	_, err := ReadScoreRecords(path)
	assert.True(t, errors.Is(err, ErrScoreValue))
}

func TestExportScores(t *testing.T) {
	path := writeQV(t, "QV_TAG tag1\nATOM 1\nQV_SCORE tag1 a=1.0|b=2.0\nQV_TAG tag2\nQV_SCORE tag2 c=3.0\nATOM 2\n")
	outPath, err := ExportScores(path)
	assert.NoError(t, err)

	// tag column first, the rest sorted; absent values become NaN
	want := "tag\ta\tb\tc\n" +
		"tag1\t1.0\t2.0\tNaN\n" +
		"tag2\tNaN\tNaN\t3.0\n"
	assert.Equal(t, want, readFileString(t, outPath))
}

func TestExportScoresOutputPath(t *testing.T) {
	path := writeQV(t, "QV_TAG t\nQV_SCORE t k=1\n")
	outPath, err := ExportScores(path)
	assert.NoError(t, err)
	wantPath := path[:len(path)-len(".qv")] + ".csv"
	assert.Equal(t, wantPath, outPath)
}

func TestExportScoresNoScoreData(t *testing.T) {
	path := writeQV(t, "QV_TAG tag1\nATOM 1\n")
	_, err := ExportScores(path)
	assert.True(t, errors.Is(err, ErrNoScoreData))
}
