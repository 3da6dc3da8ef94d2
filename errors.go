package quiver

import "errors"

var (
	// ErrWrongMode means the operation needs the other open mode.
	ErrWrongMode = errors.New("wrong open mode")

	// ErrTagNotFound means a requested tag is not in the file.
	ErrTagNotFound = errors.New("tag not found")

	// ErrDuplicateTag means an append would reuse an existing tag.
	ErrDuplicateTag = errors.New("tag already exists")

	// ErrShardSize means Split was asked for zero tags per shard.
	ErrShardSize = errors.New("shard size must be positive")

	// ErrTagCountMismatch means the replacement tag list does not match
	// the number of tag markers in the file.
	ErrTagCountMismatch = errors.New("replacement tag count mismatch")

	// ErrConsecutiveTags means two tag markers appeared back to back,
	// which a rename refuses to rewrite.
	ErrConsecutiveTags = errors.New("consecutive tag markers")

	// ErrNoScoreData means the file has no score markers to export.
	ErrNoScoreData = errors.New("no score data")

	// ErrScoreEntry means a score payload entry is not key=value.
	ErrScoreEntry = errors.New("malformed score entry")

	// ErrScoreValue means a score value does not parse as a number.
	ErrScoreValue = errors.New("score value is not numeric")
)
