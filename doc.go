// Package quiver reads and writes Quiver files: flat text files that pack
// many PDB-style structure blocks into one file, addressed by a unique tag
// and optionally annotated with scalar scores.
//
// # File format
//
// A Quiver file is a sequence of records. Each record starts with a tag
// marker line, optionally followed by a score marker line, followed by the
// body (the structure block) up to the next tag marker or end of file:
//
//	QV_TAG <tag>
//	QV_SCORE <tag> <key1>=<v1>|<key2>=<v2>
//	<body line>
//	<body line>
//	QV_TAG <next tag>
//	...
//
// # Basic usage
//
//	s, err := quiver.Open("designs.qv", quiver.ModeWrite)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = s.Append("design_0", "plddt=92.1|rmsd=0.8", pdbLines)
//
//	s, err = quiver.Open("designs.qv", quiver.ModeRead)
//	body, err := s.Body("design_0")
//
// A Store is opened for reading or writing, never both. Tags are
// discovered by a single scan at open time; appends check for duplicate
// tags against that snapshot, which makes a Store safe for a single
// writer but does not detect concurrent external mutation of the file.
//
// All reads are sequential scans. The format has no index and needs none
// for its batch-oriented access pattern.
package quiver
