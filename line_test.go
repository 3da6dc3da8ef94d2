package quiver

import (
	"testing"

	"github.com/alecthomas/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want lineClass
		tag  string
	}{
		{"QV_TAG design_0", classTag, "design_0"},
		{"QV_TAG   design_0  ", classTag, "design_0"},
		{"QV_TAG", classTag, ""},
		{"QV_SCORE design_0 plddt=92.1|rmsd=0.8", classScore, "design_0"},
		{"QV_SCORE", classScore, ""},
		{"ATOM      1  N   MET A   1", classBody, ""},
		{"", classBody, ""},
		{"QV_TAGGED design_0", classBody, ""},
		{"QV_SCOREBOARD x", classBody, ""},
		{" QV_TAG design_0", classTag, "design_0"},
	}
	for _, tc := range tests {
		class, toks := classify(tc.line)
		assert.Equal(t, tc.want, class, "line %q", tc.line)
		if class != classBody {
			assert.Equal(t, tc.tag, markerTag(toks), "line %q", tc.line)
		}
	}
}
