package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/sarc/internal/sarctype"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain", input: "file.bin"},
		{name: "nested", input: "Actor/Pack/Link.bactorpack"},
		{name: "dot element", input: "./a/./b"},
		{name: "double slash", input: "a//b"},
		{name: "dots in name", input: "a/..b/c..", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "absolute", input: "/etc/passwd", wantErr: true},
		{name: "parent", input: "../../etc/passwd", wantErr: true},
		{name: "inner parent", input: "a/../../b", wantErr: true},
		{name: "trailing parent", input: "a/..", wantErr: true},
		{name: "backslash", input: `..\evil`, wantErr: true},
		{name: "drive letter", input: "C:evil", wantErr: true},
		{name: "nul", input: "a\x00b", wantErr: true},
		{name: "root only", input: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, sarctype.ErrUnsafePath)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a/b", Clean("./a//b"))
	assert.Equal(t, "a/b", Clean("a/./b/"))
}

func TestBase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".", Base(""))
	assert.Equal(t, ".", Base("."))
	assert.Equal(t, "c.txt", Base("a/b/c.txt"))
	assert.Equal(t, "b", Base("a/b/"))
	assert.Equal(t, "file", Base("file"))
}
