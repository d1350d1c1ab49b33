package rcfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(problems []Problem) []string {
	var out []string
	for _, p := range problems {
		out = append(out, p.Code)
	}
	return out
}

func TestVerify_CleanFile(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "pylintrc"))
	require.NoError(t, err)
	assert.Empty(t, VerifyBytes(data, "pylintrc"))
}

func TestVerify_DuplicateKey(t *testing.T) {
	problems := VerifyBytes([]byte(`[DESIGN]
max-args=5
max-args=10
`), "test")

	require.Len(t, problems, 1)
	p := problems[0]
	assert.Equal(t, ProblemDuplicateKey, p.Code)
	assert.Equal(t, SeverityError, p.Severity)
	assert.Equal(t, "DESIGN", p.Section)
	assert.Equal(t, "max-args", p.Key)
	assert.Equal(t, 3, p.Line)
	assert.Contains(t, p.Message, "first at line 2")
}

func TestVerify_DuplicateKeyDifferentCase(t *testing.T) {
	problems := VerifyBytes([]byte(`[FORMAT]
max-line-length=88
MAX-LINE-LENGTH=100
`), "test")

	require.Len(t, problems, 1)
	assert.Equal(t, ProblemDuplicateKey, problems[0].Code)
}

func TestVerify_SameKeyInTwoSectionsIsFine(t *testing.T) {
	problems := VerifyBytes([]byte(`[BASIC]
function-rgx=[a-z_]+$

[FORMAT]
max-line-length=88
`), "test")
	assert.Empty(t, problems)
}

func TestVerify_DuplicateSection(t *testing.T) {
	problems := VerifyBytes([]byte(`[BASIC]
good-names=i

[BASIC]
bad-names=foo
`), "test")

	require.Len(t, problems, 1)
	p := problems[0]
	assert.Equal(t, ProblemDuplicateSection, p.Code)
	assert.Equal(t, SeverityError, p.Severity)
	assert.Equal(t, "BASIC", p.Section)
	assert.Equal(t, 4, p.Line)
	assert.Contains(t, p.Message, "first at line 1")
}

func TestVerify_OrphanEntry(t *testing.T) {
	problems := VerifyBytes([]byte(`max-line-length=99

[FORMAT]
max-line-length=88
`), "test")

	require.Len(t, problems, 1)
	p := problems[0]
	assert.Equal(t, ProblemOrphanEntry, p.Code)
	assert.Equal(t, SeverityWarning, p.Severity)
	assert.Equal(t, "max-line-length", p.Key)
	assert.Equal(t, 1, p.Line)
}

func TestVerify_EmptySection(t *testing.T) {
	problems := VerifyBytes([]byte(`[TYPECHECK]

[FORMAT]
max-line-length=88
`), "test")

	require.Len(t, problems, 1)
	p := problems[0]
	assert.Equal(t, ProblemEmptySection, p.Code)
	assert.Equal(t, SeverityHint, p.Severity)
	assert.Equal(t, "TYPECHECK", p.Section)
	assert.Equal(t, 1, p.Line)
}

func TestVerify_ListValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"clean list", "i,j,k", nil},
		{"trailing comma", "i,j,", []string{ProblemEmptyToken}},
		{"double comma", "i,,j", []string{ProblemEmptyToken}},
		{"several empties reported once", "i,,,j,", []string{ProblemEmptyToken}},
		{"whitespace inside element", "i,j df,ax", []string{ProblemTokenWhitespace}},
		{"regexp elements with spaces are fine", `(# )?<?https, [a-z ]+$`, nil},
		{"scalar without comma", "a value with spaces", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFile("test")
			f.AddSection("BASIC").Add("good-names", tt.value)
			assert.Equal(t, tt.want, codes(Verify(f)))
		})
	}
}

func TestVerify_TrailingCommaMessage(t *testing.T) {
	problems := VerifyBytes([]byte(`[BASIC]
good-names=i,j,
`), "test")

	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].Message, "trailing comma")
}

func TestVerify_ProblemsOrderedByLine(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "messy.pylintrc"))
	require.NoError(t, err)
	problems := VerifyBytes(data, "messy.pylintrc")
	require.NotEmpty(t, problems)

	for i := 1; i < len(problems); i++ {
		assert.LessOrEqual(t, problems[i-1].Line, problems[i].Line)
	}

	assert.Contains(t, codes(problems), ProblemOrphanEntry)
	assert.Contains(t, codes(problems), ProblemDuplicateSection)
	assert.Contains(t, codes(problems), ProblemDuplicateKey)
	assert.Contains(t, codes(problems), ProblemEmptyToken)
	assert.Contains(t, codes(problems), ProblemTokenWhitespace)
	assert.Contains(t, codes(problems), ProblemEmptySection)
}

func TestVerifyBytes_SyntaxError(t *testing.T) {
	problems := VerifyBytes([]byte(`[FORMAT]
not a key value line
`), "broken")

	require.Len(t, problems, 1)
	p := problems[0]
	assert.Equal(t, ProblemSyntax, p.Code)
	assert.Equal(t, SeverityError, p.Severity)
	assert.NotEmpty(t, p.Message)
}
