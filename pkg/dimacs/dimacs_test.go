package dimacs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/limaJavier/satsolver/pkg/sat"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	t.Run("Comments, header and multi-line clauses", func(t *testing.T) {
		//** Arrange
		input := `c random comment
c another one
p cnf 4 3
1 -2 0
2 3
-4 0
4 0
`

		//** Act
		formula, err := Decode(strings.NewReader(input))

		//** Assert
		assert.Nil(t, err)
		assert.Equal(t, 4, formula.Variables)
		assert.Equal(t, [][]int{{1, -2}, {2, 3, -4}, {4}}, formula.Clauses)
	})

	t.Run("Trailing clause without terminator", func(t *testing.T) {
		formula, err := Decode(strings.NewReader("p cnf 2 1\n1 2"))
		assert.Nil(t, err)
		assert.Equal(t, [][]int{{1, 2}}, formula.Clauses)
	})

	t.Run("Percent end marker", func(t *testing.T) {
		formula, err := Decode(strings.NewReader("p cnf 2 1\n1 2 0\n%\n0\n"))
		assert.Nil(t, err)
		assert.Equal(t, [][]int{{1, 2}}, formula.Clauses)
	})

	t.Run("Empty clause", func(t *testing.T) {
		formula, err := Decode(strings.NewReader("p cnf 2 1\n0\n"))
		assert.Nil(t, err)
		assert.Len(t, formula.Clauses, 1)
		assert.Empty(t, formula.Clauses[0])
	})

	t.Run("Missing problem line", func(t *testing.T) {
		_, err := Decode(strings.NewReader("c only comments\n"))
		assert.NotNil(t, err)
	})

	t.Run("Clause before problem line", func(t *testing.T) {
		_, err := Decode(strings.NewReader("1 2 0\np cnf 2 1\n"))
		assert.NotNil(t, err)
	})

	t.Run("Duplicate problem line", func(t *testing.T) {
		_, err := Decode(strings.NewReader("p cnf 2 1\np cnf 2 1\n"))
		assert.NotNil(t, err)
	})

	t.Run("Malformed problem line", func(t *testing.T) {
		_, err := Decode(strings.NewReader("p dnf 2 1\n"))
		assert.NotNil(t, err)
	})

	t.Run("Literal out of range", func(t *testing.T) {
		_, err := Decode(strings.NewReader("p cnf 2 1\n1 3 0\n"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("Invalid literal token", func(t *testing.T) {
		_, err := Decode(strings.NewReader("p cnf 2 1\n1 two 0\n"))
		assert.NotNil(t, err)
	})
}

func TestDecodeFile(t *testing.T) {
	//** Arrange
	path := filepath.Join(t.TempDir(), "formula.cnf")
	assert.Nil(t, os.WriteFile(path, []byte("p cnf 2 1\n-1 2 0\n"), 0666))

	//** Act
	formula, err := DecodeFile(path)

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, 2, formula.Variables)
	assert.Equal(t, [][]int{{-1, 2}}, formula.Clauses)

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.cnf"))
	assert.NotNil(t, err)
}

func TestEncode(t *testing.T) {
	//** Arrange
	formula := &sat.Formula{Variables: 3, Clauses: [][]int{{1, -2}, {2, 3}, {-3}}}
	var buffer bytes.Buffer

	//** Act
	err := Encode(&buffer, formula)

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, "p cnf 3 3\n1 -2 0\n2 3 0\n-3 0\n", buffer.String())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	//** Arrange
	formula := &sat.Formula{Variables: 5, Clauses: [][]int{{1, 2, 3}, {-1, -4}, {5}}}
	var buffer bytes.Buffer
	assert.Nil(t, Encode(&buffer, formula))

	//** Act
	decoded, err := Decode(&buffer)

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, formula, decoded)
}
