package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRecipesFromReader_SkipsHeader(t *testing.T) {
	csv := `flavor,start,hold,rate,target,hold
choc,20,2,1,80,3
x,10
`
	rows, err := NewRecipeLoader(true).LoadRecipesFromReader(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"choc", "20", "2", "1", "80", "3"}, rows[0].Tokens)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "x", rows[1].Name())
	assert.Equal(t, 3, rows[1].Line)
}

func TestLoadRecipesFromReader_NoHeader(t *testing.T) {
	rows, err := NewRecipeLoader(false).LoadRecipesFromReader(strings.NewReader("y,10,5\n"))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"y", "10", "5"}, rows[0].Tokens)
	assert.Equal(t, 1, rows[0].Line)
}

func TestLoadRecipesFromReader_TrimsTrailingBlanks(t *testing.T) {
	csv := `name,t0
y,10,5,,,
z,10,,2,80
,,,,
# a comment line
w,15
`
	rows, err := NewRecipeLoader(true).LoadRecipesFromReader(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"y", "10", "5"}, rows[0].Tokens)
	assert.Equal(t, []string{"z", "10", "", "2", "80"}, rows[1].Tokens, "interior blanks are left for the compiler")
	assert.Equal(t, "w", rows[2].Name())
	assert.Equal(t, 6, rows[2].Line)
}

func TestLoadRecipesFromReader_MalformedCSV(t *testing.T) {
	_, err := NewRecipeLoader(false).LoadRecipesFromReader(strings.NewReader("a,\"unterminated\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read recipe CSV")
}

func TestLoadRecipes_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,t0\nchoc,20,2\n"), 0600))

	rows, err := NewRecipeLoader(true).LoadRecipes(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "choc", rows[0].Name())
}

func TestLoadRecipes_MissingFile(t *testing.T) {
	_, err := NewRecipeLoader(true).LoadRecipes(filepath.Join(t.TempDir(), "nope.csv"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open recipe file")
}

func TestLoadRecipesFromReader_HashPrefixedName(t *testing.T) {
	csv := "name,temp\n#1 dark,20,2\nmilk,20,2\n"
	rows, err := NewRecipeLoader(true).LoadRecipesFromReader(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "#1 dark", rows[0].Name())
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "milk", rows[1].Name())
}

func TestLoadRecipesFromReader_HashPrefixedHeader(t *testing.T) {
	csv := "# flavor,start,hold\nchoc,20,2\nmilk,20,2\n"
	rows, err := NewRecipeLoader(true).LoadRecipesFromReader(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"choc", "20", "2"}, rows[0].Tokens)
	assert.Equal(t, []string{"milk", "20", "2"}, rows[1].Tokens)
}
