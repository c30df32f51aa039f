package cells

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
)

// render turns a grid into 'O'/'.' rows for comparison
func render(g *model.Grid) []string {
	var out []string
	for _, row := range g.Rows() {
		var sb strings.Builder
		for _, alive := range row {
			if alive {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		out = append(out, sb.String())
	}
	return out
}

func mustLoad(t *testing.T, text string) *model.Grid {
	t.Helper()
	g, err := Load(strings.NewReader(text))
	require.NoError(t, err)
	return g
}

func TestLoad_Basic(t *testing.T) {
	t.Parallel()
	g := mustLoad(t, "!Name: glider\n.O.\n..O\nOOO\n")
	assert.Equal(t, 3, g.GetWidth())
	assert.Equal(t, 3, g.GetHeight())
	assert.Equal(t, 5, g.CountLivingCells())
	if diff := cmp.Diff([]string{".O.", "..O", "OOO"}, render(g)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_CommentsExcludedFromDimensions(t *testing.T) {
	t.Parallel()
	g := mustLoad(t, "!a very long comment line that is wider than every row\n"+
		"O\n"+
		"   ! indented comment\n"+
		"!\n"+
		".O\n")
	assert.Equal(t, 2, g.GetWidth())
	assert.Equal(t, 2, g.GetHeight())
	assert.Equal(t, []string{"O.", ".O"}, render(g))
}

func TestLoad_ShortRowsPadDead(t *testing.T) {
	t.Parallel()
	g := mustLoad(t, "O\n..O.O\nOO\n")
	assert.Equal(t, 5, g.GetWidth())
	assert.Equal(t, 3, g.GetHeight())
	assert.Equal(t, []string{"O....", "..O.O", "OO..."}, render(g))
}

func TestLoad_CRLFAndOtherCharacters(t *testing.T) {
	t.Parallel()
	g := mustLoad(t, "!comment\r\nOxo*\r\n o.O\r\n")
	assert.Equal(t, 4, g.GetWidth())
	assert.Equal(t, 2, g.GetHeight())
	// only an uppercase O is alive
	assert.Equal(t, []string{"O...", "...O"}, render(g))
}

func TestLoad_NoTrailingNewline(t *testing.T) {
	t.Parallel()
	g := mustLoad(t, "OO\nOO")
	assert.Equal(t, 4, g.CountLivingCells())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()
	for name, text := range map[string]string{
		"empty line":           "OO\n\nOO\n",
		"whitespace only line": "OO\n  \t\nOO\n",
		"no rows":              "!just a comment\n",
		"empty input":          "",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g, err := Load(strings.NewReader(text))
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, ErrMalformedRow), "%v", err)
		})
	}
}

func TestLoad_ErrorReportsLine(t *testing.T) {
	t.Parallel()
	_, err := Load(strings.NewReader("!c\nO\n\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestSave_Format(t *testing.T) {
	t.Parallel()
	g := model.NewGrid(3, 2)
	require.NoError(t, g.Set(0, 0, true))
	require.NoError(t, g.Set(2, 1, true))

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, g))
	assert.Equal(t, Header+"\nO..\n..O\n", buf.String())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, size := range [][2]int{{1, 1}, {1, 7}, {9, 1}, {13, 11}, {64, 3}} {
		g := model.NewGrid(size[0], size[1])
		model.RandomizeSeed(g, int64(size[0]*100+size[1]))

		var buf bytes.Buffer
		require.NoError(t, Save(&buf, g))
		loaded, err := Load(&buf)
		require.NoError(t, err)
		assert.True(t, g.Equal(loaded), "%dx%d", size[0], size[1])
	}

	// an all dead grid keeps its size through the '.' padding
	empty := model.NewGrid(4, 3)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, empty))
	loaded, err := Load(&buf)
	require.NoError(t, err)
	assert.True(t, empty.Equal(loaded))
}

func TestImport_Bounded(t *testing.T) {
	t.Parallel()
	g := model.NewGrid(3, 2)
	err := Import(g, strings.NewReader("!big pattern\nOOOOO\n.O.OO\nOOOOO\n\n\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, g.GetWidth())
	assert.Equal(t, 2, g.GetHeight())
	assert.Equal(t, []string{"OOO", ".O."}, render(g))
}

func TestImport_StopsReadingAtGridHeight(t *testing.T) {
	t.Parallel()

	t.Run("oversized row past height", func(t *testing.T) {
		t.Parallel()
		g := model.NewGrid(2, 1)
		huge := strings.Repeat("O", 2*maxLineSize)
		require.NoError(t, Import(g, strings.NewReader("!c\nOO\n"+huge+"\n")))
		assert.Equal(t, []string{"OO"}, render(g))
	})

	t.Run("failing reader past height", func(t *testing.T) {
		t.Parallel()
		g := model.NewGrid(3, 2)
		src := io.MultiReader(
			strings.NewReader("O.O\n.O.\n"),
			iotest.ErrReader(errors.New("read past the last row")),
		)
		require.NoError(t, Import(g, src))
		assert.Equal(t, []string{"O.O", ".O."}, render(g))
	})

	t.Run("read error within height", func(t *testing.T) {
		t.Parallel()
		g := model.NewGrid(3, 2)
		src := io.MultiReader(
			strings.NewReader("OOO\n"),
			iotest.ErrReader(errors.New("disk gone")),
		)
		err := Import(g, src)
		assert.ErrorContains(t, err, "disk gone")
		assert.Zero(t, g.CountLivingCells())
	})
}

func TestImport_OverwritesCoveredCellsOnly(t *testing.T) {
	t.Parallel()
	g := model.NewGrid(4, 3)
	for y := range 3 {
		for x := range 4 {
			require.NoError(t, g.Set(x, y, true))
		}
	}

	require.NoError(t, Import(g, strings.NewReader("..\n.\n")))
	assert.Equal(t, []string{"..OO", ".OOO", "OOOO"}, render(g))
}

func TestImport_ErrorLeavesGridUntouched(t *testing.T) {
	t.Parallel()
	g := model.NewGrid(3, 3)
	require.NoError(t, g.Set(1, 1, true))
	before := g.Rows()

	err := Import(g, strings.NewReader("OOO\n\nOOO\n"))
	assert.True(t, errors.Is(err, ErrMalformedRow), "%v", err)
	assert.Equal(t, before, g.Rows())
}

func TestImport_InvalidGrid(t *testing.T) {
	t.Parallel()
	err := Import(model.NewGrid(0, 0), strings.NewReader("O\n"))
	assert.True(t, errors.Is(err, model.ErrInvalidDimensions), "%v", err)
}

func TestFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "blinker.cells")

	g := model.NewGrid(5, 5)
	for x := 1; x <= 3; x++ {
		require.NoError(t, g.Set(x, 2, true))
	}
	require.NoError(t, SaveFile(g, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, g.Equal(loaded))

	target := model.NewGrid(2, 3)
	require.NoError(t, ImportFile(target, path))
	assert.Equal(t, []string{"..", "..", ".O"}, render(target))

	_, err = LoadFile(filepath.Join(dir, "missing.cells"))
	assert.True(t, os.IsNotExist(errors.Cause(err)), "%v", err)
}
