package app

import (
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/comrad/internal/catalog"
	"github.com/llehouerou/comrad/internal/icons"
	"github.com/llehouerou/comrad/internal/tags"
	"github.com/llehouerou/comrad/internal/ui/cursor"
	"github.com/llehouerou/comrad/internal/ui/render"
	"github.com/llehouerou/comrad/internal/ui/styles"
)

const scrollMargin = 2

// browser lists one directory of the catalog.
type browser struct {
	dir     string
	entries []catalog.Entry
	cursor  cursor.Cursor
}

func newBrowser() browser {
	return browser{cursor: cursor.New(scrollMargin)}
}

// open lists dir. On failure the current listing is kept.
func (b *browser) open(dir string) error {
	entries, err := catalog.ListDir(dir)
	if err != nil {
		return err
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	b.dir = dir
	b.entries = entries
	b.cursor.Reset()
	return nil
}

// up opens the parent directory with the cursor on the one just left.
func (b *browser) up(height int) error {
	from := b.dir
	if err := b.open(catalog.Parent(from)); err != nil {
		return err
	}
	for i, e := range b.entries {
		if e.Path == from {
			b.cursor.Jump(i, len(b.entries), height)
			break
		}
	}
	return nil
}

func (b browser) selected() (catalog.Entry, bool) {
	if len(b.entries) == 0 {
		return catalog.Entry{}, false
	}
	return b.entries[b.cursor.Pos()], true
}

// view renders height rows of width cells. The playing source is
// highlighted.
func (b browser) view(width, height int, playing string) []string {
	rows := make([]string, 0, height)
	rows = append(rows, styles.T().S().Title.Render(render.Truncate(b.dir, width)))

	listHeight := max(height-1, 0)
	start, end := b.cursor.Window(len(b.entries), listHeight)
	for i := start; i < end; i++ {
		rows = append(rows, b.row(b.entries[i], i == b.cursor.Pos(), playing, width))
	}
	if len(b.entries) == 0 && listHeight > 0 {
		rows = append(rows, styles.T().S().Subtle.Render("(empty)"))
	}
	return rows
}

func (b browser) row(e catalog.Entry, focused bool, playing string, width int) string {
	var size string
	if !e.IsDir() {
		size = humanize.IBytes(uint64(max(e.Size, 0)))
	}
	name := render.Truncate(icons.FormatEntry(e.Name, e.IsDir()), max(width-len(size)-1, 1))
	line := render.Row(name, size, width)

	st := styles.T().S()
	switch {
	case focused:
		return st.Cursor.Render(line)
	case e.Path == playing:
		return st.Playing.Render(line)
	case e.IsDir():
		return st.Dir.Render(line)
	case !tags.IsMusicFile(e.Path) || strings.HasPrefix(e.Name, "."):
		return st.Subtle.Render(line)
	default:
		return st.Base.Render(line)
	}
}
