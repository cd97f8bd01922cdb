package app

import (
	"fmt"

	"github.com/llehouerou/comrad/internal/icons"
	"github.com/llehouerou/comrad/internal/playlist"
	"github.com/llehouerou/comrad/internal/tags"
	"github.com/llehouerou/comrad/internal/ui/cursor"
	"github.com/llehouerou/comrad/internal/ui/render"
	"github.com/llehouerou/comrad/internal/ui/styles"
)

// playlistPane shows either the collection or the sources of one open
// playlist.
type playlistPane struct {
	open    string // id of the open playlist, "" for the collection
	lists   cursor.Cursor
	sources cursor.Cursor
}

func newPlaylistPane() playlistPane {
	return playlistPane{
		lists:   cursor.New(scrollMargin),
		sources: cursor.New(scrollMargin),
	}
}

func (p *playlistPane) openID(id string) {
	p.open = id
	p.sources.Reset()
}

func (p *playlistPane) close() {
	p.open = ""
}

func (p playlistPane) openedID() string {
	return p.open
}

// active returns the cursor of the visible list.
func (p *playlistPane) active() *cursor.Cursor {
	if p.open != "" {
		return &p.sources
	}
	return &p.lists
}

// target returns the playlist the editing actions apply to: the open one,
// or the one under the cursor in the collection.
func (p playlistPane) target(all []*playlist.Playlist) *playlist.Playlist {
	if p.open != "" {
		return find(all, p.open)
	}
	if len(all) == 0 {
		return nil
	}
	return all[min(p.lists.Pos(), len(all)-1)]
}

// sync keeps both cursors in range after the collection changed and
// closes an open playlist that no longer exists.
func (p *playlistPane) sync(all []*playlist.Playlist) {
	p.lists.Clamp(len(all))
	if p.open == "" {
		return
	}
	open := find(all, p.open)
	if open == nil {
		p.close()
		return
	}
	p.sources.Clamp(open.Len())
}

func find(all []*playlist.Playlist, id string) *playlist.Playlist {
	for _, pl := range all {
		if pl.ID() == id {
			return pl
		}
	}
	return nil
}

func (p playlistPane) view(all []*playlist.Playlist, width, height int, playing string, meta func(string) tags.Info) []string {
	st := styles.T().S()
	listHeight := max(height-1, 0)

	if p.open == "" {
		rows := []string{st.Title.Render(render.Truncate(fmt.Sprintf("Playlists (%d)", len(all)), width))}
		start, end := p.lists.Window(len(all), listHeight)
		for i := start; i < end; i++ {
			pl := all[i]
			name := icons.FormatPlaylist(displayName(pl))
			line := render.Row(name, fmt.Sprintf("%d", pl.Len()), width)
			rows = append(rows, highlight(line, i == p.lists.Pos(), pl.Contains(playing) && playing != ""))
		}
		if len(all) == 0 && listHeight > 0 {
			rows = append(rows, st.Subtle.Render("No playlists. N creates one, c scans a folder."))
		}
		return rows
	}

	pl := find(all, p.open)
	rows := []string{st.Title.Render(render.Truncate(displayName(pl), width))}
	sources := pl.Sources()
	start, end := p.sources.Window(len(sources), listHeight)
	for i := start; i < end; i++ {
		src := sources[i]
		info := meta(src)
		var dur string
		if info.Duration > 0 {
			dur = tags.FormatDuration(info.Duration)
		}
		line := render.Row(render.Truncate(tags.DisplayTitle(src, info), width), dur, width)
		rows = append(rows, highlight(line, i == p.sources.Pos(), src == playing))
	}
	if len(sources) == 0 && listHeight > 0 {
		rows = append(rows, st.Subtle.Render("Empty. Press a in the browser to add."))
	}
	return rows
}

func displayName(pl *playlist.Playlist) string {
	if pl.Name() == "" {
		return "(untitled)"
	}
	return pl.Name()
}

func highlight(line string, focused, playing bool) string {
	st := styles.T().S()
	switch {
	case focused:
		return st.Cursor.Render(line)
	case playing:
		return st.Playing.Render(line)
	default:
		return st.Base.Render(line)
	}
}
