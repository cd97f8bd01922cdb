package catalog

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/comrad/internal/playlist"
)

// Record delimiters. Both are written escaped when they occur inside a
// field so that reading a record back never splits it in the wrong place.
const (
	fieldSep  = "⁘"
	sourceSep = "⁙"
)

var fieldEscaper = strings.NewReplacer(fieldSep, `\u2058`, sourceSep, `\u2059`)

// ErrMalformed is returned by DecodeRecord for lines that do not hold a
// playlist.
var ErrMalformed = errors.New("malformed playlist record")

// EncodeRecord renders p as a single line (without the newline):
//
//	"<id>"⁘"<name>"⁘"⁙<source>⁙<source>..."
//
// Backslashes in sources are written as forward slashes.
func EncodeRecord(p *playlist.Playlist) string {
	var b strings.Builder
	b.WriteString(quoteField(p.ID()))
	b.WriteString(fieldSep)
	b.WriteString(quoteField(p.Name()))
	b.WriteString(fieldSep)
	b.WriteByte('"')
	for _, src := range p.Sources() {
		b.WriteString(sourceSep)
		b.WriteString(escapeInner(strings.ReplaceAll(src, `\`, "/")))
	}
	b.WriteByte('"')
	return b.String()
}

// DecodeRecord parses one line written by EncodeRecord. Fields that fail to
// unquote are read with quotes and backslashes stripped. Empty sources are
// dropped.
func DecodeRecord(line string) (*playlist.Playlist, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), fieldSep)
	if len(fields) != 3 {
		return nil, errors.Wrapf(ErrMalformed, "%d fields", len(fields))
	}

	id := unquoteField(fields[0])
	if id == "" {
		return nil, errors.Wrap(ErrMalformed, "empty id")
	}
	name := unquoteField(fields[1])

	inner := fields[2]
	if len(inner) >= 2 && inner[0] == '"' && inner[len(inner)-1] == '"' {
		inner = inner[1 : len(inner)-1]
	}
	parts := strings.Split(inner, sourceSep)

	// The leading separator leaves an empty first segment.
	sources := make([]string, 0, len(parts))
	for _, part := range parts[1:] {
		if src := unquoteInner(part); src != "" {
			sources = append(sources, src)
		}
	}
	return playlist.FromRecord(id, name, sources), nil
}

// LoadPlaylists reads every playlist record. Blank lines are ignored and
// malformed ones are logged and skipped.
func (s *Store) LoadPlaylists() ([]*playlist.Playlist, error) {
	path := s.PlaylistsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(err, "read %s", path)
	}

	var lists []*playlist.Playlist
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := DecodeRecord(line)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Int("line", n).Msg("skip playlist record")
			continue
		}
		lists = append(lists, p)
	}
	if err := sc.Err(); err != nil {
		return lists, ioError(err, "read %s", path)
	}
	return lists, nil
}

// SavePlaylists replaces the playlists file with one record per playlist.
func (s *Store) SavePlaylists(lists []*playlist.Playlist) error {
	var b strings.Builder
	for _, p := range lists {
		if p == nil {
			continue
		}
		b.WriteString(EncodeRecord(p))
		b.WriteByte('\n')
	}

	path := s.PlaylistsPath()
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return ioError(err, "write %s", path)
	}
	return nil
}

func quoteField(s string) string {
	return `"` + escapeInner(s) + `"`
}

func escapeInner(s string) string {
	q := strconv.Quote(s)
	return fieldEscaper.Replace(q[1 : len(q)-1])
}

func unquoteField(s string) string {
	if u, err := strconv.Unquote(s); err == nil {
		return u
	}
	return stripQuoting(s)
}

func unquoteInner(s string) string {
	if u, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return u
	}
	return stripQuoting(s)
}

func stripQuoting(s string) string {
	return strings.NewReplacer(`"`, "", `\`, "").Replace(s)
}
