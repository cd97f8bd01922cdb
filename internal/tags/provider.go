package tags

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Reader looks up metadata for sources, caching results until the file's
// modification time or size changes. It is safe for concurrent use.
type Reader struct {
	mu    sync.Mutex
	cache map[string]cacheEntry

	readTags     func(string) (*Tag, error)
	readDuration func(string) (time.Duration, error)
}

type cacheEntry struct {
	info    Info
	modTime time.Time
	size    int64
}

// NewReader creates a metadata reader backed by the file system.
func NewReader() *Reader {
	return &Reader{
		cache:        make(map[string]cacheEntry),
		readTags:     Read,
		readDuration: ReadDuration,
	}
}

// Lookup returns album, artist, title and padded duration for path.
// Unreadable files and missing tags yield empty fields.
func (r *Reader) Lookup(path string) Info {
	if path == "" {
		return Info{}
	}

	fi, err := os.Stat(path)
	if err != nil {
		r.mu.Lock()
		delete(r.cache, path)
		r.mu.Unlock()
		return Info{}
	}

	r.mu.Lock()
	entry, ok := r.cache[path]
	r.mu.Unlock()
	if ok && entry.modTime.Equal(fi.ModTime()) && entry.size == fi.Size() {
		return entry.info
	}

	info := r.read(path)

	r.mu.Lock()
	r.cache[path] = cacheEntry{info: info, modTime: fi.ModTime(), size: fi.Size()}
	r.mu.Unlock()
	return info
}

func (r *Reader) read(path string) Info {
	var info Info

	if t, err := r.readTags(path); err == nil {
		info.Album = t.Album
		info.Artist = t.Artist
		info.Title = t.Title
	} else {
		log.Debug().Err(err).Str("path", path).Msg("read tags")
	}

	d, err := r.readDuration(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("read duration")
	}
	info.Duration = padDuration(d)

	return info
}

// Static is a fixed path-to-metadata table.
type Static map[string]Info

// Lookup returns the stored entry for path, or a zero Info.
func (s Static) Lookup(path string) Info {
	return s[path]
}
