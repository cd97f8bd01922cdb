// Package playlist provides the ordered source list used for browsing and
// navigation.
package playlist

// Playlist holds an ordered collection of sources (file paths) together
// with a stable identifier and an editable display name. Duplicates are
// permitted; insertion order is playback order.
//
// A nil *Playlist behaves as an empty list for all read accessors.
type Playlist struct {
	id      string
	name    string
	sources []string
}

// New creates an empty playlist with a freshly generated identifier.
func New(name string) *Playlist {
	return &Playlist{
		id:      NewID(),
		name:    name,
		sources: make([]string, 0),
	}
}

// FromRecord rebuilds a playlist from persisted fields, keeping its id.
func FromRecord(id, name string, sources []string) *Playlist {
	p := &Playlist{
		id:      id,
		name:    name,
		sources: make([]string, len(sources)),
	}
	copy(p.sources, sources)
	return p
}

// ID returns the playlist identifier.
func (p *Playlist) ID() string {
	if p == nil {
		return ""
	}
	return p.id
}

// Name returns the display name.
func (p *Playlist) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

// Rename changes the display name. The identifier is left untouched.
func (p *Playlist) Rename(name string) {
	p.name = name
}

// Add appends sources to the playlist.
func (p *Playlist) Add(sources ...string) {
	p.sources = append(p.sources, sources...)
}

// Remove removes every occurrence of source.
// Returns the number of entries removed.
func (p *Playlist) Remove(source string) int {
	kept := p.sources[:0]
	removed := 0
	for _, s := range p.sources {
		if s == source {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	clear(p.sources[len(kept):])
	p.sources = kept
	return removed
}

// RemoveAt removes the source at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) RemoveAt(index int) bool {
	if index < 0 || index >= len(p.sources) {
		return false
	}
	p.sources = append(p.sources[:index], p.sources[index+1:]...)
	return true
}

// Move moves the source at fromIndex to toIndex.
// Returns false if either index is out of bounds.
func (p *Playlist) Move(fromIndex, toIndex int) bool {
	if fromIndex < 0 || fromIndex >= len(p.sources) {
		return false
	}
	if toIndex < 0 || toIndex >= len(p.sources) {
		return false
	}
	if fromIndex == toIndex {
		return true
	}

	s := p.sources[fromIndex]
	p.sources = append(p.sources[:fromIndex], p.sources[fromIndex+1:]...)
	p.sources = append(p.sources[:toIndex], append([]string{s}, p.sources[toIndex:]...)...)
	return true
}

// Clear removes all sources.
func (p *Playlist) Clear() {
	p.sources = p.sources[:0]
}

// Sources returns a copy of all sources.
func (p *Playlist) Sources() []string {
	if p == nil {
		return []string{}
	}
	result := make([]string, len(p.sources))
	copy(result, p.sources)
	return result
}

// Source returns the source at the given index, or "" if out of bounds.
func (p *Playlist) Source(index int) string {
	if p == nil || index < 0 || index >= len(p.sources) {
		return ""
	}
	return p.sources[index]
}

// Len returns the number of sources.
func (p *Playlist) Len() int {
	if p == nil {
		return 0
	}
	return len(p.sources)
}

// IsEmpty reports whether the playlist has no sources.
func (p *Playlist) IsEmpty() bool {
	return p.Len() == 0
}

// IndexOf returns the index of the first occurrence of source, or -1.
func (p *Playlist) IndexOf(source string) int {
	if p == nil {
		return -1
	}
	for i, s := range p.sources {
		if s == source {
			return i
		}
	}
	return -1
}

// Contains reports whether source appears at least once.
func (p *Playlist) Contains(source string) bool {
	return p.IndexOf(source) >= 0
}

// First returns the first source, or "" when empty.
func (p *Playlist) First() string {
	return p.Source(0)
}

// Last returns the last source, or "" when empty.
func (p *Playlist) Last() string {
	return p.Source(p.Len() - 1)
}

// Clone returns an independent copy sharing no storage with p.
// Cloning nil yields nil.
func (p *Playlist) Clone() *Playlist {
	if p == nil {
		return nil
	}
	return FromRecord(p.id, p.name, p.sources)
}

// WithSources returns a copy of p carrying the given sources instead of
// its own. Identity and name are preserved.
func (p *Playlist) WithSources(sources []string) *Playlist {
	return FromRecord(p.ID(), p.Name(), sources)
}
