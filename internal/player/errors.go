package player

// MediaError reports a source that could not be opened or decoded.
type MediaError struct {
	Path string
	Err  error
}

func (e *MediaError) Error() string {
	return "media " + e.Path + ": " + e.Err.Error()
}

func (e *MediaError) Unwrap() error {
	return e.Err
}
