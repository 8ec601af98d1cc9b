package form

import (
	"context"
	"errors"

	"github.com/dkurbatovs/pulse/internal/filex"
)

// readDataURL is an indirection over filex.ReadDataURL so tests can stage
// pictures without touching the filesystem.
var readDataURL = filex.ReadDataURL

// ErrNoFile is returned by StagePicture when it is offered nothing.
var ErrNoFile = errors.New("no file provided")

// StagePicture encodes the first offered file to a data URL on its own
// goroutine and merges the result into the draft once encoding completes.
// Extra files are silently ignored. The merge is last-write-wins on the
// picture key alone; edits to other fields made while encoding is pending
// are unaffected.
//
// The returned channel receives the staging outcome exactly once. Callers
// that only care about eventual consistency may discard it.
func (e *Engine) StagePicture(paths ...string) <-chan error {
	done := make(chan error, 1)
	if len(paths) == 0 {
		done <- ErrNoFile
		return done
	}
	path := paths[0]

	go func() {
		name, dataURL, err := readDataURL(path)
		if err != nil {
			e.log.Warn(context.Background(), "picture staging failed", "path", path, "error", err)
			done <- err
			return
		}

		e.mu.Lock()
		e.draft.Picture = Picture{Name: name, Base64URL: dataURL}
		e.mu.Unlock()

		done <- nil
	}()
	return done
}
