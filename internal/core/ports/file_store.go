package ports

import "io"

// FileStore abstracts the flat upload directory where article attachments
// live. Stored names are already collision-resistant when they reach Save.
type FileStore interface {
	Save(name string, r io.Reader) error
	Remove(name string) error
}
