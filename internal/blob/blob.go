// Package blob stores request pictures and proof documents as immutable
// objects addressed by an opaque reference.
package blob

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind groups objects by purpose.
type Kind string

const (
	KindPicture Kind = "pictures"
	KindProof   Kind = "proofs"
)

// ErrNotFound is returned when a reference names no stored object.
var ErrNotFound = errors.New("blob not found")

// Store persists blobs. References returned by Put are stable and are what
// records and requests carry.
type Store interface {
	Put(ctx context.Context, kind Kind, data []byte) (string, error)
	Get(ctx context.Context, ref string) ([]byte, error)
	Delete(ctx context.Context, ref string) error
}

func newRef(kind Kind) string {
	return fmt.Sprintf("%s/%s", kind, uuid.New())
}

// validRef rejects references that could escape their kind directory.
func validRef(ref string) error {
	kind, name, ok := strings.Cut(ref, "/")
	if !ok || (Kind(kind) != KindPicture && Kind(kind) != KindProof) {
		return fmt.Errorf("invalid blob reference %q", ref)
	}
	if _, err := uuid.Parse(name); err != nil {
		return fmt.Errorf("invalid blob reference %q", ref)
	}
	return nil
}
