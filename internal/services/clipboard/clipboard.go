// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no clipboard utility exists on this system.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

const copyErrorFormat = "copy result to clipboard: %w"

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct {
	writeAll    func(text string) error
	unsupported bool
}

// NewService constructs a Clipboard service implementation.
func NewService() *Service {
	return &Service{writeAll: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	if service.unsupported {
		return fmt.Errorf(copyErrorFormat, ErrClipboardUnavailable)
	}
	if writeError := service.writeAll(text); writeError != nil {
		return fmt.Errorf(copyErrorFormat, writeError)
	}
	return nil
}

var _ Copier = (*Service)(nil)
