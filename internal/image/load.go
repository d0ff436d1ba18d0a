package image

import (
	"io"
	"os"

	"github.com/joshuapare/qmakepatch/pkg/types"
)

// Load reads the file at path fully into memory.
//
// Every failure is a types.FileFailure: the file cannot be opened, sized or
// read, it is empty, or it is too large to address.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.Errorf(types.FileFailure, "could not open file '%s' for reading: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, types.Errorf(types.FileFailure, "could not determine size of file '%s': %w", path, err)
	}
	sz := st.Size()
	if sz == 0 {
		return nil, types.Errorf(types.FileFailure, "file '%s' is empty", path)
	}
	if sz > types.MaxImageSize {
		return nil, types.Errorf(types.FileFailure, "file '%s' has very large size of %d bytes", path, sz)
	}

	data := make([]byte, sz)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, types.Errorf(types.FileFailure, "could not read %d bytes of file '%s': %w", sz, path, err)
	}
	return New(data), nil
}
