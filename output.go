package prettyprint

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteOutput stores formatted output at path, creating missing parent
// directories. An existing file keeps its permission bits.
func WriteOutput(path, content string) error {
	if path == "" {
		return NewIOError("output path is empty", nil)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return NewIOError(fmt.Sprintf("failed to create directory %s", dir), err)
		}
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return NewIOError(fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
