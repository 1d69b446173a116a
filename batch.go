package prettyprint

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FileResult is the outcome of formatting one file.
type FileResult struct {
	Path   string
	Output string
	Err    error
}

// FormatFiles formats independent files concurrently with at most limit
// workers (GOMAXPROCS when limit <= 0). Results keep the order of paths; a
// failing file does not stop the others. The returned error is non-nil only
// when ctx is cancelled.
func FormatFiles(ctx context.Context, paths []string, cfg *Config, limit int) ([]FileResult, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := FormatFile(path, cfg)
			if err != nil {
				slog.Debug("format failed", "path", path, "error", err)
			}
			results[i] = FileResult{Path: path, Output: out, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
