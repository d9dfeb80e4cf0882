package instructions

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"dapka/internal/lib"
)

// DefaultPath is where GitHub looks for repository custom instructions for Copilot review.
const DefaultPath = ".github/copilot-instructions.md"

var ErrNotFound = errors.New("custom instructions file not found")

// Load reads the AI reviewer's custom instructions. A missing file is not fatal:
// it is logged and reported as ErrNotFound.
func Load(log *slog.Logger, path string) (string, error) {
	const op = "instructions.Load"

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("custom instructions file not found, using default instructions",
				slog.String("path", path),
			)
			return "", ErrNotFound
		}
		return "", lib.Err(op, err)
	}

	log.Info("loaded custom instructions",
		slog.String("path", path),
		slog.Int("bytes", len(data)),
	)
	return string(data), nil
}
