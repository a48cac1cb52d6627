// Package script loads blip program text.
package script

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdinName is the name reported for programs read from standard input.
const StdinName = "stdin"

// Script is a loaded program.
type Script struct {
	Name    string // base file name, or StdinName
	Content string // program text with \n line endings
	Size    int64  // size in bytes as read
}

// Load reads program text from path, or from stdin when path is empty
// or "-". Line endings are normalized to \n so the compiler's 1-based line
// numbers match what the user sees in any editor.
func Load(path string, stdin io.Reader) (*Script, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read program from stdin: %w", err)
		}
		return newScript(StdinName, data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}
	return newScript(filepath.Base(path), data), nil
}

func newScript(name string, data []byte) *Script {
	return &Script{
		Name:    name,
		Content: strings.ReplaceAll(string(data), "\r\n", "\n"),
		Size:    int64(len(data)),
	}
}
