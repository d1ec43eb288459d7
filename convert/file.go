package convert

import (
	"fmt"
	"os"
	"path/filepath"
)

// fileConverter references a pre-existing data file: the fragment records
// the file's absolute path and carries no rows and no geometry (the view
// layer injects defaults).
type fileConverter struct {
	path   string
	target Format
}

func (c *fileConverter) Convert(opts Options) (*Fragment, error) {
	opts.defaults()
	if opts.Output != nil {
		return nil, &UnsupportedConversionError{Source: KindFile, Target: c.target, Reason: "input is already a file; an output file makes no sense"}
	}
	if _, err := os.Stat(c.path); err != nil {
		return nil, fmt.Errorf("convert: data file: %w", err)
	}
	abs, err := filepath.Abs(c.path)
	if err != nil {
		return nil, fmt.Errorf("convert: resolve data file path: %w", err)
	}

	frag := &Fragment{
		Target: c.target,
		Data:   &DataBlock{DataFilename: filepath.ToSlash(abs)},
	}
	applySetup(frag, opts)
	return frag, nil
}
