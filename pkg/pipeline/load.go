package pipeline

import (
	"os"

	"github.com/matzehuels/panelize/pkg/cache"
	"github.com/matzehuels/panelize/pkg/errors"
	"github.com/matzehuels/panelize/pkg/svgdoc"
	"github.com/matzehuels/panelize/pkg/units"
)

// Input is a loaded source document.
type Input struct {
	Path string
	Hash string
	Doc  *svgdoc.Document
}

// Load reads and parses the input file. The hash covers the raw bytes, so
// cached artifacts are invalidated by any edit to the file.
func Load(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputIO, err, "failed to open file %s", path)
	}
	doc, err := svgdoc.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Input{Path: path, Hash: cache.Hash(data), Doc: doc}, nil
}

func formatMM(mm float64) string {
	return units.FormatLength(mm)
}
