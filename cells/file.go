package cells

import (
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// LoadFile loads a grid from a .cells file
func LoadFile(filename string) (*model.Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to open file: %+v", filename)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to parse file: %+v", filename)
	}
	return g, nil
}

// ImportFile merges a .cells file into an existing grid
func ImportFile(g *model.Grid, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "[ImportFile] failed to open file: %+v", filename)
	}
	defer f.Close()

	return errors.Wrapf(Import(g, f), "[ImportFile] failed to import file: %+v", filename)
}

// SaveFile writes the grid to filename, replacing any existing file
func SaveFile(g *model.Grid, filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[SaveFile] failed to create file: %+v", filename)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "[SaveFile] failed to close file: %+v", filename)
		}
	}()

	return errors.Wrapf(Save(f, g), "[SaveFile] failed to write file: %+v", filename)
}
