// Package reels reads reel-strip resources.
//
// A strip file is CSV: one row per stop, one column per reel. Resources are read
// through an fs.FS so strips can ship embedded in the binary or live on disk.
package reels

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/errors"
)

// Load reads the strip at name and returns it indexed [reel][stop].
func Load(fsys fs.FS, name string) (domain.ReelStrip, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.ErrResourceNotFound(name, err)
		}
		return nil, errors.NewGameConfigError(errors.ErrCodeResourceNotFound,
			"failed to open reel strip "+name, err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, name)
}

// Parse reads a strip from r. name is only used in error messages.
func Parse(r io.Reader, name string) (domain.ReelStrip, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 0 // first row fixes the reel count

	var strip domain.ReelStrip
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewGameConfigError(errors.ErrCodeSchemaInvalid,
				"malformed reel strip "+name, err)
		}
		row++

		if strip == nil {
			strip = make(domain.ReelStrip, len(record))
		}
		for reel, cell := range record {
			sym := strings.TrimSpace(cell)
			if sym == "" {
				return nil, errors.ErrSchema("reel strip %s: empty symbol at row %d, reel %d", name, row, reel)
			}
			strip[reel] = append(strip[reel], sym)
		}
	}

	if row == 0 {
		return nil, errors.ErrSchema("reel strip %s is empty", name)
	}
	return strip, nil
}

// LoadAll loads every strip of files (strip name -> resource path), in name order.
func LoadAll(fsys fs.FS, files map[string]string) (map[string]domain.ReelStrip, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]domain.ReelStrip, len(files))
	for _, name := range names {
		strip, err := Load(fsys, files[name])
		if err != nil {
			return nil, err
		}
		out[name] = strip
	}
	return out, nil
}
