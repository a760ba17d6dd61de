package reels

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfgerrors "github.com/AccelByte/extend-slot-config-common/pkg/errors"
)

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"BR0.csv":    {Data: []byte("L1,H1,S\nW,L2,L1\nH2,S,L3\nL1,L1,W\n")},
		"spaced.csv": {Data: []byte("L1, H1 ,S\n")},
		"ragged.csv": {Data: []byte("L1,H1,S\nW,L2\n")},
		"hole.csv":   {Data: []byte("L1,,S\n")},
		"empty.csv":  {Data: []byte("")},
	}

	t.Run("columns become reels", func(t *testing.T) {
		strip, err := Load(fsys, "BR0.csv")
		require.NoError(t, err)

		assert.Equal(t, 3, strip.NumReels())
		assert.Equal(t, 4, strip.Len(0))
		assert.Equal(t, []string{"L1", "W", "H2", "L1"}, strip[0])
		assert.Equal(t, []string{"S", "L1", "L3", "W"}, strip[2])
		assert.Equal(t, []string{"H1", "H2", "L1", "L2", "L3", "S", "W"}, strip.Symbols())
	})

	t.Run("cells are trimmed", func(t *testing.T) {
		strip, err := Load(fsys, "spaced.csv")
		require.NoError(t, err)
		assert.Equal(t, "H1", strip[1][0])
	})

	t.Run("missing file is resource not found", func(t *testing.T) {
		_, err := Load(fsys, "FR0.csv")
		require.Error(t, err)
		assert.True(t, cfgerrors.IsCode(err, cfgerrors.ErrCodeResourceNotFound))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	schemaTests := []struct {
		name string
		file string
	}{
		{name: "ragged rows", file: "ragged.csv"},
		{name: "empty cell", file: "hole.csv"},
		{name: "empty file", file: "empty.csv"},
	}
	for _, tt := range schemaTests {
		t.Run(tt.name, func(t *testing.T) {
			strip, err := Load(fsys, tt.file)
			require.Error(t, err)
			assert.Nil(t, strip)
			assert.True(t, cfgerrors.IsCode(err, cfgerrors.ErrCodeSchemaInvalid), "got %v", err)
		})
	}
}

func TestParse(t *testing.T) {
	strip, err := Parse(strings.NewReader("A,B\nC,D\n"), "inline")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, strip[0])
	assert.Equal(t, []string{"B", "D"}, strip[1])
	assert.Equal(t, 0, strip.Len(5))
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"reels/BR0.csv": {Data: []byte("L1,H1\n")},
		"reels/FR0.csv": {Data: []byte("W,S\n")},
	}

	t.Run("loads every strip", func(t *testing.T) {
		strips, err := LoadAll(fsys, map[string]string{"BR0": "reels/BR0.csv", "FR0": "reels/FR0.csv"})
		require.NoError(t, err)
		assert.Len(t, strips, 2)
		assert.Equal(t, []string{"W"}, []string(strips["FR0"][0]))
	})

	t.Run("one missing strip fails the whole load", func(t *testing.T) {
		strips, err := LoadAll(fsys, map[string]string{"BR0": "reels/BR0.csv", "WCAP": "reels/WCAP.csv"})
		require.Error(t, err)
		assert.Nil(t, strips)
		assert.Contains(t, err.Error(), "reels/WCAP.csv")
	})
}
