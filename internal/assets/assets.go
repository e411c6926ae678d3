// Package assets loads the ASCII art the game is drawn from.
//
// An asset is a plain text file of rows. Loading fits it to a requested
// width and height: short rows are padded with spaces, long rows are cut,
// and a file with fewer rows than requested is rejected.
package assets

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// Ext is the file extension of asset files.
const Ext = ".ascii"

//go:embed files/*.ascii
var embedded embed.FS

var (
	// ErrAssetNotFound is returned when no file exists for an asset name.
	ErrAssetNotFound = errors.New("assets: not found")

	// ErrShortAsset is returned when a file has fewer rows than requested.
	ErrShortAsset = errors.New("assets: too few rows")
)

// Source produces character buffers for named assets.
type Source interface {
	// Load returns exactly w·h cells for name.
	Load(name string, w, h int) ([]byte, error)

	// LoadFrames returns n buffers of w·h cells read from consecutive rows.
	LoadFrames(name string, w, h, n int) ([][]byte, error)
}

// Library is a Source backed by a file system.
type Library struct {
	fsys fs.FS
	root string
}

// Embedded returns the library compiled into the binary.
func Embedded() *Library {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded files: %v", err))
	}
	return &Library{fsys: sub, root: "embedded"}
}

// Dir returns a library reading from a directory on disk.
func Dir(dir string) (*Library, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", dir)
	}
	return &Library{fsys: os.DirFS(dir), root: dir}, nil
}

// Open returns the directory library when dir is set and the embedded one
// otherwise.
func Open(dir string) (*Library, error) {
	if dir == "" {
		return Embedded(), nil
	}
	return Dir(dir)
}

// FS wraps an arbitrary file system, mostly for tests.
func FS(fsys fs.FS) *Library {
	return &Library{fsys: fsys, root: "fs"}
}

// Root describes where the library reads from.
func (l *Library) Root() string {
	return l.root
}

// Names lists the asset names available, sorted.
func (l *Library) Names() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "*"+Ext)
	if err != nil {
		return nil, fmt.Errorf("assets: list: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), Ext))
	}
	sort.Strings(names)
	return names, nil
}

// Load implements Source.
func (l *Library) Load(name string, w, h int) ([]byte, error) {
	frames, err := l.LoadFrames(name, w, h, 1)
	if err != nil {
		return nil, err
	}
	return frames[0], nil
}

// LoadFrames implements Source.
func (l *Library) LoadFrames(name string, w, h, n int) ([][]byte, error) {
	if w <= 0 || h <= 0 || n <= 0 {
		return nil, fmt.Errorf("assets: %s: invalid size %dx%d x%d", name, w, h, n)
	}

	data, err := fs.ReadFile(l.fsys, name+Ext)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s in %s", ErrAssetNotFound, name, l.root)
		}
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}

	rows, err := fit(data, w, h*n)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}

	frames := make([][]byte, n)
	for i := range frames {
		frames[i] = rows[i*w*h : (i+1)*w*h]
	}
	return frames, nil
}

// fit reads rows lines from data into a w·rows buffer.
func fit(data []byte, w, rows int) ([]byte, error) {
	buf := bytes.Repeat([]byte{' '}, w*rows)
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 256), 1<<20)

	y := 0
	for y < rows && sc.Scan() {
		line := bytes.TrimRight(sc.Bytes(), "\r")
		copy(buf[y*w:(y+1)*w], line)
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if y < rows {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrShortAsset, y, rows)
	}
	return buf, nil
}
