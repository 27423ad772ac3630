package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/nocturnecity/play-assets/pkg"
)

var errFontNotFound = errors.New("font file not found")

// FontResolver picks the first loadable font from ordered candidate lists. Bare file names
// are looked up in the search directories.
type FontResolver struct {
	opts   pkg.FontOptions
	log    *StdLog
	parsed map[string]*opentype.Font
}

func NewFontResolver(opts pkg.FontOptions, stdLog *StdLog) *FontResolver {
	return &FontResolver{
		opts:   opts,
		log:    stdLog,
		parsed: map[string]*opentype.Font{},
	}
}

// Face returns a face of size pixels. When no candidate loads it returns the built-in
// 7x13 face and false; callers must accept that it ignores size.
func (fr *FontResolver) Face(size int, bold bool) (font.Face, bool) {
	candidates := fr.opts.Regular
	if bold {
		candidates = fr.opts.Bold
	}
	for _, candidate := range candidates {
		face, err := fr.loadFace(candidate, size)
		if err != nil {
			fr.log.Debug("font candidate %s skipped: %v", candidate, err)
			continue
		}
		fr.log.Debug("font %s loaded at %dpx", candidate, size)
		return face, true
	}
	fr.log.Warn("no font candidate loaded (bold=%t), using built-in face", bold)
	return basicfont.Face7x13, false
}

func (fr *FontResolver) loadFace(candidate string, size int) (font.Face, error) {
	path, err := fr.locate(candidate)
	if err != nil {
		return nil, err
	}
	f, ok := fr.parsed[path]
	if !ok {
		f, err = parseFontFile(path)
		if err != nil {
			return nil, err
		}
		fr.parsed[path] = f
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func (fr *FontResolver) locate(candidate string) (string, error) {
	candidate = expandHome(candidate)
	if isFile(candidate) {
		return candidate, nil
	}
	if filepath.IsAbs(candidate) || strings.ContainsRune(candidate, filepath.Separator) {
		return "", fmt.Errorf("%s: %w", candidate, errFontNotFound)
	}
	for _, dir := range fr.opts.SearchDirs {
		if found := findFile(expandHome(dir), candidate); found != "" {
			return found, nil
		}
	}
	return "", fmt.Errorf("%s: %w", candidate, errFontNotFound)
}

func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font error: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse font collection error: %w", err)
		}
		return coll.Font(0)
	default:
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse font error: %w", err)
		}
		return f, nil
	}
}

func findFile(root, name string) string {
	found := ""
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() && d.Name() == name {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
