package board

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Symbol is the face value printed on a tile. Two tiles pair when their
// symbols are equal.
type Symbol string

// Palette is an ordered set of distinct symbols.
type Palette []Symbol

var defaultPalette = Palette{
	"🍎", "🍌", "🍒", "🍕", "🎁", "🎈", "🎲", "🎸",
	"⭐", "🌙", "🌻", "🦋", "🐠", "🦅", "🐢", "🐙",
	"⚡", "🔥", "💎", "🎯",
}

// DefaultPalette returns the built-in symbols. It is large enough for every preset.
func DefaultPalette() Palette {
	out := make(Palette, len(defaultPalette))
	copy(out, defaultPalette)
	return out
}

// LoadPalette reads symbols from a list of paths (files or directories).
// Symbols are whitespace separated; text after '#' is ignored.
func LoadPalette(paths []string) (Palette, error) {
	var palette Palette
	seen := make(map[Symbol]string)

	add := func(syms []Symbol, source string) error {
		for _, sym := range syms {
			if prev, ok := seen[sym]; ok {
				return fmt.Errorf("duplicate symbol %q in %s (first seen in %s)", sym, source, prev)
			}
			seen[sym] = source
			palette = append(palette, sym)
		}
		return nil
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if !info.IsDir() {
			syms, err := loadSymbolFile(path)
			if err != nil {
				return nil, err
			}
			if err := add(syms, path); err != nil {
				return nil, err
			}
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			file := filepath.Join(path, entry.Name())
			syms, err := loadSymbolFile(file)
			if err != nil {
				return nil, err
			}
			if err := add(syms, file); err != nil {
				return nil, err
			}
		}
	}

	if len(palette) == 0 {
		return nil, fmt.Errorf("no symbols found in provided paths")
	}
	return palette, nil
}

func loadSymbolFile(path string) ([]Symbol, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var syms []Symbol
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, field := range strings.Fields(line) {
			syms = append(syms, Symbol(field))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan file %s: %w", path, err)
	}
	return syms, nil
}
