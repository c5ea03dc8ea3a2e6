package purepath

import "strings"

// driveSplit computes the volume designator and its length in the raw string.
// The drive is rendered with backslashes ("C:" or `\\host\share`) regardless
// of which separators the input used, while the returned length indexes the
// raw string. Posix paths have no drive concept.
func (p Path) driveSplit() (string, int) {
	if p.flavor != Windows {
		return "", 0
	}

	raw := p.raw
	if len(raw) >= 2 && raw[1] == ':' {
		return raw[:2], 2
	}

	if len(raw) >= 2 && p.flavor.isSep(raw[0]) && p.flavor.isSep(raw[1]) {
		parts := p.flavor.splitSeps(raw[2:], 3)
		if len(parts) >= 2 && parts[0] != "" && parts[1] != "" {
			return `\\` + parts[0] + `\` + parts[1], 2 + len(parts[0]) + 1 + len(parts[1])
		}
	}

	return "", 0
}

// Drive returns the leading volume designator ("C:" or a UNC host-share
// prefix), or the empty string if none.
func (p Path) Drive() string {
	drive, _ := p.driveSplit()

	return drive
}

// Root returns the flavor separator when the path is absolute, else the
// empty string. Root detection is independent of drive detection: a path can
// have a root without a drive.
func (p Path) Root() string {
	raw := p.raw
	if len(raw) >= 3 && raw[1] == ':' && p.flavor.isSep(raw[2]) {
		return p.flavor.Separator()
	}

	if len(raw) >= 1 && p.flavor.isSep(raw[0]) {
		return p.flavor.Separator()
	}

	return ""
}

// rest returns the raw string with any drive prefix removed.
func (p Path) rest() string {
	_, n := p.driveSplit()

	return p.raw[n:]
}

// Name returns the final component including its suffix, or the empty string
// when the path ends in a root or drive only.
func (p Path) Name() string {
	rest := p.rest()
	if i := p.flavor.lastSep(rest); i >= 0 {
		return rest[i+1:]
	}

	return rest
}

// splitExt splits a final component into stem and extension. It mirrors
// generic filename/extension splitting: the extension starts at the last dot
// and must be non-empty after it. A leading-dot name like ".gitignore" is
// therefore all extension and no stem, which is a documented quirk rather
// than Unix dotfile semantics.
func splitExt(name string) (string, string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return name, ""
	}

	return name[:i], name[i:]
}

// Stem returns the final component without its last suffix.
func (p Path) Stem() string {
	stem, _ := splitExt(p.Name())

	return stem
}

// Suffix returns the last dot-extension of the final component, including
// the leading dot, or the empty string if there is none.
func (p Path) Suffix() string {
	_, ext := splitExt(p.Name())

	return ext
}

// Suffixes returns all dot-extensions of the final component, outermost
// first: "archive.tar.gz" yields [".tar", ".gz"].
func (p Path) Suffixes() []string {
	var out []string

	cur := p.Name()

	for {
		stem, ext := splitExt(cur)
		if ext == "" {
			break
		}

		out = append(out, ext)
		cur = stem
	}

	// Collected innermost-first; reverse for the public order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// dirComponents returns the intermediate directory names between the
// drive/root and the final component, in ascending order.
func (p Path) dirComponents() []string {
	rest := p.rest()

	i := p.flavor.lastSep(rest)
	if i < 0 {
		return nil
	}

	var out []string

	for _, seg := range p.flavor.splitSeps(rest[:i], len(rest)) {
		if seg != "" {
			out = append(out, seg)
		}
	}

	return out
}

// Parts returns the decomposed path segments: a synthetic root segment
// first, then each intermediate directory name, then the final component's
// stem and suffix as separate trailing elements. The trailing name/extension
// split and the unconditional root segment are deliberate quirks of the
// contract, preserved rather than fixed.
func (p Path) Parts() []string {
	parts := []string{p.flavor.Separator()}
	parts = append(parts, p.dirComponents()...)

	if stem := p.Stem(); stem != "" {
		parts = append(parts, stem)
	}

	if suffix := p.Suffix(); suffix != "" {
		parts = append(parts, suffix)
	}

	return parts
}
