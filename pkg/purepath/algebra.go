package purepath

import (
	"fmt"
	stdpath "path"
	"strings"
)

// Parent returns the immediate ancestor, or the path unchanged when it is
// already a root, ".", or "..".
func (p Path) Parent() Path {
	if p.raw == "" || p.raw == "." || p.raw == ".." || p.isRootOnly() {
		return p
	}

	_, dn := p.driveSplit()
	rest := p.raw[dn:]

	end := len(rest)
	for end > 0 && p.flavor.isSep(rest[end-1]) {
		end--
	}

	trimmed := rest[:end]

	i := p.flavor.lastSep(trimmed)
	if i < 0 {
		if dn > 0 {
			return Path{raw: p.raw[:dn], flavor: p.flavor}
		}

		return Path{raw: ".", flavor: p.flavor}
	}

	if i == 0 {
		// The parent is the root itself; keep the separator as spelled.
		return Path{raw: p.raw[:dn] + trimmed[:1], flavor: p.flavor}
	}

	return Path{raw: p.raw[:dn] + trimmed[:i], flavor: p.flavor}
}

// Parents returns every ancestor of the path in ascending order, from the
// filesystem root (or ".") down to, but excluding, the path itself.
func (p Path) Parents() []Path {
	var out []Path

	cur := p

	for {
		next := cur.Parent()
		if next == cur {
			break
		}

		out = append(out, next)
		cur = next
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// isRootOnly reports whether the path is nothing but a drive and/or root.
func (p Path) isRootOnly() bool {
	rest := p.rest()
	if rest == "" {
		_, dn := p.driveSplit()

		return dn > 0
	}

	for i := 0; i < len(rest); i++ {
		if !p.flavor.isSep(rest[i]) {
			return false
		}
	}

	return true
}

// Join appends elements one at a time, stripping any trailing separators
// from the left operand before concatenating with the flavor separator. It
// is the "/" operator of the contract; no normalization is applied beyond
// the trailing-separator strip.
func (p Path) Join(elems ...string) Path {
	raw := p.raw

	for _, e := range elems {
		end := len(raw)
		for end > 0 && p.flavor.isSep(raw[end-1]) {
			end--
		}

		raw = raw[:end] + p.flavor.Separator() + e
	}

	return Path{raw: raw, flavor: p.flavor}
}

// JoinPath folds all operands left to right using the native path-join rule,
// which collapses redundant separators and dot segments. The result takes
// the flavor of the first operand. It fails when called with no paths.
func JoinPath(paths ...Path) (Path, error) {
	if len(paths) == 0 {
		return Path{}, ErrNoPaths
	}

	f := paths[0].flavor

	elems := make([]string, len(paths))
	for i, q := range paths {
		s := q.raw
		if f == Windows {
			s = strings.ReplaceAll(s, `\`, "/")
		}

		elems[i] = s
	}

	joined := stdpath.Join(elems...)
	if f == Windows {
		joined = strings.ReplaceAll(joined, "/", `\`)
	}

	return Path{raw: joined, flavor: f}, nil
}

// WithName replaces the final component, preserving the directory portion.
func (p Path) WithName(name string) (Path, error) {
	old := p.Name()
	if old == "" {
		return Path{}, fmt.Errorf("%w: %q", ErrNoName, p.raw)
	}

	if name == "" || p.flavor.lastSep(name) >= 0 {
		return Path{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return Path{raw: p.raw[:len(p.raw)-len(old)] + name, flavor: p.flavor}, nil
}

// WithSuffix replaces the last dot-extension of the final component,
// preserving the stem. An empty suffix removes the extension.
func (p Path) WithSuffix(suffix string) (Path, error) {
	name := p.Name()
	if name == "" {
		return Path{}, fmt.Errorf("%w: %q", ErrNoName, p.raw)
	}

	stem, _ := splitExt(name)

	return Path{raw: p.raw[:len(p.raw)-len(name)] + stem + suffix, flavor: p.flavor}, nil
}

// RelativeTo returns the remainder of the path below the given ancestor.
// The ancestor may be named either by a single component ("nim") or by the
// full ancestor path ("/home/adam"). It fails when other does not identify
// an ancestor of the path.
func (p Path) RelativeTo(other string) (Path, error) {
	segs := p.dirComponents()
	if name := p.Name(); name != "" {
		segs = append(segs, name)
	}

	sep := p.flavor.Separator()
	anchor := p.Drive() + p.Root()

	for i := 0; i < len(segs)-1; i++ {
		if segs[i] != other && anchor+strings.Join(segs[:i+1], sep) != other {
			continue
		}

		return Path{raw: strings.Join(segs[i+1:], sep), flavor: p.flavor}, nil
	}

	return Path{}, fmt.Errorf("%w: %q is not an ancestor of %q", ErrNotAncestor, other, p.raw)
}
