// Copyright 2019-present Ganbaro Digital Ltd
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions
// are met:
//
//   * Redistributions of source code must retain the above copyright
//     notice, this list of conditions and the following disclaimer.
//
//   * Redistributions in binary form must reproduce the above copyright
//     notice, this list of conditions and the following disclaimer in
//     the documentation and/or other materials provided with the
//     distribution.
//
//   * Neither the names of the copyright holders nor the names of his
//     contributors may be used to endorse or promote products derived
//     from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS
// FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE
// COPYRIGHT OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT,
// INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
// BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
// LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
// CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT
// LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN
// ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

// Package globfs implements wordexpand.Globber against the real
// filesystem: "**" patterns (only honoured when the caller's GlobFlags
// asks for ExtendedGlob) are matched with bmatcuk/doublestar, everything
// else is matched component-by-component with gobwas/glob, which is how
// a real shell actually walks a pattern — one path segment at a time,
// rather than as a single opaque full-path match.
package globfs

import (
	"context"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"

	"github.com/ganbarodigital/go_wordexpand"
)

// FS performs glob matching rooted at Root (the working directory when
// empty).
type FS struct {
	Root string
}

// New returns a FS rooted at the given directory.
func New(root string) *FS {
	return &FS{Root: root}
}

func (f *FS) root() string {
	if f.Root != "" {
		return f.Root
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// Glob implements wordexpand.Globber.
func (f *FS) Glob(ctx context.Context, pattern string, flags wordexpand.GlobFlags) ([]string, error) {
	if strings.Contains(pattern, "**") {
		if !flags.ExtendedGlob {
			return f.globSegments(ctx, pattern, flags)
		}
		return f.globRecursive(pattern, flags)
	}
	return f.globSegments(ctx, pattern, flags)
}

func (f *FS) globRecursive(pattern string, flags wordexpand.GlobFlags) ([]string, error) {
	fsys := os.DirFS(f.root())
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	out := filterDotAndMark(f.root(), matches, flags)
	sort.Strings(out)
	return out, nil
}

// globSegments matches pattern one path component at a time against the
// real directory tree, the way POSIX shells implement filename
// generation: each "*"/"?"/"[...]" segment is compiled independently so
// that "*" never crosses a "/".
func (f *FS) globSegments(ctx context.Context, pattern string, flags wordexpand.GlobFlags) ([]string, error) {
	segs := strings.Split(pattern, "/")
	root := f.root()
	dirs := []string{""}
	if path.IsAbs(pattern) {
		root = "/"
		segs = segs[1:]
	}

	for i, seg := range segs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if seg == "" {
			continue
		}
		g, literal := compileSegment(seg, flags)
		var next []string
		for _, d := range dirs {
			entries, err := os.ReadDir(path.Join(root, d))
			if err != nil {
				continue
			}
			for _, ent := range entries {
				name := ent.Name()
				if !flags.IncludeDot && strings.HasPrefix(name, ".") && !strings.HasPrefix(seg, ".") {
					continue
				}
				if literal {
					if name != seg {
						continue
					}
				} else if !g.Match(name) {
					continue
				}
				isLast := i == len(segs)-1
				rel := path.Join(d, name)
				if !isLast && !ent.IsDir() {
					continue
				}
				if isLast && flags.MarkDirs && ent.IsDir() {
					rel += "/"
				}
				next = append(next, rel)
			}
		}
		dirs = next
		if len(dirs) == 0 {
			return nil, nil
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

func compileSegment(seg string, flags wordexpand.GlobFlags) (glob.Glob, bool) {
	if !strings.ContainsAny(seg, "*?[") {
		return nil, true
	}
	opts := []rune{'*', '?', '[', ']'}
	g, err := glob.Compile(seg, opts...)
	if err != nil {
		return glob.MustCompile(glob.QuoteMeta(seg)), false
	}
	if flags.CaseFold {
		folded, err := glob.Compile(strings.ToLower(seg), opts...)
		if err == nil {
			return caseFoldGlob{folded}, false
		}
	}
	return g, false
}

type caseFoldGlob struct {
	g glob.Glob
}

func (c caseFoldGlob) Match(s string) bool {
	return c.g.Match(strings.ToLower(s))
}

func filterDotAndMark(root string, matches []string, flags wordexpand.GlobFlags) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		base := path.Base(m)
		if !flags.IncludeDot && strings.HasPrefix(base, ".") {
			continue
		}
		if flags.MarkDirs {
			if info, err := fs.Stat(os.DirFS(root), m); err == nil && info.IsDir() {
				m += "/"
			}
		}
		out = append(out, m)
	}
	return out
}
