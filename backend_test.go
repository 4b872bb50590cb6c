package filelister

import (
	"errors"
	"reflect"
	"runtime"
	"slices"
	"sort"
	"testing"
)

func sortEntries(entries []Entry) []Entry {
	out := slices.Clone(entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func assertEntries(t *testing.T, got []Entry, want ...Entry) {
	t.Helper()
	if !slices.Equal(sortEntries(got), sortEntries(want)) {
		t.Errorf("got entries %+v, want %+v", got, want)
	}
}

func TestBackendByName(t *testing.T) {
	cases := []struct {
		name string
		want Backend
	}{
		{"", DefaultBackend()},
		{"default", DefaultBackend()},
		{"glob", GlobBackend{}},
		{"POSIX", GlobBackend{}},
		{"native", NewNativeBackend()},
		{"null", NullBackend{}},
		{"none", NullBackend{}},
	}
	for _, tc := range cases {
		got, err := BackendByName(tc.name)
		if err != nil {
			t.Errorf("BackendByName(%q): %v", tc.name, err)
			continue
		}
		if reflect.TypeOf(got) != reflect.TypeOf(tc.want) {
			t.Errorf("BackendByName(%q) gave a %T, want a %T", tc.name, got, tc.want)
		}
	}
	if _, err := BackendByName("ftp"); err == nil {
		t.Error("expected an error for an unknown backend")
	}
}

func TestDefaultBackend(t *testing.T) {
	b := DefaultBackend()
	if runtime.GOOS == "windows" {
		if _, ok := b.(*NativeBackend); !ok {
			t.Errorf("expected the native backend, got %T", b)
		}
	} else if _, ok := b.(GlobBackend); !ok {
		t.Errorf("expected the glob backend, got %T", b)
	}
}

func TestNullBackend(t *testing.T) {
	entries, err := NullBackend{}.ListEntries(".")
	if err != nil || len(entries) != 0 {
		t.Errorf("got %v, %v", entries, err)
	}
}

func TestGlobBackend_MarksDirectories(t *testing.T) {
	withTempDir(t)
	writeSourceTree(t)
	entries, err := GlobBackend{}.ListEntries("src/")
	if err != nil {
		t.Fatal(err)
	}
	assertEntries(t, entries,
		Entry{Name: "src/a.cpp"},
		Entry{Name: "src/a.h"},
		Entry{Name: "src/sub/", IsDir: true})

	entries, err = GlobBackend{}.ListEntries("src")
	if err != nil {
		t.Fatal(err)
	}
	assertEntries(t, entries, Entry{Name: "src/", IsDir: true})
}

func TestGlobBackend_Pattern(t *testing.T) {
	withTempDir(t)
	writeSourceTree(t)
	writeFile(t, "src/c.cpp", "")
	entries, err := GlobBackend{}.ListEntries("src/*.cpp")
	if err != nil {
		t.Fatal(err)
	}
	assertEntries(t, entries, Entry{Name: "src/a.cpp"}, Entry{Name: "src/c.cpp"})

	entries, err = GlobBackend{}.ListEntries("s?c/[ab].*")
	if err != nil {
		t.Fatal(err)
	}
	assertEntries(t, entries, Entry{Name: "src/a.cpp"}, Entry{Name: "src/a.h"})
}

func TestGlobBackend_HiddenFiles(t *testing.T) {
	withTempDir(t)
	writeFile(t, "src/.hidden.cpp", "")
	writeFile(t, "src/shown.cpp", "")
	writeFile(t, "dot/.h.c", "")

	entries, err := GlobBackend{}.ListEntries("src/")
	if err != nil {
		t.Fatal(err)
	}
	assertEntries(t, entries, Entry{Name: "src/shown.cpp"})

	entries, err = GlobBackend{}.ListEntries("dot/*")
	if err != nil {
		t.Fatal(err)
	}
	assertEntries(t, entries)

	entries, err = GlobBackend{}.ListEntries("*/*.cpp")
	if err != nil {
		t.Fatal(err)
	}
	assertEntries(t, entries, Entry{Name: "src/shown.cpp"})

	// Named explicitly, or with a pattern that starts with a dot, it is found
	entries, err = GlobBackend{}.ListEntries("src/.hidden.cpp")
	if err != nil {
		t.Fatal(err)
	}
	assertEntries(t, entries, Entry{Name: "src/.hidden.cpp"})

	entries, err = GlobBackend{}.ListEntries("dot/.h*")
	if err != nil {
		t.Fatal(err)
	}
	assertEntries(t, entries, Entry{Name: "dot/.h.c"})
}

func TestGlobBackend_Missing(t *testing.T) {
	withTempDir(t)
	for _, path := range []string{"missing/", "missing"} {
		entries, err := GlobBackend{}.ListEntries(path)
		if err == nil {
			t.Errorf("ListEntries(%q): expected an error", path)
		}
		if len(entries) != 0 {
			t.Errorf("ListEntries(%q) = %+v, want nothing", path, entries)
		}
	}
}

func TestSplitGlob(t *testing.T) {
	cases := []struct {
		pattern, prefix, rest string
	}{
		{"src/*", "src/", "*"},
		{"./src/*.c", "./src/", "*.c"},
		{"src/../x/a?.c", "src/../x/", "a?.c"},
		{"*.c", "", "*.c"},
		{"a/[bc]/d", "a/", "[bc]/d"},
		{"/abs/*", "/abs/", "*"},
		{"plain/file.c", "plain/file.c", ""},
	}
	for _, tc := range cases {
		prefix, rest := splitGlob(tc.pattern)
		if prefix != tc.prefix || rest != tc.rest {
			t.Errorf("splitGlob(%q) = %q, %q, want %q, %q", tc.pattern, prefix, rest, tc.prefix, tc.rest)
		}
	}
}

func TestShellPattern(t *testing.T) {
	cases := map[string]string{
		"*.c":       "*.c",
		"**/*.c":    "*/*.c",
		"{a,b}.c":   `\{a,b\}.c`,
		"x/***/y.c": "x/*/y.c",
	}
	for in, want := range cases {
		if got := shellPattern(in); got != want {
			t.Errorf("shellPattern(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHiddenMatch(t *testing.T) {
	cases := []struct {
		pattern, match string
		want           bool
	}{
		{"*", ".h.c", true},
		{"*", "v.c", false},
		{".*", ".h.c", false},
		{"*/*.c", ".git/x.c", true},
		{"*/*.c", "src/.x.c", true},
		{"src/*.c", "src/x.c", false},
		{"[.]x", ".x", true},
	}
	for _, tc := range cases {
		if got := hiddenMatch(tc.pattern, tc.match); got != tc.want {
			t.Errorf("hiddenMatch(%q, %q) = %v, want %v", tc.pattern, tc.match, got, tc.want)
		}
	}
}

func TestSearchPattern(t *testing.T) {
	cases := []struct {
		cleaned     string
		isDir       bool
		wantPattern string
		wantBase    string
	}{
		{`src`, true, `src\*`, `src\`},
		{`src\`, true, `src\*`, `src\`},
		{`src*`, true, `src*`, `src`},
		{`src\a.cpp`, false, `src\a.cpp`, `src\`},
		{`src\*.cpp`, false, `src\*.cpp`, `src\`},
		{`a.cpp`, false, `a.cpp`, ``},
		{``, false, ``, ``},
		{`c:\work\src`, true, `c:\work\src\*`, `c:\work\src\`},
	}
	for _, tc := range cases {
		pattern, base := searchPattern(tc.cleaned, tc.isDir)
		if pattern != tc.wantPattern || base != tc.wantBase {
			t.Errorf("searchPattern(%q, %v) = %q, %q, want %q, %q",
				tc.cleaned, tc.isDir, pattern, base, tc.wantPattern, tc.wantBase)
		}
	}
}

func TestNativeBackend_Collect(t *testing.T) {
	withTempDir(t)
	writeSourceTree(t)
	l := NewListerWithBackend(NewNativeBackend())

	assertFiles(t, l.Collect("src", true), `src\a.cpp`, `src\sub\b.cc`)
	assertFiles(t, l.Collect("src/", true), `src\a.cpp`, `src\sub\b.cc`)
	assertFiles(t, l.Collect("src", false), `src\a.cpp`, `src\a.h`)
	assertFiles(t, l.Collect("f.txt", false), "f.txt")
	assertFiles(t, l.Collect("src/a.h", false), `src\a.h`)
	assertFiles(t, l.Collect("nonexistent", true))
}

func TestNativeBackend_Find(t *testing.T) {
	var patterns []string
	b := &NativeBackend{find: func(pattern string, fn func(name string, isDir bool)) error {
		patterns = append(patterns, pattern)
		if pattern == "broken" {
			return errors.New("invalid handle")
		}
		fn(".", true)
		fn("..", true)
		fn(".git", true)
		fn("", false)
		fn("x.c", false)
		fn("lib", true)
		return nil
	}}

	entries, err := b.ListEntries("not/a/dir/*.c")
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{{Name: `not\a\dir\x.c`}, {Name: `not\a\dir\lib`, IsDir: true}}
	if !slices.Equal(entries, want) {
		t.Errorf("got %+v, want %+v", entries, want)
	}

	entries, err = b.ListEntries("broken")
	if err == nil || len(entries) != 0 {
		t.Errorf("expected an error and no entries, got %+v, %v", entries, err)
	}
	if want := []string{`not\a\dir\*.c`, "broken"}; !slices.Equal(patterns, want) {
		t.Errorf("find got patterns %q, want %q", patterns, want)
	}
}
