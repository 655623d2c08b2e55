package file_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	. "github.com/onsi/gomega"

	"github.com/toejough/argdoc/internal/file"
)

func TestMatchAbsoluteBraceAndGlob(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	g.Expect(os.MkdirAll(filepath.Join(dir, "nested"), 0o755)).To(Succeed())

	for _, name := range []string{"a.toml", "b.toml", "c.md", filepath.Join("nested", "d.toml")} {
		g.Expect(os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644)).To(Succeed())
	}

	matches, err := file.Match(filepath.Join(dir, "{a,b}.toml"), filepath.Join(dir, "**", "*.toml"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(matches).To(Equal([]string{
		filepath.Join(dir, "a.toml"),
		filepath.Join(dir, "b.toml"),
		filepath.Join(dir, "nested", "d.toml"),
	}))
}

func TestMatchFSSkipsDirectories(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fsys := fstest.MapFS{
		"progs/tool.toml":       {Data: []byte("x")},
		"progs/dir.toml/x.toml": {Data: []byte("x")},
	}

	matches, err := file.MatchFS(fsys, "progs/*.toml")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(matches).To(Equal([]string{"progs/tool.toml"}))
}

func TestMatchFSErrors(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fsys := fstest.MapFS{"tool.toml": {Data: []byte("x")}}

	_, err := file.MatchFS(fsys)
	g.Expect(err).To(MatchError(file.ErrNoPatterns))

	_, err = file.MatchFS(fsys, "*.yaml")
	g.Expect(err).To(MatchError(file.ErrNoMatch))

	_, err = file.MatchFS(fsys, "[.toml")
	g.Expect(err).To(HaveOccurred())

	_, err = file.Match()
	g.Expect(err).To(MatchError(file.ErrNoPatterns))
}

func TestMatchFSDeduplicatesAcrossPatterns(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fsys := fstest.MapFS{
		"b.toml": {Data: []byte("x")},
		"a.toml": {Data: []byte("x")},
	}

	matches, err := file.MatchFS(fsys, "*.toml", "a.toml")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(matches).To(Equal([]string{"a.toml", "b.toml"}))
}
