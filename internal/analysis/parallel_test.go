package analysis_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"shaderlint/internal/analysis"
)

func writeShader(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestListShaderFiles(t *testing.T) {
	dir := t.TempDir()
	writeShader(t, dir, "b.frag", "void main() {}\n")
	writeShader(t, dir, "a.vert", "void main() {}\n")
	writeShader(t, dir, "nested/c.comp", "void main() {}\n")
	writeShader(t, dir, "readme.txt", "not a shader")

	files, err := analysis.ListShaderFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("files = %v, want 3 shaders", files)
	}
	if !sort.StringsAreSorted(files) {
		t.Errorf("files not sorted: %v", files)
	}
	for _, f := range files {
		if filepath.Ext(f) == ".txt" {
			t.Errorf("non-shader picked up: %s", f)
		}
	}
}

func TestAnalyzeDirPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	writeShader(t, dir, "a.frag", "#version 450\nvoid main() {}\n")
	writeShader(t, dir, "b.frag", "void main() {}\n")
	writeShader(t, dir, "c.frag", "layout(location = 0) in vec2 frag_uv;\nvoid main() {}\n")

	results, err := analysis.AnalyzeDir(context.Background(), dir, 4, analysis.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	for i, want := range []string{"a.frag", "b.frag", "c.frag"} {
		if filepath.Base(results[i].Path) != want {
			t.Errorf("result %d = %s, want %s", i, results[i].Path, want)
		}
		if results[i].Err != nil {
			t.Errorf("result %d: %v", i, results[i].Err)
		}
	}
	if !results[0].Result.HasErrors() {
		t.Error("a.frag has a #version directive, expected an error")
	}
	if results[1].Result.HasErrors() {
		t.Error("b.frag should be clean of errors")
	}
}

func TestAnalyzePathsMissingFile(t *testing.T) {
	dir := t.TempDir()
	ok := writeShader(t, dir, "ok.frag", "void main() {}\n")
	missing := filepath.Join(dir, "missing.frag")

	results, err := analysis.AnalyzePaths(context.Background(), []string{ok, missing}, 1, analysis.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err != nil {
		t.Errorf("ok.frag: %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("missing file produced no error")
	}
}

func TestAnalyzePathsSerialMatchesParallel(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"one.frag", "two.frag", "three.frag"} {
		paths = append(paths, writeShader(t, dir, name,
			"layout(location = 0) out vec4 out_color;\nlayout(location = 0) in vec2 frag_uv;\nvoid main() {}\n"))
	}

	serial, err := analysis.AnalyzePaths(context.Background(), paths, 1, analysis.Options{})
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := analysis.AnalyzePaths(context.Background(), paths, 8, analysis.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i := range serial {
		if !reflect.DeepEqual(serial[i].Result.Diagnostics, parallel[i].Result.Diagnostics) {
			t.Errorf("%s: serial and parallel disagree", serial[i].Path)
		}
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := analysis.OpenDiskCache("shaderlint-test")
	if err != nil {
		t.Fatal(err)
	}

	res, err := analysis.Analyze("cached.frag", []byte("#version 450\nvoid main() {}\n"), analysis.Options{})
	if err != nil {
		t.Fatal(err)
	}
	key := res.Set.Get(res.FileID).Hash
	const fingerprint = "cfg-a"

	var miss analysis.CachePayload
	if hit, err := cache.Get(key, fingerprint, &miss); err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	if err := cache.Put(key, analysis.PayloadFor(res, fingerprint)); err != nil {
		t.Fatal(err)
	}

	var got analysis.CachePayload
	hit, err := cache.Get(key, fingerprint, &got)
	if err != nil || !hit {
		t.Fatalf("after Put: hit=%v err=%v", hit, err)
	}
	if got.Path != "cached.frag" {
		t.Errorf("path = %q", got.Path)
	}
	if !reflect.DeepEqual(got.Diagnostics, res.Diagnostics) {
		t.Errorf("diagnostics changed across the cache:\n%v\n%v", got.Diagnostics, res.Diagnostics)
	}

	// same content under a different configuration is a miss
	if hit, err := cache.Get(key, "cfg-b", &got); err != nil || hit {
		t.Fatalf("stale configuration served: hit=%v err=%v", hit, err)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if hit, _ := cache.Get(key, fingerprint, &got); hit {
		t.Error("hit after DropAll")
	}
}
