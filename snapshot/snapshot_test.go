package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/rtdbview/encode"
	"github.com/signadot/rtdbview/ir"
	"github.com/signadot/rtdbview/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s, parse.Strict())
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return node
}

func TestFileName(t *testing.T) {
	for in, want := range map[string]string{
		"":           "firebase_root.json",
		"/":          "firebase_root.json",
		"players":    "firebase_players.json",
		"players/p1": "firebase_players_p1.json",
		"/zones/a/":  "firebase_zones_a.json",
	} {
		if got := FileName(in); got != want {
			t.Errorf("FileName(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, FileName("players"))
	if err := Save(file, []byte(`{"p1":{"score":1.5}}`)); err != nil {
		t.Fatal(err)
	}
	node, err := Load(file)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, mustParse(t, `{"p1":{"score":1.5}}`)) {
		t.Errorf("got %s", encode.MustString(node))
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("not json"), 0644)
	if _, err := Load(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("got %v, want ErrInvalid", err)
	}
	if _, err := Load(bad, parse.Strict()); !errors.Is(err, parse.ErrSyntax) {
		t.Errorf("strict: got %v, want ErrSyntax", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v", err)
	}
}

func TestDiffText(t *testing.T) {
	a := mustParse(t, `{"b":2,"a":1}`)
	b := mustParse(t, `{"a":1,"b":3}`)
	got, err := DiffText(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := " {\n   \"a\": 1,\n-  \"b\": 2\n+  \"b\": 3\n }\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got, _ := DiffText(a, a.Clone()); got != "" {
		t.Errorf("equal trees diff %q", got)
	}
}

func TestMergePatch(t *testing.T) {
	a := mustParse(t, `{"a":1,"b":2,"n":{"x":1}}`)
	b := mustParse(t, `{"a":1,"c":3,"n":{"x":1,"y":"z"}}`)
	p, err := MergePatch(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"b":null,"c":3,"n":{"y":"z"}}`)
	if !ir.Equal(p, want) {
		t.Errorf("got %s", encode.MustString(p))
	}
	res, err := Apply(a, p)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(res, b) {
		t.Errorf("apply: got %s", encode.MustString(res))
	}
}

func TestMergePatchNumbers(t *testing.T) {
	a := mustParse(t, `{"keep":2.0,"n":1,"big":1,"l":[1.0]}`)
	b := mustParse(t, `{"keep":3.0,"n":2,"big":9007199254740993,"l":[1.0,2.0]}`)
	p, err := MergePatch(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(p, b) {
		t.Errorf("got %s", encode.MustString(p))
	}
	if keep := ir.Get(p, "keep"); !keep.IsFloat() {
		t.Errorf("keep: got %s, want float", encode.MustString(keep))
	}
	res, err := Apply(a, p)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(res, b) {
		t.Errorf("apply: got %s", encode.MustString(res))
	}
}

func TestApplyOps(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	ops := mustParse(t, `[{"op":"add","path":"/b","value":[true]},{"op":"remove","path":"/a"}]`)
	res, err := Apply(doc, ops)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(res, mustParse(t, `{"b":[true]}`)) {
		t.Errorf("got %s", encode.MustString(res))
	}
	bad := mustParse(t, `[{"op":"remove","path":"/missing"}]`)
	if _, err := Apply(doc, bad); !errors.Is(err, ErrPatch) {
		t.Errorf("got %v, want ErrPatch", err)
	}
}
