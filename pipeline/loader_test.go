package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kbukum/dataflow/errors"
)

const wordcountYAML = `
name: wordcount
values:
  - name: lines
    coder: utf8
    windowing: global
  - name: counts
    coder: kv
    windowing: global
  - name: stopwords
    kind: view
    coder: utf8
    windowing: global
nodes:
  - name: read
    outputs: [lines]
  - name: stopwords_view
    kind: create_view
    inputs: [lines]
    view: stopwords
  - name: count
    nodes:
      - name: split
        kind: multi_output
        inputs: [lines]
        side_inputs: [stopwords]
        outputs: [counts]
  - name: write
    inputs: [counts]
`

func testRegistry() *Registry {
	r := NewRegistry()
	r.RegisterCoder(NamedCoder("utf8"))
	r.RegisterCoder(NamedCoder("kv"))
	r.RegisterWindowing(NamedWindowing("global"))
	return r
}

func TestBuildFromDefinition(t *testing.T) {
	def, err := ParseDefinition([]byte(wordcountYAML))
	if err != nil {
		t.Fatalf("ParseDefinition: %v", err)
	}

	p, err := Build(def, testRegistry())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Name() != "wordcount" {
		t.Errorf("Name = %q, want %q", p.Name(), "wordcount")
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	var names []string
	var kinds []OpKind
	_ = p.Walk(func(n *Node) error {
		names = append(names, n.FullName())
		kinds = append(kinds, n.Kind())
		return nil
	})

	wantNames := []string{"read", "stopwords_view", "count/split", "write"}
	wantKinds := []OpKind{KindOrdinary, KindCreateView, KindMultiOutput, KindOrdinary}
	if len(names) != len(wantNames) {
		t.Fatalf("leaves %v, want %v", names, wantNames)
	}
	for i := range wantNames {
		if names[i] != wantNames[i] {
			t.Errorf("leaf[%d] = %q, want %q", i, names[i], wantNames[i])
		}
		if kinds[i] != wantKinds[i] {
			t.Errorf("kind[%d] = %v, want %v", i, kinds[i], wantKinds[i])
		}
	}
}

func TestBuildMintsOutputKeys(t *testing.T) {
	def, err := ParseDefinition([]byte(wordcountYAML))
	if err != nil {
		t.Fatalf("ParseDefinition: %v", err)
	}
	p, err := Build(def, testRegistry())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	seen := make(map[Key]bool)
	_ = p.Walk(func(n *Node) error {
		for _, out := range n.Outputs() {
			if out.Key == "" {
				t.Errorf("node %q output %q has empty key", n.FullName(), out.Value.Name())
			}
			if seen[out.Key] {
				t.Errorf("duplicate output key %q", out.Key)
			}
			seen[out.Key] = true
		}
		return nil
	})
}

func TestBuildSharesValueHandles(t *testing.T) {
	def, err := ParseDefinition([]byte(wordcountYAML))
	if err != nil {
		t.Fatalf("ParseDefinition: %v", err)
	}
	p, err := Build(def, testRegistry())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// "lines" produced by read must be the identical handle consumed
	// downstream, so translation can resolve it by identity.
	var produced, consumed Value
	_ = p.Walk(func(n *Node) error {
		switch n.Name() {
		case "read":
			produced = n.Outputs()[0].Value
		case "split":
			consumed = n.Inputs()[0]
		}
		return nil
	})
	if produced == nil || produced != consumed {
		t.Error("value handle not shared between producer and consumer")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code errors.ErrorCode
	}{
		{
			name: "unknown coder",
			yaml: "name: p\nvalues:\n  - name: a\n    coder: nope\n    windowing: global\n",
			code: errors.ErrCodeNotFound,
		},
		{
			name: "unknown value reference",
			yaml: "name: p\nnodes:\n  - name: read\n    outputs: [missing]\n",
			code: errors.ErrCodeNotFound,
		},
		{
			name: "unknown kind",
			yaml: "name: p\nnodes:\n  - name: x\n    kind: wat\n",
			code: errors.ErrCodeInvalidPipeline,
		},
		{
			name: "missing name",
			yaml: "values: []\n",
			code: errors.ErrCodeInvalidPipeline,
		},
		{
			name: "duplicate value",
			yaml: "name: p\nvalues:\n  - name: a\n    coder: utf8\n    windowing: global\n  - name: a\n    coder: utf8\n    windowing: global\n",
			code: errors.ErrCodeInvalidPipeline,
		},
		{
			name: "view node without view",
			yaml: "name: p\nvalues:\n  - name: a\n    coder: utf8\n    windowing: global\nnodes:\n  - name: v\n    kind: create_view\n    inputs: [a]\n",
			code: errors.ErrCodeInvalidPipeline,
		},
		{
			name: "view field names a collection",
			yaml: "name: p\nvalues:\n  - name: a\n    coder: utf8\n    windowing: global\nnodes:\n  - name: v\n    kind: create_view\n    view: a\n",
			code: errors.ErrCodeInvalidPipeline,
		},
		{
			name: "composite with operation fields",
			yaml: "name: p\nvalues:\n  - name: a\n    coder: utf8\n    windowing: global\nnodes:\n  - name: c\n    kind: ordinary\n    nodes:\n      - name: leaf\n",
			code: errors.ErrCodeInvalidPipeline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ParseDefinition([]byte(tt.yaml))
			if err != nil {
				if errors.CodeOf(err) != tt.code {
					t.Fatalf("parse code = %v, want %v", errors.CodeOf(err), tt.code)
				}
				return
			}
			_, err = Build(def, testRegistry())
			if err == nil {
				t.Fatal("Build accepted invalid definition")
			}
			if errors.CodeOf(err) != tt.code {
				t.Errorf("code = %v, want %v", errors.CodeOf(err), tt.code)
			}
		})
	}
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordcount.yaml")
	if err := os.WriteFile(path, []byte(wordcountYAML), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loader := NewFileLoader(dir)
	def, err := loader.Load("wordcount")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if def.Name != "wordcount" {
		t.Errorf("Name = %q, want %q", def.Name, "wordcount")
	}

	if _, err := loader.Load("nope"); errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Errorf("missing pipeline code = %v, want %v", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}
