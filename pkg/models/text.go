package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/wireframe/pkg/math3d"
)

// tokenizer yields whitespace separated tokens along with their line.
type tokenizer struct {
	sc     *bufio.Scanner
	fields []string
	line   int
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{sc: bufio.NewScanner(r)}
}

// next returns the next token. ok is false at end of input.
func (t *tokenizer) next() (tok string, ok bool, err error) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			return "", false, t.sc.Err()
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
	}
	tok, t.fields = t.fields[0], t.fields[1:]
	return tok, true, nil
}

func (t *tokenizer) int(what string) (int, error) {
	tok, ok, err := t.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, parseErrorf(t.line, "unexpected end of input reading %s", what)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, parseErrorf(t.line, "%s: %q is not an integer", what, tok)
	}
	return n, nil
}

func (t *tokenizer) float(what string) (float64, error) {
	tok, ok, err := t.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, parseErrorf(t.line, "unexpected end of input reading %s", what)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, parseErrorf(t.line, "%s: %q is not a number", what, tok)
	}
	return f, nil
}

// LoadText reads the plain text model format:
//
//	numVertices numFaces
//	id x y z        (numVertices times)
//	v1 v2 v3        (numFaces times, referencing ids)
//
// Each face becomes three edges. Vertex ids may be arbitrary integers.
func LoadText(r io.Reader) (*Object, error) {
	t := newTokenizer(r)

	numVertices, err := t.int("vertex count")
	if err != nil {
		return nil, err
	}
	numFaces, err := t.int("face count")
	if err != nil {
		return nil, err
	}
	if numVertices < 0 || numFaces < 0 {
		return nil, parseErrorf(t.line, "negative counts %d %d", numVertices, numFaces)
	}

	o := NewObject("")
	ids := make(map[int]int)

	for range numVertices {
		id, err := t.int("vertex id")
		if err != nil {
			return nil, err
		}
		var xyz [3]float64
		for i, axis := range []string{"x", "y", "z"} {
			if xyz[i], err = t.float(axis); err != nil {
				return nil, err
			}
		}
		if _, dup := ids[id]; dup {
			return nil, parseErrorf(t.line, "duplicate vertex id %d", id)
		}
		ids[id] = o.AddVertex(math3d.V3(xyz[0], xyz[1], xyz[2]))
	}

	for range numFaces {
		var face [3]int
		for i := range face {
			id, err := t.int("face vertex")
			if err != nil {
				return nil, err
			}
			idx, ok := ids[id]
			if !ok {
				return nil, parseErrorf(t.line, "face references unknown vertex id %d", id)
			}
			face[i] = idx
		}
		addFace(o, face[:])
	}

	return o, nil
}

// LoadTextFile opens path and reads it with LoadText.
func LoadTextFile(path string) (*Object, error) {
	return loadFile(path, LoadText)
}

// addFace closes the polygon into a loop of edges.
func addFace(o *Object, idx []int) {
	for i := range idx {
		o.AddEdge(idx[i], idx[(i+1)%len(idx)])
	}
}

func loadFile(path string, load func(io.Reader) (*Object, error)) (*Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	o, err := load(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	o.Name = filepath.Base(path)
	return o, nil
}
