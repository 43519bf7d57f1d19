package models

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/taigrr/wireframe/pkg/math3d"
)

// LoadCSV reads a comma separated model. Rows with four fields are
// vertices (id,x,y,z) and rows with three fields are faces (v1,v2,v3)
// referencing vertex ids. Faces may appear before the vertices they use.
// Lines starting with '#' are comments.
func LoadCSV(r io.Reader) (*Object, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	type face struct {
		ids  [3]int
		line int
	}

	o := NewObject("")
	ids := make(map[int]int)
	var faces []face

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, parseErrorf(pe.Line, "%v", pe.Err)
			}
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		switch len(rec) {
		case 4:
			id, err := atoi(rec[0], line, "vertex id")
			if err != nil {
				return nil, err
			}
			var xyz [3]float64
			for i, f := range rec[1:] {
				v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
				if err != nil {
					return nil, parseErrorf(line, "coordinate %q is not a number", f)
				}
				xyz[i] = v
			}
			if _, dup := ids[id]; dup {
				return nil, parseErrorf(line, "duplicate vertex id %d", id)
			}
			ids[id] = o.AddVertex(math3d.V3(xyz[0], xyz[1], xyz[2]))
		case 3:
			f := face{line: line}
			for i, s := range rec {
				id, err := atoi(s, line, "face vertex")
				if err != nil {
					return nil, err
				}
				f.ids[i] = id
			}
			faces = append(faces, f)
		default:
			return nil, parseErrorf(line, "expected 3 or 4 fields, got %d", len(rec))
		}
	}

	for _, f := range faces {
		var idx [3]int
		for i, id := range f.ids {
			n, ok := ids[id]
			if !ok {
				return nil, parseErrorf(f.line, "face references unknown vertex id %d", id)
			}
			idx[i] = n
		}
		addFace(o, idx[:])
	}

	return o, nil
}

// LoadCSVFile opens path and reads it with LoadCSV.
func LoadCSVFile(path string) (*Object, error) {
	return loadFile(path, LoadCSV)
}

func atoi(s string, line int, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, parseErrorf(line, "%s: %q is not an integer", what, s)
	}
	return n, nil
}
