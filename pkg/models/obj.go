package models

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/taigrr/wireframe/pkg/math3d"
)

// LoadOBJ reads the geometry of a Wavefront OBJ file. Only "v", "f" and
// "l" statements are used: faces become closed edge loops and polylines
// become open chains. Texture and normal references in a/b/c tokens are
// ignored, negative indices count back from the latest vertex.
func LoadOBJ(r io.Reader) (*Object, error) {
	o := NewObject("")
	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, parseErrorf(line, "vertex needs 3 coordinates, got %d", len(fields)-1)
			}
			var xyz [3]float64
			for i, f := range fields[1:4] {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, parseErrorf(line, "coordinate %q is not a number", f)
				}
				xyz[i] = v
			}
			o.AddVertex(math3d.V3(xyz[0], xyz[1], xyz[2]))

		case "f", "l":
			need := 3
			if fields[0] == "l" {
				need = 2
			}
			if len(fields)-1 < need {
				return nil, parseErrorf(line, "%q needs at least %d vertices", fields[0], need)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := objIndex(tok, len(o.Vertices), line)
				if err != nil {
					return nil, err
				}
				idx = append(idx, i)
			}
			if fields[0] == "f" {
				addFace(o, idx)
				continue
			}
			for i := 0; i+1 < len(idx); i++ {
				o.AddEdge(idx[i], idx[i+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return o, nil
}

// LoadOBJFile opens path and reads it with LoadOBJ.
func LoadOBJFile(path string) (*Object, error) {
	return loadFile(path, LoadOBJ)
}

// objIndex resolves a 1-based or negative OBJ vertex reference to a
// 0-based index.
func objIndex(tok string, n, line int) (int, error) {
	ref, _, _ := strings.Cut(tok, "/")
	i, err := strconv.Atoi(ref)
	if err != nil {
		return 0, parseErrorf(line, "vertex reference %q is not an integer", tok)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return 0, parseErrorf(line, "vertex reference %d out of range (have %d)", i, n)
	}
}
