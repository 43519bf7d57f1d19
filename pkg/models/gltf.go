package models

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/wireframe/pkg/math3d"
)

// LoadGLB loads every mesh of a glTF document (.glb or .gltf) into one
// wireframe object. Triangle primitives contribute three edges per
// triangle, line primitives contribute their segments and point
// primitives contribute vertices only. Node transforms are not applied.
func LoadGLB(path string) (*Object, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	o := NewObject(filepath.Base(path))
	for _, m := range doc.Meshes {
		if err := addMesh(doc, m, o); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	return o, nil
}

// addMesh appends the geometry of every primitive in m to o.
func addMesh(doc *gltf.Document, m *gltf.Mesh, o *Object) error {
	for _, prim := range m.Primitives {
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		base := len(o.Vertices)
		for _, p := range positions {
			o.AddVertex(p)
		}

		var indices []int
		if prim.Indices != nil {
			if indices, err = readIndices(doc, *prim.Indices); err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}
		for i := range indices {
			indices[i] += base
		}

		addPrimitiveEdges(o, prim.Mode, indices)
	}

	return nil
}

// addPrimitiveEdges converts the index list of a primitive into edges.
func addPrimitiveEdges(o *Object, mode gltf.PrimitiveMode, idx []int) {
	switch mode {
	case gltf.PrimitiveTriangles:
		for i := 0; i+2 < len(idx); i += 3 {
			addFace(o, idx[i:i+3])
		}
	case gltf.PrimitiveTriangleStrip:
		for i := 0; i+2 < len(idx); i++ {
			addFace(o, idx[i:i+3])
		}
	case gltf.PrimitiveTriangleFan:
		for i := 1; i+1 < len(idx); i++ {
			addFace(o, []int{idx[0], idx[i], idx[i+1]})
		}
	case gltf.PrimitiveLines:
		for i := 0; i+1 < len(idx); i += 2 {
			o.AddEdge(idx[i], idx[i+1])
		}
	case gltf.PrimitiveLineStrip:
		for i := 0; i+1 < len(idx); i++ {
			o.AddEdge(idx[i], idx[i+1])
		}
	case gltf.PrimitiveLineLoop:
		if len(idx) > 1 {
			addFace(o, idx)
		}
	case gltf.PrimitivePoints:
		// vertices only
	}
}

// readVec3Accessor reads float VEC3 data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range: %w", accessorIdx, ErrMalformed)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v/%v: %w", accessor.Type, accessor.ComponentType, ErrMalformed)
	}

	data, start, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range result {
		off := start + i*stride
		if off+12 > len(data) {
			return nil, fmt.Errorf("accessor overruns buffer: %w", ErrMalformed)
		}
		result[i] = math3d.V3(
			readFloat32(data[off:]),
			readFloat32(data[off+4:]),
			readFloat32(data[off+8:]),
		)
	}
	return result, nil
}

// readIndices reads unsigned scalar index data from a glTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range: %w", accessorIdx, ErrMalformed)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v: %w", accessor.Type, ErrMalformed)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type %v: %w", accessor.ComponentType, ErrMalformed)
	}

	data, start, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		off := start + i*stride
		if off+size > len(data) {
			return nil, fmt.Errorf("accessor overruns buffer: %w", ErrMalformed)
		}
		switch size {
		case 1:
			result[i] = int(data[off])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(data[off:]))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(data[off:]))
		}
	}
	return result, nil
}

// accessorBytes resolves the buffer behind an accessor along with the
// first element offset and the element stride. The accessor's count is
// checked against the buffer so callers can size their output from it.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) (data []byte, start, stride int, err error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view: %w", ErrMalformed)
	}
	if *accessor.BufferView >= len(doc.BufferViews) {
		return nil, 0, 0, fmt.Errorf("buffer view %d out of range: %w", *accessor.BufferView, ErrMalformed)
	}
	view := doc.BufferViews[*accessor.BufferView]
	if view.Buffer >= len(doc.Buffers) {
		return nil, 0, 0, fmt.Errorf("buffer %d out of range: %w", view.Buffer, ErrMalformed)
	}

	data = doc.Buffers[view.Buffer].Data
	if len(data) == 0 {
		return nil, 0, 0, fmt.Errorf("buffer has no data: %w", ErrMalformed)
	}

	stride = view.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	start = view.ByteOffset + accessor.ByteOffset
	count := int(accessor.Count)
	if stride < elemSize || start < 0 || count < 0 {
		return nil, 0, 0, fmt.Errorf("invalid accessor layout: %w", ErrMalformed)
	}
	if count > 0 {
		avail := len(data) - start - elemSize
		if avail < 0 || count-1 > avail/stride {
			return nil, 0, 0, fmt.Errorf("accessor count %d overruns %d byte buffer: %w", count, len(data), ErrMalformed)
		}
	}
	return data, start, stride, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}
