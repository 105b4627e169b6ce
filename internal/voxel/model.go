package voxel

import "fmt"

// Model is an ordered colored voxel set plus its derived bounds and
// occupancy index. The occupancy index always matches the voxel sequence
// exactly: no duplicate positions, tight bounds.
type Model struct {
	Voxels []Voxel
	Bounds Bounds
	Occ    Occupancy
}

// NewModel builds a Model from a voxel sequence, computing bounds and
// occupancy in the same two passes the teacher's renderer.go uses for its
// rotated-AABB accumulation. Returns an error if two voxels share a
// position — no-duplicate-positions is a precondition on the generator,
// not something this constructor silently repairs.
func NewModel(voxels []Voxel) (Model, error) {
	if len(voxels) == 0 {
		return Model{Occ: Occupancy{}}, nil
	}
	occ := make(Occupancy, len(voxels))
	for _, v := range voxels {
		if _, dup := occ[v.Pos]; dup {
			return Model{}, fmt.Errorf("voxel: duplicate position %v", v.Pos)
		}
		occ[v.Pos] = struct{}{}
	}
	return Model{
		Voxels: voxels,
		Bounds: ComputeBounds(voxels),
		Occ:    occ,
	}, nil
}

// Empty reports whether the model has no voxels — the engine raises its
// EmptyModel error kind when this is true.
func (m Model) Empty() bool {
	return len(m.Voxels) == 0
}

// Face names a unit-cube side by its outward axis direction.
type Face int

const (
	FaceFront Face = iota // +Z
	FaceBack              // −Z
	FaceLeft              // −X
	FaceRight             // +X
	FaceTop               // +Y
	FaceBottom            // −Y
	faceCount
)

// String implements fmt.Stringer for diagnostics and test output.
func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	default:
		return "invalid"
	}
}

// Normal returns the outward unit normal for this face.
func (f Face) Normal() [3]int {
	switch f {
	case FaceFront:
		return [3]int{0, 0, 1}
	case FaceBack:
		return [3]int{0, 0, -1}
	case FaceLeft:
		return [3]int{-1, 0, 0}
	case FaceRight:
		return [3]int{1, 0, 0}
	case FaceTop:
		return [3]int{0, 1, 0}
	case FaceBottom:
		return [3]int{0, -1, 0}
	default:
		return [3]int{0, 0, 0}
	}
}

// Faces enumerates all six faces in a stable order.
func Faces() [6]Face {
	return [6]Face{FaceFront, FaceBack, FaceLeft, FaceRight, FaceTop, FaceBottom}
}

// HiddenFaces returns, for each face of v, whether that face is hidden by an
// occupied neighbor: hidden[f] == true iff (v.Pos + normal(f)) is in occ.
// This is the adjacency hidden-face pre-pass: hidden(v,occ)[f] ⇔
// (v+n_f) ∈ occ.
func HiddenFaces(v Voxel, occ Occupancy) [6]bool {
	var hidden [6]bool
	for i, f := range Faces() {
		n := f.Normal()
		neighbor := Pos{v.Pos[0] + n[0], v.Pos[1] + n[1], v.Pos[2] + n[2]}
		hidden[i] = occ.Has(neighbor)
	}
	return hidden
}
