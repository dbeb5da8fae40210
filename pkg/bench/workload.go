package bench

import (
	"fmt"

	"github.com/appnet-org/declbench/pkg/payload"
)

// Workload runs the two construction loops for one payload shape. Explicit
// and Implicit differ only in whether the loop binding states its type.
type Workload interface {
	Name() string
	Explicit(n int)
	Implicit(n int)
	// Retained is the number of records kept by the last loop.
	Retained() int
	// Release drops the retained records.
	Release()
}

// NewWorkload returns the workload for shape.
func NewWorkload(shape Shape, gen *payload.Generator) (Workload, error) {
	switch shape {
	case ShapeUser:
		return NewUserWorkload(gen), nil
	case ShapeTree:
		return NewTreeWorkload(gen), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
}

// UserWorkload constructs flat user records.
type UserWorkload struct {
	gen      *payload.Generator
	retained []payload.UserData
}

func NewUserWorkload(gen *payload.Generator) *UserWorkload {
	return &UserWorkload{gen: gen}
}

func (w *UserWorkload) Name() string { return string(ShapeUser) }

func (w *UserWorkload) Explicit(n int) {
	users := make([]payload.UserData, 0, n)
	for i := 0; i < n; i++ {
		var user payload.UserData = w.gen.User(i)
		users = append(users, user)
	}
	w.retained = users
}

func (w *UserWorkload) Implicit(n int) {
	users := make([]payload.UserData, 0, n)
	for i := 0; i < n; i++ {
		user := w.gen.User(i)
		users = append(users, user)
	}
	w.retained = users
}

func (w *UserWorkload) Retained() int { return len(w.retained) }
func (w *UserWorkload) Release()      { w.retained = nil }

// TreeWorkload constructs deep record trees.
type TreeWorkload struct {
	gen      *payload.Generator
	retained []payload.RootModel
}

func NewTreeWorkload(gen *payload.Generator) *TreeWorkload {
	return &TreeWorkload{gen: gen}
}

func (w *TreeWorkload) Name() string { return string(ShapeTree) }

func (w *TreeWorkload) Explicit(n int) {
	trees := make([]payload.RootModel, 0, n)
	for i := 0; i < n; i++ {
		var tree payload.RootModel = w.gen.Tree()
		trees = append(trees, tree)
	}
	w.retained = trees
}

func (w *TreeWorkload) Implicit(n int) {
	trees := make([]payload.RootModel, 0, n)
	for i := 0; i < n; i++ {
		tree := w.gen.Tree()
		trees = append(trees, tree)
	}
	w.retained = trees
}

func (w *TreeWorkload) Retained() int { return len(w.retained) }
func (w *TreeWorkload) Release()      { w.retained = nil }
