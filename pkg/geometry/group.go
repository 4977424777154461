package geometry

import (
	"fmt"
	"sync/atomic"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var nextGroupID atomic.Uint64

// Group is a composite shape that applies its transform to every child and
// contributes no geometry of its own. Groups are always handled by pointer,
// so children added later, or a transform changed later, are visible through
// every parent link.
type Group struct {
	shapeBase
	id       uint64
	children []Shape
}

// NewGroup creates an empty group with a fresh id
func NewGroup() *Group {
	return &Group{
		shapeBase: newShapeBase(),
		id:        nextGroupID.Add(1),
	}
}

// ID returns the group's stable identity
func (g *Group) ID() uint64 { return g.id }

// Children returns the group's children in insertion order
func (g *Group) Children() []Shape { return g.children }

// AddChild appends child and makes g its parent. It panics if child already
// belongs to a group or if adding it would make a group its own ancestor.
func (g *Group) AddChild(child Shape) {
	b := child.base()
	if b.parent != nil {
		panic(fmt.Sprintf("geometry: shape already belongs to group %d", b.parent.id))
	}
	if sub, ok := child.(*Group); ok {
		for ancestor := g; ancestor != nil; ancestor = ancestor.parent {
			if ancestor == sub {
				panic(fmt.Sprintf("geometry: adding group %d to group %d creates a cycle", sub.id, g.id))
			}
		}
	}
	b.parent = g
	g.children = append(g.children, child)
}

// AddChildren adds every shape in order
func (g *Group) AddChildren(children ...Shape) {
	for _, c := range children {
		g.AddChild(c)
	}
}

// LocalIntersect forwards the group-space ray to every child and returns all
// of their intersections sorted by t
func (g *Group) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt always panics: a group has no surface, so normals are only
// ever computed on its leaf primitives.
func (g *Group) LocalNormalAt(point core.Vec3) core.Vec3 {
	panic(fmt.Sprintf("geometry: LocalNormalAt called on group %d", g.id))
}
