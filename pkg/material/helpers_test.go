package material

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// constSampler returns the same value for every dimension
type constSampler struct {
	value float32
	calls int
}

func (c *constSampler) Get1D() float32 {
	c.calls++
	return c.value
}

func (c *constSampler) Get2D() core.Vec2 {
	return core.Vec2{c.Get1D(), c.Get1D()}
}

func (c *constSampler) Get3D() core.Vec3 {
	return core.Vec3{c.Get1D(), c.Get1D(), c.Get1D()}
}

func upFacingHit(m Material) HitRecord {
	return HitRecord{
		T:        1,
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		Material: m,
	}
}
