package firefly

// Vector is a pair of independent scalars.
type Vector struct {
	X, Y float64
}

func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}
