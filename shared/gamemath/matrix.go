package gamemath

// Matrix is a 2x2 linear map applied as
//
//	i' = A*x + B*y
//	j' = C*x + D*y
type Matrix struct {
	A, B, C, D float64
}

// MatrixFromVectors builds the matrix whose columns are i and j.
func MatrixFromVectors(i, j *Vector) Matrix {
	return Matrix{
		A: i.I, B: j.I,
		C: i.J, D: j.J,
	}
}

// Vectors returns the matrix columns.
func (m Matrix) Vectors() (*Vector, *Vector) {
	return NewVector("i_hat", m.A, m.C), NewVector("j_hat", m.B, m.D)
}

func (m Matrix) MultiplyVector(v *Vector) (float64, float64) {
	x, y := v.Value()
	return m.A*x + m.B*y, m.C*x + m.D*y
}

// MultiplyMatrix returns m * other.
func (m Matrix) MultiplyMatrix(other Matrix) Matrix {
	i, j := other.Vectors()
	ni, nj := m.MultiplyVector(i)
	mi, mj := m.MultiplyVector(j)

	return Matrix{
		A: ni, B: mi,
		C: nj, D: mj,
	}
}
