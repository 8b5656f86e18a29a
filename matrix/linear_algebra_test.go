package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xtalmap/matrix"
)

func square(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	n := len(rows)
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	return m
}

func TestMulIdentity(t *testing.T) {
	a := square(t, [][]float64{{1, 2}, {3, 4}})
	id, err := matrix.Identity(2)
	require.NoError(t, err)

	got, err := matrix.Mul(a, id)
	require.NoError(t, err)
	v, _ := got.At(1, 0)
	require.Equal(t, 3.0, v)
}

func TestInverseRoundTrip(t *testing.T) {
	a := square(t, [][]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := prod.At(i, j)
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, v, 1e-9)
		}
	}
}

func TestInverseSingularFails(t *testing.T) {
	a := square(t, [][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestDetKnownValues(t *testing.T) {
	a := square(t, [][]float64{{1, 2}, {3, 4}})
	d, err := matrix.Det(a)
	require.NoError(t, err)
	require.InDelta(t, -2.0, d, 1e-12)

	id, _ := matrix.Identity(3)
	d3, err := matrix.Det(id)
	require.NoError(t, err)
	require.InDelta(t, 1.0, d3, 1e-12)
}

func TestEigenSymmetricDiagonal(t *testing.T) {
	a := square(t, [][]float64{{2, 0}, {0, 5}})
	vals, vecs, err := matrix.EigenSymmetric(a, 1e-12, 100)
	require.NoError(t, err)
	require.InDelta(t, 2.0, vals[0], 1e-9)
	require.InDelta(t, 5.0, vals[1], 1e-9)
	require.NotNil(t, vecs)
}

func TestSqrtSymmetricPSDIdentity(t *testing.T) {
	id, _ := matrix.Identity(3)
	root, err := matrix.SqrtSymmetricPSD(id, 1e-12, 200)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := root.At(i, j)
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, v, 1e-9)
		}
	}
}

func TestRightStretchOfRotationIsIdentity(t *testing.T) {
	// A pure rotation has F^T F = I, so U = I.
	theta := math.Pi / 5
	rot := square(t, [][]float64{
		{math.Cos(theta), -math.Sin(theta), 0},
		{math.Sin(theta), math.Cos(theta), 0},
		{0, 0, 1},
	})
	u, err := matrix.RightStretch(rot, 1e-12, 200)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := u.At(i, j)
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, v, 1e-8)
		}
	}
}
