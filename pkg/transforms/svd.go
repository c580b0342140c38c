package transforms

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SVDDeconstruct factorizes a 2-D field A into its thin singular value
// decomposition A = U diag(s) V^T.
func SVDDeconstruct(a *mat.Dense) (u *mat.Dense, s []float64, v *mat.Dense, err error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, nil, nil, fmt.Errorf("singular value decomposition failed to converge")
	}

	u = &mat.Dense{}
	v = &mat.Dense{}
	svd.UTo(u)
	svd.VTo(v)
	return u, svd.Values(nil), v, nil
}

// SVDReconstruct rebuilds the field from its singular value decomposition,
// the inverse of SVDDeconstruct.
func SVDReconstruct(u *mat.Dense, s []float64, v *mat.Dense) (*mat.Dense, error) {
	ur, uc := u.Dims()
	vr, vc := v.Dims()
	if uc != len(s) || vc != len(s) {
		return nil, fmt.Errorf("singular values (%d) do not match factor widths (%d, %d)", len(s), uc, vc)
	}

	us := mat.NewDense(ur, uc, nil)
	us.Copy(u)
	for c := 0; c < uc; c++ {
		for r := 0; r < ur; r++ {
			us.Set(r, c, us.At(r, c)*s[c])
		}
	}

	out := mat.NewDense(ur, vr, nil)
	out.Mul(us, v.T())
	return out, nil
}
