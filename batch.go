package projgeo

// buffers is the strided three-axis layout the native engine consumes:
// three equal-length contiguous slices, z nil when the batch is 2-D so
// the engine receives the "no z" sentinel rather than a zero-filled
// buffer.
type buffers struct {
	x, y, z []float64
}

// splitBatch lays a rectangular N×2 or N×3 batch out into axis
// buffers. The batch must be non-empty; shape violations fail with
// ShapeError before any native call can see the data.
func splitBatch(batch [][]float64) (buffers, error) {
	dim := len(batch[0])
	if dim != 2 && dim != 3 {
		return buffers{}, &ShapeError{Row: 0, Dim: dim}
	}
	var bufs buffers
	bufs.x = make([]float64, len(batch))
	bufs.y = make([]float64, len(batch))
	if dim == 3 {
		bufs.z = make([]float64, len(batch))
	}
	for i, pt := range batch {
		if len(pt) != dim {
			return buffers{}, &ShapeError{Row: i, Dim: len(pt), Want: dim}
		}
		bufs.x[i] = pt[0]
		bufs.y[i] = pt[1]
		if dim == 3 {
			bufs.z[i] = pt[2]
		}
	}
	return bufs, nil
}

// gather writes the buffers back through the batch's own storage. The
// batch must be the one the buffers were split from.
func (b buffers) gather(batch [][]float64) {
	for i, pt := range batch {
		pt[0] = b.x[i]
		pt[1] = b.y[i]
		if b.z != nil {
			pt[2] = b.z[i]
		}
	}
}

// checkPoint validates a single point's width.
func checkPoint(pt []float64) error {
	if len(pt) != 2 && len(pt) != 3 {
		return &ShapeError{Row: 0, Dim: len(pt)}
	}
	return nil
}

// Real matches the numeric types a caller's coordinate data may
// arrive in.
type Real interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Float64Batch widens a batch of any numeric type to the float64
// precision the transform core works in. The input batch is never
// mutated.
func Float64Batch[T Real](batch [][]T) [][]float64 {
	out := make([][]float64, len(batch))
	for i, pt := range batch {
		row := make([]float64, len(pt))
		for j, v := range pt {
			row[j] = float64(v)
		}
		out[i] = row
	}
	return out
}
