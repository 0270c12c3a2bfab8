package projgeo

import "slices"

// TransformInPlace transforms a batch of points from src to dst,
// overwriting the batch's own storage. Input angles are read relative
// to src and output angles written relative to dst: degrees for
// geographic systems unless radians is true, native units otherwise.
//
// The batch must be rectangular, N×2 or N×3. On failure the batch may
// hold partially converted values and must not be reused.
func TransformInPlace(src, dst *CoordSys, batch [][]float64, radians bool) error {
	if !src.opened || !dst.opened {
		return errClosed
	}
	if len(batch) == 0 {
		return nil
	}
	bufs, err := splitBatch(batch)
	if err != nil {
		return err
	}
	bufs.toEngineUnits(src, radians)
	if err := transformPoints(src, dst, bufs.x, bufs.y, bufs.z); err != nil {
		return err
	}
	bufs.fromEngineUnits(dst, radians)
	bufs.gather(batch)
	return nil
}

// Transform is the copy-returning variant of TransformInPlace: it
// operates on a deep copy and never mutates the caller's batch.
// Integer or float32 input can be widened first with Float64Batch.
func Transform(src, dst *CoordSys, batch [][]float64, radians bool) ([][]float64, error) {
	out := make([][]float64, len(batch))
	for i, pt := range batch {
		out[i] = slices.Clone(pt)
	}
	if err := TransformInPlace(src, dst, out, radians); err != nil {
		return nil, err
	}
	return out, nil
}

// TransformPointInPlace transforms a single 2- or 3-component point,
// overwriting it. It follows exactly the rules of a 1-row batch.
func TransformPointInPlace(src, dst *CoordSys, point []float64, radians bool) error {
	if err := checkPoint(point); err != nil {
		return err
	}
	return TransformInPlace(src, dst, [][]float64{point}, radians)
}

// TransformPoint transforms a copy of a single point and returns it;
// the input is never mutated.
func TransformPoint(src, dst *CoordSys, point []float64, radians bool) ([]float64, error) {
	out := slices.Clone(point)
	if err := TransformPointInPlace(src, dst, out, radians); err != nil {
		return nil, err
	}
	return out, nil
}
