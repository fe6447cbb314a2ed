package dataset

import "github.com/tanaylab/daf-go/storage"

// Copy copies every scalar, axis, vector, and matrix from src into dst,
// purely in terms of the Dataset façade: enumerate names, read, write
// (spec's supplemented C9 "copy" operation). overwrite controls whether
// an artifact already present in dst is replaced.
func Copy(dst *Dataset, src Reader, overwrite bool) error {
	for _, name := range src.ScalarNames() {
		value, err := src.GetScalar(name)
		if err != nil {
			return err
		}
		if err := dst.SetScalar(name, value, overwrite); err != nil {
			return err
		}
	}

	for _, axis := range src.AxisNames() {
		entries, err := src.AxisEntries(axis)
		if err != nil {
			return err
		}
		if err := dst.AddAxis(axis, entries, overwrite); err != nil {
			return err
		}

		vectorNames, err := src.VectorNames(axis)
		if err != nil {
			return err
		}
		for _, name := range vectorNames {
			vector, err := src.GetVector(axis, name)
			if err != nil {
				return err
			}
			if err := dst.SetVector(axis, name, vector, overwrite); err != nil {
				return err
			}
		}
	}

	for _, rowsAxis := range src.AxisNames() {
		for _, colsAxis := range src.AxisNames() {
			matrixNames, err := src.MatrixNames(rowsAxis, colsAxis)
			if err != nil {
				continue // axis pair not valid in src's current set; skip rather than fail the whole copy
			}
			for _, name := range matrixNames {
				matrix, err := src.GetMatrix(rowsAxis, colsAxis, name)
				if err != nil {
					return err
				}
				if err := dst.SetMatrix(rowsAxis, colsAxis, name, matrix, overwrite); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// Concat appends sources' joinAxis entries onto dst in order, concatenating
// every vector declared on joinAxis entry-wise across sources (spec's
// supplemented C9 "concat" operation, the natural counterpart to Copy for
// combining same-shape datasets along one growing axis). Axes other than
// joinAxis, and matrices, are copied once from the first source that
// defines them; callers combining datasets whose other axes genuinely
// differ should reconcile those separately before calling Concat.
func Concat(dst *Dataset, joinAxis string, sources []Reader, overwrite bool) error {
	var entries []string
	if dst.HasAxis(joinAxis) {
		existing, err := dst.AxisEntries(joinAxis)
		if err != nil {
			return err
		}
		entries = append(entries, existing...)
	}

	type vectorAccumulator struct {
		vector storage.Vector
		values []interface{}
	}
	accumulators := map[string]*vectorAccumulator{}
	var vectorOrder []string

	for _, src := range sources {
		srcEntries, err := src.AxisEntries(joinAxis)
		if err != nil {
			return err
		}
		entries = append(entries, srcEntries...)

		vectorNames, err := src.VectorNames(joinAxis)
		if err != nil {
			return err
		}
		for _, name := range vectorNames {
			vector, err := src.GetVector(joinAxis, name)
			if err != nil {
				return err
			}
			acc, seen := accumulators[name]
			if !seen {
				acc = &vectorAccumulator{vector: vector}
				accumulators[name] = acc
				vectorOrder = append(vectorOrder, name)
			}
			n, err := vector.Len()
			if err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				value, err := vector.At(i)
				if err != nil {
					return err
				}
				acc.values = append(acc.values, value)
			}
		}

		for _, axis := range src.AxisNames() {
			if axis == joinAxis || dst.HasAxis(axis) {
				continue
			}
			axisEntries, err := src.AxisEntries(axis)
			if err != nil {
				return err
			}
			if err := dst.AddAxis(axis, axisEntries, overwrite); err != nil {
				return err
			}
		}

		for _, rowsAxis := range src.AxisNames() {
			for _, colsAxis := range src.AxisNames() {
				matrixNames, err := src.MatrixNames(rowsAxis, colsAxis)
				if err != nil {
					continue
				}
				for _, name := range matrixNames {
					if dst.HasMatrix(rowsAxis, colsAxis, name) {
						continue
					}
					matrix, err := src.GetMatrix(rowsAxis, colsAxis, name)
					if err != nil {
						return err
					}
					if err := dst.SetMatrix(rowsAxis, colsAxis, name, matrix, overwrite); err != nil {
						return err
					}
				}
			}
		}
	}

	if err := dst.AddAxis(joinAxis, entries, true); err != nil {
		return err
	}

	for _, name := range vectorOrder {
		acc := accumulators[name]
		vector := storage.NewEmptyVector(acc.vector.Kind, len(acc.values))
		for i, value := range acc.values {
			if err := vector.Set(i, value); err != nil {
				return err
			}
		}
		if err := dst.SetVector(joinAxis, name, vector, true); err != nil {
			return err
		}
	}

	return nil
}
