package traces

import "github.com/joeydtaylor/raysum/pkg/internal/filter"

// Filter returns filtered copies of records; the inputs are left untouched.
// Designs are shared through cache, which may be nil.
func Filter(records []*Record, cache *filter.Cache, spec filter.Spec) ([]*Record, error) {
	out := make([]*Record, len(records))
	for i, r := range records {
		f := *r
		for c := range r.Data {
			y, err := filter.Apply(cache, spec, r.Delta, r.Data[c])
			if err != nil {
				return nil, err
			}
			f.Data[c] = y
		}
		out[i] = &f
	}
	return out, nil
}
