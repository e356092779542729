package dataset

import "math"

/*
Frequencies holds the number of records holding each distinct value of an
attribute on a dataset. Values are kept in order of first occurrence so that
anything derived from them, like the majority value, is reproducible.
*/
type Frequencies struct {
	values []string
	counts map[string]float64
	total  float64
}

/*
ValueFrequencies takes a dataset and an attribute name and returns the
frequencies of the attribute's values on the dataset. An empty dataset
yields empty frequencies. A record without the attribute makes it return a
*MissingAttributeError.
*/
func ValueFrequencies(ds Dataset, attribute string) (*Frequencies, error) {
	f := &Frequencies{counts: make(map[string]float64)}
	for i := range ds {
		v, err := ds.valueAt(i, attribute)
		if err != nil {
			return nil, err
		}
		if _, ok := f.counts[v]; !ok {
			f.values = append(f.values, v)
		}
		f.counts[v] += 1.0
		f.total += 1.0
	}
	return f, nil
}

// Values returns the distinct values in order of first occurrence.
func (f *Frequencies) Values() []string {
	result := make([]string, len(f.values))
	copy(result, f.values)
	return result
}

// Count returns the number of records holding the given value.
func (f *Frequencies) Count(value string) float64 {
	return f.counts[value]
}

// Len returns the number of distinct values.
func (f *Frequencies) Len() int {
	return len(f.values)
}

// Total returns the number of records counted.
func (f *Frequencies) Total() float64 {
	return f.total
}

/*
Majority returns the value with the highest count, the first one to reach
it in order of occurrence, and true; or an empty string and false if no
value was counted.
*/
func (f *Frequencies) Majority() (string, bool) {
	var (
		best      string
		bestCount float64
		found     bool
	)
	for _, v := range f.values {
		if c := f.counts[v]; !found || c > bestCount {
			best, bestCount, found = v, c, true
		}
	}
	return best, found
}

/*
Entropy returns the Shannon entropy in bits of the distribution of the given
attribute's values over the dataset. It returns ErrEmptyDataset for an empty
dataset, and 0 when every record holds the same value.
*/
func Entropy(ds Dataset, attribute string) (float64, error) {
	if len(ds) == 0 {
		return 0.0, ErrEmptyDataset
	}
	f, err := ValueFrequencies(ds, attribute)
	if err != nil {
		return 0.0, err
	}
	return f.entropy(), nil
}

func (f *Frequencies) entropy() float64 {
	var result float64
	for _, v := range f.values {
		p := f.counts[v] / f.total
		result -= p * math.Log2(p)
	}
	return result
}

/*
InformationGain returns the expected reduction in entropy of the target
attribute obtained by partitioning the dataset on the values of attribute:

	H(ds, target) - Σv P(attribute = v) · H(ds[attribute = v], target)

It returns ErrEmptyDataset for an empty dataset.
*/
func InformationGain(ds Dataset, attribute, target string) (float64, error) {
	sEntropy, err := Entropy(ds, target)
	if err != nil {
		return 0.0, err
	}
	f, err := ValueFrequencies(ds, attribute)
	if err != nil {
		return 0.0, err
	}
	gain := sEntropy
	for _, v := range f.values {
		subset, err := Subset(ds, attribute, v)
		if err != nil {
			return 0.0, err
		}
		subsetEntropy, err := Entropy(subset, target)
		if err != nil {
			return 0.0, err
		}
		gain -= subsetEntropy * f.counts[v] / f.total
	}
	return gain, nil
}
