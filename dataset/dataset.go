// Package dataset - instance shape, YAML loading, and label validation.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourbound/distmat"
	"github.com/katalvlaran/tourbound/tsp"
)

var (
	// ErrNoDistances signals an instance without a distance matrix.
	ErrNoDistances = errors.New("dataset: no distance matrix")

	// ErrLabelCount signals len(labels) != n.
	ErrLabelCount = errors.New("dataset: label count does not match matrix size")

	// ErrEmptyLabel signals a blank location label.
	ErrEmptyLabel = errors.New("dataset: empty label")

	// ErrDuplicateLabel signals two locations sharing one label.
	ErrDuplicateLabel = errors.New("dataset: duplicate label")
)

// Instance is a labeled TSP input: display labels plus the raw distance
// matrix. The matrix contract itself (square, symmetric, zero diagonal,
// finite non-negative entries) is enforced by Matrix via distmat.New.
type Instance struct {
	// Name identifies the instance in reports and logs.
	Name string `yaml:"name"`

	// Unit is the optional distance unit appended to reports (e.g. "km").
	Unit string `yaml:"unit"`

	// Labels are the ordered display names; Labels[i] names vertex i.
	Labels []string `yaml:"labels"`

	// Distances is the square pairwise distance matrix.
	Distances [][]float64 `yaml:"distances"`
}

// Validate checks the label contract: len(Labels) == n with unique,
// non-empty strings. Matrix-level validation is left to Matrix().
//
// Complexity: O(n) time, O(n) space.
func (in *Instance) Validate() error {
	var n = len(in.Distances)
	if n == 0 {
		return ErrNoDistances
	}
	if len(in.Labels) != n {
		return ErrLabelCount
	}

	seen := make(map[string]struct{}, n)

	var (
		i     int
		label string
		ok    bool
	)
	for i = 0; i < n; i++ {
		label = in.Labels[i]
		if label == "" {
			return ErrEmptyLabel
		}
		if _, ok = seen[label]; ok {
			return ErrDuplicateLabel
		}
		seen[label] = struct{}{}
	}

	return nil
}

// Matrix validates the instance and builds the immutable distance matrix.
// Label errors surface first, then distmat sentinels for matrix defects.
//
// Complexity: O(n²).
func (in *Instance) Matrix() (*distmat.Matrix, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return distmat.New(in.Distances)
}

// ParseYAML decodes an Instance from a YAML document and validates its
// labels. The distance matrix is validated lazily in Matrix so callers can
// report both defect classes separately.
func ParseYAML(data []byte) (*Instance, error) {
	var in Instance
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &in, nil
}

// LoadYAML reads and decodes an instance file.
func LoadYAML(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return ParseYAML(data)
}

// Report renders a solver result against the instance labels:
//
//	Gachibowli -> Madhapur -> ... -> Gachibowli
//	Total distance: 68 km
//
// The tour is validated against the instance size first, so a mismatched
// result cannot index past the labels.
func Report(in *Instance, res tsp.TSResult) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}
	if len(res.Tour) == 0 {
		return "", tsp.ErrDimensionMismatch
	}
	var n = len(in.Distances)
	if err := tsp.ValidateTour(res.Tour, n, res.Tour[0]); err != nil {
		return "", err
	}

	var (
		names = make([]string, len(res.Tour))
		i     int
	)
	for i = 0; i < len(res.Tour); i++ {
		names[i] = in.Labels[res.Tour[i]]
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(names, " -> "))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Total distance: %g", res.Cost)
	if in.Unit != "" {
		sb.WriteByte(' ')
		sb.WriteString(in.Unit)
	}

	return sb.String(), nil
}

// Hyderabad returns the embedded 10-location reference instance
// (approximate road distances in km).
func Hyderabad() *Instance {
	return &Instance{
		Name: "hyderabad-logistics",
		Unit: "km",
		Labels: []string{
			"Gachibowli", "Madhapur", "Kondapur", "Kukatpally", "Hitech City",
			"Banjara Hills", "Secunderabad", "LB Nagar", "Charminar", "Begumpet",
		},
		Distances: [][]float64{
			{0, 5, 4, 10, 3, 12, 15, 18, 14, 11},
			{5, 0, 3, 8, 2, 9, 14, 17, 13, 10},
			{4, 3, 0, 7, 2, 11, 13, 16, 12, 9},
			{10, 8, 7, 0, 6, 14, 10, 15, 17, 12},
			{3, 2, 2, 6, 0, 10, 13, 16, 12, 9},
			{12, 9, 11, 14, 10, 0, 8, 12, 7, 6},
			{15, 14, 13, 10, 13, 8, 0, 14, 9, 5},
			{18, 17, 16, 15, 16, 12, 14, 0, 11, 15},
			{14, 13, 12, 17, 12, 7, 9, 11, 0, 8},
			{11, 10, 9, 12, 9, 6, 5, 15, 8, 0},
		},
	}
}
