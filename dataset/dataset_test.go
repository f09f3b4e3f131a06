package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbound/dataset"
	"github.com/katalvlaran/tourbound/distmat"
	"github.com/katalvlaran/tourbound/tsp"
)

const validYAML = `
name: delivery-day-1
unit: km
labels: [Depot, North, South, East]
distances:
  - [0, 10, 15, 20]
  - [10, 0, 35, 25]
  - [15, 35, 0, 30]
  - [20, 25, 30, 0]
`

func TestParseYAML_Valid(t *testing.T) {
	in, err := dataset.ParseYAML([]byte(validYAML))
	require.NoError(t, err)
	require.Equal(t, "delivery-day-1", in.Name)
	require.Equal(t, []string{"Depot", "North", "South", "East"}, in.Labels)

	m, err := in.Matrix()
	require.NoError(t, err)
	require.Equal(t, 4, m.Size())
}

func TestParseYAML_Malformed(t *testing.T) {
	_, err := dataset.ParseYAML([]byte("labels: ["))
	require.Error(t, err)
}

func TestValidate_LabelContract(t *testing.T) {
	base := func() *dataset.Instance {
		in, err := dataset.ParseYAML([]byte(validYAML))
		require.NoError(t, err)

		return in
	}

	in := base()
	in.Labels = in.Labels[:3]
	require.ErrorIs(t, in.Validate(), dataset.ErrLabelCount)

	in = base()
	in.Labels[2] = ""
	require.ErrorIs(t, in.Validate(), dataset.ErrEmptyLabel)

	in = base()
	in.Labels[3] = in.Labels[0]
	require.ErrorIs(t, in.Validate(), dataset.ErrDuplicateLabel)

	in = base()
	in.Distances = nil
	require.ErrorIs(t, in.Validate(), dataset.ErrNoDistances)
}

func TestMatrix_ForwardsDistmatSentinels(t *testing.T) {
	in, err := dataset.ParseYAML([]byte(validYAML))
	require.NoError(t, err)

	in.Distances[0][1] = 11 // break symmetry
	_, err = in.Matrix()
	require.ErrorIs(t, err, distmat.ErrAsymmetry)
}

func TestReport(t *testing.T) {
	in, err := dataset.ParseYAML([]byte(validYAML))
	require.NoError(t, err)

	m, err := in.Matrix()
	require.NoError(t, err)

	res, err := tsp.TSPBranchAndBound(m, tsp.DefaultOptions())
	require.NoError(t, err)

	out, err := dataset.Report(in, res)
	require.NoError(t, err)
	require.Equal(t, "Depot -> North -> East -> South -> Depot\nTotal distance: 80 km", out)
}

func TestReport_RejectsForeignTour(t *testing.T) {
	in, err := dataset.ParseYAML([]byte(validYAML))
	require.NoError(t, err)

	// Tour shaped for a different instance size.
	_, err = dataset.Report(in, tsp.TSResult{Tour: []int{0, 1, 0}, Cost: 20})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = dataset.Report(in, tsp.TSResult{})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestHyderabad_Embedded(t *testing.T) {
	in := dataset.Hyderabad()
	require.NoError(t, in.Validate())
	require.Len(t, in.Labels, 10)

	m, err := in.Matrix()
	require.NoError(t, err)
	require.Equal(t, 10, m.Size())

	// The case-study comparison: nearest-neighbor walks 72 km from
	// Gachibowli; the exact optimum can only meet or beat it.
	cmp, err := tsp.Compare(m, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 72.0, cmp.Greedy.Cost)
	require.LessOrEqual(t, cmp.Exact.Cost, cmp.Greedy.Cost)
}
