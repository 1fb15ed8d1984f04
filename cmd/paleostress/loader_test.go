package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tectolab/paleostress/fault"
)

// TestReadFaultTable_MixedKinds loads one row of each measurement form
// through the header-mapped schema: a rake striation, a bare plane, a
// lineation axis, and a conjugate pair.
func TestReadFaultTable_MixedKinds(t *testing.T) {
	const table = `kind,strike,dip,dip_octant,rake,strike_end,trend,movement,line_trend,line_plunge,strike2,dip2,dip_octant2,movement2
StriatedPlane,40,55,SE,70,NE,,N,,,,,,
extension_fracture,0,90,E,,,,,,,,,,
stylolite_teeth,,,,,,,,0,90,,,,
ConjugateFaults,0,30,E,,,,N,,,0,30,W,N
`
	data, err := readFaultTable(strings.NewReader(table))
	require.NoError(t, err)
	require.Len(t, data, 4)

	assert.Equal(t, fault.KindStriatedPlane, data[0].Kind())
	assert.Equal(t, fault.KindExtensionFracture, data[1].Kind(), "kind names match case- and separator-insensitively")
	assert.Equal(t, fault.KindStyloliteTeeth, data[2].Kind())
	assert.Equal(t, fault.KindConjugateFaults, data[3].Kind())
}

// TestReadFaultTable_ColumnOrderIrrelevant verifies cells are addressed by
// header name, not position.
func TestReadFaultTable_ColumnOrderIrrelevant(t *testing.T) {
	const table = `dip,KIND,strike,dip_octant
90,ExtensionFracture,0,E
`
	data, err := readFaultTable(strings.NewReader(table))
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, fault.KindExtensionFracture, data[0].Kind())
}

// TestReadFaultTable_FactoryErrorsCarryTheRow verifies measurement errors
// surface as construction errors pointing at the offending row.
func TestReadFaultTable_FactoryErrorsCarryTheRow(t *testing.T) {
	const table = `kind,strike,dip,dip_octant
ExtensionFracture,0,95,E
`
	_, err := readFaultTable(strings.NewReader(table))
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrDipRange)

	var ce *fault.ConstructionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 2, ce.Index, "header is row 1, the bad datum row 2")
}

// TestReadFaultTable_RejectsMalformedRows exercises the loader's own
// errors: schema, cell syntax, and the paired line columns.
func TestReadFaultTable_RejectsMalformedRows(t *testing.T) {
	cases := []struct {
		name  string
		table string
		want  string
	}{
		{
			"missing kind column",
			"strike,dip\n0,30\n",
			`"kind" column`,
		},
		{
			"unparseable dip",
			"kind,strike,dip,dip_octant\nExtensionFracture,0,steep,E\n",
			"column dip",
		},
		{
			"unknown octant",
			"kind,strike,dip,dip_octant\nExtensionFracture,0,90,EAST\n",
			"column dip_octant",
		},
		{
			"half a lineation",
			"kind,line_trend,line_plunge\nStyloliteTeeth,10,\n",
			"set together",
		},
		{
			"no data rows",
			"kind,strike,dip\n",
			"no data rows",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := readFaultTable(strings.NewReader(tc.table))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestReadFaultTable_UnknownKind verifies the factory sentinel passes
// through errors.Is.
func TestReadFaultTable_UnknownKind(t *testing.T) {
	const table = "kind,strike,dip\nFoldAxis,0,30\n"
	_, err := readFaultTable(strings.NewReader(table))
	assert.ErrorIs(t, err, fault.ErrUnknownKind)
}

// TestLoadFaultData_MissingFile verifies the os error context.
func TestLoadFaultData_MissingFile(t *testing.T) {
	_, err := loadFaultData("does-not-exist.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open data file")
}
