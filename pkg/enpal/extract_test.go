package enpal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const twoTablesHTML = `<html><body>
<table><tbody>
<tr><td>Grid Power</td><td>2366.35 W</td></tr>
</tbody></table>
<table><tbody>
<tr><td>Total Energy</td><td>18.52kWh</td></tr>
</tbody></table>
</body></html>`

func TestExtractTwoTables(t *testing.T) {

	assert := assert.New(t)

	snapshot, err := Extract(twoTablesHTML)
	assert.NoError(err)
	assert.Len(snapshot, 2)
	assert.Equal(Reading{Value: 2366.35, Unit: "W", HasValue: true}, snapshot["Grid Power"])
	assert.Equal(Reading{Value: 18.52, Unit: "kWh", HasValue: true}, snapshot["Total Energy"])
}

func TestExtractIdempotent(t *testing.T) {

	assert := assert.New(t)

	first, err := Extract(twoTablesHTML)
	assert.NoError(err)
	second, err := Extract(twoTablesHTML)
	assert.NoError(err)
	assert.Equal(first, second, "re-extracting identical HTML yields identical snapshots")
}

func TestExtractSkipsShortAndValuelessRows(t *testing.T) {

	assert := assert.New(t)

	html := `<table><tbody>
<tr><td>Lonely Cell</td></tr>
<tr><td>Serial Number</td><td>EN-2023-0042A</td></tr>
<tr><td>Grid Power</td><td>100 W</td></tr>
</tbody></table>`

	snapshot, err := Extract(html)
	assert.NoError(err)
	assert.Len(snapshot, 1)
	assert.Contains(snapshot, "Grid Power")
}

func TestExtractDuplicateRowNamesLastWins(t *testing.T) {

	assert := assert.New(t)

	html := `<table><tbody>
<tr><td>Power</td><td>100 W</td></tr>
<tr><td>Power</td><td>200 W</td></tr>
</tbody></table>`

	snapshot, err := Extract(html)
	assert.NoError(err)
	assert.Equal(200.0, snapshot["Power"].Value, "later row overwrites earlier")
}

func TestExtractAppliesWhNormalization(t *testing.T) {

	assert := assert.New(t)

	html := `<table><tbody>
<tr><td>Energy Today</td><td>9340Wh</td></tr>
</tbody></table>`

	snapshot, err := Extract(html)
	assert.NoError(err)
	assert.Equal(Reading{Value: 9.34, Unit: "kWh", HasValue: true}, snapshot["Energy Today"])
}

func TestExtractTrimsCellText(t *testing.T) {

	assert := assert.New(t)

	html := `<table><tbody>
<tr><td>  Grid Power  </td><td>  2366.35 W  </td></tr>
</tbody></table>`

	snapshot, err := Extract(html)
	assert.NoError(err)
	assert.Contains(snapshot, "Grid Power")
	assert.Equal(2366.35, snapshot["Grid Power"].Value)
}

func TestExtractEmptyDocument(t *testing.T) {

	assert := assert.New(t)

	snapshot, err := Extract("<html><body><p>no tables here</p></body></html>")
	assert.NoError(err)
	assert.Empty(snapshot)
}

func TestExtractTestFixture(t *testing.T) {

	assert := assert.New(t)

	snapshot, err := Extract(testDeviceMessagesHTML)
	assert.NoError(err)

	// the serial row is non-numeric and must be dropped
	assert.NotContains(snapshot, "Device.Serial")
	assert.Equal(2366.35, snapshot["Power.Grid.Export"].Value)
	assert.Equal("W", snapshot["Power.Grid.Export"].Unit)
	assert.Equal(200.0, snapshot["State.Inverter"].Value)
	assert.Equal(Reading{Value: 9.34, Unit: "kWh", HasValue: true}, snapshot["Energy.Consumption.Total.Day"])
	assert.Equal("%", snapshot["Percent.Storage.Level"].Unit)
}
