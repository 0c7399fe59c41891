package enpal

import "context"

// TestDeviceReader serves a fixed deviceMessages page, so actors and the
// Monitor can be exercised without a real inverter.
type TestDeviceReader struct {
}

func CreateTestDeviceReader() DeviceReader {
	return TestDeviceReader{}
}

const testDeviceMessagesHTML = `<!DOCTYPE html>
<html>
<head><title>Device Messages</title></head>
<body>
<h2>IQ8 Inverter</h2>
<table>
<tbody>
<tr><td>Power.Grid.Export</td><td>2366.35 W</td></tr>
<tr><td>Power.House.Total</td><td>486.20 W</td></tr>
<tr><td>State.Inverter</td><td>On-grid mode (200)</td></tr>
<tr><td>Device.Serial</td><td>EN-2023-0042A</td></tr>
</tbody>
</table>
<h2>Energy Counters</h2>
<table>
<tbody>
<tr><td>Energy.Production.Total.Day</td><td>18.52kWh</td></tr>
<tr><td>Energy.Consumption.Total.Day</td><td>9340Wh</td></tr>
<tr><td>Percent.Storage.Level</td><td>55 %</td></tr>
<tr><td>Voltage.Phase.A</td><td>231.7 V</td></tr>
</tbody>
</table>
</body>
</html>`

func (TestDeviceReader) FetchRaw(ctx context.Context) (string, error) {
	return testDeviceMessagesHTML, nil
}

func (TestDeviceReader) Probe(ctx context.Context) error {
	return nil
}
