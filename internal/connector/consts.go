package connector

const (
	// Name and Version identify the connector in --describe output.
	Name    = "template-connector"
	Version = "1.0.0"

	// ConnectivityEndpoint is appended to the asset host for test_connectivity.
	ConnectivityEndpoint = "/health"

	ActionTestConnectivity = "test_connectivity"

	ProgressConnecting      = "Connecting to instance..."
	ErrConnectivityTest     = "Test Connectivity Failed"
	SuccConnectivityTest    = "Test Connectivity Passed"
	ErrUnsupportedActionFmt = "Unsupported action: %s"
)
