package midi

// Adapter is the boundary to a physical MIDI backend. Implementations live
// outside this module's core; the engine and CLI only rely on this contract.
type Adapter interface {
	// ListPorts returns the names of the available MIDI input ports.
	ListPorts() ([]string, error)

	// Listen opens the first input port whose name contains portPattern and
	// returns an ordered channel of incoming messages. The channel is closed
	// after Stop is called and any in-flight message has been delivered.
	Listen(portPattern string) (<-chan Message, error)

	// Stop tears down the listening connection. Safe to call once after a
	// successful Listen.
	Stop()
}
