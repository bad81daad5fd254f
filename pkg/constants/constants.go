// Package constants defines the constants that are used by multiple other packages within udp-send-receive.
package constants

const (
	// DefaultPort is the UDP port the remote device listens on.
	DefaultPort = 8888

	// ReceiveBufferSize is the capacity of the reply buffer. Longer replies are truncated.
	ReceiveBufferSize = 128

	// EchoBufferSize is the read buffer of the demo echo server.
	EchoBufferSize = 2048

	// LocalhostIPAddress is the local host address.
	LocalhostIPAddress = "127.0.0.1"

	// WildcardIPAddr is the address the demo echo server listens on, covering every local interface.
	WildcardIPAddr = "0.0.0.0"

	// DefaultLogLevel is the default log level if none is specified
	DefaultLogLevel = "info"

	// AddressPrompt asks the user for the peer address.
	AddressPrompt = "Please enter the arduino's IP address:"

	// MessagePrompt asks the user for the next message to send.
	MessagePrompt = "Please enter a message:"
)
