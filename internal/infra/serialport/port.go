// Package serialport opens the physical hardware channel.
package serialport

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// Open opens the serial device at the given baud rate. It is called exactly
// once at bridge startup; failure here is fatal to the process.
func Open(device string, baud int) (io.ReadWriteCloser, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("opening serial port %s @ %d: %w", device, baud, err)
	}
	return port, nil
}
