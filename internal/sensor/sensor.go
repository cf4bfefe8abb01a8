// Package sensor reads CO2 concentrations from the serial-attached sensor
// bridge. The bridge speaks a tiny line protocol: it receives the fixed
// "CO2\n" command frame and answers with an ASCII "CO2:<ppm>" line.
package sensor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.bug.st/serial"

	"github.com/hoohsh/jetson-chatbot/internal/logger"
)

// readCommand is the fixed 4-byte command frame the bridge firmware expects.
var readCommand = []byte("CO2\n")

// responseMarker prefixes every well-formed sensor reply.
const responseMarker = "CO2:"

// ErrNoResponse indicates the read timed out without the device sending
// any bytes, usually a disconnected or powered-down sensor.
var ErrNoResponse = errors.New("no response from sensor")

// TransportError wraps serial port failures: open, write, read, timeout.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sensor transport error (%s): %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates the device sent bytes that are not ASCII text.
// Raw carries the payload for diagnostics.
type DecodeError struct {
	Raw []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("sensor response is not ASCII text: % x", e.Raw)
}

// MalformedResponse indicates the reply decoded fine but lacked the
// "CO2:" marker or a parseable number after it.
type MalformedResponse struct {
	Raw string
}

func (e *MalformedResponse) Error() string {
	return fmt.Sprintf("sensor response missing %q marker or value: %q", responseMarker, e.Raw)
}

// port is the slice of serial.Port behavior the reader uses. Tests supply
// a fake through Reader.open.
type port interface {
	SetReadTimeout(time.Duration) error
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// Reader owns the serial transport to the CO2 sensor. Each Read opens the
// port, issues one command, and closes the port again, so a wedged read
// never leaves the device claimed.
type Reader struct {
	PortName    string
	BaudRate    int
	SettleDelay time.Duration
	ReadTimeout time.Duration

	open  func() (port, error)
	sleep func(time.Duration)
}

func NewReader(portName string, baudRate int, settleDelay, readTimeout time.Duration) *Reader {
	r := &Reader{
		PortName:    portName,
		BaudRate:    baudRate,
		SettleDelay: settleDelay,
		ReadTimeout: readTimeout,
		sleep:       time.Sleep,
	}
	r.open = r.openSerial

	return r
}

func (r *Reader) openSerial() (port, error) {
	mode := &serial.Mode{BaudRate: r.BaudRate}
	return serial.Open(r.PortName, mode)
}

// Read performs one full measurement cycle and returns the CO2
// concentration in ppm. Failures are never retried here: every attempt
// costs the full settle delay, so retry policy belongs to the caller.
func (r *Reader) Read() (int, error) {
	p, err := r.open()
	if err != nil {
		return 0, &TransportError{Op: "open " + r.PortName, Err: err}
	}
	defer p.Close()

	if err := p.SetReadTimeout(r.ReadTimeout); err != nil {
		return 0, &TransportError{Op: "set read timeout", Err: err}
	}

	if _, err := p.Write(readCommand); err != nil {
		return 0, &TransportError{Op: "write command", Err: err}
	}

	// The firmware samples after receiving the command and needs this long
	// before it answers. This is a device property, not a tunable wait.
	r.sleep(r.SettleDelay)

	buf := make([]byte, 64)
	n, err := p.Read(buf)
	if err != nil {
		return 0, &TransportError{Op: "read response", Err: err}
	}
	if n == 0 {
		return 0, &TransportError{Op: "read response", Err: ErrNoResponse}
	}

	raw := append([]byte(nil), buf[:n]...)
	logger.Debugf("Sensor raw response: %q", raw)

	text, ok := decodeASCII(raw)
	if !ok {
		return 0, &DecodeError{Raw: raw}
	}

	return parseReading(text)
}

// decodeASCII returns the payload as text if every byte is 7-bit ASCII.
func decodeASCII(raw []byte) (string, bool) {
	for _, b := range raw {
		if b > 0x7F {
			return "", false
		}
	}
	return string(raw), true
}

// parseReading extracts the ppm value from a decoded "CO2:<n>" reply.
func parseReading(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, responseMarker) {
		return 0, &MalformedResponse{Raw: text}
	}

	field := strings.TrimSpace(strings.TrimPrefix(trimmed, responseMarker))
	if i := strings.IndexAny(field, " \t\r\n"); i >= 0 {
		field = field[:i]
	}

	ppm, err := strconv.Atoi(field)
	if err != nil {
		return 0, &MalformedResponse{Raw: text}
	}

	return ppm, nil
}
