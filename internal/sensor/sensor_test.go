package sensor

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

type fakePort struct {
	response []byte
	readErr  error
	writeErr error

	written []byte
	closed  bool
}

func (f *fakePort) SetReadTimeout(time.Duration) error {
	return nil
}

func (f *fakePort) Read(p []byte) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	n := copy(p, f.response)
	return n, nil
}

func (f *fakePort) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.written = append(f.written, p...)
	return len(p), nil
}

func (f *fakePort) Close() error {
	f.closed = true
	return nil
}

func newTestReader(t *testing.T, p *fakePort) *Reader {
	t.Helper()
	r := NewReader("/dev/ttyTEST", 9600, 0, time.Second)
	r.sleep = func(time.Duration) {}
	r.open = func() (port, error) { return p, nil }
	return r
}

func TestReadSuccess(t *testing.T) {
	p := &fakePort{response: []byte("CO2:412\r\n")}
	r := newTestReader(t, p)

	ppm, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if ppm != 412 {
		t.Errorf("ppm = %d, want 412", ppm)
	}
	if !bytes.Equal(p.written, []byte("CO2\n")) {
		t.Errorf("command frame = %q, want %q", p.written, "CO2\n")
	}
	if !p.closed {
		t.Error("port not closed after successful read")
	}
}

func TestReadNonASCIIResponse(t *testing.T) {
	raw := []byte{0xFF, 0xFE, 0x01}
	p := &fakePort{response: raw}
	r := newTestReader(t, p)

	_, err := r.Read()
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("err = %v, want DecodeError", err)
	}
	if !bytes.Equal(decodeErr.Raw, raw) {
		t.Errorf("DecodeError.Raw = % x, want % x", decodeErr.Raw, raw)
	}
	if !p.closed {
		t.Error("port not closed after decode failure")
	}
}

func TestReadMissingMarker(t *testing.T) {
	p := &fakePort{response: []byte("TEMP:23")}
	r := newTestReader(t, p)

	_, err := r.Read()
	var malformed *MalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedResponse", err)
	}
	if malformed.Raw != "TEMP:23" {
		t.Errorf("MalformedResponse.Raw = %q", malformed.Raw)
	}
}

func TestReadNonNumericValue(t *testing.T) {
	p := &fakePort{response: []byte("CO2:error")}
	r := newTestReader(t, p)

	_, err := r.Read()
	var malformed *MalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedResponse", err)
	}
}

func TestReadTrailingFieldsIgnored(t *testing.T) {
	p := &fakePort{response: []byte("CO2:650 T:22\n")}
	r := newTestReader(t, p)

	ppm, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if ppm != 650 {
		t.Errorf("ppm = %d, want 650", ppm)
	}
}

func TestReadOpenFailure(t *testing.T) {
	r := NewReader("/dev/ttyTEST", 9600, 0, time.Second)
	r.sleep = func(time.Duration) {}
	openErr := errors.New("no such device")
	r.open = func() (port, error) { return nil, openErr }

	_, err := r.Read()
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
	if !errors.Is(err, openErr) {
		t.Errorf("TransportError does not wrap the open failure: %v", err)
	}
}

func TestReadTimeoutNoData(t *testing.T) {
	p := &fakePort{response: nil}
	r := newTestReader(t, p)

	_, err := r.Read()
	if !errors.Is(err, ErrNoResponse) {
		t.Fatalf("err = %v, want ErrNoResponse", err)
	}
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
	if !p.closed {
		t.Error("port not closed after timeout")
	}
}

func TestReadWriteFailure(t *testing.T) {
	p := &fakePort{writeErr: errors.New("broken pipe")}
	r := newTestReader(t, p)

	_, err := r.Read()
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
	if !p.closed {
		t.Error("port not closed after write failure")
	}
}

func TestReadErrorFailure(t *testing.T) {
	p := &fakePort{readErr: errors.New("device unplugged")}
	r := newTestReader(t, p)

	_, err := r.Read()
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
}
