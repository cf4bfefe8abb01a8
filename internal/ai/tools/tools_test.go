package tools

import (
	"errors"
	"strings"
	"testing"

	"github.com/hoohsh/jetson-chatbot/internal/vent"
)

type stubReader struct {
	ppm int
	err error
}

func (s stubReader) Read() (int, error) {
	return s.ppm, s.err
}

func TestCO2SensorToolExecute(t *testing.T) {
	tool := NewCO2SensorTool(stubReader{ppm: 412})

	got, err := tool.Execute("{}")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(got, "412 ppm") {
		t.Errorf("Execute output = %q", got)
	}
}

func TestCO2SensorToolExecuteFailure(t *testing.T) {
	sensorErr := errors.New("port unavailable")
	tool := NewCO2SensorTool(stubReader{err: sensorErr})

	_, err := tool.Execute("{}")
	if !errors.Is(err, sensorErr) {
		t.Fatalf("err = %v, want wrapped sensor error", err)
	}
}

func TestCO2SensorToolMeasure(t *testing.T) {
	tool := NewCO2SensorTool(stubReader{ppm: 900})

	ppm, err := tool.Measure()
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if ppm != 900 {
		t.Errorf("ppm = %d, want 900", ppm)
	}
}

func TestVentilationToolExecute(t *testing.T) {
	tool := NewVentilationTool()

	tests := []struct {
		args string
		want string
	}{
		{`{"ppm": 500}`, "OK"},
		{`{"ppm": 900}`, "ELEVATED"},
		{`{"ppm": 1200}`, "HIGH"},
		{`{"ppm": "900"}`, "ELEVATED"},
	}

	for _, tt := range tests {
		got, err := tool.Execute(tt.args)
		if err != nil {
			t.Fatalf("Execute(%s): %v", tt.args, err)
		}
		if !strings.Contains(got, tt.want) {
			t.Errorf("Execute(%s) = %q, want tier %s", tt.args, got, tt.want)
		}
	}
}

func TestVentilationToolInvalidInput(t *testing.T) {
	tool := NewVentilationTool()

	for _, args := range []string{`{"ppm": "very high"}`, `{}`, `{"ppm": true}`} {
		_, err := tool.Execute(args)
		if !errors.Is(err, vent.ErrInvalidInput) {
			t.Errorf("Execute(%s) err = %v, want ErrInvalidInput", args, err)
		}
	}
}

func TestVentilationToolMalformedJSON(t *testing.T) {
	tool := NewVentilationTool()

	if _, err := tool.Execute("not json"); err == nil {
		t.Fatal("expected error for malformed arguments")
	}
}
