package shader

import (
	"errors"
	"testing"
)

func TestCompileToSPIRVEmptySource(t *testing.T) {
	_, err := CompileToSPIRV("empty", "")
	if !errors.Is(err, ErrEmptySource) {
		t.Errorf("CompileToSPIRV(\"\") error = %v, want %v", err, ErrEmptySource)
	}
}

func TestCompileToSPIRVInvalidSource(t *testing.T) {
	if _, err := CompileToSPIRV("broken", "fn main( {"); err == nil {
		t.Error("CompileToSPIRV() of malformed WGSL should fail")
	}
}

func TestNewModuleWithoutHAL(t *testing.T) {
	m, err := NewModule(struct{}{}, "blit", []uint32{0x07230203})
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}
	if m != nil {
		t.Errorf("NewModule() = %v, want nil for a provider without HAL access", m)
	}
	// Destroy on nil is a no-op.
	m.Destroy()
}
