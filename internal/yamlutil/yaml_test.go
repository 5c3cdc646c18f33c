package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type target struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	var got target
	if err := Unmarshal([]byte("name: app\ncount: 3\n"), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.Name != "app" || got.Count != 3 {
		t.Errorf("Unmarshal() = %+v", got)
	}
}

func TestUnmarshalToleratesUnknownFields(t *testing.T) {
	var got target
	if err := Unmarshal([]byte("name: app\nextra: true\n"), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	var got target
	err := UnmarshalStrict([]byte("name: app\nextra: true\n"), &got)
	if err == nil {
		t.Fatal("UnmarshalStrict() with unknown field succeeded, want error")
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{"nil data", nil, &target{}, ErrNilData},
		{"empty data", []byte{}, &target{}, ErrNilData},
		{"nil destination", []byte("a: 1"), nil, ErrNilDestination},
		{"oversized input", []byte("x: " + strings.Repeat("a", MaxInputSize)), &target{}, ErrInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := UnmarshalStrict(tt.data, tt.dest); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
