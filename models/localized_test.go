package models

import (
	"reflect"
	"testing"
)

func TestLocalizedNamesScan(t *testing.T) {
	expected := LocalizedNames{
		{Language: "fi", Value: "Kerrostalo"},
		{Language: "en", Value: "Apartment block"},
	}
	raw := `[{"language":"fi","value":"Kerrostalo"},{"language":"en","value":"Apartment block"}]`

	tests := []struct {
		name     string
		src      interface{}
		expected LocalizedNames
		wantErr  bool
	}{
		{"bytes", []byte(raw), expected, false},
		{"string", raw, expected, false},
		{"null column", nil, nil, false},
		{"unsupported type", 42, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ln LocalizedNames
			err := ln.Scan(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(ln, tt.expected) {
				t.Errorf("scanned %+v, expected %+v", ln, tt.expected)
			}
		})
	}
}

func TestLocalizedNamesValue(t *testing.T) {
	names := LocalizedNames{{Language: "fi", Value: "Purku"}}
	v, err := names.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(v.([]byte)) != `[{"language":"fi","value":"Purku"}]` {
		t.Errorf("encoded value = %s", v)
	}

	// Nil set encodes as an empty jsonb array for not-null columns.
	v, err = LocalizedNames(nil).Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("nil set encoded as %s, expected []", v)
	}
}
