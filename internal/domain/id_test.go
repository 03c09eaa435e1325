package domain

import (
	"errors"
	"testing"

	"github.com/stylesync/go-backend/pkg/e"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "hex válido de 24 caracteres", raw: "65a1b2c3d4e5f60718293a4b", wantErr: false},
		{name: "maiúsculas aceitas", raw: "65A1B2C3D4E5F60718293A4B", wantErr: false},
		{name: "curto demais", raw: "65a1b2c3", wantErr: true},
		{name: "longo demais", raw: "65a1b2c3d4e5f60718293a4b00", wantErr: true},
		{name: "caracteres fora do alfabeto hex", raw: "65a1b2c3d4e5f60718293azz", wantErr: true},
		{name: "vazio", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, e.ErrInvalidID) {
					t.Fatalf("ParseID(%q) err = %v, want ErrInvalidID", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) unexpected error: %v", tt.raw, err)
			}
			if id.IsZero() {
				t.Fatalf("ParseID(%q) returned zero ObjectID", tt.raw)
			}
		})
	}
}
