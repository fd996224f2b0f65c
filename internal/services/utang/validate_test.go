package utang

import (
	"testing"
	"time"
)

func f64(v float64) *float64 { return &v }

func TestValidate(t *testing.T) {
	cases := []struct {
		name      string
		in        CreateInput
		wantField string
	}{
		{"ok", CreateInput{NamaPeminjam: "Andi", Jumlah: f64(50000)}, ""},
		{"ok zero amount", CreateInput{NamaPeminjam: "Andi", Jumlah: f64(0)}, ""},
		{"ok explicit status", CreateInput{NamaPeminjam: "Andi", Jumlah: f64(1), Status: "Lunas"}, ""},
		{"empty name", CreateInput{NamaPeminjam: "", Jumlah: f64(1)}, "namaPeminjam"},
		{"whitespace name", CreateInput{NamaPeminjam: "   ", Jumlah: f64(1)}, "namaPeminjam"},
		{"missing amount", CreateInput{NamaPeminjam: "Andi"}, "jumlah"},
		{"negative amount", CreateInput{NamaPeminjam: "Andi", Jumlah: f64(-1)}, "jumlah"},
		{"bad status", CreateInput{NamaPeminjam: "Andi", Jumlah: f64(1), Status: "Nunggak"}, "status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(tc.in)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected validation error on %s", tc.wantField)
			}
			if err.Field != tc.wantField {
				t.Fatalf("expected field %s, got %s (%s)", tc.wantField, err.Field, err.Message)
			}
			if err.Message == "" {
				t.Fatal("validation error has no message")
			}
		})
	}
}

func TestParseJumlah(t *testing.T) {
	if v, err := ParseJumlah(" 50000 "); err != nil || v == nil || *v != 50000 {
		t.Fatalf("expected 50000, got %v err=%v", v, err)
	}
	if v, err := ParseJumlah("1250.5"); err != nil || *v != 1250.5 {
		t.Fatalf("expected 1250.5, got %v err=%v", v, err)
	}
	if v, err := ParseJumlah(""); err != nil || v != nil {
		t.Fatalf("empty input should be nil, nil; got %v err=%v", v, err)
	}

	_, err := ParseJumlah("lima ribu")
	if err == nil {
		t.Fatal("expected error for non-numeric amount")
	}
	verr, ok := err.(*ValidationError)
	if !ok || verr.Field != "jumlah" {
		t.Fatalf("expected *ValidationError on jumlah, got %T %v", err, err)
	}
}

func TestParseTanggal(t *testing.T) {
	got, err := ParseTanggal("2025-12-31")
	if err != nil || got == nil {
		t.Fatalf("expected parsed date, got %v err=%v", got, err)
	}
	want := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got, err := ParseTanggal(""); err != nil || got != nil {
		t.Fatalf("empty input should be nil, nil; got %v err=%v", got, err)
	}

	if _, err := ParseTanggal("besok"); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}
