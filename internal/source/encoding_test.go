package source

import "testing"

func TestEncodingRoundTripLatin1(t *testing.T) {
	raw := []byte{'/', '/', ' ', 'c', 'a', 'f', 0xE9, '\n'} // "// café" in latin1
	decoded, err := EncodingLatin1.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(decoded) != "// café\n" {
		t.Fatalf("unexpected decoded text %q", decoded)
	}
	encoded, err := EncodingLatin1.Encode(decoded)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(encoded) != string(raw) {
		t.Fatalf("round trip mismatch: %v vs %v", encoded, raw)
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in      string
		want    Encoding
		wantErr bool
	}{
		{"", EncodingUTF8, false},
		{"UTF-8", EncodingUTF8, false},
		{"latin1", EncodingLatin1, false},
		{"cp1252", EncodingWindows1252, false},
		{"ebcdic", EncodingUTF8, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEncoding(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEncoding(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseEncoding(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAddEncodedSetsFlags(t *testing.T) {
	fs := NewFileSet()
	raw := []byte{0xEF, 0xBB, 0xBF, 'a', '\r', '\n', 'b'}
	id, err := fs.AddEncoded("x.c", raw, EncodingUTF8)
	if err != nil {
		t.Fatalf("AddEncoded: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
}

func TestDenormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		enc  Encoding
	}{
		{"plain", []byte("a\nb\n"), EncodingUTF8},
		{"bom crlf", []byte{0xEF, 0xBB, 0xBF, 'a', '\r', '\n', 'b'}, EncodingUTF8},
		{"latin1 crlf", []byte{'c', 0xE9, '\r', '\n'}, EncodingLatin1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			id, err := fs.AddEncoded("x.c", tt.raw, tt.enc)
			if err != nil {
				t.Fatal(err)
			}
			f := fs.Get(id)
			back, err := f.Denormalize(f.Content)
			if err != nil {
				t.Fatal(err)
			}
			if string(back) != string(tt.raw) {
				t.Fatalf("got %q, want %q", back, tt.raw)
			}
		})
	}
}
