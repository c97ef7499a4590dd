package source

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding names the on-disk character encoding of a source file.
// Legacy C sources are frequently Latin-1 or Windows-1252; the pipeline
// works on UTF-8 and converts back on write.
type Encoding uint8

const (
	EncodingUTF8 Encoding = iota
	EncodingLatin1
	EncodingWindows1252
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingLatin1:
		return "latin1"
	case EncodingWindows1252:
		return "windows-1252"
	default:
		return "unknown"
	}
}

// ParseEncoding converts a flag or config value to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin1", "latin-1", "iso-8859-1":
		return EncodingLatin1, nil
	case "windows-1252", "cp1252":
		return EncodingWindows1252, nil
	default:
		return EncodingUTF8, fmt.Errorf("invalid encoding: %q (expected: utf-8|latin1|windows-1252)", s)
	}
}

func (e Encoding) codec() encoding.Encoding {
	switch e {
	case EncodingLatin1:
		return charmap.ISO8859_1
	case EncodingWindows1252:
		return charmap.Windows1252
	default:
		return nil
	}
}

// Decode converts raw bytes in encoding e to UTF-8.
func (e Encoding) Decode(raw []byte) ([]byte, error) {
	c := e.codec()
	if c == nil {
		return raw, nil
	}
	out, _, err := transform.Bytes(c.NewDecoder(), raw)
	return out, err
}

// Encode converts UTF-8 text back to encoding e. Characters outside the
// target repertoire are an error rather than being replaced silently.
func (e Encoding) Encode(text []byte) ([]byte, error) {
	c := e.codec()
	if c == nil {
		return text, nil
	}
	out, _, err := transform.Bytes(c.NewEncoder(), text)
	return out, err
}

// Denormalize converts UTF-8/LF text back to the on-disk form of f: CRLF line
// endings and BOM are restored when the file had them, then the text is
// encoded in f.Encoding.
func (f *File) Denormalize(text []byte) ([]byte, error) {
	out := text
	if f.Flags&FileNormalizedCRLF != 0 {
		out = bytes.ReplaceAll(out, []byte("\n"), []byte("\r\n"))
	}
	if f.Flags&FileHadBOM != 0 {
		out = append(append([]byte(nil), utf8BOM...), out...)
	}
	return f.Encoding.Encode(out)
}
