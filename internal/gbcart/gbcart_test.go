package gbcart

import "testing"

func TestLabelRecognizedGeometries(t *testing.T) {
	cases := []struct {
		banks uint8
		size  uint16
		want  string
	}{
		{1, 8192, "8 KB battery save (1 banks of 8192 bytes)"},
		{4, 8192, "32 KB battery save (4 banks of 8192 bytes)"},
		{8, 8192, "64 KB battery save (8 banks of 8192 bytes)"},
		{16, 8192, "128 KB battery save (16 banks of 8192 bytes)"},
		{1, 512, "MBC2 512-byte save"},
	}
	for _, tc := range cases {
		got, ok := Label(tc.banks, tc.size)
		if !ok {
			t.Fatalf("geometry %dx%d not recognized", tc.banks, tc.size)
		}
		if got != tc.want {
			t.Fatalf("label %dx%d: got=%q want=%q", tc.banks, tc.size, got, tc.want)
		}
	}
}

func TestLabelUnrecognizedGeometries(t *testing.T) {
	cases := []struct {
		banks uint8
		size  uint16
	}{
		{0, 8192},
		{2, 8192},
		{3, 8192},
		{2, 512},
		{1, 256},
		{0, 0},
		{255, 65535},
	}
	for _, tc := range cases {
		if label, ok := Label(tc.banks, tc.size); ok {
			t.Fatalf("geometry %dx%d unexpectedly recognized as %q", tc.banks, tc.size, label)
		}
	}
}
