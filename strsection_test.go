package bntx

import "testing"

func TestAlign(t *testing.T) {
	cases := []struct{ n, to, want int }{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{13, 4, 16},
	}
	for _, c := range cases {
		if got := align(c.n, c.to); got != c.want {
			t.Errorf("align(%d, %d) = %d, want %d", c.n, c.to, got, c.want)
		}
	}
}

func TestStringPaddedSize(t *testing.T) {
	// 2-byte length prefix + bytes + null terminator, rounded up to 4.
	cases := []struct {
		s    string
		want int
	}{
		{"", 4},       // 2+0+1=3 -> 4
		{"a", 4},      // 2+1+1=4 -> 4
		{"abc", 8},    // 2+3+1=6 -> 8
		{"example", 12}, // 2+7+1=10 -> 12
	}
	for _, c := range cases {
		if got := stringPaddedSize(c.s); got != c.want {
			t.Errorf("stringPaddedSize(%q) = %d, want %d", c.s, got, c.want)
		}
	}
}

func TestStrSectionGetSize(t *testing.T) {
	s := &StrSection{Strings: []string{"tex"}}
	// 5*4 (header) + EmptyStrSize(4) + stringPaddedSize("tex") = 20+4+8 = 32, already 8-aligned.
	got := s.GetSize()
	want := align(5*4+EmptyStrSize+stringPaddedSize("tex"), 8)
	if got != want {
		t.Fatalf("GetSize() = %d, want %d", got, want)
	}
	if got%8 != 0 {
		t.Fatalf("GetSize() = %d is not 8-byte aligned", got)
	}
}

func TestStrSectionGetSizeEmpty(t *testing.T) {
	s := &StrSection{}
	got := s.GetSize()
	want := align(5*4+EmptyStrSize, 8)
	if got != want {
		t.Fatalf("GetSize() = %d, want %d", got, want)
	}
}
