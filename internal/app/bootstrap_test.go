package app

import "testing"

func TestListenAddr(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "8080", want: ":8080"},
		{in: ":8080", want: ":8080"},
		{in: " 3000 ", want: ":3000"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
	}
	for _, c := range cases {
		got, err := ListenAddr(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ListenAddr(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ListenAddr(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ListenAddr(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
