package scaling

import "testing"

func TestParseServings(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{"plain string number", "4", 4},
		{"people suffix", "4 people", 4},
		{"range takes first number", "4 to 6", 4},
		{"serves prefix", "serves 8", 8},
		{"numeric int", 6, 6},
		{"numeric float", 2.5, 2.5},
		{"empty string", "", 1},
		{"nil", nil, 1},
		{"no digits", "no digits here", 1},
		{"multi digit", "12 portions", 12},
		{"digits after text", "feeds 10 to 12 hungry guests", 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseServings(tc.input); got != tc.want {
				t.Fatalf("ParseServings(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
