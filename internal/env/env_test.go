package env

import "testing"

func TestUnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Environment
	}{
		{in: "production", want: Production},
		{in: " Production ", want: Production},
		{in: "DEVELOPMENT", want: Development},
		{in: "staging", want: "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			var got Environment
			if err := got.UnmarshalText([]byte(tt.in)); err != nil {
				t.Fatalf("UnmarshalText(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("UnmarshalText(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if got.IsDevelopment() != (tt.want == Development) {
				t.Errorf("IsDevelopment() = %v", got.IsDevelopment())
			}
		})
	}
}
