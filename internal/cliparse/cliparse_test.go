package cliparse

import "testing"

func TestTrials(t *testing.T) {
	tests := []struct {
		arg    string
		want   int
		wantOK bool
	}{
		{"0", 0, true},
		{"1", 1, true},
		{"42", 42, true},
		{"007", 7, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-3", 0, false},
		{"1e3", 0, false},
		{"12x", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, ok := Trials(tt.arg)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Trials(%q) = (%d, %v), want (%d, %v)", tt.arg, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
