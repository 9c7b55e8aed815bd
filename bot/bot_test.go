package bot

import "testing"

func TestParseIDArg(t *testing.T) {
	tests := []struct {
		text    string
		cmd     string
		want    int64
		wantErr bool
	}{
		{"/delflavor 3", "/delflavor", 3, false},
		{"/deltopping 12", "/deltopping", 12, false},
		{"/delflavor   7", "/delflavor", 7, false},
		{"/delflavor", "/delflavor", 0, true},
		{"/delflavor abc", "/delflavor", 0, true},
		{"/delflavor 0", "/delflavor", 0, true},
		{"/delflavor -4", "/delflavor", 0, true},
	}
	for _, tt := range tests {
		got, err := parseIDArg(tt.text, tt.cmd)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseIDArg(%q) expected error, got %d", tt.text, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseIDArg(%q) unexpected error: %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseIDArg(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
