package browser

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://example.com", false},
		{"http://example.com/a?b=c", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"https://", true},
		{"", true},
	}

	for _, tt := range tests {
		err := Validate(tt.url)
		if tt.wantErr != (err != nil) {
			t.Errorf("Validate(%q) = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestOpenRejectsBeforeLaunch(t *testing.T) {
	if err := Open("file:///etc/passwd"); err == nil {
		t.Error("expected file URL rejected")
	}
}

func TestCommand(t *testing.T) {
	const u = "https://example.com"
	tests := []struct {
		goos, override string
		wantName       string
		wantArgs       int
	}{
		{"darwin", "", "open", 1},
		{"linux", "", "xdg-open", 1},
		{"freebsd", "", "xdg-open", 1},
		{"windows", "", "rundll32", 2},
		{"linux", "firefox", "firefox", 1},
	}
	for _, tt := range tests {
		name, args := Command(tt.goos, tt.override, u)
		if name != tt.wantName || len(args) != tt.wantArgs || args[len(args)-1] != u {
			t.Errorf("Command(%q, %q) = %s %v", tt.goos, tt.override, name, args)
		}
	}
}
