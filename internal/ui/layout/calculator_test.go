package layout

import "testing"

func TestChoose(t *testing.T) {
	tests := []struct {
		name       string
		forced     string
		width      int
		breakpoint int
		want       Mode
	}{
		{"auto wide", "auto", 120, 60, Desktop},
		{"auto narrow", "auto", 40, 60, Mobile},
		{"auto at breakpoint", "", 60, 60, Desktop},
		{"auto unknown width", "auto", 0, 60, Desktop},
		{"default breakpoint", "auto", 59, 0, Mobile},
		{"forced desktop", "desktop", 20, 60, Desktop},
		{"forced mobile", "mobile", 200, 60, Mobile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Choose(tt.forced, tt.width, tt.breakpoint); got != tt.want {
				t.Errorf("Choose(%q, %d, %d) = %v, want %v", tt.forced, tt.width, tt.breakpoint, got, tt.want)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	if Toggle(Desktop) != Mobile || Toggle(Mobile) != Desktop {
		t.Error("Toggle should switch between desktop and mobile")
	}
	if Mobile.String() != "mobile" || Desktop.String() != "desktop" {
		t.Error("unexpected mode names")
	}
}

func TestShellHeight(t *testing.T) {
	if got := ShellHeight(24); got != 23 {
		t.Errorf("ShellHeight(24) = %d, want 23", got)
	}
	if got := ShellHeight(0); got != 0 {
		t.Errorf("ShellHeight(0) = %d, want 0", got)
	}
}

func TestRows(t *testing.T) {
	tests := []struct {
		name                  string
		height, top, overhead int
		want                  int
	}{
		{"room for rows", 24, 7, 4, 13},
		{"exactly full", 11, 7, 4, 0},
		{"too small", 8, 7, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rows(tt.height, tt.top, tt.overhead); got != tt.want {
				t.Errorf("Rows(%d, %d, %d) = %d, want %d", tt.height, tt.top, tt.overhead, got, tt.want)
			}
		})
	}
}

func TestListWidth(t *testing.T) {
	if got := ListWidth(100, 60, 12); got != 60 {
		t.Errorf("ListWidth capped = %d, want 60", got)
	}
	if got := ListWidth(8, 60, 12); got != 12 {
		t.Errorf("ListWidth minimum = %d, want 12", got)
	}
	if got := ListWidth(50, 0, 12); got != 50 {
		t.Errorf("ListWidth uncapped = %d, want 50", got)
	}
}
