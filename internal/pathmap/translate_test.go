package pathmap

import (
	"errors"
	"testing"
)

func TestTranslateWindows(t *testing.T) {
	tests := []struct {
		name       string
		convention Convention
		input      string
		want       string
	}{
		{"mnt convention", ConventionMnt, `C:\Users\bob\app`, "/mnt/c/Users/bob/app"},
		{"root convention", ConventionRoot, `C:\Users\bob\app`, "/c/Users/bob/app"},
		{"lower-cases drive", ConventionMnt, `D:\Work`, "/mnt/d/Work"},
		{"keeps path case", ConventionMnt, `c:\Users\Bob\My App`, "/mnt/c/Users/Bob/My App"},
		{"drive root", ConventionMnt, `C:\`, "/mnt/c"},
		{"forward slashes", ConventionMnt, `C:/Users/bob`, "/mnt/c/Users/bob"},
		{"dot dot resolved", ConventionMnt, `C:\Users\bob\..\alice\proj`, "/mnt/c/Users/alice/proj"},
		{"dot dot above root", ConventionRoot, `C:\..\..\tmp`, "/c/tmp"},
		{"trailing separator", ConventionMnt, `C:\Users\bob\`, "/mnt/c/Users/bob"},
		{"long path prefix", ConventionMnt, `\\?\C:\Users\bob`, "/mnt/c/Users/bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Translator{Platform: PlatformWindows, Convention: tt.convention}
			got, err := tr.Translate(tt.input)
			if err != nil {
				t.Fatalf("Translate(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Translate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTranslatePOSIX(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/home/alice/proj", "/home/alice/proj"},
		{"/home/alice/proj/", "/home/alice/proj"},
		{"/home/alice/../bob/proj", "/home/bob/proj"},
		{"/", "/"},
		{"/srv/with space/x", "/srv/with space/x"},
	}

	tr := Translator{Platform: PlatformPOSIX, Convention: ConventionMnt}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := tr.Translate(tt.input)
			if err != nil {
				t.Fatalf("Translate(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Translate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTranslateIsDeterministic(t *testing.T) {
	inputs := []struct {
		platform Platform
		path     string
	}{
		{PlatformPOSIX, "/home/alice/proj"},
		{PlatformWindows, `C:\Users\bob\app`},
		{PlatformWindows, `E:\a\b\..\c`},
	}

	for _, in := range inputs {
		tr := Translator{Platform: in.platform, Convention: ConventionMnt}
		first, err := tr.Translate(in.path)
		if err != nil {
			t.Fatalf("Translate(%q) unexpected error: %v", in.path, err)
		}
		second, err := tr.Translate(in.path)
		if err != nil {
			t.Fatalf("Translate(%q) unexpected error: %v", in.path, err)
		}
		if first != second {
			t.Errorf("Translate(%q) not deterministic: %q != %q", in.path, first, second)
		}
	}
}

func TestTranslateRejectsUNC(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		input    string
	}{
		{"backslash share on windows", PlatformWindows, `\\server\share\proj`},
		{"forward slash share on windows", PlatformWindows, `//server/share/proj`},
		{"long UNC prefix", PlatformWindows, `\\?\UNC\server\share`},
		{"backslash share on posix", PlatformPOSIX, `\\server\share`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Translator{Platform: tt.platform, Convention: ConventionMnt}
			_, err := tr.Translate(tt.input)

			var unsupported *UnsupportedPathError
			if !errors.As(err, &unsupported) {
				t.Fatalf("Translate(%q) error = %v, want *UnsupportedPathError", tt.input, err)
			}
		})
	}
}

func TestTranslateRejectsRelative(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		input    string
	}{
		{"posix relative", PlatformPOSIX, "proj/src"},
		{"posix empty", PlatformPOSIX, ""},
		{"windows relative", PlatformWindows, `Users\bob`},
		{"windows drive relative", PlatformWindows, `C:proj`},
		{"windows rooted without drive", PlatformWindows, `\Users\bob`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Translator{Platform: tt.platform, Convention: ConventionMnt}
			_, err := tr.Translate(tt.input)

			var invalid *InvalidPathError
			if !errors.As(err, &invalid) {
				t.Fatalf("Translate(%q) error = %v, want *InvalidPathError", tt.input, err)
			}
		})
	}
}

func TestParseConvention(t *testing.T) {
	tests := []struct {
		input   string
		want    Convention
		wantErr bool
	}{
		{"", ConventionMnt, false},
		{"mnt", ConventionMnt, false},
		{" ROOT ", ConventionRoot, false},
		{"wsl", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseConvention(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseConvention(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConvention(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseConvention(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDriveTarget(t *testing.T) {
	if got := ConventionMnt.DriveTarget("C:"); got != "/mnt/c" {
		t.Errorf("ConventionMnt.DriveTarget(C:) = %q, want /mnt/c", got)
	}
	if got := ConventionRoot.DriveTarget("d"); got != "/d" {
		t.Errorf("ConventionRoot.DriveTarget(d) = %q, want /d", got)
	}
}

func TestWithin(t *testing.T) {
	roots := []string{"/home/alice", "/mnt/c/"}

	tests := []struct {
		path string
		want bool
	}{
		{"/home/alice", true},
		{"/home/alice/proj", true},
		{"/home/alice2/proj", false},
		{"/mnt/c/Users/bob/app", true},
		{"/mnt/d/work/app", false},
		{"/srv/proj", false},
	}

	for _, tt := range tests {
		if got := Within(tt.path, roots); got != tt.want {
			t.Errorf("Within(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	if !Within("/srv/proj", []string{"/"}) {
		t.Error("Within() should accept any path under a / root")
	}
	if Within("/srv/proj", nil) {
		t.Error("Within() with no roots should be false")
	}
}
