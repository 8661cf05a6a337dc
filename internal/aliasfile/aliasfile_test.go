package aliasfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/git-alias/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single line",
			input: "status -sb\n",
			want:  "status -sb",
		},
		{
			name:  "comments and blanks discarded",
			input: "# a comment\n\nstatus -sb\n\n# trailing comment\n",
			want:  "status -sb",
		},
		{
			name:  "indented comment discarded",
			input: "   # indented comment\nstatus -sb\n",
			want:  "status -sb",
		},
		{
			name:  "lines joined with single space",
			input: "!git fetch origin &&\ngit rebase origin/main\n",
			want:  "!git fetch origin && git rebase origin/main",
		},
		{
			name:  "trailing whitespace does not double spaces",
			input: "!git fetch origin &&   \n   git rebase origin/main\t\n",
			want:  "!git fetch origin && git rebase origin/main",
		},
		{
			name:  "interior whitespace preserved",
			input: "!echo 'a   b'\n",
			want:  "!echo 'a   b'",
		},
		{
			name:  "only comments and blanks",
			input: "# one\n\n   \n# two\n",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace-only line treated as blank",
			input: "status\n   \t  \n-sb\n",
			want:  "status -sb",
		},
		{
			name:  "no trailing newline",
			input: "status -sb",
			want:  "status -sb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The canonical multi-line definition from the project's examples: a
// commented header, a blank separator, and a shell command split over
// several lines.
func TestParse_PullRequestAlias(t *testing.T) {
	input := `# git pr [<remote>] <pr>
#
# Fetch a pull request head and show its tip commit.

!if [ $# -eq 1 ]; then set -- origin $1;
elif [ $# -ne 2 ]; then echo 'Usage: git pr [<remote>] <pr>'; exit 2; fi;
git fetch "${1}" "+pull/${2}/head:pull/${1}/${2}";
git log -1 "pull/${1}/${2}" #
`
	want := `!if [ $# -eq 1 ]; then set -- origin $1; elif [ $# -ne 2 ]; then echo 'Usage: git pr [<remote>] <pr>'; exit 2; fi; git fetch "${1}" "+pull/${2}/head:pull/${1}/${2}"; git log -1 "pull/${1}/${2}" #`

	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got != want {
		t.Errorf("Parse() =\n%q\nwant\n%q", got, want)
	}
}

// Parsing is idempotent: feeding a parsed body back through the parser
// yields the same body.
func TestParse_Idempotent(t *testing.T) {
	inputs := []string{
		"status -sb\n",
		"!git fetch origin &&\n  git rebase origin/main\n",
		"!echo 'a   b'   \n",
	}
	for _, input := range inputs {
		first, err := Parse(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		second, err := Parse(strings.NewReader(first))
		if err != nil {
			t.Fatalf("Parse() of parsed body error = %v", err)
		}
		if second != first {
			t.Errorf("parse not idempotent: %q -> %q", first, second)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "st.alias")
	if err := os.WriteFile(path, []byte("# status shorthand\nstatus -sb\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if got != "status -sb" {
		t.Errorf("ParseFile() = %q", got)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.alias"))
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("ParseFile() error = %v, want ErrNotFound", err)
	}
}

func TestDeriveName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"pr.alias", "pr"},
		{"/some/dir/tracking.alias", "tracking"},
		{"fix", "fix"},
		{"aliases/fix-up", "fix-up"},
	}
	for _, tt := range tests {
		if got := DeriveName(tt.path); got != tt.want {
			t.Errorf("DeriveName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"pr", "fix-up", "co_b", "v2"} {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) error = %v", name, err)
		}
	}
	for _, name := range []string{"", "with space", "dot.ted", "sh!", "semi;colon"} {
		if err := ValidateName(name); !errors.Is(err, errors.ErrInvalidName) {
			t.Errorf("ValidateName(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}
