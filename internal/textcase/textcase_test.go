package textcase

import (
	"regexp"
	"testing"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sample Api", "sample-api"},
		{"My  Cool__Project!!", "my-cool-project"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"already-a-slug", "already-a-slug"},
		{"myHTTPServer", "my-http-server"},
		{"HTTPServer", "http-server"},
		{"Café Crème", "cafe-creme"},
		{"v2 Pipeline", "v2-pipeline"},
		{"___", ""},
		{"", ""},
		{"!!!???", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Sample Api", "myHTTPServer", "Café Crème", "a--b__c",
		"Data Pipeline 2000", "UPPER CASE TITLE",
	}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", in, once, twice)
		}
		if once != "" && !slugPattern.MatchString(once) {
			t.Errorf("Slugify(%q) = %q, contains characters outside [a-z0-9-]", in, once)
		}
	}
}

func TestPascal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sample api", "SampleApi"},
		{"my-cool-project", "MyCoolProject"},
		{"myHTTPServer", "MyHttpServer"},
		{"snake_case_input", "SnakeCaseInput"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Pascal(tt.in); got != tt.want {
			t.Errorf("Pascal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sample Api", "sample_api"},
		{"myHTTPServer", "my_http_server"},
		{"already_snake", "already_snake"},
		{"kebab-case-in", "kebab_case_in"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Snake(tt.in); got != tt.want {
			t.Errorf("Snake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sample Api", "sampleApi"},
		{"my-cool-project", "myCoolProject"},
		{"HTTPServer", "httpServer"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Camel(tt.in); got != tt.want {
			t.Errorf("Camel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// All four conversions share splitWords, so the same input must produce the
// same word sequence regardless of target style.
func TestBoundaryAgreement(t *testing.T) {
	in := "myHTTPServer v2"
	if got, want := Slugify(in), "my-http-server-v2"; got != want {
		t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
	}
	if got, want := Pascal(in), "MyHttpServerV2"; got != want {
		t.Errorf("Pascal(%q) = %q, want %q", in, got, want)
	}
	if got, want := Snake(in), "my_http_server_v2"; got != want {
		t.Errorf("Snake(%q) = %q, want %q", in, got, want)
	}
	if got, want := Camel(in), "myHttpServerV2"; got != want {
		t.Errorf("Camel(%q) = %q, want %q", in, got, want)
	}
}
