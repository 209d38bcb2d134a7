package bidi

import (
	"strings"
	"testing"
)

func TestFix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "wraps Latin text in parentheses",
			input: "متن (English) پایان",
			want:  `متن \LR{(English)} پایان`,
		},
		{
			name:  "wraps every span on a line",
			input: "الف (One) ب (Two)",
			want:  `الف \LR{(One)} ب \LR{(Two)}`,
		},
		{
			name:  "mixed content keeps inner text verbatim",
			input: "مدل (GPT-4, 2023) جدید",
			want:  `مدل \LR{(GPT-4, 2023)} جدید`,
		},
		{
			name:  "Persian only parentheses unchanged",
			input: "متن (توضیح) پایان",
			want:  "متن (توضیح) پایان",
		},
		{
			name:  "digits only unchanged",
			input: "سال (1402)",
			want:  "سال (1402)",
		},
		{
			name:  "URL with scheme unchanged",
			input: "منبع (https://example.com/a)",
			want:  "منبع (https://example.com/a)",
		},
		{
			name:  "content starting with http unchanged",
			input: "(http-based protocol)",
			want:  "(http-based protocol)",
		},
		{
			name:  "markdown link unchanged",
			input: "[text](http://example.com)",
			want:  "[text](http://example.com)",
		},
		{
			name:  "markdown link with relative target unchanged",
			input: "ببینید [راهنما](Guide.md)",
			want:  "ببینید [راهنما](Guide.md)",
		},
		{
			name:  "markdown image unchanged",
			input: "![Figure](images/Chart.png)",
			want:  "![Figure](images/Chart.png)",
		},
		{
			name:  "fenced code unchanged",
			input: "متن\n```python\nprint(Hello)\n```\n(World)",
			want:  "متن\n```python\nprint(Hello)\n```\n\\LR{(World)}",
		},
		{
			name:  "inline code unchanged",
			input: "تابع `f(Value)` و (Other)",
			want:  "تابع `f(Value)` و \\LR{(Other)}",
		},
		{
			name:  "raw latex block unchanged",
			input: "```{=latex}\n\\section(Intro)\n```",
			want:  "```{=latex}\n\\section(Intro)\n```",
		},
		{
			name:  "already wrapped span unchanged",
			input: `متن \LR{(English)} و (More)`,
			want:  `متن \LR{(English)} و \LR{(More)}`,
		},
		{
			name:  "textenglish span unchanged",
			input: `\textenglish{(Hello World)}`,
			want:  `\textenglish{(Hello World)}`,
		},
		{
			name:  "nested parentheses match up to the first close",
			input: "(a (b) c)",
			want:  `\LR{(a (b)} c)`,
		},
		{
			name:  "parentheses around a link are wrapped as a whole",
			input: "(see [doc](http://x.y))",
			want:  `\LR{(see [doc](http://x.y))}`,
		},
		{
			name:  "inline code inside existing wrapper fully restored",
			input: "\\LR{(use `x`)}",
			want:  "\\LR{(use `x`)}",
		},
		{
			name:  "duplicate links both restored",
			input: "[a](b) و [a](b) (Text)",
			want:  `[a](b) و [a](b) \LR{(Text)}`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Fix(tt.input); got != tt.want {
				t.Errorf("Fix(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFix_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"متن (English) پایان",
		"الف (One) ب (Two) [l](http://x) `c(d)`",
		"```\n(Code)\n```\n(Prose)",
		`\textenglish{(A)} (B)`,
	}

	for _, in := range inputs {
		once := Fix(in)
		twice := Fix(once)
		if once != twice {
			t.Errorf("Fix not idempotent for %q\n once: %q\ntwice: %q", in, once, twice)
		}
		if strings.Count(twice, `\LR{\LR{`) > 0 {
			t.Errorf("double wrap in %q", twice)
		}
	}
}

func TestFix_TokenLookalikeInInput(t *testing.T) {
	t.Parallel()

	in := "\uE000PROTECTED_0\uE000 [x](y) (Word)"
	want := "\uE000PROTECTED_0\uE000 [x](y) \\LR{(Word)}"

	if got := Fix(in); got != want {
		t.Errorf("Fix(%q) = %q, want %q", in, got, want)
	}
}

func TestFixWithStats(t *testing.T) {
	t.Parallel()

	_, stats := FixWithStats("(Alpha) (http://x.y) [l](u) `c`")

	if stats.Wrapped != 1 {
		t.Errorf("Wrapped = %d, want 1", stats.Wrapped)
	}
	if stats.URLs != 1 {
		t.Errorf("URLs = %d, want 1", stats.URLs)
	}
	if stats.Protected != 2 {
		t.Errorf("Protected = %d, want 2", stats.Protected)
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		content string
		want    bool
	}{
		{"https://example.com", true},
		{"ftp://host/file", true},
		{"  http://padded", true},
		{"httpbin", true},
		{"see http://x", true},
		{"www.example.com", false},
		{"English", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.content); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestContainsScripts(t *testing.T) {
	t.Parallel()

	if !ContainsLatin("متن a") {
		t.Error("ContainsLatin should find 'a'")
	}
	if ContainsLatin("متن ۱۲۳") {
		t.Error("ContainsLatin should not match Persian text")
	}
	if !ContainsPersian("abc متن") {
		t.Error("ContainsPersian should match Persian letters")
	}
	if ContainsPersian("plain ASCII") {
		t.Error("ContainsPersian should not match ASCII")
	}
}
