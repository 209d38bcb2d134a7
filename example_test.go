package pubkit_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-pubkit"
)

// ExampleJalaliDateMacro renders a fixed day as a LaTeX macro definition.
func ExampleJalaliDateMacro() {
	day := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	fmt.Println(pubkit.JalaliDateMacro(day, ""))
	// Output: \def\jalalidate{۲۵ دی ۱۴۰۲}
}

// ExampleFallbackMacro shows the line emitted when no date is available.
func ExampleFallbackMacro() {
	fmt.Println(pubkit.FallbackMacro("today"))
	// Output: \def\today{تاریخ نامشخص}
}

// ExampleFixBidiFile wraps a Latin parenthesized span in an LTR marker.
func ExampleFixBidiFile() {
	dir, err := os.MkdirTemp("", "pubkit-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "chapter.md")
	if err := os.WriteFile(path, []byte("متن (English) پایان"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	if _, err := pubkit.FixBidiFile(path, ""); err != nil {
		fmt.Println("error:", err)
		return
	}

	data, _ := os.ReadFile(path)
	fmt.Println(string(data))
	// Output: متن \LR{(English)} پایان
}
