package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the rasa data tools.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient, indigo to rose.
	s1 := termenv.String("  _ __ __ _ ___  __ _ ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String(" | '__/ _` / __|/ _` |").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" | | | (_| \\__ \\ (_| |").Foreground(p.Color("#e879f9"))
	s4 := termenv.String(" |_|  \\__,_|___/\\__,_|").Foreground(p.Color("#fb7185"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	if version != "" {
		fmt.Println(termenv.String("  data tools " + version).Faint())
	}
	fmt.Println()
}
