package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for tmconv.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient, teal to violet
	s1 := termenv.String(" _                                ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("| |_ _ __ ___   ___ ___  _ ____  __").Foreground(p.Color("#38bdf8"))
	s3 := termenv.String("| __| '_ ` _ \\ / __/ _ \\| '_ \\ \\/ /").Foreground(p.Color("#818cf8"))
	s4 := termenv.String("| |_| | | | | | (_| (_) | | | \\  / ").Foreground(p.Color("#a78bfa"))
	s5 := termenv.String(" \\__|_| |_| |_|\\___\\___/|_| |_|\\/  ").Foreground(p.Color("#c084fc"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	if version != "" {
		v := termenv.String("  v" + version).Foreground(p.Color("#94a3b8"))
		fmt.Println(v)
	}
	fmt.Println()
}
