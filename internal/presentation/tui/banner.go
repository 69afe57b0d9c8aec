package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ratchet ASCII banner with version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	lines := []string{
		`            _       _          _   `,
		` _ __ __ _ | |_ ___| |__   ___| |_ `,
		`| '__/ _' || __/ __| '_ \ / _ \ __|`,
		`| | | (_| || || (__| | | |  __/ |_ `,
		`|_|  \__,_| \__\___|_| |_|\___|\__|`,
	}
	// Amber gradient, one shade per line.
	colors := []string{"#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e"}

	fmt.Println()
	for i, line := range lines {
		fmt.Println(termenv.String(line).Foreground(p.Color(colors[i%len(colors)])))
	}
	fmt.Printf("  v%s\n\n", version)
}
