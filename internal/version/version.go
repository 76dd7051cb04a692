package version

import "fmt"

const (
	Version = "v0.1.0"

	colorReset    = "\033[0m"
	colorCyanBold = "\033[36;1m"
)

// asciiArtTpl returns the ASCII art banner shared by the bundled tools.
func asciiArtTpl() string {
	asciiArt := `
               __ __             ___ __
   ____ _____ / // / _________ _/ (_) /____
  / __ '/ __ / // /_/ ___/ __ '/ / / __/ _ \
 / /_/ / /_/ /__  __(__  ) /_/ / / / /_/  __/
 \__, /\____/  /_/ /____/\__, /_/_/\__/\___/
/____/                     /_/
%s ` + Version

	asciiArt = asciiArt[1:]                          // This just removes the first newline character
	asciiArt = colorCyanBold + asciiArt + colorReset // Add color to the ASCII art

	return asciiArt
}

// ShellVersion returns the version banner of the interactive shell.
func ShellVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Shell")
}

// BenchVersion returns the version banner of the bench tool.
func BenchVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Bench")
}
