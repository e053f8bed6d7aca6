// Package viz is the terminal front end of the lab.
//
// The interactive [App] is a Bubble Tea program with the experiment form on
// the left and the drip animation, drawn on a braille [Canvas], on the
// right. Below them an asciigraph panel plots the droplet height.
//
// # Key Bindings
//
//	Tab/↓, Shift+Tab/↑ - Move between form inputs
//	←/→                - Change liquid or planet
//	Enter              - Calculate surface tension
//	Space, Ctrl+P      - Pause/Resume animation
//	R, Ctrl+R          - Restart the drip
//	T, Ctrl+T          - Cycle color themes
//	Esc, Ctrl+C        - Quit
//
// Selection changes are logged to stalagsim.log while the program owns the
// terminal.
package viz
