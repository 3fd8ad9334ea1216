// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.1.0"

// Milestones:
// 0.1.0 - Initial release: nine house systems, three orb methods,
//         stellium detection, radix chart CLI
