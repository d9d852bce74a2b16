// Package display provides terminal warning formatting for the search CLI.
//
// The only piece this spec needs is a consistent, colored warning block for
// fatal-adjacent notices that aren't quite errors — today, that's the
// "you're searching from the platform root" notice the CLI prints when no
// -p/--path was given:
//
//	display.WarnExpensiveRoot(root).Display(os.Stderr)
//
// Warning.Display writes a yellow-highlighted block with an optional
// message, affected-files list, and suggestion, and accepts an io.Writer so
// it's trivially testable.
package display
