// Package prompt reads operator input for the explorer.
//
// Two Reader implementations exist: Terminal, backed by readline with history,
// tab completion and hidden password entry, and Stream, which reads plain lines
// from any io.Reader (piped stdin, scripted tests). Open picks Terminal when
// stdin is a terminal and Stream otherwise.
//
// ParseChoice turns one line of menu input into a Choice: either a number or
// a sequence of words, so menus can accept "2" as well as "views".
package prompt
