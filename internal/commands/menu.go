package commands

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// MenuTitle is the banner drawn above the menu.
const MenuTitle = "===== ToDo List Manager ====="

// Menu returns the commands with numeric names, ordered by number.
func (r *Registry) Menu() []Command {
	menu := slices.DeleteFunc(r.All(), func(cmd Command) bool {
		return !isAllDigits(cmd.Name())
	})
	slices.SortStableFunc(menu, func(a, b Command) int {
		return cmp.Compare(menuNumber(a), menuNumber(b))
	})
	return menu
}

// menuNumber returns the numeric menu key of cmd.
func menuNumber(cmd Command) int {
	n, _ := strconv.Atoi(cmd.Name())
	return n
}

// WriteMenu draws the numbered menu.
func WriteMenu(w io.Writer, r *Registry) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, MenuTitle)
	for _, cmd := range r.Menu() {
		fmt.Fprintf(w, "%s. %s\n", cmd.Name(), cmd.Synopsis())
	}
}

// ChoicePrompt returns the label asking for a menu choice.
func ChoicePrompt(r *Registry) string {
	return fmt.Sprintf("Enter your choice (1-%d): ", len(r.Menu()))
}

// InvalidChoice returns the message for an unrecognized menu choice.
func InvalidChoice(r *Registry) string {
	return fmt.Sprintf("Invalid choice. Please enter a number between 1 and %d.", len(r.Menu()))
}
