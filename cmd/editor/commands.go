package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-editor/internal/core"
	"github.com/vovakirdan/tui-editor/internal/platform/tui"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List editor commands",
	Long:  `Shows every editor command with its toolbar label and key binding.`,
	Run:   runCommands,
}

func runCommands(_ *cobra.Command, _ []string) {
	keys := tui.DefaultEditorKeyMap()

	fmt.Println("Editor commands:")
	fmt.Println()

	fmt.Printf("  %-6s  %-6s  %s\n", "Name", "Button", "Key")
	fmt.Printf("  %-6s  %-6s  %s\n", "----", "------", "---")

	for _, c := range core.Commands {
		keyHelp := "-"
		if b, ok := keys.Binding(c); ok {
			keyHelp = b.Help().Key
		}
		fmt.Printf("  %-6s  %-6s  %s\n", c, c.Label(), keyHelp)
	}

	fmt.Println()
	fmt.Println("Run 'editor exec <name>...' to run commands without a UI.")
}
