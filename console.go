package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/odamex/odacfg/lib/util/signals"
	"github.com/spf13/cobra"
)

var promptStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("208"))

func newConsoleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run console commands against the client config",
		Long: "Loads the client config, then reads console commands from standard input.\n" +
			"The config is saved at end of input, on quit, and on SIGINT/SIGTERM.\n" +
			"SIGHUP executes the config file again.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			c := newClient(out)

			// signal handlers run on their own goroutine
			var mu sync.Mutex
			c.Persister.Load()

			signals.RegisterReloadHandler(func() {
				mu.Lock()
				defer mu.Unlock()
				log.Debug("Reloading client config")
				c.Persister.Load()
			})
			signals.RegisterInterruptHandler(func() {
				mu.Lock()
				c.Persister.Save("")
				mu.Unlock()
				os.Exit(0)
			})
			go signals.Handle()
			defer signals.StopHandle()

			prompt := promptStyle.Render("]") + " "
			scanner := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprint(out, prompt)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "quit" || line == "exit" {
					break
				}
				mu.Lock()
				if err := c.Console.Run(line); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
				mu.Unlock()
				fmt.Fprint(out, prompt)
			}

			mu.Lock()
			defer mu.Unlock()
			c.Persister.Save("")
			return scanner.Err()
		},
	}
}
