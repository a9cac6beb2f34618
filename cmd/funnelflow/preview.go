package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/insyncinternational/funnelflow/internal/preview"
	"github.com/insyncinternational/funnelflow/pkg/domain"
	"github.com/insyncinternational/funnelflow/pkg/templates"
)

// previewCmd walks a template's flow interactively, step by step.
var previewCmd = &cobra.Command{
	Use:   "preview <template>",
	Short: "Walk a funnel template the way a visitor would",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		steps, conns := templates.Load(args[0])
		funnel := &domain.Funnel{ID: "preview", Steps: steps, Connections: conns}
		funnel.Normalize()

		walker := preview.New(funnel)
		reader := bufio.NewReader(os.Stdin)

		fmt.Printf("--- Previewing %q (%d steps) ---\n", args[0], len(steps))
		for !walker.Done() {
			step := walker.Current()
			if step == nil {
				break
			}
			info, _ := step.Type.Info()
			fmt.Printf("\n%s %s [%s]\n", info.Icon, step.Title, step.Type)

			fmt.Print("answer> ")
			text, err := reader.ReadString('\n')
			if err != nil {
				break
			}
			answer := strings.TrimSpace(text)
			if answer == "exit" || answer == "quit" {
				fmt.Println("Bye!")
				return
			}
			walker.Advance(answer)
		}
		fmt.Println("\n--- End of funnel ---")
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
