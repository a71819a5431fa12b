package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/toolbox/foundation/utils/stringx"
	"github.com/msto63/toolbox/internal/tui/casepreview"
	"github.com/spf13/cobra"
)

func newPreviewCmd(root *rootOptions) *cobra.Command {
	var caseName string

	cmd := &cobra.Command{
		Use:   "preview [text...]",
		Short: "Interactive live preview of every case",
		Long: `Start an interactive preview that shows every conversion of the typed text.

Navigation:
  Tab / Down       next case
  Shift+Tab / Up   previous case
  Enter            quit and print the highlighted result
  Esc / Ctrl+C     quit without output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := root.config.DefaultCase()
			if caseName != "" {
				kind, err := stringx.ParseCase(caseName)
				if err != nil {
					return err
				}
				selected = kind
			}

			p := tea.NewProgram(
				casepreview.New(strings.Join(args, " "), selected),
				tea.WithAltScreen(),
			)

			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("preview: %w", err)
			}

			if m, ok := final.(casepreview.Model); ok {
				if chosen, accepted := m.Chosen(); accepted {
					fmt.Fprintln(cmd.OutOrStdout(), chosen)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&caseName, "case", "c", "", "case highlighted at start (default: config default_case)")
	return cmd
}
