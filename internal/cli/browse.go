package cli

import (
	"fmt"
	"io"
	"os"

	"moviebrowser/internal/client"
	"moviebrowser/internal/domain"
	"moviebrowser/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var (
		page    int
		asJSON  bool
		plain   bool
		baseURL string
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through the movie catalog served by the API",
		Example: `  # interactive browser
  moviebrowser browse

  # print page 3 and exit
  moviebrowser browse --page 3

  # raw API payload
  moviebrowser browse --page 0 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if baseURL != "" {
				env.APIBaseURL = baseURL
			}

			// the TUI owns stdout, so logs go to a file or nowhere
			logOut := io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			setupLogging(env, logOut)

			c, err := client.New(client.Config{BaseURL: env.APIBaseURL})
			if err != nil {
				return err
			}

			interactive := !asJSON && !plain && !cmd.Flags().Changed("page") && isTerminal(os.Stdout)
			if interactive {
				m := tui.NewBrowserModel(cmd.Context(), c)
				_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
				return err
			}

			if err := domain.ValidatePage(page); err != nil {
				return err
			}
			res, err := c.FetchPage(cmd.Context(), page)
			if err != nil {
				return err
			}
			if asJSON {
				return tui.RenderJSON(cmd.OutOrStdout(), res)
			}
			return tui.RenderPlain(cmd.OutOrStdout(), page, res)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "print this page and exit")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the API payload as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "print a plain table even on a terminal")
	cmd.Flags().StringVar(&baseURL, "api-url", "", "movies API base URL (overrides MOVIES_API_URL)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	return cmd
}
