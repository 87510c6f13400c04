package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/purrfect/pkg/app"
	"github.com/kerbaras/purrfect/pkg/gallery"
	"github.com/spf13/cobra"
)

var fetchPage int

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Print one page of cats",
	Long:  "Fetch a single page of images from TheCatAPI and print it as a table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fetchPage < 1 {
			return fmt.Errorf("--page must be >= 1, got %d", fetchPage)
		}

		fetcher := app.NewFetchController(cfg)
		result := fetcher.Fetch(cmd.Context(), gallery.Request{Seq: 1, Page: fetchPage})
		if result.Err != nil {
			return result.Err
		}

		if len(result.Images) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No cat images found.")
			return nil
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers("#", "ID", "URL")

		offset := (fetchPage - 1) * gallery.PageSize
		for i, img := range result.Images {
			t.Row(strconv.Itoa(offset+i+1), img.ID, img.URL)
		}

		hasMore := "no"
		if len(result.Images) == gallery.PageSize {
			hasMore = "yes"
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		fmt.Fprintf(cmd.OutOrStdout(), "page %d, has more: %s\n", fetchPage, hasMore)
		return nil
	},
}

func init() {
	fetchCmd.Flags().IntVarP(&fetchPage, "page", "p", 1, "page number (starting at 1)")
}
