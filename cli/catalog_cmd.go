package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/qyinm/emojitui/browser"
	"github.com/qyinm/emojitui/catalog"
	"github.com/qyinm/emojitui/dto"
	"github.com/qyinm/emojitui/glyph"
	"github.com/qyinm/emojitui/pager"
	"github.com/qyinm/emojitui/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories present in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			emojis, err := loadCatalog(cmd.Context(), opts)
			if err != nil {
				return err
			}
			for _, c := range catalog.Categories(emojis) {
				fmt.Fprintln(cmd.OutOrStdout(), glyph.PlainText(c))
			}
			return nil
		},
	}
}

func newPageCmd(opts *rootOptions) *cobra.Command {
	var (
		category string
		page     int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Print one page of the (filtered) catalog",
		Example: `  emojitui page
  emojitui page --category "animals and nature" --page 2
  emojitui page --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return fmt.Errorf("--page must be at least 1, got %d", page)
			}
			emojis, err := loadCatalog(cmd.Context(), opts)
			if err != nil {
				return err
			}

			state := browser.New(opts.cfg.BrowserOptions()).
				Load(emojis).
				SelectCategory(category).
				GoToPage(page)

			glyphs := glyph.NewRenderer()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dto.FromState(state, glyphs))
			}
			return printPage(cmd.OutOrStdout(), state, glyphs)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only show emojis of this category")
	cmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the page as JSON")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "emojitui %s\n", Version)
			return nil
		},
	}
}

func loadCatalog(ctx context.Context, opts *rootOptions) ([]types.Emoji, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	source, err := opts.cfg.NewSource()
	if err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}
	emojis, err := source.FetchEmojis(ctx)
	if err != nil {
		log.Error().Err(err).Str("url", source.URL()).Msg("Failed to load emoji catalog")
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return emojis, nil
}

// printPage writes the cards of the current page followed by the
// pagination row.
func printPage(w io.Writer, s browser.State, glyphs *glyph.Renderer) error {
	for _, e := range s.Visible() {
		if _, err := fmt.Fprintf(w, "%s\n  Name: %s\n  Category: %s\n  Group: %s\n",
			glyphs.Render(e),
			glyph.PlainText(e.Name()),
			glyph.PlainText(e.Category()),
			glyph.PlainText(e.Group()),
		); err != nil {
			return err
		}
	}

	row := []string{"Previous"}
	for _, b := range s.Buttons() {
		label := b.Label()
		if b.Kind == pager.NumberButton && b.Active {
			label = "[" + label + "]"
		}
		row = append(row, label)
	}
	row = append(row, "Next")

	_, err := fmt.Fprintf(w, "\n%s\nPage %d of %d (%d emojis)\n",
		strings.Join(row, " "), s.CurrentPage(), s.TotalPages(), s.FilteredCount())
	return err
}
