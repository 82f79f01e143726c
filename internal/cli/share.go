package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share <movie|tv> <id>",
	Short: "Share a title",
	Long: `Share a link to a title through the configured share command.
Without one, the text and link are copied to the clipboard.`,
	Args: cobra.ExactArgs(2),
	RunE: runShare,
}

func init() {
	rootCmd.AddCommand(shareCmd)
}

type shareView struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Shared bool   `json:"shared"`
}

func runShare(cmd *cobra.Command, args []string) error {
	svc, err := requireCollections()
	if err != nil {
		return err
	}
	item, err := lookupItem(cmd, args[0], args[1])
	if err != nil {
		return err
	}

	view := shareView{
		ID:     item.GetID(),
		Title:  item.GetTitle(),
		URL:    svc.PageURL(item),
		Shared: svc.ShareItem(cmd.Context(), item),
	}

	if jsonOutput {
		return outputJSON(cmd, view)
	}
	if !view.Shared {
		return fmt.Errorf("could not share %q (configure share.command or a clipboard)", view.Title)
	}
	cmd.Printf("Shared %q\n%s\n", view.Title, view.URL)
	return nil
}
