package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/marquee/internal/domain"
)

var collectionFilter string

var errCollectionWrite = errors.New("collection could not be updated")

func init() {
	for _, name := range domain.Collections {
		rootCmd.AddCommand(newCollectionCmd(name))
	}
	rootCmd.AddCommand(clearCmd)
}

// newCollectionCmd builds the command tree for one named collection
func newCollectionCmd(name domain.CollectionName) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(name),
		Short: fmt.Sprintf("Manage the %s collection", name),
		Long: fmt.Sprintf(`List and edit the local %s collection.
Items are stored on this machine only.`, name),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := requireCollections()
			if err != nil {
				return err
			}
			return outputStored(cmd, name, svc.Filter(name, collectionFilter))
		},
	}
	list.Flags().StringVarP(&collectionFilter, "filter", "f", "", "fuzzy filter on title")

	add := &cobra.Command{
		Use:   "add <movie|tv> <id>",
		Short: fmt.Sprintf("Add a title to %s", name),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollectionAdd(cmd, name, args)
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: fmt.Sprintf("Remove a title from %s", name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollectionRemove(cmd, name, args)
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <movie|tv> <id>",
		Short: fmt.Sprintf("Add or remove a title from %s", name),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollectionToggle(cmd, name, args)
		},
	}

	cmd.AddCommand(list, add, remove, toggle)
	return cmd
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every item from favorites and saved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := requireCollections()
		if err != nil {
			return err
		}
		if !svc.ClearAll() {
			return errCollectionWrite
		}
		return outputChange(cmd, changeView{Action: "cleared"})
	},
}

// changeView reports the outcome of a collection edit
type changeView struct {
	Action     string                `json:"action"`
	Collection domain.CollectionName `json:"collection,omitempty"`
	ID         int                   `json:"id,omitempty"`
	Title      string                `json:"title,omitempty"`
	Changed    bool                  `json:"changed"`
}

func runCollectionAdd(cmd *cobra.Command, name domain.CollectionName, args []string) error {
	svc, err := requireCollections()
	if err != nil {
		return err
	}
	item, err := lookupItem(cmd, args[0], args[1])
	if err != nil {
		return err
	}

	if svc.Contains(name, item.GetID()) {
		return outputChange(cmd, changeView{Action: "added", Collection: name, ID: item.GetID(), Title: item.GetTitle()})
	}
	if !svc.Add(name, item) {
		return errCollectionWrite
	}
	return outputChange(cmd, changeView{Action: "added", Collection: name, ID: item.GetID(), Title: item.GetTitle(), Changed: true})
}

func runCollectionRemove(cmd *cobra.Command, name domain.CollectionName, args []string) error {
	svc, err := requireCollections()
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	removed := svc.Remove(name, id)
	return outputChange(cmd, changeView{Action: "removed", Collection: name, ID: id, Changed: removed})
}

func runCollectionToggle(cmd *cobra.Command, name domain.CollectionName, args []string) error {
	svc, err := requireCollections()
	if err != nil {
		return err
	}
	kind, id, err := parseKindID(args[0], args[1])
	if err != nil {
		return err
	}

	// Removal needs no catalog lookup
	if svc.Contains(name, id) {
		if !svc.Remove(name, id) {
			return errCollectionWrite
		}
		return outputChange(cmd, changeView{Action: "removed", Collection: name, ID: id, Changed: true})
	}

	item, err := fetchItem(cmd, kind, id)
	if err != nil {
		return err
	}
	if !svc.Add(name, item) {
		return errCollectionWrite
	}
	return outputChange(cmd, changeView{Action: "added", Collection: name, ID: id, Title: item.GetTitle(), Changed: true})
}

// lookupItem resolves kind and id to a full catalog record
func lookupItem(cmd *cobra.Command, rawKind, rawID string) (domain.CatalogItem, error) {
	kind, id, err := parseKindID(rawKind, rawID)
	if err != nil {
		return nil, err
	}
	return fetchItem(cmd, kind, id)
}

func fetchItem(cmd *cobra.Command, kind domain.MediaKind, id int) (domain.CatalogItem, error) {
	svc, err := requireCatalog()
	if err != nil {
		return nil, err
	}
	item, err := svc.Details(cmd.Context(), kind, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s %d: %w", kind, id, err)
	}
	return item, nil
}

func outputChange(cmd *cobra.Command, change changeView) error {
	if jsonOutput {
		return outputJSON(cmd, change)
	}

	switch {
	case change.Action == "cleared":
		cmd.Println("Cleared favorites and saved.")
	case !change.Changed && change.Action == "added":
		cmd.Printf("%q is already in %s.\n", change.Title, change.Collection)
	case !change.Changed:
		cmd.Printf("%d is not in %s.\n", change.ID, change.Collection)
	case change.Action == "added":
		cmd.Printf("Added %q to %s.\n", change.Title, change.Collection)
	default:
		cmd.Printf("Removed %d from %s.\n", change.ID, change.Collection)
	}
	return nil
}
