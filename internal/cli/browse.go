package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"itemdeck/internal/collection"
	"itemdeck/internal/core/listview"
	"itemdeck/internal/form"

	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and edit the collection interactively",
	Long: `Open an interactive session over the collection. The current page is
redrawn after every change. Type "help" for the list of commands.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

const browseHelp = `Commands:
  search [term]        filter by name or description (no term clears)
  sort name|id         sort by a field, again to flip the order
  size 5|10|25|50      change the page size
  next, prev           move between pages
  new                  start a new record
  edit <id>            load a record into the form
  set <field> <value>  set name, title or description on the form
  save                 submit the form
  cancel               clear the form
  rm <id>              delete a record
  refresh              reload the collection
  quit                 leave`

// browser is one interactive session. Everything runs on the goroutine that
// reads the input.
type browser struct {
	out   io.Writer
	store *collection.Store
	panel *listview.Panel
	form  *form.Form
	state collection.State
	ready bool
}

func runBrowse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	b := &browser{out: out, store: collection.New(newClient())}
	defer b.store.Close()

	b.panel = listview.NewPanel(nil, b.draw)
	b.form = form.New(b.store, func() { fmt.Fprintln(out, "Form cleared.") })
	unsubscribe := b.store.Subscribe(b.onState)
	defer unsubscribe()

	ctx := cmd.Context()
	_, _ = b.store.FetchAll(ctx)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if done := b.exec(ctx, scanner.Text()); done {
			return nil
		}
	}
}

func (b *browser) onState(s collection.State) {
	b.state = s
	if s.Loading {
		fmt.Fprintln(b.out, "Loading...")
		return
	}
	b.ready = true
	b.panel.SetRecords(s.Items)
}

func (b *browser) draw(s listview.Snapshot) {
	if !b.ready {
		return
	}
	if b.state.Error != "" {
		renderError(b.out, b.state.Error)
	}
	renderSnapshot(b.out, s)
}

// exec runs one input line and reports whether the session should end.
func (b *browser) exec(ctx context.Context, line string) bool {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "":
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprintln(b.out, browseHelp)
	case "search":
		b.redrawUnless(b.panel.Search(rest))
	case "sort":
		field, ok := listview.ParseSortField(rest)
		if !ok {
			fmt.Fprintf(b.out, "Unknown sort field %q.\n", rest)
			return false
		}
		b.redrawUnless(b.panel.SortBy(field))
	case "size":
		n, err := strconv.Atoi(rest)
		if err != nil || !listview.ValidPageSize(n) {
			fmt.Fprintf(b.out, "Page size must be one of %v.\n", listview.PageSizes)
			return false
		}
		b.redrawUnless(b.panel.SetPageSize(n))
	case "next":
		if !b.panel.Next() {
			fmt.Fprintln(b.out, "Already on the last page.")
		}
	case "prev":
		if !b.panel.Previous() {
			fmt.Fprintln(b.out, "Already on the first page.")
		}
	case "new":
		b.form.Load(nil)
		fmt.Fprintln(b.out, "New record.")
	case "edit":
		b.edit(rest)
	case "set":
		field, value, _ := strings.Cut(rest, " ")
		if err := b.form.Set(field, strings.TrimSpace(value)); err != nil {
			fmt.Fprintf(b.out, "Unknown field %q.\n", field)
		}
	case "save":
		// failures are already drawn from the store state
		if _, submitted, _ := b.form.Submit(ctx); !submitted {
			fmt.Fprintln(b.out, "A name or title is required.")
		}
	case "cancel":
		b.form.Cancel()
	case "rm":
		id, err := parseID(rest)
		if err != nil {
			fmt.Fprintln(b.out, err)
			return false
		}
		_ = b.store.Delete(ctx, id)
	case "refresh":
		_, _ = b.store.FetchAll(ctx)
	default:
		fmt.Fprintf(b.out, "Unknown command %q. Type help.\n", name)
	}
	return false
}

func (b *browser) edit(arg string) {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(b.out, err)
		return
	}
	for _, it := range b.state.Items {
		if it.ID == id {
			b.form.Load(&it)
			fmt.Fprintf(b.out, "Editing %d: %s\n", it.ID, it.DisplayName())
			return
		}
	}
	fmt.Fprintf(b.out, "No item with id %d.\n", id)
}

// redrawUnless draws the current page when a transition did not.
func (b *browser) redrawUnless(drawn bool) {
	if !drawn {
		renderSnapshot(b.out, b.panel.Snapshot())
	}
}
