package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/tracker/internal/app"
	"github.com/runoshun/tracker/internal/domain"
	"github.com/runoshun/tracker/internal/infra/export"
	"github.com/runoshun/tracker/internal/usecase"
)

// shortIDLen is how many id characters the table view shows.
const shortIDLen = 8

// List output formats besides the export formats.
const formatTable = "table"

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a task",
		Long: `Append a new task to the end of the list.

Arguments are joined with single spaces. The text is kept as typed;
an empty text adds nothing.

Examples:
  tracker add Write report
  tracker add "Email Bob about the offsite"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Text: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			printWarning(cmd.ErrOrStderr(), out.Warning)

			w := cmd.OutOrStdout()
			if !out.Added {
				_, _ = fmt.Fprintln(w, "Nothing to add.")
				return nil
			}
			_, _ = fmt.Fprintf(w, "Added %s: %s\n", shortID(out.Task.ID), out.Task.Text)
			return nil
		},
	}
	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Search string
		Format string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display tasks in list order.

--search keeps the tasks whose text contains the query, ignoring case.

The table has columns:
  ID (first 8 characters), DONE, CREATED, TEXT

Examples:
  tracker list
  tracker list --search report
  tracker list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				Query: opts.Search,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch opts.Format {
			case formatTable, "":
				printTaskList(w, out.Tasks)
				return nil
			case export.FormatJSON, export.FormatYAML:
				data, err := c.Exporter.Export(out.Tasks, opts.Format)
				if err != nil {
					return err
				}
				_, _ = w.Write(data)
				return nil
			}
			return fmt.Errorf("%w: %q (use table, json or yaml)", domain.ErrUnknownFormat, opts.Format)
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Show only tasks whose text contains this")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatTable, "Output format: table, json, yaml")

	return cmd
}

// printTaskList prints tasks as an aligned table.
func printTaskList(w io.Writer, tasks domain.Tasks) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tDONE\tCREATED\tTEXT")
	for _, t := range tasks {
		done := "[ ]"
		if t.IsDone {
			done = "[x]"
		}
		text := strings.ReplaceAll(t.Text, "\n", " ")
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", shortID(t.ID), done, t.CreatedAt, text)
	}
}

// newToggleCommand creates the toggle command.
func newToggleCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task done or not done",
		Long: `Flip the completion flag of a task.

<id> may be any unique prefix of the task id, as shown by "tracker list".
An id that matches no task changes nothing.

Examples:
  tracker toggle 3f2a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{
				ID:     args[0],
				Prefix: true,
			})
			if err != nil {
				return err
			}
			printWarning(cmd.ErrOrStderr(), out.Warning)

			w := cmd.OutOrStdout()
			if !out.Found {
				_, _ = fmt.Fprintf(w, "No task matches %q.\n", args[0])
				return nil
			}
			state := "Not done"
			if out.Task.IsDone {
				state = "Done"
			}
			_, _ = fmt.Fprintf(w, "%s: %s\n", state, out.Task.Text)
			return nil
		},
	}
	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Remove a task from the list.

<id> may be any unique prefix of the task id. An id that matches no
task changes nothing.

Examples:
  tracker rm 3f2a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{
				ID:     args[0],
				Prefix: true,
			})
			if err != nil {
				return err
			}
			printWarning(cmd.ErrOrStderr(), out.Warning)

			w := cmd.OutOrStdout()
			if !out.Found {
				_, _ = fmt.Fprintf(w, "No task matches %q.\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(w, "Deleted %s: %s\n", shortID(out.Task.ID), out.Task.Text)
			return nil
		},
	}
	return cmd
}

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
		Output string
		Search string
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks",
		Long: `Render the task list as json, yaml, csv or pdf.

Without --output the export is written to stdout. PDF uses a built-in
font covering Western European text (cp1252); other characters are not
reproduced. Use json, yaml or csv for a lossless copy.

Examples:
  tracker export --format yaml
  tracker export --format pdf -o tasks.pdf
  tracker export --format csv --search report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ExportTasksUseCase().Execute(cmd.Context(), usecase.ExportTasksInput{
				Format: opts.Format,
				Query:  opts.Search,
			})
			if err != nil {
				return err
			}

			if opts.Output == "" {
				_, _ = cmd.OutOrStdout().Write(out.Data)
				return nil
			}
			if err := os.WriteFile(opts.Output, out.Data, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d task(s) to %s\n", out.Count, opts.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", export.FormatJSON,
		"Export format: "+strings.Join(export.Formats, ", "))
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Export only tasks whose text contains this")

	return cmd
}

// printWarning reports a non-fatal persistence failure.
func printWarning(w io.Writer, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(w, "Warning: changes are not saved: %v\n", err)
	}
}

// shortID returns the leading characters of id shown in tables.
func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}
