package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/webb-inc/webb/internal/content"
)

type listOptions struct {
	category   string
	limit      int
	jsonOutput bool
}

type showOptions struct {
	jsonOutput bool
}

func newProjectsCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect portfolio projects without the browser",
	}

	cmd.AddCommand(newListCmd(rootFlags))
	cmd.AddCommand(newShowCmd(rootFlags))

	return cmd
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, live data merged with the fallback list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Only projects tagged with this category (COMMERCIAL, MV, JAMES_WEBB)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum number of projects to print (0 prints all)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	var category content.Category
	if opts.category != "" {
		c, ok := content.ParseCategory(opts.category)
		if !ok {
			return fmt.Errorf("unknown category %q", opts.category)
		}
		category = c
	}
	if opts.limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}

	ctx := commandContext(cmd)
	app, err := newAppContext(ctx, rootFlags)
	if err != nil {
		return err
	}
	defer app.Close(context.Background())

	fetchCtx, cancel := contentContext(ctx, app)
	defer cancel()

	var (
		projects []content.Project
		origin   content.Origin
	)
	if category != "" {
		projects, origin = app.Provider.LoadProjectsByCategory(fetchCtx, category)
	} else {
		projects, origin = app.Provider.LoadProjects(fetchCtx)
	}
	if opts.limit > 0 && len(projects) > opts.limit {
		projects = projects[:opts.limit]
	}

	if opts.jsonOutput {
		return renderListJSON(cmd.OutOrStdout(), projects, origin)
	}
	return renderProjectsTable(cmd.OutOrStdout(), projects)
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output project details as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, id string, opts *showOptions) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("project ID cannot be empty")
	}

	ctx := commandContext(cmd)
	app, err := newAppContext(ctx, rootFlags)
	if err != nil {
		return err
	}
	defer app.Close(context.Background())

	fetchCtx, cancel := contentContext(ctx, app)
	defer cancel()

	project := app.Provider.GetProjectByID(fetchCtx, id)
	if project == nil {
		project = findProject(app.Provider.Fallback(), id)
	}
	if project == nil {
		return fmt.Errorf("project %q not found", id)
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(project)
	}
	return renderProjectDetail(cmd.OutOrStdout(), *project)
}

func findProject(projects []content.Project, id string) *content.Project {
	for _, p := range projects {
		if p.ID == id {
			found := p
			return &found
		}
	}
	return nil
}

func renderProjectsTable(out io.Writer, projects []content.Project) error {
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects found")
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tCATEGORY\tYEAR\tCLIENT")
	for _, p := range projects {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.Title,
			p.CategoryLabels(),
			valueOrFallback(p.Year, "-"),
			valueOrFallback(p.Client, "-"),
		)
	}
	return writer.Flush()
}

type listJSONPayload struct {
	Origin   content.Origin    `json:"origin"`
	Count    int               `json:"count"`
	Projects []content.Project `json:"projects"`
}

func renderListJSON(out io.Writer, projects []content.Project, origin content.Origin) error {
	payload := listJSONPayload{
		Origin:   origin,
		Count:    len(projects),
		Projects: projects,
	}
	if payload.Projects == nil {
		payload.Projects = []content.Project{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderProjectDetail(out io.Writer, p content.Project) error {
	fmt.Fprintf(out, "Project:  %s\n", p.ID)
	fmt.Fprintf(out, "Title:    %s\n", p.Title)
	fmt.Fprintf(out, "Category: %s\n", p.CategoryLabels())
	fmt.Fprintf(out, "Year:     %s\n", valueOrFallback(p.Year, "(none)"))
	fmt.Fprintf(out, "Client:   %s\n", valueOrFallback(p.Client, "(none)"))

	if id, ok := content.YouTubeID(p.VideoURL); ok {
		fmt.Fprintf(out, "Video:    https://www.youtube.com/embed/%s\n", id)
	} else if p.VideoURL != "" {
		fmt.Fprintf(out, "Video:    %s\n", p.VideoURL)
	}
	if p.Thumbnail != nil && p.Thumbnail.URL != "" {
		fmt.Fprintf(out, "Image:    %s\n", p.Thumbnail.URL)
	}

	fmt.Fprintf(out, "\nDescription:\n  %s\n", valueOrFallback(content.PlainText(p.Description), "(none)"))
	if p.Credits != "" {
		fmt.Fprintf(out, "\nCredits:\n  %s\n", strings.ReplaceAll(p.Credits, "\n", "\n  "))
	}
	if len(p.Gallery) > 0 {
		fmt.Fprintln(out, "\nGallery:")
		for _, img := range p.Gallery {
			fmt.Fprintf(out, "  - %s\n", img.URL)
		}
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// contentContext bounds a content fetch by the configured timeout.
func contentContext(ctx context.Context, app *AppContext) (context.Context, context.CancelFunc) {
	if app.Env.ContentTimeout > 0 {
		return context.WithTimeout(ctx, app.Env.ContentTimeout)
	}
	return context.WithCancel(ctx)
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
