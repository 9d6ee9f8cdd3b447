// schoolctl is the management counterpart of the site's admin forms: it
// lists, adds and deletes news, faculty and gallery records over the HTTP
// API.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/adarsh/schoolsite/pkg/apiclient"
)

func main() {
	app := &cli.App{
		Name:  "schoolctl",
		Usage: "manage school site content over the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "base URL of the backend",
				Value:   "http://localhost:4000",
				EnvVars: []string{"SCHOOLSITE_API"},
			},
		},
		Commands: []*cli.Command{
			newsCommand(),
			facultyCommand(),
			galleryCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func client(c *cli.Context) *apiclient.Client {
	return apiclient.New(c.String("api"))
}

func newsCommand() *cli.Command {
	return &cli.Command{
		Name:  "news",
		Usage: "manage news and notices",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list all news entries",
				Action: func(c *cli.Context) error {
					items, err := client(c).ListNews(context.Background())
					if err != nil {
						return err
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tCATEGORY\tFEATURED\tCREATED\tTITLE")
					for _, item := range items {
						fmt.Fprintf(w, "%d\t%s\t%v\t%s\t%s\n",
							item.ID, item.Category, item.Featured,
							item.CreatedAt.Format("2006-01-02"), item.Title)
					}
					return w.Flush()
				},
			},
			{
				Name:  "add",
				Usage: "add a news entry",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "excerpt", Required: true},
					&cli.StringFlag{Name: "category", Value: "news"},
					&cli.StringFlag{Name: "type", Value: "news"},
					&cli.BoolFlag{Name: "featured"},
				},
				Action: func(c *cli.Context) error {
					created, err := client(c).AddNews(context.Background(), apiclient.AddNewsInput{
						Title:    c.String("title"),
						Excerpt:  c.String("excerpt"),
						Category: c.String("category"),
						Type:     c.String("type"),
						Featured: c.Bool("featured"),
					})
					if err != nil {
						return err
					}
					fmt.Printf("created news %d\n", created.ID)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a news entry by id",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id, err := parseIDArg(c)
					if err != nil {
						return err
					}
					return client(c).DeleteNews(context.Background(), id)
				},
			},
		},
	}
}

func facultyCommand() *cli.Command {
	return &cli.Command{
		Name:  "faculty",
		Usage: "manage faculty members",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list all faculty members",
				Action: func(c *cli.Context) error {
					items, err := client(c).ListFaculty(context.Background())
					if err != nil {
						return err
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tNAME\tDEPARTMENT\tEMAIL\tPHOTO")
					for _, item := range items {
						fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
							item.ID, item.Name, item.Department, item.Email, item.Photo)
					}
					return w.Flush()
				},
			},
			{
				Name:  "add",
				Usage: "add a faculty member with a photo",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "position"},
					&cli.StringFlag{Name: "qualification"},
					&cli.StringFlag{Name: "experience"},
					&cli.StringFlag{Name: "specializations"},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "department"},
					&cli.StringFlag{Name: "photo", Required: true, Usage: "path to the photo file"},
				},
				Action: func(c *cli.Context) error {
					photoPath := c.String("photo")
					photo, err := os.ReadFile(photoPath)
					if err != nil {
						return fmt.Errorf("failed to read photo: %w", err)
					}

					created, err := client(c).AddFaculty(context.Background(), apiclient.AddFacultyInput{
						Name:            c.String("name"),
						Position:        c.String("position"),
						Qualification:   c.String("qualification"),
						Experience:      c.String("experience"),
						Specializations: c.String("specializations"),
						Email:           c.String("email"),
						Phone:           c.String("phone"),
						Department:      c.String("department"),
					}, photo, filepath.Base(photoPath))
					if err != nil {
						return err
					}
					fmt.Printf("created faculty %d (photo %s)\n", created.ID, created.Photo)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a faculty member by id",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id, err := parseIDArg(c)
					if err != nil {
						return err
					}
					return client(c).DeleteFaculty(context.Background(), id)
				},
			},
		},
	}
}

func galleryCommand() *cli.Command {
	return &cli.Command{
		Name:  "gallery",
		Usage: "manage gallery images",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list all gallery images",
				Action: func(c *cli.Context) error {
					items, err := client(c).ListGallery(context.Background())
					if err != nil {
						return err
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tTITLE\tCREATED\tPHOTO")
					for _, item := range items {
						fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
							item.ID, item.Title, item.CreatedAt.Format("2006-01-02"), item.Photo)
					}
					return w.Flush()
				},
			},
			{
				Name:  "add",
				Usage: "add a gallery image",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "photo", Required: true, Usage: "path to the photo file"},
				},
				Action: func(c *cli.Context) error {
					photoPath := c.String("photo")
					photo, err := os.ReadFile(photoPath)
					if err != nil {
						return fmt.Errorf("failed to read photo: %w", err)
					}

					created, err := client(c).AddGallery(context.Background(), apiclient.AddGalleryInput{
						Title:       c.String("title"),
						Description: c.String("description"),
					}, photo, filepath.Base(photoPath))
					if err != nil {
						return err
					}
					fmt.Printf("created gallery image %d (photo %s)\n", created.ID, created.Photo)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a gallery image by id",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id, err := parseIDArg(c)
					if err != nil {
						return err
					}
					return client(c).DeleteGallery(context.Background(), id)
				},
			},
		},
	}
}

func parseIDArg(c *cli.Context) (int64, error) {
	if c.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one id argument")
	}
	var id int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", c.Args().First())
	}
	return id, nil
}
