package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

type songsClient struct{ serverURL *string }

func newSongsCmd(serverURL *string) *cobra.Command {
	s := &songsClient{serverURL: serverURL}
	cmd := &cobra.Command{Use: "songs", Short: "Manage song collection"}

	cmd.AddCommand(&cobra.Command{Use: "list", Short: "List songs", RunE: s.list})
	cmd.AddCommand(s.newAddCmd())
	cmd.AddCommand(&cobra.Command{Use: "get", Short: "Get song by id", Args: cobra.ExactArgs(1), RunE: s.get})
	cmd.AddCommand(s.newUpdateCmd())
	cmd.AddCommand(&cobra.Command{Use: "delete", Short: "Delete song by id", Args: cobra.ExactArgs(1), RunE: s.delete})
	cmd.AddCommand(&cobra.Command{Use: "search", Short: "Search songs by title or artist", Args: cobra.ExactArgs(1), RunE: s.search})
	cmd.AddCommand(&cobra.Command{Use: "stats", Short: "Show collection stats", Args: cobra.MaximumNArgs(1), RunE: s.stats})
	cmd.AddCommand(s.newExportCmd())
	return cmd
}

func (s *songsClient) list(cmd *cobra.Command, args []string) error {
	var items []map[string]any
	if err := apiGet(s.serverURL, "/songs", &items); err != nil {
		return err
	}
	return printJSON(items)
}

func (s *songsClient) newAddCmd() *cobra.Command {
	var title, artist, genre string
	var year int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a song",
		RunE: func(cmd *cobra.Command, _ []string) error {
			body := map[string]any{"title": title, "artist": artist}
			if genre != "" {
				body["genre"] = genre
			}
			if year != 0 {
				body["year"] = year
			}

			var out map[string]any
			if err := apiDo(s.serverURL, http.MethodPost, "/songs", body, &out); err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Song title")
	cmd.Flags().StringVar(&artist, "artist", "", "Artist name")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre")
	cmd.Flags().IntVar(&year, "year", 0, "Release year")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("artist")
	return cmd
}

func (s *songsClient) get(cmd *cobra.Command, args []string) error {
	var out map[string]any
	if err := apiGet(s.serverURL, "/songs/"+args[0], &out); err != nil {
		return err
	}
	return printJSON(out)
}

func (s *songsClient) newUpdateCmd() *cobra.Command {
	var title, artist, genre string
	var year int

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update song fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// отправляем только реально переданные флаги: частичное
			// обновление не должно затирать поля нулями.
			body := map[string]any{}
			if cmd.Flags().Changed("title") {
				body["title"] = title
			}
			if cmd.Flags().Changed("artist") {
				body["artist"] = artist
			}
			if cmd.Flags().Changed("genre") {
				body["genre"] = genre
			}
			if cmd.Flags().Changed("year") {
				body["year"] = year
			}
			if len(body) == 0 {
				return fmt.Errorf("nothing to update, pass at least one flag")
			}

			var out map[string]any
			if err := apiDo(s.serverURL, http.MethodPut, "/songs/"+args[0], body, &out); err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Song title")
	cmd.Flags().StringVar(&artist, "artist", "", "Artist name")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre")
	cmd.Flags().IntVar(&year, "year", 0, "Release year")
	return cmd
}

func (s *songsClient) delete(cmd *cobra.Command, args []string) error {
	if err := apiDo(s.serverURL, http.MethodDelete, "/songs/"+args[0], nil, nil); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
	return nil
}

func (s *songsClient) search(cmd *cobra.Command, args []string) error {
	var items []map[string]any
	path := "/songs/search?query=" + url.QueryEscape(args[0])
	if err := apiGet(s.serverURL, path, &items); err != nil {
		return err
	}
	return printJSON(items)
}

func (s *songsClient) stats(cmd *cobra.Command, args []string) error {
	username := ""
	if len(args) == 1 {
		username = args[0]
	} else {
		// без аргумента — статистика текущего пользователя.
		var me struct {
			Username string `json:"username"`
		}
		if err := apiGet(s.serverURL, "/auth/me", &me); err != nil {
			return err
		}
		username = me.Username
	}

	var out map[string]any
	if err := apiGet(s.serverURL, "/users/"+url.PathEscape(username)+"/stats", &out); err != nil {
		return err
	}
	return printJSON(out)
}

func (s *songsClient) newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export song card to a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, filename, err := apiDownload(s.serverURL, "/songs/"+args[0]+"/export")
			if err != nil {
				return err
			}

			target := outPath
			if target == "" {
				target = filename
			}
			if target == "" {
				target = args[0] + ".txt"
			}

			if err := os.WriteFile(target, data, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output file path (default: server-provided name)")
	return cmd
}
