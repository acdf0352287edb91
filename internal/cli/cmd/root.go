// Package cmd содержит команды консольного клиента songs-cli.
// Клиент ходит в HTTP API сервиса; access/refresh токены кэшируются
// в файлах домашнего каталога.
package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(version, buildDate string) *cobra.Command {
	var serverURL string
	root := &cobra.Command{
		Use:   "songs-cli",
		Short: "Songs service CLI",
	}
	// Дефолт совпадает с HTTP_PORT сервиса (internal/config, env-default 8000).
	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "Server base URL")

	root.AddCommand(newVersionCmd(version, buildDate))
	root.AddCommand(newAuthCmd(&serverURL))
	root.AddCommand(newSongsCmd(&serverURL))
	return root
}

func newVersionCmd(version, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("songs-cli %s (built %s)\n", version, buildDate)
		},
	}
}
