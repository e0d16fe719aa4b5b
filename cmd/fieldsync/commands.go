package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

func newLoginCmd(flags *rootFlags) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and download the initial data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = prompt(cmd, "username: ")
			}
			if password == "" {
				password = prompt(cmd, "password: ")
			}

			app, err := openApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Services.Session.Login(cmd.Context(), username, password); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			cmd.Printf("logged in as %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

func newSyncCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Upload pending mutations and refresh local data",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if !app.Services.Session.Resume(cmd.Context()) {
				cmd.Println("sync did not complete, pending mutations kept for retry")
				return nil
			}

			cmd.Printf("sync complete, %d pending\n", app.Services.Pending.Value())
			return nil
		},
	}
}

func newStatusCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the number of mutations waiting for upload",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()

			root, err := app.Services.Records.Root(cmd.Context())
			if err != nil {
				return fmt.Errorf("read local queue: %w", err)
			}

			cmd.Printf("activities: %d\n", len(root.Activities))
			cmd.Printf("transactions: %d\n", len(root.Transactions))
			cmd.Printf("tasks: %d\n", len(root.Tasks))
			cmd.Printf("pending upload: %d\n", root.PendingCount())
			return nil
		},
	}
}

func newCloseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Upload everything and clear local storage",
		Long: `close performs the graceful handoff: it requires connectivity and a
fully successful upload before wiping local storage. When either fails the
queue stays intact and the command reports failure.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if !app.Services.Session.Logout(cmd.Context()) {
				cmd.Println("close did not complete, local data kept")
				return nil
			}

			cmd.Println("session closed, local storage cleared")
			return nil
		},
	}
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Dump the mutation queue to a backup file and clear storage",
		Long: `export is the forced-termination path: the full local queue is written
to a timestamped backup file without requiring connectivity, pushed to the
server best-effort, and local storage is cleared afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()

			path, err := app.Services.Backup.ForceQuit(cmd.Context())
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			cmd.Printf("backup written to %s\n", path)
			return nil
		},
	}
}

func newWatchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run the background refresh loop until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()

			unsubscribe := app.Services.Pending.Subscribe(func(count int) {
				cmd.Printf("pending upload: %d\n", count)
			})
			defer unsubscribe()

			app.Services.Refresh.Start(cmd.Context(), app.Config.Workers.RefreshInterval)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-stop:
			case <-cmd.Context().Done():
			}

			cmd.Println("stopping")
			return nil
		},
	}
}

func prompt(cmd *cobra.Command, label string) string {
	cmd.Print(label)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
