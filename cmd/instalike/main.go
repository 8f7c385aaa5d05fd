package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"instalike/internal/bootstrap"
	"instalike/internal/platform/config"
	"instalike/internal/platform/logging"
	"instalike/internal/ui/nav"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var stateDir string

	root := &cobra.Command{
		Use:           "instalike",
		Short:         "Photo-sharing demo client for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&stateDir, "state-dir", defaultStateDir(), "directory holding the session record, config and log")

	root.AddCommand(newTUICmd(&stateDir))
	root.AddCommand(newSessionCmd(&stateDir))
	root.AddCommand(newRouteCmd(&stateDir))
	return root
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "instalike")
	}
	return ".instalike"
}

// loadApp wires the application with logs going to w.
func loadApp(stateDir string, w io.Writer) (*bootstrap.App, error) {
	cfg, err := config.New(stateDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(w, cfg.LogLevel))
}

func newTUICmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("tui needs an interactive terminal")
			}
			cfg, err := config.New(*stateDir)
			if err != nil {
				return err
			}
			logger, closer, err := logging.OpenFile(cfg.LogPath, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer closer.Close()

			app, err := bootstrap.New(cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()
			logger.WithFields(logrus.Fields{"state_dir": cfg.StateDir, "backend": cfg.SessionBackend}).Info("tui starting")
			return bootstrap.RunTUI(app)
		},
	}
}

func newSessionCmd(stateDir *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Inspect or change the stored session"}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			s, ok := app.SessionCLI.Current(context.Background()).Get()
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no session")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "username=%s\navatar=%s\nbio=%s\n", s.Username, s.AvatarURL, s.Bio)
			return nil
		},
	}

	var avatar string
	login := &cobra.Command{
		Use:   "login <username>",
		Short: "Store a session for username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.SessionCLI.Login(context.Background(), args[0], avatar)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", s.Username)
			return nil
		},
	}
	login.Flags().StringVar(&avatar, "avatar", "", "avatar URL (optional)")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.SessionCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}

	session.AddCommand(show, login, logout)
	return session
}

func newRouteCmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "route <path>",
		Short: "Print where a path lands for the stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			ctx := context.Background()
			navigator := nav.NewNavigator(app.SessionCLI, logging.Discard())
			navigator.Start(ctx)
			landed := navigator.NavigatePath(ctx, args[0], nav.Push)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), landed.Path())
			return nil
		},
	}
}
