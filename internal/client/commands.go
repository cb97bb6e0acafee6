package client

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/models"
)

const defaultWatchInterval = 5 * time.Minute

type rootOptions struct {
	configPath string
	username   string
}

// NewRootCommand builds the client command tree. Every command creates its
// App through newApp and releases it when done.
func NewRootCommand(version string, newApp AppFactory) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "go-pass-vault",
		Short:         "Zero-knowledge password vault client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a JSON configuration file")
	root.PersistentFlags().StringVarP(&opts.username, "username", "u", "", "account username (email)")

	// run wraps a command body with App construction.
	run := func(fn func(cmd *cobra.Command, args []string, app *App) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			app, release, err := newApp(cmd.Context(), opts.configPath, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer release()

			return fn(cmd, args, app)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show the server version and whether this client must update",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, app *App) error {
				return app.Status(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "register",
			Short: "Create an account with an empty vault",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, app *App) error {
				return app.Register(cmd.Context(), opts.username)
			}),
		},
		&cobra.Command{
			Use:   "login",
			Short: "Check the master password and refresh the local cache",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, app *App) error {
				return app.Login(cmd.Context(), opts.username)
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List stored credentials",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, app *App) error {
				return app.List(cmd.Context(), opts.username)
			}),
		},
		&cobra.Command{
			Use:   "show NAME",
			Short: "Print a credential including its password",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string, app *App) error {
				return app.Show(cmd.Context(), opts.username, args[0])
			}),
		},
		newAddCommand(opts, run),
		&cobra.Command{
			Use:   "remove NAME",
			Short: "Delete a credential",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string, app *App) error {
				return app.Remove(cmd.Context(), opts.username, args[0])
			}),
		},
		&cobra.Command{
			Use:   "cached",
			Short: "Show the local cache state without contacting the server",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, app *App) error {
				return app.Cached(cmd.Context(), opts.username)
			}),
		},
		newWatchCommand(opts, run),
		&cobra.Command{
			Use:   "change-password",
			Short: "Re-encrypt the vault under a new master password",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, app *App) error {
				return app.ChangePassword(cmd.Context(), opts.username)
			}),
		},
		&cobra.Command{
			Use:   "keygen",
			Short: "Generate a key pair and register its public key as primary",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, app *App) error {
				return app.Keygen(cmd.Context(), opts.username)
			}),
		},
		&cobra.Command{
			Use:   "mailbox",
			Short: "Decrypt and print delivered messages",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, app *App) error {
				return app.Mailbox(cmd.Context(), opts.username)
			}),
		},
		newTwoFactorCommand(opts, run),
	)

	return root
}

type runFunc func(fn func(cmd *cobra.Command, args []string, app *App) error) func(*cobra.Command, []string) error

func newAddCommand(opts *rootOptions, run runFunc) *cobra.Command {
	var credential models.Credential

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add or replace a credential, the password is prompted",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string, app *App) error {
			credential.Name = args[0]
			return app.Add(cmd.Context(), opts.username, credential)
		}),
	}
	cmd.Flags().StringVar(&credential.URL, "url", "", "site address")
	cmd.Flags().StringVar(&credential.Username, "login", "", "login on the site")
	cmd.Flags().StringVar(&credential.Notes, "notes", "", "free-form notes")

	return cmd
}

func newWatchCommand(opts *rootOptions, run runFunc) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the local cache in sync until interrupted",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, app *App) error {
			return app.Watch(cmd.Context(), opts.username, interval)
		}),
	}
	cmd.Flags().DurationVar(&interval, "interval", defaultWatchInterval, "pull interval")

	return cmd
}

func newTwoFactorCommand(opts *rootOptions, run runFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "2fa",
		Short: "Manage two-factor authentication",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Enrol an authenticator app and print recovery codes",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, app *App) error {
			return app.EnableTwoFactor(cmd.Context(), opts.username)
		}),
	})

	return cmd
}
