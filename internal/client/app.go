package client

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ClientID identifies this client in vault writes.
const ClientID = "go-pass-vault-cli"

type App struct {
	services      *service.ClientServices
	prompter      Prompter
	out           io.Writer
	clientVersion string
	logger        *logger.Logger
}

func NewApp(services *service.ClientServices, prompter Prompter, out io.Writer, clientVersion string, logger *logger.Logger) *App {
	return &App{
		services:      services,
		prompter:      prompter,
		out:           out,
		clientVersion: clientVersion,
		logger:        logger,
	}
}

// ─────────────────────────────────────────────
// Session
// ─────────────────────────────────────────────

// login prompts for the master password and signs in.
func (a *App) login(ctx context.Context, username string) (crypto.VaultKeys, error) {
	password, err := a.prompter.ReadPassword("Master password: ")
	if err != nil {
		return crypto.VaultKeys{}, err
	}
	return a.signIn(ctx, username, password)
}

// signIn runs the password login and, when the account has two-factor
// enabled, asks for a TOTP code or a recovery code.
func (a *App) signIn(ctx context.Context, username, password string) (crypto.VaultKeys, error) {
	login, err := a.services.AuthService.Login(ctx, username, password, false)
	if err != nil {
		return crypto.VaultKeys{}, fmt.Errorf("login failed: %w", err)
	}

	if login.RequiresTwoFactor {
		code, err := a.prompter.ReadLine("Two-factor code (empty to use a recovery code): ")
		if err != nil {
			return crypto.VaultKeys{}, err
		}

		recovery := false
		if strings.TrimSpace(code) == "" {
			recovery = true
			if code, err = a.prompter.ReadLine("Recovery code: "); err != nil {
				return crypto.VaultKeys{}, err
			}
		}

		if err = a.services.AuthService.CompleteTwoFactor(ctx, username, login.TwoFactorToken, strings.TrimSpace(code), recovery); err != nil {
			return crypto.VaultKeys{}, fmt.Errorf("two-factor validation failed: %w", err)
		}
	}

	a.logger.Info().Str("username", username).Msg("logged in")
	return login.Keys, nil
}

// withSession runs fn between a login and a logout of this device.
func (a *App) withSession(ctx context.Context, username string, fn func(keys crypto.VaultKeys) error) error {
	if username == "" {
		return ErrEmptyUsername
	}

	keys, err := a.login(ctx, username)
	if err != nil {
		return err
	}
	defer a.logout(username)

	return fn(keys)
}

func (a *App) logout(username string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.services.AuthService.Logout(ctx); err != nil {
		a.logger.Warn().Err(err).Str("username", username).Msg("logout failed")
	}
}

// ─────────────────────────────────────────────
// Account
// ─────────────────────────────────────────────

func (a *App) Status(ctx context.Context) error {
	status, err := a.services.AuthService.CheckVersion(ctx, a.clientVersion)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "server version: %s\n", status.ServerVersion)
	if status.MinimumClientVersion != "" {
		fmt.Fprintf(a.out, "minimum client version: %s\n", status.MinimumClientVersion)
	}
	if status.UpdateRequired {
		fmt.Fprintf(a.out, "client %s is outdated, please update\n", a.clientVersion)
	}
	return nil
}

func (a *App) Register(ctx context.Context, username string) error {
	if username == "" {
		return ErrEmptyUsername
	}

	password, err := a.readNewPassword("Master password: ")
	if err != nil {
		return err
	}

	registered, err := a.services.AuthService.Register(ctx, username, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Fprintf(a.out, "account %d created\n", registered.AccountID)
	return nil
}

// Login checks the credentials and refreshes the local cache.
func (a *App) Login(ctx context.Context, username string) error {
	return a.withSession(ctx, username, func(keys crypto.VaultKeys) error {
		doc, err := a.services.VaultService.Pull(ctx, username, keys)
		if err != nil {
			return err
		}

		cached, err := a.services.VaultService.Cached(ctx, username)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "logged in as %s, revision %d, %d credentials\n", username, cached.Revision, len(doc.Credentials))
		return nil
	})
}

func (a *App) ChangePassword(ctx context.Context, username string) error {
	if username == "" {
		return ErrEmptyUsername
	}

	current, err := a.prompter.ReadPassword("Current master password: ")
	if err != nil {
		return err
	}

	if _, err = a.signIn(ctx, username, current); err != nil {
		return err
	}
	defer a.logout(username)

	next, err := a.readNewPassword("New master password: ")
	if err != nil {
		return err
	}

	if _, err = a.services.VaultService.ChangePassword(ctx, username, current, next); err != nil {
		return fmt.Errorf("password change failed: %w", err)
	}

	fmt.Fprintln(a.out, "master password changed, other devices were signed out")
	return nil
}

func (a *App) EnableTwoFactor(ctx context.Context, username string) error {
	return a.withSession(ctx, username, func(crypto.VaultKeys) error {
		setup, err := a.services.AuthService.EnableTwoFactor(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "secret: %s\n", setup.Secret)
		fmt.Fprintf(a.out, "url:    %s\n", setup.URL)

		code, err := a.prompter.ReadLine("Code from the authenticator: ")
		if err != nil {
			return err
		}

		recoveryCodes, err := a.services.AuthService.ConfirmTwoFactor(ctx, strings.TrimSpace(code))
		if err != nil {
			return err
		}

		fmt.Fprintln(a.out, "two-factor authentication enabled, store these recovery codes:")
		for _, rc := range recoveryCodes {
			fmt.Fprintf(a.out, "  %s\n", rc)
		}
		return nil
	})
}

// readNewPassword asks twice.
func (a *App) readNewPassword(prompt string) (string, error) {
	password, err := a.prompter.ReadPassword(prompt)
	if err != nil {
		return "", err
	}
	confirm, err := a.prompter.ReadPassword("Repeat: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", ErrPasswordsDoNotMatch
	}
	return password, nil
}

// ─────────────────────────────────────────────
// Vault
// ─────────────────────────────────────────────

// List prints credential names and URLs. Passwords are only shown by Show.
func (a *App) List(ctx context.Context, username string) error {
	return a.withSession(ctx, username, func(keys crypto.VaultKeys) error {
		doc, err := a.services.VaultService.Pull(ctx, username, keys)
		if err != nil {
			return err
		}

		credentials := slices.Clone(doc.Credentials)
		sort.Slice(credentials, func(i, j int) bool { return credentials[i].Name < credentials[j].Name })

		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tURL\tLOGIN")
		for _, c := range credentials {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.URL, c.Username)
		}
		return tw.Flush()
	})
}

func (a *App) Show(ctx context.Context, username, name string) error {
	return a.withSession(ctx, username, func(keys crypto.VaultKeys) error {
		doc, err := a.services.VaultService.Pull(ctx, username, keys)
		if err != nil {
			return err
		}

		i := findCredential(doc, name)
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrCredentialNotFound, name)
		}

		c := doc.Credentials[i]
		fmt.Fprintf(a.out, "name:     %s\n", c.Name)
		fmt.Fprintf(a.out, "url:      %s\n", c.URL)
		fmt.Fprintf(a.out, "login:    %s\n", c.Username)
		fmt.Fprintf(a.out, "password: %s\n", c.Password)
		if c.Notes != "" {
			fmt.Fprintf(a.out, "notes:    %s\n", c.Notes)
		}
		return nil
	})
}

// Add stores credential, replacing an entry with the same name. The
// password is prompted when credential has none.
func (a *App) Add(ctx context.Context, username string, credential models.Credential) error {
	if credential.Name == "" {
		return fmt.Errorf("%w: credential name is required", service.ErrInvalidDataProvided)
	}

	return a.withSession(ctx, username, func(keys crypto.VaultKeys) error {
		if credential.Password == "" {
			password, err := a.prompter.ReadPassword(fmt.Sprintf("Password for %s: ", credential.Name))
			if err != nil {
				return err
			}
			credential.Password = password
		}

		pushed, err := a.services.VaultService.Update(ctx, username, keys, func(doc *models.VaultDocument) {
			if i := findCredential(*doc, credential.Name); i >= 0 {
				doc.Credentials[i] = credential
				return
			}
			doc.Credentials = append(doc.Credentials, credential)
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "saved %q, revision %d\n", credential.Name, pushed.Revision)
		return nil
	})
}

func (a *App) Remove(ctx context.Context, username, name string) error {
	return a.withSession(ctx, username, func(keys crypto.VaultKeys) error {
		found := false
		pushed, err := a.services.VaultService.Update(ctx, username, keys, func(doc *models.VaultDocument) {
			i := findCredential(*doc, name)
			found = i >= 0
			if found {
				doc.Credentials = slices.Delete(doc.Credentials, i, i+1)
			}
		})
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %q", ErrCredentialNotFound, name)
		}

		fmt.Fprintf(a.out, "removed %q, revision %d\n", name, pushed.Revision)
		return nil
	})
}

// Cached prints what the local cache holds without contacting the server.
func (a *App) Cached(ctx context.Context, username string) error {
	if username == "" {
		return ErrEmptyUsername
	}

	cached, err := a.services.VaultService.Cached(ctx, username)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "revision %d (data version %s), synced at %s\n", cached.Revision, cached.Version, cached.SyncedAt.Local().Format(time.DateTime))
	return nil
}

// Watch keeps the local cache fresh until ctx is done.
func (a *App) Watch(ctx context.Context, username string, interval time.Duration) error {
	return a.withSession(ctx, username, func(keys crypto.VaultKeys) error {
		if _, err := a.services.VaultService.Pull(ctx, username, keys); err != nil {
			return err
		}

		a.services.SyncJob.Start(ctx, username, keys, interval)
		defer a.services.SyncJob.Stop()

		fmt.Fprintf(a.out, "syncing every %s, press Ctrl+C to stop\n", interval)
		<-ctx.Done()
		return nil
	})
}

func findCredential(doc models.VaultDocument, name string) int {
	return slices.IndexFunc(doc.Credentials, func(c models.Credential) bool { return c.Name == name })
}

// ─────────────────────────────────────────────
// Keys and mailbox
// ─────────────────────────────────────────────

func (a *App) Keygen(ctx context.Context, username string) error {
	return a.withSession(ctx, username, func(keys crypto.VaultKeys) error {
		key, err := a.services.KeyService.GenerateKey(ctx, username, keys)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "key %d registered as primary\n", key.KeyID)
		return nil
	})
}

func (a *App) Mailbox(ctx context.Context, username string) error {
	return a.withSession(ctx, username, func(keys crypto.VaultKeys) error {
		messages, err := a.services.KeyService.ReadMailbox(ctx, username, keys)
		if err != nil {
			return err
		}

		if len(messages) == 0 {
			fmt.Fprintln(a.out, "mailbox is empty")
			return nil
		}

		for i, message := range messages {
			fmt.Fprintf(a.out, "message %d\n", i+1)
			fields := make([]string, 0, len(message))
			for name := range message {
				fields = append(fields, name)
			}
			sort.Strings(fields)
			for _, name := range fields {
				fmt.Fprintf(a.out, "  %s: %s\n", name, message[name])
			}
		}
		return nil
	})
}
