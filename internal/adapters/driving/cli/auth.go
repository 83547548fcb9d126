package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docflow-cli/internal/adapters/driven/config/file"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage service credentials",
	Long: `Configure the document-processing service URL and API token.

The token is read without echo and stored in ~/.docflow/config.toml
with owner-only permissions.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the service URL and API token",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured service and token state",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored API token",
	RunE:  runAuthLogout,
}

// authURL is a flag for non-interactive login.
var authURL string

func init() {
	authLoginCmd.Flags().StringVar(&authURL, "url", "", "Service base URL (prompted if omitted)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	baseURL := authURL
	if baseURL == "" {
		current := configStore.GetString(file.KeyAPIBaseURL)
		if current != "" {
			cmd.Printf("Service URL [%s]: ", current)
		} else {
			cmd.Print("Service URL: ")
		}
		reader := bufio.NewReader(cmd.InOrStdin())
		input, _ := reader.ReadString('\n') //nolint:errcheck // CLI prompt
		baseURL = strings.TrimSpace(input)
		if baseURL == "" {
			baseURL = current
		}
	}
	if baseURL == "" {
		return errors.New("a service URL is required")
	}

	cmd.Print("API token: ")
	token := readToken(cmd)
	cmd.Println()
	if token == "" {
		return errors.New("a token is required")
	}

	if err := configStore.Set(file.KeyAPIBaseURL, baseURL); err != nil {
		return fmt.Errorf("failed to save service URL: %w", err)
	}
	if err := configStore.Set(file.KeyAPIToken, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	cmd.Printf("Credentials saved to %s\n", configStore.Path())
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	baseURL := configStore.GetString(file.KeyAPIBaseURL)
	token := configStore.GetString(file.KeyAPIToken)

	if baseURL == "" {
		cmd.Println("Not configured. Run 'docflow auth login' first.")
		return nil
	}

	cmd.Printf("Service: %s\n", baseURL)
	if token == "" {
		cmd.Println("Token:   (not set)")
	} else {
		cmd.Printf("Token:   %s\n", maskToken(token))
	}
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Set(file.KeyAPIToken, ""); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}

	cmd.Println("Token cleared.")
	return nil
}

// readToken reads the token without echo when stdin is a terminal,
// falling back to a plain line read otherwise (pipes, tests).
func readToken(cmd *cobra.Command) string {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	input, _ := reader.ReadString('\n') //nolint:errcheck // CLI prompt
	return strings.TrimSpace(input)
}

// maskToken hides all but the edges of a token.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
