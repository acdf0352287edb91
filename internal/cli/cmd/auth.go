package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type authClient struct {
	serverURL *string
}

func newAuthCmd(serverURL *string) *cobra.Command {
	a := &authClient{serverURL: serverURL}
	cmd := &cobra.Command{Use: "auth", Short: "Authentication commands"}
	cmd.AddCommand(&cobra.Command{Use: "register", Short: "Register new user", RunE: a.register})
	cmd.AddCommand(&cobra.Command{Use: "login", Short: "Login and store tokens", RunE: a.login})
	cmd.AddCommand(&cobra.Command{Use: "me", Short: "Show current user", RunE: a.me})
	cmd.AddCommand(&cobra.Command{Use: "logout", Short: "Drop cached tokens", RunE: a.logout})
	return cmd
}

func (a *authClient) register(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)
	username := promptLine(cmd, reader, "Username: ")
	email := promptLine(cmd, reader, "Email: ")
	password, err := promptPassword(cmd, "Password: ")
	if err != nil {
		return err
	}

	body := map[string]string{"username": username, "email": email, "password": string(password)}
	b, _ := json.Marshal(body)
	resp, err := http.Post(*a.serverURL+"/auth/register", "application/json", bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("register failed: %s", resp.Status)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Registered")
	return nil
}

func (a *authClient) login(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)
	username := promptLine(cmd, reader, "Username or email: ")
	password, err := promptPassword(cmd, "Password: ")
	if err != nil {
		return err
	}

	body := map[string]string{"username": username, "password": string(password)}
	b, _ := json.Marshal(body)
	resp, err := http.Post(*a.serverURL+"/auth/login", "application/json", bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("login failed: %s", resp.Status)
	}

	var result struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if err := saveToken(result.AccessToken); err != nil {
		return err
	}
	if result.RefreshToken != "" {
		_ = saveRefresh(result.RefreshToken)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logged in")
	return nil
}

func (a *authClient) me(cmd *cobra.Command, args []string) error {
	var out map[string]any
	if err := apiGet(a.serverURL, "/auth/me", &out); err != nil {
		return err
	}
	return printJSON(out)
}

func (a *authClient) logout(cmd *cobra.Command, args []string) error {
	_ = os.Remove(tokenPath())
	_ = os.Remove(refreshPath())
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
	return nil
}

func promptLine(cmd *cobra.Command, reader *bufio.Reader, prompt string) string {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptPassword(cmd *cobra.Command, prompt string) ([]byte, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.OutOrStdout())
	return pass, err
}

func tokenPath() string {
	home, _ := os.UserHomeDir()
	return home + string(os.PathSeparator) + ".songs_token"
}

func refreshPath() string {
	home, _ := os.UserHomeDir()
	return home + string(os.PathSeparator) + ".songs_refresh"
}

func saveToken(token string) error {
	return os.WriteFile(tokenPath(), []byte(token), 0600)
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func saveRefresh(token string) error { return os.WriteFile(refreshPath(), []byte(token), 0600) }

func loadRefresh() (string, error) {
	b, err := os.ReadFile(refreshPath())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// ensureAccessToken возвращает кэшированный access-токен либо пробует
// обновить пару по refresh-токену. Ротация одноразовая, поэтому новый
// refresh сохраняется сразу.
func ensureAccessToken(serverURL *string) (string, error) {
	tok, err := loadToken()
	if err == nil && tok != "" {
		return tok, nil
	}

	r, err := loadRefresh()
	if err != nil || r == "" {
		return "", fmt.Errorf("no access token, please login")
	}

	body := map[string]string{"refresh_token": r}
	b, _ := json.Marshal(body)
	resp, err := http.Post(*serverURL+"/auth/refresh", "application/json", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("refresh failed: %s", resp.Status)
	}

	var out struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("empty access token on refresh")
	}
	_ = saveToken(out.AccessToken)
	if out.RefreshToken != "" {
		_ = saveRefresh(out.RefreshToken)
	}
	return out.AccessToken, nil
}
