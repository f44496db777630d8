package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/newswire-labs/chirp/internal/config"
	"github.com/newswire-labs/chirp/internal/publish"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactive X API credential setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render("Setting up X API credentials"))
			fmt.Println("You can get these from https://developer.twitter.com/en/portal/dashboard")
			fmt.Println()

			reader := bufio.NewReader(os.Stdin)
			prompt := func(label string) string {
				fmt.Printf("%s: ", label)
				line, _ := reader.ReadString('\n')
				return strings.TrimSpace(line)
			}

			cfg.Twitter = config.TwitterConfig{
				BearerToken:  prompt("Bearer Token"),
				APIKey:       prompt("API Key"),
				APISecret:    prompt("API Secret"),
				AccessToken:  prompt("Access Token"),
				AccessSecret: prompt("Access Token Secret"),
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Println()
			fmt.Println("credentials saved to " + config.Path())

			if err := cfg.ValidateCredentials(); err != nil {
				fmt.Println(errStyle.Render("configuration has errors:"))
				fmt.Println(errStyle.Render(err.Error()))
				fmt.Println("\nPlease fix these issues before running the bot.")
				return nil
			}
			if err := cfg.Validate(); err != nil {
				fmt.Println(errStyle.Render("configuration has errors:"))
				fmt.Println(errStyle.Render(err.Error()))
				return nil
			}

			fmt.Println(okStyle.Render("configuration validated successfully"))
			fmt.Println("You can now run the bot with: chirp run")
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify the stored X API credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.ValidateCredentials(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			client := publish.NewClient(cfg.Twitter)
			username, err := client.Verify(ctx)
			if err != nil {
				fmt.Println(errStyle.Render("credential check failed"))
				return err
			}

			fmt.Println(okStyle.Render("credentials verified, authenticated as @" + username))
			return nil
		},
	}
}
