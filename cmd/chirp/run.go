package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/newswire-labs/chirp/internal/bot"
	"github.com/newswire-labs/chirp/internal/config"
	"github.com/newswire-labs/chirp/internal/logging"
	"github.com/newswire-labs/chirp/internal/publish"
	"github.com/newswire-labs/chirp/internal/schedule"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the posting loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if err := cfg.ValidateCredentials(); err != nil {
				return fmt.Errorf("run 'chirp setup' first: %w", err)
			}

			if err := logging.Init(version); err != nil {
				return err
			}
			defer logging.Close()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			b := bot.New(cfg, publish.NewClient(cfg.Twitter))
			runner := schedule.New(cfg.Schedule.IntervalHours, b.RunCycle)

			fmt.Printf("chirp running: %d source(s), every %dh within %02d:00-%02d:59\n",
				len(cfg.NewsSources), cfg.Schedule.IntervalHours,
				cfg.Schedule.ActiveHours.Start, cfg.Schedule.ActiveHours.End)

			runner.Run(ctx)
			return nil
		},
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	postStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(64)
)

func onceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "once",
		Short: "Run one pipeline pass and print the result without posting",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logging.InitConsole()

			// No publisher needed for a dry run.
			b := bot.New(cfg, nil)
			candidates, post := b.Preview(cmd.Context())

			if len(candidates) == 0 {
				fmt.Println("no trending news found")
				return nil
			}

			fmt.Println(headerStyle.Render(fmt.Sprintf("%d trending candidate(s)", len(candidates))))
			for i, c := range candidates {
				published := "no timestamp"
				if c.HasPublished() {
					published = c.Published.Format("2006-01-02 15:04")
				}
				fmt.Printf("%2d. %s %s\n    %s\n",
					i+1,
					scoreStyle.Render(fmt.Sprintf("%.2f", c.Score)),
					c.Title,
					dimStyle.Render(published+"  "+c.SourceURL))
			}

			fmt.Println()
			fmt.Println(headerStyle.Render("composed post"))
			fmt.Println(postStyle.Render(post))
			fmt.Println(dimStyle.Render(fmt.Sprintf("%d characters", len([]rune(post)))))
			return nil
		},
	}
}
