package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/digilit/internal/config"
	"github.com/gokatarajesh/digilit/internal/content"
	"github.com/gokatarajesh/digilit/internal/content/client"
	"github.com/gokatarajesh/digilit/internal/quiz"
	"github.com/gokatarajesh/digilit/internal/tui"
	"github.com/gokatarajesh/digilit/internal/typing"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4F7CFF"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#2DB55D"))
)

const (
	chartWidth         = 40
	noQuestionsMessage = "No quiz questions available right now."
)

func newClient(cfg *config.Learner) *client.Client {
	return client.New(apiURL, client.Options{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		MaxRetries: cfg.MaxRetries,
		RetryBase:  cfg.RetryBase,
	})
}

func newQuizCmd(cfg *config.Learner) *cobra.Command {
	return &cobra.Command{
		Use:   "quiz",
		Short: "Take the digital literacy quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			questions, err := newClient(cfg).FetchQuiz(cmd.Context())
			if err != nil {
				return fmt.Errorf("load quiz: %w", err)
			}
			session, err := quiz.Start(questions)
			if errors.Is(err, quiz.ErrEmptyQuiz) {
				fmt.Fprintln(cmd.OutOrStdout(), noQuestionsMessage)
				return nil
			}
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(tui.NewQuizModel(session)).Run()
			return err
		},
	}
}

func newTypingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "typing",
		Short: "Practice typing with the built-in lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := typing.NewSession(typing.PracticeSentences, typing.SessionOptions{})
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(tui.NewTypingModel(session, typing.Tips)).Run()
			return err
		},
	}
}

func newGlossaryCmd(cfg *config.Learner) *cobra.Command {
	return &cobra.Command{
		Use:   "glossary [search]",
		Short: "List glossary terms, optionally filtered by a search string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := newClient(cfg).FetchGlossary(cmd.Context())
			if err != nil {
				return fmt.Errorf("load glossary: %w", err)
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			writeGlossary(cmd.OutOrStdout(), content.SearchGlossary(terms, query))
			return nil
		},
	}
}

func newStatsCmd(cfg *config.Learner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show digital adoption statistics grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := newClient(cfg).FetchStatistics(cmd.Context())
			if err != nil {
				return fmt.Errorf("load statistics: %w", err)
			}
			if statsCategory != "" {
				stats = content.StatisticsInCategory(stats, statsCategory)
			}
			writeStatistics(cmd.OutOrStdout(), content.GroupStatistics(stats))
			return nil
		},
	}
	cmd.Flags().StringVar(&statsCategory, "category", "", "only show one category")
	return cmd
}

func writeGlossary(w io.Writer, terms []content.GlossaryTerm) {
	if len(terms) == 0 {
		fmt.Fprintln(w, "No terms found matching your search.")
		return
	}
	for _, t := range terms {
		fmt.Fprintf(w, "%s %s\n  %s\n\n", headingStyle.Render(t.Term), categoryStyle.Render("["+t.Category+"]"), t.Definition)
	}
}

func writeStatistics(w io.Writer, groups []content.StatisticGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No statistics available.")
		return
	}
	var peak int32
	for _, g := range groups {
		for _, p := range g.Points {
			peak = max(peak, p.Value)
		}
	}
	for _, g := range groups {
		fmt.Fprintln(w, headingStyle.Render(g.Category))
		for _, p := range g.Points {
			fmt.Fprintf(w, "  %-18s %s %d %s (%d", p.Title, bar(p.Value, peak), p.Value, p.Label, p.Year)
			if p.Source != nil {
				fmt.Fprintf(w, ", %s", *p.Source)
			}
			fmt.Fprintln(w, ")")
		}
		fmt.Fprintln(w)
	}
}

func bar(value, peak int32) string {
	if peak <= 0 || value <= 0 {
		return ""
	}
	n := max(1, int(float64(value)/float64(peak)*chartWidth))
	return barStyle.Render(strings.Repeat("▇", n))
}
