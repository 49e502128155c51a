package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skilleval/internal/reporting"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show assessment statistics across all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		st, err := reporting.New(s.StatsRepo()).Stats(cmd.Context())
		if err != nil {
			return err
		}
		printStats(st)
		return nil
	},
}

func printStats(st *reporting.Stats) {
	o := st.Overview
	fmt.Println(heading("Overview"))
	fmt.Println(rule(60))
	fmt.Printf("Attempts:         %d\n", o.TotalAttempts)
	fmt.Printf("Completed:        %d\n", o.CompletedAttempts)
	fmt.Printf("Completion rate:  %.2f%%\n", o.CompletionRate)

	fmt.Println()
	fmt.Println(heading("Performance Bands"))
	fmt.Println(rule(60))
	for _, b := range st.Bands {
		fmt.Printf("%-18s  %5d\n", b.Band, b.Count)
	}

	fmt.Println()
	fmt.Println(heading("Concepts (hardest first)"))
	fmt.Println(rule(60))
	if len(st.Concepts) == 0 {
		fmt.Println(dimStyle.Render("No attempts yet."))
	} else {
		fmt.Printf("%-20s  %8s  %9s  %8s\n", "Concept", "Attempts", "Completed", "Mean %")
		for _, c := range st.Concepts {
			fmt.Printf("%-20s  %8d  %9d  %8.2f\n", truncate(c.Concept, 20), c.Attempts, c.Completed, c.MeanPercentage)
		}
	}

	printAttempts("Most Recent", st.Recent)
	printAttempts("Top Scores", st.Top)
}

func printAttempts(title string, rows []reporting.AttemptSummary) {
	fmt.Println()
	fmt.Println(heading(title))
	fmt.Println(rule(60))
	if len(rows) == 0 {
		fmt.Println(dimStyle.Render("None."))
		return
	}
	for _, a := range rows {
		when := ""
		if a.CompletedAt != nil {
			when = a.CompletedAt.Local().Format("2006-01-02 15:04")
		}
		score := fmt.Sprintf("%3d%%", a.Percentage)
		if a.Percentage >= 60 {
			score = goodStyle.Render(score)
		} else {
			score = badStyle.Render(score)
		}
		fmt.Printf("%-16s  %-20s  %s  %-18s  %s\n",
			truncate(a.UserID, 16), truncate(a.Concept, 20), score, a.Band, dimStyle.Render(when))
	}
}
