package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/skilleval/internal/catalog"
	"github.com/abhisek/skilleval/internal/logger"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "Manage the concept catalog",
}

var conceptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active concepts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, closeFn, err := openCatalog(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		entries, err := cat.ListActive(cmd.Context())
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No concepts registered. Run `skilleval concepts seed`.")
			return nil
		}

		fmt.Println(heading(fmt.Sprintf("%-20s  %s", "Concept", "Description")))
		fmt.Println(rule(80))
		for _, e := range entries {
			fmt.Printf("%-20s  %s\n", e.Key, dimStyle.Render(truncate(e.Description, 58)))
		}
		return nil
	},
}

var conceptsRegisterCmd = &cobra.Command{
	Use:   "register <key> <description...>",
	Short: "Register a concept or update its description",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, closeFn, err := openCatalog(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		c, err := cat.Register(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s\n", goodStyle.Render(c.Key))
		return nil
	},
}

var conceptsRetireCmd = &cobra.Command{
	Use:   "retire <key>",
	Short: "Stop offering a concept for new assessments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, closeFn, err := openCatalog(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := cat.Retire(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Retired %s\n", badStyle.Render(args[0]))
		return nil
	},
}

var conceptsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Register the default concepts and an optional YAML seed file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, closeFn, err := openCatalog(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		ctx := cmd.Context()
		if err := cat.SeedDefaults(ctx); err != nil {
			return err
		}
		fmt.Printf("Seeded %d default concepts\n", len(catalog.Defaults))

		file, _ := cmd.Flags().GetString("file")
		if file == "" {
			return nil
		}
		f, err := catalog.LoadSeedFile(file)
		if err != nil {
			return err
		}
		n, err := cat.Seed(ctx, f)
		if err != nil {
			return err
		}
		fmt.Printf("Seeded %d concepts from %s\n", n, file)
		return nil
	},
}

// openCatalog opens the store and a catalog over it.
func openCatalog(cmd *cobra.Command) (*catalog.Catalog, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	s, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return catalog.New(s.ConceptRepo(), logger.Nop()), func() { s.Close() }, nil
}

func init() {
	conceptsSeedCmd.Flags().StringP("file", "f", "", "YAML seed file to apply after the defaults")

	conceptsCmd.AddCommand(conceptsListCmd)
	conceptsCmd.AddCommand(conceptsRegisterCmd)
	conceptsCmd.AddCommand(conceptsRetireCmd)
	conceptsCmd.AddCommand(conceptsSeedCmd)
}
