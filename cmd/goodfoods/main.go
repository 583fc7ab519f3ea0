package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goodfoods/goodfoods/internal/agent"
	"github.com/goodfoods/goodfoods/internal/config"
	"github.com/goodfoods/goodfoods/internal/core"
	"github.com/goodfoods/goodfoods/internal/llm"
	"github.com/goodfoods/goodfoods/internal/server"
	"github.com/goodfoods/goodfoods/internal/store"
	"github.com/goodfoods/goodfoods/internal/tools"
)

var rootCmd = &cobra.Command{
	Use:   "goodfoods",
	Short: "GoodFoods reservation agent",
	Long:  "GoodFoods is a conversational restaurant reservation agent: it searches venues, checks seat availability, and commits bookings through a plan-then-act loop over a SQLite store.",
}

func main() {
	cobra.OnInitialize(initEnv)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initEnv() {
	viper.SetEnvPrefix("GOODFOODS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("config-dir", "c", "", "directory holding goodfoods.yml and the data dir")
	_ = viper.BindPFlag("config_dir", rootCmd.PersistentFlags().Lookup("config-dir"))
}

func registerCommands() {
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(restaurantsCmd())
}

func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetString("config_dir"))
}

func openStore(ctx context.Context, cfg *config.Config) (*store.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return store.Open(ctx, cfg.DBPath)
}

func buildLoop(cfg *config.Config, db *store.DB) *agent.Loop {
	client := llm.NewClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.RequestTimeout)
	executor := &tools.Executor{Registry: tools.NewRegistry(db)}
	return &agent.Loop{
		Client:   client,
		Executor: executor,
		Planner: &agent.Planner{
			Client:    client,
			Executor:  executor,
			Window:    cfg.PlannerWindow,
			MaxTokens: cfg.PlannerMaxTokens,
		},
		MaxTokens: cfg.MaxOutputTokens,
	}
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive reservation chat in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.APIKey == "" {
				return fmt.Errorf("no API key configured; set GOODFOODS_API_KEY")
			}
			db, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.Seed(cmd.Context(), time.Now().UnixNano()); err != nil {
				return err
			}
			return runREPL(cmd.Context(), buildLoop(cfg, db))
		},
	}
}

func runREPL(ctx context.Context, loop *agent.Loop) error {
	fmt.Println("GoodFoods reservation assistant. Type 'exit' to quit.")
	transcript := []core.Message{}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}
		transcript = append(transcript, core.Message{Role: "user", Content: line})
		result := loop.Run(ctx, transcript)
		transcript = append(transcript, core.Message{Role: "assistant", Content: result.Content})
		fmt.Printf("agent> %s\n", result.Content)
		if len(result.UsedTools) > 0 {
			fmt.Printf("       (used: %s)\n", strings.Join(result.UsedTools, ", "))
		}
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chat API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.APIKey == "" {
				return fmt.Errorf("no API key configured; set GOODFOODS_API_KEY")
			}
			db, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.Seed(cmd.Context(), time.Now().UnixNano()); err != nil {
				return err
			}
			srv := &server.Server{Addr: cfg.ListenAddr, Loop: buildLoop(cfg, db)}
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().String("listen", "", "bind address (overrides config)")
	_ = viper.BindPFlag("listen_addr", cmd.Flags().Lookup("listen"))
	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate empty store tables with sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			seed, _ := cmd.Flags().GetInt64("rng-seed")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			return db.Seed(cmd.Context(), seed)
		},
	}
	cmd.Flags().Int64("rng-seed", 0, "deterministic RNG seed (0 means time-based)")
	return cmd
}

func restaurantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "List seeded restaurants",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			f := store.RestaurantFilter{
				Cuisine: viper.GetString("cuisine"),
				City:    viper.GetString("city"),
			}
			limit, _ := cmd.Flags().GetInt("limit")
			items, err := db.SearchRestaurants(cmd.Context(), f, limit)
			if err != nil {
				return err
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Name", "Cuisine", "City", "Neighborhood", "Rating", "Price", "Capacity"})
			for _, r := range items {
				tw.AppendRow(table.Row{r.ID, r.Name, r.Cuisine, r.City, r.Neighborhood, fmt.Sprintf("%.1f", r.Rating), r.PriceLabel, r.Capacity})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().String("cuisine", "", "filter by cuisine")
	cmd.Flags().String("city", "", "filter by city")
	cmd.Flags().Int("limit", 50, "max rows")
	_ = viper.BindPFlag("cuisine", cmd.Flags().Lookup("cuisine"))
	_ = viper.BindPFlag("city", cmd.Flags().Lookup("city"))
	return cmd
}
