package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"glastor/adapters/memory"
	"glastor/app"
	"glastor/domain/core"
	"glastor/domain/persona"
	"glastor/domain/reltime"
	"glastor/internal"
	"glastor/internal/config"
	"glastor/internal/container"
	"glastor/ports"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glastor-cli",
		Short: "Glastor CLI for inspecting persona allocation and testimonials",
	}

	rootCmd.AddCommand(
		newResolveCmd(),
		newTestimonialsCmd(),
		newSeedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newResolveCmd resolves personas against the configured fast store, so runs
// are stable the same way the API is.
func newResolveCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "resolve [product-id]",
		Short: "Resolve the four persona keys assigned to a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := core.ParseProductID(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c, err := container.New(cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			keys := c.Testimonials.ResolvePersonas(cmd.Context(), productID, name)
			for slot, k := range keys {
				n, r := k.Split()
				fmt.Printf("slot %d: %s (%s)\n", slot, n, r)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product display name (part of the seed)")
	return cmd
}

// newTestimonialsCmd renders the full cards without touching any durable
// store: an ephemeral in-memory fast store and the null secondary.
func newTestimonialsCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "testimonials [product-id]",
		Short: "Preview the synthesized testimonials for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := core.ParseProductID(args[0])
			if err != nil {
				return err
			}

			svc := app.NewTestimonialService(
				persona.NewPool(),
				memory.NewFastStore(),
				memory.NewNoopAssignmentStore(),
				ports.SystemClock(),
				internal.NewLogger(internal.LogLevelError),
			)
			defer svc.Close()

			cards := svc.GetTestimonials(cmd.Context(), productID, name)
			now := time.Now()
			for _, t := range cards {
				fmt.Printf("%-14s %-13s %d★  %s\n", t.Name, t.Role, t.Rating, reltime.Format(t.CreatedAt.Time(), now))
				fmt.Printf("    %s\n", t.Comment)
			}

			data, err := json.MarshalIndent(cards, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product display name (part of the seed)")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "seed [product-id]",
		Short: "Print the allocation seed for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := persona.NewSeed(args[0], name)
			pool := persona.NewPool()
			fmt.Printf("seed:  %d\n", seed)
			fmt.Printf("start: %d of %d\n", int(seed)%pool.Size(), pool.Size())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product display name (part of the seed)")
	return cmd
}
