package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/scarlett-vr/casino-core/domain/poker"
)

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "eval CARD...",
		Short:   "Evaluate a 7-card pool, e.g. eval As Kd 7c 7h 2s 9d 7s",
		Args:    cobra.MinimumNArgs(1),
		Example: "  casino eval \"As Ks Qs Js Ts 2c 3d\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := poker.ParseCards(args...)
			if err != nil {
				return err
			}
			res, err := poker.Evaluate(cards)
			if err != nil {
				return err
			}
			desc, err := poker.Describe(cards)
			if err != nil {
				logger.Warn("describe failed", "error", err)
			}
			logger.Debug("evaluated pool", "cards", cards, "category", res.Category, "ranks", res.Ranks)
			pterm.Println(handBox(cards, res, desc))
			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the hand categories from weakest to strongest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return pterm.DefaultTable.WithHasHeader().WithData(categoryTable()).Render()
		},
	}
}
