package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/scarlett-vr/casino-core/domain/deck"
	"github.com/scarlett-vr/casino-core/domain/poker"
)

// a 52-card deck covers the board and at most 23 hole pairs
const maxPlayers = (poker.DeckSize - 5) / 2

func dealCmd() *cobra.Command {
	var (
		players int
		bet     uint
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Deal a hand to every player and settle the showdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dealer := poker.NewDealer()
			if cmd.Flags().Changed("seed") {
				dealer = poker.NewDealerFrom(deck.NewSeeded(poker.DeckSize, rand.New(rand.NewSource(seed))))
			}
			board, seats, out, err := dealHand(dealer, players, bet)
			if err != nil {
				return err
			}
			banner()
			printTable(board, seats, out)
			logger.Info("hand settled", "table", cfg.Table, "players", players, "winners", out.Winners)
			return nil
		},
	}
	cmd.Flags().IntVarP(&players, "players", "n", 4, "number of players")
	cmd.Flags().UintVar(&bet, "bet", 100, "chips each player puts in the pot")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed the shuffle for a reproducible hand")
	return cmd
}

// dealHand seats players, deals them and the board, and runs the showdown.
func dealHand(dealer poker.Dealer, players int, bet uint) ([5]poker.Card, []poker.Seat, poker.Outcome, error) {
	if players < 2 || players > maxPlayers {
		return [5]poker.Card{}, nil, poker.Outcome{}, fmt.Errorf("players must be between 2 and %d, got %d", maxPlayers, players)
	}
	seats := make([]poker.Seat, players)
	for i := range seats {
		seats[i] = poker.Seat{
			ID:          fmt.Sprintf("p%d", i+1),
			Name:        fmt.Sprintf("Player %d", i+1),
			Contributed: bet,
		}
	}
	board, err := dealer.DealTable(seats)
	if err != nil {
		return board, nil, poker.Outcome{}, fmt.Errorf("deal: %w", err)
	}
	out, err := poker.Showdown(board, seats)
	if err != nil {
		return board, nil, poker.Outcome{}, fmt.Errorf("showdown: %w", err)
	}
	return board, seats, out, nil
}
