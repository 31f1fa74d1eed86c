package main

import (
	"errors"
	"math/rand"
	"os"
	"testing"

	"github.com/pterm/pterm"

	"github.com/scarlett-vr/casino-core/domain/deck"
	"github.com/scarlett-vr/casino-core/domain/poker"
)

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	os.Exit(m.Run())
}

func run(args ...string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestEvalCommand(t *testing.T) {
	if err := run("eval", "As Ks Qs Js Ts", "2c", "3d"); err != nil {
		t.Fatal(err)
	}
	if err := run("eval", "As", "Ks"); !errors.Is(err, poker.ErrInvalidHandSize) {
		t.Fatalf("expected ErrInvalidHandSize, got %v", err)
	}
	if err := run("eval", "As Ks Qs Js Ts 2c 1d"); !errors.Is(err, poker.ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
}

func TestCategoriesCommand(t *testing.T) {
	if err := run("categories"); err != nil {
		t.Fatal(err)
	}
	data := categoryTable()
	if len(data) != 10 || data[9][1] != "Straight Flush" {
		t.Fatalf("unexpected category table %v", data)
	}
}

func TestDealCommand(t *testing.T) {
	if err := run("deal", "--players", "6", "--seed", "42"); err != nil {
		t.Fatal(err)
	}
	if err := run("deal", "--players", "1"); err == nil {
		t.Fatal("expected error for a single player")
	}
	if err := run("--log-level", "loud", "categories"); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestDealHandConservesChips(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		dealer := poker.NewDealerFrom(deck.NewSeeded(poker.DeckSize, rand.New(rand.NewSource(seed))))
		_, seats, out, err := dealHand(dealer, 5, 40)
		if err != nil {
			t.Fatal(err)
		}
		total := uint(0)
		for _, amount := range out.Awards {
			total += amount
		}
		if total != 200 {
			t.Fatalf("seed %d: awarded %d of 200 chips", seed, total)
		}
		if len(out.Hands) != len(seats) {
			t.Fatalf("seed %d: expected every seat to show, got %d hands", seed, len(out.Hands))
		}
	}
}

func TestDealHandPlayerBounds(t *testing.T) {
	for _, n := range []int{0, 1, maxPlayers + 1} {
		if _, _, _, err := dealHand(poker.NewDealer(), n, 10); err == nil {
			t.Fatalf("expected error for %d players", n)
		}
	}
	if _, _, _, err := dealHand(poker.NewDealer(), maxPlayers, 10); err != nil {
		t.Fatalf("a full table should deal: %v", err)
	}
}
