package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/scarlett-vr/casino-core/domain/poker"
)

func banner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("C", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("asino ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("C", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ore", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func prettyCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " - ")
}

func handBox(pool []poker.Card, res poker.Result, desc string) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("Pool: %s", prettyCards(pool))
	info += pterm.Sprintfln("Best: %s", prettyCards(res.Best[:]))
	info += pterm.Sprintfln("Tiebreak: %s", res.Tiebreak)
	if desc != "" {
		info += pterm.Sprintfln("%s", desc)
	}
	return pbox.WithTitle(pterm.LightYellow("|" + strings.ToUpper(res.Name()) + "|")).WithTitleTopCenter().Sprint(info)
}

func categoryTable() pterm.TableData {
	data := pterm.TableData{{"Value", "Category"}}
	for _, c := range poker.Categories() {
		data = append(data, []string{strconv.Itoa(int(c)), poker.CategoryName(c)})
	}
	return data
}

func printTable(board [5]poker.Card, seats []poker.Seat, out poker.Outcome) {
	var panels []pterm.Panel
	for _, s := range seats {
		res, shown := out.Hands[s.ID]
		panels = append(panels, pterm.Panel{Data: seatInfo(s, res, shown)})
	}
	boardPanel := pterm.Panel{Data: boardInfo(board, out.Pots)}
	winnerPanel := pterm.Panel{Data: winnerInfo(seats, out)}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		panels,
		{boardPanel},
		{winnerPanel},
	}).Render()
}

func seatInfo(s poker.Seat, res poker.Result, shown bool) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var active string
	if s.Folded {
		active = pterm.LightRed("Folded")
	} else {
		active = pterm.LightGreen("Active")
	}
	hand := pterm.BgGreen.Sprintf("%s", prettyCards(s.Hole[:]))
	label := ""
	if shown {
		label = res.Name()
	}
	return pbox.WithTitle(s.Name).WithTitleTopLeft().Sprintf("%s\nIn pot: %d\n%s\n%s\n", active, s.Contributed, hand, label)
}

func boardInfo(board [5]poker.Card, pots []poker.Pot) string {
	info := prettyCards(board[:]) + " "
	for i, p := range pots {
		info += " Pot" + strconv.Itoa(i) + ": " + strconv.Itoa(int(p.Amount)) + " |"
	}
	return pterm.BgGreen.Sprint("\n" + info + "\n")
}

func winnerInfo(seats []poker.Seat, out poker.Outcome) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := ""
	for _, s := range seats {
		amount, ok := out.Awards[s.ID]
		if !ok || amount == 0 {
			continue
		}
		if res, shown := out.Hands[s.ID]; shown {
			info += pterm.Sprintfln("%s won %d with %s", pterm.LightCyan(s.Name), amount, res.Name())
		} else {
			info += pterm.Sprintfln("%s won %d Taking down the pot", pterm.LightCyan(s.Name), amount)
		}
	}
	return pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(info)
}
