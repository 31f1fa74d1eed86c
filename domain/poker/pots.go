package poker

// Seat is one player at the table at showdown time.
type Seat struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	Hole        [2]Card `json:"hole"`
	Contributed uint    `json:"contributed"` // chips put in the pot over the whole hand
	Folded      bool    `json:"folded"`
}

// Pot is a main or side pot.
type Pot struct {
	Amount   uint  `json:"amount"`
	Eligible []int `json:"eligible"` // seat indices that can win this pot
}

// BuildPots computes the main pot and side pots from the seats'
// contributions. Each layer takes the smallest remaining contribution from
// every seat still contributing; folded seats pay into the layers they
// reached but are never eligible. A layer nobody live can win is folded into
// the pot below it. When every pot ends up with a single eligible seat they
// collapse into one pot for that seat.
func BuildPots(seats []Seat) []Pot {
	var pots []Pot

	// copy contributions
	bets := make([]uint, len(seats))
	for i, s := range seats {
		bets[i] = s.Contributed
	}

	for {
		// seats with remaining contribution
		contributors := []int{}
		for i, b := range bets {
			if b > 0 {
				contributors = append(contributors, i)
			}
		}
		if len(contributors) == 0 {
			break
		}

		minBet := bets[contributors[0]]
		for _, idx := range contributors {
			if bets[idx] < minBet {
				minBet = bets[idx]
			}
		}

		potAmount := uint(0)
		for _, idx := range contributors {
			potAmount += minBet
			bets[idx] -= minBet
		}

		eligible := []int{}
		for _, idx := range contributors {
			if !seats[idx].Folded {
				eligible = append(eligible, idx)
			}
		}

		// a layer paid only by folded seats has no one to win it, so it
		// goes to the pot below instead of standing as an empty side pot
		if len(eligible) == 0 && len(pots) > 0 {
			pots[len(pots)-1].Amount += potAmount
			continue
		}
		pots = append(pots, Pot{
			Amount:   potAmount,
			Eligible: eligible,
		})
	}

	if len(pots) > 1 && onePlayerRemained(pots) {
		total := uint(0)
		for _, p := range pots {
			total += p.Amount
		}
		pots = []Pot{{
			Amount:   total,
			Eligible: []int{pots[0].Eligible[0]},
		}}
	}
	return pots
}

// onePlayerRemained reports whether every pot has the same single eligible seat.
func onePlayerRemained(pots []Pot) bool {
	for _, pot := range pots {
		if len(pot.Eligible) != 1 || pot.Eligible[0] != pots[0].Eligible[0] {
			return false
		}
	}
	return true
}
