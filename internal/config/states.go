package config

import "drawfetch/internal/draw"

// Default returns the built-in state table.
//
// Alias vocabulary differs per page family: New Jersey pages say "Day" where
// New York says "Midday", and Georgia runs a genuine third Night drawing. For
// two-slot states "night" is folded into the evening alias set; it only
// becomes its own slot where the state actually draws three times.
func Default() Config {
	return Config{
		States: map[string]StateConfig{
			"ny": {
				Name: "New York",
				Slots: []SlotConfig{
					{
						Slot:    draw.SlotMidday,
						Aliases: []string{"midday", "daytime"},
						Pick3URLs: []string{
							"https://www.lotteryusa.com/new-york/midday-numbers/",
							"https://www.lottery.net/new-york/midday-numbers",
						},
						Pick4URLs: []string{
							"https://www.lotteryusa.com/new-york/midday-win-4/",
							"https://www.lottery.net/new-york/midday-win-4",
						},
					},
					{
						Slot:    draw.SlotEvening,
						Aliases: []string{"evening", "night", "tonight"},
						Pick3URLs: []string{
							"https://www.lotteryusa.com/new-york/numbers/",
							"https://www.lottery.net/new-york/numbers",
						},
						Pick4URLs: []string{
							"https://www.lotteryusa.com/new-york/win-4/",
							"https://www.lottery.net/new-york/win-4",
						},
					},
				},
			},
			"nj": {
				Name: "New Jersey",
				Slots: []SlotConfig{
					{
						Slot:    draw.SlotMidday,
						Aliases: []string{"midday", "day"},
						Pick3URLs: []string{
							"https://www.lotteryusa.com/new-jersey/midday-pick-3/",
							"https://www.lottery.net/new-jersey/midday-pick-3",
						},
						Pick4URLs: []string{
							"https://www.lotteryusa.com/new-jersey/midday-pick-4/",
							"https://www.lottery.net/new-jersey/midday-pick-4",
						},
					},
					{
						Slot:    draw.SlotEvening,
						Aliases: []string{"evening", "night"},
						Pick3URLs: []string{
							"https://www.lotteryusa.com/new-jersey/pick-3/",
							"https://www.lottery.net/new-jersey/pick-3",
						},
						Pick4URLs: []string{
							"https://www.lotteryusa.com/new-jersey/pick-4/",
							"https://www.lottery.net/new-jersey/pick-4",
						},
					},
				},
			},
			"ga": {
				Name: "Georgia",
				Slots: []SlotConfig{
					{
						Slot:    draw.SlotMidday,
						Aliases: []string{"midday", "day"},
						Pick3URLs: []string{
							"https://www.lotteryusa.com/georgia/midday-3/",
							"https://www.lottery.net/georgia/cash-3-midday",
						},
						Pick4URLs: []string{
							"https://www.lotteryusa.com/georgia/midday-4/",
							"https://www.lottery.net/georgia/cash-4-midday",
						},
					},
					{
						Slot:    draw.SlotEvening,
						Aliases: []string{"evening"},
						Pick3URLs: []string{
							"https://www.lotteryusa.com/georgia/cash-3/",
							"https://www.lottery.net/georgia/cash-3-evening",
						},
						Pick4URLs: []string{
							"https://www.lotteryusa.com/georgia/cash-4/",
							"https://www.lottery.net/georgia/cash-4-evening",
						},
					},
					{
						Slot:    draw.SlotNight,
						Aliases: []string{"night"},
						Pick3URLs: []string{
							"https://www.lotteryusa.com/georgia/night-3/",
							"https://www.lottery.net/georgia/cash-3-night",
						},
						Pick4URLs: []string{
							"https://www.lotteryusa.com/georgia/night-4/",
							"https://www.lottery.net/georgia/cash-4-night",
						},
					},
				},
			},
			"fl": {
				Name: "Florida",
				Slots: []SlotConfig{
					{
						Slot:    draw.SlotMidday,
						Aliases: []string{"midday", "day"},
						Pick3URLs: []string{
							"https://www.lotteryusa.com/florida/midday-pick-3/",
							"https://www.lottery.net/florida/pick-3-midday",
						},
						Pick4URLs: []string{
							"https://www.lotteryusa.com/florida/midday-pick-4/",
							"https://www.lottery.net/florida/pick-4-midday",
						},
					},
					{
						Slot:    draw.SlotEvening,
						Aliases: []string{"evening", "night"},
						Pick3URLs: []string{
							"https://www.lotteryusa.com/florida/pick-3/",
							"https://www.lottery.net/florida/pick-3-evening",
						},
						Pick4URLs: []string{
							"https://www.lotteryusa.com/florida/pick-4/",
							"https://www.lottery.net/florida/pick-4-evening",
						},
					},
				},
			},
			"tx": {
				Name: "Texas",
				Slots: []SlotConfig{
					{
						Slot:    draw.SlotMidday,
						Aliases: []string{"day", "midday"},
						Pick3URLs: []string{
							"https://www.lotteryusa.com/texas/day-pick-3/",
							"https://www.lottery.net/texas/pick-3-day",
						},
						Pick4URLs: []string{
							"https://www.lotteryusa.com/texas/day-daily-4/",
							"https://www.lottery.net/texas/daily-4-day",
						},
					},
					{
						Slot:    draw.SlotEvening,
						Aliases: []string{"evening"},
						Pick3URLs: []string{
							"https://www.lotteryusa.com/texas/pick-3/",
							"https://www.lottery.net/texas/pick-3-evening",
						},
						Pick4URLs: []string{
							"https://www.lotteryusa.com/texas/daily-4/",
							"https://www.lottery.net/texas/daily-4-evening",
						},
					},
					{
						Slot:    draw.SlotNight,
						Aliases: []string{"night"},
						Pick3URLs: []string{
							"https://www.lotteryusa.com/texas/night-pick-3/",
							"https://www.lottery.net/texas/pick-3-night",
						},
						Pick4URLs: []string{
							"https://www.lotteryusa.com/texas/night-daily-4/",
							"https://www.lottery.net/texas/daily-4-night",
						},
					},
				},
			},
		},
	}
}
