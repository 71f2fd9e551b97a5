package menu

import (
	"context"
	"time"
)

var campaign = []string{
	"Nowadays, racing isn't just about speed... it's about life itself. " +
		"You grew up watching others pass you by, always staring at the backs of those ahead of you. " +
		"But this time, everything changes: you're finally getting your chance. " +
		"A chance to blow smoke in their faces as they watch you speed past. " +
		"You get to choose a team, a team that will carve a path for you, one that leads to the horizon at the world's end. " +
		"This might not be the start of your life's race, but it is the beginning of a new one: your race toward success.",

	"While you're feeling excited and optimistic about this new journey, others are already training, " +
		"pushing themselves until the wind nearly tears their helmets off. " +
		"You realize you're at the back of the pack. This may be a new chapter, but it doesn't mean you're already catching up. " +
		"The pressure hits you, heavy and sharp, almost like riding a spacecraft at light speed. " +
		"But as a driver, panic is your enemy. You need to stay calm. " +
		"Every corner, every braking point, every burst of acceleration decides whether you'll win or fall behind. " +
		"You carry your team's hopes, and you cannot let them down. " +
		"When the time comes, you must show them what you're made of. Slam that gas pedal like there's no tomorrow.",

	"And now, as the engine rumbles beneath you and the world holds its breath, " +
		"the lights on the starting grid begin to glow red one by one. " +
		"Your heart syncs with each beep, your focus narrowing into a single line stretching endlessly before you. " +
		"This is no longer just a race. It is your proving ground, your story waiting to be written. " +
		"Every rival beside you carries their own dreams, but today, you refuse to let anyone outrun yours. " +
		"The lights go out, the roar erupts, and in that explosive moment, your true journey begins.",
}

const credits = "CJR Racing was built by Rendel V. Tuliao and Chriz John Bonifacio, its main programmers. " +
	"Thanks to the friends who tested it, cheered for it and occasionally shouted at the computer in frustration. " +
	"Special thanks to Cyril Alvarez for lending us a living room, snacks and Wi-Fi. " +
	"Without them this project would still be a sketch!"

// Campaign prints the campaign story with the typewriter effect.
func (g *Game) Campaign(ctx context.Context) error {
	g.screen("Campaign")
	for i, para := range campaign {
		if i > 0 {
			g.p.printf("\n\n")
		}
		if err := g.typeText(ctx, para); err != nil {
			return err
		}
	}
	g.p.println()
	return g.p.pause("\nPress Enter to return to the main menu...")
}

// Credits prints the credits with the typewriter effect.
func (g *Game) Credits(ctx context.Context) error {
	g.screen("Credits")
	if err := g.typeText(ctx, credits); err != nil {
		return err
	}
	g.p.println()
	return g.p.pause("\nPress Enter to return to the main menu...")
}

// typeText writes text one rune at a time, waiting typeDelay between runes.
func (g *Game) typeText(ctx context.Context, text string) error {
	if g.typeDelay <= 0 {
		g.p.printf("%s", text)
		return nil
	}

	ticker := time.NewTicker(g.typeDelay)
	defer ticker.Stop()
	for _, r := range text {
		g.p.printf("%c", r)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
