package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/object"
)

// updateLoading waits for the asset library, or gives up at once when the
// game data cannot be played.
func (g *Game) updateLoading() {
	if g.dataErr != nil {
		g.logger.Error("game data unusable", "err", g.dataErr)
		g.setState(gameOverState{reason: g.dataErr.Error()})
		return
	}
	if g.assets.Ready() {
		g.setState(menuState{})
	}
}

// updateMenu handles the title screen.
func (g *Game) updateMenu(keys input.Keys) {
	if keys.IsKeyDown(input.KeyEscape) {
		g.quit("escape on menu")
		return
	}
	if confirmDown(keys) {
		g.consumeConfirm()
		g.setState(controlsState{})
	}
}

// updateControls starts a fresh run on confirm.
func (g *Game) updateControls(keys input.Keys) {
	if confirmDown(keys) {
		g.consumeConfirm()
		g.startSession()
	}
}

// updateGameOver goes back to the controls screen on confirm. Without
// usable data there is nothing to go back to.
func (g *Game) updateGameOver(keys input.Keys) {
	if g.dataErr != nil {
		return
	}
	if confirmDown(keys) {
		g.consumeConfirm()
		g.setState(controlsState{})
	}
}

// updateLevelClear moves on to the next level, or back to the menu after the last one.
func (g *Game) updateLevelClear(sess *Session, keys input.Keys) {
	if !confirmDown(keys) {
		return
	}
	g.consumeConfirm()
	if next := sess.LevelIndex + 1; next < len(g.data.Levels) {
		g.startLevel(sess, next)
		return
	}
	g.logger.Info("campaign complete", "score", sess.Score)
	g.setState(menuState{})
}

// Draw renders the current phase. The caller presents the frame.
func (g *Game) Draw(r draw.Renderer) {
	r.Clear()

	cx, cy := g.bounds.Width/2, g.bounds.Height/2

	switch s := g.state.(type) {
	case loadingState:
		r.DrawText("Loading...", cx, cy, assets.ColorGray, textSize, draw.AlignCenter)

	case menuState:
		r.DrawText("S K Y R A I D", cx, cy-2*hudLineHeight, assets.ColorYellow, titleSize, draw.AlignCenter)
		r.DrawText("Press ENTER to start", cx, cy+hudLineHeight, assets.ColorWhite, textSize, draw.AlignCenter)
		r.DrawText("Q or ESC to quit", cx, cy+2*hudLineHeight, assets.ColorGray, textSize, draw.AlignCenter)

	case controlsState:
		lines := []string{
			"Arrows or WASD  move",
			"SPACE           fire",
			"Q               quit",
		}
		r.DrawText("CONTROLS", cx, cy-3*hudLineHeight, assets.ColorYellow, titleSize, draw.AlignCenter)
		for i, l := range lines {
			r.DrawText(l, cx, cy+float64(i-1)*hudLineHeight, assets.ColorWhite, textSize, draw.AlignCenter)
		}
		r.DrawText("Press ENTER to launch", cx, cy+3*hudLineHeight, assets.ColorGray, textSize, draw.AlignCenter)

	case playingState:
		g.drawWorld(r, s.Session)
		g.drawHUD(r, s.Session)

	case gameOverState:
		r.DrawText("GAME OVER", cx, cy-2*hudLineHeight, assets.ColorRed, titleSize, draw.AlignCenter)
		if s.reason != "" && g.dataErr != nil {
			r.DrawText(truncate(s.reason, 40), cx, cy, assets.ColorGray, textSize, draw.AlignCenter)
			r.DrawText("Press Q to quit", cx, cy+2*hudLineHeight, assets.ColorWhite, textSize, draw.AlignCenter)
			return
		}
		r.DrawText(fmt.Sprintf("Score: %d", s.score), cx, cy, assets.ColorWhite, textSize, draw.AlignCenter)
		r.DrawText(fmt.Sprintf("Reached level %d", s.level+1), cx, cy+hudLineHeight, assets.ColorGray, textSize, draw.AlignCenter)
		r.DrawText("Press ENTER to try again", cx, cy+3*hudLineHeight, assets.ColorWhite, textSize, draw.AlignCenter)

	case levelClearState:
		g.drawWorld(r, s.Session)
		r.DrawText("LEVEL CLEAR", cx, cy-2*hudLineHeight, assets.ColorGreen, titleSize, draw.AlignCenter)
		r.DrawText(fmt.Sprintf("Score: %d", s.Score), cx, cy, assets.ColorWhite, textSize, draw.AlignCenter)
		prompt := "Press ENTER for the next level"
		if s.LevelIndex+1 >= len(g.data.Levels) {
			prompt = "All levels cleared! Press ENTER"
		}
		r.DrawText(prompt, cx, cy+2*hudLineHeight, assets.ColorWhite, textSize, draw.AlignCenter)
	}
}

// drawWorld draws particles, bullets, enemies and the player, back to front.
func (g *Game) drawWorld(r draw.Renderer, sess *Session) {
	w := &sess.World
	for i := range w.Particles {
		p := &w.Particles[i]
		r.DrawEntity(assets.Sprite{Name: "particle", Color: p.DrawColor()}, p.Pos.X, p.Pos.Y, p.Size, p.Size)
	}
	for i := range w.Bullets {
		b := &w.Bullets[i]
		g.drawObject(r, b.GameObject)
	}
	for _, e := range w.Enemies {
		g.drawObject(r, e.GameObject)
	}
	if sess.Player.Visible() {
		g.drawObject(r, sess.Player.GameObject)
	}
}

func (g *Game) drawObject(r draw.Renderer, o object.GameObject) {
	r.DrawEntity(assets.Lookup(g.assets, o.Image), o.Pos.X, o.Pos.Y, o.Width, o.Height)
}

// drawHUD draws score, level name, the player's health bar and the boss
// health bar while a boss is active.
func (g *Game) drawHUD(r draw.Renderer, sess *Session) {
	w, h := g.bounds.Width, g.bounds.Height

	r.DrawText(fmt.Sprintf("SCORE %d", sess.Score), hudMargin, hudMargin, assets.ColorWhite, textSize, draw.AlignLeft)
	r.DrawText(g.data.Levels[sess.LevelIndex].Name, w-hudMargin, hudMargin, assets.ColorGray, textSize, draw.AlignRight)

	p := sess.Player
	y := h - hudMargin - healthBarHeight/2
	g.drawBar(r, spriteHealthBar, hudMargin, y, healthBarWidth, healthBarHeight, p.Health/p.MaxHealth)

	if sess.BossActive() {
		b := sess.Boss
		barW := w - 2*hudMargin
		g.drawBar(r, spriteBossBar, hudMargin, hudMargin+hudLineHeight, barW, bossBarHeight, b.Health/b.MaxHealth)
	}
}

// drawBar draws a left-anchored bar filled to frac, with its background.
func (g *Game) drawBar(r draw.Renderer, sprite string, left, y, width, height, frac float64) {
	frac = max(0, min(frac, 1))
	r.DrawEntity(assets.Lookup(g.assets, spriteHealthBarBack), left+width/2, y, width, height)
	if fill := width * frac; fill > 0 {
		r.DrawEntity(assets.Lookup(g.assets, sprite), left+fill/2, y, fill, height)
	}
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
