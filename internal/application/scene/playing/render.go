package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/tubejump/internal/application/state"
	"github.com/younwookim/tubejump/internal/domain/entity"
)

// Colors
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorPlatform    = color.RGBA{80, 80, 100, 255}
	colorPlayer      = color.RGBA{100, 200, 100, 255}
	colorWalker      = color.RGBA{200, 100, 100, 255}
	colorTurret      = color.RGBA{170, 90, 160, 255}
	colorFlyer       = color.RGBA{220, 140, 60, 255}
	colorBullet      = color.RGBA{255, 200, 100, 255}
	colorEnemyBullet = color.RGBA{255, 100, 100, 255}
	colorDoorOpen    = color.RGBA{120, 90, 60, 255}
	colorDoorLocked  = color.RGBA{90, 60, 40, 255}
	colorTube        = color.RGBA{60, 170, 90, 255}
	colorTubeHidden  = color.RGBA{60, 170, 90, 90}
	colorHealthBG    = color.RGBA{60, 60, 60, 255}
	colorHealthFG    = color.RGBA{100, 200, 100, 255}
	colorHitbox      = color.RGBA{255, 255, 255, 60}
	colorFlash       = color.RGBA{255, 255, 255, 255}
)

var itemColors = map[string]color.RGBA{
	"key":    {255, 215, 0, 255},
	"health": {230, 70, 90, 255},
	"coin":   {250, 190, 40, 255},
	"haste":  {90, 200, 250, 255},
	"power":  {250, 120, 40, 255},
}

var tintColors = map[string]color.RGBA{
	string(entity.TintDust):   {150, 140, 120, 255},
	string(entity.TintSpark):  {255, 240, 150, 255},
	string(entity.TintMuzzle): {255, 220, 120, 255},
	string(entity.TintHit):    {255, 90, 90, 255},
	string(entity.TintJump):   {200, 220, 255, 255},
}

// Draw renders the current frame (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	sx, sy := p.feedback.offset()
	camX := p.world.CameraX + sx
	camY := sy

	for _, s := range p.world.Snapshot() {
		p.drawSnapshot(screen, s, camX, camY)
	}
	if p.world.Debug {
		p.drawDebug(screen, camX, camY)
	}

	p.drawUI(screen)

	if a := p.feedback.flashAlpha; a > 0 {
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{255, 255, 255, uint8(a * 160)})
	}

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\nESC: resume  Q: quit")
	case state.StateReplayDone:
		p.drawOverlay(screen, color.RGBA{0, 0, 40, 160}, fmt.Sprintf("REPLAY COMPLETE\nLevel %d  Score %d\nQ: quit", p.world.Level+1, p.world.Score))
	}
}

func (p *Playing) drawSnapshot(screen *ebiten.Image, s entity.Snapshot, camX, camY float64) {
	x, y := s.Box.X-camX, s.Box.Y-camY
	if x+s.Box.W < 0 || x > float64(p.screenW) {
		return
	}

	switch s.Kind {
	case entity.KindPlatform:
		ebitenutil.DrawRect(screen, x, y, s.Box.W, s.Box.H, colorPlatform)

	case entity.KindPlayer:
		c := colorPlayer
		// blink while invulnerable
		if s.Flash > 0 && (s.Flash/4)%2 == 0 {
			c = color.RGBA{255, 255, 255, 200}
		}
		ebitenutil.DrawRect(screen, x, y, s.Box.W, s.Box.H, c)
		eyeX := x + s.Box.W/2 + float64(s.Facing)*6 - 2
		ebitenutil.DrawRect(screen, eyeX, y+10, 4, 4, colorBG)

	case entity.KindWalker, entity.KindTurret, entity.KindFlyer:
		c := enemyColor(s.Kind)
		if s.Flash > 0 {
			c = colorFlash
		}
		bob := 0.0
		if s.Kind == entity.KindFlyer {
			bob = math.Sin(s.Phase) * 2
		}
		ebitenutil.DrawRect(screen, x, y+bob, s.Box.W, s.Box.H, c)

	case entity.KindBullet:
		ebitenutil.DrawRect(screen, x, y, s.Box.W, s.Box.H, colorBullet)

	case entity.KindEnemyBullet:
		ebitenutil.DrawRect(screen, x, y, s.Box.W, s.Box.H, colorEnemyBullet)

	case entity.KindItem:
		bob := math.Sin(s.Phase) * 3
		ebitenutil.DrawRect(screen, x, y+bob, s.Box.W, s.Box.H, itemColors[s.Variant])

	case entity.KindDoor:
		c := colorDoorOpen
		if s.Variant == "locked" {
			c = colorDoorLocked
		}
		ebitenutil.DrawRect(screen, x, y, s.Box.W, s.Box.H, c)
		glow := uint8(120 + 100*math.Sin(s.Phase))
		ebitenutil.DrawRect(screen, x+s.Box.W-10, y+s.Box.H/2, 4, 4, color.RGBA{255, 215, 0, glow})

	case entity.KindTube:
		c := colorTube
		if s.Variant == "hidden" {
			c = colorTubeHidden
		}
		ebitenutil.DrawRect(screen, x-4, y, s.Box.W+8, 10, c)
		ebitenutil.DrawRect(screen, x, y+10, s.Box.W, s.Box.H-10, c)

	case entity.KindParticle:
		c := tintColors[s.Variant]
		c.A = uint8(255 * ease.OutQuad(float32(s.Fade), 0, 1, 1))
		ebitenutil.DrawRect(screen, x, y, s.Box.W, s.Box.H, c)
	}
}

func enemyColor(k entity.Kind) color.RGBA {
	switch k {
	case entity.KindTurret:
		return colorTurret
	case entity.KindFlyer:
		return colorFlyer
	default:
		return colorWalker
	}
}

func (p *Playing) drawDebug(screen *ebiten.Image, camX, camY float64) {
	pb := p.world.Player.Bounds()
	ebitenutil.DrawRect(screen, pb.X-camX, pb.Y-camY, pb.W, pb.H, colorHitbox)
	for _, e := range p.world.Enemies {
		b := e.Bounds()
		ebitenutil.DrawRect(screen, b.X-camX, b.Y-camY, b.W, b.H, colorHitbox)
	}

	pl := p.world.Player
	text := fmt.Sprintf("FPS: %.1f  Frame: %d  Seed: %d\nPos: (%.1f, %.1f)  Vel: (%.2f, %.2f)  Ground: %v\nEnemies: %d  Bullets: %d/%d  Particles: %d",
		ebiten.ActualFPS(), p.world.Frame, p.world.Seed(),
		pl.X, pl.Y, pl.VX, pl.VY, pl.OnGround,
		len(p.world.Enemies), len(p.world.Bullets), len(p.world.EnemyBullets), len(p.world.Particles))
	ebitenutil.DebugPrintAt(screen, text, 10, 40)

	for i, w := range p.world.Warnings {
		ebitenutil.DebugPrintAt(screen, w, 10, 100+i*16)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	pl := p.world.Player

	barX, barY, barW, barH := 10.0, 10.0, 100.0, 10.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ratio := 0.0
	if pl.MaxHealth > 0 {
		ratio = math.Max(0, float64(pl.Health)/float64(pl.MaxHealth))
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, colorHealthFG)

	hud := fmt.Sprintf("Level %d/%d %s  Score: %d  Keys: %d",
		p.world.Level+1, p.world.LevelCount(), p.world.LevelName(), p.world.Score, pl.Keys)
	if pl.Powerup != entity.PowerupNone {
		hud += fmt.Sprintf("  %s %.1fs", pl.Powerup, float64(pl.PowerupTimer)/60)
	}
	ebitenutil.DebugPrintAt(screen, hud, 120, 8)

	switch p.state {
	case state.StateReplaying:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames()), p.screenW-130, 8)
	default:
		if p.recorder != nil && p.recorder.IsRecording() {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REC %d", p.recorder.FrameCount()), p.screenW-80, 8)
		}
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-20)
}
