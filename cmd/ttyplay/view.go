package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/tubejump/internal/application/world"
	"github.com/younwookim/tubejump/internal/domain/entity"
)

// Pixels per terminal cell. Cells are roughly twice as tall as wide.
const (
	cellW = 10.0
	cellH = 20.0
)

type cell struct {
	ch    rune
	style tcell.Style
}

var itemGlyphs = map[string]rune{
	"key":    'k',
	"health": '+',
	"coin":   'c',
	"haste":  '>',
	"power":  '!',
}

var (
	stylePlatform = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFlash    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleBullet   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleItem     = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleDoor     = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	styleTube     = tcell.StyleDefault.Foreground(tcell.ColorLimeGreen)
	styleParticle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func glyph(s entity.Snapshot) (rune, tcell.Style) {
	switch s.Kind {
	case entity.KindPlatform:
		return '#', stylePlatform
	case entity.KindPlayer:
		if s.Flash > 0 && (s.Flash/4)%2 == 0 {
			return '@', styleFlash
		}
		return '@', stylePlayer
	case entity.KindWalker, entity.KindTurret, entity.KindFlyer:
		r := []rune(s.Kind.String())[0]
		if s.Flash > 0 {
			return r, styleFlash
		}
		return r, styleEnemy
	case entity.KindBullet:
		return '-', styleBullet
	case entity.KindEnemyBullet:
		return '*', styleEnemy
	case entity.KindItem:
		if r, ok := itemGlyphs[s.Variant]; ok {
			return r, styleItem
		}
		return '?', styleItem
	case entity.KindDoor:
		if s.Variant == "locked" {
			return 'D', styleDoor
		}
		return 'd', styleDoor
	case entity.KindTube:
		if s.Variant == "hidden" {
			return 'o', styleTube
		}
		return 'O', styleTube
	case entity.KindParticle:
		return '.', styleParticle
	}
	return ' ', tcell.StyleDefault
}

// rasterize maps snapshots onto a cols x rows grid. Later snapshots overwrite
// earlier ones, so the world's draw order carries over.
func rasterize(snaps []entity.Snapshot, camX float64, cols, rows int) [][]cell {
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' ', style: tcell.StyleDefault}
		}
	}

	for _, s := range snaps {
		ch, style := glyph(s)
		x0 := int(math.Floor((s.Box.X - camX) / cellW))
		x1 := max(x0+1, int(math.Ceil((s.Box.Right()-camX)/cellW)))
		y0 := int(math.Floor(s.Box.Y / cellH))
		y1 := max(y0+1, int(math.Ceil(s.Box.Bottom()/cellH)))

		for y := max(y0, 0); y < min(y1, rows); y++ {
			for x := max(x0, 0); x < min(x1, cols); x++ {
				grid[y][x] = cell{ch: ch, style: style}
			}
		}
	}
	return grid
}

func hudLine(w *world.World) string {
	p := w.Player
	line := fmt.Sprintf(" Level %d/%d %s  HP %d/%d  Keys %d  Score %d",
		w.Level+1, w.LevelCount(), w.LevelName(), p.Health, p.MaxHealth, p.Keys, w.Score)
	if p.Powerup != entity.PowerupNone {
		line += fmt.Sprintf("  %s %ds", p.Powerup, p.PowerupTimer/60)
	}
	if w.Debug {
		line += fmt.Sprintf("  [frame %d seed %d]", w.Frame, w.Seed())
	}
	return line
}

func draw(screen tcell.Screen, w *world.World) {
	screen.Clear()
	cols, rows := screen.Size()

	for x, r := range []rune(hudLine(w)) {
		if x >= cols {
			break
		}
		screen.SetContent(x, 0, r, nil, styleHUD)
	}

	grid := rasterize(w.Snapshot(), w.CameraX, cols, rows-1)
	for y, line := range grid {
		for x, c := range line {
			screen.SetContent(x, y+1, c.ch, nil, c.style)
		}
	}
	screen.Show()
}
