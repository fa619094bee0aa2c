package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 24)    // Deep space
	RgbHUDText    = tcell.NewRGBColor(255, 255, 255) // White
	RgbHUDDim     = tcell.NewRGBColor(140, 140, 160) // Gray labels
	RgbHUDLine    = tcell.NewRGBColor(0, 200, 0)     // Green separator

	RgbPlayer1 = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbPlayer2 = tcell.NewRGBColor(100, 150, 255) // Normal blue
	RgbShipHit = tcell.NewRGBColor(255, 80, 80)   // Flash while destroyed

	RgbEnemyLight   = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbEnemyMedium  = tcell.NewRGBColor(0, 200, 200)   // Cyan
	RgbEnemyHeavy   = tcell.NewRGBColor(255, 0, 255)   // Magenta
	RgbEnemyMinion  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbEnemySpecial = tcell.NewRGBColor(255, 50, 50)   // Red

	RgbBoss         = tcell.NewRGBColor(180, 50, 50)   // Dark red
	RgbBossShielded = tcell.NewRGBColor(140, 190, 255) // Bright blue shield
	RgbBossHPFill   = tcell.NewRGBColor(255, 80, 80)   // Red bar
	RgbBossHPEmpty  = tcell.NewRGBColor(60, 20, 20)    // Dark bar

	RgbPlayerBullet = tcell.NewRGBColor(255, 255, 255) // White
	RgbEnemyBullet  = tcell.NewRGBColor(255, 255, 0)   // Yellow

	RgbItemDuration = tcell.NewRGBColor(255, 192, 203) // Pink
	RgbItemCoin     = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbItemLife     = tcell.NewRGBColor(50, 255, 50)   // Green

	RgbExplosion      = tcell.NewRGBColor(255, 255, 200) // Yellow-white flash
	RgbExplosionEnemy = tcell.NewRGBColor(255, 165, 0)   // Orange flash

	RgbMessage      = tcell.NewRGBColor(255, 255, 0)   // Yellow notices
	RgbToast        = tcell.NewRGBColor(0, 0, 0)       // Dark text on toast
	RgbToastBg      = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbOverlayBg    = tcell.NewRGBColor(30, 30, 60)    // Dim panel
	RgbSelected     = tcell.NewRGBColor(255, 165, 0)   // Orange selection
	RgbDebug        = tcell.NewRGBColor(180, 180, 180) // Debug overlay text
	RgbLastLifeTint = tcell.NewRGBColor(40, 8, 16)     // Background on last life
)

// Base style with the playfield background
func baseStyle() tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground)
}

func fg(c tcell.Color) tcell.Style {
	return baseStyle().Foreground(c)
}
