// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TPS          = 60 // один тик симуляции на кадр

	// Снаряд (взлетающий фейерверк)
	ProjectileTrailLength   = 3
	ProjectileSpeed         = 10.0 // пикселей за тик
	ProjectileAcceleration  = 1.05
	ProjectileBrightnessMin = 50.0
	ProjectileBrightnessMax = 70.0
	ProjectileLineWidth     = 1.0
	MarkerRadiusInitial     = 10.0 // первый кадр рисует крупную вспышку, затем сброс к минимуму
	MarkerRadiusMin         = 1.0
	MarkerRadiusMax         = 8.0
	MarkerRadiusStep        = 0.3

	// Осколок (искра после взрыва)
	FragmentTrailLength   = 5
	FragmentSpeedMin      = 12.0
	FragmentSpeedMax      = 15.0
	FragmentFriction      = 0.95
	FragmentGravity       = 1.5
	FragmentHueSpread     = 20.0
	FragmentBrightnessMin = 50.0
	FragmentBrightnessMax = 80.0
	FragmentDecayMin      = 0.010
	FragmentDecayMax      = 0.020
	FragmentLineWidth     = 3.0
	FragmentsPerBurst     = 100

	// Палитра: оттенок дрейфует и циклически переходит от потолка к полу
	HueStart   = 120.0
	HueStep    = 0.5
	HueCeiling = 30.0
	HueFloor   = -10.0

	Saturation = 100.0 // проценты
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	HUDTextColor    = color.RGBA{240, 240, 240, 255}
	PausedTextColor = color.RGBA{255, 215, 0, 255}
)
