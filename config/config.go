package config

import "image/color"

// Config holds window-level values shared by every system.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig contains all player-related tuning values.
//
// MoveStep, Gravity and JumpStrength are applied once per tick regardless of
// elapsed time. Every duration is in seconds.
type PlayerConfig struct {
	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Movement
	MoveStep     float64 `yaml:"move_step"`
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`

	// Health in half-heart units
	MaxHealth int `yaml:"max_health"`

	// Damage response
	KnockbackX            float64 `yaml:"knockback_x"`
	KnockbackY            float64 `yaml:"knockback_y"`
	KnockbackDuration     float64 `yaml:"knockback_duration"`
	InvincibilityDuration float64 `yaml:"invincibility_duration"`
	FlashInterval         float64 `yaml:"flash_interval"`

	FallSampleInterval float64 `yaml:"fall_sample_interval"`
	DeathRotationSpeed float64 `yaml:"death_rotation_speed"` // rad/s

	InventorySlots int `yaml:"inventory_slots"`
}

// PlatformConfig contains platform geometry, the disappearing lifecycle and
// debris tuning.
type PlatformConfig struct {
	Height        float64 `yaml:"height"`
	DefaultLength float64 `yaml:"default_length"`

	CountdownDuration float64 `yaml:"countdown_duration"`
	ReappearDuration  float64 `yaml:"reappear_duration"`

	// Debris
	ParticleCount   int     `yaml:"particle_count"`
	ParticleMinLife float64 `yaml:"particle_min_life"`
	ParticleMaxLife float64 `yaml:"particle_max_life"`
	ParticleGravity float64 `yaml:"particle_gravity"` // units/s^2
	ParticleSpeedX  float64 `yaml:"particle_speed_x"` // max |vx|, units/s
	ParticleMinUp   float64 `yaml:"particle_min_up"`  // units/s
	ParticleMaxUp   float64 `yaml:"particle_max_up"`  // units/s
	ParticleSize    float64 `yaml:"particle_size"`

	// Distance attenuation for the crack and break sounds
	SoundMinDistance float64 `yaml:"sound_min_distance"`
	SoundMaxDistance float64 `yaml:"sound_max_distance"`

	Color            color.RGBA `yaml:"-"`
	DisappearingTint color.RGBA `yaml:"-"`
}

// MonsterConfig contains patrol and detection tuning.
type MonsterConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // units/s

	SightVerticalBand float64 `yaml:"sight_vertical_band"`
	SightMargin       float64 `yaml:"sight_margin"`

	FacingDamage float64 `yaml:"facing_damage"`
	BehindDamage float64 `yaml:"behind_damage"`
}

// GhostConfig contains chase/return tuning.
type GhostConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	DefaultRadius float64 `yaml:"default_radius"`
	ChaseSpeed    float64 `yaml:"chase_speed"`  // units/s
	ReturnSpeed   float64 `yaml:"return_speed"` // units/s
	Smoothing     float64 `yaml:"smoothing"`    // lerp factor per tick
	ContactDamage float64 `yaml:"contact_damage"`

	HoverAmplitude float64 `yaml:"hover_amplitude"`
	HoverFrequency float64 `yaml:"hover_frequency"`
}

// ItemConfig contains key and door geometry.
type ItemConfig struct {
	KeyWidth   float64 `yaml:"key_width"`
	KeyHeight  float64 `yaml:"key_height"`
	DoorWidth  float64 `yaml:"door_width"`
	DoorHeight float64 `yaml:"door_height"`

	// Cosmetic
	BobHeight      float64 `yaml:"bob_height"`
	BobDuration    float64 `yaml:"bob_duration"`
	DoorOpenTime   float64 `yaml:"door_open_time"`
	KeyFrameCount  int     `yaml:"key_frame_count"`
	KeyFrameLength float64 `yaml:"key_frame_length"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)

	// Shake applied when the player is hurt
	ShakeIntensity float64 `yaml:"shake_intensity"` // pixels
	ShakeDuration  float64 `yaml:"shake_duration"`  // seconds
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin    float64 `yaml:"margin"`
	HeartSize float64 `yaml:"heart_size"`
	SlotSize  float64 `yaml:"slot_size"`
}

// MenuConfig contains title and settings menu layout values
type MenuConfig struct {
	TitleY     float64 `yaml:"title_y"`
	StartY     float64 `yaml:"start_y"`
	ItemHeight float64 `yaml:"item_height"`
	ItemGap    float64 `yaml:"item_gap"`
}

// Tuning groups every tunable section so it can be decoded from and encoded
// to a single YAML document.
type Tuning struct {
	Window   *Config         `yaml:"window"`
	Player   *PlayerConfig   `yaml:"player"`
	Platform *PlatformConfig `yaml:"platform"`
	Monster  *MonsterConfig  `yaml:"monster"`
	Ghost    *GhostConfig    `yaml:"ghost"`
	Item     *ItemConfig     `yaml:"item"`
	Camera   *CameraConfig   `yaml:"camera"`
	HUD      *HUDConfig      `yaml:"hud"`
	Menu     *MenuConfig     `yaml:"menu"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Platform PlatformConfig
var Monster MonsterConfig
var Ghost GhostConfig
var Item ItemConfig
var Camera CameraConfig
var HUD HUDConfig
var Menu MenuConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Background   = color.RGBA{R: 15, G: 25, B: 50, A: 255}
	Stone        = color.RGBA{R: 120, G: 110, B: 100, A: 255}
	CrackedStone = color.RGBA{R: 170, G: 130, B: 90, A: 255}
)

func init() {
	Reset()
}

// Reset restores every section to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "JumpScape",
	}

	Player = PlayerConfig{
		Width:  40,
		Height: 60,

		MoveStep:     3,
		Gravity:      0.6,
		JumpStrength: -15,

		MaxHealth: 2, // one heart

		KnockbackX:            6,
		KnockbackY:            -8,
		KnockbackDuration:     0.4,
		InvincibilityDuration: 1.4,
		FlashInterval:         0.2,

		FallSampleInterval: 0.2,
		DeathRotationSpeed: 4,

		InventorySlots: 5,
	}

	Platform = PlatformConfig{
		Height:        20,
		DefaultLength: 100,

		CountdownDuration: 3.0,
		ReappearDuration:  5.0,

		ParticleCount:   8,
		ParticleMinLife: 1.0,
		ParticleMaxLife: 2.5,
		ParticleGravity: 600,
		ParticleSpeedX:  120,
		ParticleMinUp:   100,
		ParticleMaxUp:   260,
		ParticleSize:    6,

		SoundMinDistance: 20,
		SoundMaxDistance: 500,

		Color:            Stone,
		DisappearingTint: CrackedStone,
	}

	Monster = MonsterConfig{
		Width:  40,
		Height: 40,
		Speed:  100,

		SightVerticalBand: 80,
		SightMargin:       200,

		FacingDamage: 1.0,
		BehindDamage: 0.5,
	}

	Ghost = GhostConfig{
		Width:         40,
		Height:        40,
		DefaultRadius: 150,
		ChaseSpeed:    150,
		ReturnSpeed:   100,
		Smoothing:     0.2,
		ContactDamage: 0.5,

		HoverAmplitude: 5,
		HoverFrequency: 2,
	}

	Item = ItemConfig{
		KeyWidth:   30,
		KeyHeight:  30,
		DoorWidth:  60,
		DoorHeight: 90,

		BobHeight:      6,
		BobDuration:    0.6,
		DoorOpenTime:   0.5,
		KeyFrameCount:  4,
		KeyFrameLength: 0.15,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		ShakeIntensity:  6,
		ShakeDuration:   0.3,
	}

	HUD = HUDConfig{
		Margin:    10,
		HeartSize: 28,
		SlotSize:  36,
	}

	Menu = MenuConfig{
		TitleY:     160,
		StartY:     260,
		ItemHeight: 28,
		ItemGap:    14,
	}
}

// Current returns a Tuning view pointing at the live configuration.
func Current() Tuning {
	return Tuning{
		Window:   C,
		Player:   &Player,
		Platform: &Platform,
		Monster:  &Monster,
		Ghost:    &Ghost,
		Item:     &Item,
		Camera:   &Camera,
		HUD:      &HUD,
		Menu:     &Menu,
	}
}
