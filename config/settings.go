package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type Settings struct {
	Window  WindowSettings  `json:"window"`
	Terrain TerrainSettings `json:"terrain"`
	Player  PlayerSettings  `json:"player"`
	Server  ServerSettings  `json:"server"`
}

type WindowSettings struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// TerrainSettings names every generation constant so consumers share one
// source of truth. Spacing in particular must be identical for the mesh
// builder and the height sampler, or rendered terrain and physics queries
// drift apart.
type TerrainSettings struct {
	GridWidth      int     `json:"gridWidth"`
	GridHeight     int     `json:"gridHeight"`
	Scale          float64 `json:"scale"`
	Spacing        float64 `json:"spacing"`
	ElevationRange float64 `json:"elevationRange"`
	Octaves        int     `json:"octaves"`
	Persistence    float64 `json:"persistence"`
	BaseFrequency  float64 `json:"baseFrequency"`
	BaseAmplitude  float64 `json:"baseAmplitude"`
	Noise          string  `json:"noise"` // trig, perlin, simplex
	Seed           int64   `json:"seed"`
}

type PlayerSettings struct {
	CapsuleHeight     float64 `json:"capsuleHeight"`
	CapsuleRadius     float64 `json:"capsuleRadius"`
	MoveSpeed         float64 `json:"moveSpeed"`
	EyeOffset         float64 `json:"eyeOffset"`
	MouseSensitivity  float64 `json:"mouseSensitivity"`
	Gravity           float64 `json:"gravity"`
	FlatnessThreshold float64 `json:"flatnessThreshold"`
	MaxStep           float64 `json:"maxStep"`
}

type ServerSettings struct {
	Port             int `json:"port"`
	UpdateIntervalMs int `json:"updateIntervalMs"`
}

// Defaults returns the built-in configuration, matching a 256x256 grid with
// 10-unit spacing and the trig fractal field.
func Defaults() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  1600,
			Height: 900,
			Title:  "Terrain Walker",
		},
		Terrain: TerrainSettings{
			GridWidth:      256,
			GridHeight:     256,
			Scale:          0.15,
			Spacing:        10.0,
			ElevationRange: 50.0,
			Octaves:        6,
			Persistence:    0.7,
			BaseFrequency:  0.5,
			BaseAmplitude:  64.0,
			Noise:          "trig",
			Seed:           1,
		},
		Player: PlayerSettings{
			CapsuleHeight:     4.0,
			CapsuleRadius:     1.0,
			MoveSpeed:         10.0,
			EyeOffset:         0.5,
			MouseSensitivity:  0.1,
			Gravity:           -9.8,
			FlatnessThreshold: 1.0,
			MaxStep:           0.05,
		},
		Server: ServerSettings{
			Port:             8080,
			UpdateIntervalMs: 100,
		},
	}
}

// Load reads settings from path, falling back to Defaults when the file
// does not exist. Fields absent from the file keep their default values.
func Load(path string) (Settings, error) {
	settings := Defaults()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No %s found, using defaults\n", path)
			return settings, nil
		}
		return settings, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&settings); err != nil {
		return settings, fmt.Errorf("error parsing %s: %v", path, err)
	}

	fmt.Printf("Loaded settings: %dx%d grid, %s noise\n",
		settings.Terrain.GridWidth, settings.Terrain.GridHeight, settings.Terrain.Noise)
	return settings, nil
}
