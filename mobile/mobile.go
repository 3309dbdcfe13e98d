//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
// Build with the mobile tag:
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.phanxgames.yuletide -o build/yuletide.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/Yuletide.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/phanxgames/yuletide"
)

func init() {
	cfg := yuletide.DefaultConfig()
	// Asset paths are relative to the app bundle; missing files fall back
	// to a silent track and a placeholder card image.
	scene, err := yuletide.NewScene(cfg)
	if err != nil {
		log.Fatalf("[yuletide] mobile: %v", err)
	}
	mobile.SetGame(scene)
}

// Dummy is an exported no-op so ebitenmobile recognizes the package.
func Dummy() {}
