package main

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/adage3d/adage"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

func main() {
	log.Println("Initializing scene...")
	scene := adage.NewScene()

	scene.AddCubeAt(adage.Vector3{X: -2})
	scene.AddCubeAt(adage.Vector3{X: 2})
	scene.AddCubeAt(adage.Vector3{Y: 2, Z: -2})

	scene.AddLight(adage.NewDirectionalLight(
		adage.Vector3{X: -0.5, Y: -1, Z: -0.5},
		adage.Vector3{X: 1, Y: 0.9, Z: 0.8},
		0.8,
	))
	scene.AddLight(adage.NewDirectionalLight(
		adage.Vector3{X: 0.5, Z: -1},
		adage.Vector3{X: 0.6, Y: 0.7, Z: 1},
		0.4,
	))
	scene.AddLight(adage.NewPointLight(
		adage.Vector3{Y: 4, Z: 2},
		adage.Vector3{X: 1, Y: 0.5, Z: 0.2},
		2.0,
		10.0,
	))
	scene.AddLight(adage.NewSpotLight(
		adage.Vector3{X: -4, Y: 3, Z: 4},
		adage.Vector3{X: 1, Y: -0.5, Z: -1},
		adage.Vector3{X: 0.9, Y: 0.2, Z: 0.9},
		3.0,
		15.0,
		math.Pi/6,
		math.Pi/4,
	))

	scene.SetCameraPosition(adage.Vector3{Z: 8})
	scene.SetCameraTarget(adage.Vector3{})

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Adage 3D")
	if err := ebiten.RunGame(adage.NewGame(scene, screenWidth, screenHeight)); err != nil {
		log.Fatal(err)
	}
}
