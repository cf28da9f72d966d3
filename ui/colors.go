package ui

import (
	"image/color"

	"runedrag/engine"
)

var backgroundColor = color.NRGBA{R: 45, G: 109, B: 162, A: 255}
var dragBackgroundColor = color.NRGBA{R: 0, G: 0, B: 127, A: 255}
var matchedBackgroundColor = color.NRGBA{R: 127, G: 0, B: 0, A: 255}
var emptyColor = color.NRGBA{R: 0, G: 0, B: 0, A: 0}
var gridLineColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var textColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var pathColor = color.NRGBA{R: 255, G: 255, B: 255, A: 90}
var hintColor = color.NRGBA{R: 255, G: 165, B: 0, A: 127}

var redColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
var yellowColor = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
var greenColor = color.NRGBA{R: 0, G: 220, B: 0, A: 255}
var blueColor = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
var purpleColor = color.NRGBA{R: 150, G: 0, B: 150, A: 255}

func getColor(kind engine.Kind) color.NRGBA {
	switch kind {
	case engine.Empty:
		return emptyColor
	case engine.Car:
		return redColor
	case engine.Bus:
		return yellowColor
	case engine.Bike:
		return greenColor
	case engine.Scooter:
		return blueColor
	case engine.Train:
		return purpleColor
	default:
		return emptyColor
	}
}
