package main

const (
	titleHeight  = 1 // screen rows above the document
	statusHeight = 1 // screen rows below the document
	wheelStep    = 3
)

// PNG export cell size in pixels.
const (
	charWidth  = 8.0
	charHeight = 16.0
)

const (
	defaultPNGName = "netcanvas.png"
	defaultTXTName = "netcanvas.txt"
)
