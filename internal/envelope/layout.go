package envelope

// DL envelope size (mm).
const (
	Width  = 220.0
	Height = 110.0
)

// Sender block, top left.
const (
	senderX    = 10.0
	senderY    = 10.0
	senderSize = 9.0
)

// Recipient block, roughly centred and nudged right of the window line.
const (
	recipientX    = 95.0
	recipientY    = 48.0
	recipientSize = 12.0
)

// ptToMM converts points to millimetres (1pt ≈ 0.3528mm).
const ptToMM = 0.3528

// lineSpacing is the baseline step as a multiple of the font size.
const lineSpacing = 1.3
