package oled

// Registers of the SSD1306 register-style serial interface.
const (
	regCommand = 0x00
	regData    = 0x40
)

// SSD1306 commands.
const (
	setMemoryMode         = 0x20
	setColumnAddr         = 0x21
	setPageAddr           = 0x22
	setStartLine          = 0x40
	setContrast           = 0x81
	setChargePump         = 0x8D
	setSegmentRemap       = 0xA1
	setDisplayAllOnResume = 0xA4
	setNormalDisplay      = 0xA6
	setInvertDisplay      = 0xA7
	setMultiplexRatio     = 0xA8
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setComScanDec         = 0xC8
	setDisplayOffset      = 0xD3
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVComDetect         = 0xDB
)

const (
	defaultWidth  = 128
	defaultHeight = 64

	// maxTransferSize is the hard payload ceiling of a single bus
	// transaction; Update never issues a larger data write.
	maxTransferSize = 16
)

// initSequence returns the power-up command sequence. The order is
// significant and the whole sequence must complete before the first update.
func initSequence(height int, clockDiv, comPins byte) []byte {
	return []byte{
		setDisplayOff,
		setDisplayClockDiv, clockDiv,
		setMultiplexRatio, byte(height - 1),
		setDisplayOffset, 0x00,
		setStartLine | 0x00,
		setChargePump, 0x14,
		setMemoryMode, 0x00, // horizontal addressing
		setSegmentRemap,
		setComScanDec,
		setComPins, comPins,
		setContrast, 0xCF,
		setPrecharge, 0xF1,
		setVComDetect, 0x40,
		setDisplayAllOnResume,
		setNormalDisplay,
		setDisplayOn,
	}
}
