package oled

import (
	"errors"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/oled/conn"
)

// Conn errors.
var (
	ErrResetPin = errors.New("oled: reset GPIO pin is invalid")
)

// Conn is the register-style bus connection to the display controller.
//
// The controller exposes two registers: a command register that accepts
// single configuration bytes, and a data register that accepts display RAM
// bytes. Writes are assumed reliable per call; the driver adds no retry
// logic of its own.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error

	// WriteReg writes a single byte to a register.
	WriteReg(reg, value byte) error

	// WriteRegBuf writes a buffer of bytes to a register.
	WriteRegBuf(reg byte, p []byte) error
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address.
	Addr uint8

	// Reset pin.
	Reset gpio.PinOut
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3C,
}

type i2cConn struct {
	*conn.I2C
	reset gpio.PinOut
}

// OpenI2C opens a register-style connection over the I²C bus.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}
	if config.Addr == 0 {
		config.Addr = DefaultI2CConfig.Addr
	}

	c, err := conn.OpenI2C(config.Device, config.Addr)
	if err != nil {
		return nil, err
	}

	return &i2cConn{
		I2C:   c,
		reset: config.Reset,
	}, nil
}

func (c *i2cConn) WriteReg(reg, value byte) (err error) {
	_, err = c.I2C.Write([]byte{reg, value})
	return
}

func (c *i2cConn) WriteRegBuf(reg byte, p []byte) (err error) {
	_, err = c.I2C.Write(append([]byte{reg}, p...))
	return
}

func (c *i2cConn) Reset(level gpio.Level) error {
	if c.reset == nil || c.reset == gpio.INVALID {
		return ErrResetPin
	}
	return c.reset.Out(level)
}
