package internal

const (
	BOT_VERSION = "1.0.0"

	DEFAULT_CONFIG_PATH = "./data/config.toml"

	// Serial defaults for the CO2 sensor bridge. The sensor answers the
	// 4-byte "CO2\n" command with an ASCII "CO2:<ppm>" line.
	DEFAULT_SERIAL_PORT = "/dev/ttyUSB0"
	DEFAULT_BAUD_RATE   = 9600

	// Milliseconds. The settle delay is a property of the device firmware,
	// not a tunable the caller should shrink.
	DEFAULT_SETTLE_DELAY_MS = 1000
	DEFAULT_READ_TIMEOUT_MS = 2000
)
