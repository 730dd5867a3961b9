//go:build !cgo

package midi

// without cgo there is no rtmidi driver, so port lists stay empty
const DriverAvailable = false
