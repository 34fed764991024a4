package audio

import (
	"errors"
)

// BackendType identifies the audio backend
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
)

// String returns the backend tool name
func (b BackendType) String() string {
	switch b {
	case BackendPulse:
		return "pacat"
	case BackendPipeWire:
		return "pw-cat"
	case BackendALSA:
		return "aplay"
	case BackendSoX:
		return "sox"
	case BackendFFplay:
		return "ffplay"
	case BackendOSS:
		return "oss"
	}
	return "unknown"
}

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Sentinel errors
var (
	ErrNoAudioDevice  = errors.New("no compatible audio device found")
	ErrPipeClosed     = errors.New("audio pipe closed")
	ErrAlreadyRunning = errors.New("audio engine already running")
)
