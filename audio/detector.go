package audio

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/lixenwraith/void-swarm/parameter"
)

// sinkCandidate is a CLI player able to read raw s16le from stdin
type sinkCandidate struct {
	kind BackendType
	tool string
	args func(rate, channels string) []string
}

// sinkCandidates is ordered by preference; the heavier players come last
var sinkCandidates = []sinkCandidate{
	{BackendPulse, "pacat", func(rate, ch string) []string {
		return []string{"--raw", "--playback", "--format=s16le", "--rate=" + rate, "--channels=" + ch, "--latency-msec=50"}
	}},
	{BackendPipeWire, "pw-cat", func(rate, ch string) []string {
		return []string{"--playback", "--format=s16", "--rate=" + rate, "--channels=" + ch, "--latency=50ms", "-"}
	}},
	{BackendALSA, "aplay", func(rate, ch string) []string {
		return []string{"-q", "-t", "raw", "-f", "S16_LE", "-r", rate, "-c", ch}
	}},
	{BackendSoX, "play", func(rate, ch string) []string {
		return []string{"-q", "-t", "raw", "-e", "signed", "-b", "16", "-c", ch, "-r", rate, "-", "-d"}
	}},
	{BackendFFplay, "ffplay", func(rate, ch string) []string {
		return []string{
			"-nodisp", "-autoexit", "-loglevel", "quiet",
			"-probesize", "32", "-analyzeduration", "0",
			"-f", "s16le", "-ac", ch, "-ar", rate, "-i", "pipe:0",
		}
	}},
}

// ossDevice is written directly on FreeBSD when no player is installed
const ossDevice = "/dev/dsp"

// DetectBackend returns the first available raw PCM sink on PATH
func DetectBackend(sampleRate int) (*BackendConfig, error) {
	return detectWith(sampleRate, exec.LookPath, func(path string) bool {
		if runtime.GOOS != "freebsd" {
			return false
		}
		_, err := os.Stat(path)
		return err == nil
	})
}

// detectWith resolves candidates through lookPath, falling back to an OSS device check
func detectWith(sampleRate int, lookPath func(string) (string, error), hasDevice func(string) bool) (*BackendConfig, error) {
	rate := strconv.Itoa(sampleRate)
	channels := strconv.Itoa(parameter.AudioChannels)

	for _, c := range sinkCandidates {
		path, err := lookPath(c.tool)
		if err != nil {
			continue
		}
		return &BackendConfig{
			Type: c.kind,
			Name: c.kind.String(),
			Path: path,
			Args: c.args(rate, channels),
		}, nil
	}

	if hasDevice(ossDevice) {
		return &BackendConfig{Type: BackendOSS, Name: BackendOSS.String(), Path: ossDevice}, nil
	}
	return nil, ErrNoAudioDevice
}
