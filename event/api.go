package event

// Emitter stamps events with the current tick before queueing
// Cosmetic events go to Effects when set, so a particle burst cannot push a kill out of Queue
type Emitter struct {
	Queue   *EventQueue
	Effects *EventQueue
	Tick    uint64
}

// Emit pushes an event, no-op without a queue
func (e *Emitter) Emit(t EventType, payload any) {
	if e == nil || e.Queue == nil {
		return
	}
	q := e.Queue
	if e.Effects != nil && t.Cosmetic() {
		q = e.Effects
	}
	q.Push(GameEvent{Type: t, Tick: e.Tick, Payload: payload})
}

// Sound requests an audio cue
func (e *Emitter) Sound(cue Cue, volume, pitchVariance float64) {
	e.Emit(EventSoundRequest, SoundPayload{Cue: cue, Volume: volume, PitchVariance: pitchVariance})
}

// Particles requests cosmetic particles
func (e *Emitter) Particles(x, y float64, count int, color uint32) {
	if count <= 0 {
		return
	}
	e.Emit(EventParticlesRequested, ParticlesPayload{X: x, Y: y, Count: count, Color: color})
}
