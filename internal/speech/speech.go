// Package speech provides the optional voice collaborators: text-to-speech
// synthesis and audio transcription. Both are capability interfaces the host
// wires up or leaves nil; the matcher core never sees them, and every failure
// degrades to skipping the voice step.
package speech

import "context"

// Synthesizer renders text as spoken audio (mp3 bytes).
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// Recognizer transcribes a recorded audio file to text. Capturing the audio
// (microphone handling, timeouts) is the host's job.
type Recognizer interface {
	Transcribe(ctx context.Context, audioPath, lang string) (string, error)
}
