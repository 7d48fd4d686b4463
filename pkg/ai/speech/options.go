package speech

// TranscriptionOption represents a configuration option for speech-to-text operations
type TranscriptionOption func(*TranscriptionOptions)

type TranscriptionOptions struct {
	Model    string
	Language string
	// Prompt biases the transcription towards domain vocabulary
	Prompt   string
	FileName string
}

func WithSTTModel(model string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.Model = model
	}
}

// WithLanguage sets the expected ISO-639-1 language of the audio
func WithLanguage(language string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.Language = language
	}
}

func WithPrompt(prompt string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.Prompt = prompt
	}
}

// WithFileName names the uploaded audio part
func WithFileName(name string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.FileName = name
	}
}
