package speech

import (
	"context"
	"io"
	"path"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/fsx"
	"github.com/Abraxas-365/talentdesk/pkg/fsx/fsxlocal"
)

// Transcriber represents an interface for speech-to-text operations
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, opts ...TranscriptionOption) (Transcript, error)
}

// Transcript represents the result of a speech-to-text operation
type Transcript struct {
	Text string
	// LanguageCode is the detected language, when the provider reports it
	LanguageCode string
	// Duration of the audio in seconds, when the provider reports it
	Duration float64
}

type AudioFormat string

const (
	AudioFormatMP3  AudioFormat = "mp3"
	AudioFormatMP4  AudioFormat = "mp4"
	AudioFormatM4A  AudioFormat = "m4a"
	AudioFormatWAV  AudioFormat = "wav"
	AudioFormatOGG  AudioFormat = "ogg"
	AudioFormatWEBM AudioFormat = "webm"
)

// STTClient transcribe audio directo o leído desde el almacenamiento de archivos
type STTClient struct {
	transcriber Transcriber
	fs          fsx.FileReader
}

// NewSTTClient creates a client reading files relative to the working directory
func NewSTTClient(transcriber Transcriber) *STTClient {
	c := &STTClient{transcriber: transcriber}
	if localFS, err := fsxlocal.NewLocalFileSystem(""); err == nil {
		c.fs = localFS
	}
	return c
}

// WithFileSystem configures the client to use the specified file system
func (c *STTClient) WithFileSystem(fs fsx.FileReader) *STTClient {
	c.fs = fs
	return c
}

func (c *STTClient) Transcribe(ctx context.Context, audio io.Reader, opts ...TranscriptionOption) (Transcript, error) {
	return c.transcriber.Transcribe(ctx, audio, opts...)
}

// TranscribeFile transcribes a stored recording; the file name is passed to the
// provider so it can infer the audio format.
func (c *STTClient) TranscribeFile(ctx context.Context, filePath string, opts ...TranscriptionOption) (Transcript, error) {
	if c.fs == nil {
		return Transcript{}, errx.New("speech client has no file system", errx.TypeInternal)
	}

	stream, err := c.fs.ReadFileStream(ctx, filePath)
	if err != nil {
		return Transcript{}, err
	}
	defer stream.Close()

	opts = append([]TranscriptionOption{WithFileName(path.Base(filePath))}, opts...)
	return c.transcriber.Transcribe(ctx, stream, opts...)
}
