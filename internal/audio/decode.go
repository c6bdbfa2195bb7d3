package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// ErrUnsupportedFormat indicates a file extension no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// ErrEmptyAsset indicates a file that decoded to no samples.
var ErrEmptyAsset = errors.New("audio file has no samples")

type decodeFunc func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(ref string) (decodeFunc, error) {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".wav":
		return func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(rc)
		}, nil
	case ".mp3":
		return mp3.Decode, nil
	case ".ogg", ".oga":
		return vorbis.Decode, nil
	case ".flac":
		return func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return flac.Decode(rc)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(ref))
	}
}

// Supported reports whether ref has an extension the player can decode.
func Supported(ref string) bool {
	_, err := decoderFor(ref)
	return err == nil
}

// decodeBuffer reads the whole file at ref into memory at the given rate.
func decodeBuffer(ref string, rate beep.SampleRate) (*beep.Buffer, error) {
	decode, err := decoderFor(ref)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}

	streamer, format, err := decode(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(ref), err)
	}
	defer func() { _ = streamer.Close() }()

	var source beep.Streamer = streamer
	if format.SampleRate != rate {
		source = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buffer.Append(source)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(ref), err)
	}
	if buffer.Len() == 0 {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(ref), ErrEmptyAsset)
	}
	return buffer, nil
}
