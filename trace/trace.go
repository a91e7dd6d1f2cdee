package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/skullblast/engine"
	"github.com/lixenwraith/skullblast/event"
	"github.com/lixenwraith/skullblast/vmath"
)

// FormatVersion is bumped on any incompatible layout change
const FormatVersion = 1

var (
	ErrVersion  = errors.New("unsupported trace version")
	ErrNoHeader = errors.New("trace header missing")
)

// Header opens every trace stream
type Header struct {
	Version int          `msgpack:"version"`
	LevelID int          `msgpack:"level"`
	Seed    uint64       `msgpack:"seed"`
	Path    []vmath.Vec2 `msgpack:"path"`
	Width   float64      `msgpack:"width"`
	Height  float64      `msgpack:"height"`
}

// NewHeader describes the engine being recorded
func NewHeader(e *engine.Engine) Header {
	lvl := e.Level()
	return Header{
		Version: FormatVersion,
		LevelID: lvl.ID,
		Seed:    lvl.Seed,
		Path:    e.Path(),
		Width:   lvl.PlayArea.Width,
		Height:  lvl.PlayArea.Height,
	}
}

// Frame is one recorded snapshot
type Frame struct {
	Index    int             `msgpack:"i"`
	Snapshot engine.Snapshot `msgpack:"s"`
}

// Recorder appends msgpack-encoded frames to a writer
// Debug stream only, never replayed into an engine
type Recorder struct {
	enc    *msgpack.Encoder
	frames int
}

// NewRecorder writes the header and returns a recorder positioned for frames
func NewRecorder(w io.Writer, h Header) (*Recorder, error) {
	h.Version = FormatVersion
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("write trace header: %w", err)
	}
	return &Recorder{enc: enc}, nil
}

// Record encodes one snapshot as the next frame
func (r *Recorder) Record(s engine.Snapshot) error {
	f := Frame{Index: r.frames, Snapshot: s}
	if err := r.enc.Encode(&f); err != nil {
		return fmt.Errorf("write frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written
func (r *Recorder) Frames() int {
	return r.frames
}

// Reader decodes a trace stream frame by frame
type Reader struct {
	dec    *msgpack.Decoder
	Header Header
}

// NewReader reads and checks the header
func NewReader(rd io.Reader) (*Reader, error) {
	dec := msgpack.NewDecoder(rd)
	var h Header
	if err := dec.Decode(&h); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("read trace header: %w", err)
	}
	if h.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	return &Reader{dec: dec, Header: h}, nil
}

// Next returns the next frame, or io.EOF at the end of the stream
func (r *Reader) Next() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("read frame: %w", err)
	}
	return f, nil
}

// ReadAll decodes a whole stream
func ReadAll(rd io.Reader) (Header, []Frame, error) {
	r, err := NewReader(rd)
	if err != nil {
		return Header{}, nil, err
	}
	var frames []Frame
	for {
		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			return r.Header, frames, nil
		}
		if err != nil {
			return r.Header, frames, err
		}
		frames = append(frames, f)
	}
}

// Summary aggregates event counts and the final score of a run
type Summary struct {
	Frames      int
	Shots       int
	Merges      int
	Clears      int
	Cleared     int // Balls removed by clears
	ChainResets int
	Breaches    int
	BestChain   int
	FinalTotal  int
}

// Add folds one snapshot into the summary
func (s *Summary) Add(snap engine.Snapshot) {
	s.Frames++
	for _, ev := range snap.Events {
		switch ev.Type {
		case event.EventShot:
			s.Shots++
		case event.EventMerge:
			s.Merges++
		case event.EventClear:
			s.Clears++
			s.Cleared += ev.Count
		case event.EventChainReset:
			s.ChainResets++
		case event.EventBreach:
			s.Breaches++
		}
	}
	s.BestChain = max(s.BestChain, snap.ChainCount)
	s.FinalTotal = snap.Total
}

// Summarize folds frames into a Summary
func Summarize(frames []Frame) Summary {
	var s Summary
	for _, f := range frames {
		s.Add(f.Snapshot)
	}
	return s
}
