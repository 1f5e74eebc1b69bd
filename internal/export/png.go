package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"
	"github.com/san-kum/heartcloud/internal/animator"
	"github.com/san-kum/heartcloud/internal/card"
	"github.com/san-kum/heartcloud/internal/heart"
	"github.com/san-kum/heartcloud/internal/viz"
)

type PNGOptions struct {
	Width, Height int
	PointSize     float64
	Background    colorful.Color
}

// Renderer draws frames into a reusable gg context. It satisfies
// animator.Surface so an animator can drive it directly.
type Renderer struct {
	dc    *gg.Context
	opts  PNGOptions
	cloud *heart.PointCloud
	cam   *viz.Camera
	buf   []viz.ProjectedPoint
	err   error
	Drawn int
}

func NewRenderer(cloud *heart.PointCloud, opts PNGOptions) *Renderer {
	if opts.PointSize <= 0 {
		opts.PointSize = 1.5
	}
	return &Renderer{
		dc:    gg.NewContext(opts.Width, opts.Height),
		opts:  opts,
		cloud: cloud,
		cam:   viz.NewCamera(),
	}
}

// Draw renders the cloud under tr. Far points are painted first and
// shrink with depth.
func (r *Renderer) Draw(tr animator.Transform) {
	bg := r.opts.Background.Clamped()
	r.dc.ClearWithColor(gg.RGB(bg.R, bg.G, bg.B))

	r.buf = viz.ProjectCloud(r.buf[:0], r.cloud, tr, r.cam, r.opts.Width, r.opts.Height)
	sort.Slice(r.buf, func(i, j int) bool { return r.buf[i].Depth > r.buf[j].Depth })

	ref := tr.Viewpoint.Length()
	for _, p := range r.buf {
		c := r.cloud.At(p.Index).Color.Clamped()
		size := r.opts.PointSize
		if ref > 0 {
			size *= math.Min(2, ref/p.Depth)
		}
		r.dc.SetRGBA(c.R, c.G, c.B, 0.85)
		r.dc.DrawCircle(float64(p.X), float64(p.Y), size)
		if err := r.dc.Fill(); err != nil && r.err == nil {
			r.err = err
		}
	}
	r.Drawn = len(r.buf)
}

func (r *Renderer) Context() *gg.Context { return r.dc }

// Err returns the first fill error since the renderer was created.
func (r *Renderer) Err() error { return r.err }

// SavePNG writes the current frame. It fails if any earlier draw failed.
func (r *Renderer) SavePNG(path string) error {
	if r.err != nil {
		return fmt.Errorf("draw: %w", r.err)
	}
	return r.dc.SavePNG(path)
}

func (r *Renderer) Close() error { return r.dc.Close() }

// FrameSpec describes an offline render of an animated card.
type FrameSpec struct {
	Dir      string
	Frames   int
	FPS      int
	AcceptAt int // frame index at which the card is accepted; <0 never
	Pointer  func(frame int) animator.PointerState
}

// RenderFrames steps an animator with a manual clock and writes one PNG per
// frame. It returns the written paths.
func RenderFrames(c *card.Card, anim *animator.Animator, spec FrameSpec, opts PNGOptions, log zerolog.Logger) ([]string, error) {
	if spec.Frames <= 0 || spec.FPS <= 0 {
		return nil, fmt.Errorf("frames and fps must be positive, got %d and %d", spec.Frames, spec.FPS)
	}
	if err := os.MkdirAll(spec.Dir, 0755); err != nil {
		return nil, err
	}

	r := NewRenderer(c.Cloud(), opts)
	defer r.Close()
	anim.Attach(r)
	defer anim.Attach(nil)

	clock := &animator.ManualClock{}
	dt := 1.0 / float64(spec.FPS)
	paths := make([]string, 0, spec.Frames)

	for i := 0; i < spec.Frames; i++ {
		if i == spec.AcceptAt {
			c.Accept(clock.Elapsed())
			log.Info().Int("frame", i).Float64("pulse_speed", c.Params().PulseSpeed()).Msg("card accepted")
		}

		ptr := animator.PointerState{}
		if spec.Pointer != nil {
			ptr = spec.Pointer(i)
		}
		tr := anim.StepClock(clock, ptr)

		path := filepath.Join(spec.Dir, fmt.Sprintf("frame_%04d.png", i))
		if err := r.SavePNG(path); err != nil {
			return paths, fmt.Errorf("write frame %d: %w", i, err)
		}
		paths = append(paths, path)
		log.Debug().Int("frame", i).Float64("scale", tr.Scale).Int("points", r.Drawn).Msg("frame written")

		clock.Advance(dt)
	}
	return paths, nil
}
