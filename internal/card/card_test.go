package card_test

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/heartcloud/internal/animator"
	"github.com/san-kum/heartcloud/internal/card"
	"github.com/san-kum/heartcloud/internal/heart"
)

var _ = Describe("Card", func() {
	var (
		cloud  *heart.PointCloud
		params *animator.Params
		c      *card.Card
	)

	BeforeEach(func() {
		cfg := heart.DefaultSamplerConfig()
		cfg.Count = 300
		res, err := heart.Sample(cfg, rand.New(rand.NewSource(7)))
		Expect(err).NotTo(HaveOccurred())
		cloud = res.Cloud
		params = animator.DefaultParams()
		c = card.New(cloud, params, card.DefaultOptions())
	})

	It("starts pending with the question script", func() {
		Expect(c.Mode()).To(Equal(card.ModePending))
		Expect(c.Accepted()).To(BeFalse())
		Expect(c.Script()).To(Equal(card.DefaultOptions().Question))
	})

	Describe("Accept", func() {
		It("recolors every point and speeds up the pulse", func() {
			before := params.PulseSpeed()
			c.Accept(2.5)

			Expect(c.Mode()).To(Equal(card.ModeAccepted))
			Expect(c.AcceptedAt()).To(Equal(2.5))
			Expect(params.PulseSpeed()).To(BeNumerically(">", before))
			for _, p := range cloud.Points() {
				Expect(p.Color).To(Equal(heart.AcceptColor))
			}
			Expect(cloud.Len()).To(Equal(300))
		})

		It("recolors regardless of the initial colors", func() {
			cloud.Recolor(colorful.Color{R: 0.1, G: 0.2, B: 0.3})
			c.Accept(0)
			for _, p := range cloud.Points() {
				Expect(p.Color).To(Equal(heart.AcceptColor))
			}
		})

		It("has no effect the second time", func() {
			c.Accept(1)
			speed := params.PulseSpeed()
			c.Accept(5)
			Expect(params.PulseSpeed()).To(Equal(speed))
			Expect(c.AcceptedAt()).To(Equal(1.0))
		})

		It("runs hooks once", func() {
			calls := 0
			c.OnAccept(func() { calls++ })
			c.Accept(0)
			c.Accept(0)
			Expect(calls).To(Equal(1))
		})

		It("switches the script to the answer", func() {
			c.Accept(0)
			Expect(c.Script()).To(Equal(card.DefaultOptions().Answer))
		})

		It("falls back to the default boost when the configured one would not speed up", func() {
			opts := card.DefaultOptions()
			opts.PulseBoost = 0.5
			c = card.New(cloud, params, opts)
			before := params.PulseSpeed()
			c.Accept(0)
			Expect(params.PulseSpeed()).To(BeNumerically("~", before*card.DefaultPulseBoost, 1e-12))
		})
	})
})

var _ = Describe("Typewriter", func() {
	lines := []string{"Hello", "héart"}

	It("reveals nothing at the start", func() {
		tw := card.NewTypewriter(lines, 10)
		got, done := tw.Visible(0)
		Expect(got).To(BeEmpty())
		Expect(done).To(BeFalse())
	})

	It("reveals runes across line boundaries", func() {
		tw := card.NewTypewriter(lines, 10)
		got, done := tw.Visible(0.7)
		Expect(got).To(Equal([]string{"Hello", "hé"}))
		Expect(done).To(BeFalse())
	})

	It("grows monotonically and completes at its duration", func() {
		tw := card.NewTypewriter(lines, 10)
		Expect(tw.Duration()).To(BeNumerically("~", 1.0, 1e-12))
		prev := 0
		for t := 0.0; t < 1.2; t += 0.05 {
			n := len([]rune(tw.Text(t)))
			Expect(n).To(BeNumerically(">=", prev))
			prev = n
		}
		got, done := tw.Visible(tw.Duration())
		Expect(done).To(BeTrue())
		Expect(got).To(Equal(lines))
	})
})

var _ = Describe("Dodger", func() {
	area := card.Rect{X: 0, Y: 0, W: 40, H: 10}

	It("keeps the button inside the area and moves it", func() {
		d := card.NewDodger(area, 6, 1, rand.New(rand.NewSource(3)))
		for i := 0; i < 200; i++ {
			old := d.Button()
			b := d.Flee()
			Expect(b).NotTo(Equal(old))
			Expect(b.X).To(BeNumerically(">=", area.X))
			Expect(b.Y).To(BeNumerically(">=", area.Y))
			Expect(b.X + b.W).To(BeNumerically("<=", area.X+area.W))
			Expect(b.Y + b.H).To(BeNumerically("<=", area.Y+area.H))
		}
	})

	It("only flees when hovered", func() {
		d := card.NewDodger(area, 6, 1, rand.New(rand.NewSource(3)))
		b := d.Button()
		Expect(d.Hover(b.X-1, b.Y-1)).To(BeFalse())
		Expect(d.Button()).To(Equal(b))
		Expect(d.Hover(b.X, b.Y)).To(BeTrue())
		Expect(d.Button()).NotTo(Equal(b))
	})

	It("stays put when there is no room", func() {
		d := card.NewDodger(card.Rect{W: 6, H: 1}, 6, 1, rand.New(rand.NewSource(1)))
		b := d.Button()
		Expect(d.Flee()).To(Equal(b))
	})
})

var _ = Describe("Confetti", func() {
	It("bursts and eventually clears", func() {
		c := card.NewConfetti(rand.New(rand.NewSource(2)))
		c.Burst(0.5, 0.5, 40)
		Expect(c.Len()).To(Equal(40))
		for i := 0; i < 400; i++ {
			c.Step(1.0 / 60)
		}
		Expect(c.Len()).To(BeZero())
	})
})
