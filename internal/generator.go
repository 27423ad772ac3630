package internal

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/nocturnecity/play-assets/pkg"
)

// Generator produces the listing assets described by a plan. Every step stops at the
// first error; files written by earlier steps are left in place.
type Generator struct {
	plan    pkg.Plan
	root    string
	fonts   *FontResolver
	metrics *Metrics
	log     *StdLog
}

func NewGenerator(plan pkg.Plan, root string, fonts *FontResolver, metrics *Metrics, stdLog *StdLog) *Generator {
	return &Generator{
		plan:    plan,
		root:    root,
		fonts:   fonts,
		metrics: metrics,
		log:     stdLog,
	}
}

func (g *Generator) Run() (*pkg.Report, error) {
	if err := g.EnsureDirs(); err != nil {
		return nil, err
	}
	report := &pkg.Report{TargetDir: g.TargetDir()}

	icon, err := g.GenerateIcon()
	if err != nil {
		return nil, err
	}
	report.Assets = append(report.Assets, icon)

	feature, err := g.GenerateFeatureGraphic()
	if err != nil {
		return nil, err
	}
	report.Assets = append(report.Assets, feature)

	for _, ff := range g.plan.FormFactors {
		shots, err := g.GenerateScreenshotSet(g.formFactorDir(ff), ff.Width, ff.Height, g.plan.ScreenSources)
		if err != nil {
			return nil, fmt.Errorf("generate %s screenshots error: %w", ff.Name, err)
		}
		report.Assets = append(report.Assets, shots...)
	}

	return report, nil
}

// EnsureDirs creates the target directory and every form factor directory.
func (g *Generator) EnsureDirs() error {
	dirs := []string{g.TargetDir()}
	for _, ff := range g.plan.FormFactors {
		dirs = append(dirs, g.formFactorDir(ff))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir %s error: %w", dir, err)
		}
	}
	return nil
}

func (g *Generator) GenerateIcon() (res pkg.ResultSize, err error) {
	start := time.Now()
	defer func() { g.metrics.Observe(KindIcon, start, err) }()

	opt := g.plan.Icon
	src, err := openImage(g.path(opt.Source))
	if err != nil {
		return res, fmt.Errorf("generate icon error: %w", err)
	}
	icon := imaging.Resize(src, opt.Width, opt.Height, imaging.Lanczos)

	return g.save(withAlpha(icon), filepath.Join(g.TargetDir(), opt.Output))
}

func (g *Generator) GenerateFeatureGraphic() (res pkg.ResultSize, err error) {
	start := time.Now()
	defer func() { g.metrics.Observe(KindFeature, start, err) }()

	opt := g.plan.Feature
	canvas := VerticalGradient(opt.Width, opt.Height, toRGBA(opt.Gradient.Top), toRGBA(opt.Gradient.Bottom))
	dc := gg.NewContextForRGBA(canvas)

	for _, accent := range opt.Accents {
		drawAccent(dc, accent)
	}

	logo, err := openImage(g.path(opt.Logo.Source))
	if err != nil {
		return res, fmt.Errorf("generate feature graphic error: %w", err)
	}
	dc.DrawImage(imaging.Resize(logo, opt.Logo.Width, opt.Logo.Height, imaging.Lanczos), opt.Logo.X, opt.Logo.Y)

	g.drawLabel(dc, opt.Title)
	g.drawLabel(dc, opt.Subtitle)

	return g.save(flatten(dc.Image()), filepath.Join(g.TargetDir(), opt.Output))
}

// GenerateScreenshotSet writes one width x height screenshot per source into dir, named
// and ordered as given.
func (g *Generator) GenerateScreenshotSet(dir string, width, height int, sources []pkg.ScreenSource) ([]pkg.ResultSize, error) {
	ratio := float64(width) / float64(height)
	results := make([]pkg.ResultSize, 0, len(sources))
	for _, src := range sources {
		res, err := g.generateScreenshot(src, dir, width, height, ratio)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (g *Generator) generateScreenshot(src pkg.ScreenSource, dir string, width, height int, ratio float64) (res pkg.ResultSize, err error) {
	start := time.Now()
	defer func() { g.metrics.Observe(KindScreenshot, start, err) }()

	img, err := openImage(g.path(src.Source))
	if err != nil {
		return res, fmt.Errorf("generate screenshot error: %w", err)
	}
	cropped := CenterCrop(flatten(img), ratio)
	g.log.Debug("Cropped %s to %dx%d", src.Source, cropped.Bounds().Dx(), cropped.Bounds().Dy())
	out := imaging.Resize(cropped, width, height, imaging.Lanczos)

	return g.save(out, filepath.Join(dir, src.Output))
}

func (g *Generator) drawLabel(dc *gg.Context, label pkg.TextLabel) {
	if label.Text == "" {
		return
	}
	face, _ := g.fonts.Face(label.Size, label.Bold)
	defer face.Close()

	dc.SetFontFace(face)
	dc.SetRGBA255(int(label.Fill.R), int(label.Fill.G), int(label.Fill.B), int(label.Fill.A))
	// gg draws from the baseline; labels are anchored at their top-left corner
	baseline := label.Y + face.Metrics().Ascent.Ceil()
	dc.DrawString(label.Text, float64(label.X), float64(baseline))
}

func drawAccent(dc *gg.Context, a pkg.Accent) {
	cx, cy := float64(a.X0+a.X1)/2, float64(a.Y0+a.Y1)/2
	rx, ry := float64(a.X1-a.X0)/2, float64(a.Y1-a.Y0)/2
	dc.DrawEllipse(cx, cy, rx, ry)
	dc.SetRGBA255(int(a.Fill.R), int(a.Fill.G), int(a.Fill.B), int(a.Fill.A))
	dc.Fill()
}

func (g *Generator) save(img image.Image, path string) (pkg.ResultSize, error) {
	if err := savePNG(img, path); err != nil {
		return pkg.ResultSize{}, err
	}
	b := img.Bounds()
	g.log.Info("Saved %s (%dx%d)", path, b.Dx(), b.Dy())
	return pkg.ResultSize{Path: path, Width: b.Dx(), Height: b.Dy()}, nil
}

func (g *Generator) TargetDir() string {
	return g.path(g.plan.TargetDir)
}

// SourcePaths resolves every input file of the plan against the root.
func (g *Generator) SourcePaths() []string {
	var paths []string
	for _, src := range g.plan.Sources() {
		paths = append(paths, g.path(src))
	}
	return paths
}

func (g *Generator) formFactorDir(ff pkg.FormFactor) string {
	return filepath.Join(g.TargetDir(), ff.Dir)
}

func (g *Generator) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(g.root, p)
}

func toRGBA(c pkg.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
