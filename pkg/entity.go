package pkg

// Plan describes every asset a run produces. Paths are relative to the project root
// unless absolute.
type Plan struct {
	TargetDir     string         `yaml:"target_dir"`
	Icon          IconOptions    `yaml:"icon"`
	Feature       FeatureOptions `yaml:"feature"`
	ScreenSources []ScreenSource `yaml:"screen_sources"`
	FormFactors   []FormFactor   `yaml:"form_factors"`
	Fonts         FontOptions    `yaml:"fonts"`
}

type IconOptions struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type FeatureOptions struct {
	Output   string          `yaml:"output"`
	Width    int             `yaml:"width"`
	Height   int             `yaml:"height"`
	Gradient GradientOptions `yaml:"gradient"`
	Accents  []Accent        `yaml:"accents"`
	Logo     LogoOptions     `yaml:"logo"`
	Title    TextLabel       `yaml:"title"`
	Subtitle TextLabel       `yaml:"subtitle"`
}

type GradientOptions struct {
	Top    Color `yaml:"top"`
	Bottom Color `yaml:"bottom"`
}

// Accent is an ellipse given by its bounding box, which may extend past the canvas.
type Accent struct {
	X0   int   `yaml:"x0"`
	Y0   int   `yaml:"y0"`
	X1   int   `yaml:"x1"`
	Y1   int   `yaml:"y1"`
	Fill Color `yaml:"fill"`
}

type LogoOptions struct {
	Source string `yaml:"source"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

// TextLabel is drawn with its top-left corner at X, Y.
type TextLabel struct {
	Text string `yaml:"text"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Size int    `yaml:"size"`
	Bold bool   `yaml:"bold"`
	Fill Color  `yaml:"fill"`
}

type ScreenSource struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
}

// FormFactor is one screenshot bin. Every bin keeps its own size even when they coincide.
type FormFactor struct {
	Name   string `yaml:"name"`
	Dir    string `yaml:"dir"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type FontOptions struct {
	Bold       []string `yaml:"bold"`
	Regular    []string `yaml:"regular"`
	SearchDirs []string `yaml:"search_dirs"`
}

type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}
