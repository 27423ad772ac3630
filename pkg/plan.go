package pkg

const (
	DefaultTargetDir = "fastlane/metadata/android/ko-KR/images"
	DefaultLogoPath  = "assets/branding/ishmael-logo-1024.png"
)

// DefaultPlan returns the Google Play listing assets for the ko-KR locale.
func DefaultPlan() Plan {
	return Plan{
		TargetDir: DefaultTargetDir,
		Icon: IconOptions{
			Source: DefaultLogoPath,
			Output: "icon.png",
			Width:  512,
			Height: 512,
		},
		Feature: FeatureOptions{
			Output: "featureGraphic.png",
			Width:  1024,
			Height: 500,
			Gradient: GradientOptions{
				Top:    Color{R: 14, G: 23, B: 40, A: 255},
				Bottom: Color{R: 34, G: 61, B: 108, A: 255},
			},
			Accents: []Accent{
				{X0: 560, Y0: -260, X1: 1250, Y1: 430, Fill: Color{R: 88, G: 142, B: 255, A: 56}},
				{X0: 430, Y0: 120, X1: 1100, Y1: 720, Fill: Color{R: 45, G: 210, B: 195, A: 44}},
			},
			Logo: LogoOptions{Source: DefaultLogoPath, Width: 280, Height: 280, X: 72, Y: 110},
			Title: TextLabel{
				Text: "ISHMAEL Wallet",
				X:    390,
				Y:    156,
				Size: 68,
				Bold: true,
				Fill: Color{R: 245, G: 248, B: 255, A: 255},
			},
			Subtitle: TextLabel{
				Text: "Mobick Watch-only Wallet",
				X:    392,
				Y:    244,
				Size: 34,
				Fill: Color{R: 190, G: 207, B: 238, A: 255},
			},
		},
		ScreenSources: []ScreenSource{
			{Source: "assets/readme/screen-wallets.png", Output: "01-Wallets.png"},
			{Source: "assets/readme/screen-settings.png", Output: "02-Settings.png"},
			{Source: "assets/readme/screen-about.png", Output: "03-About.png"},
			{Source: "assets/readme/screen-donate.png", Output: "04-Donation.png"},
		},
		// 9:16 and at least 1080px wide for the large-screen recommendations.
		FormFactors: []FormFactor{
			{Name: "phone", Dir: "phoneScreenshots", Width: 1080, Height: 1920},
			{Name: "sevenInch", Dir: "sevenInchScreenshots", Width: 1080, Height: 1920},
			{Name: "tenInch", Dir: "tenInchScreenshots", Width: 1080, Height: 1920},
		},
		Fonts: FontOptions{
			Bold: []string{
				"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
				"/Library/Fonts/Arial Bold.ttf",
				"/System/Library/Fonts/Supplemental/Helvetica.ttc",
				"DejaVuSans-Bold.ttf",
			},
			Regular: []string{
				"/System/Library/Fonts/Supplemental/Arial.ttf",
				"/Library/Fonts/Arial.ttf",
				"/System/Library/Fonts/Supplemental/Helvetica.ttc",
				"DejaVuSans.ttf",
			},
			SearchDirs: []string{
				"/usr/share/fonts",
				"/usr/local/share/fonts",
				"~/.fonts",
				"~/.local/share/fonts",
			},
		},
	}
}
