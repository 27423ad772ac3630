package pkg

type ResultSize struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Report lists generated files in generation order.
type Report struct {
	TargetDir string       `json:"target_dir"`
	Assets    []ResultSize `json:"assets"`
}
