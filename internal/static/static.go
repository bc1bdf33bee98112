package static

import _ "embed"

// IndexHTML contains the embedded landing page with the ROI calculator widget.
//
//go:embed index.html
var IndexHTML string
