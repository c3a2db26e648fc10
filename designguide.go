package proposalgen

import (
	"embed"
	"fmt"
	"os"
)

//go:embed assets/design_guide.md
var designGuideFS embed.FS

// DesignGuide returns the bundled design guide Markdown.
func DesignGuide() string {
	data, err := designGuideFS.ReadFile("assets/design_guide.md")
	if err != nil {
		// The asset is compiled in; a missing file is a build defect.
		panic(fmt.Sprintf("embedded design guide missing: %v", err))
	}
	return string(data)
}

// LoadDesignGuide reads the design guide from path, falling back to the
// bundled asset with a warning when path is empty or unreadable. The guide
// is forwarded verbatim; it is never generated.
func LoadDesignGuide(path string) (string, []string) {
	if path == "" {
		return DesignGuide(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DesignGuide(), []string{fmt.Sprintf("design guide %s unreadable, using bundled guide: %v", path, err)}
	}
	return string(data), nil
}
