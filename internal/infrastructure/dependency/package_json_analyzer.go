package dependency

import (
	"encoding/json"
	"sort"
)

// PackageManifestAnalyzer extracts declared dependency names from a
// package.json manifest body.
type PackageManifestAnalyzer struct{}

func NewPackageManifestAnalyzer() *PackageManifestAnalyzer {
	return &PackageManifestAnalyzer{}
}

type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// DependencyNames parses the manifest and returns the runtime and
// development dependency name lists. Names are sorted so the result is
// deterministic regardless of JSON object order.
func (p *PackageManifestAnalyzer) DependencyNames(content string) (runtime, development []string, err error) {
	var pkg packageJSON
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return nil, nil, err
	}

	runtime = make([]string, 0, len(pkg.Dependencies))
	for name := range pkg.Dependencies {
		runtime = append(runtime, name)
	}
	sort.Strings(runtime)

	development = make([]string, 0, len(pkg.DevDependencies))
	for name := range pkg.DevDependencies {
		development = append(development, name)
	}
	sort.Strings(development)

	return runtime, development, nil
}
