package deck

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ChartRefPrefix marks an image reference that resolves against the
// generated-charts directory instead of the asset directory.
const ChartRefPrefix = "chart:"

// ImageAsset is a resolved image reference and the slides that use it.
type ImageAsset struct {
	Name      string // reference as written in the outline
	Path      string // absolute path on disk
	Generated bool   // true when the file comes from the chart generator
	Slides    []int
}

// AssetSet maps outline image references to resolved assets.
type AssetSet struct {
	imageDir string
	chartDir string
	assets   map[string]*ImageAsset
}

// NewAssetSet builds an AssetSet over the given directories.
func NewAssetSet(imageDir, chartDir string) *AssetSet {
	return &AssetSet{
		imageDir: imageDir,
		chartDir: chartDir,
		assets:   make(map[string]*ImageAsset),
	}
}

// resolvePath maps a reference to its on-disk location without checking
// existence.
func (a *AssetSet) resolvePath(ref string) (path string, generated bool) {
	if name, ok := strings.CutPrefix(ref, ChartRefPrefix); ok {
		return filepath.Join(a.chartDir, name), true
	}
	return filepath.Join(a.imageDir, ref), false
}

// Resolve walks the outline and records every image reference. References
// whose file does not exist are returned as MissingAsset violations; the
// remaining assets are still usable so a single run reports everything.
func (a *AssetSet) Resolve(outline []SlideSpec) []*Violation {
	var violations []*Violation
	for _, slide := range outline {
		refs := append([]string(nil), slide.Images...)
		for _, col := range slide.Columns {
			if col.Image != "" {
				refs = append(refs, col.Image)
			}
		}
		for _, ref := range refs {
			asset, ok := a.assets[ref]
			if !ok {
				path, generated := a.resolvePath(ref)
				asset = &ImageAsset{Name: ref, Path: path, Generated: generated}
				a.assets[ref] = asset
			}
			asset.Slides = append(asset.Slides, slide.Number)
			if _, err := os.Stat(asset.Path); err != nil {
				violations = append(violations, &Violation{
					Kind:   ViolationMissingAsset,
					Slide:  slide.Number,
					Detail: asset.Path,
				})
			}
		}
	}
	return violations
}

// Lookup returns the resolved asset for a reference, if any.
func (a *AssetSet) Lookup(ref string) (*ImageAsset, bool) {
	asset, ok := a.assets[ref]
	return asset, ok
}

// Read returns the file contents for a reference.
func (a *AssetSet) Read(ref string) ([]byte, error) {
	path, _ := a.resolvePath(ref)
	return os.ReadFile(path)
}

// All returns every recorded asset sorted by reference name.
func (a *AssetSet) All() []*ImageAsset {
	out := make([]*ImageAsset, 0, len(a.assets))
	for _, asset := range a.assets {
		out = append(out, asset)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
