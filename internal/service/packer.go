package service

import (
	"fmt"
	"sort"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/metrics"
)

// weightOnlyRefit controls the re-fit check for already-opened boxes.
// Only the weight limit is checked; the dimensional fit of previously placed
// items is not re-validated. This is a known heuristic simplification that
// downstream behavior depends on, so it stays a named toggle instead of a
// silent fix.
const weightOnlyRefit = true

// Packer defines the interface for bin packing operations.
type Packer interface {
	Pack(items []model.Package, boxTypes []model.BoxType) model.PackingResult
}

// FFDPacker packs packages into boxes using the First-Fit-Decreasing
// heuristic. The result is not guaranteed optimal.
type FFDPacker struct{}

// NewFFDPacker creates a new FFDPacker.
func NewFFDPacker() *FFDPacker {
	return &FFDPacker{}
}

// Pack assigns items to boxes. Items are sorted descending by volume (ties
// keep their original relative order), each item goes into the first open box
// that accepts it, and otherwise a new box is opened using the smallest
// catalog type that fits. Items that fit no box type fall back to the last
// catalog entry and are reported as warnings, never as failures.
//
// Returns an empty result when the catalog is empty. The input slices are
// not modified.
func (p *FFDPacker) Pack(items []model.Package, boxTypes []model.BoxType) model.PackingResult {
	if len(boxTypes) == 0 {
		return model.EmptyPacking()
	}

	sorted := make([]model.Package, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Volume() > sorted[j].Volume()
	})

	result := model.PackingResult{Boxes: []model.PackedBox{}}

	for _, item := range sorted {
		if p.placeInOpenBox(&result, item) {
			continue
		}

		boxType, fallback := selectBoxType(boxTypes, item)
		if fallback {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"item %.0fx%.0fx%.0f (%.1fkg) fits no configured box; placed in largest box %q",
				item.Length, item.Width, item.Height, item.Weight, boxType.Name))
			metrics.RecordPackingFallback()
		}

		result.Boxes = append(result.Boxes, model.PackedBox{
			Box:         boxType,
			Items:       []model.Package{item},
			TotalWeight: item.Weight,
		})
	}

	return result
}

// placeInOpenBox scans open boxes in creation order and places the item in
// the first one whose weight limit still allows it.
func (p *FFDPacker) placeInOpenBox(result *model.PackingResult, item model.Package) bool {
	for i := range result.Boxes {
		box := &result.Boxes[i]
		if weightOnlyRefit {
			if box.TotalWeight+item.Weight <= box.Box.WeightLimit {
				box.Items = append(box.Items, item)
				box.TotalWeight += item.Weight
				return true
			}
		}
	}
	return false
}

// selectBoxType picks the smallest-volume box type the item fits into,
// allowing a length/width swap. When nothing fits, the last catalog entry is
// returned as a lossy fallback and the second return value is true.
func selectBoxType(boxTypes []model.BoxType, item model.Package) (model.BoxType, bool) {
	var (
		selected model.BoxType
		found    bool
	)
	for _, candidate := range boxTypes {
		if !candidate.FitsItem(item) {
			continue
		}
		if !found || candidate.Volume() < selected.Volume() {
			selected = candidate
			found = true
		}
	}
	if found {
		return selected, false
	}
	return boxTypes[len(boxTypes)-1], true
}
