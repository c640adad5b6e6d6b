// Package pair matches live-photo companions: a still image and a motion
// clip sitting in the same directory under the same base name.
package pair

// LivePair couples a live photo's still image with its motion clip. The
// image carries the capture metadata; the clip follows the image's name.
type LivePair struct {
	Image string
	Clip  string
}

// Match pairs every clip whose base equals an image's base. Bases are
// computed by stripping the configured extension length from the end of the
// path; both lists must have been selected by those extensions. The scan is
// clip-major and preserves input order, so pairs come out in a stable order
// when the inputs are sorted. Unmatched clips and images are simply absent
// from the result.
func Match(images, clips []string, imageExt, clipExt string) []LivePair {
	var pairs []LivePair
	for _, clip := range clips {
		if len(clip) < len(clipExt) {
			continue
		}
		clipBase := clip[:len(clip)-len(clipExt)]
		for _, image := range images {
			if len(image) < len(imageExt) {
				continue
			}
			if image[:len(image)-len(imageExt)] == clipBase {
				pairs = append(pairs, LivePair{Image: image, Clip: clip})
			}
		}
	}
	return pairs
}
