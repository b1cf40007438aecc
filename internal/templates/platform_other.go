//go:build !linux && !darwin

package templates

// Platform returns no extensions on platforms without a curated set.
func Platform() []Template {
	return nil
}
