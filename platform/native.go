//go:build !js

package platform

// detect binds host capabilities on native builds. There is no browser
// global to probe; the operating system primitives are always available.
func detect() Capabilities {
	return hostCapabilities{}
}
