//go:build darwin

package templates

// Platform returns macOS-specific template extensions.
func Platform() []Template {
	return []Template{
		{"Open a file or URL with the default application", "open {TARGET}"},
		{"Install a package with Homebrew", "brew install {PACKAGE}"},
		{"Show listening TCP sockets", "lsof -iTCP -sTCP:LISTEN -n -P [| grep {PORT}]"},
		{"Flush DNS cache", "sudo dscacheutil -flushcache; sudo killall -HUP mDNSResponder"},
	}
}
