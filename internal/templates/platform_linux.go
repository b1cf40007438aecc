//go:build linux

package templates

// Platform returns Linux-specific template extensions.
func Platform() []Template {
	return []Template{
		{"Open a file or URL with the default application", "xdg-open {TARGET}"},
		{"Install a package with apt", "sudo apt install {PACKAGE}"},
		{"Show listening TCP sockets", "ss -tlnp [| grep {PORT}]"},
		{"Show systemd service status", "systemctl status {SERVICE}"},
		{"Follow journal for a unit", "journalctl -fu {SERVICE}"},
	}
}
