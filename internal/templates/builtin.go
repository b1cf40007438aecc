package templates

// Builtin returns the built-in template palette, in its fixed order.
// Platform-specific extras are appended by Platform().
func Builtin() []Template {
	return []Template{
		{"List all files in specified directory", "ls -la {DIRECTORY}"},
		{"Search for text pattern recursively", `grep -r "{PATTERN}" {DIRECTORY:-.}`},
		{"Find files by name", `find {DIRECTORY:.} -name "{NAME}"`},
		{"Show disk usage of a directory", "du -sh {DIRECTORY:.}"},
		{"Follow a log file", "tail -f {FILE}"},
		{"Download a file", "curl -LO {URL}"},
		{"Fetch URL headers", "curl -sI {URL}"},
		{"Extract a tar.gz archive", "tar -xzf {FILE} [-C {DIRECTORY}]"},
		{"Create a tar.gz archive", "tar -czf {OUTPUT_FILE} {DIRECTORY}"},
		{"Copy file to remote host", "scp {FILE} {USER}@{HOST}:{DEST:/tmp}"},
		{"SSH into a host", "ssh {USER}@{HOST} [-p {PORT:22}]"},
		{"Show processes matching a name", "ps aux | grep {NAME}"},
		{"Kill processes by name", "pkill -f {NAME}"},
		{"Watch a command", "watch -n {INTERVAL:2} {COMMAND}"},
		{"Check open ports on a host", "nc -zv {HOST} {PORT}"},
		{"Show git log for an author", `git log --oneline --author="{AUTHOR}"`},
		{"Git diff between two refs", "git diff {FROM}..{TO:HEAD}"},
		{"Run a docker image interactively", "docker run -it --rm {IMAGE} {COMMAND:sh}"},
		{"Tail logs of a docker container", "docker logs -f {CONTAINER}"},
		{"Count lines of code by extension", `find {DIRECTORY:.} -name "*.{EXT}" | xargs wc -l`},
	}
}

// Load assembles the session store: built-ins first, then the platform
// extensions, with duplicate raw commands dropped. History entries are merged
// in afterwards by the caller via Merge.
func Load() *Store {
	list := append(Builtin(), Platform()...)
	return NewStore(list)
}
